package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"github.com/yigit/tpoportal/internal/app/models"
	"github.com/yigit/tpoportal/internal/app/models/dto"
	"github.com/yigit/tpoportal/internal/pkg/apperrors"
	"github.com/yigit/tpoportal/internal/pkg/spreadsheet"
)

func readSheet(t *testing.T, data []byte, sheet string) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	return rows
}

func TestExport_StudentsFilteredWithoutTimestamps(t *testing.T) {
	students := &fakeStudentStore{}
	ctx := context.Background()
	for _, s := range []*models.Student{
		{Name: "Ada", RollNumber: "1", Branch: str("CSE"), Year: num(3), Batch: str("2022-2026")},
		{Name: "Bob", RollNumber: "2", Branch: str("ECE"), Year: num(3)},
	} {
		require.NoError(t, students.Create(ctx, s))
	}
	svc := NewExportService(students, &fakeAlumniStore{}, &fakeAttendanceStore{})

	file, err := svc.Export(ctx, "students", dto.StudentFilter{Branch: "CSE", Year: "3", Batch: "all"})
	require.NoError(t, err)
	assert.Equal(t, "students_CSE_3.xlsx", file.Filename)
	assert.Equal(t, spreadsheet.ContentType, file.ContentType)

	rows := readSheet(t, file.Data, "Students")
	require.Len(t, rows, 2)
	assert.NotContains(t, rows[0], "createdAt")
	assert.NotContains(t, rows[0], "updatedAt")
	assert.Contains(t, rows[1], "Ada")
}

func TestExport_AlumniAndAttendance(t *testing.T) {
	alumni := &fakeAlumniStore{}
	attendance := &fakeAttendanceStore{}
	ctx := context.Background()
	require.NoError(t, alumni.Create(ctx, &models.Alumni{Name: "Ada", PassOutYear: 2020}))
	require.NoError(t, attendance.Create(ctx, &models.Attendance{StudentName: "Bob", RollNumber: "R2"}))
	svc := NewExportService(&fakeStudentStore{}, alumni, attendance)

	file, err := svc.Export(ctx, "alumni", dto.StudentFilter{})
	require.NoError(t, err)
	assert.Equal(t, "alumni.xlsx", file.Filename)
	assert.Len(t, readSheet(t, file.Data, "Alumni"), 2)

	file, err = svc.Export(ctx, "attendance", dto.StudentFilter{})
	require.NoError(t, err)
	rows := readSheet(t, file.Data, "Attendance")
	require.Len(t, rows, 2)
	assert.Equal(t, "studentName", rows[0][2])
	assert.Equal(t, "Bob", rows[1][2])

	_, err = svc.Export(ctx, "events", dto.StudentFilter{})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}
