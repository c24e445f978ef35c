package services

import (
	"context"
	"strings"

	"github.com/yigit/tpoportal/internal/app/models"
	"github.com/yigit/tpoportal/internal/app/models/dto"
	"github.com/yigit/tpoportal/internal/app/repositories"
	"github.com/yigit/tpoportal/internal/pkg/apperrors"
	"github.com/yigit/tpoportal/internal/pkg/logger"
	"github.com/yigit/tpoportal/internal/pkg/metrics"
	"github.com/yigit/tpoportal/internal/pkg/spreadsheet"
)

// ErrUnsupportedExportKind is returned for kinds without an export
var ErrUnsupportedExportKind = apperrors.NewBadRequestError("Unsupported export type")

// studentHiddenColumns never appear in student exports
var studentHiddenColumns = []string{"createdAt", "updatedAt"}

// ExportFile is a rendered spreadsheet ready to be served as an attachment
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders records as XLSX workbooks
type ExportService interface {
	Export(ctx context.Context, kind string, filter dto.StudentFilter) (*ExportFile, error)
}

type exportServiceImpl struct {
	students   StudentStore
	alumni     AlumniStore
	attendance AttendanceStore
}

// NewExportService creates a new export service
func NewExportService(students StudentStore, alumni AlumniStore, attendance AttendanceStore) ExportService {
	return &exportServiceImpl{students: students, alumni: alumni, attendance: attendance}
}

// StudentRecord flattens a student into export columns
func StudentRecord(s *models.Student) spreadsheet.Record {
	return spreadsheet.Record{
		{Name: "id", Value: s.ID},
		{Name: "name", Value: s.Name},
		{Name: "rollNumber", Value: s.RollNumber},
		{Name: "branch", Value: s.Branch},
		{Name: "year", Value: s.Year},
		{Name: "batch", Value: s.Batch},
		{Name: "email", Value: s.Email},
		{Name: "phone", Value: s.Phone},
		{Name: "photoUrl", Value: s.PhotoURL},
		{Name: "selected", Value: s.Selected},
		{Name: "companyName", Value: s.CompanyName},
		{Name: "offerLetterUrl", Value: s.OfferLetterURL},
		{Name: "package", Value: s.Package},
		{Name: "role", Value: s.Role},
		{Name: "createdAt", Value: s.CreatedAt},
		{Name: "updatedAt", Value: s.UpdatedAt},
	}
}

// AlumniRecord flattens an alumni registration into export columns
func AlumniRecord(a *models.Alumni) spreadsheet.Record {
	return spreadsheet.Record{
		{Name: "id", Value: a.ID},
		{Name: "name", Value: a.Name},
		{Name: "rollNumber", Value: a.RollNumber},
		{Name: "passOutYear", Value: a.PassOutYear},
		{Name: "higherEducationCollege", Value: a.HigherEducationCollege},
		{Name: "collegeRollNumber", Value: a.CollegeRollNumber},
		{Name: "address", Value: a.Address},
		{Name: "contactNumber", Value: a.ContactNumber},
		{Name: "email", Value: a.Email},
		{Name: "createdAt", Value: a.CreatedAt},
	}
}

// AttendanceRecord flattens an attendance mark into export columns
func AttendanceRecord(a *models.Attendance) spreadsheet.Record {
	return spreadsheet.Record{
		{Name: "id", Value: a.ID},
		{Name: "eventId", Value: a.EventID},
		{Name: "studentName", Value: a.StudentName},
		{Name: "rollNumber", Value: a.RollNumber},
		{Name: "branch", Value: a.Branch},
		{Name: "year", Value: a.Year},
		{Name: "markedAt", Value: a.MarkedAt},
	}
}

func recordsOf[T any](items []T, toRecord func(T) spreadsheet.Record) []spreadsheet.Record {
	out := make([]spreadsheet.Record, 0, len(items))
	for _, it := range items {
		out = append(out, toRecord(it))
	}
	return out
}

// Export renders kind. Student exports honour the branch, year and batch
// filters and name the file after the active ones.
func (s *exportServiceImpl) Export(ctx context.Context, kind string, filter dto.StudentFilter) (*ExportFile, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))

	var (
		sheet    string
		filename string
		records  []spreadsheet.Record
	)
	switch kind {
	case KindStudents:
		students, err := s.students.List(ctx, repositories.StudentFilter{})
		if err != nil {
			return nil, err
		}
		filters := []spreadsheet.Filter{
			{Field: "branch", Value: filter.Branch},
			{Field: "year", Value: filter.Year},
			{Field: "batch", Value: filter.Batch},
		}
		records = spreadsheet.Project(recordsOf(students, StudentRecord), filters, studentHiddenColumns...)
		sheet = "Students"
		filename = spreadsheet.FilteredFilename("students", "xlsx", filter.Branch, filter.Year, filter.Batch)
	case KindAlumni:
		alumni, err := s.alumni.List(ctx)
		if err != nil {
			return nil, err
		}
		records = spreadsheet.Project(recordsOf(alumni, AlumniRecord), nil)
		sheet = "Alumni"
		filename = "alumni.xlsx"
	case KindAttendance:
		marks, err := s.attendance.List(ctx, nil)
		if err != nil {
			return nil, err
		}
		records = spreadsheet.Project(recordsOf(marks, AttendanceRecord), nil)
		sheet = "Attendance"
		filename = "attendance.xlsx"
	default:
		return nil, ErrUnsupportedExportKind
	}

	data, err := spreadsheet.WriteWorkbook(sheet, records)
	if err != nil {
		logger.Error().Err(err).Str("kind", kind).Msg("Failed to render workbook")
		return nil, err
	}
	metrics.Exports.WithLabelValues(kind).Inc()

	return &ExportFile{
		Filename:    filename,
		ContentType: spreadsheet.ContentType,
		Data:        data,
	}, nil
}
