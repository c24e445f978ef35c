package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/tpoportal/internal/app/models"
	"github.com/yigit/tpoportal/internal/pkg/apperrors"
)

func TestGroupedAlumni_NewestYearFirst(t *testing.T) {
	svc := NewAlumniService(&fakeAlumniStore{})
	ctx := context.Background()
	for _, a := range []*models.Alumni{
		{Name: "A", PassOutYear: 2019},
		{Name: "B", PassOutYear: 2022},
		{Name: "C", PassOutYear: 2019},
	} {
		_, err := svc.RegisterAlumni(ctx, a)
		require.NoError(t, err)
	}

	groups, err := svc.GroupedAlumni(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "2022", groups[0].Key)
	assert.Equal(t, "2019", groups[1].Key)
	assert.Equal(t, 2, groups[1].Count)
	assert.Equal(t, "A", groups[1].Items[0].Name)
	assert.Equal(t, "C", groups[1].Items[1].Name)
}

func TestEventAttendance_RequiresEvent(t *testing.T) {
	events := &fakeEventStore{}
	svc := NewAttendanceService(&fakeAttendanceStore{}, events)
	ctx := context.Background()

	require.NoError(t, events.Create(ctx, &models.Event{Title: "Drive"}))
	eventID := int64(1)

	_, err := svc.MarkAttendance(ctx, &models.Attendance{EventID: &eventID, StudentName: "Ada", RollNumber: "R1"})
	require.NoError(t, err)
	_, err = svc.MarkAttendance(ctx, &models.Attendance{StudentName: "Bob", RollNumber: "R2"})
	require.NoError(t, err)

	marks, err := svc.EventAttendance(ctx, eventID)
	require.NoError(t, err)
	require.Len(t, marks, 1)
	assert.Equal(t, "Ada", marks[0].StudentName)

	all, err := svc.ListAttendance(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.EventAttendance(ctx, 99)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
