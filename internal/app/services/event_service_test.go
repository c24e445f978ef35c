package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/tpoportal/internal/app/models"
	"github.com/yigit/tpoportal/internal/pkg/apperrors"
	"github.com/yigit/tpoportal/internal/pkg/eventstatus"
)

func seedEvents(t *testing.T, svc EventService) {
	t.Helper()
	day := 24 * time.Hour
	for _, e := range []*models.Event{
		{Title: "Drive", Description: "d", Company: "Acme", StartDate: fixedNow.Add(-day), EndDate: fixedNow.Add(day)},
		{Title: "Talk", Description: "d", Company: "Acme", StartDate: fixedNow.Add(10 * day), EndDate: fixedNow.Add(11 * day)},
		{Title: "Old", Description: "d", Company: "Globex", StartDate: fixedNow.Add(-400 * day), EndDate: fixedNow.Add(-399 * day)},
	} {
		_, err := svc.CreateEvent(context.Background(), e)
		require.NoError(t, err)
	}
}

func TestListEvents_StatusFilter(t *testing.T) {
	svc := NewEventService(&fakeEventStore{}, fixedClock)
	seedEvents(t, svc)
	ctx := context.Background()

	all, err := svc.ListEvents(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	ongoing, err := svc.ListEvents(ctx, "ongoing")
	require.NoError(t, err)
	require.Len(t, ongoing, 1)
	assert.Equal(t, "Drive", ongoing[0].Title)
	assert.Equal(t, eventstatus.Ongoing, ongoing[0].Status)

	past, err := svc.ListEvents(ctx, "PAST")
	require.NoError(t, err)
	require.Len(t, past, 1)
	assert.Equal(t, "Old", past[0].Title)

	_, err = svc.ListEvents(ctx, "soon")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGroupedEvents(t *testing.T) {
	svc := NewEventService(&fakeEventStore{}, fixedClock)
	seedEvents(t, svc)

	sections, err := svc.GroupedEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, sections, 3)

	assert.Equal(t, eventstatus.Upcoming, sections[0].Status)
	assert.Equal(t, 1, sections[0].Count)
	assert.Equal(t, "Acme", sections[0].Companies[0].Key)
	assert.Equal(t, "2025", sections[0].Companies[0].Groups[0].Key)

	assert.Equal(t, eventstatus.Ongoing, sections[1].Status)
	assert.Equal(t, eventstatus.Past, sections[2].Status)
	assert.Equal(t, "Globex", sections[2].Companies[0].Key)
	assert.Equal(t, "2023", sections[2].Companies[0].Groups[0].Key)
}

func TestGroupedEvents_EmptySectionsPresent(t *testing.T) {
	svc := NewEventService(&fakeEventStore{}, fixedClock)

	sections, err := svc.GroupedEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, sections, 3)
	for _, s := range sections {
		assert.Zero(t, s.Count)
		assert.NotNil(t, s.Companies)
	}
}

func TestCreateEvent_RejectsEndBeforeStart(t *testing.T) {
	svc := NewEventService(&fakeEventStore{}, fixedClock)

	_, err := svc.CreateEvent(context.Background(), &models.Event{
		Title: "x", Description: "x", Company: "x",
		StartDate: fixedNow, EndDate: fixedNow.Add(-time.Hour),
	})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "endDate must not be before startDate", apperrors.Message(err))
}

func TestUpdateEvent_ChecksMergedDates(t *testing.T) {
	store := &fakeEventStore{}
	svc := NewEventService(store, fixedClock)
	ctx := context.Background()

	created, err := svc.CreateEvent(ctx, &models.Event{
		Title: "x", Description: "x", Company: "x",
		StartDate: fixedNow, EndDate: fixedNow.Add(2 * time.Hour),
	})
	require.NoError(t, err)

	badEnd := fixedNow.Add(-time.Hour)
	_, err = svc.UpdateEvent(ctx, created.ID, models.EventPatch{EndDate: &badEnd})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	newTitle := "Renamed"
	updated, err := svc.UpdateEvent(ctx, created.ID, models.EventPatch{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, eventstatus.Ongoing, updated.Status)

	_, err = svc.UpdateEvent(ctx, 999, models.EventPatch{EndDate: &badEnd})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
