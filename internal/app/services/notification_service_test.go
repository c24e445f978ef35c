package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/tpoportal/internal/app/models"
	"github.com/yigit/tpoportal/internal/pkg/apperrors"
)

func TestListImportant_DefaultsWhenEmpty(t *testing.T) {
	svc := NewNotificationService(&fakeNotificationStore{})

	got, err := svc.ListImportant(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, int64(-1), got[0].ID)
	assert.Equal(t, "Placement Registration Open", got[0].Title)
	assert.Equal(t, "URGENT", got[0].Type)
	assert.Equal(t, "/placements/register", models.StringValue(got[0].Link))
	assert.Equal(t, "Resume Building Workshop", got[1].Title)
	assert.Equal(t, "NEW", got[1].Type)
	assert.Equal(t, "Mock Interview Sessions", got[2].Title)
	assert.Equal(t, "/interviews/mock", models.StringValue(got[2].Link))

	managed, err := svc.ManageImportant(context.Background())
	require.NoError(t, err)
	assert.Empty(t, managed)
}

func TestListImportant_StoredReplaceDefaults(t *testing.T) {
	svc := NewNotificationService(&fakeNotificationStore{})
	ctx := context.Background()

	icon := "star"
	created, err := svc.Create(ctx, &models.Notification{Category: models.NotificationImportant, Title: "Drive", Type: "EVENT", Icon: &icon})
	require.NoError(t, err)
	assert.Nil(t, created.Icon, "important notifications carry no icon")

	got, err := svc.ListImportant(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Drive", got[0].Title)

	hero, err := svc.ListHero(ctx)
	require.NoError(t, err)
	assert.Empty(t, hero)
}

func TestNotifications_DefaultsNotEditable(t *testing.T) {
	svc := NewNotificationService(&fakeNotificationStore{})
	ctx := context.Background()

	title := "changed"
	_, err := svc.Update(ctx, models.NotificationImportant, -1, models.NotificationPatch{Title: &title})
	assert.ErrorIs(t, err, apperrors.ErrDefaultNotEditable)

	err = svc.Delete(ctx, models.NotificationImportant, 0)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestNotifications_CategoryScoped(t *testing.T) {
	svc := NewNotificationService(&fakeNotificationStore{})
	ctx := context.Background()

	hero, err := svc.Create(ctx, &models.Notification{Category: models.NotificationHero, Title: "Welcome", Type: "INFO"})
	require.NoError(t, err)

	err = svc.Delete(ctx, models.NotificationImportant, hero.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	require.NoError(t, svc.Delete(ctx, models.NotificationHero, hero.ID))
}
