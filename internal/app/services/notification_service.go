package services

import (
	"context"

	"github.com/yigit/tpoportal/internal/app/models"
	"github.com/yigit/tpoportal/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

// DefaultImportantNotifications are served while no important notification
// has been created. Their ids are not positive so they never collide with
// stored rows.
func DefaultImportantNotifications() []*models.Notification {
	return []*models.Notification{
		{ID: -1, Category: models.NotificationImportant, Title: "Placement Registration Open", Type: "URGENT", Link: strPtr("/placements/register")},
		{ID: -2, Category: models.NotificationImportant, Title: "Resume Building Workshop", Type: "NEW", Link: strPtr("/workshops/resume-building")},
		{ID: -3, Category: models.NotificationImportant, Title: "Mock Interview Sessions", Type: "INFO", Link: strPtr("/interviews/mock")},
	}
}

// NotificationService defines the interface for hero and important notifications
type NotificationService interface {
	// ListImportant returns the defaults when nothing is stored
	ListImportant(ctx context.Context) ([]*models.Notification, error)
	// ManageImportant returns the stored rows only
	ManageImportant(ctx context.Context) ([]*models.Notification, error)
	ListHero(ctx context.Context) ([]*models.Notification, error)
	Create(ctx context.Context, n *models.Notification) (*models.Notification, error)
	Update(ctx context.Context, category models.NotificationCategory, id int64, patch models.NotificationPatch) (*models.Notification, error)
	Delete(ctx context.Context, category models.NotificationCategory, id int64) error
}

type notificationServiceImpl struct {
	store NotificationStore
}

// NewNotificationService creates a new notification service
func NewNotificationService(store NotificationStore) NotificationService {
	return &notificationServiceImpl{store: store}
}

func (s *notificationServiceImpl) ListImportant(ctx context.Context) ([]*models.Notification, error) {
	stored, err := s.store.List(ctx, models.NotificationImportant)
	if err != nil {
		return nil, err
	}
	if len(stored) == 0 {
		return DefaultImportantNotifications(), nil
	}
	return stored, nil
}

func (s *notificationServiceImpl) ManageImportant(ctx context.Context) ([]*models.Notification, error) {
	return s.store.List(ctx, models.NotificationImportant)
}

func (s *notificationServiceImpl) ListHero(ctx context.Context) ([]*models.Notification, error) {
	return s.store.List(ctx, models.NotificationHero)
}

func (s *notificationServiceImpl) Create(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	// only hero notifications carry an icon
	if n.Category == models.NotificationImportant {
		n.Icon = nil
	}
	if err := s.store.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *notificationServiceImpl) Update(ctx context.Context, category models.NotificationCategory, id int64, patch models.NotificationPatch) (*models.Notification, error) {
	if id <= 0 {
		return nil, apperrors.ErrDefaultNotEditable
	}
	if category == models.NotificationImportant {
		patch.Icon = nil
	}
	return s.store.Update(ctx, category, id, patch)
}

func (s *notificationServiceImpl) Delete(ctx context.Context, category models.NotificationCategory, id int64) error {
	if id <= 0 {
		return apperrors.ErrDefaultNotEditable
	}
	return s.store.Delete(ctx, category, id)
}
