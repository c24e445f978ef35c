package services

import (
	"context"
	"time"

	"github.com/yigit/tpoportal/internal/app/models"
	"github.com/yigit/tpoportal/internal/app/repositories"
)

// The store interfaces below are satisfied by the repositories package and
// by in-memory fakes in tests.

// StudentStore persists students
type StudentStore interface {
	Create(ctx context.Context, s *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	List(ctx context.Context, filter repositories.StudentFilter) ([]*models.Student, error)
	Update(ctx context.Context, id int64, patch models.StudentPatch) (*models.Student, error)
	Delete(ctx context.Context, id int64) error
	PlacementTotals(ctx context.Context) (*repositories.PlacementTotals, error)
	RecentPlacements(ctx context.Context, limit int) ([]*models.Student, error)
}

// EventStore persists events
type EventStore interface {
	Create(ctx context.Context, e *models.Event) error
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	List(ctx context.Context) ([]*models.Event, error)
	Update(ctx context.Context, id int64, patch models.EventPatch) (*models.Event, error)
	Delete(ctx context.Context, id int64) error
}

// AlumniStore persists alumni registrations
type AlumniStore interface {
	Create(ctx context.Context, a *models.Alumni) error
	GetByID(ctx context.Context, id int64) (*models.Alumni, error)
	List(ctx context.Context) ([]*models.Alumni, error)
	Update(ctx context.Context, id int64, patch models.AlumniPatch) (*models.Alumni, error)
	Delete(ctx context.Context, id int64) error
}

// AttendanceStore persists attendance marks
type AttendanceStore interface {
	Create(ctx context.Context, a *models.Attendance) error
	List(ctx context.Context, eventID *int64) ([]*models.Attendance, error)
	Delete(ctx context.Context, id int64) error
}

// NewsStore persists news items
type NewsStore interface {
	Create(ctx context.Context, n *models.News) error
	List(ctx context.Context) ([]*models.News, error)
	Update(ctx context.Context, id int64, patch models.NewsPatch) (*models.News, error)
	Delete(ctx context.Context, id int64) error
}

// NotificationStore persists hero and important notifications
type NotificationStore interface {
	Create(ctx context.Context, n *models.Notification) error
	List(ctx context.Context, category models.NotificationCategory) ([]*models.Notification, error)
	Update(ctx context.Context, category models.NotificationCategory, id int64, patch models.NotificationPatch) (*models.Notification, error)
	Delete(ctx context.Context, category models.NotificationCategory, id int64) error
}

// UserStore reads and creates admin users
type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// TokenDenylist records logged out token ids until they expire
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
