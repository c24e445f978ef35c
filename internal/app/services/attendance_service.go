package services

import (
	"context"

	"github.com/yigit/tpoportal/internal/app/models"
	"github.com/yigit/tpoportal/internal/pkg/logger"
)

// AttendanceService defines the interface for attendance operations
type AttendanceService interface {
	MarkAttendance(ctx context.Context, attendance *models.Attendance) (*models.Attendance, error)
	ListAttendance(ctx context.Context, eventID *int64) ([]*models.Attendance, error)
	EventAttendance(ctx context.Context, eventID int64) ([]*models.Attendance, error)
	DeleteAttendance(ctx context.Context, id int64) error
}

type attendanceServiceImpl struct {
	store  AttendanceStore
	events EventStore
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(store AttendanceStore, events EventStore) AttendanceService {
	return &attendanceServiceImpl{store: store, events: events}
}

// MarkAttendance records one attendance mark. A missing event id leaves the mark unlinked.
func (s *attendanceServiceImpl) MarkAttendance(ctx context.Context, attendance *models.Attendance) (*models.Attendance, error) {
	if err := s.store.Create(ctx, attendance); err != nil {
		return nil, err
	}
	logger.Info().Int64("attendanceID", attendance.ID).Str("rollNumber", attendance.RollNumber).Msg("Attendance marked")
	return attendance, nil
}

func (s *attendanceServiceImpl) ListAttendance(ctx context.Context, eventID *int64) ([]*models.Attendance, error) {
	return s.store.List(ctx, eventID)
}

// EventAttendance lists the marks of one event; the event must exist
func (s *attendanceServiceImpl) EventAttendance(ctx context.Context, eventID int64) ([]*models.Attendance, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.store.List(ctx, &eventID)
}

func (s *attendanceServiceImpl) DeleteAttendance(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}
