package services

import (
	"context"
	"strings"

	"github.com/yigit/tpoportal/internal/app/models"
	"github.com/yigit/tpoportal/internal/pkg/apperrors"
	"github.com/yigit/tpoportal/internal/pkg/csvimport"
	"github.com/yigit/tpoportal/internal/pkg/logger"
	"github.com/yigit/tpoportal/internal/pkg/metrics"
)

// Record kinds accepted by import and export
const (
	KindStudents   = "students"
	KindEvents     = "events"
	KindAlumni     = "alumni"
	KindAttendance = "attendance"
)

// ImportService loads CSV text into the stores row by row
type ImportService interface {
	Import(ctx context.Context, kind, text string) (*csvimport.Result, error)
}

type importServiceImpl struct {
	students   StudentStore
	events     EventStore
	alumni     AlumniStore
	attendance AttendanceStore
}

// NewImportService creates a new import service
func NewImportService(students StudentStore, events EventStore, alumni AlumniStore, attendance AttendanceStore) ImportService {
	return &importServiceImpl{
		students:   students,
		events:     events,
		alumni:     alumni,
		attendance: attendance,
	}
}

// Import runs the pipeline for kind. Each row is persisted on its own; a
// failing row never undoes earlier rows.
func (s *importServiceImpl) Import(ctx context.Context, kind, text string) (*csvimport.Result, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	observe := metrics.ImportRowObserver(kind)

	var (
		result *csvimport.Result
		err    error
	)
	switch kind {
	case KindStudents:
		result, err = csvimport.Run(ctx, text, kind, csvimport.DecodeStudent,
			func(ctx context.Context, st *models.Student) error { return s.students.Create(ctx, st) }, observe)
	case KindEvents:
		result, err = csvimport.Run(ctx, text, kind, csvimport.DecodeEvent,
			func(ctx context.Context, e *models.Event) error { return s.events.Create(ctx, e) }, observe)
	case KindAlumni:
		result, err = csvimport.Run(ctx, text, kind, csvimport.DecodeAlumni,
			func(ctx context.Context, a *models.Alumni) error { return s.alumni.Create(ctx, a) }, observe)
	case KindAttendance:
		result, err = csvimport.Run(ctx, text, kind, csvimport.DecodeAttendance,
			func(ctx context.Context, a *models.Attendance) error { return s.attendance.Create(ctx, a) }, observe)
	default:
		return nil, apperrors.ErrUnsupportedImportKind
	}
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("kind", kind).
		Int("imported", result.Imported).
		Int("errors", len(result.Errors)).
		Msg("CSV import finished")
	return result, nil
}
