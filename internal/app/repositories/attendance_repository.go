package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/tpoportal/internal/app/models"
	"github.com/yigit/tpoportal/internal/pkg/apperrors"
	"github.com/yigit/tpoportal/internal/pkg/dberrors"
	"github.com/yigit/tpoportal/internal/pkg/logger"
)

var attendanceColumns = []string{"id", "event_id", "student_name", "roll_number", "branch", "year", "marked_at"}

// Attendance errors
var (
	ErrAttendanceNotFound = apperrors.NewResourceNotFoundError("Attendance record not found")
	ErrUnknownEvent       = apperrors.NewValidationError("eventId does not reference an existing event", "eventId")
)

// AttendanceRepository handles database operations for attendance records
type AttendanceRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *pgxpool.Pool, sb squirrel.StatementBuilderType) *AttendanceRepository {
	return &AttendanceRepository{db: db, sb: sb}
}

func scanAttendance(row pgx.Row) (*models.Attendance, error) {
	var a models.Attendance
	if err := row.Scan(&a.ID, &a.EventID, &a.StudentName, &a.RollNumber, &a.Branch, &a.Year, &a.MarkedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts an attendance record; marked_at is set by the database
func (r *AttendanceRepository) Create(ctx context.Context, a *models.Attendance) error {
	sql, args, err := r.sb.Insert("attendance").
		Columns("event_id", "student_name", "roll_number", "branch", "year").
		Values(a.EventID, a.StudentName, a.RollNumber, a.Branch, a.Year).
		Suffix("RETURNING id, marked_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create attendance SQL")
		return fmt.Errorf("failed to build create attendance query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&a.ID, &a.MarkedAt); err != nil {
		if dberrors.IsForeignKeyError(err) {
			return ErrUnknownEvent
		}
		logger.Error().Err(err).Str("rollNumber", a.RollNumber).Msg("Error executing create attendance query")
		return fmt.Errorf("error creating attendance: %w", err)
	}
	return nil
}

// List returns attendance records, newest first, optionally for one event
func (r *AttendanceRepository) List(ctx context.Context, eventID *int64) ([]*models.Attendance, error) {
	q := r.sb.Select(attendanceColumns...).From("attendance").OrderBy("marked_at DESC", "id DESC")
	if eventID != nil {
		q = q.Where(squirrel.Eq{"event_id": *eventID})
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list attendance query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list attendance query")
		return nil, fmt.Errorf("error listing attendance: %w", err)
	}
	defer rows.Close()

	records := []*models.Attendance{}
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning attendance: %w", err)
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

// Delete removes an attendance record by ID
func (r *AttendanceRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("attendance").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete attendance query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("id", id).Msg("Error executing delete attendance query")
		return fmt.Errorf("error deleting attendance: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrAttendanceNotFound
	}
	return nil
}
