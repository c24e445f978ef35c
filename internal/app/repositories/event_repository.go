package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/tpoportal/internal/app/models"
	"github.com/yigit/tpoportal/internal/pkg/apperrors"
	"github.com/yigit/tpoportal/internal/pkg/logger"
)

var eventColumns = []string{
	"id", "title", "description", "company", "start_date", "end_date",
	"notification_link", "attachment_url", "created_at", "updated_at",
}

// ErrEventNotFound is returned when no event has the requested id
var ErrEventNotFound = apperrors.NewResourceNotFoundError("Event not found")

// EventRepository handles database operations for events
type EventRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool, sb squirrel.StatementBuilderType) *EventRepository {
	return &EventRepository{db: db, sb: sb}
}

func scanEvent(row pgx.Row) (*models.Event, error) {
	var e models.Event
	if err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Company, &e.StartDate, &e.EndDate,
		&e.NotificationLink, &e.AttachmentURL, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserts an event
func (r *EventRepository) Create(ctx context.Context, e *models.Event) error {
	sql, args, err := r.sb.Insert("events").
		Columns("title", "description", "company", "start_date", "end_date", "notification_link", "attachment_url").
		Values(e.Title, e.Description, e.Company, e.StartDate, e.EndDate, e.NotificationLink, e.AttachmentURL).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create event SQL")
		return fmt.Errorf("failed to build create event query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		logger.Error().Err(err).Str("title", e.Title).Msg("Error executing create event query")
		return fmt.Errorf("error creating event: %w", err)
	}
	return nil
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	sql, args, err := r.sb.Select(eventColumns...).From("events").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get event query: %w", err)
	}

	e, err := scanEvent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, ErrEventNotFound
		}
		logger.Error().Err(err).Int64("id", id).Msg("Error scanning event row")
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}
	return e, nil
}

// List returns all events, most recent start first
func (r *EventRepository) List(ctx context.Context) ([]*models.Event, error) {
	sql, args, err := r.sb.Select(eventColumns...).From("events").OrderBy("start_date DESC", "id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list events query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list events query")
		return nil, fmt.Errorf("error listing events: %w", err)
	}
	defer rows.Close()

	events := []*models.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning event row")
			return nil, fmt.Errorf("error scanning event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Update applies patch and returns the stored row
func (r *EventRepository) Update(ctx context.Context, id int64, patch models.EventPatch) (*models.Event, error) {
	cols := patch.Columns()
	if len(cols) == 0 {
		return r.GetByID(ctx, id)
	}

	sql, args, err := r.sb.Update("events").
		SetMap(cols).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning(eventColumns)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update event SQL")
		return nil, fmt.Errorf("failed to build update event query: %w", err)
	}

	e, err := scanEvent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, ErrEventNotFound
		}
		logger.Error().Err(err).Int64("id", id).Msg("Error executing update event query")
		return nil, fmt.Errorf("error updating event: %w", err)
	}
	return e, nil
}

// Delete removes an event. Attendance rows keep existing with event_id set to NULL.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("events").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete event query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("id", id).Msg("Error executing delete event query")
		return fmt.Errorf("error deleting event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrEventNotFound
	}
	return nil
}
