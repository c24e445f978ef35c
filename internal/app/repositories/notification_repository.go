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

var notificationColumns = []string{"id", "category", "title", "type", "link", "icon", "created_at", "updated_at"}

// ErrNotificationNotFound is returned when no notification of the category has the requested id
var ErrNotificationNotFound = apperrors.NewResourceNotFoundError("Notification not found")

// NotificationRepository handles database operations for hero and important notifications
type NotificationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *pgxpool.Pool, sb squirrel.StatementBuilderType) *NotificationRepository {
	return &NotificationRepository{db: db, sb: sb}
}

func scanNotification(row pgx.Row) (*models.Notification, error) {
	var n models.Notification
	if err := row.Scan(&n.ID, &n.Category, &n.Title, &n.Type, &n.Link, &n.Icon, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return nil, err
	}
	return &n, nil
}

// Create inserts a notification
func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	sql, args, err := r.sb.Insert("notifications").
		Columns("category", "title", "type", "link", "icon").
		Values(n.Category, n.Title, n.Type, n.Link, n.Icon).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create notification query: %w", err)
	}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt); err != nil {
		logger.Error().Err(err).Str("category", string(n.Category)).Msg("Error executing create notification query")
		return fmt.Errorf("error creating notification: %w", err)
	}
	return nil
}

// List returns the notifications of a category, newest first
func (r *NotificationRepository) List(ctx context.Context, category models.NotificationCategory) ([]*models.Notification, error) {
	sql, args, err := r.sb.Select(notificationColumns...).From("notifications").
		Where(squirrel.Eq{"category": category}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list notifications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list notifications query")
		return nil, fmt.Errorf("error listing notifications: %w", err)
	}
	defer rows.Close()

	items := []*models.Notification{}
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning notification: %w", err)
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

// Update applies patch to the notification with id inside category
func (r *NotificationRepository) Update(ctx context.Context, category models.NotificationCategory, id int64, patch models.NotificationPatch) (*models.Notification, error) {
	q := r.sb.Update("notifications").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "category": category})
	if cols := patch.Columns(); len(cols) > 0 {
		q = q.SetMap(cols)
	}
	sql, args, err := q.Suffix(returning(notificationColumns)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update notification query: %w", err)
	}

	n, err := scanNotification(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotificationNotFound
		}
		logger.Error().Err(err).Int64("id", id).Msg("Error executing update notification query")
		return nil, fmt.Errorf("error updating notification: %w", err)
	}
	return n, nil
}

// Delete removes the notification with id inside category
func (r *NotificationRepository) Delete(ctx context.Context, category models.NotificationCategory, id int64) error {
	sql, args, err := r.sb.Delete("notifications").Where(squirrel.Eq{"id": id, "category": category}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete notification query: %w", err)
	}
	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("id", id).Msg("Error executing delete notification query")
		return fmt.Errorf("error deleting notification: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
