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

var newsColumns = []string{"id", "title", "content", "created_at", "updated_at"}

// ErrNewsNotFound is returned when no news item has the requested id
var ErrNewsNotFound = apperrors.NewResourceNotFoundError("News not found")

// NewsRepository handles database operations for news items
type NewsRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNewsRepository creates a new NewsRepository
func NewNewsRepository(db *pgxpool.Pool, sb squirrel.StatementBuilderType) *NewsRepository {
	return &NewsRepository{db: db, sb: sb}
}

func scanNews(row pgx.Row) (*models.News, error) {
	var n models.News
	if err := row.Scan(&n.ID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return nil, err
	}
	return &n, nil
}

// Create inserts a news item
func (r *NewsRepository) Create(ctx context.Context, n *models.News) error {
	sql, args, err := r.sb.Insert("news").
		Columns("title", "content").
		Values(n.Title, n.Content).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create news query: %w", err)
	}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing create news query")
		return fmt.Errorf("error creating news: %w", err)
	}
	return nil
}

// List returns news items, newest first
func (r *NewsRepository) List(ctx context.Context) ([]*models.News, error) {
	sql, args, err := r.sb.Select(newsColumns...).From("news").OrderBy("created_at DESC", "id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list news query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list news query")
		return nil, fmt.Errorf("error listing news: %w", err)
	}
	defer rows.Close()

	items := []*models.News{}
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning news: %w", err)
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

// Update applies patch and returns the stored row
func (r *NewsRepository) Update(ctx context.Context, id int64, patch models.NewsPatch) (*models.News, error) {
	q := r.sb.Update("news").Set("updated_at", squirrel.Expr("NOW()")).Where(squirrel.Eq{"id": id})
	if cols := patch.Columns(); len(cols) > 0 {
		q = q.SetMap(cols)
	}
	sql, args, err := q.Suffix(returning(newsColumns)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update news query: %w", err)
	}

	n, err := scanNews(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNewsNotFound
		}
		logger.Error().Err(err).Int64("id", id).Msg("Error executing update news query")
		return nil, fmt.Errorf("error updating news: %w", err)
	}
	return n, nil
}

// Delete removes a news item by ID
func (r *NewsRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("news").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete news query: %w", err)
	}
	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("id", id).Msg("Error executing delete news query")
		return fmt.Errorf("error deleting news: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNewsNotFound
	}
	return nil
}
