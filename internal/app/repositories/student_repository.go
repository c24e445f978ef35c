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

var studentColumns = []string{
	"id", "name", "roll_number", "branch", "year", "batch", "email", "phone", "photo_url",
	"selected", "company_name", "offer_letter_url", "package", "role", "created_at", "updated_at",
}

// StudentFilter narrows student listings. Nil fields are not applied.
type StudentFilter struct {
	Branch   *string
	Year     *int
	Batch    *string
	Selected *bool
}

// PlacementTotals aggregates the placed students
type PlacementTotals struct {
	Placed    int
	Companies int
	Average   float64
	Highest   int
}

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool, sb squirrel.StatementBuilderType) *StudentRepository {
	return &StudentRepository{db: db, sb: sb}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID, &s.Name, &s.RollNumber, &s.Branch, &s.Year, &s.Batch, &s.Email, &s.Phone, &s.PhotoURL,
		&s.Selected, &s.CompanyName, &s.OfferLetterURL, &s.Package, &s.Role, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// mapStudentWriteError translates constraint violations of student writes
func mapStudentWriteError(err error) error {
	if dberrors.IsDuplicateConstraintError(err, dberrors.StudentsRollNumberKey) {
		return apperrors.ErrRollNumberExists
	}
	return err
}

// Create inserts a student and fills in its id and timestamps
func (r *StudentRepository) Create(ctx context.Context, s *models.Student) error {
	sql, args, err := r.sb.Insert("students").
		Columns("name", "roll_number", "branch", "year", "batch", "email", "phone", "photo_url",
			"selected", "company_name", "offer_letter_url", "package", "role").
		Values(s.Name, s.RollNumber, s.Branch, s.Year, s.Batch, s.Email, s.Phone, s.PhotoURL,
			s.Selected, s.CompanyName, s.OfferLetterURL, s.Package, s.Role).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if mapped := mapStudentWriteError(err); mapped != err {
			logger.Warn().Str("rollNumber", s.RollNumber).Msg("Duplicate roll number on create")
			return mapped
		}
		logger.Error().Err(err).Str("rollNumber", s.RollNumber).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).From("students").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	s, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("id", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return s, nil
}

// List returns students matching filter ordered by id
func (r *StudentRepository) List(ctx context.Context, filter StudentFilter) ([]*models.Student, error) {
	q := r.sb.Select(studentColumns...).From("students").OrderBy("id")
	if filter.Branch != nil {
		q = q.Where(squirrel.Eq{"branch": *filter.Branch})
	}
	if filter.Year != nil {
		q = q.Where(squirrel.Eq{"year": *filter.Year})
	}
	if filter.Batch != nil {
		q = q.Where(squirrel.Eq{"batch": *filter.Batch})
	}
	if filter.Selected != nil {
		q = q.Where(squirrel.Eq{"selected": *filter.Selected})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list students SQL")
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning student row")
			return nil, fmt.Errorf("error scanning student: %w", err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating students: %w", err)
	}
	return students, nil
}

// Update applies patch to the student and returns the stored row.
// An empty patch only reads the row.
func (r *StudentRepository) Update(ctx context.Context, id int64, patch models.StudentPatch) (*models.Student, error) {
	cols := patch.Columns()
	if len(cols) == 0 {
		return r.GetByID(ctx, id)
	}

	sql, args, err := r.sb.Update("students").
		SetMap(cols).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning(studentColumns)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update student SQL")
		return nil, fmt.Errorf("failed to build update student query: %w", err)
	}

	s, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrStudentNotFound
		}
		if mapped := mapStudentWriteError(err); mapped != err {
			return nil, mapped
		}
		logger.Error().Err(err).Int64("id", id).Msg("Error executing update student query")
		return nil, fmt.Errorf("error updating student: %w", err)
	}
	return s, nil
}

// Delete removes a student by ID
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("students").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete student SQL")
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("id", id).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// PlacementTotals aggregates the selected students in one query
func (r *StudentRepository) PlacementTotals(ctx context.Context) (*PlacementTotals, error) {
	sql, args, err := r.sb.Select(
		"COUNT(*)",
		"COUNT(DISTINCT NULLIF(TRIM(company_name), ''))",
		"COALESCE(AVG(package), 0)::float8",
		"COALESCE(MAX(package), 0)",
	).From("students").Where(squirrel.Eq{"selected": true}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building placement totals SQL")
		return nil, fmt.Errorf("failed to build placement totals query: %w", err)
	}

	var t PlacementTotals
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&t.Placed, &t.Companies, &t.Average, &t.Highest); err != nil {
		logger.Error().Err(err).Msg("Error executing placement totals query")
		return nil, fmt.Errorf("error aggregating placements: %w", err)
	}
	return &t, nil
}

// RecentPlacements returns the most recently updated selected students
func (r *StudentRepository) RecentPlacements(ctx context.Context, limit int) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).From("students").
		Where(squirrel.Eq{"selected": true}).
		OrderBy("updated_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building recent placements SQL")
		return nil, fmt.Errorf("failed to build recent placements query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing recent placements query")
		return nil, fmt.Errorf("error listing recent placements: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student: %w", err)
		}
		students = append(students, s)
	}
	return students, rows.Err()
}
