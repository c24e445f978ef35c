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

var alumniColumns = []string{
	"id", "name", "roll_number", "pass_out_year", "higher_education_college", "college_roll_number",
	"address", "contact_number", "email", "created_at",
}

// ErrAlumniNotFound is returned when no alumni record has the requested id
var ErrAlumniNotFound = apperrors.NewResourceNotFoundError("Alumni not found")

// AlumniRepository handles database operations for alumni
type AlumniRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAlumniRepository creates a new AlumniRepository
func NewAlumniRepository(db *pgxpool.Pool, sb squirrel.StatementBuilderType) *AlumniRepository {
	return &AlumniRepository{db: db, sb: sb}
}

func scanAlumni(row pgx.Row) (*models.Alumni, error) {
	var a models.Alumni
	if err := row.Scan(&a.ID, &a.Name, &a.RollNumber, &a.PassOutYear, &a.HigherEducationCollege,
		&a.CollegeRollNumber, &a.Address, &a.ContactNumber, &a.Email, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts an alumni record
func (r *AlumniRepository) Create(ctx context.Context, a *models.Alumni) error {
	sql, args, err := r.sb.Insert("alumni").
		Columns("name", "roll_number", "pass_out_year", "higher_education_college", "college_roll_number",
			"address", "contact_number", "email").
		Values(a.Name, a.RollNumber, a.PassOutYear, a.HigherEducationCollege, a.CollegeRollNumber,
			a.Address, a.ContactNumber, a.Email).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create alumni SQL")
		return fmt.Errorf("failed to build create alumni query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&a.ID, &a.CreatedAt); err != nil {
		logger.Error().Err(err).Str("rollNumber", a.RollNumber).Msg("Error executing create alumni query")
		return fmt.Errorf("error creating alumni: %w", err)
	}
	return nil
}

// GetByID retrieves an alumni record by ID
func (r *AlumniRepository) GetByID(ctx context.Context, id int64) (*models.Alumni, error) {
	sql, args, err := r.sb.Select(alumniColumns...).From("alumni").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get alumni query: %w", err)
	}

	a, err := scanAlumni(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, ErrAlumniNotFound
		}
		logger.Error().Err(err).Int64("id", id).Msg("Error scanning alumni row")
		return nil, fmt.Errorf("error retrieving alumni: %w", err)
	}
	return a, nil
}

// List returns all alumni in registration order
func (r *AlumniRepository) List(ctx context.Context) ([]*models.Alumni, error) {
	sql, args, err := r.sb.Select(alumniColumns...).From("alumni").OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list alumni query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list alumni query")
		return nil, fmt.Errorf("error listing alumni: %w", err)
	}
	defer rows.Close()

	alumni := []*models.Alumni{}
	for rows.Next() {
		a, err := scanAlumni(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning alumni: %w", err)
		}
		alumni = append(alumni, a)
	}
	return alumni, rows.Err()
}

// Update applies patch and returns the stored row
func (r *AlumniRepository) Update(ctx context.Context, id int64, patch models.AlumniPatch) (*models.Alumni, error) {
	cols := patch.Columns()
	if len(cols) == 0 {
		return r.GetByID(ctx, id)
	}

	sql, args, err := r.sb.Update("alumni").
		SetMap(cols).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning(alumniColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update alumni query: %w", err)
	}

	a, err := scanAlumni(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, ErrAlumniNotFound
		}
		logger.Error().Err(err).Int64("id", id).Msg("Error executing update alumni query")
		return nil, fmt.Errorf("error updating alumni: %w", err)
	}
	return a, nil
}

// Delete removes an alumni record by ID
func (r *AlumniRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("alumni").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete alumni query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("id", id).Msg("Error executing delete alumni query")
		return fmt.Errorf("error deleting alumni: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrAlumniNotFound
	}
	return nil
}
