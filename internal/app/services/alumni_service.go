package services

import (
	"context"
	"strconv"

	"github.com/yigit/tpoportal/internal/app/models"
	"github.com/yigit/tpoportal/internal/pkg/grouping"
	"github.com/yigit/tpoportal/internal/pkg/logger"
)

// AlumniService defines the interface for alumni operations
type AlumniService interface {
	RegisterAlumni(ctx context.Context, alumni *models.Alumni) (*models.Alumni, error)
	GetAlumni(ctx context.Context, id int64) (*models.Alumni, error)
	ListAlumni(ctx context.Context) ([]*models.Alumni, error)
	GroupedAlumni(ctx context.Context) ([]grouping.Bucket[*models.Alumni], error)
	UpdateAlumni(ctx context.Context, id int64, patch models.AlumniPatch) (*models.Alumni, error)
	DeleteAlumni(ctx context.Context, id int64) error
}

type alumniServiceImpl struct {
	store AlumniStore
}

// NewAlumniService creates a new alumni service
func NewAlumniService(store AlumniStore) AlumniService {
	return &alumniServiceImpl{store: store}
}

func (s *alumniServiceImpl) RegisterAlumni(ctx context.Context, alumni *models.Alumni) (*models.Alumni, error) {
	if err := s.store.Create(ctx, alumni); err != nil {
		return nil, err
	}
	logger.Info().Int64("alumniID", alumni.ID).Int("passOutYear", alumni.PassOutYear).Msg("Alumni registered")
	return alumni, nil
}

func (s *alumniServiceImpl) GetAlumni(ctx context.Context, id int64) (*models.Alumni, error) {
	return s.store.GetByID(ctx, id)
}

func (s *alumniServiceImpl) ListAlumni(ctx context.Context) ([]*models.Alumni, error) {
	return s.store.List(ctx)
}

// GroupedAlumni groups alumni by pass out year, most recent year first
func (s *alumniServiceImpl) GroupedAlumni(ctx context.Context) ([]grouping.Bucket[*models.Alumni], error) {
	alumni, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	buckets := grouping.Nest(alumni, func(a *models.Alumni) string {
		if a.PassOutYear <= 0 {
			return grouping.Unknown
		}
		return strconv.Itoa(a.PassOutYear)
	})
	grouping.SortByKeyDesc(buckets)
	return buckets, nil
}

func (s *alumniServiceImpl) UpdateAlumni(ctx context.Context, id int64, patch models.AlumniPatch) (*models.Alumni, error) {
	return s.store.Update(ctx, id, patch)
}

func (s *alumniServiceImpl) DeleteAlumni(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}
