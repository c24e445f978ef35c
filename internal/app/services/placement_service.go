package services

import (
	"context"
	"math"

	"github.com/yigit/tpoportal/internal/app/models"
	"github.com/yigit/tpoportal/internal/app/models/dto"
)

// DefaultRecentPlacements is the size of the recent placements list
const DefaultRecentPlacements = 10

// PlacementService derives placement figures from selected students
type PlacementService interface {
	Stats(ctx context.Context) (*dto.PlacementStats, error)
	Recent(ctx context.Context, limit int) ([]dto.RecentPlacement, error)
}

type placementServiceImpl struct {
	store StudentStore
}

// NewPlacementService creates a new placement service
func NewPlacementService(store StudentStore) PlacementService {
	return &placementServiceImpl{store: store}
}

// Stats returns totals over selected students. The average package is
// rounded to two decimals.
func (s *placementServiceImpl) Stats(ctx context.Context) (*dto.PlacementStats, error) {
	totals, err := s.store.PlacementTotals(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.PlacementStats{
		StudentsPlaced:  totals.Placed,
		ActiveCompanies: totals.Companies,
		AvgPackage:      math.Round(totals.Average*100) / 100,
		HighestPackage:  totals.Highest,
	}, nil
}

// Recent lists the latest placements. limit <= 0 uses DefaultRecentPlacements.
func (s *placementServiceImpl) Recent(ctx context.Context, limit int) ([]dto.RecentPlacement, error) {
	if limit <= 0 || limit > 100 {
		limit = DefaultRecentPlacements
	}
	students, err := s.store.RecentPlacements(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RecentPlacement, 0, len(students))
	for _, st := range students {
		out = append(out, dto.RecentPlacement{
			StudentName: st.Name,
			Company:     models.StringValue(st.CompanyName),
			Role:        models.StringValue(st.Role),
			Package:     st.Package,
		})
	}
	return out, nil
}
