package services

import (
	"context"

	"github.com/yigit/tpoportal/internal/app/models"
)

// NewsService defines the interface for news operations
type NewsService interface {
	CreateNews(ctx context.Context, news *models.News) (*models.News, error)
	ListNews(ctx context.Context) ([]*models.News, error)
	UpdateNews(ctx context.Context, id int64, patch models.NewsPatch) (*models.News, error)
	DeleteNews(ctx context.Context, id int64) error
}

type newsServiceImpl struct {
	store NewsStore
}

// NewNewsService creates a new news service
func NewNewsService(store NewsStore) NewsService {
	return &newsServiceImpl{store: store}
}

func (s *newsServiceImpl) CreateNews(ctx context.Context, news *models.News) (*models.News, error) {
	if err := s.store.Create(ctx, news); err != nil {
		return nil, err
	}
	return news, nil
}

func (s *newsServiceImpl) ListNews(ctx context.Context) ([]*models.News, error) {
	return s.store.List(ctx)
}

func (s *newsServiceImpl) UpdateNews(ctx context.Context, id int64, patch models.NewsPatch) (*models.News, error) {
	return s.store.Update(ctx, id, patch)
}

func (s *newsServiceImpl) DeleteNews(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}
