package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/tpoportal/internal/app/models"
	"github.com/yigit/tpoportal/internal/app/repositories"
	"github.com/yigit/tpoportal/internal/pkg/apperrors"
)

type fakeNewsStore struct {
	nextID int64
	rows   []*models.News
}

func (f *fakeNewsStore) Create(_ context.Context, n *models.News) error {
	f.nextID++
	n.ID = f.nextID
	n.CreatedAt, n.UpdatedAt = fixedNow, fixedNow
	cp := *n
	f.rows = append(f.rows, &cp)
	return nil
}

func (f *fakeNewsStore) List(_ context.Context) ([]*models.News, error) {
	return f.rows, nil
}

func (f *fakeNewsStore) Update(_ context.Context, id int64, patch models.NewsPatch) (*models.News, error) {
	for _, r := range f.rows {
		if r.ID == id {
			if patch.Title != nil {
				r.Title = *patch.Title
			}
			if patch.Content != nil {
				r.Content = *patch.Content
			}
			return r, nil
		}
	}
	return nil, repositories.ErrNewsNotFound
}

func (f *fakeNewsStore) Delete(_ context.Context, id int64) error {
	for i, r := range f.rows {
		if r.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNewsNotFound
}

func TestNewsService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewNewsService(&fakeNewsStore{})

	created, err := svc.CreateNews(ctx, &models.News{Title: "Drive", Content: "Acme visits on Monday"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	title := "Drive postponed"
	updated, err := svc.UpdateNews(ctx, created.ID, models.NewsPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Drive postponed", updated.Title)
	assert.Equal(t, "Acme visits on Monday", updated.Content)

	list, err := svc.ListNews(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.DeleteNews(ctx, created.ID))
	err = svc.DeleteNews(ctx, created.ID)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}
