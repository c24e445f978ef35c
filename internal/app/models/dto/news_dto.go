package dto

import (
	"strings"

	"github.com/yigit/tpoportal/internal/app/models"
)

// CreateNewsRequest carries a news item
type CreateNewsRequest struct {
	Title   string `json:"title" binding:"required,notblank" example:"Placement season opens"`
	Content string `json:"content" binding:"required,notblank"`
}

// ToModel converts the request into a News record
func (r *CreateNewsRequest) ToModel() *models.News {
	return &models.News{
		Title:   strings.TrimSpace(r.Title),
		Content: strings.TrimSpace(r.Content),
	}
}

// UpdateNewsRequest is a partial news update
type UpdateNewsRequest struct {
	Title   *string `json:"title" binding:"omitempty,notblank"`
	Content *string `json:"content" binding:"omitempty,notblank"`
}

// ToPatch converts the request into a NewsPatch
func (r *UpdateNewsRequest) ToPatch() models.NewsPatch {
	return models.NewsPatch{
		Title:   trimmedKeep(r.Title),
		Content: trimmedKeep(r.Content),
	}
}
