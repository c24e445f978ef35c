package dto

import (
	"strings"

	"github.com/yigit/tpoportal/internal/app/models"
)

// CreateNotificationRequest carries a hero or important notification.
// The category comes from the route.
type CreateNotificationRequest struct {
	Title string  `json:"title" binding:"required,notblank" example:"Placement Registration Open"`
	Type  string  `json:"type" binding:"required,notblank" example:"URGENT"`
	Link  *string `json:"link" binding:"omitempty,link" example:"/placements/register"`
	Icon  *string `json:"icon" example:"briefcase"`
}

// ToModel converts the request into a Notification of the given category
func (r *CreateNotificationRequest) ToModel(category models.NotificationCategory) *models.Notification {
	return &models.Notification{
		Category: category,
		Title:    strings.TrimSpace(r.Title),
		Type:     strings.ToUpper(strings.TrimSpace(r.Type)),
		Link:     trimmed(r.Link),
		Icon:     trimmed(r.Icon),
	}
}

// UpdateNotificationRequest is a partial notification update
type UpdateNotificationRequest struct {
	Title *string `json:"title" binding:"omitempty,notblank"`
	Type  *string `json:"type" binding:"omitempty,notblank"`
	Link  *string `json:"link" binding:"omitempty,link"`
	Icon  *string `json:"icon"`
}

// ToPatch converts the request into a NotificationPatch
func (r *UpdateNotificationRequest) ToPatch() models.NotificationPatch {
	p := models.NotificationPatch{
		Title: trimmedKeep(r.Title),
		Link:  trimmedKeep(r.Link),
		Icon:  trimmedKeep(r.Icon),
	}
	if r.Type != nil {
		t := strings.ToUpper(strings.TrimSpace(*r.Type))
		p.Type = &t
	}
	return p
}
