package dto

import (
	"strings"
	"time"

	"github.com/yigit/tpoportal/internal/app/models"
	"github.com/yigit/tpoportal/internal/pkg/apperrors"
	"github.com/yigit/tpoportal/internal/pkg/csvimport"
	"github.com/yigit/tpoportal/internal/pkg/eventstatus"
	"github.com/yigit/tpoportal/internal/pkg/grouping"
)

// CreateEventRequest carries a new event. Dates accept RFC3339, a
// datetime-local value ("2006-01-02T15:04") or a plain date.
type CreateEventRequest struct {
	Title            string  `json:"title" binding:"required,notblank" example:"Campus Drive"`
	Description      string  `json:"description" binding:"required,notblank" example:"On-campus hiring for final year students"`
	Company          string  `json:"company" binding:"required,notblank" example:"Acme Corp"`
	StartDate        string  `json:"startDate" binding:"required" example:"2025-01-10T09:00:00Z"`
	EndDate          string  `json:"endDate" binding:"required" example:"2025-01-10T17:00:00Z"`
	NotificationLink *string `json:"notificationLink" binding:"omitempty,link"`
	AttachmentURL    *string `json:"attachmentUrl" binding:"omitempty,link"`
}

// ToModel parses the dates and builds the Event
func (r *CreateEventRequest) ToModel() (*models.Event, error) {
	start, err := parseDateField("startDate", r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDateField("endDate", r.EndDate)
	if err != nil {
		return nil, err
	}
	return &models.Event{
		Title:            strings.TrimSpace(r.Title),
		Description:      strings.TrimSpace(r.Description),
		Company:          strings.TrimSpace(r.Company),
		StartDate:        start,
		EndDate:          end,
		NotificationLink: trimmed(r.NotificationLink),
		AttachmentURL:    trimmed(r.AttachmentURL),
	}, nil
}

// UpdateEventRequest is a partial event update
type UpdateEventRequest struct {
	Title            *string `json:"title" binding:"omitempty,notblank"`
	Description      *string `json:"description" binding:"omitempty,notblank"`
	Company          *string `json:"company" binding:"omitempty,notblank"`
	StartDate        *string `json:"startDate"`
	EndDate          *string `json:"endDate"`
	NotificationLink *string `json:"notificationLink" binding:"omitempty,link"`
	AttachmentURL    *string `json:"attachmentUrl" binding:"omitempty,link"`
}

// ToPatch parses the dates that were supplied and builds the EventPatch
func (r *UpdateEventRequest) ToPatch() (models.EventPatch, error) {
	patch := models.EventPatch{
		Title:            trimmedKeep(r.Title),
		Description:      trimmedKeep(r.Description),
		Company:          trimmedKeep(r.Company),
		NotificationLink: trimmedKeep(r.NotificationLink),
		AttachmentURL:    trimmedKeep(r.AttachmentURL),
	}
	if r.StartDate != nil {
		t, err := parseDateField("startDate", *r.StartDate)
		if err != nil {
			return patch, err
		}
		patch.StartDate = &t
	}
	if r.EndDate != nil {
		t, err := parseDateField("endDate", *r.EndDate)
		if err != nil {
			return patch, err
		}
		patch.EndDate = &t
	}
	return patch, nil
}

func parseDateField(field, value string) (time.Time, error) {
	t, ok := csvimport.ParseDate(value)
	if !ok {
		return time.Time{}, apperrors.NewValidationError(field+" must be a valid date", field)
	}
	return t, nil
}

// EventResponse is an event with its status derived at read time
type EventResponse struct {
	models.Event
	Status eventstatus.Status `json:"status" example:"upcoming" enums:"upcoming,ongoing,past"`
}

// NewEventResponse classifies e against now
func NewEventResponse(e *models.Event, now time.Time) EventResponse {
	return EventResponse{
		Event:  *e,
		Status: eventstatus.Classify(now, e.StartDate, e.EndDate),
	}
}

// EventSection holds the events of one status grouped by company then year
type EventSection struct {
	Status    eventstatus.Status                `json:"status"`
	Count     int                               `json:"count"`
	Companies []grouping.Bucket[EventResponse] `json:"companies"`
}
