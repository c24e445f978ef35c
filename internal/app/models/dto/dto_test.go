package dto

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/tpoportal/internal/app/models"
	"github.com/yigit/tpoportal/internal/pkg/apperrors"
	"github.com/yigit/tpoportal/internal/pkg/eventstatus"
)

func str(s string) *string { return &s }

func TestCreateEventRequestToModel(t *testing.T) {
	req := CreateEventRequest{Title: " Drive ", Description: "d", Company: "Acme", StartDate: "2024-01-01T09:00", EndDate: "2024-01-01"}
	e, err := req.ToModel()
	require.NoError(t, err)
	assert.Equal(t, "Drive", e.Title)
	assert.Equal(t, time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), e.StartDate)

	req.EndDate = "tomorrow"
	_, err = req.ToModel()
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "endDate must be a valid date", apperrors.Message(err))
}

func TestNewEventResponse(t *testing.T) {
	e := &models.Event{
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	resp := NewEventResponse(e, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, eventstatus.Ongoing, resp.Status)
}

func TestUpdateStudentRequestToPatch(t *testing.T) {
	req := UpdateStudentRequest{Name: str("  Ada "), Branch: str("  ")}
	p := req.ToPatch()
	assert.Equal(t, "Ada", *p.Name)
	assert.Equal(t, "", *p.Branch)
	assert.Nil(t, p.RollNumber)
}

func TestHandleValidationError(t *testing.T) {
	type body struct {
		Name  string `validate:"required"`
		Email string `validate:"required,email"`
	}
	err := validator.New().Struct(body{Email: "nope"})
	detail := HandleValidationError(err)
	assert.Equal(t, ErrorCodeValidationFailed, detail.Code)
	assert.Equal(t, "Name is required; Email must be a valid email address", detail.Message)

	detail = HandleValidationError(assert.AnError)
	assert.Equal(t, "Invalid request format", detail.Message)
}
