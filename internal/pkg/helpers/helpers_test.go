package helpers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/tpoportal/internal/pkg/apperrors"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 2*time.Hour, ParseDuration("2h", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("soon", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
}

func TestYearOf(t *testing.T) {
	assert.Equal(t, "2024", YearOf(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "", YearOf(time.Time{}))
}

func TestParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/attendance?eventId=12&bad=x", nil)
	c.Params = gin.Params{{Key: "id", Value: "42"}}

	id, err := ParseIDParam(c, "id")
	require.NoError(t, err)
	assert.EqualValues(t, 42, id)

	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	_, err = ParseIDParam(c, "id")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	eventID, err := OptionalQueryInt64(c, "eventId")
	require.NoError(t, err)
	require.NotNil(t, eventID)
	assert.EqualValues(t, 12, *eventID)

	missing, err := OptionalQueryInt64(c, "none")
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = OptionalQueryInt64(c, "bad")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
