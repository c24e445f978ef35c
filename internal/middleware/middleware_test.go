package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/tpoportal/internal/app/models"
	"github.com/yigit/tpoportal/internal/app/models/dto"
	"github.com/yigit/tpoportal/internal/pkg/apperrors"
	"github.com/yigit/tpoportal/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    dto.ErrorCode
		message string
	}{
		{"validation", apperrors.NewValidationError("name is required", "name"), http.StatusBadRequest, dto.ErrorCodeValidationFailed, "name is required"},
		{"bad request", apperrors.ErrUnsupportedImportKind, http.StatusBadRequest, dto.ErrorCodeBadRequest, "Unsupported import type"},
		{"conflict", apperrors.ErrRollNumberExists, http.StatusConflict, dto.ErrorCodeConflict, "Roll number already exists"},
		{"not found", apperrors.ErrStudentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Student not found"},
		{"credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid username or password"},
		{"wrapped upstream", errors.New("connection refused"), http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			resp := decodeError(t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.Equal(t, tt.message, resp.Error.Message)
		})
	}
}

type fakeRevocations map[string]bool

func (f fakeRevocations) IsRevoked(_ context.Context, id string) (bool, error) {
	return f[id], nil
}

func newAuthRouter(t *testing.T, revoked fakeRevocations) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "tpo-portal",
	})
	m := NewAuthMiddleware(jwtService, revoked)

	r := gin.New()
	r.GET("/private", m.JWTAuth(), m.RoleRequired(string(models.RoleTPO)), func(c *gin.Context) {
		id, _ := CurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"userId": id})
	})
	return r, jwtService
}

func TestJWTAuth(t *testing.T) {
	revoked := fakeRevocations{}
	r, jwtService := newAuthRouter(t, revoked)

	admin := &models.User{ID: 7, Username: "tpo_admin", Role: models.RoleTPO}
	issued, err := jwtService.GenerateToken(admin)
	require.NoError(t, err)

	outsider := &models.User{ID: 8, Username: "viewer", Role: "viewer"}
	other, err := jwtService.GenerateToken(outsider)
	require.NoError(t, err)

	do := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("missing header", func(t *testing.T) {
		w := do("")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, dto.ErrorCodeUnauthorized, decodeError(t, w).Error.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := do("Bearer not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, dto.ErrorCodeInvalidToken, decodeError(t, w).Error.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		w := do("Bearer " + issued.Token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"userId":7}`, w.Body.String())
	})

	t.Run("wrong role", func(t *testing.T) {
		w := do("Bearer " + other.Token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("revoked token", func(t *testing.T) {
		revoked[issued.ID] = true
		w := do("Bearer " + issued.Token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, dto.ErrorCodeInvalidToken, decodeError(t, w).Error.Code)
	})
}

func TestTokenBucket(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tb := NewTokenBucket(2, 60)
	tb.now = func() time.Time { return now }
	ctx := context.Background()

	ok, _ := tb.Allow(ctx, "a")
	assert.True(t, ok)
	ok, _ = tb.Allow(ctx, "a")
	assert.True(t, ok)
	ok, _ = tb.Allow(ctx, "a")
	assert.False(t, ok, "burst exhausted")

	ok, _ = tb.Allow(ctx, "b")
	assert.True(t, ok, "keys are independent")

	now = now.Add(time.Second)
	ok, _ = tb.Allow(ctx, "a")
	assert.True(t, ok, "one token refilled after a second at 60/min")
}

type stubCounter struct {
	hits map[string]int
	err  error
}

func (s *stubCounter) Allow(_ context.Context, key string, limit int, _ time.Duration) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	s.hits[key]++
	return s.hits[key] <= limit, nil
}

func TestRateLimit(t *testing.T) {
	counter := &stubCounter{hits: map[string]int{}}
	r := gin.New()
	r.POST("/api/alumni", RateLimit(NewCounterLimiter(counter, 1)), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	send := func() int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/alumni", nil))
		return w.Code
	}

	assert.Equal(t, http.StatusCreated, send())
	assert.Equal(t, http.StatusTooManyRequests, send())

	counter.err = errors.New("redis down")
	assert.Equal(t, http.StatusCreated, send(), "limiter failure lets requests through")
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeaders())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
}
