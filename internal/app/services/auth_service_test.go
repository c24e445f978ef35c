package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/tpoportal/internal/app/models"
	"github.com/yigit/tpoportal/internal/app/models/dto"
	"github.com/yigit/tpoportal/internal/pkg/apperrors"
	"github.com/yigit/tpoportal/internal/pkg/auth"
)

func newAuthFixture(t *testing.T) (AuthService, *fakeUserStore, *fakeDenylist, *auth.JWTService) {
	t.Helper()
	users := &fakeUserStore{}
	denylist := &fakeDenylist{}
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "secret", TokenExp: time.Hour, TokenIssuer: "tpo-portal"})
	svc := NewAuthService(users, denylist, jwtService)

	created, err := svc.EnsureAdmin(context.Background(), "tpo_admin", "admin123")
	require.NoError(t, err)
	require.True(t, created)
	return svc, users, denylist, jwtService
}

func TestEnsureAdmin_Idempotent(t *testing.T) {
	svc, users, _, _ := newAuthFixture(t)

	created, err := svc.EnsureAdmin(context.Background(), "tpo_admin", "other")
	require.NoError(t, err)
	assert.False(t, created)
	require.Len(t, users.users, 1)
	assert.Equal(t, models.RoleTPO, users.users[0].Role)
	assert.NotEqual(t, "admin123", users.users[0].Password)
}

func TestLogin(t *testing.T) {
	svc, _, _, jwtService := newAuthFixture(t)
	ctx := context.Background()

	resp, err := svc.Login(ctx, &dto.LoginRequest{Username: " tpo_admin ", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, "tpo_admin", resp.User.Username)
	assert.Equal(t, "tpo", resp.User.Role)

	claims, err := jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)

	_, err = svc.Login(ctx, &dto.LoginRequest{Username: "tpo_admin", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &dto.LoginRequest{Username: "nobody", Password: "admin123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogout(t *testing.T) {
	svc, _, denylist, _ := newAuthFixture(t)
	ctx := context.Background()

	exp := time.Now().Add(time.Hour)
	require.NoError(t, svc.Logout(ctx, "token-1", exp))
	revoked, _ := denylist.IsRevoked(ctx, "token-1")
	assert.True(t, revoked)

	assert.ErrorIs(t, svc.Logout(ctx, "", exp), apperrors.ErrTokenInvalid)
}

func TestGetUser(t *testing.T) {
	svc, users, _, _ := newAuthFixture(t)

	u, err := svc.GetUser(context.Background(), users.users[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "tpo_admin", u.Username)

	_, err = svc.GetUser(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
