package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/yigit/tpoportal/internal/app/models"
	"github.com/yigit/tpoportal/internal/app/models/dto"
	"github.com/yigit/tpoportal/internal/pkg/apperrors"
	"github.com/yigit/tpoportal/internal/pkg/auth"
	"github.com/yigit/tpoportal/internal/pkg/logger"
)

// AuthService handles admin authentication
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetUser(ctx context.Context, userID int64) (*dto.UserResponse, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	// EnsureAdmin creates the admin user when no user with that name exists
	EnsureAdmin(ctx context.Context, username, password string) (bool, error)
}

type authServiceImpl struct {
	users      UserStore
	denylist   TokenDenylist
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(users UserStore, denylist TokenDenylist, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{
		users:      users,
		denylist:   denylist,
		jwtService: jwtService,
	}
}

func toUserResponse(u *models.User) *dto.UserResponse {
	return &dto.UserResponse{ID: u.ID, Username: u.Username, Role: string(u.Role)}
}

// Login checks the credentials and issues a session token. Unknown users and
// wrong passwords produce the same error.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(req.Username)
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			logger.Warn().Str("username", username).Msg("Login attempt for unknown user")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		logger.Warn().Str("username", username).Msg("Login attempt with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	issued, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("userID", user.ID).Msg("User logged in")
	return &dto.LoginResponse{
		Token:     issued.Token,
		TokenType: "Bearer",
		ExpiresAt: issued.ExpiresAt,
		User:      toUserResponse(user),
	}, nil
}

func (s *authServiceImpl) GetUser(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Logout denylists the token until it would have expired
func (s *authServiceImpl) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return apperrors.ErrTokenInvalid
	}
	if err := s.denylist.Revoke(ctx, tokenID, expiresAt); err != nil {
		return err
	}
	logger.Info().Str("tokenID", tokenID).Msg("Token revoked")
	return nil
}

func (s *authServiceImpl) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	_, err := s.users.GetByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		return false, err
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return false, err
	}
	user := &models.User{Username: username, Password: hashed, Role: models.RoleTPO}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return false, nil
		}
		return false, err
	}
	logger.Info().Str("username", username).Msg("Default admin user created")
	return true, nil
}
