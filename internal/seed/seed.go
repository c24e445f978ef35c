package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	appServices "github.com/yigit/tpoportal/internal/app/services"
)

// AdminCreator is the part of the auth service the seeder needs
type AdminCreator interface {
	EnsureAdmin(ctx context.Context, username, password string) (bool, error)
}

var _ AdminCreator = (appServices.AuthService)(nil)

// CreateDefaultData makes sure the TPO admin account exists. Running it on
// every start is safe: an existing account is left untouched.
func CreateDefaultData(ctx context.Context, admins AdminCreator, username, password string, lgr zerolog.Logger) error {
	lgr.Info().Str("username", username).Msg("Checking default admin account...")

	created, err := admins.EnsureAdmin(ctx, username, password)
	if err != nil {
		lgr.Error().Err(err).Str("username", username).Msg("Error creating default admin")
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if created {
		lgr.Info().Str("username", username).Msg("Default admin account created")
	} else {
		lgr.Debug().Str("username", username).Msg("Default admin account already exists")
	}
	return nil
}
