package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdmins struct {
	created  bool
	err      error
	username string
	password string
}

func (f *fakeAdmins) EnsureAdmin(_ context.Context, username, password string) (bool, error) {
	f.username, f.password = username, password
	return f.created, f.err
}

func TestCreateDefaultData(t *testing.T) {
	admins := &fakeAdmins{created: true}
	err := CreateDefaultData(context.Background(), admins, "tpo_admin", "admin123", zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "tpo_admin", admins.username)
	assert.Equal(t, "admin123", admins.password)

	// Existing account is not an error
	admins = &fakeAdmins{created: false}
	require.NoError(t, CreateDefaultData(context.Background(), admins, "tpo_admin", "x", zerolog.Nop()))
}

func TestCreateDefaultData_Error(t *testing.T) {
	admins := &fakeAdmins{err: errors.New("db down")}
	err := CreateDefaultData(context.Background(), admins, "tpo_admin", "x", zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}
