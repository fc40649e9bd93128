package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"orgdir/domain/core/valueobjects"
	"orgdir/infrastructure/persistence/memory"
	"orgdir/pkg/auth"
	pkgerrors "orgdir/pkg/errors"
)

func newUserService() *UserService {
	return NewUserService(memory.NewUserRepository(), auth.NewBcryptHasher(4), nil, zap.NewNop())
}

func TestUserCreate(t *testing.T) {
	s := newUserService()
	ctx := context.Background()

	user, err := s.Create(ctx, "alice", "s3cretpass")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username().String())
	assert.NotEqual(t, "s3cretpass", user.PasswordHash())
}

func TestUserCreateDuplicateUsername(t *testing.T) {
	s := newUserService()
	ctx := context.Background()

	_, err := s.Create(ctx, "alice", "s3cretpass")
	require.NoError(t, err)

	_, err = s.Create(ctx, "alice", "another1pass")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeUserExists, pkgerrors.GetAppError(err).Code)
}

func TestUserCreatePasswordPolicy(t *testing.T) {
	s := newUserService()
	ctx := context.Background()

	tests := []struct {
		name     string
		password string
	}{
		{"too short", "a1bcdef"},
		{"no digit", "abcdefgh"},
		{"no letter", "12345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Create(ctx, "bob", tt.password)
			require.Error(t, err)
			assert.Equal(t, pkgerrors.CodePasswordInvalid, pkgerrors.GetAppError(err).Code)
		})
	}
}

func TestUserAuthenticate(t *testing.T) {
	s := newUserService()
	ctx := context.Background()

	created, err := s.Create(ctx, "alice", "s3cretpass")
	require.NoError(t, err)

	user, err := s.Authenticate(ctx, "alice", "s3cretpass")
	require.NoError(t, err)
	assert.True(t, user.ID().Equals(created.ID()))

	t.Run("wrong password", func(t *testing.T) {
		_, err := s.Authenticate(ctx, "alice", "wrongpass1")
		require.Error(t, err)
		assert.Equal(t, pkgerrors.CodeInvalidCredentials, pkgerrors.GetAppError(err).Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := s.Authenticate(ctx, "mallory", "s3cretpass")
		require.Error(t, err)
		// Same error for a missing user as for a wrong password
		assert.Equal(t, pkgerrors.CodeInvalidCredentials, pkgerrors.GetAppError(err).Code)
	})
}

func TestAPIKeyLifecycle(t *testing.T) {
	logger := zap.NewNop()
	userRepo := memory.NewUserRepository()
	users := NewUserService(userRepo, auth.NewBcryptHasher(4), nil, logger)
	keys := NewAPIKeyService(memory.NewAPIKeyRepository(), userRepo, logger)
	ctx := context.Background()

	user, err := users.Create(ctx, "alice", "s3cretpass")
	require.NoError(t, err)

	apiKey, err := keys.Create(ctx, user.ID())
	require.NoError(t, err)
	assert.NotEmpty(t, apiKey.Key())
	assert.True(t, apiKey.UserID().Equals(user.ID()))

	verified, err := keys.Verify(ctx, apiKey.Key())
	require.NoError(t, err)
	assert.NotNil(t, verified.LastUsed())

	banned, err := keys.Ban(ctx, apiKey.Key())
	require.NoError(t, err)
	assert.True(t, banned.IsBanned())

	_, err = keys.Verify(ctx, apiKey.Key())
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeAPIKeyBanned, pkgerrors.GetAppError(err).Code)

	t.Run("unknown key", func(t *testing.T) {
		_, err := keys.Verify(ctx, "unknown")
		require.Error(t, err)
		assert.Equal(t, pkgerrors.CodeAPIKeyNotFound, pkgerrors.GetAppError(err).Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := keys.Create(ctx, valueobjects.NewUserID())
		require.Error(t, err)
		assert.Equal(t, pkgerrors.CodeUserNotFound, pkgerrors.GetAppError(err).Code)
	})
}
