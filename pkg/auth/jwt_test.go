package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenManager(t *testing.T, secret string) *TokenManager {
	t.Helper()
	manager, err := NewTokenManager(JWTConfig{
		SecretKey: secret,
		Issuer:    "orgdir",
		Audience:  "orgdir-api",
	})
	require.NoError(t, err)
	return manager
}

func TestTokenManagerRoundTrip(t *testing.T) {
	manager := newTestTokenManager(t, "test-secret")

	token, err := manager.Issue("user-123", "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "alice", claims.Username)
}

func TestTokenManagerRejectsWrongSecret(t *testing.T) {
	issuer := newTestTokenManager(t, "first-secret")
	verifier := newTestTokenManager(t, "second-secret")

	token, err := issuer.Issue("user-123", "alice")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestTokenManagerRejectsExpired(t *testing.T) {
	manager, err := NewTokenManager(JWTConfig{
		SecretKey: "test-secret",
		Issuer:    "orgdir",
		Audience:  "orgdir-api",
		TokenTTL:  -time.Minute,
	})
	require.NoError(t, err)

	token, err := manager.Issue("user-123", "alice")
	require.NoError(t, err)

	_, err = manager.Validate(token)
	assert.Error(t, err)
}

func TestTokenManagerRequiresSecret(t *testing.T) {
	_, err := NewTokenManager(JWTConfig{})
	assert.Error(t, err)
}

func TestTokenManagerGarbageInput(t *testing.T) {
	manager := newTestTokenManager(t, "test-secret")

	_, err := manager.Validate("not-a-token")
	assert.Error(t, err)
}
