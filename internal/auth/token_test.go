package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 15)

	token, expiresAt, err := tm.GenerateToken("user-1", "a@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, 5*time.Second)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "a@example.com", claims.Email)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager("secret-a", 15)
	other := NewTokenManager("secret-b", 15)

	token, _, err := tm.GenerateToken("user-1", "a@example.com")
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("secret", 15)

	_, err := tm.ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestTokenTTLDefault(t *testing.T) {
	tm := NewTokenManager("secret", 0)

	_, expiresAt, err := tm.GenerateToken("user-1", "a@example.com")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), expiresAt, 5*time.Second)
}
