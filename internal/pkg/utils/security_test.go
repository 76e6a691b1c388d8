package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("secret124", hash))
}

func TestJWTRoundtrip(t *testing.T) {
	const secret = "unit-test-secret"

	t.Run("valid token carries the session id", func(t *testing.T) {
		token, err := GenerateJWT("session-abc", secret, time.Hour)
		require.NoError(t, err)

		sessionID, err := ParseJWT(token, secret)
		require.NoError(t, err)
		assert.Equal(t, "session-abc", sessionID)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		token, err := GenerateJWT("session-abc", secret, time.Hour)
		require.NoError(t, err)

		_, err = ParseJWT(token, "another-secret")
		assert.Error(t, err)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		token, err := GenerateJWT("session-abc", secret, -time.Minute)
		require.NoError(t, err)

		_, err = ParseJWT(token, secret)
		assert.Error(t, err)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := ParseJWT("not-a-token", secret)
		assert.Error(t, err)
	})
}
