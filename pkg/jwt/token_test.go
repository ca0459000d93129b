package jwtPkg

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerifyRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, expiredAt, err := Sign(map[string]interface{}{"id": "42"}, time.Hour)
	require.NoError(t, err)
	assert.Greater(t, expiredAt, time.Now().Unix())

	parsed, err := VerifyToken(token, SecretEnvKey)
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "42", claims["id"])
}

func TestVerifyTokenFailures(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, _, err := Sign(map[string]interface{}{"id": "42"}, time.Hour)
	require.NoError(t, err)

	t.Run("empty token", func(t *testing.T) {
		_, err := VerifyToken("", SecretEnvKey)
		assert.Error(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := VerifyToken("garbage", SecretEnvKey)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		expired, _, err := Sign(map[string]interface{}{"id": "42"}, -time.Hour)
		require.NoError(t, err)

		_, err = VerifyToken(expired, SecretEnvKey)
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "a-different-secret")

		_, err := VerifyToken(token, SecretEnvKey)
		assert.Error(t, err)
	})
}

func TestSignWithoutSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, _, err := Sign(map[string]interface{}{"id": "42"}, time.Hour)
	assert.Error(t, err)
}
