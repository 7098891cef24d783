package utils

import (
	"testing"

	"hirehub/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTestConfig(t *testing.T) {
	t.Helper()
	old := config.Conf
	config.Conf = &config.Config{
		Auth: config.AuthConfig{JWTSecret: "test-secret", TokenTTLHrs: 1},
	}
	t.Cleanup(func() { config.Conf = old })
}

func TestTokenRoundTrip(t *testing.T) {
	withTestConfig(t)

	token, err := GenerateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	withTestConfig(t)

	_, err := ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	withTestConfig(t)
	token, err := GenerateToken(7)
	require.NoError(t, err)

	config.Conf.Auth.JWTSecret = "different-secret"
	_, err = ParseToken(token)
	assert.Error(t, err)
}
