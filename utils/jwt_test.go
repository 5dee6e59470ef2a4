package utils

import (
	"testing"
	"time"

	"hotelify/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	config.AppConfig.JWTSecret = "test-jwt-secret"

	token, err := GenerateToken("user-42", RoleUser, time.Hour)
	require.NoError(t, err)

	subject, role, err := ExtractClaimsFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", subject)
	assert.Equal(t, RoleUser, role)
}

func TestTokenRoleClaim(t *testing.T) {
	config.AppConfig.JWTSecret = "test-jwt-secret"

	token, err := GenerateToken("admin-1", RoleAdmin, time.Hour)
	require.NoError(t, err)

	_, role, err := ExtractClaimsFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)
}

func TestExpiredTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-jwt-secret"

	token, err := GenerateToken("user-42", RoleUser, -time.Minute)
	require.NoError(t, err)

	_, _, err = ExtractClaimsFromToken(token)
	assert.Error(t, err)
}

func TestTokenSignedWithOtherSecretRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-jwt-secret"
	token, err := GenerateToken("user-42", RoleUser, time.Hour)
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "rotated-secret"
	_, _, err = ExtractClaimsFromToken(token)
	assert.Error(t, err)
}
