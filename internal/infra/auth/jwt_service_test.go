package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"rolodex/config"
)

func testJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	userID := uuid.New()

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	// Validate access token
	accessClaims, err := jwtService.ValidateAccessToken(accessToken)
	assert.NoError(t, err)
	assert.NotNil(t, accessClaims)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, "access", accessClaims.Type)

	// Validate refresh token
	refreshClaims, err := jwtService.ValidateRefreshToken(refreshToken)
	assert.NoError(t, err)
	assert.NotNil(t, refreshClaims)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Equal(t, "refresh", refreshClaims.Type)
}

func TestJWTService_TokenTypeMismatch(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)

	accessToken, refreshToken, err := jwtService.GenerateTokens(uuid.New())
	assert.NoError(t, err)

	// A refresh token must not validate as an access token and vice versa.
	claims, err := jwtService.ValidateAccessToken(refreshToken)
	assert.Error(t, err)
	assert.Nil(t, claims)

	claims, err = jwtService.ValidateRefreshToken(accessToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)

	claims, err := jwtService.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	jwtService, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)

	duration := jwtService.GetRefreshTokenDuration()
	assert.Equal(t, time.Hour*24*7, duration)
}
