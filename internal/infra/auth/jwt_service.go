// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"rolodex/config"
	"rolodex/internal/domain/service"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
}

// jwtClaims is the wire-level claim set. The token type is embedded so a
// refresh token can never be replayed as an access token.
type jwtClaims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     time.Minute * 15,
		refreshTTL:    time.Hour * 24 * 7,
	}, nil
}

// GenerateTokens creates a new access token and refresh token for a given user.
func (s *jwtService) GenerateTokens(userID uuid.UUID) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.generateToken(userID, s.accessTTL, s.accessSecret, tokenTypeAccess)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.generateToken(userID, s.refreshTTL, s.refreshSecret, tokenTypeRefresh)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ValidateAccessToken checks the validity of an access token string.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	return s.validateToken(tokenString, s.accessSecret, tokenTypeAccess)
}

// ValidateRefreshToken checks the validity of a refresh token string.
func (s *jwtService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	return s.validateToken(tokenString, s.refreshSecret, tokenTypeRefresh)
}

// GetRefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// validateToken parses and verifies a token string against a secret, then
// checks that the embedded type matches the expected one.
func (s *jwtService) validateToken(tokenString, secret, expectedType string) (*service.Claims, error) {
	var claims jwtClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if claims.Type != expectedType {
		return nil, jwt.ErrTokenInvalidClaims
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, jwt.ErrTokenInvalidSubject
	}

	return &service.Claims{
		UserID:           userID,
		Type:             claims.Type,
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(userID uuid.UUID, ttl time.Duration, secret, tokenType string) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}
