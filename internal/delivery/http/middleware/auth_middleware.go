// Package middleware contains the HTTP middleware chain: request identity,
// authentication, rate limiting, and error translation.
package middleware

import (
	"strings"

	deliverycontext "rolodex/internal/delivery/context"
	domainerrors "rolodex/internal/domain/errors"
	"rolodex/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// KeyUserID is the echo context key carrying the authenticated user's ID.
const KeyUserID = "userID"

// AuthMiddleware validates JWT access tokens and attaches the principal to
// the request. Absent, malformed, and expired tokens are deliberately
// indistinguishable: every failure surfaces as the same UNAUTHENTICATED
// outcome.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrUnauthenticated
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthenticated
		}

		// Attach the principal for handlers and the usecase layer.
		c.Set(KeyUserID, claims.UserID)
		ctx := deliverycontext.WithUserID(c.Request().Context(), claims.UserID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// PrincipalID extracts the authenticated user's ID from the echo context.
// Routes behind Authenticate always carry one.
func PrincipalID(c echo.Context) (uuid.UUID, error) {
	if id, ok := c.Get(KeyUserID).(uuid.UUID); ok {
		return id, nil
	}

	return uuid.Nil, domainerrors.ErrUnauthenticated
}
