package repository

import (
	"context"

	"rolodex/internal/domain/entity"
	"rolodex/internal/errors"

	"github.com/google/uuid"
)

// ErrRefreshTokenNotFound is returned when no stored session matches a token hash.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository persists active user sessions.
type RefreshTokenRepository interface {
	// Create stores a new session token (hashed).
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByTokenHash retrieves a session by its token hash.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteByID removes a single session.
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// DeleteByTokenHash removes the session matching the hash, if any.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// CountByUser returns the number of active sessions for a user.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// DeleteOldestByUser removes the user's oldest sessions until at most
	// keep remain. Used to enforce the per-user session cap.
	DeleteOldestByUser(ctx context.Context, userID uuid.UUID, keep int) error
}
