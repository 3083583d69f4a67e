package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the authenticated principal of the system. The CRM core only ever
// consumes its ID; the rest exists for the identity provider surface.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"` // Empty for accounts created through Google sign-in. Never serialized.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RefreshToken is one active session for a user. Tokens are stored hashed and
// rotated on every refresh.
type RefreshToken struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	TokenHash string    `json:"-"` // Only the hash is stored; it never leaves the service.
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Expired reports whether the session is past its expiry.
func (t *RefreshToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
