package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Name         string    `gorm:"type:varchar(100)"`
	PasswordHash string    `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	RefreshTokens []RefreshTokenModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// RefreshTokenModel mirrors the 'refresh_tokens' table. Tokens are stored as
// SHA-256 hashes, never in the clear.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:varchar(128);uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
