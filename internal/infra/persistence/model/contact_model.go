// Package model contains the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactModel mirrors the 'contacts' table. JSON-typed columns
// (tags, social_handles, enrichment_data) are stored as jsonb text and are
// never NULL; absence of a collection is the empty array.
//
// The composite unique index enforces per-owner email uniqueness. It is
// partial (WHERE email IS NOT NULL) so contacts without an email never
// collide; emails are lowercased before write, which makes the index
// effectively case-insensitive.
type ContactModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key"`
	OwnerID          uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_contacts_owner_email"`
	FullName         string    `gorm:"type:varchar(255);not null"`
	Email            *string   `gorm:"type:varchar(255);uniqueIndex:idx_contacts_owner_email,where:email IS NOT NULL"`
	Phone            *string   `gorm:"type:varchar(64)"`
	Company          *string   `gorm:"type:varchar(255)"`
	JobTitle         *string   `gorm:"type:varchar(255)"`
	Street           *string   `gorm:"type:varchar(255)"`
	City             *string   `gorm:"type:varchar(128)"`
	PostalCode       *string   `gorm:"type:varchar(32)"`
	Country          *string   `gorm:"type:varchar(128)"`
	Website          *string   `gorm:"type:varchar(512)"`
	ProfileImage     *string   `gorm:"type:text"`
	Notes            *string   `gorm:"type:text"`
	Tags             string    `gorm:"type:jsonb;not null;default:'[]'"`
	SocialHandles    string    `gorm:"type:jsonb;not null;default:'[]';column:social_handles"`
	Source           *string   `gorm:"type:varchar(128)"`
	LastContactedAt  *time.Time
	EnrichmentStatus *string `gorm:"type:varchar(64)"`
	EnrichmentData   *string `gorm:"type:jsonb"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContactModel) TableName() string {
	return "contacts"
}
