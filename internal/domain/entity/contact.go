// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"encoding/json"
	"time"

	"rolodex/internal/domain/patch"

	"github.com/google/uuid"
)

// Contact is the primary CRM entity. Every contact belongs to exactly one
// owner; no operation may read or mutate a contact across owners.
type Contact struct {
	ID               uuid.UUID       `json:"id"`       // Server-generated identifier.
	OwnerID          uuid.UUID       `json:"owner_id"` // The owning principal. Immutable after create.
	FullName         string          `json:"full_name"` // Required; never empty after trimming.
	Email            *string         `json:"email"`     // Optional; lowercased; unique per owner.
	Phone            *string         `json:"phone"`
	Company          *string         `json:"company"`
	JobTitle         *string         `json:"job_title"`
	Street           *string         `json:"street"`
	City             *string         `json:"city"`
	PostalCode       *string         `json:"postal_code"`
	Country          *string         `json:"country"`
	Website          *string         `json:"website"`       // Normalized to carry a scheme.
	ProfileImage     *string         `json:"profile_image"` // Opaque path, may be an internal upload path rather than a URL.
	Notes            *string         `json:"notes"`
	Tags             []string        `json:"tags"`           // Never nil in storage; absence is the empty list.
	SocialHandles    []string        `json:"social_handles"` // Ordered; never nil in storage.
	Source           *string         `json:"source"`
	LastContactedAt  *time.Time      `json:"last_contacted_at"`
	EnrichmentStatus *string         `json:"enrichment_status"`
	EnrichmentData   json.RawMessage `json:"enrichment_data"` // Opaque payload, stored as-is.
	CreatedAt        time.Time       `json:"created_at"`      // Immutable.
	UpdatedAt        time.Time       `json:"updated_at"`      // Advances on every successful mutation.
}

// ContactPatch is the write set for a save operation. Each field carries
// tri-state presence: absent fields are left untouched, explicit nulls clear
// the stored value (collections clear to the empty list).
type ContactPatch struct {
	FullName         patch.Field[string]
	Email            patch.Field[string]
	Phone            patch.Field[string]
	Company          patch.Field[string]
	JobTitle         patch.Field[string]
	Street           patch.Field[string]
	City             patch.Field[string]
	PostalCode       patch.Field[string]
	Country          patch.Field[string]
	Website          patch.Field[string]
	ProfileImage     patch.Field[string]
	Notes            patch.Field[string]
	Tags             patch.Field[[]string]
	SocialHandles    patch.Field[[]string]
	Source           patch.Field[string]
	LastContactedAt  patch.Time
	EnrichmentStatus patch.Field[string]
	EnrichmentData   patch.Field[json.RawMessage]
}

// ContactFilter restricts a contact listing. ContactIDs, when non-nil, is a
// pre-resolved candidate set (group membership); the owner filter always
// applies on top of it.
type ContactFilter struct {
	Search     string       // Case-insensitive substring over name and email.
	ContactIDs []uuid.UUID  // nil means no candidate-set restriction.
}
