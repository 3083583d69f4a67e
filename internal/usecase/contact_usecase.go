// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"encoding/json"

	"rolodex/internal/domain/entity"
	"rolodex/internal/domain/patch"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SaveContactInput is a sparse write set. A nil ID creates a new contact; a
// non-nil ID updates an existing one. Fields left absent in the request body
// stay absent here and are never written.
type SaveContactInput struct {
	ID               *uuid.UUID                   `json:"id"`
	FullName         patch.Field[string]          `json:"full_name"`
	Email            patch.Field[string]          `json:"email"`
	Phone            patch.Field[string]          `json:"phone"`
	Company          patch.Field[string]          `json:"company"`
	JobTitle         patch.Field[string]          `json:"job_title"`
	Street           patch.Field[string]          `json:"street"`
	City             patch.Field[string]          `json:"city"`
	PostalCode       patch.Field[string]          `json:"postal_code"`
	Country          patch.Field[string]          `json:"country"`
	Website          patch.Field[string]          `json:"website"`
	ProfileImage     patch.Field[string]          `json:"profile_image"`
	Notes            patch.Field[string]          `json:"notes"`
	Tags             patch.Field[[]string]        `json:"tags"`
	SocialHandles    patch.Field[[]string]        `json:"social_handles"`
	Source           patch.Field[string]          `json:"source"`
	LastContactedAt  patch.Time                   `json:"last_contacted_at"`
	EnrichmentStatus patch.Field[string]          `json:"enrichment_status"`
	EnrichmentData   patch.Field[json.RawMessage] `json:"enrichment_data"`
}

// ListContactsInput restricts a contact listing.
type ListContactsInput struct {
	Search  string     // Case-insensitive substring over name and email.
	GroupID *uuid.UUID // When set, only members of this group are returned.
}

// UpdateNotesInput carries the notes write for the dedicated notes endpoint.
// Null clears the stored notes.
type UpdateNotesInput struct {
	Notes patch.Field[string] `json:"notes"`
}

// --- Output DTOs ---

// ContactCountOutput reports the owner's total number of contacts.
type ContactCountOutput struct {
	Count int64 `json:"count"`
}

// ContactUsecase defines the contact-related business operations the
// delivery layer depends on.
type ContactUsecase interface {
	// List returns the owner's contacts, newest first.
	List(ctx context.Context, ownerID uuid.UUID, input *ListContactsInput) ([]*entity.Contact, error)

	// GetByID returns a single contact. A contact owned by someone else is
	// indistinguishable from a missing one.
	GetByID(ctx context.Context, ownerID, contactID uuid.UUID) (*entity.Contact, error)

	// Save creates or updates a contact from a sparse write set.
	Save(ctx context.Context, ownerID uuid.UUID, input *SaveContactInput) (*entity.Contact, error)

	// Delete removes a contact.
	Delete(ctx context.Context, ownerID, contactID uuid.UUID) error

	// UpdateNotes replaces only the notes field of a contact.
	UpdateNotes(ctx context.Context, ownerID, contactID uuid.UUID, input *UpdateNotesInput) (*entity.Contact, error)

	// Count returns the owner's total number of contacts.
	Count(ctx context.Context, ownerID uuid.UUID) (*ContactCountOutput, error)

	// GenerateQRCode renders a contact as a vCard QR code PNG.
	GenerateQRCode(ctx context.Context, ownerID, contactID uuid.UUID) ([]byte, error)
}
