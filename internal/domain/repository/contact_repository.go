// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"rolodex/internal/domain/entity"
	"rolodex/internal/errors"

	"github.com/google/uuid"
)

// ErrContactNotFound is returned both when no contact has the given id and
// when the contact belongs to a different owner. The two cases are
// indistinguishable on purpose.
var ErrContactNotFound = errors.New("contact not found")

// ContactRepository is the persistence gateway for contacts. Every read and
// mutation is scoped by owner; there is no unscoped access path.
type ContactRepository interface {
	// Create persists a new contact from the patch, applying per-type defaults
	// for absent optional fields (null, or the empty list for collections).
	Create(ctx context.Context, ownerID uuid.UUID, p *entity.ContactPatch) (*entity.Contact, error)

	// FindByID retrieves a contact by id for the given owner. Returns
	// ErrContactNotFound when the id is unknown or owned by someone else.
	FindByID(ctx context.Context, id, ownerID uuid.UUID) (*entity.Contact, error)

	// List returns the owner's contacts matching the filter, newest-created
	// first.
	List(ctx context.Context, ownerID uuid.UUID, filter entity.ContactFilter) ([]*entity.Contact, error)

	// Update applies the sparse patch to an existing contact and returns the
	// resulting record. Absent fields keep their stored values.
	Update(ctx context.Context, id, ownerID uuid.UUID, p *entity.ContactPatch) (*entity.Contact, error)

	// Delete removes the contact. Hard delete, no tombstone.
	Delete(ctx context.Context, id, ownerID uuid.UUID) error

	// CountByOwner returns the owner's total contact count.
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)

	// ExistsByOwnerAndEmail reports whether another contact of the same owner
	// already uses the email. excludeID skips the contact being updated.
	ExistsByOwnerAndEmail(ctx context.Context, ownerID uuid.UUID, email string, excludeID *uuid.UUID) (bool, error)
}
