package repository

import (
	"context"

	"rolodex/internal/domain/entity"
	"rolodex/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for group persistence.
var (
	// ErrGroupNotFound is returned when a group is missing or owned by
	// another principal.
	ErrGroupNotFound = errors.New("group not found")
	// ErrMemberExists is returned when the (group, contact) pair already exists.
	ErrMemberExists = errors.New("contact is already a group member")
	// ErrMemberNotFound is returned when removing a membership that does not exist.
	ErrMemberNotFound = errors.New("group member not found")
)

// GroupRepository defines group and membership persistence. Groups are
// owner-scoped; membership rows are reached only through an owned group.
type GroupRepository interface {
	// Create persists a new group for the owner.
	Create(ctx context.Context, group *entity.Group) error

	// FindByID retrieves a group by id for the given owner.
	FindByID(ctx context.Context, id, ownerID uuid.UUID) (*entity.Group, error)

	// ListByOwner returns all of the owner's groups, newest-created first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Group, error)

	// Delete removes a group and its membership rows.
	Delete(ctx context.Context, id, ownerID uuid.UUID) error

	// AddMember links a contact to a group. Returns ErrMemberExists on a
	// duplicate pair.
	AddMember(ctx context.Context, groupID, contactID uuid.UUID) error

	// RemoveMember unlinks a contact from a group.
	RemoveMember(ctx context.Context, groupID, contactID uuid.UUID) error

	// MemberContactIDs returns the contact ids belonging to the group. An
	// empty group yields an empty slice, not an error.
	MemberContactIDs(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error)
}
