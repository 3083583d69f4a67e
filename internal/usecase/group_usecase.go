package usecase

import (
	"context"

	"rolodex/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateGroupInput defines the data required to create a contact group.
type CreateGroupInput struct {
	Name string `json:"name" validate:"required,max=120"`
}

// GroupUsecase defines the group-related business operations.
type GroupUsecase interface {
	// Create makes a new, empty group for the owner.
	Create(ctx context.Context, ownerID uuid.UUID, input *CreateGroupInput) (*entity.Group, error)

	// List returns the owner's groups, newest first.
	List(ctx context.Context, ownerID uuid.UUID) ([]*entity.Group, error)

	// Delete removes a group and its memberships. Member contacts survive.
	Delete(ctx context.Context, ownerID, groupID uuid.UUID) error

	// AddContact places an owner's contact into an owner's group.
	AddContact(ctx context.Context, ownerID, groupID, contactID uuid.UUID) error

	// RemoveContact removes a contact from a group.
	RemoveContact(ctx context.Context, ownerID, groupID, contactID uuid.UUID) error
}
