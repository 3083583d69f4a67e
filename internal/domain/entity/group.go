package entity

import (
	"time"

	"github.com/google/uuid"
)

// Group is an owner-scoped collection of contacts, used as a listing filter.
type Group struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GroupMember links one contact to one group. The (group, contact) pair is
// unique; re-adding an existing member is a no-op at the service layer.
type GroupMember struct {
	GroupID   uuid.UUID `json:"group_id"`
	ContactID uuid.UUID `json:"contact_id"`
	CreatedAt time.Time `json:"created_at"`
}
