package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Contact event types published for downstream consumers (dashboards,
// marketing widgets). The core never reads these back.
const (
	ContactEventCreated = "contact.created"
	ContactEventUpdated = "contact.updated"
	ContactEventDeleted = "contact.deleted"
)

// ContactEvent describes one mutation of a contact.
type ContactEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventType  string    `json:"event_type"`
	ContactID  uuid.UUID `json:"contact_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing contact events to a
// message queue. Publishing is best-effort: a publish failure never fails the
// mutation that triggered it.
type EventPublisher interface {
	// PublishContactEvent publishes a contact mutation event.
	PublishContactEvent(ctx context.Context, event *ContactEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
