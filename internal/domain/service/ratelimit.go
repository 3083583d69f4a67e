package service

import (
	"context"
	"time"
)

// RateLimitStore is a windowed counter keyed by principal. The store is
// injected so a multi-instance deployment can swap the in-process map for a
// shared backend (Redis) without touching call sites.
type RateLimitStore interface {
	// Increment bumps the counter for key within the current fixed window and
	// returns the new count. The window parameter defines the counter's
	// lifetime; the first increment of a window starts it.
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)

	// Reset clears the counter for key.
	Reset(ctx context.Context, key string) error
}
