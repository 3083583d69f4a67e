// Package ratelimit provides RateLimitStore implementations for the
// request throttling middleware.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"rolodex/internal/domain/service"
)

// memoryStore is an in-process fixed-window counter. Suitable for a single
// instance; multi-instance deployments should use the Redis store.
type memoryStore struct {
	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	count    int64
	start    time.Time
	duration time.Duration
}

// NewMemoryStore is the constructor for memoryStore.
func NewMemoryStore() service.RateLimitStore {
	return &memoryStore{
		windows: make(map[string]*window),
	}
}

// Increment bumps the counter for key, starting a fresh window when the
// previous one has elapsed.
func (s *memoryStore) Increment(_ context.Context, key string, duration time.Duration) (int64, error) {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows[key]
	if !ok || now.Sub(w.start) >= w.duration {
		w = &window{start: now, duration: duration}
		s.windows[key] = w
	}

	w.count++

	return w.count, nil
}

// Reset clears the counter for key.
func (s *memoryStore) Reset(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.windows, key)

	return nil
}
