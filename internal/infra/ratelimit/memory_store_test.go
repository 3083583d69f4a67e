package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Increment(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	count, err := store.Increment(ctx, "user-1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = store.Increment(ctx, "user-1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// Independent keys get independent counters
	count, err = store.Increment(ctx, "user-2", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemoryStore_WindowExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	count, err := store.Increment(ctx, "user-1", 10*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	time.Sleep(15 * time.Millisecond)

	// The elapsed window restarts the counter
	count, err = store.Increment(ctx, "user-1", 10*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemoryStore_Reset(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Increment(ctx, "user-1", time.Minute)
	require.NoError(t, err)

	require.NoError(t, store.Reset(ctx, "user-1"))

	count, err := store.Increment(ctx, "user-1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
