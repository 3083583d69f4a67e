package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"rolodex/internal/domain/service"
)

// keyPrefix namespaces rate limit counters in Redis.
const keyPrefix = "rolodex:ratelimit:"

// redisStore is a fixed-window counter shared across instances. The counter
// key carries a TTL equal to the window, so windows expire on their own.
type redisStore struct {
	rdb *redis.Client
}

// NewRedisStore is the constructor for redisStore.
func NewRedisStore(rdb *redis.Client) service.RateLimitStore {
	return &redisStore{rdb: rdb}
}

// Increment bumps the counter atomically. INCR and EXPIRE run in one
// pipeline; EXPIRE NX only sets the TTL on the increment that opens a window.
func (s *redisStore) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	redisKey := fmt.Sprintf("%s%s", keyPrefix, key)

	pipe := s.rdb.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.ExpireNX(ctx, redisKey, window)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, errors.Wrap(err, "rate limit INCR")
	}

	return incr.Val(), nil
}

// Reset clears the counter for key.
func (s *redisStore) Reset(ctx context.Context, key string) error {
	redisKey := fmt.Sprintf("%s%s", keyPrefix, key)

	if err := s.rdb.Del(ctx, redisKey).Err(); err != nil {
		return errors.Wrap(err, "rate limit DEL")
	}

	return nil
}
