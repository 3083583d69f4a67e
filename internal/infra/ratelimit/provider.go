package ratelimit

import (
	"context"
	"log/slog"

	"rolodex/config"
	"rolodex/internal/domain/constants"
	"rolodex/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for RateLimitStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewRateLimitStore creates a RateLimitStore based on configuration.
// The memory store is the default when nothing is configured.
func NewRateLimitStore(params StoreParams) (service.RateLimitStore, error) {
	cfg := params.Config.RateLimit
	logger := params.Logger

	if cfg == nil || cfg.Store == "" || cfg.Store == constants.RateLimitStoreMemory {
		logger.Info("Using in-memory rate limit store")

		return NewMemoryStore(), nil
	}

	switch cfg.Store {
	case constants.RateLimitStoreRedis:
		redisCfg := params.Config.Redis
		if redisCfg == nil || redisCfg.Addr == "" {
			return nil, errors.New("redis address is required for redis rate limit store")
		}

		rdb := redis.NewClient(&redis.Options{
			Addr:     redisCfg.Addr,
			Password: redisCfg.Password,
			DB:       redisCfg.DB,
		})

		params.Lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return errors.Wrap(rdb.Ping(ctx).Err(), "failed to ping redis")
			},
			OnStop: func(ctx context.Context) error {
				logger.Info("Closing rate limit redis client")

				return rdb.Close()
			},
		})

		logger.Info("Using redis rate limit store", slog.String("addr", redisCfg.Addr))

		return NewRedisStore(rdb), nil

	default:
		return nil, errors.Errorf("unknown rate limit store: %s", cfg.Store)
	}
}

// Module provides the rate limit FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRateLimitStore),
)
