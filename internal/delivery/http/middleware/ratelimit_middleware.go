package middleware

import (
	"log/slog"

	"rolodex/config"
	deliverycontext "rolodex/internal/delivery/context"
	domainerrors "rolodex/internal/domain/errors"
	"rolodex/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// RateLimitMiddleware throttles requests per principal over a fixed window.
// Unauthenticated requests are keyed by client IP.
type RateLimitMiddleware struct {
	store  service.RateLimitStore
	cfg    *config.RateLimitConfig
	logger *slog.Logger
}

// NewRateLimitMiddleware is the constructor for RateLimitMiddleware.
func NewRateLimitMiddleware(store service.RateLimitStore, cfg *config.Config, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		store:  store,
		cfg:    cfg.RateLimit,
		logger: logger,
	}
}

// Handle rejects requests over the configured budget with RATE_LIMITED.
// A counter store failure fails open.
func (m *RateLimitMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.cfg == nil || !m.cfg.Enabled {
			return next(c)
		}

		key := c.RealIP()
		if userID, ok := deliverycontext.GetUserID(c.Request().Context()); ok {
			key = userID.String()
		}

		count, err := m.store.Increment(c.Request().Context(), key, m.cfg.Window)
		if err != nil {
			m.logger.Warn("Rate limit store unavailable, failing open",
				slog.Any("error", err),
			)

			return next(c)
		}

		if count > m.cfg.Requests {
			return domainerrors.ErrRateLimited
		}

		return next(c)
	}
}
