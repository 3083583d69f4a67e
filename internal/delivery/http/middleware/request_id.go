package middleware

import (
	"log/slog"

	deliverycontext "rolodex/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware assigns each request an ID and a request-scoped logger.
// An inbound X-Request-Id is trusted and propagated; otherwise one is minted.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{logger: logger}
}

// Handle attaches the request ID to the echo context, the request context,
// the request-scoped logger, and the response header.
func (m *RequestIDMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		requestLogger := m.logger.With(slog.String("request_id", requestID))

		ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, requestLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
