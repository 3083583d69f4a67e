package middleware

import (
	"log/slog"
	"net/http"

	"rolodex/internal/delivery/http/response"
	domainerrors "rolodex/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware translates every error leaving a handler into the closed
// response taxonomy. Unknown errors are logged server-side and surface as a
// generic INTERNAL envelope; raw error text never reaches the caller.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		details := ""
		if s, ok := httpErr.Message.(string); ok {
			details = s
		}
		code := "HTTP_ERROR"
		if httpErr.Code == http.StatusBadRequest {
			code = "VALIDATION_FAILED"
		}
		_ = response.Error(c, httpErr.Code, code, message, details)

		return
	}

	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal server error", "")
}
