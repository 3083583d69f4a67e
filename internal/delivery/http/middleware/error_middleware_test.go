package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"rolodex/internal/delivery/http/response"
	domainerrors "rolodex/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/contacts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.HandleHTTPError(err, c)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestErrorMiddleware_AppError(t *testing.T) {
	rec, body := handleError(t, domainerrors.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
}

func TestErrorMiddleware_WrappedAppError(t *testing.T) {
	err := errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("email: not a valid address"), "failed to save contact")

	rec, body := handleError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, "email: not a valid address", body.Error.Details)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec, body := handleError(t, echo.NewHTTPError(http.StatusBadRequest, "Key: 'RegisterInput.Email' Error:Field validation"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
}

// An unrecognized error must not leak its text to the caller.
func TestErrorMiddleware_UnknownErrorIsOpaque(t *testing.T) {
	rec, body := handleError(t, errors.New("pq: connection refused on host db-internal"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INTERNAL", body.Error.Code)
	assert.NotContains(t, rec.Body.String(), "db-internal")
}
