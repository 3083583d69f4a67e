package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rolodex/config"
	deliverycontext "rolodex/internal/delivery/context"
	domainerrors "rolodex/internal/domain/errors"
	mockservice "rolodex/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRateLimitMiddleware(store *mockservice.MockRateLimitStore, limit *config.RateLimitConfig) *RateLimitMiddleware {
	cfg := &config.Config{RateLimit: limit}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewRateLimitMiddleware(store, cfg, logger)
}

func runRateLimit(m *RateLimitMiddleware, userID *uuid.UUID) error {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/contacts", nil)
	if userID != nil {
		req = req.WithContext(deliverycontext.WithUserID(req.Context(), *userID))
	}
	c := e.NewContext(req, httptest.NewRecorder())

	return m.Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
}

func TestRateLimitMiddleware_UnderBudget(t *testing.T) {
	store := new(mockservice.MockRateLimitStore)
	store.On("Increment", mock.Anything, mock.Anything, time.Minute).Return(int64(5), nil)

	m := newRateLimitMiddleware(store, &config.RateLimitConfig{Enabled: true, Requests: 10, Window: time.Minute})

	require.NoError(t, runRateLimit(m, nil))
}

func TestRateLimitMiddleware_OverBudget(t *testing.T) {
	store := new(mockservice.MockRateLimitStore)
	store.On("Increment", mock.Anything, mock.Anything, time.Minute).Return(int64(11), nil)

	m := newRateLimitMiddleware(store, &config.RateLimitConfig{Enabled: true, Requests: 10, Window: time.Minute})

	err := runRateLimit(m, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRateLimited))
}

func TestRateLimitMiddleware_KeyedByPrincipal(t *testing.T) {
	userID := uuid.New()
	store := new(mockservice.MockRateLimitStore)
	store.On("Increment", mock.Anything, userID.String(), time.Minute).Return(int64(1), nil)

	m := newRateLimitMiddleware(store, &config.RateLimitConfig{Enabled: true, Requests: 10, Window: time.Minute})

	require.NoError(t, runRateLimit(m, &userID))
	store.AssertExpectations(t)
}

func TestRateLimitMiddleware_StoreFailureFailsOpen(t *testing.T) {
	store := new(mockservice.MockRateLimitStore)
	store.On("Increment", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), errors.New("store down"))

	m := newRateLimitMiddleware(store, &config.RateLimitConfig{Enabled: true, Requests: 10, Window: time.Minute})

	require.NoError(t, runRateLimit(m, nil))
}

func TestRateLimitMiddleware_DisabledSkipsStore(t *testing.T) {
	store := new(mockservice.MockRateLimitStore)

	m := newRateLimitMiddleware(store, &config.RateLimitConfig{Enabled: false})

	require.NoError(t, runRateLimit(m, nil))
	store.AssertNotCalled(t, "Increment", mock.Anything, mock.Anything, mock.Anything)
}
