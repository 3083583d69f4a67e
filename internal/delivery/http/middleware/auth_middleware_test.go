package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "rolodex/internal/delivery/context"
	domainerrors "rolodex/internal/domain/errors"
	"rolodex/internal/domain/service"
	mockservice "rolodex/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuthenticate(t *testing.T, tokenSvc service.TokenService, authHeader string) (echo.Context, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/contacts", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewAuthMiddleware(tokenSvc)
	handler := m.Authenticate(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	return c, handler(c)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New()
	tokenSvc := new(mockservice.MockTokenService)
	tokenSvc.On("ValidateAccessToken", "good-token").Return(&service.Claims{UserID: userID}, nil)

	c, err := runAuthenticate(t, tokenSvc, "Bearer good-token")

	require.NoError(t, err)
	principal, ok := c.Get(KeyUserID).(uuid.UUID)
	require.True(t, ok)
	assert.Equal(t, userID, principal)

	ctxUserID, ok := deliverycontext.GetUserID(c.Request().Context())
	require.True(t, ok)
	assert.Equal(t, userID, ctxUserID)
}

// Missing, malformed, and rejected tokens must be indistinguishable from
// the outside.
func TestAuthMiddleware_FailuresCollapse(t *testing.T) {
	tokenSvc := new(mockservice.MockTokenService)
	tokenSvc.On("ValidateAccessToken", "bad-token").Return(nil, errors.New("token is expired"))

	testCases := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "no bearer prefix", header: "good-token"},
		{name: "empty bearer", header: "Bearer "},
		{name: "rejected token", header: "Bearer bad-token"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := runAuthenticate(t, tokenSvc, tc.header)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
		})
	}
}

func TestPrincipalID_Unset(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, err := PrincipalID(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}
