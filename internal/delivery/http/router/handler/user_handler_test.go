package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rolodex/internal/delivery/http/validator"
	"rolodex/internal/domain/entity"
	domainerrors "rolodex/internal/domain/errors"
	mockusecase "rolodex/internal/mocks/usecase"
	"rolodex/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestUserHandler_Register(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "bcrypt-digest"}

	uc := new(mockusecase.MockUserUsecase)
	uc.On("Register", mock.Anything, mock.MatchedBy(func(input *usecase.RegisterInput) bool {
		return input.Email == "ada@example.com" && input.Password == "s3cretpass"
	})).Return(&usecase.RegisterOutput{User: user}, nil)

	h := NewUserHandler(uc)
	c, rec := newAuthTestContext(t, "/auth/register", `{"name":"Ada","email":"ada@example.com","password":"s3cretpass"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"ada@example.com"`)
	assert.NotContains(t, rec.Body.String(), "bcrypt-digest")
	uc.AssertExpectations(t)
}

func TestUserHandler_Register_MissingPasswordFailsValidation(t *testing.T) {
	uc := new(mockusecase.MockUserUsecase)
	h := NewUserHandler(uc)
	c, _ := newAuthTestContext(t, "/auth/register", `{"name":"Ada","email":"ada@example.com"}`)

	err := h.Register(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestUserHandler_Login(t *testing.T) {
	output := &usecase.LoginOutput{
		AccessToken:  "access",
		RefreshToken: "refresh",
		User:         &entity.User{ID: uuid.New(), Email: "ada@example.com"},
	}

	uc := new(mockusecase.MockUserUsecase)
	uc.On("Login", mock.Anything, mock.Anything).Return(output, nil)

	h := NewUserHandler(uc)
	c, rec := newAuthTestContext(t, "/auth/login", `{"email":"ada@example.com","password":"s3cretpass"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "access")
}

func TestUserHandler_Login_BadCredentialsPropagate(t *testing.T) {
	uc := new(mockusecase.MockUserUsecase)
	uc.On("Login", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	h := NewUserHandler(uc)
	c, _ := newAuthTestContext(t, "/auth/login", `{"email":"ada@example.com","password":"wrong-pass"}`)

	err := h.Login(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserHandler_Refresh(t *testing.T) {
	output := &usecase.LoginOutput{
		AccessToken:  "new-access",
		RefreshToken: "new-refresh",
		User:         &entity.User{ID: uuid.New()},
	}

	uc := new(mockusecase.MockUserUsecase)
	uc.On("Refresh", mock.Anything, mock.MatchedBy(func(input *usecase.RefreshInput) bool {
		return input.RefreshToken == "old-refresh"
	})).Return(output, nil)

	h := NewUserHandler(uc)
	c, rec := newAuthTestContext(t, "/auth/refresh", `{"refresh_token":"old-refresh"}`)

	require.NoError(t, h.Refresh(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "new-access")
}

func TestUserHandler_Logout(t *testing.T) {
	uc := new(mockusecase.MockUserUsecase)
	uc.On("Logout", mock.Anything, mock.Anything).Return(nil)

	h := NewUserHandler(uc)
	c, rec := newAuthTestContext(t, "/auth/logout", `{"refresh_token":"some-token"}`)

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
