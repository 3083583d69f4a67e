package handler

import (
	"net/http"

	"rolodex/internal/delivery/http/response"
	"rolodex/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for authentication handlers.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Register handles POST /auth/register.
func (h *UserHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid registration payload")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Registered")
}

// Login handles POST /auth/login.
func (h *UserHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid login payload")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Logged in")
}

// LoginWithGoogle handles POST /auth/login/google.
func (h *UserHandler) LoginWithGoogle(c echo.Context) error {
	var input usecase.GoogleLoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid login payload")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.LoginWithGoogle(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Logged in")
}

// Refresh handles POST /auth/refresh. Rotates the refresh token.
func (h *UserHandler) Refresh(c echo.Context) error {
	var input usecase.RefreshInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid refresh payload")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Refresh(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Token refreshed")
}

// Logout handles POST /auth/logout. Succeeds even when the token is unknown.
func (h *UserHandler) Logout(c echo.Context) error {
	var input usecase.LogoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid logout payload")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.Logout(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logged out")
}
