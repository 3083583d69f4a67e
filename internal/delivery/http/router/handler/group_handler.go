package handler

import (
	"net/http"

	"rolodex/internal/delivery/http/middleware"
	"rolodex/internal/delivery/http/response"
	domainerrors "rolodex/internal/domain/errors"
	"rolodex/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GroupHandler holds dependencies for group-related handlers.
type GroupHandler struct {
	uc usecase.GroupUsecase
}

// NewGroupHandler is the constructor for GroupHandler, injected by Fx.
func NewGroupHandler(uc usecase.GroupUsecase) *GroupHandler {
	return &GroupHandler{uc: uc}
}

// Create handles POST /groups.
func (h *GroupHandler) Create(c echo.Context) error {
	ownerID, err := middleware.PrincipalID(c)
	if err != nil {
		return err
	}

	var input usecase.CreateGroupInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid group payload")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	group, err := h.uc.Create(c.Request().Context(), ownerID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, group, "Group created")
}

// List handles GET /groups.
func (h *GroupHandler) List(c echo.Context) error {
	ownerID, err := middleware.PrincipalID(c)
	if err != nil {
		return err
	}

	groups, err := h.uc.List(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, groups, "")
}

// Delete handles DELETE /groups/:id. Member contacts are untouched.
func (h *GroupHandler) Delete(c echo.Context) error {
	ownerID, err := middleware.PrincipalID(c)
	if err != nil {
		return err
	}

	groupID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), ownerID, groupID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Group deleted")
}

// AddContact handles POST /groups/:id/contacts/:contactId.
func (h *GroupHandler) AddContact(c echo.Context) error {
	ownerID, err := middleware.PrincipalID(c)
	if err != nil {
		return err
	}

	groupID, contactID, err := parseMembershipParams(c)
	if err != nil {
		return err
	}

	if err := h.uc.AddContact(c.Request().Context(), ownerID, groupID, contactID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Contact added to group")
}

// RemoveContact handles DELETE /groups/:id/contacts/:contactId.
func (h *GroupHandler) RemoveContact(c echo.Context) error {
	ownerID, err := middleware.PrincipalID(c)
	if err != nil {
		return err
	}

	groupID, contactID, err := parseMembershipParams(c)
	if err != nil {
		return err
	}

	if err := h.uc.RemoveContact(c.Request().Context(), ownerID, groupID, contactID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Contact removed from group")
}

func parseMembershipParams(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, domainerrors.ErrNotFound
	}

	contactID, err := uuid.Parse(c.Param("contactId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, domainerrors.ErrNotFound
	}

	return groupID, contactID, nil
}
