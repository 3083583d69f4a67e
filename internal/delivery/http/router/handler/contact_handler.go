// Package handler contains the HTTP handlers for the application.
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

// ContactHandler holds dependencies for contact-related handlers.
type ContactHandler struct {
	uc usecase.ContactUsecase
}

// NewContactHandler is the constructor for ContactHandler, injected by Fx.
func NewContactHandler(uc usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// List handles GET /contacts. Supports ?search= and ?group_id= filters.
func (h *ContactHandler) List(c echo.Context) error {
	ownerID, err := middleware.PrincipalID(c)
	if err != nil {
		return err
	}

	input := &usecase.ListContactsInput{Search: c.QueryParam("search")}

	if raw := c.QueryParam("group_id"); raw != "" {
		groupID, err := uuid.Parse(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("group_id: must be a valid UUID")
		}
		input.GroupID = &groupID
	}

	contacts, err := h.uc.List(c.Request().Context(), ownerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, contacts, "")
}

// GetByID handles GET /contacts/:id.
func (h *ContactHandler) GetByID(c echo.Context) error {
	ownerID, err := middleware.PrincipalID(c)
	if err != nil {
		return err
	}

	contactID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	contact, err := h.uc.GetByID(c.Request().Context(), ownerID, contactID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, contact, "")
}

// Save handles POST /contacts. The body is a sparse write set: without an id
// it creates, with an id it updates.
func (h *ContactHandler) Save(c echo.Context) error {
	ownerID, err := middleware.PrincipalID(c)
	if err != nil {
		return err
	}

	var input usecase.SaveContactInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid contact payload")
	}

	statusCode := http.StatusOK
	if input.ID == nil {
		statusCode = http.StatusCreated
	}

	contact, err := h.uc.Save(c.Request().Context(), ownerID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, statusCode, contact, "Contact saved")
}

// Delete handles DELETE /contacts/:id.
func (h *ContactHandler) Delete(c echo.Context) error {
	ownerID, err := middleware.PrincipalID(c)
	if err != nil {
		return err
	}

	contactID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), ownerID, contactID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"contact_id": contactID.String()}, "Contact deleted")
}

// UpdateNotes handles PATCH /contacts/:id/notes.
func (h *ContactHandler) UpdateNotes(c echo.Context) error {
	ownerID, err := middleware.PrincipalID(c)
	if err != nil {
		return err
	}

	contactID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateNotesInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid notes payload")
	}

	contact, err := h.uc.UpdateNotes(c.Request().Context(), ownerID, contactID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, contact, "Notes updated")
}

// Count handles GET /contacts/count.
func (h *ContactHandler) Count(c echo.Context) error {
	ownerID, err := middleware.PrincipalID(c)
	if err != nil {
		return err
	}

	output, err := h.uc.Count(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// QRCode handles GET /contacts/:id/qr. Returns a PNG, not the JSON envelope.
func (h *ContactHandler) QRCode(c echo.Context) error {
	ownerID, err := middleware.PrincipalID(c)
	if err != nil {
		return err
	}

	contactID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	png, err := h.uc.GenerateQRCode(c.Request().Context(), ownerID, contactID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// parseIDParam reads the :id path parameter. A malformed id is a NOT_FOUND,
// not a validation failure: invalid ids cannot name any record.
func parseIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrNotFound
	}

	return id, nil
}
