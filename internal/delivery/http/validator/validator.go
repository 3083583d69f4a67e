// Package validator wires go-playground/validator as Echo's request validator.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator implements echo.Validator on top of go-playground/validator.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates a RequestValidator with struct-tag validation enabled.
func New() *RequestValidator {
	return &RequestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks the bound request struct against its validate tags. A
// failure surfaces as a 400 carrying the first offending field.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
