// Package errors defines the closed set of application errors surfaced to callers.
package errors

import (
	"net/http"

	"rolodex/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying detailed information,
// e.g. the offending field path for a validation failure.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches on the business error code, so a WithDetails copy still
// satisfies errors.Is against its sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types. The caller-facing taxonomy is deliberately closed:
// every failure leaving the usecase layer maps onto one of these.
var (
	// ErrUnauthenticated covers every flavour of missing or invalid
	// credentials. "Bad token" and "no token" are intentionally
	// indistinguishable to the caller.
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Authentication required",
		"",
	)

	// ErrNotFound covers both "record does not exist" and "record belongs to
	// another owner", so record ids cannot be enumerated across owners.
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)

	// ErrEmailConflict is the per-owner duplicate contact email case.
	ErrEmailConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"A contact with this email already exists",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"This email is already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Invalid email or password",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Invalid or expired refresh token",
		"",
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Too many requests",
		"",
	)

	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the
// AppError interface. The raw store error stays server-side; callers only see
// the generic message plus whatever details the gateway chose to expose.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the wrapped store error for server-side logging.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "INTERNAL"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Internal server error"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
