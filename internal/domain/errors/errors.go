// Package errors holds the domain-level error taxonomy shared by the client
// services and the store handlers.
package errors

import (
	"net/http"

	"bistro/internal/errors"
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

// NewValidationError builds the error for a local precondition failure.
// The message is surfaced verbatim to the operator; the request carrying the
// bad input never reaches the network.
func NewValidationError(message string) *BaseError {
	return NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		message,
		"",
	)
}

// IsValidation reports whether err is (or wraps) a validation error.
func IsValidation(err error) bool {
	var appErr AppError
	if !errors.As(err, &appErr) {
		return false
	}

	return appErr.ErrorCode() == "VALIDATION_FAILED"
}

// Predefined error types
var (
	// ErrInvalidCredentials is the single sanctioned outcome of a failed
	// login. Unknown username and wrong password both map here so a caller
	// can never learn whether an account exists.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	// ErrReceiptWrite marks a local filesystem failure while persisting a
	// receipt artifact. It is a local concern, never retried.
	ErrReceiptWrite = NewBaseError(
		http.StatusInternalServerError,
		"RECEIPT_WRITE_FAILED",
		"Could not write receipt file",
		"",
	)
)
