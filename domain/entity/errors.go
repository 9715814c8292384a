package entity

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates a referenced entity does not exist or lies outside
// the caller's tenant. Cross-tenant references deliberately collapse into
// this error so existence in another tenant is never disclosed.
var ErrNotFound = errors.New("entity not found")

// ValidationError indicates malformed input to the creation dispatcher.
// It is surfaced to the immediate caller and never retried.
type ValidationError struct {
	msg string
}

// NewValidationError creates a ValidationError with a formatted message.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *ValidationError) Error() string { return e.msg }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
