package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidSortField is returned when a list request names a field
	// that tasks do not have.
	ErrInvalidSortField = fmt.Errorf("%w: unknown sort field", ErrValidation)

	// ErrInvalidSortOrder is returned when a list order is neither asc nor desc.
	ErrInvalidSortOrder = fmt.Errorf("%w: unknown sort order", ErrValidation)

	// ErrInvalidPagination is returned when page or limit is not a positive integer.
	ErrInvalidPagination = fmt.Errorf("%w: page and limit must be positive", ErrValidation)
)

// ValidationError carries the field that failed validation along with the
// underlying sentinel so callers can still match it with errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Field, e.Message, e.Err)
}

// Unwrap returns the wrapped sentinel.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for the given field.
// If err is nil, ErrValidation is used.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}
