package services

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every service. Callers branch with errors.Is;
// the API layer maps them onto HTTP statuses in one place.
var (
	// ErrNotFound marks a lookup that matched no row.
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists marks an insert that collided with an existing row.
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput marks an operation refused by a state or argument check.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConcurrentModification marks a lost optimistic-locking race.
	ErrConcurrentModification = errors.New("concurrent modification detected")
)

// ValidationError carries a field-level validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError reports whether err wraps a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
