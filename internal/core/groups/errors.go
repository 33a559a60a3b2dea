package groups

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a group id or slug does not resolve
	ErrNotFound = errors.New("group not found")

	// ErrSlugTaken is returned when creating a group with a slug that
	// already exists
	ErrSlugTaken = errors.New("group slug already taken")
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
