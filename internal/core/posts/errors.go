package posts

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a post id does not resolve
	ErrNotFound = errors.New("post not found")

	// ErrGroupNotFound is returned when a feed is requested for a slug
	// that does not resolve to an existing group
	ErrGroupNotFound = errors.New("group not found")

	// ErrAuthorNotFound is returned when a feed is requested for a
	// username that does not resolve to an existing user
	ErrAuthorNotFound = errors.New("author not found")
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

// IsNotFound checks if error is any of the not-found kinds
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrGroupNotFound) ||
		errors.Is(err, ErrAuthorNotFound)
}
