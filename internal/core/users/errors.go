package users

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a user id or username does not resolve
	ErrNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when registering a username that already exists
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials is returned when login fails.
	// Deliberately does not distinguish unknown username from wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")
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
