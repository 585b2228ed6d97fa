package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrActiveRun is returned when starting a pipeline on a transcript
	// that already has a workflow run in flight
	ErrActiveRun = errors.New("transcript already has an active workflow run")

	// ErrDuplicateEvent is returned when an event append hit an existing
	// dedupe key; the caller should skip the notify as well
	ErrDuplicateEvent = errors.New("event with this dedupe key already appended")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
