package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no entity exists for the given id or slug.
var ErrNotFound = errors.New("not found")

// ValidationError covers missing/malformed required fields and bad enum
// values. It maps to HTTP 400 at the boundary.
type ValidationError struct {
	Message string
	Details map[string]string
}

func (e *ValidationError) Error() string { return e.Message }

func Validation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func ValidationWithDetails(message string, details map[string]string) *ValidationError {
	return &ValidationError{Message: message, Details: details}
}

// ConflictError covers slug (and email) collisions on explicit writes. It
// maps to HTTP 400, matching the dashboard's contract.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func Conflict(format string, args ...interface{}) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
