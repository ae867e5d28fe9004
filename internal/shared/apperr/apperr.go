// Package apperr defines the validation error type shared by all feature usecases.
package apperr

import "strings"

// ValidationError carries the ordered, human-readable messages produced by a
// feature validator. Cause optionally chains a sentinel error so transport
// handlers can classify the failure with errors.Is without inspecting the
// message text.
type ValidationError struct {
	Messages []string
	Cause    error
}

// NewValidation builds a ValidationError with no classification sentinel.
func NewValidation(messages []string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// NewValidationAs builds a ValidationError chained to the given sentinel.
func NewValidationAs(messages []string, cause error) *ValidationError {
	return &ValidationError{Messages: messages, Cause: cause}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// Unwrap exposes the classification sentinel to errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}
