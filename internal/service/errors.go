package service

import "strings"

// ValidationError reports malformed or missing input as a list of
// field-level messages.
type ValidationError struct {
	Messages []string
}

// NewValidationError creates a ValidationError with the given messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}
