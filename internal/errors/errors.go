// Package errors provides sentinel errors and exit-code handling for the uvforge CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates an invalid prompt answer or option value.
	ErrValidation = errors.New("validation error")

	// ErrEnvironment indicates a missing or misconfigured external tool.
	ErrEnvironment = errors.New("environment error")

	// ErrAutomation indicates a failed post-generation automation step.
	ErrAutomation = errors.New("automation error")

	// ErrNotFound indicates a file, template, or config was not found.
	ErrNotFound = errors.New("not found")
)

// DetailError captures structured error information for user-facing output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory path involved (optional).
	Location string

	// Field is the option name for answer errors (optional).
	Field string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Option: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, field, hint string) error {
	return &DetailError{
		Type:    "validation failed",
		Message: message,
		Field:   field,
		Hint:    hint,
		Cause:   ErrValidation,
	}
}

// NewEnvironmentError creates an environment error with details.
func NewEnvironmentError(message, hint string) error {
	return &DetailError{
		Type:    "environment check failed",
		Message: message,
		Hint:    hint,
		Cause:   ErrEnvironment,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
