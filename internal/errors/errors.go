// Package errors provides sentinel errors and exit codes for the rigc CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates a schema or input validation failure.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a module, catalog entry, or file was not found.
	ErrNotFound = errors.New("not found")

	// ErrState indicates an operation was attempted against a module or
	// registry in a state that cannot accept it.
	ErrState = errors.New("invalid state")

	// ErrHostScene indicates a host scene operation failed.
	ErrHostScene = errors.New("host scene error")
)

// DetailError captures structured error information for terminal reporting.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path and line number (optional).
	Location string

	// Field is the field name for schema errors (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

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
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
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
func NewValidationError(message, location, field, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    ErrValidation,
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

// NewStateError creates an invalid state error with details.
func NewStateError(message string, context map[string]string, hint string) error {
	return &DetailError{
		Type:    "invalid state",
		Message: message,
		Context: context,
		Hint:    hint,
		Cause:   ErrState,
	}
}

// NewHostSceneError creates a host scene error with details.
func NewHostSceneError(message string, context map[string]string, hint string) error {
	return &DetailError{
		Type:    "host scene failed",
		Message: message,
		Context: context,
		Hint:    hint,
		Cause:   ErrHostScene,
	}
}

// WrapValidation wraps an error with ErrValidation.
func WrapValidation(err error, msg string) error {
	return fmt.Errorf("%s: %w: %w", msg, ErrValidation, err)
}

// WrapNotFound wraps an error with ErrNotFound.
func WrapNotFound(err error, msg string) error {
	return fmt.Errorf("%s: %w: %w", msg, ErrNotFound, err)
}

// WrapState wraps an error with ErrState.
func WrapState(err error, msg string) error {
	return fmt.Errorf("%s: %w: %w", msg, ErrState, err)
}

// WrapHostScene wraps an error with ErrHostScene.
func WrapHostScene(err error, msg string) error {
	return fmt.Errorf("%s: %w: %w", msg, ErrHostScene, err)
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
