// Package errors provides a lightweight structured error type (QuizBuilderError)
// for category-based classification in the CLI.
package errors

import (
	"fmt"
)

// ErrorCategory represents the category of a QuizBuilder error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Build and processing errors
	CategoryFileSystem ErrorCategory = "filesystem"

	// Infrastructure errors
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// QuizBuilderError is a structured error with category, severity, and context
type QuizBuilderError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for QuizBuilderError
type ContextFields map[string]any

// Error implements the error interface
func (e *QuizBuilderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *QuizBuilderError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *QuizBuilderError) WithContext(key string, value any) *QuizBuilderError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new QuizBuilderError
func New(category ErrorCategory, severity ErrorSeverity, message string) *QuizBuilderError {
	return &QuizBuilderError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new QuizBuilderError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *QuizBuilderError {
	return &QuizBuilderError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// NewValidationError creates a validation error for an offending content file.
// The path is attached as structured context and included in the message so
// the operator can locate the file without verbose mode.
func NewValidationError(path, message string) *QuizBuilderError {
	return New(CategoryValidation, SeverityFatal, fmt.Sprintf("%s: %s", path, message)).
		WithContext("path", path)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *QuizBuilderError {
	if cause != nil {
		return Wrap(cause, CategoryConfig, SeverityFatal, message)
	}
	return New(CategoryConfig, SeverityFatal, message)
}

// NewFileSystemError creates a filesystem error wrapping the underlying cause
func NewFileSystemError(message string, cause error) *QuizBuilderError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, message)
}
