package errors

import (
	"errors"
	"fmt"
)

// ExitCodeFor determines the appropriate process exit code for an error.
func ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	var qbe *QuizBuilderError
	if errors.As(err, &qbe) {
		switch qbe.Category {
		case CategoryValidation:
			return 2 // Invalid content
		case CategoryConfig:
			return 7 // Configuration error
		case CategoryFileSystem:
			return 11 // Build output error
		case CategoryInternal:
			return 10 // Internal error
		default:
			return 1 // General error
		}
	}

	return 1
}

// FormatError formats an error for user-friendly display. Config and
// validation errors are shown bare since their messages already name the
// offending file; everything else is prefixed with its category.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	var qbe *QuizBuilderError
	if errors.As(err, &qbe) {
		switch qbe.Category {
		case CategoryConfig, CategoryValidation:
			return qbe.Message
		default:
			return fmt.Sprintf("%s: %s", qbe.Category, qbe.Message)
		}
	}

	return fmt.Sprintf("Error: %v", err)
}
