package errors

import "errors"

// Exit codes for the uvforge CLI.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates an invalid prompt answer or option.
	ExitValidationError = 2

	// ExitEnvironmentError indicates a missing or misconfigured external tool.
	ExitEnvironmentError = 3

	// ExitAutomationError indicates a post-generation automation step failed.
	ExitAutomationError = 4
)

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed marks that the command layer already reported the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrEnvironment):
		return ExitEnvironmentError
	case errors.Is(err, ErrAutomation):
		return ExitAutomationError
	default:
		return ExitGeneralError
	}
}

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitEnvironmentError:
		return "Environment Error"
	case ExitAutomationError:
		return "Automation Error"
	default:
		return "Unknown"
	}
}
