//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	// Verify sentinel errors are distinct
	assert.NotEqual(t, ErrValidation, ErrEnvironment)
	assert.NotEqual(t, ErrValidation, ErrAutomation)
	assert.NotEqual(t, ErrValidation, ErrNotFound)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "invalid value",
		Location: "my-project/pyproject.toml",
		Field:    "project_name",
		Hint:     "Use hyphens instead of underscores",
	}

	output := detail.Error()

	assert.Contains(t, output, "Error: validation failed")
	assert.Contains(t, output, "Location: my-project/pyproject.toml")
	assert.Contains(t, output, "Option: project_name")
	assert.Contains(t, output, "invalid value")
	assert.Contains(t, output, "Hint: Use hyphens instead of underscores")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError(
		"invalid value",
		"project_name",
		"Use hyphens instead of underscores",
	)

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "validation failed", detail.Type)
	assert.Equal(t, "invalid value", detail.Message)
	assert.Equal(t, "project_name", detail.Field)
	assert.Equal(t, "Use hyphens instead of underscores", detail.Hint)
}

func TestNewEnvironmentError(t *testing.T) {
	err := NewEnvironmentError("Python 3.13 is not installed via uv", "uv python install 3.13")

	assert.True(t, errors.Is(err, ErrEnvironment))
	assert.Contains(t, err.Error(), "uv python install 3.13")
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrValidation, "answer check failed")

	assert.True(t, errors.Is(wrapped, ErrValidation))
	assert.Contains(t, wrapped.Error(), "answer check failed")
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", errors.New("boom"), ExitGeneralError},
		{"validation sentinel", Wrap(ErrValidation, "bad answer"), ExitValidationError},
		{"environment sentinel", Wrap(ErrEnvironment, "uv missing"), ExitEnvironmentError},
		{"automation sentinel", Wrap(ErrAutomation, "push failed"), ExitAutomationError},
		{"exit error wins", NewExitError(Wrap(ErrValidation, "bad"), ExitAutomationError), ExitAutomationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitErrorUnwrap(t *testing.T) {
	inner := NewValidationError("bad answer", "layout", "")
	err := NewExitError(inner, ExitValidationError)

	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "Validation Error", ExitCodeName(ExitCodeFromError(err)))
}
