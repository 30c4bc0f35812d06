package output

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithSpinnerPropagatesActionError(t *testing.T) {
	actionErr := errors.New("push failed")

	err := RunWithSpinner(context.Background(), func() error {
		return actionErr
	}, WithTitle("Pushing..."))

	require.Error(t, err)
	assert.ErrorIs(t, err, actionErr)
}

func TestRunWithSpinnerSuccess(t *testing.T) {
	ran := false

	err := RunWithSpinner(context.Background(), func() error {
		ran = true
		return nil
	}, WithTimeout(time.Second))

	require.NoError(t, err)
	assert.True(t, ran)
}
