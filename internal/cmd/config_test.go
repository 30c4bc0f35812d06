package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/uvforge/cli/internal/errors"
)

func TestConfigInitAndVet(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("UVFORGE_CONFIG", "")

	root := NewRootCmd()
	root.SetArgs([]string{"config", "init"})
	require.NoError(t, root.Execute())

	configFile := filepath.Join(home, ".uvforge", "config.yaml")
	data, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "defaults:")
	assert.Contains(t, string(data), "license: MIT")

	root = NewRootCmd()
	root.SetArgs([]string{"config", "vet"})
	assert.NoError(t, root.Execute())
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("UVFORGE_CONFIG", "")

	root := NewRootCmd()
	root.SetArgs([]string{"config", "init"})
	require.NoError(t, root.Execute())

	root = NewRootCmd()
	root.SetArgs([]string{"config", "init"})
	err := root.Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))

	root = NewRootCmd()
	root.SetArgs([]string{"config", "init", "--force"})
	assert.NoError(t, root.Execute())
}

func TestConfigVetMissingFile(t *testing.T) {
	err := execute(t, "config", "vet")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
}

func TestConfigVetInvalidDefaults(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile,
		[]byte("defaults:\n  license: WTFPL\n  layout: nested\n"), 0o644))

	err := execute(t, "config", "vet", "--config", configFile)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}
