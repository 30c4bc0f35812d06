package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/uvforge/cli/internal/errors"
)

// execute runs the CLI with a fresh command tree, isolated from the real
// home directory.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("UVFORGE_CONFIG", "")

	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	return root.Execute()
}

func TestNewGeneratesProject(t *testing.T) {
	target := filepath.Join(t.TempDir(), "my-app")

	err := execute(t, "new", "my-app",
		"--defaults",
		"--skip-python-check",
		"--dir", target,
		"--author", "Ada Lovelace",
		"--email", "ada@example.com",
		"--github-handle", "ada")
	require.NoError(t, err)

	for _, rel := range []string{
		"pyproject.toml",
		"README.md",
		"Makefile",
		"LICENSE",
		".python-version",
		filepath.Join("src", "my_app", "main.py"),
		filepath.Join("tests", "test_main.py"),
		filepath.Join(".github", "workflows", "main.yml"),
	} {
		_, statErr := os.Stat(filepath.Join(target, rel))
		assert.NoError(t, statErr, rel)
	}
}

func TestNewFlagOverridesAnswersFile(t *testing.T) {
	answersFile := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(answersFile, []byte("layout: src\nmkdocs: false\n"), 0o644))

	target := filepath.Join(t.TempDir(), "my-app")
	err := execute(t, "new", "my-app",
		"--defaults",
		"--skip-python-check",
		"--answers", answersFile,
		"--layout", "flat",
		"--dir", target)
	require.NoError(t, err)

	// The flag wins over the answers file.
	_, statErr := os.Stat(filepath.Join(target, "my_app", "main.py"))
	assert.NoError(t, statErr)
	_, statErr = os.Stat(filepath.Join(target, "src"))
	assert.True(t, os.IsNotExist(statErr))

	// The answers file still applies where no flag was given.
	_, statErr = os.Stat(filepath.Join(target, "mkdocs.yml"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestNewInvalidProjectName(t *testing.T) {
	err := execute(t, "new", "1app", "--defaults", "--skip-python-check")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
}

func TestNewInvalidChoice(t *testing.T) {
	err := execute(t, "new", "my-app", "--defaults", "--skip-python-check", "--license", "WTFPL")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}

func TestNewTargetExists(t *testing.T) {
	target := t.TempDir()

	err := execute(t, "new", "my-app", "--defaults", "--skip-python-check", "--dir", target)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}

func TestNewUnknownAnswerKey(t *testing.T) {
	answersFile := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(answersFile, []byte("no_such_option: x\n"), 0o644))

	err := execute(t, "new", "my-app", "--defaults", "--skip-python-check", "--answers", answersFile)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}

func TestVersionCmd(t *testing.T) {
	assert.NoError(t, execute(t, "version"))
}
