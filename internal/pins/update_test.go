package pins

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPyprojectUpdater(t *testing.T) {
	content := `dev = [
    "pytest>=7.2.0",
    "pytest-cov>=4.0.0",
    "mkdocstrings[python]>=0.26.1",
]
`

	updated, matches := (&PyprojectUpdater{Package: "pytest", Version: "8.3.4"}).Apply(content)
	assert.Equal(t, 1, matches)
	assert.Contains(t, updated, `"pytest>=8.3.4"`)
	// pytest-cov floor is untouched by the pytest pin.
	assert.Contains(t, updated, `"pytest-cov>=4.0.0"`)

	updated, matches = (&PyprojectUpdater{Package: "mkdocstrings", Version: "0.30.0"}).Apply(content)
	assert.Equal(t, 1, matches)
	assert.Contains(t, updated, `"mkdocstrings[python]>=0.30.0"`)
}

func TestPyprojectUpdaterNoMatch(t *testing.T) {
	content := `dev = ["pytest>=7.2.0"]`

	updated, matches := (&PyprojectUpdater{Package: "ruff", Version: "0.12.0"}).Apply(content)
	assert.Zero(t, matches)
	assert.Equal(t, content, updated)
}

func TestActionUpdater(t *testing.T) {
	content := `inputs:
  python-version:
    description: "Python version to use"
    required: false
    default: ""
  uv-version:
    description: "uv version to use"
    required: false
    default: "0.9.5"
`

	updated, matches := (&ActionUpdater{Version: "0.10.2"}).Apply(content)
	assert.Equal(t, 1, matches)
	assert.Contains(t, updated, `default: "0.10.2"`)
	// The python-version default stays empty.
	assert.Contains(t, updated, `default: ""`)
}

func TestHookUpdater(t *testing.T) {
	content := `repos:
  - repo: https://github.com/pre-commit/pre-commit-hooks
    rev: "v6.0.0"
    hooks:
      - id: check-toml

  - repo: https://github.com/astral-sh/ruff-pre-commit
    rev: "v0.14.14"
    hooks:
      - id: ruff-check
`

	updated, matches := (&HookUpdater{
		URL:     "https://github.com/astral-sh/ruff-pre-commit",
		Version: "0.15.0",
	}).Apply(content)

	assert.Equal(t, 1, matches)
	assert.Contains(t, updated, `rev: "v0.15.0"`)
	// The other repo's rev is untouched.
	assert.Contains(t, updated, `rev: "v6.0.0"`)
}
