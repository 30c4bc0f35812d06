package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uvforge/cli/internal/prompt"
)

func TestRenderPath(t *testing.T) {
	r := NewRenderer(&prompt.Context{ProjectSlug: "my_app"})

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"slug token", "__project_slug__/main.py.tmpl", "my_app/main.py"},
		{"tmpl suffix only", "pyproject.toml.tmpl", "pyproject.toml"},
		{"verbatim file", ".github/workflows/main.yml", ".github/workflows/main.yml"},
		{"plain file", ".gitignore", ".gitignore"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.RenderPath(tt.in))
		})
	}
}

func TestRenderContent(t *testing.T) {
	r := NewRenderer(&prompt.Context{ProjectName: "my-app", ProjectSlug: "my_app"})

	out, err := r.RenderContent("x", []byte("name={{.ProjectName}} slug={{.ProjectSlug}}"))
	require.NoError(t, err)
	assert.Equal(t, "name=my-app slug=my_app", string(out))
}

func TestRenderContentUnknownField(t *testing.T) {
	r := NewRenderer(&prompt.Context{})

	_, err := r.RenderContent("x", []byte("{{.NoSuchField}}"))
	assert.Error(t, err)
}

func TestRenderContentParseError(t *testing.T) {
	r := NewRenderer(&prompt.Context{})

	_, err := r.RenderContent("x", []byte("{{if .MkDocs}}unclosed"))
	assert.Error(t, err)
}

func TestIsTemplate(t *testing.T) {
	assert.True(t, IsTemplate("pyproject.toml.tmpl"))
	assert.False(t, IsTemplate(".gitignore"))
	assert.False(t, IsTemplate(".github/workflows/main.yml"))
}
