package scaffold

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/uvforge/cli/internal/prompt"
)

// Renderer handles template rendering with context substitution.
type Renderer struct {
	ctx *prompt.Context
}

// NewRenderer creates a new renderer for the given context.
func NewRenderer(ctx *prompt.Context) *Renderer {
	return &Renderer{ctx: ctx}
}

// RenderContent renders a single template body and returns the content.
func (r *Renderer) RenderContent(name string, content []byte) ([]byte, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r.ctx); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}

	return buf.Bytes(), nil
}

// RenderPath maps a template-relative path to its output path: the slug
// token is replaced with the resolved slug and the .tmpl suffix is removed
// (TrimSuffix is a no-op if the suffix is not present).
func (r *Renderer) RenderPath(relPath string) string {
	out := strings.ReplaceAll(relPath, slugToken, r.ctx.ProjectSlug)
	return strings.TrimSuffix(out, ".tmpl")
}

// IsTemplate reports whether a template file body should be rendered
// rather than copied verbatim.
func IsTemplate(path string) bool {
	return strings.HasSuffix(path, ".tmpl")
}
