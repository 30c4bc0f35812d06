package prompt

import (
	"regexp"
	"strings"

	oerrors "github.com/uvforge/cli/internal/errors"
)

// Project names use hyphens (PyPI style); slugs use underscores (importable
// Python module names).
var (
	projectNameRegex = regexp.MustCompile(`^[-a-zA-Z][-a-zA-Z0-9]+$`)
	projectSlugRegex = regexp.MustCompile(`^[_a-zA-Z][_a-zA-Z0-9]+$`)
)

// DeriveSlug derives an importable module name from a project name:
// lowercase, every non-alphanumeric rune replaced with an underscore.
func DeriveSlug(projectName string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(projectName) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// ValidateProjectName checks that a project name is acceptable.
func ValidateProjectName(name string) error {
	if !projectNameRegex.MatchString(name) {
		return oerrors.NewValidationError(
			"the project name "+name+" is not a valid project name",
			OptProjectName,
			"Use letters, digits and hyphens; use - instead of _",
		)
	}
	return nil
}

// ValidateProjectSlug checks that a slug is a valid Python module name.
func ValidateProjectSlug(slug string) error {
	if !projectSlugRegex.MatchString(slug) {
		return oerrors.NewValidationError(
			"the project slug "+slug+" is not a valid Python module name",
			OptProjectSlug,
			"Use letters, digits and underscores; use _ instead of -",
		)
	}
	return nil
}
