package scaffold

import (
	"path/filepath"

	"github.com/uvforge/cli/internal/prompt"
)

// Rule gates a rendered path on a context predicate. When the predicate
// evaluates false the path (file or directory) is removed after rendering.
type Rule struct {
	// Path is the output-relative path guarded by this rule.
	Path string

	// Keep returns true when the path should remain in the output tree.
	Keep func(*prompt.Context) bool
}

// Rules is the conditional manifest. More specific paths come before the
// directories that contain them so their absence is attributable: removing
// a single workflow must not depend on whether .github survives.
var Rules = []Rule{
	{
		Path: filepath.Join(".github", "workflows", "on-release-main.yml"),
		Keep: func(c *prompt.Context) bool { return c.MkDocs || c.PublishToPyPI },
	},
	{
		Path: filepath.Join(".github", "workflows", "validate-codecov-config.yml"),
		Keep: func(c *prompt.Context) bool { return c.Codecov },
	},
	{
		Path: ".github",
		Keep: func(c *prompt.Context) bool { return c.IncludeGithubActions },
	},
	{
		Path: "docs",
		Keep: func(c *prompt.Context) bool { return c.MkDocs },
	},
	{
		Path: "mkdocs.yml",
		Keep: func(c *prompt.Context) bool { return c.MkDocs },
	},
	{
		Path: "Dockerfile",
		Keep: func(c *prompt.Context) bool { return c.Dockerfile },
	},
	{
		Path: "codecov.yaml",
		Keep: func(c *prompt.Context) bool { return c.Codecov },
	},
	{
		Path: ".devcontainer",
		Keep: func(c *prompt.Context) bool { return c.Devcontainer },
	},
}

// licenseFiles maps license choices to their rendered template file.
var licenseFiles = map[string]string{
	prompt.LicenseMIT:    "LICENSE_MIT",
	prompt.LicenseBSD:    "LICENSE_BSD",
	prompt.LicenseISC:    "LICENSE_ISC",
	prompt.LicenseApache: "LICENSE_APACHE",
	prompt.LicenseGPL:    "LICENSE_GPL",
}

// LicenseFile returns the rendered license file for a license choice, or
// "" for Proprietary (no license file is kept).
func LicenseFile(license string) string {
	return licenseFiles[license]
}

// AllLicenseFiles returns every candidate license file in the template.
func AllLicenseFiles() []string {
	return []string{"LICENSE_MIT", "LICENSE_BSD", "LICENSE_ISC", "LICENSE_APACHE", "LICENSE_GPL"}
}
