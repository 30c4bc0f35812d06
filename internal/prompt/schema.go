// Package prompt resolves template options into a fully-populated context.
package prompt

// OptionKind is the value type of a template option.
type OptionKind int

const (
	// KindString is a free-form string option.
	KindString OptionKind = iota

	// KindChoice is an enumerated choice option.
	KindChoice

	// KindBool is a yes/no option.
	KindBool
)

// Option describes a single template option.
type Option struct {
	// Name is the option key used in answer files and flags (snake_case).
	Name string

	// Title is the human-readable prompt shown in interactive mode.
	Title string

	// Kind is the option value type.
	Kind OptionKind

	// Default is the built-in default value ("y"/"n" for booleans).
	Default string

	// Choices lists valid values for KindChoice options.
	Choices []string
}

// Option names. These match the keys accepted in --answers files.
const (
	OptProjectName   = "project_name"
	OptProjectSlug   = "project_slug"
	OptDescription   = "description"
	OptAuthor        = "author"
	OptEmail         = "email"
	OptGithubHandle  = "github_handle"
	OptLicense       = "license"
	OptLayout        = "layout"
	OptPythonVersion = "python_version"
	OptGitProtocol   = "git_protocol"
	OptGithubActions = "include_github_actions"
	OptMkDocs        = "mkdocs"
	OptCodecov       = "codecov"
	OptDockerfile    = "dockerfile"
	OptDevcontainer  = "devcontainer"
	OptPublishPyPI   = "publish_to_pypi"
)

// License choices.
const (
	LicenseMIT         = "MIT"
	LicenseBSD         = "BSD"
	LicenseISC         = "ISC"
	LicenseApache      = "Apache-2.0"
	LicenseGPL         = "GPL-3.0"
	LicenseProprietary = "Proprietary"
)

// Layout choices.
const (
	LayoutFlat = "flat"
	LayoutSrc  = "src"
)

// Git protocol choices.
const (
	ProtocolSSH   = "ssh"
	ProtocolHTTPS = "https"
)

// schema is the ordered set of template options. Order matters for the
// interactive form and for `uvforge new --help` output.
var schema = []Option{
	{Name: OptProjectName, Title: "Project name", Kind: KindString},
	{Name: OptProjectSlug, Title: "Project slug (module name)", Kind: KindString},
	{Name: OptDescription, Title: "Short description", Kind: KindString,
		Default: "A Python project scaffolded with uvforge"},
	{Name: OptAuthor, Title: "Author name", Kind: KindString},
	{Name: OptEmail, Title: "Author email", Kind: KindString},
	{Name: OptGithubHandle, Title: "GitHub handle", Kind: KindString},
	{Name: OptLicense, Title: "License", Kind: KindChoice, Default: LicenseMIT,
		Choices: []string{LicenseMIT, LicenseBSD, LicenseISC, LicenseApache, LicenseGPL, LicenseProprietary}},
	{Name: OptLayout, Title: "Project layout", Kind: KindChoice, Default: LayoutSrc,
		Choices: []string{LayoutFlat, LayoutSrc}},
	{Name: OptPythonVersion, Title: "Python version", Kind: KindChoice, Default: "3.13",
		Choices: []string{"3.10", "3.11", "3.12", "3.13", "3.14"}},
	{Name: OptGitProtocol, Title: "Git remote protocol", Kind: KindChoice, Default: ProtocolSSH,
		Choices: []string{ProtocolSSH, ProtocolHTTPS}},
	{Name: OptGithubActions, Title: "Include GitHub Actions workflows?", Kind: KindBool, Default: "y"},
	{Name: OptMkDocs, Title: "Include MkDocs documentation?", Kind: KindBool, Default: "y"},
	{Name: OptCodecov, Title: "Include codecov configuration?", Kind: KindBool, Default: "y"},
	{Name: OptDockerfile, Title: "Include a Dockerfile?", Kind: KindBool, Default: "y"},
	{Name: OptDevcontainer, Title: "Include a devcontainer?", Kind: KindBool, Default: "n"},
	{Name: OptPublishPyPI, Title: "Publish releases to PyPI?", Kind: KindBool, Default: "n"},
}

// Options returns the ordered option schema.
func Options() []Option {
	out := make([]Option, len(schema))
	copy(out, schema)
	return out
}

// Lookup returns the option with the given name.
func Lookup(name string) (Option, bool) {
	for _, opt := range schema {
		if opt.Name == name {
			return opt, true
		}
	}
	return Option{}, false
}
