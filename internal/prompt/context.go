package prompt

import (
	"fmt"
	"strings"

	oerrors "github.com/uvforge/cli/internal/errors"
)

// Context is the fully-resolved set of template options. Every field has a
// value before rendering begins.
type Context struct {
	ProjectName  string
	ProjectSlug  string
	Description  string
	Author       string
	Email        string
	GithubHandle string

	License       string
	Layout        string
	PythonVersion string
	GitProtocol   string

	IncludeGithubActions bool
	MkDocs               bool
	Codecov              bool
	Dockerfile           bool
	Devcontainer         bool
	PublishToPyPI        bool
}

// Answers is the raw option-name to value mapping collected from defaults,
// config, answer files, flags, and the interactive form. Boolean answers
// use "y"/"n"; parsing is lenient about
// yes/no/true/false variants.
type Answers map[string]string

// Merge overlays other on top of a, skipping empty values.
func (a Answers) Merge(other Answers) {
	for k, v := range other {
		if v != "" {
			a[k] = v
		}
	}
}

// ApplyDefaults fills unanswered options with their schema defaults.
func (a Answers) ApplyDefaults() {
	for _, opt := range schema {
		if a[opt.Name] == "" && opt.Default != "" {
			a[opt.Name] = opt.Default
		}
	}
}

// Unanswered returns the options that still have no value.
func (a Answers) Unanswered() []Option {
	var missing []Option
	for _, opt := range schema {
		if a[opt.Name] == "" {
			missing = append(missing, opt)
		}
	}
	return missing
}

// Resolve validates the answers and produces a Context.
// The project slug is derived from the project name unless explicitly set.
func Resolve(a Answers) (*Context, error) {
	for name := range a {
		if _, ok := Lookup(name); !ok {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("unknown option %q", name),
				name,
				"Run 'uvforge new --help' for the list of options",
			)
		}
	}

	a.ApplyDefaults()

	name := a[OptProjectName]
	if name == "" {
		return nil, oerrors.NewValidationError(
			"project name is required",
			OptProjectName,
			"Pass the project name as the first argument to 'uvforge new'",
		)
	}
	if err := ValidateProjectName(name); err != nil {
		return nil, err
	}

	slug := a[OptProjectSlug]
	if slug == "" {
		slug = DeriveSlug(name)
	}
	if err := ValidateProjectSlug(slug); err != nil {
		return nil, err
	}

	ctx := &Context{
		ProjectName:  name,
		ProjectSlug:  slug,
		Description:  a[OptDescription],
		Author:       a[OptAuthor],
		Email:        a[OptEmail],
		GithubHandle: a[OptGithubHandle],
	}

	var err error
	if ctx.License, err = resolveChoice(a, OptLicense); err != nil {
		return nil, err
	}
	if ctx.Layout, err = resolveChoice(a, OptLayout); err != nil {
		return nil, err
	}
	if ctx.PythonVersion, err = resolveChoice(a, OptPythonVersion); err != nil {
		return nil, err
	}
	if ctx.GitProtocol, err = resolveChoice(a, OptGitProtocol); err != nil {
		return nil, err
	}

	if ctx.IncludeGithubActions, err = resolveBool(a, OptGithubActions); err != nil {
		return nil, err
	}
	if ctx.MkDocs, err = resolveBool(a, OptMkDocs); err != nil {
		return nil, err
	}
	if ctx.Codecov, err = resolveBool(a, OptCodecov); err != nil {
		return nil, err
	}
	if ctx.Dockerfile, err = resolveBool(a, OptDockerfile); err != nil {
		return nil, err
	}
	if ctx.Devcontainer, err = resolveBool(a, OptDevcontainer); err != nil {
		return nil, err
	}
	if ctx.PublishToPyPI, err = resolveBool(a, OptPublishPyPI); err != nil {
		return nil, err
	}

	return ctx, nil
}

// resolveChoice validates an answer against the option's choice list.
func resolveChoice(a Answers, name string) (string, error) {
	opt, _ := Lookup(name)
	value := a[name]

	for _, c := range opt.Choices {
		if value == c {
			return value, nil
		}
	}

	return "", oerrors.NewValidationError(
		fmt.Sprintf("invalid value %q", value),
		name,
		"Valid values: "+strings.Join(opt.Choices, ", "),
	)
}

// resolveBool parses a yes/no answer.
func resolveBool(a Answers, name string) (bool, error) {
	switch strings.ToLower(a[name]) {
	case "y", "yes", "true", "1":
		return true, nil
	case "n", "no", "false", "0":
		return false, nil
	}

	return false, oerrors.NewValidationError(
		fmt.Sprintf("invalid value %q", a[name]),
		name,
		`Use "y" or "n"`,
	)
}

// RepoURL returns the remote URL for the project under the resolved
// GitHub handle, using the selected protocol.
func (c *Context) RepoURL() string {
	if c.GitProtocol == ProtocolSSH {
		return fmt.Sprintf("git@github.com:%s/%s.git", c.GithubHandle, c.ProjectName)
	}
	return fmt.Sprintf("https://github.com/%s/%s.git", c.GithubHandle, c.ProjectName)
}
