package config

import (
	"fmt"
	"strings"

	oerrors "github.com/uvforge/cli/internal/errors"
	"github.com/uvforge/cli/internal/prompt"
)

// Validate checks every configured default against the option schema and
// returns one error per invalid value. An empty config is valid.
func (c *Config) Validate() []error {
	var errs []error

	check := func(optName, value string) {
		if value == "" {
			return
		}
		opt, ok := prompt.Lookup(optName)
		if !ok || opt.Kind != prompt.KindChoice {
			return
		}
		for _, choice := range opt.Choices {
			if value == choice {
				return
			}
		}
		errs = append(errs, oerrors.NewValidationError(
			fmt.Sprintf("invalid default %q", value),
			optName,
			"Valid values: "+strings.Join(opt.Choices, ", "),
		))
	}

	check(prompt.OptLicense, c.Defaults.License)
	check(prompt.OptLayout, c.Defaults.Layout)
	check(prompt.OptPythonVersion, c.Defaults.PythonVersion)
	check(prompt.OptGitProtocol, c.Defaults.GitProtocol)

	if c.Defaults.Email != "" && !strings.Contains(c.Defaults.Email, "@") {
		errs = append(errs, oerrors.NewValidationError(
			fmt.Sprintf("invalid default email %q", c.Defaults.Email),
			prompt.OptEmail,
			"Provide a full email address",
		))
	}

	return errs
}

// AsAnswers converts the configured defaults into prompt answers. Empty
// values are omitted so later sources keep their precedence.
func (c *Config) AsAnswers() prompt.Answers {
	a := prompt.Answers{}
	set := func(name, value string) {
		if value != "" {
			a[name] = value
		}
	}

	set(prompt.OptAuthor, c.Defaults.Author)
	set(prompt.OptEmail, c.Defaults.Email)
	set(prompt.OptGithubHandle, c.Defaults.GithubHandle)
	set(prompt.OptLicense, c.Defaults.License)
	set(prompt.OptLayout, c.Defaults.Layout)
	set(prompt.OptPythonVersion, c.Defaults.PythonVersion)
	set(prompt.OptGitProtocol, c.Defaults.GitProtocol)

	return a
}
