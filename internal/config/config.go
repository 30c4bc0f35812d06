// Package config provides configuration loading and management.
package config

// DefaultsConfig contains default answers applied before prompting.
// Any option left empty falls back to the built-in schema default.
type DefaultsConfig struct {
	// Author is the default author name for generated projects.
	Author string `mapstructure:"author" yaml:"author,omitempty"`

	// Email is the default author email.
	Email string `mapstructure:"email" yaml:"email,omitempty"`

	// GithubHandle is the default GitHub handle used for repository URLs.
	GithubHandle string `mapstructure:"githubHandle" yaml:"githubHandle,omitempty"`

	// License is the default license choice.
	License string `mapstructure:"license" yaml:"license,omitempty"`

	// Layout is the default project layout (flat or src).
	Layout string `mapstructure:"layout" yaml:"layout,omitempty"`

	// PythonVersion is the default Python version for generated projects.
	PythonVersion string `mapstructure:"pythonVersion" yaml:"pythonVersion,omitempty"`

	// GitProtocol is the default remote protocol (ssh or https).
	GitProtocol string `mapstructure:"gitProtocol" yaml:"gitProtocol,omitempty"`
}

// AutomationConfig contains settings for post-generation automation.
type AutomationConfig struct {
	// GithubSetup enables the git/GitHub automation sequence after generation.
	// Default: false. Override with --github-setup flag.
	GithubSetup bool `mapstructure:"githubSetup" yaml:"githubSetup"`

	// DryRun prints automation commands instead of executing them.
	// Default: false. Override with --dry-run flag.
	DryRun bool `mapstructure:"dryRun" yaml:"dryRun"`
}

// Config represents the uvforge CLI configuration.
// Loaded from ~/.uvforge/config.yaml, overridable via UVFORGE_* env vars.
type Config struct {
	// Defaults contains default prompt answers.
	Defaults DefaultsConfig `mapstructure:"defaults" yaml:"defaults"`

	// Automation contains post-generation automation settings.
	Automation AutomationConfig `mapstructure:"automation" yaml:"automation"`

	// SkipPythonCheck disables the uv-managed Python version precondition.
	// Default: false. Override with --skip-python-check flag.
	SkipPythonCheck bool `mapstructure:"skipPythonCheck" yaml:"skipPythonCheck"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `uvforge config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			License:       "MIT",
			Layout:        "src",
			PythonVersion: "3.13",
			GitProtocol:   "ssh",
		},
	}
}
