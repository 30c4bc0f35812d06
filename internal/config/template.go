package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// configHeader is prepended to generated config files.
const configHeader = `# uvforge configuration.
#
# Values under "defaults" pre-answer the corresponding project options;
# anything left out is asked interactively or falls back to the built-in
# default. Environment variables (UVFORGE_AUTHOR, UVFORGE_EMAIL,
# UVFORGE_GITHUB_HANDLE, UVFORGE_PYTHON_VERSION) override file values.
`

// DefaultConfigYAML renders the default configuration as a commented
// YAML document, ready to be written by 'uvforge config init'.
func DefaultConfigYAML() (string, error) {
	body, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return "", fmt.Errorf("marshaling default config: %w", err)
	}

	return configHeader + "\n" + string(body), nil
}
