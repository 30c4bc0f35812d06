package prompt

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadAnswersFile reads an answers YAML file: a flat mapping of option
// names to values. Booleans may be written as y/n or YAML booleans.
func LoadAnswersFile(path string) (Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers file: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing answers file %s: %w", path, err)
	}

	answers := make(Answers, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case string:
			answers[k] = val
		case bool:
			if val {
				answers[k] = "y"
			} else {
				answers[k] = "n"
			}
		case int, float64:
			answers[k] = fmt.Sprintf("%v", val)
		default:
			return nil, fmt.Errorf("answers file %s: option %q has unsupported value type %T", path, k, v)
		}
	}

	return answers, nil
}
