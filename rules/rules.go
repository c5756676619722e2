// Package rules loads the YAML rule-file format the CLI and the lexer
// compiler share: an ordered list of (name, pattern) pairs, list order
// doubling as rule priority.
package rules

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Rule is one YAML rule-file entry.
type Rule struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
}

type ruleFile struct {
	Rules []Rule `yaml:"rules"`
}

// Load reads and unmarshals a rule file, validating that every rule has
// a non-empty name and pattern. The returned slice preserves the YAML
// sequence's order.
func Load(path string) ([]Rule, error) {
	bin, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rules: %w", err)
	}
	var f ruleFile
	if err := yaml.Unmarshal(bin, &f); err != nil {
		return nil, fmt.Errorf("rules: %w", err)
	}
	for i, r := range f.Rules {
		if r.Name == "" {
			return nil, fmt.Errorf("rules: rule %d has an empty name", i)
		}
		if r.Pattern == "" {
			return nil, fmt.Errorf("rules: rule %q has an empty pattern", r.Name)
		}
	}
	return f.Rules, nil
}

var sample = ruleFile{
	Rules: []Rule{
		{Name: "number", Pattern: "[0-9]+"},
		{Name: "id", Pattern: "[a-z]([a-z]|[0-9])*"},
	},
}

// GenerateSample writes an example rule file to path.
func GenerateSample(path string) error {
	bin, err := yaml.Marshal(sample)
	if err != nil {
		return fmt.Errorf("rules: %w", err)
	}
	return os.WriteFile(path, bin, 0644)
}
