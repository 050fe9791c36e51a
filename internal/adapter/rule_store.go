package adapter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	m "github.com/mass-rename/regexrename/internal/model"
)

// RuleStore loads ordered rename rule tables from rule files.
type RuleStore interface {
	Load(path m.Path) ([]m.RuleSpec, error)
}

// ruleFile mirrors the structure of a YAML rule file:
//
//	rules:
//	  - pattern: "[[:space:]]+"
//	    template: "_"
type ruleFile struct {
	Rules []m.RuleSpec `yaml:"rules"`
}

type ruleStore struct{}

// NewRuleStore constructs a RuleStore backed by the local filesystem.
func NewRuleStore() RuleStore {
	return &ruleStore{}
}

// Load reads and decodes a YAML rule file. Patterns are not compiled
// here; the domain layer compiles them so pattern errors surface the
// same way for every rule source.
func (rs *ruleStore) Load(path m.Path) ([]m.RuleSpec, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("reading rule file %s: %w", path, err)
	}

	var file ruleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing rule file %s: %w", path, err)
	}

	if len(file.Rules) == 0 {
		return nil, fmt.Errorf("rule file %s contains no rules", path)
	}

	for i, spec := range file.Rules {
		if spec.Pattern == "" {
			return nil, fmt.Errorf("rule file %s: rule %d has an empty pattern", path, i+1)
		}
	}

	return file.Rules, nil
}
