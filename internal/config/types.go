package config

import (
	"fmt"

	shellquote "github.com/kballard/go-shellquote"
	"gopkg.in/yaml.v3"

	"github.com/ripit/ripit-cli/pkg/pattern"
)

type Alias struct {
	Token     string `yaml:"token" json:"token"`
	Expansion string `yaml:"expansion" json:"expansion"`
}

type Backend struct {
	Binary      string  `yaml:"binary" json:"binary,omitempty"`
	DefaultArgs ArgList `yaml:"default_args" json:"default_args,omitempty"`
}

type Config struct {
	Backend Backend  `yaml:"backend" json:"backend"`
	Aliases []Alias  `yaml:"aliases" json:"aliases,omitempty"`
	Escapes []string `yaml:"escapes" json:"escapes,omitempty"`
}

// ArgList accepts either a YAML list of arguments or a single shell-quoted
// string such as "--type py -n".
type ArgList []string

func (a *ArgList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		words, err := shellquote.Split(value.Value)
		if err != nil {
			return fmt.Errorf("default_args: %w", err)
		}
		*a = words
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		*a = items
		return nil
	default:
		return fmt.Errorf("invalid default_args node kind: %d", value.Kind)
	}
}

// Table builds the translation table described by the config. Construction
// enforces the alias invariants (non-overlapping tokens, escapes outside
// tokens), so a failure here is a config error, not a translation error.
func (c Config) Table() (pattern.Table, error) {
	rules := make([]pattern.Rule, 0, len(c.Aliases))
	for _, a := range c.Aliases {
		rules = append(rules, pattern.Rule{Token: a.Token, Expansion: a.Expansion})
	}
	return pattern.New(rules, pattern.WithEscapes(c.Escapes...))
}
