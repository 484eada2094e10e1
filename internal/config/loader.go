package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var current Config

func Get() Config { return current }

// LoadDefaultsAndFiles unmarshals the embedded defaults, overlays each user
// file in order, validates the merged alias table and remembers the result
// for Get. Missing user files are the caller's problem; every path handed in
// must exist.
func LoadDefaultsAndFiles(defaultsYAML []byte, files []string) (Config, error) {
	var base Config
	if len(defaultsYAML) > 0 {
		if err := yaml.Unmarshal(defaultsYAML, &base); err != nil {
			return Config{}, fmt.Errorf("defaults: %w", err)
		}
	}
	merged := base
	for _, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			return Config{}, err
		}
		var part Config
		if err := yaml.Unmarshal(b, &part); err != nil {
			return Config{}, fmt.Errorf("%s: %w", f, err)
		}
		merged = mergeConfig(merged, part)
	}
	if _, err := merged.Table(); err != nil {
		return Config{}, fmt.Errorf("aliases: %w", err)
	}
	current = merged
	return merged, nil
}

func mergeConfig(base, overlay Config) Config {
	out := base
	if overlay.Backend.Binary != "" {
		out.Backend.Binary = overlay.Backend.Binary
	}
	if overlay.Backend.DefaultArgs != nil {
		out.Backend.DefaultArgs = overlay.Backend.DefaultArgs
	}
	if len(overlay.Escapes) > 0 {
		out.Escapes = overlay.Escapes
	}
	out.Aliases = mergeAliases(base.Aliases, overlay.Aliases)
	return out
}

// mergeAliases overrides same-token defaults in place so the declared order
// survives an override, and appends genuinely new tokens at the end.
func mergeAliases(base, overlay []Alias) []Alias {
	merged := append([]Alias(nil), base...)
	for _, a := range overlay {
		replaced := false
		for i, b := range merged {
			if b.Token == a.Token {
				merged[i] = a
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, a)
		}
	}
	return merged
}
