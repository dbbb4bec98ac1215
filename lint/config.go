// Copyright © 2026 The escope authors

package lint

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config controls which analyzers run, how their findings are
// levelled, and which ambient names count as declared.
//
// A typical rules file:
//
//	envs: [browser]
//	globals: [myAppConfig]
//	analyzers:
//	  no-eval:
//	    severity: error
//	  no-shadow:
//	    enabled: false
//	unused:
//	  ignore-parameters: true
type Config struct {
	// Analyzers maps analyzer names to per-check settings.
	Analyzers map[string]AnalyzerConfig `yaml:"analyzers"`

	// Envs names environment presets whose globals are treated as
	// declared. See EnvNames for the available presets.
	Envs []string `yaml:"envs"`

	// Globals lists additional names treated as declared.
	Globals []string `yaml:"globals"`

	// Unused tunes the no-unused-vars analyzer.
	Unused UnusedConfig `yaml:"unused"`
}

// AnalyzerConfig adjusts a single analyzer.
type AnalyzerConfig struct {
	// Enabled turns the analyzer off when set to false. Unset means
	// enabled.
	Enabled *bool `yaml:"enabled"`

	// Severity overrides the analyzer's default severity.
	Severity Severity `yaml:"severity"`
}

// UnusedConfig holds the ignore rules for no-unused-vars.
type UnusedConfig struct {
	IgnoreParameters       bool `yaml:"ignore-parameters"`
	IgnoreUnderscorePrefix bool `yaml:"ignore-underscore-prefix"`
}

// LoadConfig reads and parses a YAML rules file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig parses YAML rules file content.
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GlobalSet resolves the configured environments and extra globals into
// a single name set. The builtin ECMAScript globals are always present.
func (c *Config) GlobalSet() (map[string]bool, error) {
	set := builtinGlobalSet()
	for _, env := range c.Envs {
		names, ok := environments[env]
		if !ok {
			return nil, fmt.Errorf("unknown environment %q (have %s)", env, strings.Join(EnvNames(), ", "))
		}
		for _, name := range names {
			set[name] = true
		}
	}
	for _, name := range c.Globals {
		set[name] = true
	}
	return set, nil
}

// UnmarshalYAML deserializes a severity from a YAML string.
func (s *Severity) UnmarshalYAML(value *yaml.Node) error {
	var str string
	if err := value.Decode(&str); err != nil {
		return err
	}
	return s.set(str)
}
