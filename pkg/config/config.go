// 19 Oct 2026

// Package config reads the optional YAML settings file. Anything set
// on the command line wins over the file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings that can live in a file.
type Config struct {
	Strict  bool   `yaml:"strict"`   // malformed matrix lines are errors
	AnyNtax bool   `yaml:"any_ntax"` // rewrite NTAX= outside dimensions lines
	Report  string `yaml:"report"`   // group report file
	DryRun  bool   `yaml:"dry_run"`
	Verbose bool   `yaml:"verbose"`
}

// DefaultConfig is what you get with no file.
func DefaultConfig() *Config { return &Config{} }

// Load reads configuration from a YAML file. An empty path or a file
// that does not exist gives the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
