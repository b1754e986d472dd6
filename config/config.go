// Package config loads the YAML run configuration for the gainloss CLI by
// unmarshalling a single top-level struct with gopkg.in/yaml.v3 (called
// from cmd/gainloss/main.go's loadConfig).
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidMode indicates a mode specification string is neither a
// weighted ("w-{g}-{l}") nor a restricted ("r-{k}") mode (spec §7
// InvalidMode).
var ErrInvalidMode = errors.New("config: invalid mode specification")

// Config is the top-level run configuration.
type Config struct {
	Dataset   string   `yaml:"dataset"`
	Wordlist  string   `yaml:"wordlist"`
	Tree      string   `yaml:"tree"`
	Layout    string   `yaml:"layout"`
	OutputDir string   `yaml:"output_dir"`
	Modes     []string `yaml:"modes"`
	Threshold int64    `yaml:"threshold"`
	Workers   int      `yaml:"workers"`
}

// Load reads and parses a YAML config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return &cfg, nil
}
