// Package config loads parser configuration from YAML files
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kaleido-lang/kaleidoc/pkg/parser"
)

// Config holds the tunable parser settings: operator binding strengths
// and the expression nesting limit.
type Config struct {
	// Operators maps operator symbols to binding strengths.
	// Higher strengths bind tighter.
	Operators map[string]int `yaml:"operators"`

	// MaxNestingDepth bounds expression nesting during a parse.
	MaxNestingDepth int `yaml:"max_nesting_depth"`
}

// Default returns the configuration matching the built-in operator
// table and depth limit
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// Load reads configuration from a YAML file, applies defaults for
// missing fields, and validates the result
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// ApplyDefaults fills in default values for unset fields
func ApplyDefaults(cfg *Config) {
	if cfg.Operators == nil {
		cfg.Operators = map[string]int{
			"+": 20,
			"-": 20,
			"*": 40,
			"/": 40,
			"%": 40,
		}
	}
	if cfg.MaxNestingDepth == 0 {
		cfg.MaxNestingDepth = parser.DefaultMaxDepth
	}
}

// Validate checks the configuration for invalid values
func Validate(cfg *Config) error {
	if _, err := parser.TableFromSymbols(cfg.Operators); err != nil {
		return err
	}
	for sym, prec := range cfg.Operators {
		if prec < 0 {
			return fmt.Errorf("operator %q: precedence must be non-negative, got %d", sym, prec)
		}
	}
	if cfg.MaxNestingDepth <= 0 {
		return fmt.Errorf("max_nesting_depth must be positive, got %d", cfg.MaxNestingDepth)
	}
	return nil
}

// Table converts the configured operator map to a parser OpTable
func (c *Config) Table() (parser.OpTable, error) {
	return parser.TableFromSymbols(c.Operators)
}
