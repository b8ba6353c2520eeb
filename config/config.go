// Package config loads application configuration from an optional JSON or
// YAML file with environment-variable overrides, and applies defaults so the
// tool runs with no configuration at all.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/tsawler/vigilia/standby"
	"github.com/tsawler/vigilia/timetable"
)

// Config is the full application configuration.
type Config struct {
	Tolerances timetable.Tolerances `json:"tolerances"`
	Standby    standby.Config       `json:"standby"`
	Logging    LoggingConfig        `json:"logging"`
	// StateDir is where schedules, exclusions and the selection are
	// persisted.
	StateDir string `json:"state_dir"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults fills unset fields across all sections.
func (c *Config) SetDefaults() {
	c.Tolerances.SetDefaults()
	c.Standby.SetDefaults()
	c.Logging.SetDefaults()
	if c.StateDir == "" {
		c.StateDir = "state"
	}
}

// Validate checks all sections.
func (c *Config) Validate() error {
	if err := c.Tolerances.Validate(); err != nil {
		return fmt.Errorf("tolerances: %w", err)
	}
	if err := c.Standby.Validate(); err != nil {
		return fmt.Errorf("standby: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

// Load reads configuration from the given file, applies environment
// overrides (VIGILIA_ prefix, __ as the section separator), fills defaults
// and validates. An empty path loads defaults plus environment overrides.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		var parser koanf.Parser
		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}

	if err := k.Load(env.Provider("VIGILIA_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "vigilia_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
