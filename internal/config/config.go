// Package config loads and holds process-wide configuration.
//
// Configuration comes from an optional YAML file layered over built-in
// defaults; CLI flags override both. A missing config file is not an
// error.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/greenpath-labs/greenpath/internal/emissions"
)

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is a zerolog level name (trace, debug, info, warn, error).
	Level string `yaml:"level"`

	// Format is "console" or "json".
	Format string `yaml:"format"`

	// File, when set, appends logs to the given path as well.
	File string `yaml:"file"`
}

// EngineConfig holds the emission engine's configuration knobs.
type EngineConfig struct {
	// CarbonTaxRate is the carbon tax rate in USD per tonne CO2.
	CarbonTaxRate float64 `yaml:"carbon_tax_rate"`

	// MaxTimePenaltyPct is the default time-penalty budget for green
	// recommendations, in percent.
	MaxTimePenaltyPct float64 `yaml:"max_time_penalty_percent"`
}

// OutputConfig holds rendering defaults.
type OutputConfig struct {
	// DefaultFormat is "table" or "json".
	DefaultFormat string `yaml:"default_format"`
}

// Config is the full application configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Engine  EngineConfig  `yaml:"engine"`
	Output  OutputConfig  `yaml:"output"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Engine: EngineConfig{
			CarbonTaxRate:     emissions.DefaultCarbonTaxRate,
			MaxTimePenaltyPct: emissions.DefaultMaxTimePenaltyPct,
		},
		Output: OutputConfig{
			DefaultFormat: "table",
		},
	}
}

// DefaultPath returns the per-user config file location,
// $HOME/.greenpath/config.yaml, or "" when the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".greenpath", "config.yaml")
}

// Load reads the YAML file at path layered over Default. An empty path
// selects DefaultPath; a missing file yields the defaults without error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	if c.Engine.CarbonTaxRate < 0 {
		return fmt.Errorf("engine.carbon_tax_rate must be >= 0, got %v", c.Engine.CarbonTaxRate)
	}
	switch c.Output.DefaultFormat {
	case "table", "json":
	default:
		return fmt.Errorf("output.default_format must be table or json, got %q", c.Output.DefaultFormat)
	}
	return nil
}

// Global config, set once by the CLI at startup and read by subcommands.
var (
	global   *Config      //nolint:gochecknoglobals // Set once at startup, read by subcommands
	globalMu sync.RWMutex //nolint:gochecknoglobals // Protects global
)

// SetGlobal stores the process-wide configuration.
func SetGlobal(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	global = cfg
}

// GetGlobal returns the process-wide configuration, falling back to
// Default when none was set.
func GetGlobal() *Config {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if global == nil {
		return Default()
	}
	return global
}
