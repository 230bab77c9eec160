package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Explorer ExplorerConfig
	Logging  LogConfig
	Metrics  MetricsConfig
}

// ExplorerConfig holds filesystem explorer settings.
type ExplorerConfig struct {
	StartDir      string `envconfig:"EXPLORER_START_DIR"`
	Output        string `envconfig:"EXPLORER_OUTPUT" default:"table"`
	DetectContent bool   `envconfig:"EXPLORER_DETECT_CONTENT" default:"true"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"warn"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// MetricsConfig holds operation metrics configuration.
type MetricsConfig struct {
	Enabled   bool   `envconfig:"METRICS_ENABLED" default:"true"`
	Namespace string `envconfig:"METRICS_NAMESPACE" default:"explorer"`
}

var validOutputs = map[string]bool{"table": true, "json": true, "yaml": true, "toml": true}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Explorer: ExplorerConfig{
			Output:        "table",
			DetectContent: true,
		},
		Logging: LogConfig{
			Level:       "warn",
			Development: false,
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: "explorer",
		},
	}
}

// Validate checks values envconfig cannot check on its own.
func (c *Config) Validate() error {
	if c.Explorer.StartDir != "" && !filepath.IsAbs(c.Explorer.StartDir) {
		return fmt.Errorf("EXPLORER_START_DIR must be absolute, got %q", c.Explorer.StartDir)
	}
	output := strings.ToLower(c.Explorer.Output)
	if !validOutputs[output] {
		return fmt.Errorf("invalid EXPLORER_OUTPUT %q (valid: table, json, yaml, toml)", c.Explorer.Output)
	}
	c.Explorer.Output = output
	return nil
}
