// Package config handles configuration file loading and parsing for the
// plotkit CLI.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/jmylchreest/plotkit/pkg/plotkit/export"
)

// Default configuration values.
const (
	DefaultOutputDir = "charts"
	DefaultSheet     = ""
)

// Config represents the plotkit CLI configuration.
type Config struct {
	Output OutputConfig `toml:"output"`
	Input  InputConfig  `toml:"input"`
}

// OutputConfig holds export defaults.
type OutputConfig struct {
	Dir              string  `toml:"dir"`                // Directory exported charts land in
	Width            int     `toml:"width"`              // Logical width in pixels
	Height           int     `toml:"height"`             // Logical height in pixels
	Scale            float64 `toml:"scale"`              // Standard-tier scale multiplier
	HighQualityScale float64 `toml:"high_quality_scale"` // High-DPI tier scale multiplier
}

// InputConfig holds frame-loading defaults.
type InputConfig struct {
	Sheet   string `toml:"sheet"`    // Workbook sheet ("" = first sheet)
	XColumn string `toml:"x_column"` // Column plotted on the x axis
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:              DefaultOutputDir,
			Width:            export.DefaultWidth,
			Height:           export.DefaultHeight,
			Scale:            export.DefaultScale,
			HighQualityScale: export.DefaultHighQualityScale,
		},
		Input: InputConfig{
			Sheet:   DefaultSheet,
			XColumn: "ts",
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "plotkit", "config.toml")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	// Start with defaults
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// No config file, use defaults
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
