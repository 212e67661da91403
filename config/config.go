package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/BurntSushi/toml"
)

// DefaultPath is read when no path is given and the file exists.
const DefaultPath = "propane.toml"

// Config holds the driver configuration
type Config struct {
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	Log         LogConfig         `toml:"log"`
	Build       BuildConfig       `toml:"build"`
}

// DiagnosticsConfig controls how diagnostics are rendered
type DiagnosticsConfig struct {
	Color    string `toml:"color"`
	TabWidth int    `toml:"tab_width"`
}

// LogConfig controls driver logging
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// BuildConfig controls how many files are processed at once
type BuildConfig struct {
	Jobs int `toml:"jobs"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file. An empty path loads
// DefaultPath if it exists and the defaults otherwise.
func Load(path string) (*Config, error) {
	if path == "" {
		if env := os.Getenv("PROPANE_CONFIG"); env != "" {
			path = env
		} else if _, err := os.Stat(DefaultPath); err == nil {
			path = DefaultPath
		} else {
			return Default(), nil
		}
	}

	path = os.ExpandEnv(path)

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Diagnostics.Color == "" {
		c.Diagnostics.Color = "auto"
	}
	if c.Diagnostics.TabWidth == 0 {
		c.Diagnostics.TabWidth = 4
	}

	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}

	if c.Build.Jobs == 0 {
		c.Build.Jobs = runtime.GOMAXPROCS(0)
	}
}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	switch c.Diagnostics.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("diagnostics.color must be auto, always or never, got %q", c.Diagnostics.Color)
	}

	if c.Diagnostics.TabWidth < 1 || c.Diagnostics.TabWidth > 16 {
		return fmt.Errorf("diagnostics.tab_width must be between 1 and 16, got %d", c.Diagnostics.TabWidth)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}

	if c.Build.Jobs < 1 {
		return fmt.Errorf("build.jobs must be positive, got %d", c.Build.Jobs)
	}

	return nil
}
