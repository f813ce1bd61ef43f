package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Debounce DebounceConfig `yaml:"debounce"`
	Output   OutputConfig   `yaml:"output"`
	LogLevel string         `yaml:"log_level"`
}

// DebounceConfig holds session timing.
type DebounceConfig struct {
	Quiet    time.Duration `yaml:"quiet"`    // silence after the last key before a flush
	Watchdog time.Duration `yaml:"watchdog"` // first check after a session starts
}

// OutputConfig holds emission settings.
type OutputConfig struct {
	Format           string `yaml:"format"`     // "text", "json" or "log"
	QueueSize        int    `yaml:"queue_size"` // 0 emits synchronously
	PlaceholderTitle string `yaml:"placeholder_title"`
	ControlPrefix    string `yaml:"control_prefix"`
}

// DefaultConfigDir returns the default config directory path.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "keysession")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Debounce: DebounceConfig{
			Quiet:    900 * time.Millisecond,
			Watchdog: time.Second,
		},
		Output: OutputConfig{
			Format:           "text",
			QueueSize:        64,
			PlaceholderTitle: "<unknown window>",
			ControlPrefix:    "Cntrl+",
		},
		LogLevel: "info",
	}
}

// Load reads and parses a YAML config file. Missing fields are filled
// with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// Validate checks the config for invalid values.
func (c *Config) Validate() error {
	if c.Debounce.Quiet <= 0 {
		return fmt.Errorf("debounce.quiet must be > 0")
	}

	if c.Debounce.Watchdog <= 0 {
		return fmt.Errorf("debounce.watchdog must be > 0")
	}

	if c.Debounce.Quiet > c.Debounce.Watchdog {
		return fmt.Errorf("debounce.quiet (%s) must not exceed debounce.watchdog (%s)", c.Debounce.Quiet, c.Debounce.Watchdog)
	}

	switch c.Output.Format {
	case "text", "json", "log":
	default:
		return fmt.Errorf("output.format must be text, json, or log, got %q", c.Output.Format)
	}

	if c.Output.QueueSize < 0 {
		return fmt.Errorf("output.queue_size must be >= 0")
	}

	if c.Output.PlaceholderTitle == "" {
		return fmt.Errorf("output.placeholder_title must not be empty")
	}

	if c.Output.ControlPrefix == "" {
		return fmt.Errorf("output.control_prefix must not be empty")
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn, or error, got %q", c.LogLevel)
	}

	return nil
}

// ParseLogLevel maps a log_level string to a slog.Level. Unknown values
// map to info.
func ParseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
