package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Debounce.Quiet != 900*time.Millisecond {
		t.Errorf("Debounce.Quiet = %s, want 900ms", cfg.Debounce.Quiet)
	}
	if cfg.Debounce.Watchdog != time.Second {
		t.Errorf("Debounce.Watchdog = %s, want 1s", cfg.Debounce.Watchdog)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, "text")
	}
	if cfg.Output.QueueSize != 64 {
		t.Errorf("Output.QueueSize = %d, want 64", cfg.Output.QueueSize)
	}
	if cfg.Output.ControlPrefix != "Cntrl+" {
		t.Errorf("Output.ControlPrefix = %q, want %q", cfg.Output.ControlPrefix, "Cntrl+")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoad(t *testing.T) {
	yamlContent := `
debounce:
  quiet: 500ms
  watchdog: 2s
output:
  format: json
  queue_size: 0
  placeholder_title: "?"
  control_prefix: "^"
log_level: debug
`
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Debounce.Quiet != 500*time.Millisecond {
		t.Errorf("Debounce.Quiet = %s, want 500ms", cfg.Debounce.Quiet)
	}
	if cfg.Debounce.Watchdog != 2*time.Second {
		t.Errorf("Debounce.Watchdog = %s, want 2s", cfg.Debounce.Watchdog)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, "json")
	}
	if cfg.Output.QueueSize != 0 {
		t.Errorf("Output.QueueSize = %d, want 0", cfg.Output.QueueSize)
	}
	if cfg.Output.PlaceholderTitle != "?" {
		t.Errorf("Output.PlaceholderTitle = %q, want %q", cfg.Output.PlaceholderTitle, "?")
	}
	if cfg.Output.ControlPrefix != "^" {
		t.Errorf("Output.ControlPrefix = %q, want %q", cfg.Output.ControlPrefix, "^")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	yamlContent := `
output:
  format: log
`
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output.Format != "log" {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, "log")
	}
	if cfg.Debounce.Quiet != 900*time.Millisecond {
		t.Errorf("Debounce.Quiet = %s, want default 900ms", cfg.Debounce.Quiet)
	}
	if cfg.Output.PlaceholderTitle != "<unknown window>" {
		t.Errorf("Output.PlaceholderTitle = %q, want default", cfg.Output.PlaceholderTitle)
	}
}

func TestLoadFileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("debounce:\n  quiet: [1, 2\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	if _, err := Load(cfgPath); err == nil {
		t.Error("Load() should fail on malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "quiet equal to watchdog",
			modify:  func(c *Config) { c.Debounce.Quiet = c.Debounce.Watchdog },
			wantErr: false,
		},
		{
			name:    "zero quiet",
			modify:  func(c *Config) { c.Debounce.Quiet = 0 },
			wantErr: true,
		},
		{
			name:    "zero watchdog",
			modify:  func(c *Config) { c.Debounce.Watchdog = 0 },
			wantErr: true,
		},
		{
			name:    "quiet exceeds watchdog",
			modify:  func(c *Config) { c.Debounce.Quiet = 3 * time.Second },
			wantErr: true,
		},
		{
			name:    "invalid format",
			modify:  func(c *Config) { c.Output.Format = "xml" },
			wantErr: true,
		},
		{
			name:    "negative queue size",
			modify:  func(c *Config) { c.Output.QueueSize = -1 },
			wantErr: true,
		},
		{
			name:    "empty placeholder title",
			modify:  func(c *Config) { c.Output.PlaceholderTitle = "" },
			wantErr: true,
		},
		{
			name:    "empty control prefix",
			modify:  func(c *Config) { c.Output.ControlPrefix = "" },
			wantErr: true,
		},
		{
			name:    "invalid log level",
			modify:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	if path == "" {
		t.Skip("cannot determine home directory")
	}
	if filepath.Base(path) != "config.yaml" {
		t.Errorf("DefaultConfigPath() = %q, want config.yaml basename", path)
	}
	if filepath.Base(filepath.Dir(path)) != "keysession" {
		t.Errorf("DefaultConfigPath() = %q, want keysession directory", path)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // defaults to info
		{"", slog.LevelInfo},        // defaults to info
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLogLevel(tt.input)
			if got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
