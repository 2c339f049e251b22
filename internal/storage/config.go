// Package storage loads adminui's user configuration file.
package storage

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jacksmith/adminui/internal/cli"
	"github.com/jacksmith/adminui/internal/source"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigFile is the name of the configuration file looked up in the
	// working directory when --config is not given.
	ConfigFile = ".adminui.yaml"

	// Default configuration values
	DefaultPageSize     = 10
	DefaultFetchTimeout = 30 * time.Second
	DefaultLogLevel     = "info"
	DefaultColor        = cli.ColorAuto
)

// Config represents user configuration from .adminui.yaml.
// This file is user-managed and never written by adminui.
type Config struct {
	// Source is the record source URI (see source.Open).
	Source string `yaml:"source"`

	// PageSize is the number of rows per page.
	PageSize int `yaml:"page_size"`

	// FetchTimeout bounds the initial fetch, e.g. "30s".
	FetchTimeout time.Duration `yaml:"fetch_timeout"`

	// LogFile receives diagnostic logs. Empty disables logging in the TUI.
	LogFile string `yaml:"log_file"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Color is auto, always or never.
	Color string `yaml:"color"`

	// S3 configures s3:// sources.
	S3 source.S3Config `yaml:"s3"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Source:       source.DefaultURI,
		PageSize:     DefaultPageSize,
		FetchTimeout: DefaultFetchTimeout,
		LogLevel:     DefaultLogLevel,
		Color:        DefaultColor,
	}
}

// LoadConfig loads the config file at path, merged over the defaults.
// An empty path means ConfigFile in the working directory, and a missing
// default file simply yields the defaults. A missing explicit path is an error.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = ConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			// No config file - return defaults
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	// Start with defaults
	cfg := DefaultConfig()

	// Parse YAML and merge with defaults
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.PageSize <= 0 {
		return fmt.Errorf("page_size must be positive, got %d", c.PageSize)
	}
	if c.FetchTimeout < 0 {
		return fmt.Errorf("fetch_timeout must not be negative")
	}
	switch c.Color {
	case cli.ColorAuto, cli.ColorAlways, cli.ColorNever:
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", c.Color)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLogLevel maps a level name to a slog.Level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("log_level must be debug, info, warn or error, got %q", s)
}
