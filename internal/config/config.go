// Package config handles configuration loading from TOML files and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/xonecas/tategaki/internal/kinsoku"
)

// Config is the root configuration structure.
type Config struct {
	Screen  ScreenConfig  `toml:"screen"`
	Kinsoku KinsokuConfig `toml:"kinsoku"`
	Store   StoreConfig   `toml:"store"`
	Log     LogConfig     `toml:"log"`
}

// ScreenConfig sets the size of the manuscript grid.
type ScreenConfig struct {
	// Lines is the number of vertical columns. Defaults to 20.
	Lines int `toml:"lines"`
	// Rows is the number of characters per column. Defaults to 20.
	Rows int `toml:"rows"`
}

// LinesOrDefault returns the configured column count or 20 if unset.
func (s ScreenConfig) LinesOrDefault() int {
	if s.Lines <= 0 {
		return 20
	}
	return s.Lines
}

// RowsOrDefault returns the configured column height or 20 if unset.
func (s ScreenConfig) RowsOrDefault() int {
	if s.Rows <= 0 {
		return 20
	}
	return s.Rows
}

// KinsokuConfig overrides the line breaking classes. A nil field keeps the
// built-in class; an empty string disables it.
type KinsokuConfig struct {
	Dangling  *string `toml:"dangling"`
	LineStart *string `toml:"line_start"`
	LineEnd   *string `toml:"line_end"`
}

// RuleSet builds the rules described by the configuration.
func (k KinsokuConfig) RuleSet() kinsoku.RuleSet {
	return kinsoku.New(
		orDefault(k.Dangling, kinsoku.DefaultDangling),
		orDefault(k.LineStart, kinsoku.DefaultLineStart),
		orDefault(k.LineEnd, kinsoku.DefaultLineEnd),
	)
}

func orDefault(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}

// StoreConfig holds document database settings.
type StoreConfig struct {
	Path            string `toml:"path"`
	AutosaveSeconds int    `toml:"autosave_seconds"`
}

// PathOrDefault returns the configured database path or tategaki.db in the data directory.
func (s StoreConfig) PathOrDefault() (string, error) {
	if s.Path != "" {
		return s.Path, nil
	}
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tategaki.db"), nil
}

// AutosaveOrDefault returns the autosave interval or 5 seconds if unset.
func (s StoreConfig) AutosaveOrDefault() time.Duration {
	if s.AutosaveSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(s.AutosaveSeconds) * time.Second
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// LevelOrDefault returns the configured zerolog level or info if unset.
func (l LogConfig) LevelOrDefault() zerolog.Level {
	if l.Level == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(l.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// FileOrDefault returns the log file path or tategaki.log in the data directory.
func (l LogConfig) FileOrDefault() (string, error) {
	if l.File != "" {
		return l.File, nil
	}
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tategaki.log"), nil
}

// Load reads configuration from a TOML file and applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		return nil, fmt.Errorf("config path is required")
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault loads path when it exists and falls back to defaults otherwise.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	cfg := &Config{}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	var errs []error

	if c.Screen.Lines < 0 || c.Screen.Lines > maxGrid {
		errs = append(errs, fmt.Errorf("screen.lines=%d must be between 0 and %d", c.Screen.Lines, maxGrid))
	}
	if c.Screen.Rows < 0 || c.Screen.Rows > maxGrid {
		errs = append(errs, fmt.Errorf("screen.rows=%d must be between 0 and %d", c.Screen.Rows, maxGrid))
	}
	if c.Store.AutosaveSeconds < 0 {
		errs = append(errs, fmt.Errorf("store.autosave_seconds=%d must not be negative", c.Store.AutosaveSeconds))
	}
	if c.Log.Level != "" {
		if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
			errs = append(errs, fmt.Errorf("log.level=%q is invalid: %v", c.Log.Level, err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

const maxGrid = 400

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	for _, setter := range []struct {
		env   string
		apply func(string)
	}{
		{"TATEGAKI_STORE", func(v string) {
			if v != "" {
				cfg.Store.Path = v
			}
		}},
		{"TATEGAKI_LOG_LEVEL", func(v string) {
			if v != "" {
				cfg.Log.Level = v
			}
		}},
	} {
		setter.apply(os.Getenv(setter.env))
	}
}

// DataDir returns the path to the data directory (~/.config/tategaki).
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tategaki"), nil
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", err
	}
	return dir, nil
}
