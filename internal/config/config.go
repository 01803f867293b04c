// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for chatboard.
//
// Settings are resolved in order of precedence:
//   - CHATBOARD_* environment variables
//   - ~/.chatboard/config.toml
//   - Built-in defaults
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"

	"github.com/jeranaias/chatboard-tui/internal/storage"
)

// envPrefix for environment variable overrides (CHATBOARD_DATA_FILE, ...).
const envPrefix = "chatboard"

// Config represents the complete chatboard configuration.
type Config struct {
	// DataFile is the board persistence file. Relative paths resolve
	// against the working directory.
	DataFile string `toml:"data_file" envconfig:"DATA_FILE"`

	// DefaultUsername pre-populates the active user at startup. May be
	// empty; the menu prompts for a name in that case.
	DefaultUsername string `toml:"default_username" envconfig:"USERNAME"`

	// Color toggles styled terminal output. NO_COLOR and non-TTY output
	// still disable colors regardless of this setting.
	Color bool `toml:"color" envconfig:"COLOR"`

	// LogLevel is a zerolog level name: debug, info, warn or error.
	LogLevel string `toml:"log_level" envconfig:"LOG_LEVEL"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataFile: storage.DefaultFileName,
		Color:    true,
		LogLevel: "warn",
	}
}

// Path returns the config file location (~/.chatboard/config.toml).
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".chatboard", "config.toml"), nil
}

// Load resolves the configuration from the default file location plus
// environment overrides. A missing config file is not an error.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		// No home directory: fall back to defaults plus environment.
		return loadFrom("")
	}
	return loadFrom(path)
}

// LoadFile resolves the configuration from an explicit file path plus
// environment overrides. The file must exist.
func LoadFile(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}
	return loadFrom(path)
}

func loadFrom(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the rest of the program
// cannot work with.
func (c Config) Validate() error {
	if c.DataFile == "" {
		return errors.New("data_file must not be empty")
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the configured zerolog level. Validate has already
// rejected unknown names; an unvalidated config falls back to warn.
func (c Config) Level() zerolog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return level
}

func parseLevel(name string) (zerolog.Level, error) {
	switch name {
	case "", "warn":
		return zerolog.WarnLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log_level %q", name)
	}
}
