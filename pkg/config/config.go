package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoSource is returned when no log source was configured.
var ErrNoSource = errors.New("source: a log source is required")

// Load reads and validates a configuration file. The export format is not
// checked; see ValidateFormat.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// An explicit empty "format:" keeps the default.
	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}

	cfg.Source = expandEnvVar(cfg.Source)
	cfg.Destination = expandEnvVar(cfg.Destination)
	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// FromEnvironment returns the defaults with environment overrides applied,
// for runs without a config file.
func FromEnvironment() *Config {
	cfg := DefaultConfig()
	cfg.applyEnvironmentOverrides()
	return cfg
}

// Validate checks the settings every run depends on. It does not modify
// cfg. The source may still be empty here since a flag can supply it; see
// RequireSource. The export format is checked separately by ValidateFormat,
// since only an export uses it.
func Validate(cfg *Config) error {
	if cfg.Indent < 0 || cfg.Indent > MaxIndent {
		return fmt.Errorf("indent: must be between 0 and %d, got %d", MaxIndent, cfg.Indent)
	}
	return nil
}

// ValidateFormat checks that cfg names a known export format.
func ValidateFormat(cfg *Config) error {
	switch cfg.Format {
	case FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("format: invalid format %q (must be json or yaml)", cfg.Format)
	}
}

// RequireSource fails with ErrNoSource when cfg has no source.
func RequireSource(cfg *Config) error {
	if strings.TrimSpace(cfg.Source) == "" {
		return ErrNoSource
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR} or $VAR.
func expandEnvVar(s string) string {
	if s == "" {
		return s
	}

	// Handle ${VAR} format
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		return os.Getenv(s[2 : len(s)-1])
	}

	// Handle $VAR format (no braces)
	if strings.HasPrefix(s, "$") && !strings.HasPrefix(s, "${") {
		return os.Getenv(s[1:])
	}

	return s
}
