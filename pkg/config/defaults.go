package config

import "os"

// Default values for configuration.
const (
	DefaultFormat = FormatJSON
	DefaultIndent = 4
	MaxIndent     = 16
)

// Environment variable names.
const (
	EnvSource      = "CLFLOG_SOURCE"
	EnvDestination = "CLFLOG_DESTINATION"
	EnvFormat      = "CLFLOG_FORMAT"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Format: DefaultFormat,
		Indent: DefaultIndent,
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if source := os.Getenv(EnvSource); source != "" {
		c.Source = source
	}
	if dest := os.Getenv(EnvDestination); dest != "" {
		c.Destination = dest
	}
	if format := os.Getenv(EnvFormat); format != "" {
		c.Format = format
	}
}
