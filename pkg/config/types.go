// Package config provides configuration loading and validation for clflog.
package config

// Config holds defaults for the root command, loaded from YAML.
// Command-line flags override every field.
type Config struct {
	// Source is the log file to read. It may be a glob matching exactly one
	// file, "-" for standard input, or literal log text.
	Source string `yaml:"source"`

	// Destination is the export target. Empty means standard output.
	Destination string `yaml:"destination,omitempty"`

	// Format is the export encoding: json or yaml.
	Format string `yaml:"format"`

	// Indent is the number of spaces per nesting level in exports.
	Indent int `yaml:"indent"`
}

// Export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)
