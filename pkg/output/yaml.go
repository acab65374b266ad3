package output

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ccollicutt/clflog/pkg/parser"
)

// YAMLFormatter formats records as a YAML sequence.
type YAMLFormatter struct {
	opts FormatOptions
}

// NewYAMLFormatter creates a new YAML formatter with the given options.
func NewYAMLFormatter(opts FormatOptions) *YAMLFormatter {
	return &YAMLFormatter{opts: opts}
}

// Name returns the format name.
func (f *YAMLFormatter) Name() string {
	return "yaml"
}

// Format renders the records as a YAML list of mappings.
func (f *YAMLFormatter) Format(ctx context.Context, records []parser.LogRecord, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	if f.opts.Indent > 0 {
		encoder.SetIndent(f.opts.Indent)
	}

	if err := encoder.Encode(nonNil(records)); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return encoder.Close()
}
