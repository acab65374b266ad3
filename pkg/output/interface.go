// Package output renders parsed records, aggregate tables and matched lines.
package output

import (
	"context"
	"fmt"
	"io"

	"github.com/ccollicutt/clflog/pkg/parser"
)

// DefaultIndent is the number of spaces used for pretty-printed exports.
const DefaultIndent = 4

// RecordFormatter serializes a sequence of parsed records.
type RecordFormatter interface {
	// Format renders records to the given writer.
	Format(ctx context.Context, records []parser.LogRecord, w io.Writer) error

	// Name returns the format name (json, yaml).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Indent is the number of spaces per nesting level.
	// Zero selects compact JSON and the YAML default.
	Indent int

	// OmitTrailingNewline drops the newline after a JSON document.
	// Exports written to a destination file end at the closing bracket.
	OmitTrailingNewline bool
}

// NewRecordFormatter returns the formatter registered under name.
func NewRecordFormatter(name string, opts FormatOptions) (RecordFormatter, error) {
	switch name {
	case "json":
		return NewJSONFormatter(opts), nil
	case "yaml":
		return NewYAMLFormatter(opts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use json or yaml)", name)
	}
}

// nonNil keeps an empty export rendering as an empty list rather than null.
func nonNil(records []parser.LogRecord) []parser.LogRecord {
	if records == nil {
		return []parser.LogRecord{}
	}
	return records
}
