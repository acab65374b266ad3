package output

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ccollicutt/clflog/pkg/aggregator"
)

// AggregateFormatter formats a path by status-class table as text.
type AggregateFormatter struct{}

// NewAggregateFormatter creates a new aggregate text formatter.
func NewAggregateFormatter() *AggregateFormatter {
	return &AggregateFormatter{}
}

// Name returns the format name.
func (f *AggregateFormatter) Name() string {
	return "text"
}

// Format renders one block per path, each preceded by a blank line:
//
//	Request path: '/blog'
//	Status: 2XX's (1)
func (f *AggregateFormatter) Format(ctx context.Context, table *aggregator.Table, w io.Writer) error {
	for _, row := range table.Rows() {
		if _, err := fmt.Fprintf(w, "\nRequest path: '%s'\n", row.Path); err != nil {
			return err
		}
		for _, c := range row.Counts {
			if _, err := fmt.Fprintf(w, "Status: %s (%d)\n", c.Class, c.Count); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteLines prints matched lines joined by newlines, followed by a final
// newline. An empty result prints a single empty line.
func WriteLines(w io.Writer, lines []string) error {
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}
