// Package aggregator counts request paths by HTTP status-code class.
package aggregator

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ccollicutt/clflog/pkg/parser"
)

// StatusClassSuffix follows the leading status digit in a class name.
const StatusClassSuffix = "XX's"

// ErrMalformedRequest indicates a record whose request is not exactly
// method, path and protocol. Records built by the parser never trigger it.
var ErrMalformedRequest = errors.New("malformed request")

// StatusClass returns the aggregation bucket of a status code, e.g. "404" -> "4XX's".
func StatusClass(status string) string {
	for _, r := range status {
		return string(r) + StatusClassSuffix
	}
	return StatusClassSuffix
}

// RequestPath returns the path token of a "method path protocol" request.
func RequestPath(request string) (string, error) {
	parts := strings.Fields(request)
	if len(parts) != 3 {
		return "", fmt.Errorf("%w: %q has %d tokens, want 3", ErrMalformedRequest, request, len(parts))
	}
	return parts[1], nil
}

// Aggregate builds the path by status-class table for records.
//
// Classes are collected over all records first and sorted lexically, so
// every path row carries the same columns. Rows keep first-seen path order.
func Aggregate(records []parser.LogRecord) (*Table, error) {
	seen := make(map[string]bool)
	var classes []string
	for _, rec := range records {
		class := StatusClass(rec.Status)
		if !seen[class] {
			seen[class] = true
			classes = append(classes, class)
		}
	}
	sort.Strings(classes)

	table := newTable(classes)
	for i, rec := range records {
		path, err := RequestPath(rec.Request)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		table.increment(path, StatusClass(rec.Status))
	}

	return table, nil
}
