// Package query selects raw access-log lines by status code or request path.
//
// Lines are matched on their own tokens rather than on parsed records so the
// original text is returned verbatim.
package query

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ccollicutt/clflog/pkg/parser"
)

// By selects which field a query is compared against.
type By string

const (
	// ByStatus compares the status token.
	ByStatus By = "status"
	// ByRequest compares the path component of the request.
	ByRequest By = "request"
)

// ErrUnknownDiscriminator is returned for a By value other than status or request.
var ErrUnknownDiscriminator = errors.New("unknown query discriminator")

// ParseBy validates a discriminator name.
func ParseBy(s string) (By, error) {
	switch By(s) {
	case ByStatus, ByRequest:
		return By(s), nil
	default:
		return "", fmt.Errorf("%w %q (must be status or request)", ErrUnknownDiscriminator, s)
	}
}

// Query holds the optional status and request filters.
type Query struct {
	Status  string
	Request string
}

// IsEmpty returns true when neither filter is set.
func (q Query) IsEmpty() bool {
	return q.Status == "" && q.Request == ""
}

// FilterFile reads path whole and returns the lines matching q.
// Line endings are normalized with parser.NormalizeNewlines, so matched
// lines never carry a trailing "\r". Unlike parser.LoadSource there is no
// literal-text fallback: a missing file is an error.
func FilterFile(path, q string, by By) ([]string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("reading log file: %w", err)
	}
	return FilterText(parser.NormalizeNewlines(string(data)), q, by)
}

// FilterText returns the lines of text matching q, in order.
// Lines with fewer than parser.MinTokens tokens never match.
func FilterText(text, q string, by By) ([]string, error) {
	if _, err := ParseBy(string(by)); err != nil {
		return nil, err
	}

	var matches []string
	for _, line := range strings.Split(text, "\n") {
		tokens, ok := parser.Tokenize(line)
		if !ok {
			continue
		}

		switch by {
		case ByStatus:
			if tokens[parser.FieldStatus] == q {
				matches = append(matches, line)
			}
		case ByRequest:
			path, err := requestPath(tokens)
			if err != nil {
				return nil, err
			}
			if path == q {
				matches = append(matches, line)
			}
		}
	}

	return matches, nil
}

func requestPath(tokens []string) (string, error) {
	request := strings.Join(tokens[parser.FieldMethod:parser.FieldProtocol+1], " ")
	parts := strings.Fields(request)
	if len(parts) != 3 {
		return "", fmt.Errorf("request %q: want method, path and protocol", request)
	}
	return parts[1], nil
}

// Intersect keeps the request-filtered lines, in their order, whose text
// also occurs in the status-filtered lines. Membership is by exact text,
// so duplicate source lines are not counted against each other.
func Intersect(requestLines, statusLines []string) []string {
	inStatus := make(map[string]struct{}, len(statusLines))
	for _, line := range statusLines {
		inStatus[line] = struct{}{}
	}

	var out []string
	for _, line := range requestLines {
		if _, ok := inStatus[line]; ok {
			out = append(out, line)
		}
	}
	return out
}

// Run applies the filters set in q to the file at path. When both are set
// the result is Intersect of the request and status matches. Each filter
// reads the file on its own.
func Run(path string, q Query) ([]string, error) {
	return run(q, func(value string, by By) ([]string, error) {
		return FilterFile(path, value, by)
	})
}

// RunText is Run over log text already held in memory.
func RunText(text string, q Query) ([]string, error) {
	return run(q, func(value string, by By) ([]string, error) {
		return FilterText(text, value, by)
	})
}

func run(q Query, filter func(value string, by By) ([]string, error)) ([]string, error) {
	var statusLines, requestLines []string
	var err error

	if q.Status != "" {
		statusLines, err = filter(q.Status, ByStatus)
		if err != nil {
			return nil, fmt.Errorf("filtering by status: %w", err)
		}
	}
	if q.Request != "" {
		requestLines, err = filter(q.Request, ByRequest)
		if err != nil {
			return nil, fmt.Errorf("filtering by request: %w", err)
		}
	}

	switch {
	case q.Status != "" && q.Request != "":
		return Intersect(requestLines, statusLines), nil
	case q.Status != "":
		return statusLines, nil
	default:
		return requestLines, nil
	}
}
