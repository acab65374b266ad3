package parser

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Tokenize splits a line on runs of whitespace.
// ok is false when the line has fewer than MinTokens tokens; such lines are
// skipped by every caller.
func Tokenize(line string) (tokens []string, ok bool) {
	tokens = strings.Fields(line)
	return tokens, len(tokens) >= MinTokens
}

// Extract maps the fixed token offsets onto a LogRecord.
// Tokens past FieldClient are ignored.
func Extract(tokens []string) (LogRecord, error) {
	if len(tokens) < MinTokens {
		return LogRecord{}, fmt.Errorf("%w: got %d, want at least %d", ErrTooFewTokens, len(tokens), MinTokens)
	}

	return LogRecord{
		Host:     tokens[FieldHost],
		Ident:    tokens[FieldIdent],
		AuthUser: tokens[FieldAuthUser],
		Date:     strings.Join(tokens[FieldDateStart:FieldDateEnd+1], " "),
		Request:  strings.Join(tokens[FieldMethod:FieldProtocol+1], " "),
		Status:   tokens[FieldStatus],
		Bytes:    tokens[FieldBytes],
		Client:   tokens[FieldClient],
	}, nil
}

// ParseLine tokenizes and extracts a single line.
// Returns false for lines that are too short.
func ParseLine(line string) (LogRecord, bool) {
	tokens, ok := Tokenize(line)
	if !ok {
		return LogRecord{}, false
	}
	rec, err := Extract(tokens)
	if err != nil {
		return LogRecord{}, false
	}
	return rec, true
}

// ParseText parses a whole log held in memory.
// Lines are separated by "\n"; invalid lines are skipped silently.
// The result is never nil.
func ParseText(text string) []LogRecord {
	lines := strings.Split(text, "\n")
	records := make([]LogRecord, 0, len(lines))

	for _, line := range lines {
		rec, ok := ParseLine(line)
		if !ok {
			continue
		}
		records = append(records, rec)
	}

	return records
}

// NormalizeNewlines converts "\r\n" and lone "\r" line endings to "\n".
// Log content read from files and streams goes through it before being
// split into lines; literal text passed as a source does not.
func NormalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// ParseReader reads r to the end and parses the buffered text.
func ParseReader(r io.Reader) ([]LogRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading log input: %w", err)
	}
	return ParseText(NormalizeNewlines(string(data))), nil
}

// LoadSource parses source as a file path when such a path exists and as
// literal log text otherwise. File line endings are normalized with
// NormalizeNewlines. The file is read whole, so memory use grows
// with the size of the log.
func LoadSource(source string) ([]LogRecord, error) {
	if !IsPath(source) {
		return ParseText(source), nil
	}

	data, err := os.ReadFile(source) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("reading log file %s: %w", source, err)
	}

	return ParseText(NormalizeNewlines(string(data))), nil
}

// IsPath reports whether source names an existing filesystem entry.
func IsPath(source string) bool {
	if source == "" {
		return false
	}
	_, err := os.Stat(source)
	return err == nil
}
