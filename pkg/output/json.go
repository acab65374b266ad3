package output

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/ccollicutt/clflog/pkg/parser"
)

// JSONFormatter formats records as a JSON array.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a new JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format renders the records as one JSON array of objects.
// Non-ASCII characters are written as \uXXXX escapes, so the output is
// pure ASCII whatever the log encoding.
func (f *JSONFormatter) Format(ctx context.Context, records []parser.LogRecord, w io.Writer) error {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	if f.opts.Indent > 0 {
		encoder.SetIndent("", strings.Repeat(" ", f.opts.Indent))
	}

	// Request fields carry quotes and paths; keep them readable.
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(nonNil(records)); err != nil {
		return err
	}

	data := escapeNonASCII(buf.Bytes())
	if f.opts.OmitTrailingNewline {
		data = bytes.TrimSuffix(data, []byte("\n"))
	}

	_, err := w.Write(data)
	return err
}

// escapeNonASCII rewrites every rune above U+007F in encoded JSON as a
// lowercase \uXXXX escape, using a surrogate pair above U+FFFF.
// Such runes only occur inside string literals.
func escapeNonASCII(data []byte) []byte {
	if isASCII(data) {
		return data
	}

	out := make([]byte, 0, len(data)+16)
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		data = data[size:]

		if r < utf8.RuneSelf {
			out = append(out, byte(r))
			continue
		}
		if r1, r2 := utf16.EncodeRune(r); r1 != utf8.RuneError {
			out = fmt.Appendf(out, `\u%04x\u%04x`, r1, r2)
			continue
		}
		out = fmt.Appendf(out, `\u%04x`, r)
	}
	return out
}

func isASCII(data []byte) bool {
	for _, b := range data {
		if b >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
