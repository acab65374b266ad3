package output

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ccollicutt/clflog/pkg/parser"
)

func createTestRecords() []parser.LogRecord {
	return parser.ParseText(`127.0.0.1 - - [10/Oct/2021:00:00:00 +0000] "GET /blog HTTP/1.1" 200 512 Mozilla
127.0.0.1 - - [10/Oct/2021:00:00:01 +0000] "GET /blog?a=1&b=<x> HTTP/1.1" 404 0 Mozilla
`)
}

func TestNewJSONFormatter(t *testing.T) {
	f := NewJSONFormatter(FormatOptions{})
	if f == nil {
		t.Fatal("NewJSONFormatter() returned nil")
	}
	if f.Name() != "json" {
		t.Errorf("Name() = %q, want %q", f.Name(), "json")
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	f := NewJSONFormatter(FormatOptions{Indent: DefaultIndent})
	records := createTestRecords()

	var buf bytes.Buffer
	if err := f.Format(context.Background(), records, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var parsed []parser.LogRecord
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if len(parsed) != 2 {
		t.Fatalf("len(parsed) = %d, want 2", len(parsed))
	}
	if parsed[1] != records[1] {
		t.Errorf("parsed[1] = %+v, want %+v", parsed[1], records[1])
	}

	out := buf.String()
	if !strings.Contains(out, "\n        \"host\": \"127.0.0.1\"") {
		t.Errorf("Output not indented by four spaces:\n%s", out)
	}
	if !strings.Contains(out, "&b=<x>") {
		t.Errorf("Output escaped HTML characters:\n%s", out)
	}
}

func TestJSONFormatter_FieldOrder(t *testing.T) {
	f := NewJSONFormatter(FormatOptions{})

	var buf bytes.Buffer
	if err := f.Format(context.Background(), createTestRecords()[:1], &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	fields := []string{"host", "ident", "authuser", "date", "request", "status", "bytes", "client"}
	last := -1
	for _, field := range fields {
		idx := strings.Index(out, `"`+field+`"`)
		if idx < 0 {
			t.Fatalf("Output missing field %q: %s", field, out)
		}
		if idx < last {
			t.Errorf("Field %q out of order in %s", field, out)
		}
		last = idx
	}
}

func TestJSONFormatter_Format_Empty(t *testing.T) {
	f := NewJSONFormatter(FormatOptions{Indent: DefaultIndent})

	var buf bytes.Buffer
	if err := f.Format(context.Background(), nil, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("Format(nil) = %q, want []", got)
	}
}

func TestJSONFormatter_EscapesNonASCII(t *testing.T) {
	records := parser.ParseText(`127.0.0.1 - - [10/Oct/2021:00:00:00 +0000] "GET /café HTTP/1.1" 200 512 Mozilla😀` + "\n")
	f := NewJSONFormatter(FormatOptions{Indent: DefaultIndent})

	var buf bytes.Buffer
	if err := f.Format(context.Background(), records, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	for i := 0; i < len(out); i++ {
		if out[i] >= 0x80 {
			t.Fatalf("Output contains non-ASCII byte at %d:\n%s", i, out)
		}
	}
	if !strings.Contains(out, `"request": "\"GET /caf\u00e9 HTTP/1.1\""`) {
		t.Errorf("Output missing escaped request:\n%s", out)
	}
	if !strings.Contains(out, `"client": "Mozilla\ud83d\ude00"`) {
		t.Errorf("Output missing surrogate pair:\n%s", out)
	}

	var parsed []parser.LogRecord
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if parsed[0] != records[0] {
		t.Errorf("parsed[0] = %+v, want %+v", parsed[0], records[0])
	}
}

func TestJSONFormatter_TrailingNewline(t *testing.T) {
	tests := []struct {
		name string
		omit bool
		want string
	}{
		{"stdout keeps newline", false, "[]\n"},
		{"file omits newline", true, "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewJSONFormatter(FormatOptions{Indent: DefaultIndent, OmitTrailingNewline: tt.omit})
			var buf bytes.Buffer
			if err := f.Format(context.Background(), nil, &buf); err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("Format(nil) = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestNewRecordFormatter(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"json", "json", false},
		{"yaml", "yaml", false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewRecordFormatter(tt.name, FormatOptions{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewRecordFormatter(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if !tt.wantErr && f.Name() != tt.want {
				t.Errorf("Name() = %q, want %q", f.Name(), tt.want)
			}
		})
	}
}
