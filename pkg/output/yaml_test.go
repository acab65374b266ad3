package output

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/ccollicutt/clflog/pkg/parser"
)

func TestYAMLFormatter_Format(t *testing.T) {
	f := NewYAMLFormatter(FormatOptions{Indent: 2})
	records := createTestRecords()

	var buf bytes.Buffer
	if err := f.Format(context.Background(), records, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var parsed []parser.LogRecord
	if err := yaml.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("Output is not valid YAML: %v", err)
	}
	if len(parsed) != len(records) {
		t.Fatalf("len(parsed) = %d, want %d", len(parsed), len(records))
	}
	if parsed[0] != records[0] {
		t.Errorf("parsed[0] = %+v, want %+v", parsed[0], records[0])
	}
	if !strings.HasPrefix(buf.String(), "- host: 127.0.0.1") {
		t.Errorf("Unexpected YAML layout:\n%s", buf.String())
	}
}

func TestYAMLFormatter_Format_Empty(t *testing.T) {
	f := NewYAMLFormatter(FormatOptions{})

	var buf bytes.Buffer
	if err := f.Format(context.Background(), nil, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("Format(nil) = %q, want []", got)
	}
}
