package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()

	if cmd.Use != "clflog" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}

	for _, name := range []string{"validate", "version"} {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
			}
		}
		if !found {
			t.Errorf("Missing subcommand: %s", name)
		}
	}

	if cmd.Flags().Lookup("source") == nil {
		t.Error("Missing flag: source")
	}
}

func TestRootCommand_Example(t *testing.T) {
	lines := []string{
		`127.0.0.1 - - [10/Oct/2021:00:00:00 +0000] "GET /blog HTTP/1.1" 200 512 Mozilla`,
		`127.0.0.1 - - [10/Oct/2021:00:00:01 +0000] "GET /blog HTTP/1.1" 404 0 Mozilla`,
		`127.0.0.1 - - [10/Oct/2021:00:00:02 +0000] "GET /home HTTP/1.1" 200 256 Mozilla`,
		"",
		"truncated line",
	}
	logPath := filepath.Join(t.TempDir(), "access.log")
	if err := os.WriteFile(logPath, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := NewRootCommand()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--source", logPath, "--aggregate", "--status", "200", "--request", "/blog"})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "\nRequest path: '/blog'\nStatus: 2XX's (1)\nStatus: 4XX's (1)\n" +
		"\nRequest path: '/home'\nStatus: 2XX's (1)\nStatus: 4XX's (0)\n" +
		lines[0] + "\n"
	if stdout.String() != want {
		t.Errorf("output =\n%q\nwant\n%q", stdout.String(), want)
	}
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--source", "access.log", "unexpected"})

	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Error("Expected error for positional argument")
	}
}
