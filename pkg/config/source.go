package config

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ccollicutt/clflog/pkg/parser"
)

// StdinSource selects standard input as the log source.
const StdinSource = "-"

// ResolveSource expands a glob source to the single file it matches.
//
// Existing paths, "-" and text that is not a usable pattern are returned
// unchanged, so literal log text keeps working as a source. A pattern that
// matches more than one file is an error.
func ResolveSource(source string) (string, error) {
	if source == StdinSource || parser.IsPath(source) || !hasGlobMeta(source) {
		return source, nil
	}

	matches, err := doublestar.FilepathGlob(source, doublestar.WithFilesOnly())
	if err != nil || len(matches) == 0 {
		return source, nil
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("source pattern %q matches %d files, want exactly one", source, len(matches))
	}

	return matches[0], nil
}

func hasGlobMeta(s string) bool {
	return !strings.Contains(s, "\n") && strings.ContainsAny(s, "*?[{")
}
