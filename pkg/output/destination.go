package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WriteDestination truncates or creates path and writes render's output to it.
// The file is overwritten in place; there is no append and no atomic rename.
func WriteDestination(path string, render func(w io.Writer) error) error {
	f, err := os.Create(path) // #nosec G304 -- user-provided destination is expected
	if err != nil {
		return fmt.Errorf("creating destination %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	if err := render(w); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing destination %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing destination %s: %w", path, err)
	}

	return f.Close()
}
