// Package writer implements the header file writing functionality.
package writer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Join returns the file content for the given lines.
// No trailing newline is added after the last line.
func Join(lines []string) string {
	return strings.Join(lines, "\n")
}

// Write writes all lines to the writer.
func Write(w io.Writer, lines []string) error {
	if _, err := io.WriteString(w, Join(lines)); err != nil {
		return fmt.Errorf("writing lines: %w", err)
	}
	return nil
}

// WriteFile creates the directory of the given path if needed and writes all
// lines to the file in a single write, replacing any existing file.
func WriteFile(path string, lines []string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory '%s': %w", dir, err)
		}
	}

	if err := os.WriteFile(path, []byte(Join(lines)), 0o644); err != nil {
		return fmt.Errorf("writing file '%s': %w", path, err)
	}
	return nil
}
