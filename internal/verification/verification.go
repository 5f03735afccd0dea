// Package verification verifies that an existing header file matches the
// header generated from the register map.
package verification

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/retroenv/rdlheader/internal/writer"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// MismatchError is returned when the header file on disk differs from the
// generated content.
type MismatchError struct {
	Path    string
	Added   int    // number of lines only in the generated content
	Removed int    // number of lines only in the existing file
	Diff    string // line diff from the existing file to the generated content
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("header file '%s' is not up to date: %d lines added, %d lines removed",
		e.Path, e.Added, e.Removed)
}

// Check compares the header file at the given path with the generated lines.
// A missing file results in an error that wraps os.ErrNotExist.
func Check(path string, lines []string) error {
	existing, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading header file for comparison: %w", err)
	}

	generated := writer.Join(lines)
	if string(existing) == generated {
		return nil
	}

	mismatch := lineDiff(string(existing), generated)
	mismatch.Path = path
	return mismatch
}

// lineDiff returns the changed lines between the two texts.
func lineDiff(existing, generated string) *MismatchError {
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(existing, generated)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	removed := color.New(color.FgRed).SprintFunc()
	added := color.New(color.FgGreen).SprintFunc()

	result := &MismatchError{}
	buf := &strings.Builder{}
	for _, diff := range diffs {
		for _, line := range splitLines(diff.Text) {
			switch diff.Type {
			case diffmatchpatch.DiffDelete:
				result.Removed++
				fmt.Fprintln(buf, removed("- "+line))
			case diffmatchpatch.DiffInsert:
				result.Added++
				fmt.Fprintln(buf, added("+ "+line))
			case diffmatchpatch.DiffEqual:
			}
		}
	}
	result.Diff = buf.String()
	return result
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
