package gen

import (
	"errors"
	"fmt"
	"os"

	"github.com/pmezard/go-difflib/difflib"
)

// Diff compares a generated file with the copy on disk and returns a unified
// diff, or "" when they match. A missing file diffs against empty content.
func Diff(file GeneratedFile) (string, error) {
	current, err := os.ReadFile(file.Path())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("reading file %s: %w", file.Path(), err)
	}

	if string(current) == string(file.Content) {
		return "", nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(current)),
		B:        difflib.SplitLines(string(file.Content)),
		FromFile: "a/" + file.Filename,
		ToFile:   "b/" + file.Filename,
		Context:  3,
	})
	if err != nil {
		return "", fmt.Errorf("diffing file %s: %w", file.Path(), err)
	}

	return diff, nil
}
