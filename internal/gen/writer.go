package gen

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/multierr"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// ErrNotGenerated is returned when a write would replace a hand-written file.
var ErrNotGenerated = errors.New("refusing to overwrite a file without a generated code header")

// WriteFiles writes every file into its package directory.
// Existing files are only replaced if they carry a generated code header.
// Files that cannot be written do not stop the others.
func WriteFiles(files []GeneratedFile) error {
	var errs error

	for _, file := range files {
		errs = multierr.Append(errs, writeFile(file))
	}

	return errs
}

func writeFile(file GeneratedFile) error {
	if err := os.MkdirAll(file.Dir, dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	outputPath := file.Path()

	existing, err := os.ReadFile(outputPath)
	switch {
	case err == nil && !IsGenerated(existing):
		return fmt.Errorf("writing file %s: %w", outputPath, ErrNotGenerated)
	case err != nil && !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("reading file %s: %w", outputPath, err)
	}

	if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", outputPath, err)
	}

	return nil
}
