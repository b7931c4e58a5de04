package gen

import (
	"bytes"
	"errors"
	"path/filepath"
	"regexp"
)

var (
	// ErrEmptyIdentity is returned for a generated file without a name.
	ErrEmptyIdentity = errors.New("generated file has an empty name")
	// ErrEmptyBody is returned for a generated file without content.
	ErrEmptyBody = errors.New("generated file has an empty body")
)

// generatedHeader matches the standard "Code generated ... DO NOT EDIT." line.
var generatedHeader = regexp.MustCompile(`(?m)^// Code generated .* DO NOT EDIT\.$`)

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory of the package the file belongs to.
	Dir string
	// Filename is the name of the file (e.g., "document_clone.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// NewGeneratedFile validates and builds a GeneratedFile.
func NewGeneratedFile(dir, filename string, content []byte) (GeneratedFile, error) {
	if filename == "" {
		return GeneratedFile{}, ErrEmptyIdentity
	}

	if len(bytes.TrimSpace(content)) == 0 {
		return GeneratedFile{}, ErrEmptyBody
	}

	return GeneratedFile{Dir: dir, Filename: filename, Content: content}, nil
}

// Path returns the full path of the file.
func (f GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// IsGenerated reports whether content carries a generated code header.
func IsGenerated(content []byte) bool {
	return generatedHeader.Match(content)
}
