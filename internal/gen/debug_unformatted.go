package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted writes unformatted code to a sidecar file next to the
// intended output. This is best-effort and should never make generation fail
// harder.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}
	// Keep the name out of the *.go glob so the broken file does not break
	// the package build.
	debugName := strings.TrimSuffix(filename, ".go") + ".go.unformatted"
	p := filepath.Join(outDir, debugName)

	return os.WriteFile(p, content, filePerm)
}
