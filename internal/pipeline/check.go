package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"clone-generator/internal/gen"
)

// ErrStale is returned by Check when files on disk differ from what would be
// generated.
var ErrStale = errors.New("generated files are out of date")

// Drift describes one generated file that does not match the disk.
type Drift struct {
	// Path is the full path of the file.
	Path string
	// Diff is a unified diff from disk to the expected content. Empty for orphans.
	Diff string
	// Orphan is true for a generated file no cloneable type produces anymore.
	Orphan bool
}

// Check renders every file in memory and compares it with the disk without
// writing anything. It returns ErrStale if any file differs or is orphaned.
func (p *Pipeline) Check(ctx context.Context) (*Output, []Drift, error) {
	out, runErr := p.Run(ctx)
	if out == nil {
		return nil, nil, runErr
	}

	var drifts []Drift

	expected := make(map[string]bool, len(out.Files))

	for _, f := range out.Files {
		expected[f.Path()] = true

		diff, err := gen.Diff(f)
		if err != nil {
			return out, nil, err
		}

		if diff != "" {
			drifts = append(drifts, Drift{Path: f.Path(), Diff: diff})
		}
	}

	orphans, err := p.findOrphans(out, expected)
	if err != nil {
		return out, nil, err
	}

	drifts = append(drifts, orphans...)

	for _, d := range drifts {
		p.log.Warn("stale generated file", zap.String("path", d.Path), zap.Bool("orphan", d.Orphan))
	}

	if len(drifts) > 0 {
		stale := fmt.Errorf("%w: %d file(s)", ErrStale, len(drifts))
		if runErr != nil {
			return out, drifts, fmt.Errorf("%w; %w", runErr, stale)
		}

		return out, drifts, stale
	}

	return out, nil, runErr
}

// findOrphans lists generated clone files in the loaded package directories
// that the current run did not produce.
func (p *Pipeline) findOrphans(out *Output, expected map[string]bool) ([]Drift, error) {
	suffix := p.fileSuffix()

	var orphans []Drift

	for _, pkg := range out.Graph.Packages {
		if pkg.Dir == "" {
			continue
		}

		matches, err := filepath.Glob(filepath.Join(pkg.Dir, "*"+suffix))
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", pkg.Dir, err)
		}

		for _, path := range matches {
			if expected[path] || strings.HasSuffix(path, "_test.go") {
				continue
			}

			content, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("reading file %s: %w", path, err)
			}

			if gen.IsGenerated(content) {
				orphans = append(orphans, Drift{Path: path, Orphan: true})
			}
		}
	}

	sort.Slice(orphans, func(i, j int) bool { return orphans[i].Path < orphans[j].Path })

	return orphans, nil
}

func (p *Pipeline) fileSuffix() string {
	if p.config.Gen.FileSuffix != "" {
		return p.config.Gen.FileSuffix
	}

	return gen.DefaultGeneratorConfig().FileSuffix
}
