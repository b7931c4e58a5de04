package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"clone-generator/internal/gen"
)

// WatchFunc receives the outcome of every generation triggered by Watch.
type WatchFunc func(out *Output, err error)

// Watch generates once, then regenerates whenever a Go source file in one of
// the loaded package directories changes. Files written by the last run and
// files carrying the generated header are ignored so writing them does not
// trigger another run. Watch blocks until ctx is done and returns nil in that
// case.
func (p *Pipeline) Watch(ctx context.Context, onRun WatchFunc) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	watched := make(map[string]bool)
	produced := make(map[string]bool)

	run := func() {
		out, err := p.Generate(ctx)
		if out != nil {
			clear(produced)

			for _, f := range out.Files {
				produced[filepath.Clean(f.Path())] = true
			}

			for _, dir := range packageDirs(out) {
				if watched[dir] {
					continue
				}

				if addErr := watcher.Add(dir); addErr != nil {
					p.log.Warn("cannot watch directory", zap.String("dir", dir), zap.Error(addErr))
					continue
				}

				watched[dir] = true
				p.log.Info("watching directory", zap.String("dir", dir))
			}
		}

		if onRun != nil {
			onRun(out, err)
		}
	}

	run()

	// The timer only fires after a quiet period of Debounce.
	timer := time.NewTimer(p.config.Debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !p.isSourceChange(event, produced) {
				continue
			}

			p.log.Debug("file changed", zap.String("path", event.Name), zap.Stringer("op", event.Op))
			timer.Reset(p.config.Debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			p.log.Warn("watch error", zap.Error(err))

		case <-timer.C:
			run()
		}
	}
}

// isSourceChange reports whether event touches a hand-written Go file.
// Paths in produced belong to the generator. A file ending in the clone
// suffix is hand-written unless its contents carry the generated header.
func (p *Pipeline) isSourceChange(event fsnotify.Event, produced map[string]bool) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}

	base := filepath.Base(event.Name)

	switch {
	case strings.HasPrefix(base, "."):
		return false
	case !strings.HasSuffix(base, ".go"):
		return false
	case produced[filepath.Clean(event.Name)]:
		return false
	case strings.HasSuffix(base, p.fileSuffix()):
		return !isGeneratedFile(event.Name)
	default:
		return true
	}
}

// isGeneratedFile reports whether path exists and carries the generated header.
func isGeneratedFile(path string) bool {
	content, err := os.ReadFile(path)
	if err != nil {
		return false
	}

	return gen.IsGenerated(content)
}

// packageDirs returns the sorted, distinct directories of the loaded packages.
func packageDirs(out *Output) []string {
	if out.Graph == nil {
		return nil
	}

	seen := make(map[string]bool)

	var dirs []string

	for _, pkg := range out.Graph.Packages {
		if pkg.Dir != "" && !seen[pkg.Dir] {
			seen[pkg.Dir] = true
			dirs = append(dirs, pkg.Dir)
		}
	}

	sort.Strings(dirs)

	return dirs
}
