package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"clone-generator/internal/analyze"
	"clone-generator/internal/diagnostic"
	"clone-generator/internal/gen"
	"clone-generator/internal/marker"
	"clone-generator/internal/model"
	"clone-generator/internal/overrides"
	"clone-generator/internal/plan"
)

// ErrDiagnostics is returned when a run reported error diagnostics.
var ErrDiagnostics = errors.New("clone generation reported errors")

// Config holds configuration for a pipeline.
type Config struct {
	// Dir is the directory package patterns are resolved from ("" = current).
	Dir string
	// Patterns are Go package patterns, e.g. "./...".
	Patterns []string
	// OverridesPath is an optional overrides YAML file.
	OverridesPath string
	// Plan configures the planner.
	Plan plan.Config
	// Gen configures code generation.
	Gen gen.GeneratorConfig
	// Markers overrides the marker registry (nil = marker.DefaultRegistry()).
	Markers *marker.Registry
	// Debounce is the quiet period of watch mode before regenerating.
	Debounce time.Duration
	// Logger receives progress output; nil disables logging.
	Logger *zap.Logger
}

// Output is everything a run produced.
type Output struct {
	Graph       *analyze.TypeGraph
	Model       *model.Graph
	Plan        *plan.Result
	Files       []gen.GeneratedFile
	Diagnostics diagnostic.Diagnostics
}

// Pipeline runs the clone generator.
type Pipeline struct {
	config    Config
	log       *zap.Logger
	markers   *marker.Registry
	planner   *plan.Planner
	generator *gen.Generator
}

// New creates a new Pipeline.
func New(config Config) *Pipeline {
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}

	markers := config.Markers
	if markers == nil {
		markers = marker.DefaultRegistry()
	}

	if config.Debounce <= 0 {
		config.Debounce = 200 * time.Millisecond
	}

	planCfg := config.Plan
	planCfg.Logger = log

	return &Pipeline{
		config:    config,
		log:       log,
		markers:   markers,
		planner:   plan.NewPlanner(planCfg),
		generator: gen.NewGenerator(config.Gen),
	}
}

// Run loads the packages and renders every file in memory.
// Hard failures (packages that do not load, unreadable overrides) return a
// nil Output. Error diagnostics return the Output together with an error
// wrapping ErrDiagnostics.
func (p *Pipeline) Run(ctx context.Context) (*Output, error) {
	if len(p.config.Patterns) == 0 {
		return nil, errors.New("no package patterns given")
	}

	start := time.Now()

	graph, err := analyze.NewAnalyzer().LoadPackages(p.config.Dir, p.config.Patterns...)
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}

	p.log.Info("packages loaded",
		zap.Strings("patterns", p.config.Patterns),
		zap.Int("packages", len(graph.Packages)),
		zap.Int("types", len(graph.Types)))

	out := &Output{Graph: graph}

	resolved, err := p.loadOverrides(graph, &out.Diagnostics)
	if err != nil {
		return nil, err
	}

	g, diags := model.Build(graph, p.markers, resolved, p.fileSuffix())
	out.Model = g
	out.Diagnostics.Merge(diags)

	p.log.Debug("cloneable types discovered", zap.Int("count", g.Len()))

	result, err := p.planner.PlanAll(ctx, g)
	if err != nil {
		return nil, err
	}

	out.Plan = result
	out.Diagnostics.Merge(result.Diagnostics)

	files, genErr := p.generator.Generate(result)
	out.Files = files

	p.logDiagnostics(out.Diagnostics)
	p.log.Info("generation finished",
		zap.Int("files", len(files)),
		zap.Int("errors", len(out.Diagnostics.Errors)),
		zap.Int("warnings", len(out.Diagnostics.Warnings)),
		zap.Duration("elapsed", time.Since(start)))

	if genErr != nil {
		return out, fmt.Errorf("rendering files: %w", genErr)
	}

	if out.Diagnostics.HasErrors() {
		return out, fmt.Errorf("%w: %w", ErrDiagnostics, out.Diagnostics.Error())
	}

	return out, nil
}

// Generate runs the pipeline and writes the files of every healthy type.
func (p *Pipeline) Generate(ctx context.Context) (*Output, error) {
	out, runErr := p.Run(ctx)
	if out == nil {
		return nil, runErr
	}

	if err := gen.WriteFiles(out.Files); err != nil {
		return out, multierr.Append(runErr, fmt.Errorf("writing files: %w", err))
	}

	for _, f := range out.Files {
		p.log.Debug("file written", zap.String("path", f.Path()))
	}

	return out, runErr
}

// loadOverrides reads and binds the overrides file, if configured.
func (p *Pipeline) loadOverrides(graph *analyze.TypeGraph, diags *diagnostic.Diagnostics) (*overrides.Resolved, error) {
	if p.config.OverridesPath == "" {
		return nil, nil
	}

	f, err := overrides.LoadFile(p.config.OverridesPath)
	if err != nil {
		return nil, err
	}

	resolved, d := overrides.Resolve(f, graph)
	diags.Merge(d)

	p.log.Debug("overrides loaded", zap.String("path", p.config.OverridesPath), zap.Int("types", len(f.Types)))

	return resolved, nil
}

func (p *Pipeline) logDiagnostics(diags diagnostic.Diagnostics) {
	for _, d := range diags.Errors {
		p.log.Error(d.Message, diagFields(d)...)
	}

	for _, d := range diags.Warnings {
		p.log.Warn(d.Message, diagFields(d)...)
	}

	for _, d := range diags.Infos {
		p.log.Debug(d.Message, diagFields(d)...)
	}
}

func diagFields(d diagnostic.Diagnostic) []zap.Field {
	fields := []zap.Field{zap.String("code", d.Code)}

	if d.Type != "" {
		fields = append(fields, zap.String("type", d.Type))
	}

	if d.Field != "" {
		fields = append(fields, zap.String("field", d.Field))
	}

	if len(d.Suggestions) > 0 {
		fields = append(fields, zap.Strings("suggestions", d.Suggestions))
	}

	return fields
}
