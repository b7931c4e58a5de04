package plan

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"clone-generator/internal/analyze"
	"clone-generator/internal/diagnostic"
	"clone-generator/internal/model"
	"clone-generator/internal/policy"
)

// Config holds configuration for the planning process.
type Config struct {
	// Parallelism bounds the number of types planned at once (<= 0 means GOMAXPROCS).
	Parallelism int
	// Policy tunes the clone policy resolver.
	Policy policy.Options
	// Logger receives debug output; nil disables logging.
	Logger *zap.Logger
}

// DefaultConfig returns the default planning configuration.
func DefaultConfig() Config {
	return Config{
		Parallelism: runtime.GOMAXPROCS(0),
	}
}

// Planner plans clone artifacts for a model graph.
type Planner struct {
	config Config
	log    *zap.Logger
}

// NewPlanner creates a new Planner.
func NewPlanner(config Config) *Planner {
	if config.Parallelism <= 0 {
		config.Parallelism = runtime.GOMAXPROCS(0)
	}

	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Planner{
		config: config,
		log:    log.Named("plan"),
	}
}

// PlanAll plans every type of g.
// A type that cannot be planned gets an error diagnostic and no artifact; the
// other types are unaffected. The returned error is only set when ctx is
// cancelled.
func (p *Planner) PlanAll(ctx context.Context, g *model.Graph) (*Result, error) {
	result := &Result{}
	if g.Len() == 0 {
		return result, nil
	}

	eligible, diags := p.checkEligibility(g)
	result.Diagnostics.Merge(diags)

	ids := make([]analyze.TypeID, 0, len(eligible))
	for _, t := range eligible {
		ids = append(ids, t.ID)
	}

	// The registry is complete before the first resolution and never changes.
	registry := policy.NewRegistry(ids...)

	// Each goroutine owns its slot, so no locking is needed and output order
	// follows the (sorted) graph order.
	artifacts := make([]*Artifact, len(eligible))
	slotDiags := make([]diagnostic.Diagnostics, len(eligible))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(p.config.Parallelism)

	for i, t := range eligible {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			artifact, err := p.planType(t, registry)
			if err != nil {
				slotDiags[i].AddError("invalid_artifact", err.Error(), t.ID.String(), "")
				return nil
			}

			if len(artifact.Properties) == 0 {
				slotDiags[i].AddInfo("empty_plan",
					"no property is included; Clone returns a zero value copy", t.ID.String(), "")
			}

			artifacts[i] = artifact

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("planning cancelled: %w", err)
	}

	for i := range eligible {
		result.Diagnostics.Merge(slotDiags[i])

		if artifacts[i] != nil {
			result.Artifacts = append(result.Artifacts, artifacts[i])
		}
	}

	p.log.Debug("planning finished",
		zap.Int("types", g.Len()),
		zap.Int("artifacts", len(result.Artifacts)),
		zap.Int("errors", len(result.Diagnostics.Errors)))

	return result, nil
}

// checkEligibility returns the types that can receive generated methods and
// reports the others.
func (p *Planner) checkEligibility(g *model.Graph) ([]*model.Type, diagnostic.Diagnostics) {
	var (
		eligible []*model.Type
		diags    diagnostic.Diagnostics
	)

	for _, t := range g.Types {
		switch {
		case t.Kind != analyze.TypeKindStruct:
			diags.AddError("not_a_struct",
				fmt.Sprintf("only struct types can be cloneable, %s is a %s", t.ID.Name, t.Kind),
				t.ID.String(), "")

		case t.Generic:
			diags.AddError("generic_type",
				fmt.Sprintf("generic type %s cannot be cloneable", t.ID.Name),
				t.ID.String(), "")

		case t.HasUserMethod(MethodClone) || t.HasUserMethod(MethodCloneSafe):
			diags.AddError("method_conflict",
				fmt.Sprintf("%s already declares %s or %s; remove the marker or the method", t.ID.Name, MethodClone, MethodCloneSafe),
				t.ID.String(), "")

		case t.Property(MethodClone) != nil || t.Property(MethodCloneSafe) != nil:
			diags.AddError("field_conflict",
				fmt.Sprintf("%s has a field named %s or %s; the generated method would clash with it", t.ID.Name, MethodClone, MethodCloneSafe),
				t.ID.String(), conflictingField(t))

		default:
			eligible = append(eligible, t)
			continue
		}

		p.log.Debug("type skipped", zap.Stringer("type", t.ID), zap.String("pos", t.Pos))
	}

	return eligible, diags
}

// conflictingField returns the first property named like a generated method.
func conflictingField(t *model.Type) string {
	for _, name := range []string{MethodClone, MethodCloneSafe} {
		if t.Property(name) != nil {
			return name
		}
	}

	return ""
}

// planType resolves the policy of t and derives both action lists.
func (p *Planner) planType(t *model.Type, registry policy.Registry) (*Artifact, error) {
	res := policy.Resolve(t, registry, p.config.Policy)

	artifact := &Artifact{
		Type:          t.ID,
		PkgName:       t.PkgName,
		Dir:           t.Dir,
		Accessibility: t.Accessibility,
		Mode:          t.Mode,
		Properties:    res.Properties,
		Excluded:      res.Excluded,
		Fast:          actions(res.Properties, ActionCloneFast),
		Safe:          actions(res.Properties, ActionCloneSafe),
	}

	if err := artifact.Validate(); err != nil {
		return nil, err
	}

	p.log.Debug("type planned",
		zap.Stringer("type", t.ID),
		zap.Stringer("mode", t.Mode),
		zap.Int("shallow", res.Count(policy.TreatmentShallowCopy)),
		zap.Int("deep", res.Count(policy.TreatmentDeepClone)),
		zap.Int("excluded", res.Count(policy.TreatmentExcluded)))

	return artifact, nil
}

// actions maps the property plan to statements; deep clones use recurse.
func actions(props []policy.PropertyPlan, recurse ActionKind) []Action {
	out := make([]Action, 0, len(props))

	for _, prop := range props {
		kind := ActionAssign
		if prop.Treatment == policy.TreatmentDeepClone {
			kind = recurse
		}

		out = append(out, Action{Field: prop.Name, Kind: kind, Shape: prop.Shape})
	}

	return out
}
