package overrides

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"clone-generator/internal/analyze"
	"clone-generator/internal/diagnostic"
	"clone-generator/internal/marker"
	"clone-generator/internal/match"
)

var (
	// ErrTypeNotFound is returned when a type reference matches no loaded type.
	ErrTypeNotFound = errors.New("type not found")
	// ErrAmbiguousType is returned when a name-only reference matches several types.
	ErrAmbiguousType = errors.New("ambiguous type reference")
)

// ResolveTypeID resolves a type ID string like:
// - "sample.Document" (short)
// - "clone-generator/sample.Document" (full)
// - "Document" (name only).
func ResolveTypeID(typeIDStr string, graph *analyze.TypeGraph) (*analyze.TypeInfo, error) {
	if graph == nil || typeIDStr == "" {
		return nil, fmt.Errorf("%w: %q", ErrTypeNotFound, typeIDStr)
	}

	pkgStr, name := "", typeIDStr
	if lastDot := strings.LastIndex(typeIDStr, "."); lastDot >= 0 {
		pkgStr, name = typeIDStr[:lastDot], typeIDStr[lastDot+1:]
		if pkgStr == "" || name == "" {
			return nil, fmt.Errorf("%w: %q", ErrTypeNotFound, typeIDStr)
		}

		// exact match (for fully qualified import path)
		if t := graph.GetType(analyze.TypeID{PkgPath: pkgStr, Name: name}); t != nil {
			return t, nil
		}
	}

	// suffix match (for short forms like "sample.Document") or name only
	var matches []analyze.TypeID

	for id := range graph.Types {
		if id.Name != name {
			continue
		}

		if pkgStr == "" || id.PkgPath == pkgStr || strings.HasSuffix(id.PkgPath, "/"+pkgStr) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %q", ErrTypeNotFound, typeIDStr)
	case 1:
		return graph.GetType(matches[0]), nil
	default:
		sort.Slice(matches, func(i, j int) bool { return matches[i].String() < matches[j].String() })

		return nil, fmt.Errorf("%w: %q matches %s and %s", ErrAmbiguousType, typeIDStr, matches[0], matches[1])
	}
}

// Resolved is an overrides file bound to the types of a graph.
// A nil *Resolved applies no overrides.
type Resolved struct {
	types  map[analyze.TypeID]*TypeOverride
	fields map[analyze.TypeID]map[string]fieldMarkers
}

type fieldMarkers struct {
	include bool
	exclude bool
	nodeep  bool
}

// Resolve validates f against graph and binds every entry to its TypeID.
// Invalid entries are reported and skipped; valid ones still apply.
func Resolve(f *File, graph *analyze.TypeGraph) (*Resolved, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	res := &Resolved{
		types:  make(map[analyze.TypeID]*TypeOverride),
		fields: make(map[analyze.TypeID]map[string]fieldMarkers),
	}

	if f == nil {
		return res, diags
	}

	if graph == nil {
		diags.AddError("graph_is_nil", "type graph is nil", "", "")
		return res, diags
	}

	for i := range f.Types {
		to := &f.Types[i]

		if to.Type == "" {
			diags.AddError("override_type_missing", fmt.Sprintf("overrides entry #%d has no type", i+1), "", "")
			continue
		}

		info, err := ResolveTypeID(to.Type, graph)
		if err != nil {
			d := diagnostic.Diagnostic{
				Severity: diagnostic.DiagnosticError,
				Code:     "override_type_not_found",
				Message:  err.Error(),
				Type:     to.Type,
			}
			if errors.Is(err, ErrTypeNotFound) {
				d.Suggestions = match.Suggest(shortName(to.Type), typeNames(graph), 3)
			} else {
				d.Code = "override_type_ambiguous"
			}

			diags.Add(d)

			continue
		}

		if _, dup := res.types[info.ID]; dup {
			diags.AddError("duplicate_override", fmt.Sprintf("type %s is overridden more than once", info.ID), info.ID.String(), "")
			continue
		}

		if info.Kind != analyze.TypeKindStruct {
			diags.AddError("override_not_struct",
				fmt.Sprintf("type %s is a %s, only structs can be cloned", info.ID, info.Kind), info.ID.String(), "")

			continue
		}

		res.types[info.ID] = to
		res.fields[info.ID] = resolveFields(&diags, info, to.Fields)
	}

	return res, diags
}

func resolveFields(diags *diagnostic.Diagnostics, info *analyze.TypeInfo, fo FieldOverrides) map[string]fieldMarkers {
	known := make([]string, 0, len(info.Fields))
	for _, f := range info.Fields {
		known = append(known, f.Name)
	}

	out := make(map[string]fieldMarkers)

	mark := func(names []string, set func(*fieldMarkers)) {
		for _, name := range names {
			if !slices.Contains(known, name) {
				diags.Add(diagnostic.Diagnostic{
					Severity:    diagnostic.DiagnosticError,
					Code:        "override_field_not_found",
					Message:     fmt.Sprintf("type %s has no field %q", info.ID.Name, name),
					Type:        info.ID.String(),
					Field:       name,
					Suggestions: match.Suggest(name, known, 3),
				})

				continue
			}

			fm := out[name]
			set(&fm)
			out[name] = fm
		}
	}

	mark(fo.Include, func(fm *fieldMarkers) { fm.include = true })
	mark(fo.Exclude, func(fm *fieldMarkers) { fm.exclude = true })
	mark(fo.NoDeep, func(fm *fieldMarkers) { fm.nodeep = true })

	for _, name := range fo.Names() {
		if fm := out[name]; fm.exclude && (fm.include || fm.nodeep) {
			diags.AddWarning("override_field_conflict",
				fmt.Sprintf("field %q is both included and excluded; the selection mode decides which one applies", name),
				info.ID.String(), name)
		}
	}

	return out
}

// HasFieldOverrides reports whether the override entry of id lists fields.
func (r *Resolved) HasFieldOverrides(id analyze.TypeID) bool {
	if r == nil {
		return false
	}

	to, ok := r.types[id]

	return ok && !to.Fields.IsEmpty()
}

// ApplyType merges the type-level override of id into markers.
func (r *Resolved) ApplyType(id analyze.TypeID, markers marker.Set) {
	if r == nil {
		return
	}

	to, ok := r.types[id]
	if !ok {
		return
	}

	if to.Cloneable != nil && !*to.Cloneable {
		delete(markers, marker.KindCloneable)
		return
	}

	if to.Cloneable != nil || to.Explicit != nil {
		m := markers.Put(marker.KindCloneable)
		if to.Explicit != nil {
			m.Options[marker.OptionExplicit] = *to.Explicit
		}
	}
}

// ApplyField merges the field-level override of id.field into markers.
func (r *Resolved) ApplyField(id analyze.TypeID, field string, markers marker.Set) {
	if r == nil {
		return
	}

	fm, ok := r.fields[id][field]
	if !ok {
		return
	}

	if fm.include || fm.nodeep {
		m := markers.Put(marker.KindInclude)
		if fm.nodeep {
			m.Options[marker.OptionPreventDeepCopy] = true
		}
	}

	if fm.exclude {
		markers.Put(marker.KindExclude)
	}
}

func shortName(typeIDStr string) string {
	if i := strings.LastIndex(typeIDStr, "."); i >= 0 {
		return typeIDStr[i+1:]
	}

	return typeIDStr
}

// typeNames returns the sorted, distinct names of struct types in graph.
func typeNames(graph *analyze.TypeGraph) []string {
	seen := make(map[string]bool)

	var names []string

	for id, t := range graph.Types {
		if t.Kind == analyze.TypeKindStruct && !seen[id.Name] {
			seen[id.Name] = true
			names = append(names, id.Name)
		}
	}

	sort.Strings(names)

	return names
}
