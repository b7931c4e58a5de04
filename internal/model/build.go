package model

import (
	"fmt"
	"sort"

	"clone-generator/internal/analyze"
	"clone-generator/internal/diagnostic"
	"clone-generator/internal/marker"
	"clone-generator/internal/overrides"
)

// Build extracts every type carrying the cloneable marker from tg.
// Markers come from doc comments and struct tags, then overrides are merged
// on top (ov may be nil). Marker problems are reported as warnings and never
// stop the build.
// Methods generated into files ending in ownSuffix are not user methods.
func Build(tg *analyze.TypeGraph, reg *marker.Registry, ov *overrides.Resolved, ownSuffix string) (*Graph, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	if tg == nil {
		return NewGraph(), diags
	}

	ids := make([]analyze.TypeID, 0, len(tg.Types))
	for id := range tg.Types {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	stringer := analyze.NewTypeStringer()

	var types []*Type

	for _, id := range ids {
		info := tg.Types[id]

		markers, problems := reg.ParseDoc(info.Doc)
		reportProblems(&diags, "unknown_marker", id, "", problems)
		ov.ApplyType(id, markers)

		if !markers.Has(marker.KindCloneable) {
			if ov.HasFieldOverrides(id) {
				diags.AddWarning("override_without_effect",
					fmt.Sprintf("field overrides of %s are ignored because the type is not cloneable", id.Name),
					id.String(), "")
			}

			continue
		}

		t := &Type{
			ID:            id,
			Accessibility: AccessUnexported,
			Kind:          info.Kind,
			Generic:       info.HasTypeParams,
			Pos:           info.Pos,
		}

		if info.Exported {
			t.Accessibility = AccessExported
		}

		if markers.Option(marker.KindCloneable, marker.OptionExplicit) {
			t.Mode = SelectionExplicit
		}

		if pkg := tg.Packages[id.PkgPath]; pkg != nil {
			t.PkgName = pkg.Name
			t.Dir = pkg.Dir
		}

		t.UserMethods = info.UserMethods(ownSuffix)

		if info.Kind == analyze.TypeKindStruct {
			for i := range info.Fields {
				t.Properties = append(t.Properties, buildProperty(&diags, reg, ov, stringer, id, &info.Fields[i]))
			}
		}

		types = append(types, t)
	}

	return NewGraph(types...), diags
}

func buildProperty(
	diags *diagnostic.Diagnostics,
	reg *marker.Registry,
	ov *overrides.Resolved,
	stringer *analyze.TypeStringer,
	owner analyze.TypeID,
	field *analyze.FieldInfo,
) Property {
	markers, problems := reg.ParseTag(field.Tag)
	reportProblems(diags, "unknown_marker_option", owner, field.Name, problems)
	ov.ApplyField(owner, field.Name, markers)

	ref := DeclaredRef(field.Type)

	return Property{
		Name:            field.Name,
		Declared:        ref,
		TypeString:      stringer.TypeString(field.Type),
		Exported:        field.Exported,
		Embedded:        field.Embedded,
		Settable:        !field.IsBlank(),
		Include:         markers.Has(marker.KindInclude),
		Exclude:         markers.Has(marker.KindExclude),
		PreventDeepCopy: markers.Option(marker.KindInclude, marker.OptionPreventDeepCopy),
		IsSelfType:      ref.IsNamed() && ref.ID == owner,
	}
}

// DeclaredRef classifies a field type as a value or pointer reference to a
// named type. Everything else, including **T, is ShapeOther.
func DeclaredRef(t *analyze.TypeInfo) TypeRef {
	switch {
	case t == nil:
		return TypeRef{Shape: ShapeOther}
	case t.IsNamed():
		return TypeRef{ID: t.ID, Shape: ShapeValue}
	case t.Kind == analyze.TypeKindPointer && t.ElemType != nil && t.ElemType.IsNamed():
		return TypeRef{ID: t.ElemType.ID, Shape: ShapePointer}
	default:
		return TypeRef{Shape: ShapeOther}
	}
}

func reportProblems(diags *diagnostic.Diagnostics, code string, id analyze.TypeID, field string, problems []marker.Problem) {
	for _, p := range problems {
		diags.Add(diagnostic.Diagnostic{
			Severity:    diagnostic.DiagnosticWarning,
			Code:        code,
			Message:     p.Message + "; ignored",
			Type:        id.String(),
			Field:       field,
			Suggestions: p.Suggestions,
		})
	}
}
