package analyze

import (
	"strings"
)

// TypeStringer provides methods for creating readable type strings.
type TypeStringer struct{}

// NewTypeStringer creates a new TypeStringer.
func NewTypeStringer() *TypeStringer {
	return &TypeStringer{}
}

// TypeString returns a human-readable string representation of a TypeInfo.
// Named types from loaded packages are rendered unqualified, external types
// keep their package alias.
func (s *TypeStringer) TypeString(t *TypeInfo) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind {
	case TypeKindBasic:
		return goTypeString(t)

	case TypeKindStruct:
		if t.IsNamed() {
			return t.ID.Name
		}
		return "struct{...}"

	case TypeKindPointer:
		if t.ElemType != nil {
			return "*" + s.TypeString(t.ElemType)
		}
		return "*<unknown>"

	case TypeKindSlice:
		if t.ElemType != nil {
			return "[]" + s.TypeString(t.ElemType)
		}
		return "[]<unknown>"

	case TypeKindArray:
		elem := "<unknown>"
		if t.ElemType != nil {
			elem = s.TypeString(t.ElemType)
		}
		// go/types renders "[4]T", keep the length and swap in our element string
		if raw := goTypeString(t); strings.HasPrefix(raw, "[") {
			if end := strings.Index(raw, "]"); end > 0 {
				return raw[:end+1] + elem
			}
		}
		return "[?]" + elem

	case TypeKindAlias:
		if t.IsNamed() {
			return t.ID.Name
		}
		return s.TypeString(t.Underlying)

	case TypeKindExternal:
		if t.IsNamed() {
			return t.ID.Short()
		}
		return goTypeString(t)

	default:
		return goTypeString(t)
	}
}

func goTypeString(t *TypeInfo) string {
	if t.GoType == nil {
		return "<unknown>"
	}
	return t.GoType.String()
}
