package policy

import (
	"clone-generator/internal/analyze"
	"clone-generator/internal/common"
	"clone-generator/internal/model"
)

// Treatment is the per-property cloning classification.
type Treatment int

const (
	TreatmentExcluded Treatment = iota
	TreatmentShallowCopy
	TreatmentDeepClone
)

// String returns a human-readable representation of the Treatment.
func (t Treatment) String() string {
	switch t {
	case TreatmentExcluded:
		return "excluded"
	case TreatmentShallowCopy:
		return "shallow"
	case TreatmentDeepClone:
		return "deep"
	default:
		return common.UnknownStr
	}
}

// Reasons attached to each PropertyPlan.
const (
	ReasonExcludedMarker  = "excluded by marker"
	ReasonNotIncluded     = "not included in explicit mode"
	ReasonNotSettable     = "not settable"
	ReasonSelfType        = "self-typed"
	ReasonNotCloneable    = "not cloneable"
	ReasonPlainValue      = "plain value"
	ReasonPreventDeepCopy = "prevent deep copy"
	ReasonCloneable       = "cloneable"
)

// Registry answers whether a type is registered as cloneable.
type Registry interface {
	IsCloneable(id analyze.TypeID) bool
}

// frozenRegistry is a Registry that cannot change after construction.
type frozenRegistry map[analyze.TypeID]struct{}

// NewRegistry returns an immutable registry holding ids.
func NewRegistry(ids ...analyze.TypeID) Registry {
	r := make(frozenRegistry, len(ids))
	for _, id := range ids {
		r[id] = struct{}{}
	}

	return r
}

// IsCloneable implements Registry.
func (r frozenRegistry) IsCloneable(id analyze.TypeID) bool {
	_, ok := r[id]
	return ok
}

// Options tune the resolver.
type Options struct {
	// AllowSelfDeepClone lifts the self-type guard so that a property typed
	// as its containing type follows the regular treatment rules.
	AllowSelfDeepClone bool
}

// PropertyPlan is the resolved treatment of one property.
type PropertyPlan struct {
	Name       string
	Treatment  Treatment
	Shape      model.Shape
	TypeString string
	Reason     string
}

// Resolution is the ordered policy of one type.
type Resolution struct {
	Type analyze.TypeID
	Mode model.SelectionMode
	// Properties are the included properties, shallow copies first.
	Properties []PropertyPlan
	// Excluded are the properties left at their zero value, in declaration order.
	Excluded []PropertyPlan
}

// Count returns the number of included properties with the given treatment.
func (r Resolution) Count(t Treatment) int {
	if t == TreatmentExcluded {
		return len(r.Excluded)
	}

	n := 0

	for _, p := range r.Properties {
		if p.Treatment == t {
			n++
		}
	}

	return n
}
