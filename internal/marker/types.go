package marker

import "clone-generator/internal/common"

// Kind is the closed enumeration of marker kinds.
type Kind int

const (
	KindUnknown   Kind = iota
	KindCloneable      // type is cloneable
	KindInclude        // field is included in explicit mode
	KindExclude        // field is excluded in implicit mode
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindCloneable:
		return "cloneable"
	case KindInclude:
		return "include"
	case KindExclude:
		return "exclude"
	default:
		return common.UnknownStr
	}
}

// Option is a boolean option carried by a marker.
type Option int

const (
	OptionUnknown         Option = iota
	OptionExplicit               // cloneable: explicit selection mode
	OptionPreventDeepCopy        // include: never deep clone the field
)

// String returns a human-readable representation of the Option.
func (o Option) String() string {
	switch o {
	case OptionExplicit:
		return "explicit"
	case OptionPreventDeepCopy:
		return "nodeep"
	default:
		return common.UnknownStr
	}
}

// Target is where a marker may appear.
type Target int

const (
	TargetType Target = iota
	TargetField
)

// String returns a human-readable representation of the Target.
func (t Target) String() string {
	switch t {
	case TargetType:
		return "type"
	case TargetField:
		return "field"
	default:
		return common.UnknownStr
	}
}

// Marker is one resolved marker occurrence.
type Marker struct {
	Kind    Kind
	Options map[Option]bool
}

// Option reports the value of opt, false when absent.
func (m Marker) Option(opt Option) bool {
	return m.Options[opt]
}

// Set is the lookup table of markers found on one type or field.
type Set map[Kind]Marker

// Has reports whether the set holds a marker of the given kind.
func (s Set) Has(kind Kind) bool {
	_, ok := s[kind]
	return ok
}

// Option reports the value of opt on the marker of the given kind.
// It is false when the marker or the option is absent.
func (s Set) Option(kind Kind, opt Option) bool {
	m, ok := s[kind]
	if !ok {
		return false
	}

	return m.Option(opt)
}

// Put adds or replaces the marker of the given kind and returns it for option
// updates.
func (s Set) Put(kind Kind) Marker {
	m, ok := s[kind]
	if !ok {
		m = Marker{Kind: kind, Options: make(map[Option]bool)}
		s[kind] = m
	}

	return m
}

// Problem is a marker that could not be understood. Problems never stop
// resolution; callers report them as warnings.
type Problem struct {
	Token       string   // Offending text
	Message     string   // What was wrong
	Suggestions []string // Close known names, if any
}
