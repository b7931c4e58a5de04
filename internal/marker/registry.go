package marker

import (
	"errors"
	"fmt"
	"sort"
)

// ErrDuplicateDefinition is returned when two definitions share a target and name.
var ErrDuplicateDefinition = errors.New("duplicate marker definition")

// Definition declares one marker kind: where it may appear, the token that
// spells it and the options it accepts.
type Definition struct {
	Kind    Kind
	Target  Target
	Name    string
	Options []Option
}

// accepts reports whether opt is a valid option of the definition.
func (d Definition) accepts(opt Option) bool {
	for _, o := range d.Options {
		if o == opt {
			return true
		}
	}

	return false
}

// DefaultDefinitions returns the built-in clone markers.
func DefaultDefinitions() []Definition {
	return []Definition{
		{Kind: KindCloneable, Target: TargetType, Name: "clone", Options: []Option{OptionExplicit}},
		{Kind: KindInclude, Target: TargetField, Name: "include", Options: []Option{OptionPreventDeepCopy}},
		{Kind: KindExclude, Target: TargetField, Name: "-"},
	}
}

// optionRef ties an option token to the definition that owns it.
type optionRef struct {
	def    Definition
	option Option
}

// Registry is the immutable set of known marker definitions.
// It is populated once by NewRegistry and only read afterwards, so it is safe
// for concurrent use.
type Registry struct {
	byName   map[Target]map[string]Definition
	byOption map[Target]map[string]optionRef
	byKind   map[Kind]Definition
}

// NewRegistry builds a registry from the given definitions.
func NewRegistry(defs ...Definition) (*Registry, error) {
	r := &Registry{
		byName:   make(map[Target]map[string]Definition),
		byOption: make(map[Target]map[string]optionRef),
		byKind:   make(map[Kind]Definition),
	}

	for _, def := range defs {
		if def.Name == "" || def.Kind == KindUnknown {
			return nil, fmt.Errorf("invalid marker definition %+v", def)
		}

		names := r.byName[def.Target]
		if names == nil {
			names = make(map[string]Definition)
			r.byName[def.Target] = names
		}

		if _, exists := names[def.Name]; exists {
			return nil, fmt.Errorf("%w: %s marker %q", ErrDuplicateDefinition, def.Target, def.Name)
		}

		if _, exists := r.byKind[def.Kind]; exists {
			return nil, fmt.Errorf("%w: kind %s", ErrDuplicateDefinition, def.Kind)
		}

		names[def.Name] = def
		r.byKind[def.Kind] = def

		opts := r.byOption[def.Target]
		if opts == nil {
			opts = make(map[string]optionRef)
			r.byOption[def.Target] = opts
		}

		for _, opt := range def.Options {
			if _, exists := opts[opt.String()]; exists {
				return nil, fmt.Errorf("%w: %s option %q", ErrDuplicateDefinition, def.Target, opt)
			}

			opts[opt.String()] = optionRef{def: def, option: opt}
		}
	}

	return r, nil
}

// DefaultRegistry returns a registry holding DefaultDefinitions.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultDefinitions()...)
	if err != nil {
		panic(fmt.Sprintf("marker: default definitions are invalid: %v", err))
	}

	return r
}

// Lookup returns the definition spelled name at target.
func (r *Registry) Lookup(target Target, name string) (Definition, bool) {
	def, ok := r.byName[target][name]
	return def, ok
}

// Definition returns the definition of a kind.
func (r *Registry) Definition(kind Kind) (Definition, bool) {
	def, ok := r.byKind[kind]
	return def, ok
}

// Names returns every marker and option token valid at target, sorted.
func (r *Registry) Names(target Target) []string {
	var names []string

	for name := range r.byName[target] {
		names = append(names, name)
	}

	for name := range r.byOption[target] {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
