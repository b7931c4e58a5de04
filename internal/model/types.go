package model

import (
	"slices"

	"clone-generator/internal/analyze"
	"clone-generator/internal/common"
)

// SelectionMode governs which properties take part in cloning by default.
type SelectionMode int

const (
	// SelectionImplicit includes every property not marked excluded.
	SelectionImplicit SelectionMode = iota
	// SelectionExplicit includes only properties marked included.
	SelectionExplicit
)

// String returns a human-readable representation of the SelectionMode.
func (m SelectionMode) String() string {
	switch m {
	case SelectionImplicit:
		return "implicit"
	case SelectionExplicit:
		return "explicit"
	default:
		return common.UnknownStr
	}
}

// Accessibility is the declared visibility of a type, passed through to emission.
type Accessibility string

const (
	AccessExported   Accessibility = "exported"
	AccessUnexported Accessibility = "unexported"
)

// Shape describes how a property refers to its declared type.
type Shape int

const (
	ShapeOther   Shape = iota // slices, maps, basics, interfaces, **T ...
	ShapeValue                // T
	ShapePointer              // *T
)

// String returns a human-readable representation of the Shape.
func (s Shape) String() string {
	switch s {
	case ShapeOther:
		return "other"
	case ShapeValue:
		return "value"
	case ShapePointer:
		return "pointer"
	default:
		return common.UnknownStr
	}
}

// TypeRef is a property's reference to its declared type.
// ID is zero unless the property is a named type or a pointer to one.
type TypeRef struct {
	ID    analyze.TypeID
	Shape Shape
}

// IsNamed returns true if the reference points to a named type.
func (r TypeRef) IsNamed() bool {
	return !r.ID.IsZero()
}

// Property is a struct field as seen by the clone policy.
type Property struct {
	Name       string
	Declared   TypeRef
	TypeString string // Readable declared type, for plans and diagnostics
	Exported   bool
	Embedded   bool

	// Settable is false for fields that cannot be assigned, like "_".
	Settable bool

	// Raw markers after overrides.
	Include         bool
	Exclude         bool
	PreventDeepCopy bool

	// IsSelfType is true when the declared type is the containing type.
	IsSelfType bool
}

// Type is a type carrying the cloneable marker.
type Type struct {
	ID            analyze.TypeID
	PkgName       string
	Dir           string
	Accessibility Accessibility
	Mode          SelectionMode
	Kind          analyze.TypeKind
	Generic       bool
	Pos           string

	// UserMethods are the method names declared outside our own clone files.
	UserMethods []string

	Properties []Property
}

// HasUserMethod reports whether the type declares name outside our own clone files.
func (t *Type) HasUserMethod(name string) bool {
	return slices.Contains(t.UserMethods, name)
}

// Property returns the property with the given name, or nil.
func (t *Type) Property(name string) *Property {
	for i := range t.Properties {
		if t.Properties[i].Name == name {
			return &t.Properties[i]
		}
	}

	return nil
}

// Graph is the set of marked types, sorted by TypeID.
type Graph struct {
	Types []*Type
	index map[analyze.TypeID]*Type
}

// NewGraph creates a graph from already built types. Types are kept in the
// given order.
func NewGraph(types ...*Type) *Graph {
	g := &Graph{index: make(map[analyze.TypeID]*Type, len(types))}
	for _, t := range types {
		g.Types = append(g.Types, t)
		g.index[t.ID] = t
	}

	return g
}

// Lookup returns the type with the given ID, or nil.
func (g *Graph) Lookup(id analyze.TypeID) *Type {
	if g == nil {
		return nil
	}

	return g.index[id]
}

// Len returns the number of types.
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}

	return len(g.Types)
}
