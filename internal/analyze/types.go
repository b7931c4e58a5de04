package analyze

import (
	"go/types"
	"reflect"
	"strings"

	"clone-generator/internal/common"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "clone-generator/sample"
	Name    string // e.g., "Parent"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// IsZero returns true if the TypeID does not name a type.
func (t TypeID) IsZero() bool {
	return t.Name == ""
}

// Short returns "pkg.Name" using the last element of the package path.
func (t TypeID) Short() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return common.PkgAlias(t.PkgPath) + "." + t.Name
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown  TypeKind = iota
	TypeKindBasic             // int, string, bool, etc.
	TypeKindStruct            // struct type
	TypeKindPointer           // pointer to another type
	TypeKindSlice             // slice of another type
	TypeKindArray             // array of another type
	TypeKindAlias             // named type wrapping a non-struct type
	TypeKindExternal          // external/opaque type (e.g., time.Time)
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindArray:
		return "array"
	case TypeKindAlias:
		return "alias"
	case TypeKindExternal:
		return "external"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a Go type in the type graph.
type TypeInfo struct {
	ID            TypeID       // Unique identifier (empty for unnamed types like *T or []T)
	Kind          TypeKind     // Kind of type
	Underlying    *TypeInfo    // For named non-struct types, the underlying type
	ElemType      *TypeInfo    // For pointers, slices and arrays, the element type
	Fields        []FieldInfo  // For structs, the list of fields
	GoType        types.Type   // The original go/types.Type
	Exported      bool         // Whether the type name is exported
	Doc           []string     // Doc comment lines of the declaration, "//" stripped
	Methods       []MethodInfo // Methods declared on T or *T
	HasTypeParams bool         // True for generic type declarations
	Pos           string       // file:line of the declaration, if known
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// UserMethods returns the names of the methods of t except those generated
// into files ending in ownSuffix. Methods written by other generators are
// user methods too.
func (t *TypeInfo) UserMethods(ownSuffix string) []string {
	var names []string

	for _, m := range t.Methods {
		if !m.OwnedBy(ownSuffix) {
			names = append(names, m.Name)
		}
	}

	return names
}

// MethodInfo describes a method declared on a named type.
type MethodInfo struct {
	Name      string
	File      string // Base name of the declaring file
	Generated bool   // Declared in a file carrying a "Code generated ... DO NOT EDIT." header
}

// OwnedBy reports whether m was generated into a file whose name ends in
// suffix. An empty suffix owns nothing.
func (m MethodInfo) OwnedBy(suffix string) bool {
	return m.Generated && suffix != "" && strings.HasSuffix(m.File, suffix)
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string            // Go field name (type name for embedded fields)
	Exported bool              // Whether the field is exported
	Type     *TypeInfo         // Field type
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
}

// IsBlank returns true for "_" padding fields, which cannot be assigned.
func (f *FieldInfo) IsBlank() bool {
	return f.Name == "_"
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Dir   string   // Directory holding the package sources
	Files []string // Absolute paths of the package's Go files
	Types []TypeID // Named types defined in this package
}
