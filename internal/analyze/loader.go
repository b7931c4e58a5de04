package analyze

import (
	"fmt"
	"go/ast"
	"go/types"
	"path/filepath"
	"reflect"
	"strings"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	graph     *TypeGraph
	typeCache map[types.Type]*TypeInfo // Cache to handle recursive types
	loaded    map[string]bool          // Package paths requested by the caller
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		graph:     NewTypeGraph(),
		typeCache: make(map[types.Type]*TypeInfo),
		loaded:    make(map[string]bool),
	}
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./sample", "clone-generator/sample")
// resolved relative to dir, or to the current directory when dir is empty.
func (a *Analyzer) LoadPackages(dir string, patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	// Register every requested package first so that cross-package references
	// between them are analyzed as structs rather than external types.
	for _, pkg := range pkgs {
		a.loaded[pkg.PkgPath] = true
		a.graph.Packages[pkg.PkgPath] = newPackageInfo(pkg)
	}

	// Process each package
	for _, pkg := range pkgs {
		if err := a.processPackage(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

func newPackageInfo(pkg *packages.Package) *PackageInfo {
	info := &PackageInfo{
		Path:  pkg.PkgPath,
		Name:  pkg.Name,
		Files: append([]string(nil), pkg.GoFiles...),
	}

	if len(pkg.GoFiles) > 0 {
		info.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	return info
}

// processPackage extracts types from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) error {
	if pkg.Types == nil {
		return fmt.Errorf("package %s has no type information", pkg.PkgPath)
	}

	pkgInfo := a.graph.Packages[pkg.PkgPath]

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)

		// Only process type names (not variables, constants, functions)
		typeName, ok := obj.(*types.TypeName)
		if !ok || typeName.IsAlias() {
			continue
		}

		typeID := TypeID{
			PkgPath: pkg.PkgPath,
			Name:    name,
		}

		typeInfo := a.analyzeType(typeName.Type())
		typeInfo.ID = typeID
		typeInfo.Exported = typeName.Exported()

		a.graph.Types[typeID] = typeInfo
		pkgInfo.Types = append(pkgInfo.Types, typeID)
	}

	a.processSyntax(pkg)

	return nil
}

// processSyntax attaches doc comments, positions and declared methods to the
// types of pkg.
func (a *Analyzer) processSyntax(pkg *packages.Package) {
	for _, file := range pkg.Syntax {
		generated := ast.IsGenerated(file)
		filename := filepath.Base(pkg.Fset.Position(file.Package).Filename)

		for _, decl := range file.Decls {
			switch d := decl.(type) {
			case *ast.GenDecl:
				a.processTypeDecl(pkg, d)

			case *ast.FuncDecl:
				if d.Recv == nil || len(d.Recv.List) == 0 {
					continue
				}

				recv := receiverTypeName(d.Recv.List[0].Type)
				if info := a.graph.GetType(TypeID{PkgPath: pkg.PkgPath, Name: recv}); info != nil {
					info.Methods = append(info.Methods, MethodInfo{
						Name:      d.Name.Name,
						File:      filename,
						Generated: generated,
					})
				}
			}
		}
	}
}

func (a *Analyzer) processTypeDecl(pkg *packages.Package, decl *ast.GenDecl) {
	for _, spec := range decl.Specs {
		ts, ok := spec.(*ast.TypeSpec)
		if !ok {
			continue
		}

		info := a.graph.GetType(TypeID{PkgPath: pkg.PkgPath, Name: ts.Name.Name})
		if info == nil {
			continue
		}

		doc := ts.Doc
		if doc == nil && len(decl.Specs) == 1 {
			doc = decl.Doc
		}

		info.Doc = commentLines(doc)

		pos := pkg.Fset.Position(ts.Pos())
		info.Pos = fmt.Sprintf("%s:%d", filepath.Base(pos.Filename), pos.Line)
	}
}

// commentLines returns the raw lines of a comment group with comment markers
// stripped. Unlike CommentGroup.Text it keeps directive-style lines.
func commentLines(cg *ast.CommentGroup) []string {
	if cg == nil {
		return nil
	}

	var lines []string

	for _, c := range cg.List {
		text := c.Text
		switch {
		case strings.HasPrefix(text, "//"):
			lines = append(lines, strings.TrimSpace(text[2:]))
		case strings.HasPrefix(text, "/*"):
			body := strings.TrimSuffix(text[2:], "*/")
			for _, line := range strings.Split(body, "\n") {
				lines = append(lines, strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "*")))
			}
		}
	}

	return lines
}

// receiverTypeName extracts "T" from receiver expressions like T, *T, T[K] or *T[K, V].
func receiverTypeName(expr ast.Expr) string {
	for {
		switch e := expr.(type) {
		case *ast.StarExpr:
			expr = e.X
		case *ast.ParenExpr:
			expr = e.X
		case *ast.IndexExpr:
			expr = e.X
		case *ast.IndexListExpr:
			expr = e.X
		case *ast.Ident:
			return e.Name
		default:
			return ""
		}
	}
}

// analyzeType recursively analyzes a go/types.Type and returns a TypeInfo.
func (a *Analyzer) analyzeType(t types.Type) *TypeInfo {
	// Check cache to handle recursive types
	if cached, ok := a.typeCache[t]; ok {
		return cached
	}

	if alias, ok := t.(*types.Alias); ok {
		info := a.analyzeType(types.Unalias(alias))
		a.typeCache[t] = info

		return info
	}

	info := &TypeInfo{
		GoType: t,
	}

	// Pre-cache to handle recursive types (we'll fill in details)
	a.typeCache[t] = info

	switch tt := t.(type) {
	case *types.Named:
		a.analyzeNamedType(tt, info)

	case *types.Basic:
		info.Kind = TypeKindBasic

	case *types.Pointer:
		info.Kind = TypeKindPointer
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Slice:
		info.Kind = TypeKindSlice
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Array:
		info.Kind = TypeKindArray
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Struct:
		info.Kind = TypeKindStruct
		a.analyzeStructFields(tt, info)

	default:
		// Maps, interfaces, channels, funcs, etc. are opaque to the cloner
		info.Kind = TypeKindUnknown
	}

	return info
}

// analyzeNamedType analyzes a named type.
func (a *Analyzer) analyzeNamedType(named *types.Named, info *TypeInfo) {
	obj := named.Obj()

	pkgPath := ""
	if obj.Pkg() != nil {
		pkgPath = obj.Pkg().Path()
	}

	info.ID = TypeID{
		PkgPath: pkgPath,
		Name:    obj.Name(),
	}
	info.Exported = obj.Exported()
	info.HasTypeParams = named.TypeParams().Len() > 0

	// Instantiations (Box[int]) and types from packages we did not load are
	// opaque: the generator can neither see nor emit their clone methods.
	if named.TypeArgs().Len() > 0 || !a.loaded[pkgPath] {
		info.Kind = TypeKindExternal
		return
	}

	underlying := named.Underlying()

	switch ut := underlying.(type) {
	case *types.Struct:
		info.Kind = TypeKindStruct
		a.analyzeStructFields(ut, info)

	default:
		// Named type wrapping something else in our packages
		// (e.g., type OrderStatus string)
		info.Kind = TypeKindAlias
		info.Underlying = a.analyzeType(ut)
	}
}

// analyzeStructFields extracts fields from a struct type.
// Unexported fields are kept: generated methods live in the declaring package.
func (a *Analyzer) analyzeStructFields(st *types.Struct, info *TypeInfo) {
	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)

		fieldInfo := FieldInfo{
			Name:     field.Name(),
			Exported: field.Exported(),
			Type:     a.analyzeType(field.Type()),
			Tag:      reflect.StructTag(st.Tag(i)),
			Embedded: field.Embedded(),
			Index:    i,
		}

		info.Fields = append(info.Fields, fieldInfo)
	}
}
