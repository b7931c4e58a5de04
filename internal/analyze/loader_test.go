package analyze

import (
	"go/ast"
	"go/parser"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePkg = "clone-generator/sample"

func loadSample(t *testing.T) *TypeGraph {
	t.Helper()

	analyzer := NewAnalyzer()
	graph, err := analyzer.LoadPackages("", samplePkg)
	require.NoError(t, err)
	require.NotNil(t, graph)

	return graph
}

func findField(t *testing.T, info *TypeInfo, name string) *FieldInfo {
	t.Helper()

	for i := range info.Fields {
		if info.Fields[i].Name == name {
			return &info.Fields[i]
		}
	}
	require.Failf(t, "field not found", "%s has no field %s", info.ID, name)

	return nil
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	graph := loadSample(t)

	require.Contains(t, graph.Packages, samplePkg)
	pkg := graph.Packages[samplePkg]
	assert.Equal(t, "sample", pkg.Name)
	assert.NotEmpty(t, pkg.Dir)
	assert.NotEmpty(t, pkg.Files)

	for _, name := range []string{"Parent", "Child", "Node", "Document", "Person", "Metadata", "Label"} {
		assert.Contains(t, graph.Types, TypeID{PkgPath: samplePkg, Name: name})
	}
}

func TestAnalyzer_DocComments(t *testing.T) {
	graph := loadSample(t)

	parent := graph.GetType(TypeID{PkgPath: samplePkg, Name: "Parent"})
	require.NotNil(t, parent)
	assert.Contains(t, parent.Doc, "+clone")
	assert.Contains(t, parent.Pos, "graph.go:")

	explicit := graph.GetType(TypeID{PkgPath: samplePkg, Name: "SimpleCloneExplicit"})
	require.NotNil(t, explicit)
	assert.Contains(t, explicit.Doc, "+clone:explicit")

	label := graph.GetType(TypeID{PkgPath: samplePkg, Name: "Label"})
	require.NotNil(t, label)
	assert.NotContains(t, label.Doc, "+clone")
}

func TestAnalyzer_Methods(t *testing.T) {
	graph := loadSample(t)

	doc := graph.GetType(TypeID{PkgPath: samplePkg, Name: "Document"})
	require.NotNil(t, doc)

	files := make(map[string]string)
	for _, m := range doc.Methods {
		files[m.Name] = m.File
		assert.Equal(t, m.File == "document_clone.go", m.Generated, m.Name)
	}

	assert.Equal(t, "document_clone.go", files["Clone"])
	assert.Equal(t, "document_clone.go", files["CloneSafe"])
	assert.Equal(t, "document.go", files["Draft"])

	// Only methods generated into our own files are left out.
	assert.ElementsMatch(t, []string{"Draft", "SetDraft"}, doc.UserMethods("_clone.go"))
	assert.ElementsMatch(t, []string{"Clone", "CloneSafe", "Draft", "SetDraft"}, doc.UserMethods("_deepcopy.go"))
	assert.Len(t, doc.UserMethods(""), 4)
}

func TestMethodInfo_OwnedBy(t *testing.T) {
	ours := MethodInfo{Name: "Clone", File: "order_clone.go", Generated: true}
	assert.True(t, ours.OwnedBy("_clone.go"))
	assert.False(t, ours.OwnedBy(""))

	// Another generator declaring Clone is not ours.
	other := MethodInfo{Name: "Clone", File: "order_deepcopy.go", Generated: true}
	assert.False(t, other.OwnedBy("_clone.go"))

	// A hand-written file that happens to use our suffix is not ours either.
	manual := MethodInfo{Name: "Clone", File: "manual_clone.go"}
	assert.False(t, manual.OwnedBy("_clone.go"))
}

func TestAnalyzer_DocumentFields(t *testing.T) {
	graph := loadSample(t)

	doc := graph.GetType(TypeID{PkgPath: samplePkg, Name: "Document"})
	require.NotNil(t, doc)
	assert.Equal(t, TypeKindStruct, doc.Kind)
	assert.True(t, doc.Exported)

	// Unexported fields are kept.
	draft := findField(t, doc, "draft")
	assert.False(t, draft.Exported)
	assert.Equal(t, "-", draft.Tag.Get("clone"))

	author := findField(t, doc, "Author")
	assert.Equal(t, "nodeep", author.Tag.Get("clone"))
	assert.Equal(t, TypeKindPointer, author.Type.Kind)
	require.NotNil(t, author.Type.ElemType)
	assert.Equal(t, TypeKindStruct, author.Type.ElemType.Kind)
	assert.Equal(t, "Person", author.Type.ElemType.ID.Name)

	meta := findField(t, doc, "Meta")
	assert.Equal(t, TypeKindStruct, meta.Type.Kind)

	tags := findField(t, doc, "Tags")
	assert.Equal(t, TypeKindSlice, tags.Type.Kind)
	assert.Equal(t, TypeKindBasic, tags.Type.ElemType.Kind)

	created := findField(t, doc, "Created")
	assert.Equal(t, TypeKindExternal, created.Type.Kind)
	assert.Equal(t, TypeID{PkgPath: "time", Name: "Time"}, created.Type.ID)
}

func TestAnalyzer_RecursiveType(t *testing.T) {
	graph := loadSample(t)

	node := graph.GetType(TypeID{PkgPath: samplePkg, Name: "Node"})
	require.NotNil(t, node)

	next := findField(t, node, "Next")
	require.Equal(t, TypeKindPointer, next.Type.Kind)
	assert.Same(t, node, next.Type.ElemType)
}

func TestReceiverTypeName(t *testing.T) {
	cases := map[string]string{
		"T":          "T",
		"*T":         "T",
		"Box[K]":     "Box",
		"*Pair[K,V]": "Pair",
		"(*T)":       "T",
	}

	for src, want := range cases {
		expr, err := parser.ParseExpr(src)
		require.NoError(t, err, src)
		assert.Equal(t, want, receiverTypeName(expr), src)
	}
}

func TestCommentLines(t *testing.T) {
	cg := &ast.CommentGroup{List: []*ast.Comment{
		{Text: "// Parent owns a Child."},
		{Text: "//"},
		{Text: "// +clone:explicit"},
		{Text: "/* block\n * +clone\n */"},
	}}

	assert.Equal(t, []string{"Parent owns a Child.", "", "+clone:explicit", "block", "+clone", ""}, commentLines(cg))
	assert.Nil(t, commentLines(nil))
}

func TestTypeID_String(t *testing.T) {
	id := TypeID{PkgPath: samplePkg, Name: "Parent"}
	assert.Equal(t, "clone-generator/sample.Parent", id.String())
	assert.Equal(t, "sample.Parent", id.Short())
	assert.False(t, id.IsZero())

	// Empty package path
	idNoPkg := TypeID{Name: "int"}
	assert.Equal(t, "int", idNoPkg.String())
	assert.Equal(t, "int", idNoPkg.Short())
	assert.True(t, TypeID{}.IsZero())
}

func TestTypeKind_String(t *testing.T) {
	assert.Equal(t, "basic", TypeKindBasic.String())
	assert.Equal(t, "struct", TypeKindStruct.String())
	assert.Equal(t, "pointer", TypeKindPointer.String())
	assert.Equal(t, "slice", TypeKindSlice.String())
	assert.Equal(t, "array", TypeKindArray.String())
	assert.Equal(t, "alias", TypeKindAlias.String())
	assert.Equal(t, "external", TypeKindExternal.String())
	assert.Equal(t, "unknown", TypeKindUnknown.String())
}

func TestFieldInfo_IsBlank(t *testing.T) {
	assert.True(t, (&FieldInfo{Name: "_"}).IsBlank())
	assert.False(t, (&FieldInfo{Name: "C"}).IsBlank())
}
