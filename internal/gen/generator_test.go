package gen

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clone-generator/internal/analyze"
	"clone-generator/internal/marker"
	"clone-generator/internal/model"
	"clone-generator/internal/plan"
	"clone-generator/internal/policy"
)

const samplePkg = "clone-generator/sample"

func planSample(t *testing.T) *plan.Result {
	t.Helper()

	return planPackage(t, samplePkg, plan.DefaultConfig())
}

func planPackage(t *testing.T, pkg string, config plan.Config) *plan.Result {
	t.Helper()

	tg, err := analyze.NewAnalyzer().LoadPackages("", pkg)
	require.NoError(t, err)

	g, diags := model.Build(tg, marker.DefaultRegistry(), nil, DefaultGeneratorConfig().FileSuffix)
	require.True(t, diags.IsValid())

	result, err := plan.NewPlanner(config).PlanAll(context.Background(), g)
	require.NoError(t, err)
	require.True(t, result.Diagnostics.IsValid())

	return result
}

func testArtifact(props ...policy.PropertyPlan) *plan.Artifact {
	a := &plan.Artifact{
		Type:       analyze.TypeID{PkgPath: "example.com/shop", Name: "Order"},
		PkgName:    "shop",
		Properties: props,
	}

	for _, p := range props {
		fast := plan.Action{Field: p.Name, Shape: p.Shape}
		safe := fast
		if p.Treatment == policy.TreatmentDeepClone {
			fast.Kind = plan.ActionCloneFast
			safe.Kind = plan.ActionCloneSafe
		}

		a.Fast = append(a.Fast, fast)
		a.Safe = append(a.Safe, safe)
	}

	return a
}

// TestGenerate_SampleIsUpToDate regenerates the sample package and compares
// it with the checked in files.
func TestGenerate_SampleIsUpToDate(t *testing.T) {
	files, err := NewGenerator(DefaultGeneratorConfig()).Generate(planSample(t))
	require.NoError(t, err)
	require.Len(t, files, 8)

	for _, f := range files {
		diff, err := Diff(f)
		require.NoError(t, err)
		assert.Empty(t, diff, "%s is stale", f.Filename)
	}
}

// TestGenerate_RecursiveSampleIsUpToDate checks the package generated with
// self-typed fields deep cloned.
func TestGenerate_RecursiveSampleIsUpToDate(t *testing.T) {
	config := plan.DefaultConfig()
	config.Policy.AllowSelfDeepClone = true

	files, err := NewGenerator(DefaultGeneratorConfig()).Generate(planPackage(t, samplePkg+"/recursive", config))
	require.NoError(t, err)
	require.Len(t, files, 2)

	for _, f := range files {
		diff, err := Diff(f)
		require.NoError(t, err)
		assert.Empty(t, diff, "%s is stale", f.Filename)
	}

	// With the guard in place the same package would copy Next by reference.
	guarded, err := NewGenerator(DefaultGeneratorConfig()).Generate(planPackage(t, samplePkg+"/recursive", plan.DefaultConfig()))
	require.NoError(t, err)
	require.Len(t, guarded, 2)
	assert.Contains(t, string(guarded[0].Content), "\tout.Next = x.Next\n")
}

func TestGenerate_Filenames(t *testing.T) {
	files, err := NewGenerator(DefaultGeneratorConfig()).Generate(planSample(t))
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, f.Filename)
		assert.True(t, filepath.IsAbs(f.Dir), f.Dir)
	}

	assert.Equal(t, []string{
		"child_clone.go",
		"document_clone.go",
		"metadata_clone.go",
		"node_clone.go",
		"parent_clone.go",
		"person_clone.go",
		"simple_clone_clone.go",
		"simple_clone_explicit_clone.go",
	}, names)
}

func TestGenerateArtifact(t *testing.T) {
	a := testArtifact(
		policy.PropertyPlan{Name: "ID", Treatment: policy.TreatmentShallowCopy},
		policy.PropertyPlan{Name: "Buyer", Treatment: policy.TreatmentDeepClone, Shape: model.ShapePointer},
		policy.PropertyPlan{Name: "Address", Treatment: policy.TreatmentDeepClone, Shape: model.ShapeValue},
	)

	file, err := NewGenerator(DefaultGeneratorConfig()).GenerateArtifact(a)
	require.NoError(t, err)

	src := string(file.Content)
	assert.Equal(t, "order_clone.go", file.Filename)
	assert.True(t, IsGenerated(file.Content))
	assert.Contains(t, src, "package shop\n")
	assert.Contains(t, src, `import "clone-generator/refchain"`)
	assert.Contains(t, src, "func (x *Order) Clone() *Order {")
	assert.Contains(t, src, "func (x *Order) CloneSafe(chain *refchain.Chain) *Order {")
	assert.Contains(t, src, "\tout.ID = x.ID\n")
	assert.Contains(t, src, "\tif x.Buyer != nil {\n\t\tout.Buyer = x.Buyer.Clone()\n\t}\n")
	assert.Contains(t, src, "\tif x.Buyer != nil {\n\t\tout.Buyer = x.Buyer.CloneSafe(chain)\n\t}\n")
	assert.Contains(t, src, "\tout.Address = *x.Address.Clone()\n")
	assert.Contains(t, src, "\tout.Address = *x.Address.CloneSafe(chain)\n")
	assert.Contains(t, src, "// Clone returns a deep copy of Order.")

	// The safe operation checks the chain before pushing and pops on return.
	contains := strings.Index(src, "chain.Contains(x)")
	push := strings.Index(src, "chain.Push(x)")
	pop := strings.Index(src, "defer chain.Pop(x)")
	assert.True(t, contains >= 0 && contains < push && push < pop)
}

func TestGenerateArtifact_EmptyPlan(t *testing.T) {
	file, err := NewGenerator(DefaultGeneratorConfig()).GenerateArtifact(testArtifact())
	require.NoError(t, err)
	assert.Contains(t, string(file.Content), "\tout := &Order{}\n\n\treturn out\n")
}

func TestGenerateArtifact_Options(t *testing.T) {
	g := NewGenerator(GeneratorConfig{
		RuntimeImport: "example.com/lib/cyclechain",
		FileSuffix:    "_deepcopy.go",
	})

	file, err := g.GenerateArtifact(testArtifact(policy.PropertyPlan{Name: "ID", Treatment: policy.TreatmentShallowCopy}))
	require.NoError(t, err)

	src := string(file.Content)
	assert.Equal(t, "order_deepcopy.go", file.Filename)
	assert.Contains(t, src, `import "example.com/lib/cyclechain"`)
	assert.Contains(t, src, "chain *cyclechain.Chain")
	assert.Contains(t, src, "chain = cyclechain.New()")
	assert.NotContains(t, src, "// Clone returns")
}

func TestGenerateArtifact_Invalid(t *testing.T) {
	g := NewGenerator(DefaultGeneratorConfig())

	_, err := g.GenerateArtifact(&plan.Artifact{PkgName: "shop"})
	assert.ErrorIs(t, err, plan.ErrEmptyIdentity)
}

func TestGenerate_CollisionsAndIsolation(t *testing.T) {
	first := testArtifact()
	first.Type.Name = "HTTPServer"
	second := testArtifact()
	second.Type.Name = "HttpServer"
	broken := &plan.Artifact{Type: analyze.TypeID{Name: "Broken"}}
	ok := testArtifact()

	files, err := NewGenerator(DefaultGeneratorConfig()).Generate(&plan.Result{
		Artifacts: []*plan.Artifact{first, second, broken, ok},
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "http_server_clone.go is already generated for example.com/shop.HTTPServer")
	assert.ErrorIs(t, err, plan.ErrEmptyIdentity)

	require.Len(t, files, 2)
	assert.Equal(t, "http_server_clone.go", files[0].Filename)
	assert.Equal(t, "order_clone.go", files[1].Filename)
}

func TestNewGeneratedFile(t *testing.T) {
	_, err := NewGeneratedFile("dir", "", []byte("package x"))
	assert.ErrorIs(t, err, ErrEmptyIdentity)

	_, err = NewGeneratedFile("dir", "x.go", []byte(" \n"))
	assert.ErrorIs(t, err, ErrEmptyBody)

	f, err := NewGeneratedFile("dir", "x.go", []byte("package x"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("dir", "x.go"), f.Path())
}

func TestIsGenerated(t *testing.T) {
	assert.True(t, IsGenerated([]byte("// Code generated by clone-generator. DO NOT EDIT.\n\npackage x\n")))
	assert.True(t, IsGenerated([]byte("// Copyright\n\n// Code generated by stringer. DO NOT EDIT.\n")))
	assert.False(t, IsGenerated([]byte("package x\n\n// Code generated by hand\n")))
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()

	file, err := NewGeneratedFile(filepath.Join(dir, "pkg"), "order_clone.go",
		[]byte("// Code generated by clone-generator. DO NOT EDIT.\n\npackage pkg\n"))
	require.NoError(t, err)

	require.NoError(t, WriteFiles([]GeneratedFile{file}))

	written, err := os.ReadFile(file.Path())
	require.NoError(t, err)
	assert.Equal(t, file.Content, written)

	// Regenerating over a generated file is fine.
	require.NoError(t, WriteFiles([]GeneratedFile{file}))

	// A hand-written file is never replaced.
	handWritten := filepath.Join(dir, "pkg", "person_clone.go")
	require.NoError(t, os.WriteFile(handWritten, []byte("package pkg\n"), 0o644))

	other := file
	other.Filename = "person_clone.go"
	err = WriteFiles([]GeneratedFile{other, file})
	assert.ErrorIs(t, err, ErrNotGenerated)

	kept, err := os.ReadFile(handWritten)
	require.NoError(t, err)
	assert.Equal(t, "package pkg\n", string(kept))
}

func TestDiff(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "order_clone.go")
	require.NoError(t, os.WriteFile(path, []byte("package shop\n\nvar a = 1\n"), 0o644))

	file := GeneratedFile{Dir: dir, Filename: "order_clone.go", Content: []byte("package shop\n\nvar a = 2\n")}

	diff, err := Diff(file)
	require.NoError(t, err)
	assert.Contains(t, diff, "--- a/order_clone.go")
	assert.Contains(t, diff, "+++ b/order_clone.go")
	assert.Contains(t, diff, "-var a = 1")
	assert.Contains(t, diff, "+var a = 2")

	file.Content = []byte("package shop\n\nvar a = 1\n")
	diff, err = Diff(file)
	require.NoError(t, err)
	assert.Empty(t, diff)

	missing := GeneratedFile{Dir: dir, Filename: "missing_clone.go", Content: []byte("package shop\n")}
	diff, err = Diff(missing)
	require.NoError(t, err)
	assert.Contains(t, diff, "+package shop")
}

func TestStatement(t *testing.T) {
	fast, safe := plan.OperationFast, plan.OperationSafe

	tests := []struct {
		op     plan.Operation
		action plan.Action
		want   string
	}{
		{fast, plan.Action{Field: "A", Kind: plan.ActionAssign}, "\tout.A = x.A"},
		{safe, plan.Action{Field: "A", Kind: plan.ActionAssign, Shape: model.ShapePointer}, "\tout.A = x.A"},
		{fast, plan.Action{Field: "B", Kind: plan.ActionCloneFast, Shape: model.ShapePointer}, "\tif x.B != nil {\n\t\tout.B = x.B.Clone()\n\t}"},
		{safe, plan.Action{Field: "B", Kind: plan.ActionCloneSafe, Shape: model.ShapePointer}, "\tif x.B != nil {\n\t\tout.B = x.B.CloneSafe(chain)\n\t}"},
		{fast, plan.Action{Field: "C", Kind: plan.ActionCloneFast, Shape: model.ShapeValue}, "\tout.C = *x.C.Clone()"},
		{safe, plan.Action{Field: "C", Kind: plan.ActionCloneSafe, Shape: model.ShapeValue}, "\tout.C = *x.C.CloneSafe(chain)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statement(tt.op, tt.action))
	}
}
