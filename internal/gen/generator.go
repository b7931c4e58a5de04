package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"go.uber.org/multierr"

	"clone-generator/internal/common"
	"clone-generator/internal/model"
	"clone-generator/internal/plan"
)

// DefaultRuntimeImport is the import path of the reference chain runtime.
const DefaultRuntimeImport = "clone-generator/refchain"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// RuntimeImport is the import path of the package providing Chain.
	RuntimeImport string
	// FileSuffix is appended to the snake_case type name to build the filename.
	FileSuffix string
	// GenerateComments enables doc comments on the generated methods.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		RuntimeImport:    DefaultRuntimeImport,
		FileSuffix:       "_clone.go",
		GenerateComments: true,
	}
}

// Generator generates Go code from planned clone artifacts.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
// Empty fields fall back to the defaults.
func NewGenerator(config GeneratorConfig) *Generator {
	def := DefaultGeneratorConfig()

	if config.RuntimeImport == "" {
		config.RuntimeImport = def.RuntimeImport
	}

	if config.FileSuffix == "" {
		config.FileSuffix = def.FileSuffix
	}

	return &Generator{config: config}
}

// Filename returns the name of the file generated for a type name.
func (g *Generator) Filename(typeName string) string {
	return common.SnakeCase(typeName) + g.config.FileSuffix
}

// Generate renders one file per artifact.
// A failing artifact does not stop the others: the files that could be
// rendered are returned together with the combined error.
func (g *Generator) Generate(result *plan.Result) ([]GeneratedFile, error) {
	var (
		files []GeneratedFile
		errs  error
	)

	owners := make(map[string]string)

	for _, a := range result.Artifacts {
		file, err := g.GenerateArtifact(a)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("generating %s: %w", a.Type, err))
			continue
		}

		if owner, taken := owners[file.Path()]; taken {
			errs = multierr.Append(errs, fmt.Errorf("generating %s: file %s is already generated for %s",
				a.Type, file.Path(), owner))

			continue
		}

		owners[file.Path()] = a.Type.String()
		files = append(files, file)
	}

	return files, errs
}

// GenerateArtifact renders the clone methods of a single artifact.
func (g *Generator) GenerateArtifact(a *plan.Artifact) (GeneratedFile, error) {
	if err := a.Validate(); err != nil {
		return GeneratedFile{}, err
	}

	data := g.buildTemplateData(a)

	var buf bytes.Buffer
	if err := cloneTemplate.Execute(&buf, data); err != nil {
		return GeneratedFile{}, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		_ = writeDebugUnformatted(a.Dir, data.Filename, buf.Bytes())

		return GeneratedFile{}, fmt.Errorf("formatting code: %w", err)
	}

	return NewGeneratedFile(a.Dir, data.Filename, formatted)
}

// templateData holds all data needed for the clone template.
type templateData struct {
	PackageName   string
	Filename      string
	RuntimeImport string
	RuntimePkg    string
	TypeName      string
	FastDoc       []string
	SafeDoc       []string
	Fast          []string
	Safe          []string
}

func (g *Generator) buildTemplateData(a *plan.Artifact) *templateData {
	data := &templateData{
		PackageName:   a.PkgName,
		Filename:      g.Filename(a.Type.Name),
		RuntimeImport: g.config.RuntimeImport,
		RuntimePkg:    common.PkgAlias(g.config.RuntimeImport),
		TypeName:      a.Type.Name,
	}

	if g.config.GenerateComments {
		data.FastDoc = fastDoc(a.Type.Name)
		data.SafeDoc = safeDoc(a.Type.Name)
	}

	data.Fast = statements(a, plan.OperationFast)
	data.Safe = statements(a, plan.OperationSafe)

	return data
}

func statements(a *plan.Artifact, op plan.Operation) []string {
	actions := a.Actions(op)

	out := make([]string, 0, len(actions))
	for _, act := range actions {
		out = append(out, statement(op, act))
	}

	return out
}

// statement renders one action of op.
func statement(op plan.Operation, act plan.Action) string {
	f := act.Field

	if !act.IsRecursive() {
		return fmt.Sprintf("\tout.%s = x.%s", f, f)
	}

	call := op.Method() + "()"
	if op == plan.OperationSafe {
		call = op.Method() + "(chain)"
	}

	if act.Shape == model.ShapeValue {
		return fmt.Sprintf("\tout.%s = *x.%s.%s", f, f, call)
	}

	return fmt.Sprintf("\tif x.%s != nil {\n\t\tout.%s = x.%s.%s\n\t}", f, f, f, call)
}

func fastDoc(typeName string) []string {
	return []string{
		fmt.Sprintf("Clone returns a deep copy of %s.", typeName),
		"",
		"Clone does not track the objects it visits. On a cyclic object graph it",
		"recurses until the stack is exhausted; use CloneSafe when cycles are possible.",
	}
}

func safeDoc(typeName string) []string {
	return []string{
		fmt.Sprintf("CloneSafe returns a deep copy of %s that tolerates reference cycles.", typeName),
		"",
		"chain holds the objects being cloned on the current path; pass nil to start",
		"a new one. When a cycle leads back to such an object, the original reference",
		"is kept instead of a new copy.",
	}
}

// Template for the clone file

var cloneTemplate = template.Must(template.New("clone").Parse(`// Code generated by clone-generator. DO NOT EDIT.

package {{.PackageName}}

import "{{.RuntimeImport}}"

{{range .FastDoc}}{{if .}}// {{.}}{{else}}//{{end}}
{{end}}func (x *{{.TypeName}}) Clone() *{{.TypeName}} {
	if x == nil {
		return nil
	}

	out := &{{.TypeName}}{}
{{range .Fast}}{{.}}
{{end}}
	return out
}

{{range .SafeDoc}}{{if .}}// {{.}}{{else}}//{{end}}
{{end}}func (x *{{.TypeName}}) CloneSafe(chain *{{.RuntimePkg}}.Chain) *{{.TypeName}} {
	if x == nil {
		return nil
	}
	if chain.Contains(x) {
		return x
	}
	if chain == nil {
		chain = {{.RuntimePkg}}.New()
	}

	chain.Push(x)
	defer chain.Pop(x)

	out := &{{.TypeName}}{}
{{range .Safe}}{{.}}
{{end}}
	return out
}
`))
