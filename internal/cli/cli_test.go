package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clone-generator/internal/pipeline"
	"clone-generator/internal/plan"
)

func TestMain(m *testing.M) {
	color.NoColor = true

	os.Exit(m.Run())
}

var repoRoot = filepath.Join("..", "..")

// execute runs the root command and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

// newModule writes a throwaway module with one cloneable type and a local
// copy of the reference chain runtime.
func newModule(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	chain, err := os.ReadFile(filepath.Join(repoRoot, "refchain", "chain.go"))
	require.NoError(t, err)

	files := map[string]string{
		"go.mod":            "module example.com/zoo\n\ngo 1.24\n",
		"refchain/chain.go": string(chain),
		"zoo/zoo.go": `package zoo

// +clone
type Cage struct {
	Name   string
	Animal *Animal
}

// +clone
type Animal struct {
	Kind string
	Cage *Cage ` + "`clone:\"nodeep\"`" + `
}
`,
		"clonegen.yaml": `dir: .
packages: [./zoo]
runtime_import: example.com/zoo/refchain
`,
	}

	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	return dir
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)

	assert.Contains(t, stdout, "clone-generator version: dev")
	assert.Contains(t, stdout, "Go version: go")
}

func TestPlan_YAML(t *testing.T) {
	stdout, _, err := execute(t, "plan", "-C", repoRoot, "-p", "./sample")
	require.NoError(t, err)

	assert.Contains(t, stdout, `version: "1"`)
	assert.Contains(t, stdout, "type: clone-generator/sample.Document")
	assert.Contains(t, stdout, "treatment: deep")
	assert.Contains(t, stdout, "name: draft")
}

func TestPlan_Dump(t *testing.T) {
	stdout, _, err := execute(t, "plan", "-C", repoRoot, "-p", "./sample", "--format", "dump")
	require.NoError(t, err)

	assert.Contains(t, stdout, "clone-safe")
	assert.Contains(t, stdout, "Document")
}

func TestPlan_UnknownFormat(t *testing.T) {
	_, _, err := execute(t, "plan", "-C", repoRoot, "-p", "./sample", "--format", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "json"`)
}

func TestCheck_SampleUpToDate(t *testing.T) {
	stdout, _, err := execute(t, "check", "-C", repoRoot, "-p", "./sample")
	require.NoError(t, err)

	assert.Contains(t, stdout, "8 generated file(s) up to date")
}

func TestGenerateThenCheck(t *testing.T) {
	dir := newModule(t)
	config := filepath.Join(dir, "clonegen.yaml")

	// The config file uses a relative dir, so resolve it from the module.
	t.Chdir(dir)

	stdout, _, err := execute(t, "check", "--config", config)
	require.ErrorIs(t, err, pipeline.ErrStale)
	assert.Contains(t, stdout, "stale: "+filepath.Join(dir, "zoo", "cage_clone.go"))
	assert.Contains(t, stdout, "+// Code generated by clone-generator. DO NOT EDIT.")

	stdout, _, err = execute(t, "generate", "--config", config)
	require.NoError(t, err)
	assert.Contains(t, stdout, "generated 2 file(s) for 2 type(s): 0 error(s), 0 warning(s)")

	animal, err := os.ReadFile(filepath.Join(dir, "zoo", "animal_clone.go"))
	require.NoError(t, err)
	assert.Contains(t, string(animal), `import "example.com/zoo/refchain"`)
	assert.Contains(t, string(animal), "out.Cage = x.Cage\n")

	stdout, _, err = execute(t, "check", "--config", config, "--quiet")
	require.NoError(t, err)
	assert.Contains(t, stdout, "2 generated file(s) up to date")
}

func TestConfig_DefaultFileAndEnv(t *testing.T) {
	dir := newModule(t)
	t.Chdir(dir)
	t.Setenv("CLONEGEN_COMMENTS", "false")

	stdout, _, err := execute(t, "plan", "--format", "dump")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Cage")

	_, _, err = execute(t, "generate")
	require.NoError(t, err)

	cage, err := os.ReadFile(filepath.Join(dir, "zoo", "cage_clone.go"))
	require.NoError(t, err)
	assert.NotContains(t, string(cage), "// Clone returns")
}

func TestConfig_MissingExplicitFile(t *testing.T) {
	_, _, err := execute(t, "plan", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestConfig_InvalidSuffix(t *testing.T) {
	t.Setenv("CLONEGEN_FILE_SUFFIX", "_clone_test.go")

	_, _, err := execute(t, "plan", "-C", repoRoot, "-p", "./sample")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be a test file")
}

func TestLoadSettings_Precedence(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "clonegen.yaml")
	require.NoError(t, os.WriteFile(config, []byte(`packages: [./a, ./b]
parallelism: 2
policy:
  allow_self_deep_clone: true
watch:
  debounce: 1s
`), 0o644))

	t.Setenv("CLONEGEN_PARALLELISM", "6")

	cmd := NewRootCommand()
	require.NoError(t, cmd.PersistentFlags().Parse([]string{"--file-suffix", "_copy.go"}))

	v := newViper()
	require.NoError(t, bindFlags(v, cmd.PersistentFlags()))

	s, err := loadSettings(v, config)
	require.NoError(t, err)

	assert.Equal(t, []string{"./a", "./b"}, s.Packages)
	assert.Equal(t, 6, s.Parallelism)
	assert.Equal(t, "_copy.go", s.FileSuffix)
	assert.True(t, s.Policy.AllowSelfDeepClone)
	assert.Equal(t, time.Second, s.Watch.Debounce)
	assert.True(t, s.Comments)

	pc := s.PipelineConfig(nil)
	assert.Equal(t, []string{"./a", "./b"}, pc.Patterns)
	assert.Equal(t, 6, pc.Plan.Parallelism)
	assert.True(t, pc.Plan.Policy.AllowSelfDeepClone)
	assert.Equal(t, "_copy.go", pc.Gen.FileSuffix)
	assert.Equal(t, time.Second, pc.Debounce)

	s.Parallelism = 0
	assert.Equal(t, plan.DefaultConfig().Parallelism, s.PipelineConfig(nil).Plan.Parallelism)
}

func TestPrintDiff(t *testing.T) {
	var buf bytes.Buffer

	printDiff(&buf, "--- a/x.go\n+++ b/x.go\n@@ -1 +1 @@\n-old\n+new\n")

	assert.Equal(t, "--- a/x.go\n+++ b/x.go\n@@ -1 +1 @@\n-old\n+new\n", buf.String())
}
