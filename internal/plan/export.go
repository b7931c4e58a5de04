package plan

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"clone-generator/internal/policy"
)

// ExportVersion is the version written at the top of exported plans.
const ExportVersion = "1"

// ExportFile is the reviewable form of a planning result.
type ExportFile struct {
	Version string       `yaml:"version"`
	Types   []ExportType `yaml:"types"`
}

// ExportType is the plan of one type.
type ExportType struct {
	Type          string           `yaml:"type"`
	Package       string           `yaml:"package"`
	Accessibility string           `yaml:"accessibility"`
	Mode          string           `yaml:"mode"`
	Properties    []ExportProperty `yaml:"properties,omitempty"`
	Excluded      []ExportProperty `yaml:"excluded,omitempty"`
}

// ExportProperty is one property of an exported plan.
type ExportProperty struct {
	Name      string `yaml:"name"`
	Treatment string `yaml:"treatment,omitempty"`
	Type      string `yaml:"type,omitempty"`
	Reason    string `yaml:"reason,omitempty"`
}

// Export converts a planning result to its reviewable form.
func Export(result *Result) *ExportFile {
	ef := &ExportFile{
		Version: ExportVersion,
		Types:   []ExportType{},
	}

	for _, a := range result.Artifacts {
		et := ExportType{
			Type:          a.Type.String(),
			Package:       a.PkgName,
			Accessibility: string(a.Accessibility),
			Mode:          a.Mode.String(),
			Properties:    exportProperties(a.Properties, true),
			Excluded:      exportProperties(a.Excluded, false),
		}

		ef.Types = append(ef.Types, et)
	}

	return ef
}

func exportProperties(props []policy.PropertyPlan, withTreatment bool) []ExportProperty {
	out := make([]ExportProperty, 0, len(props))

	for _, p := range props {
		ep := ExportProperty{
			Name:   p.Name,
			Type:   p.TypeString,
			Reason: p.Reason,
		}
		if withTreatment {
			ep.Treatment = p.Treatment.String()
		}

		out = append(out, ep)
	}

	return out
}

// ExportYAML renders a planning result as YAML.
func ExportYAML(result *Result) ([]byte, error) {
	data, err := yaml.Marshal(Export(result))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plan: %w", err)
	}

	return data, nil
}

// dumpConfig renders stable output: no pointer addresses or capacities.
var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// ExportDump renders the full artifacts, including action lists, for debugging.
func ExportDump(result *Result) string {
	return dumpConfig.Sdump(result.Artifacts)
}
