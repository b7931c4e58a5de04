package overrides

// File is the root structure of an overrides file.
type File struct {
	// Version is the schema version (currently "1").
	Version string `yaml:"version"`
	// Types lists per-type overrides.
	Types []TypeOverride `yaml:"types"`
}

// TypeOverride changes the markers of one type and its fields.
type TypeOverride struct {
	// Type identifies the type: "pkg.Name", "import/path.Name" or "Name".
	Type string `yaml:"type"`
	// Cloneable adds (true) or removes (false) the cloneable marker.
	Cloneable *bool `yaml:"cloneable,omitempty"`
	// Explicit sets the selection mode. Setting it implies cloneable unless
	// Cloneable is false.
	Explicit *bool `yaml:"explicit,omitempty"`
	// Fields adds field markers.
	Fields FieldOverrides `yaml:"fields,omitempty"`
}

// FieldOverrides lists field names per field marker.
type FieldOverrides struct {
	Include []string `yaml:"include,omitempty"`
	Exclude []string `yaml:"exclude,omitempty"`
	NoDeep  []string `yaml:"nodeep,omitempty"`
}

// IsEmpty returns true if no field marker is listed.
func (f FieldOverrides) IsEmpty() bool {
	return len(f.Include) == 0 && len(f.Exclude) == 0 && len(f.NoDeep) == 0
}

// Names returns every field name mentioned, in listing order, without duplicates.
func (f FieldOverrides) Names() []string {
	seen := make(map[string]bool)

	var names []string

	for _, list := range [][]string{f.Include, f.Exclude, f.NoDeep} {
		for _, name := range list {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}

	return names
}
