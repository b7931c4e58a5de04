// Package marker defines the closed set of clone markers and parses them from
// type doc comments and struct field tags.
//
// Type-level markers are doc comment lines:
//
//	// +clone
//	// +clone:explicit
//	// +clone:explicit=false
//
// Field-level markers live in the "clone" struct tag:
//
//	Author *Person `clone:"include,nodeep"`
//	Draft  string  `clone:"-"`
//
// Markers are resolved once into a Set keyed by Kind, so the policy resolver
// never looks markers up by name.
package marker
