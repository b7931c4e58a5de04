// Package overrides loads the optional YAML file that marks types and fields
// cloneable without editing their source.
//
// Entries are merged on top of the markers found in source: an override can
// add markers, switch the selection mode, or unmark a type entirely.
//
// # Schema
//
//	version: "1"
//	types:
//	  - type: sample.Document     # short, full ("clone-generator/sample.Document") or name only
//	    cloneable: true           # false removes a +clone marker found in source
//	    explicit: false           # selection mode, implies cloneable
//	    fields:
//	      include: [Title]        # like `clone:"include"`
//	      exclude: [Label]        # like `clone:"-"`
//	      nodeep: [Author]        # like `clone:"include,nodeep"`
//
// Unknown types and fields are reported as errors with "did you mean"
// suggestions.
package overrides
