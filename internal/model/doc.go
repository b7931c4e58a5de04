// Package model builds the read-only type model consumed by the clone policy
// resolver and the artifact planner.
//
// A model.Type exists for every struct (or mistakenly marked non-struct) that
// carries the cloneable marker after overrides are applied. Its properties are
// the directly declared struct fields in declaration order, each with its
// resolved markers and a reference to its declared type.
package model
