// Package plan turns resolved clone policies into the artifacts consumed by
// code generation.
//
// Planning pipeline:
//  1. Check every marked type for eligibility (struct, not generic, no
//     user-declared Clone or CloneSafe) and freeze the cloneable registry
//  2. Resolve each eligible type's policy concurrently
//  3. Derive the fast (Clone) and safe (CloneSafe) action lists
//  4. Emit diagnostics for ineligible types without affecting the others
package plan
