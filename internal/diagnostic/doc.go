// Package diagnostic provides structured warnings and errors for the clone
// generator.
//
// Key capabilities:
//   - Per-type failures that do not block other types
//   - Unknown marker option warnings
//   - Override entries that reference missing types or fields, with suggestions
package diagnostic
