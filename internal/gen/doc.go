// Package gen renders clone artifacts into Go source files.
//
// Generation approach uses text/template + go/format for readable,
// allocation-light Go code. Every cloneable type gets one file,
// <snake_type>_clone.go, next to its declaration holding two methods:
//
//   - Clone, the unchecked fast clone
//   - CloneSafe, the cycle-tolerant clone threading a refchain.Chain
//
// Codegen patterns:
//   - Direct assignment for shallow copies
//   - Nil-checked recursive call for pointer properties
//   - Dereferenced recursive call for value properties
package gen
