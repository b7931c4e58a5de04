// Package policy implements the clone policy resolver.
//
// For every property of a cloneable type it decides whether the property is
// excluded, shallow copied or deep cloned:
//
//   - Selection: in explicit mode a property is included iff it carries the
//     include marker; in implicit mode iff it does not carry the exclude
//     marker. Properties that cannot be assigned are never included.
//   - Treatment, first match wins: self-typed properties, properties whose
//     type is not a registered cloneable type and properties marked
//     prevent-deep-copy are shallow copied. Everything else is deep cloned.
//
// The resulting list is a stable partition: shallow copies first, deep clones
// last, each group in declaration order. Resolve is a pure function; missing
// markers degrade to implicit mode and shallow copies, never to an error.
package policy
