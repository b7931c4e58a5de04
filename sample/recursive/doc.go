// Package recursive holds self-referencing types generated with the self-type
// guard relaxed:
//
//	clone-generator generate -p ./sample/recursive --allow-self-deep-clone
//
// Clone on a cyclic value of these types never returns; CloneSafe keeps the
// original reference when the cycle closes.
package recursive
