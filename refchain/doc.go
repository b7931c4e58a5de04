// Package refchain provides the reference chain used by generated CloneSafe
// methods to detect cycles in an object graph.
//
// A Chain is the stack of objects currently being cloned along one call path
// of a single top-level CloneSafe invocation. Generated code follows a fixed
// protocol:
//
//	if chain.Contains(x) {
//		return x // re-entry: hand back the original instead of cloning again
//	}
//	if chain == nil {
//		chain = refchain.New()
//	}
//	chain.Push(x)
//	defer chain.Pop(x)
//
// Membership uses pointer identity, never value equality. Objects reachable
// through two sibling branches that do not loop back to an ancestor are
// cloned once per branch.
//
// A Chain is not safe for concurrent use. It belongs to the top-level
// CloneSafe call that created it and must not be retained after that call
// returns.
package refchain
