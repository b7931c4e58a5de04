package sample

// Parent owns a Child that points back to it.
//
// +clone
type Parent struct {
	Name  string
	Child *Child
}

// Child refers back to its Parent, forming a cycle.
//
// +clone
type Child struct {
	Name   string
	Parent *Parent
}

// Node is a singly linked list element. Next is self-typed and therefore
// shared between a node and its clone.
//
// +clone
type Node struct {
	Value int
	Next  *Node
}
