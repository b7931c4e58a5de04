package recursive

// Ring is a node of a circular list.
//
// +clone
type Ring struct {
	Label string
	Next  *Ring
}

// Tree is a binary tree node.
//
// +clone
type Tree struct {
	Name  string
	Left  *Tree
	Right *Tree
}
