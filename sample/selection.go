package sample

// SimpleClone copies every field except B.
//
// +clone
type SimpleClone struct {
	A string
	B string `clone:"-"`
	C int
}

// SimpleCloneExplicit copies only the fields that opt in.
//
// +clone:explicit
type SimpleCloneExplicit struct {
	A string
	B string `clone:"include"`
	C int
}
