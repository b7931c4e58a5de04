package recursive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clone-generator/refchain"
)

func TestCloneSafe_SelfLoopKeepsOriginal(t *testing.T) {
	loop := &Ring{Label: "only"}
	loop.Next = loop

	got := loop.CloneSafe(nil)
	require.NotNil(t, got)

	assert.NotSame(t, loop, got)
	assert.Equal(t, "only", got.Label)
	assert.Same(t, loop, got.Next)
}

func TestCloneSafe_RingClosesOnOriginal(t *testing.T) {
	a := &Ring{Label: "a"}
	b := &Ring{Label: "b"}
	c := &Ring{Label: "c"}
	a.Next, b.Next, c.Next = b, c, a

	chain := refchain.New()
	got := a.CloneSafe(chain)

	assert.NotSame(t, a, got)
	assert.NotSame(t, b, got.Next)
	assert.NotSame(t, c, got.Next.Next)
	assert.Equal(t, []string{"a", "b", "c"}, []string{got.Label, got.Next.Label, got.Next.Next.Label})

	// The last copy points back at the original head, not at its copy.
	assert.Same(t, a, got.Next.Next.Next)
	assert.Zero(t, chain.Len())
}

func TestClone_AcyclicListIsDeep(t *testing.T) {
	tail := &Ring{Label: "tail"}
	head := &Ring{Label: "head", Next: tail}

	for name, got := range map[string]*Ring{"fast": head.Clone(), "safe": head.CloneSafe(nil)} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, head, got)
			assert.NotSame(t, head, got)
			assert.NotSame(t, tail, got.Next)
			assert.Nil(t, got.Next.Next)
		})
	}
}

func TestClone_TreeSharedSubtreeIsCopiedTwice(t *testing.T) {
	leaf := &Tree{Name: "leaf"}
	root := &Tree{Name: "root", Left: leaf, Right: leaf}

	for name, got := range map[string]*Tree{"fast": root.Clone(), "safe": root.CloneSafe(nil)} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, root, got)
			assert.NotSame(t, leaf, got.Left)
			assert.NotSame(t, leaf, got.Right)
			assert.NotSame(t, got.Left, got.Right)
		})
	}
}

func TestCloneSafe_TreeBackEdge(t *testing.T) {
	root := &Tree{Name: "root"}
	child := &Tree{Name: "child", Left: root}
	root.Right = child

	got := root.CloneSafe(nil)

	assert.NotSame(t, child, got.Right)
	assert.Same(t, root, got.Right.Left)
	assert.Nil(t, got.Left)
}
