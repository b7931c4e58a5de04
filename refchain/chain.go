package refchain

import (
	"errors"
	"fmt"
)

// ErrUnbalanced is the panic value used when Pop is called with an object that
// is not the most recently pushed entry.
var ErrUnbalanced = errors.New("refchain: unbalanced pop")

// Chain is an identity stack of the objects on the current clone path.
// The zero value is an empty chain ready for use.
type Chain struct {
	entries []any
}

// New returns an empty Chain.
func New() *Chain {
	return &Chain{}
}

// Contains reports whether obj is on the chain. A nil chain contains nothing.
func (c *Chain) Contains(obj any) bool {
	if c == nil {
		return false
	}

	for i := len(c.entries) - 1; i >= 0; i-- {
		if c.entries[i] == obj {
			return true
		}
	}

	return false
}

// Push appends obj to the chain. obj should be a pointer; entries are
// compared with ==.
func (c *Chain) Push(obj any) {
	c.entries = append(c.entries, obj)
}

// Pop removes obj from the top of the chain. Pops are strictly nested:
// obj must be the most recently pushed entry, otherwise Pop panics with an
// error wrapping ErrUnbalanced.
func (c *Chain) Pop(obj any) {
	n := len(c.entries)
	if n == 0 {
		panic(fmt.Errorf("%w: chain is empty", ErrUnbalanced))
	}

	if c.entries[n-1] != obj {
		panic(fmt.Errorf("%w: %T is not the top entry", ErrUnbalanced, obj))
	}

	c.entries[n-1] = nil
	c.entries = c.entries[:n-1]
}

// Len returns the number of entries on the chain. A nil chain is empty.
func (c *Chain) Len() int {
	if c == nil {
		return 0
	}

	return len(c.entries)
}
