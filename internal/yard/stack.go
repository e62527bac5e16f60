// Package yard implements the crate yard: ordered stacks of labeled
// crates, loaded from a printed diagram and rearranged by move
// instructions under one of two relocation policies.
package yard

import (
	"fmt"
	"slices"
)

// Crate is a single labeled crate. The zero value is the empty
// placeholder a diagram row carries for a blank column; placeholders
// are never stored in a stack.
type Crate byte

// Empty is the placeholder crate for a blank diagram column.
const Empty Crate = 0

// IsEmpty reports whether the crate is the empty placeholder.
func (c Crate) IsEmpty() bool { return c == Empty }

// Label returns the printable label of the crate. The empty
// placeholder prints as '*'.
func (c Crate) Label() byte {
	if c.IsEmpty() {
		return '*'
	}
	return byte(c)
}

// Stack is one pile of crates. The zero value is an empty stack ready
// to use. Crates are stored bottom first, so the top of the pile sits
// at the end of the slice.
type Stack struct {
	crates []Crate
}

// Len returns the number of crates on the stack.
func (s *Stack) Len() int { return len(s.crates) }

// Insert slides a crate under the current bottom of the stack. The
// loader feeds diagram rows top to bottom, so the first crate inserted
// ends up on top. Empty placeholders are discarded.
func (s *Stack) Insert(c Crate) {
	if c.IsEmpty() {
		return
	}
	s.crates = slices.Insert(s.crates, 0, c)
}

// Push places a crate on top of the stack. Empty placeholders are
// discarded.
func (s *Stack) Push(c Crate) {
	if c.IsEmpty() {
		return
	}
	s.crates = append(s.crates, c)
}

// Pop removes and returns the top crate. Popping an empty stack fails
// with ErrEmptyStack.
func (s *Stack) Pop() (Crate, error) {
	if len(s.crates) == 0 {
		return Empty, ErrEmptyStack
	}
	c := s.crates[len(s.crates)-1]
	s.crates = s.crates[:len(s.crates)-1]
	return c, nil
}

// PopN removes the top n crates and returns them in top-to-bottom
// order. A count below one fails with ErrInvalidCount; a stack holding
// fewer than n crates fails with ErrEmptyStack and stays untouched.
func (s *Stack) PopN(n int) ([]Crate, error) {
	if n < 1 {
		return nil, fmt.Errorf("pop %d crates: %w", n, ErrInvalidCount)
	}
	if len(s.crates) < n {
		return nil, fmt.Errorf("pop %d crates from a stack of %d: %w", n, len(s.crates), ErrEmptyStack)
	}
	batch := make([]Crate, n)
	for i := range batch {
		batch[i] = s.crates[len(s.crates)-1-i]
	}
	s.crates = s.crates[:len(s.crates)-n]
	return batch, nil
}

// PushN pushes a batch given in top-to-bottom order. The batch is
// pushed back to front, so it keeps its relative order on top of the
// stack.
func (s *Stack) PushN(batch []Crate) {
	for i := len(batch) - 1; i >= 0; i-- {
		s.Push(batch[i])
	}
}

// TopLabel returns the label of the top crate without removing it. An
// empty stack yields the '_' sentinel.
func (s *Stack) TopLabel() byte {
	if len(s.crates) == 0 {
		return '_'
	}
	return s.crates[len(s.crates)-1].Label()
}
