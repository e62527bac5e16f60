package yard

import (
	"fmt"
	"strings"
)

// Move is a single relocation instruction. From and To are 1-based
// stack numbers, exactly as written in the input.
type Move struct {
	Count int
	From  int
	To    int
}

// Policy selects how Apply relocates the crates of one move.
type Policy int

const (
	// MoveSingle relocates crates one at a time, reversing the order
	// of the moved block.
	MoveSingle Policy = iota
	// MoveBatch lifts the whole block in one go, preserving its order.
	MoveBatch
)

// String returns the flag-style name of the policy.
func (p Policy) String() string {
	if p == MoveBatch {
		return "batch"
	}
	return "single"
}

// Yard is an ordered collection of crate stacks addressed by 0-based
// index. Move instructions address the same stacks 1-based.
type Yard struct {
	stacks []Stack
}

// Size returns the number of stacks in the yard.
func (y *Yard) Size() int { return len(y.stacks) }

// InsertAt grows the yard until it holds index+1 stacks, then inserts
// the crate at the bottom of stack index. Growing happens even for
// empty placeholders, so trailing blank diagram columns still produce
// stacks. Negative indexes are ignored.
func (y *Yard) InsertAt(index int, c Crate) {
	if index < 0 {
		return
	}
	for len(y.stacks) <= index {
		y.stacks = append(y.stacks, Stack{})
	}
	y.stacks[index].Insert(c)
}

// stackAt returns the stack at a 0-based index, or ErrIndexOutOfRange
// when the yard has no such stack.
func (y *Yard) stackAt(index int) (*Stack, error) {
	if index < 0 || index >= len(y.stacks) {
		return nil, fmt.Errorf("stack %d of %d: %w", index+1, len(y.stacks), ErrIndexOutOfRange)
	}
	return &y.stacks[index], nil
}

// PushAt pushes a crate onto the stack at a 0-based index.
func (y *Yard) PushAt(index int, c Crate) error {
	st, err := y.stackAt(index)
	if err != nil {
		return err
	}
	st.Push(c)
	return nil
}

// PopAt pops the top crate of the stack at a 0-based index.
func (y *Yard) PopAt(index int) (Crate, error) {
	st, err := y.stackAt(index)
	if err != nil {
		return Empty, err
	}
	return st.Pop()
}

// PopNAt pops the top n crates of the stack at a 0-based index,
// returned in top-to-bottom order.
func (y *Yard) PopNAt(index, n int) ([]Crate, error) {
	st, err := y.stackAt(index)
	if err != nil {
		return nil, err
	}
	return st.PopN(n)
}

// PushNAt pushes a top-to-bottom ordered batch onto the stack at a
// 0-based index.
func (y *Yard) PushNAt(index int, batch []Crate) error {
	st, err := y.stackAt(index)
	if err != nil {
		return err
	}
	st.PushN(batch)
	return nil
}

// Apply executes one move under the given policy. MoveSingle pops and
// pushes one crate per iteration, so a count of zero is a no-op.
// MoveBatch lifts the whole block at once and rejects counts below
// one.
func (y *Yard) Apply(m Move, policy Policy) error {
	if err := y.applyMove(m, policy); err != nil {
		return fmt.Errorf("move %d from %d to %d: %w", m.Count, m.From, m.To, err)
	}
	return nil
}

func (y *Yard) applyMove(m Move, policy Policy) error {
	src, dst := m.From-1, m.To-1

	if policy == MoveBatch {
		batch, err := y.PopNAt(src, m.Count)
		if err != nil {
			return err
		}
		return y.PushNAt(dst, batch)
	}

	for i := 0; i < m.Count; i++ {
		c, err := y.PopAt(src)
		if err != nil {
			return err
		}
		if err := y.PushAt(dst, c); err != nil {
			return err
		}
	}
	return nil
}

// Tops concatenates the top label of every stack in index order. Empty
// stacks contribute the '_' sentinel.
func (y *Yard) Tops() string {
	var b strings.Builder
	b.Grow(len(y.stacks))
	for i := range y.stacks {
		b.WriteByte(y.stacks[i].TopLabel())
	}
	return b.String()
}
