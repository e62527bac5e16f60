package yard

import (
	"errors"
	"fmt"
)

// Sentinel errors raised by stack and yard operations. Every one of
// them is fatal to the run; callers wrap them with context and abort.
var (
	// ErrEmptyStack reports a pop from a stack holding too few crates.
	ErrEmptyStack = errors.New("stack is empty")
	// ErrInvalidCount reports a bulk pop with a count below one.
	ErrInvalidCount = errors.New("crate count must be positive")
	// ErrIndexOutOfRange reports a stack index beyond the yard.
	ErrIndexOutOfRange = errors.New("stack index out of range")
)

// CorruptedInputError reports a diagram field or move line that does
// not match the input format.
type CorruptedInputError struct {
	// Line is the 1-based input line number where parsing failed.
	Line int
	// Reason describes what was wrong with the line.
	Reason string
}

func (e *CorruptedInputError) Error() string {
	if e == nil {
		return "corrupted input"
	}
	return fmt.Sprintf("corrupted input at line %d: %s", e.Line, e.Reason)
}

// IsCorruptedInput reports whether err was caused by malformed puzzle
// input rather than an internal invariant violation.
func IsCorruptedInput(err error) bool {
	var target *CorruptedInputError
	return errors.As(err, &target)
}
