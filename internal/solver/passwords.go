package solver

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// passwordsSolver counts database rows whose password satisfies its
// declared policy. The default policy bounds how often the constraint
// character may occur; the positional variant requires it at exactly
// one of the two listed positions.
type passwordsSolver struct {
	positional bool
}

// passwordEntry is one parsed database row, e.g. "1-3 a: abcde".
type passwordEntry struct {
	min        int
	max        int
	constraint byte
	password   string
}

func newPasswordsSolver(params Params) (Solver, error) {
	s := &passwordsSolver{}
	for key, value := range params {
		switch key {
		case "positional":
			v, err := parseBoolValue(key, value)
			if err != nil {
				return nil, err
			}
			s.positional = v
		default:
			return nil, unknownParam("passwords", key)
		}
	}
	return s, nil
}

func (s *passwordsSolver) Solve(r io.Reader, w io.Writer) error {
	valid := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		entry, err := parsePasswordEntry(scanner.Text())
		if err != nil {
			// rows that do not parse count as invalid
			continue
		}
		if s.positional {
			if entry.validPositional() {
				valid++
			}
		} else if entry.valid() {
			valid++
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	_, err := fmt.Fprintf(w, "Total of valid entries is %d\n", valid)
	return err
}

func parsePasswordEntry(line string) (passwordEntry, error) {
	policy, password, ok := strings.Cut(line, ": ")
	if !ok {
		return passwordEntry{}, fmt.Errorf("missing policy separator in %q", line)
	}
	bounds, constraint, ok := strings.Cut(policy, " ")
	if !ok {
		return passwordEntry{}, fmt.Errorf("missing constraint character in %q", line)
	}
	if len(constraint) != 1 {
		return passwordEntry{}, fmt.Errorf("constraint %q must be a single character", constraint)
	}
	lo, hi, ok := strings.Cut(bounds, "-")
	if !ok {
		return passwordEntry{}, fmt.Errorf("bounds %q must look like 1-3", bounds)
	}
	minVal, err := strconv.Atoi(lo)
	if err != nil {
		return passwordEntry{}, fmt.Errorf("parse lower bound %q: %w", lo, err)
	}
	maxVal, err := strconv.Atoi(hi)
	if err != nil {
		return passwordEntry{}, fmt.Errorf("parse upper bound %q: %w", hi, err)
	}

	return passwordEntry{min: minVal, max: maxVal, constraint: constraint[0], password: password}, nil
}

// valid applies the occurrence policy: the constraint character must
// appear between min and max times inclusive.
func (e passwordEntry) valid() bool {
	count := strings.Count(e.password, string(e.constraint))
	return count >= e.min && count <= e.max
}

// validPositional applies the positional policy: exactly one of the
// two 1-based positions holds the constraint character.
func (e passwordEntry) validPositional() bool {
	first := e.charAt(e.min) == e.constraint
	second := e.charAt(e.max) == e.constraint
	return first != second
}

// charAt returns the byte at a 1-based position, or zero when the
// position falls outside the password.
func (e passwordEntry) charAt(pos int) byte {
	if pos < 1 || pos > len(e.password) {
		return 0
	}
	return e.password[pos-1]
}
