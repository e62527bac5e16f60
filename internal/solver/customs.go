package solver

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// customsSolver sums the customs declaration answers over all groups.
// Groups are separated by blank lines, one person per line. The
// default counts answers anyone in the group gave; the everyone
// variant counts only answers the whole group gave.
type customsSolver struct {
	everyone bool
}

func newCustomsSolver(params Params) (Solver, error) {
	s := &customsSolver{}
	for key, value := range params {
		switch key {
		case "everyone":
			v, err := parseBoolValue(key, value)
			if err != nil {
				return nil, err
			}
			s.everyone = v
		default:
			return nil, unknownParam("customs", key)
		}
	}
	return s, nil
}

func (s *customsSolver) Solve(r io.Reader, w io.Writer) error {
	total := 0
	counts := make(map[rune]int)
	persons := 0

	flush := func() {
		for _, n := range counts {
			if !s.everyone || n == persons {
				total++
			}
		}
		counts = make(map[rune]int)
		persons = 0
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		answers := strings.TrimSpace(scanner.Text())
		if answers == "" {
			flush()
			continue
		}
		persons++
		seen := make(map[rune]struct{})
		for _, c := range answers {
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			counts[c]++
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	flush()

	_, err := fmt.Fprintf(w, "Total groups answers is %d\n", total)
	return err
}
