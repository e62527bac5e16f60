package solver

import (
	"fmt"
	"io"
	"strings"

	"github.com/advent-kit/adventctl/internal/yard"
)

// stacksSolver runs the crate yard pipeline: load the diagram, apply
// every move under the configured relocation policy, and report the
// top crate of each stack.
type stacksSolver struct {
	policy yard.Policy
}

func newStacksSolver(params Params) (Solver, error) {
	s := &stacksSolver{policy: yard.MoveSingle}
	for key, value := range params {
		switch key {
		case "policy":
			switch strings.ToLower(strings.TrimSpace(value)) {
			case "single":
				s.policy = yard.MoveSingle
			case "batch":
				s.policy = yard.MoveBatch
			default:
				return nil, fmt.Errorf("unknown move policy %q", value)
			}
		default:
			return nil, unknownParam("stacks", key)
		}
	}
	return s, nil
}

func (s *stacksSolver) Solve(r io.Reader, w io.Writer) error {
	y, moves, err := yard.Load(r)
	if err != nil {
		return err
	}
	for _, m := range moves {
		if err := y.Apply(m, s.policy); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "Part 1: the top crates are %s\n", y.Tops())
	return err
}
