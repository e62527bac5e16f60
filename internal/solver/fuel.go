package solver

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// fuelSolver sums the launch fuel for a list of module masses, one
// mass per line. The tiered variant also fuels the fuel itself.
type fuelSolver struct {
	tiered bool
}

func newFuelSolver(params Params) (Solver, error) {
	s := &fuelSolver{}
	for key, value := range params {
		switch key {
		case "tiered":
			v, err := parseBoolValue(key, value)
			if err != nil {
				return nil, err
			}
			s.tiered = v
		default:
			return nil, unknownParam("fuel", key)
		}
	}
	return s, nil
}

func (s *fuelSolver) Solve(r io.Reader, w io.Writer) error {
	total := 0
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		mass, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			return fmt.Errorf("parse module mass at line %d: %w", line, err)
		}
		if s.tiered {
			total += tieredFuelFor(mass)
		} else {
			total += fuelFor(mass)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	_, err := fmt.Fprintf(w, "Total fuel requirement is %d\n", total)
	return err
}

// fuelFor returns the fuel to launch one mass: a third of the mass,
// rounded down, minus two. Masses below six float for free.
func fuelFor(mass int) int {
	if mass < 6 {
		return 0
	}
	return mass/3 - 2
}

// tieredFuelFor adds the fuel needed to lift the fuel itself, tier by
// tier, until a tier needs none.
func tieredFuelFor(mass int) int {
	total := 0
	for f := fuelFor(mass); f > 0; f = fuelFor(f) {
		total += f
	}
	return total
}
