// Package runner executes registered puzzle solvers against their
// input files and verifies their reports against the answers manifest.
package runner

import (
	"fmt"
	"io"
	"os"

	"github.com/advent-kit/adventctl/internal/solver"
)

// Run constructs the solver described by def with the given
// parameters, feeds it the input file, and streams the report to out.
func Run(def solver.Definition, params solver.Params, inputPath string, out io.Writer) error {
	sol, err := def.New(params)
	if err != nil {
		return fmt.Errorf("configure solver %s: %w", def.Name, err)
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open input %q: %w", inputPath, err)
	}
	defer func() { _ = f.Close() }()

	if err := sol.Solve(f, out); err != nil {
		return fmt.Errorf("solve %s with input %q: %w", def.Name, inputPath, err)
	}
	return nil
}
