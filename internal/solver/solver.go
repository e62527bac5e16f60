// Package solver registers the puzzle solvers and constructs their
// variants from named parameters.
package solver

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Solver computes one puzzle answer: it reads the whole input and
// writes the report lines.
type Solver interface {
	Solve(r io.Reader, w io.Writer) error
}

// Params carries the variant settings a solver is constructed with,
// as written in a manifest "with" block or collected from CLI flags.
type Params map[string]string

// Definition tracks the metadata and constructor for one registered
// solver.
type Definition struct {
	// Name is the registry key and the solve subcommand name.
	Name string
	// Summary is the one-line description shown by adventctl list.
	Summary string
	// New builds a solver configured by the given parameters. Unknown
	// parameter keys and unparseable values are rejected.
	New func(params Params) (Solver, error)
}

var registry = map[string]Definition{
	"boarding": {
		Name:    "boarding",
		Summary: "Decode boarding passes and locate the one free seat.",
		New:     newBoardingSolver,
	},
	"customs": {
		Name:    "customs",
		Summary: "Sum the distinct customs declaration answers per group.",
		New:     newCustomsSolver,
	},
	"expense": {
		Name:    "expense",
		Summary: "Multiply the expense report entries that sum to 2020.",
		New:     newExpenseSolver,
	},
	"fuel": {
		Name:    "fuel",
		Summary: "Sum the launch fuel required for a list of module masses.",
		New:     newFuelSolver,
	},
	"haversacks": {
		Name:    "haversacks",
		Summary: "Count the bags wrapping and nested inside a target bag.",
		New:     newHaversacksSolver,
	},
	"passwords": {
		Name:    "passwords",
		Summary: "Count the passwords that satisfy their declared policy.",
		New:     newPasswordsSolver,
	},
	"stacks": {
		Name:    "stacks",
		Summary: "Rearrange stacks of crates and report the top of each stack.",
		New:     newStacksSolver,
	},
}

// ErrUnknownSolver is returned when a caller references a solver name
// that is not registered.
var ErrUnknownSolver = errors.New("unknown solver")

// Lookup returns the definition registered under name. Matching is
// case-insensitive and ignores surrounding whitespace.
func Lookup(name string) (Definition, error) {
	def, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %s", ErrUnknownSolver, name)
	}
	return def, nil
}

// Definitions returns the registered solvers sorted by name.
func Definitions() []Definition {
	defs := make([]Definition, 0, len(registry))
	for _, def := range registry {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

// parseBoolValue interprets one boolean parameter value.
func parseBoolValue(key, value string) (bool, error) {
	v, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, fmt.Errorf("parameter %s=%q: expected a boolean", key, value)
	}
	return v, nil
}

// unknownParam rejects a parameter key the solver does not understand.
func unknownParam(solver, key string) error {
	return fmt.Errorf("solver %s does not accept parameter %q", solver, key)
}
