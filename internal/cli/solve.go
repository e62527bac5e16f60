package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/advent-kit/adventctl/internal/runner"
	"github.com/advent-kit/adventctl/internal/solver"
)

// newSolveCommand groups the per-puzzle solve subcommands.
func newSolveCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Run one puzzle solver against an input file",
	}
	cmd.AddCommand(
		newSolveStacksCommand(opts),
		newSolveFuelCommand(opts),
		newSolveExpenseCommand(opts),
		newSolvePasswordsCommand(opts),
		newSolveBoardingCommand(opts),
		newSolveCustomsCommand(opts),
		newSolveHaversacksCommand(opts),
	)
	return cmd
}

// runSolver resolves the input path and executes the named solver,
// writing the report to the command's stdout.
func runSolver(cmd *cobra.Command, opts *Options, name string, params solver.Params, input string) error {
	logger := LoggerFromContext(cmd.Context())

	def, err := solver.Lookup(name)
	if err != nil {
		return err
	}

	inputPath := resolveInputPath(opts.InputRoot, input)
	logger.Debug("running solver", "solver", def.Name, "input", inputPath, "params", len(params))

	return runner.Run(def, params, inputPath, cmd.OutOrStdout())
}

// resolveInputPath joins a relative input path with the configured
// input root. Absolute paths and an empty root pass through unchanged.
func resolveInputPath(root, input string) string {
	if root == "" || filepath.IsAbs(input) {
		return input
	}
	return filepath.Join(root, input)
}

// newSolveStacksCommand creates "solve stacks", the crate yard solver.
func newSolveStacksCommand(opts *Options) *cobra.Command {
	var batch bool

	cmd := &cobra.Command{
		Use:   "stacks <input-file>",
		Short: "Rearrange crate stacks and report the top crate of each stack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := solver.Params{}
			if batch {
				params["policy"] = "batch"
			}
			return runSolver(cmd, opts, "stacks", params, args[0])
		},
	}

	cmd.Flags().BoolVar(&batch, "batch", false, "Move each block of crates in one lift instead of one crate at a time")

	return cmd
}

// newSolveFuelCommand creates "solve fuel" for the launch fuel sums.
func newSolveFuelCommand(opts *Options) *cobra.Command {
	var tiered bool

	cmd := &cobra.Command{
		Use:   "fuel <input-file>",
		Short: "Sum the launch fuel required for the listed module masses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := solver.Params{}
			if tiered {
				params["tiered"] = "true"
			}
			return runSolver(cmd, opts, "fuel", params, args[0])
		},
	}

	cmd.Flags().BoolVar(&tiered, "tiered", false, "Also account for the fuel needed to lift the fuel itself")

	return cmd
}

// newSolveExpenseCommand creates "solve expense" for the expense report fix.
func newSolveExpenseCommand(opts *Options) *cobra.Command {
	var triple bool

	cmd := &cobra.Command{
		Use:   "expense <input-file>",
		Short: "Multiply the expense report entries that sum to 2020",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := solver.Params{}
			if triple {
				params["triple"] = "true"
			}
			return runSolver(cmd, opts, "expense", params, args[0])
		},
	}

	cmd.Flags().BoolVar(&triple, "triple", false, "Search for three entries instead of two")

	return cmd
}

// newSolvePasswordsCommand creates "solve passwords" for the password database.
func newSolvePasswordsCommand(opts *Options) *cobra.Command {
	var positional bool

	cmd := &cobra.Command{
		Use:   "passwords <input-file>",
		Short: "Count the passwords that satisfy their declared policy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := solver.Params{}
			if positional {
				params["positional"] = "true"
			}
			return runSolver(cmd, opts, "passwords", params, args[0])
		},
	}

	cmd.Flags().BoolVar(&positional, "positional", false, "Check character positions instead of occurrence counts")

	return cmd
}

// newSolveBoardingCommand creates "solve boarding" for the boarding pass scan.
func newSolveBoardingCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "boarding <input-file>",
		Short: "Decode boarding passes and locate the one free seat",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolver(cmd, opts, "boarding", nil, args[0])
		},
	}
}

// newSolveCustomsCommand creates "solve customs" for the declaration forms.
func newSolveCustomsCommand(opts *Options) *cobra.Command {
	var everyone bool

	cmd := &cobra.Command{
		Use:   "customs <input-file>",
		Short: "Sum the distinct customs declaration answers per group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := solver.Params{}
			if everyone {
				params["everyone"] = "true"
			}
			return runSolver(cmd, opts, "customs", params, args[0])
		},
	}

	cmd.Flags().BoolVar(&everyone, "everyone", false, "Count only answers the whole group gave instead of any member")

	return cmd
}

// newSolveHaversacksCommand creates "solve haversacks" for the luggage rules.
func newSolveHaversacksCommand(opts *Options) *cobra.Command {
	var bag string

	cmd := &cobra.Command{
		Use:   "haversacks <input-file>",
		Short: "Count the bags wrapping and nested inside the target bag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := solver.Params{}
			if cmd.Flags().Changed("bag") {
				params["bag"] = bag
			}
			return runSolver(cmd, opts, "haversacks", params, args[0])
		},
	}

	cmd.Flags().StringVar(&bag, "bag", "shiny gold", "Target bag as a tint and color pair")

	return cmd
}
