package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/advent-kit/adventctl/internal/solver"
)

var listHeader = color.New(color.FgWhite, color.Underline).SprintfFunc()

// newListCommand creates the command that prints the registered solvers.
func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available puzzle solvers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, listHeader("%-12s %s", "SOLVER", "SUMMARY"))
			for _, def := range solver.Definitions() {
				fmt.Fprintf(out, "%-12s %s\n", def.Name, def.Summary)
			}

			return nil
		},
	}
}
