package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/advent-kit/adventctl/internal/config"
	"github.com/advent-kit/adventctl/internal/solver"
)

// newDoctorCommand creates the "doctor" subcommand that runs manifest preflight checks.
func newDoctorCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Run manifest preflight checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := LoggerFromContext(cmd.Context())

			m, baseDir, err := loadManifestFromCmd(opts, cmd)
			if err != nil {
				return err
			}

			if err := runDoctorChecks(logger, m, baseDir); err != nil {
				return err
			}

			logger.Info("doctor checks completed successfully", "puzzles", len(m.Puzzles))
			return nil
		},
	}

	addVarsFlags(cmd)

	return cmd
}

func runDoctorChecks(logger *slog.Logger, m *config.Manifest, baseDir string) error {
	var fatalErrs []error

	if len(m.Puzzles) == 0 {
		logger.Warn("manifest lists no puzzles")
	}

	for _, entry := range m.Puzzles {
		def, err := solver.Lookup(entry.SolverName())
		if err != nil {
			logger.Error("solver check failed", "puzzle", entry.Name, "error", err)
			fatalErrs = append(fatalErrs, err)
			continue
		}
		logger.Info("solver check ok", "puzzle", entry.Name, "solver", def.Name)

		if _, err := def.New(solver.Params(entry.With)); err != nil {
			logger.Error("solver parameter check failed", "puzzle", entry.Name, "error", err)
			fatalErrs = append(fatalErrs, err)
		} else {
			logger.Info("solver parameter check ok", "puzzle", entry.Name)
		}

		inputPath := m.InputPath(baseDir, entry.Input)
		if err := checkInputFile(inputPath); err != nil {
			logger.Error("input file check failed", "puzzle", entry.Name, "error", err)
			fatalErrs = append(fatalErrs, err)
		} else {
			logger.Info("input file check ok", "puzzle", entry.Name, "input", inputPath)
		}
	}

	if len(fatalErrs) > 0 {
		return fmt.Errorf("doctor found %d fatal issue(s); see log for details", len(fatalErrs))
	}

	return nil
}

func checkInputFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat input %q: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("input %q is a directory", path)
	}
	return nil
}
