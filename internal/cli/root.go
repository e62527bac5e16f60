// Package cli defines the command-line interface for adventctl.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/advent-kit/adventctl/internal/logging"
)

const (
	// defaultManifestPath is the default path to the answers manifest.
	defaultManifestPath = "answers.yaml"
)

// Options stores global CLI options shared between commands.
type Options struct {
	ManifestPath string
	InputRoot    string
	LogLevel     string
	ProfileDir   string

	profileStop func()
}

// Execute builds the root command, runs it with the provided args and logger, and returns any error.
func Execute(args []string, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewLogger(os.Stderr, logging.LevelInfo)
	}

	rootOpts := &Options{
		ManifestPath: defaultManifestPath,
		LogLevel:     "info",
	}
	if err := applyEnvDefaults(rootOpts); err != nil {
		return err
	}

	rootCmd := newRootCommand(rootOpts, logger)
	rootCmd.SetArgs(args)

	return rootCmd.Execute()
}

// newRootCommand constructs the root cobra.Command with global flags and subcommands.
func newRootCommand(opts *Options, logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adventctl",
		Short: "adventctl runs daily puzzle solvers against their input files",
		Long:  "adventctl is a runner for a family of small daily-puzzle solvers. Each solver reads a plain-text input file and prints its report lines; the answers.yaml manifest records expected reports so whole puzzle sets can be verified in one go.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := logging.ParseLevel(opts.LogLevel)
			logger = logging.NewLogger(os.Stderr, level)
			cmd.SetContext(context.WithValue(cmd.Context(), loggerKey{}, logger))
			logger.Debug("logger initialized", "level", level)
			startProfiling(opts, logger)
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			stopProfiling(opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ManifestPath, "manifest", "m", opts.ManifestPath, "Path to the answers.yaml manifest")
	cmd.PersistentFlags().StringVar(&opts.InputRoot, "input-root", opts.InputRoot, "Directory relative puzzle input paths resolve against")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.ProfileDir, "cpu-profile", opts.ProfileDir, "Directory to write a CPU profile into (profiling off when empty)")

	cmd.AddCommand(
		newSolveCommand(opts),
		newListCommand(),
		newVerifyCommand(opts),
		newDoctorCommand(opts),
	)

	return cmd
}

// loggerKey is a private context key used to store a logger in command contexts.
type loggerKey struct{}

// LoggerFromContext extracts a logger from the context or falls back to a default logger.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return logging.NewLogger(os.Stderr, logging.LevelInfo)
	}
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return logging.NewLogger(os.Stderr, logging.LevelInfo)
}
