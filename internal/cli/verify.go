package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/advent-kit/adventctl/internal/runner"
)

// newVerifyCommand creates the command that replays every puzzle in
// the manifest and compares the reports against the recorded answers.
func newVerifyCommand(opts *Options) *cobra.Command {
	var only string
	var skip string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Run the manifest puzzles and check their reports against the recorded answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := LoggerFromContext(cmd.Context())

			var fromEnv verifyEnv
			if err := parseEnv(&fromEnv); err != nil {
				return err
			}
			if !cmd.Flags().Changed("only") && fromEnv.Only != "" {
				only = fromEnv.Only
			}
			if !cmd.Flags().Changed("skip") && fromEnv.Skip != "" {
				skip = fromEnv.Skip
			}

			m, baseDir, err := loadManifestFromCmd(opts, cmd)
			if err != nil {
				return err
			}

			verifyOpts := runner.VerifyOptions{
				Only: parseNameSet(only),
				Skip: parseNameSet(skip),
			}
			return runner.Verify(m, baseDir, verifyOpts, logger, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&only, "only", "", "Comma-separated puzzle names to verify, skipping the rest")
	cmd.Flags().StringVar(&skip, "skip", "", "Comma-separated puzzle names to leave out")
	addVarsFlags(cmd)

	return cmd
}

// parseNameSet splits a comma-separated list into a normalized set.
func parseNameSet(raw string) map[string]struct{} {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	out := make(map[string]struct{})
	for _, part := range strings.Split(raw, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		out[name] = struct{}{}
	}
	return out
}
