package runner

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/advent-kit/adventctl/internal/config"
	"github.com/advent-kit/adventctl/internal/logging"
	"github.com/advent-kit/adventctl/internal/solver"
)

var (
	passMark = color.New(color.FgGreen).SprintFunc()
	failMark = color.New(color.FgRed).SprintFunc()
)

// VerifyOptions narrows a verification run to a subset of the
// manifest's entries.
type VerifyOptions struct {
	// Only restricts verification to the named entries when non-empty.
	Only map[string]struct{}
	// Skip excludes the named entries.
	Skip map[string]struct{}
}

// Verify runs every selected puzzle entry in the manifest and compares
// the captured report with the expected lines. Mismatches are printed
// as unified diffs. The returned error counts the failed entries.
func Verify(m *config.Manifest, baseDir string, opts VerifyOptions, logger *slog.Logger, out io.Writer) error {
	if len(m.Puzzles) == 0 {
		return fmt.Errorf("manifest lists no puzzles")
	}

	ran := 0
	failed := 0
	for _, entry := range m.Puzzles {
		if skipEntry(entry.Name, opts) {
			logger.Debug("skipping puzzle", "puzzle", entry.Name)
			continue
		}
		ran++

		diff, err := verifyEntry(m, baseDir, entry, logger)
		switch {
		case err != nil:
			failed++
			fmt.Fprintf(out, "%s %s: %v\n", failMark("FAIL"), entry.Name, err)
		case diff != "":
			failed++
			fmt.Fprintf(out, "%s %s: report mismatch\n%s", failMark("FAIL"), entry.Name, diff)
		default:
			fmt.Fprintf(out, "%s %s\n", passMark("ok"), entry.Name)
		}
	}

	if ran == 0 {
		return fmt.Errorf("no puzzles left to verify after filtering")
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d puzzles failed", failed, ran)
	}
	return nil
}

// skipEntry applies the only/skip filters to one entry name.
func skipEntry(name string, opts VerifyOptions) bool {
	key := strings.ToLower(strings.TrimSpace(name))
	if len(opts.Only) > 0 {
		if _, ok := opts.Only[key]; !ok {
			return true
		}
	}
	_, ok := opts.Skip[key]
	return ok
}

// verifyEntry runs one manifest entry and returns a unified diff when
// its report does not match the expectation.
func verifyEntry(m *config.Manifest, baseDir string, entry config.PuzzleEntry, logger *slog.Logger) (string, error) {
	def, err := solver.Lookup(entry.SolverName())
	if err != nil {
		return "", err
	}

	inputPath := m.InputPath(baseDir, entry.Input)
	logger.Info("verifying puzzle", "puzzle", entry.Name, "solver", def.Name, "input", inputPath)

	var report bytes.Buffer
	sink := io.MultiWriter(&report, logging.NewWriter(logger))
	if err := Run(def, solver.Params(entry.With), inputPath, sink); err != nil {
		return "", err
	}

	if len(entry.Expect) == 0 {
		return "", nil
	}

	want := strings.Join(entry.Expect, "\n") + "\n"
	got := report.String()
	if got == want {
		return "", nil
	}

	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return "", fmt.Errorf("render report diff: %w", err)
	}
	return text, nil
}
