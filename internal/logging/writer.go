package logging

import (
	"log/slog"
	"strings"
)

// Writer is an io.Writer implementation that forwards solver report
// lines to slog. Verification runs tee their captured output through
// it so report lines show up in the structured log as well.
type Writer struct {
	logger *slog.Logger
}

// NewWriter constructs a Writer bound to the provided logger.
func NewWriter(logger *slog.Logger) *Writer {
	return &Writer{logger: logger}
}

// Write logs each non-empty line of p at info level.
func (w *Writer) Write(p []byte) (int, error) {
	if w.logger != nil {
		for _, line := range strings.Split(string(p), "\n") {
			if line != "" {
				w.logger.Info("solver output", "line", line)
			}
		}
	}
	return len(p), nil
}
