package cli

import (
	"log/slog"

	"github.com/pkg/profile"
)

// startProfiling begins a CPU profile when a profile directory is
// configured. The profile is flushed by stopProfiling once the
// command finishes.
func startProfiling(opts *Options, logger *slog.Logger) {
	if opts.ProfileDir == "" {
		return
	}

	opts.profileStop = profile.Start(profile.CPUProfile, profile.ProfilePath(opts.ProfileDir), profile.Quiet).Stop
	logger.Debug("cpu profiling started", "dir", opts.ProfileDir)
}

// stopProfiling writes out the pending CPU profile, if one is running.
func stopProfiling(opts *Options) {
	if opts.profileStop == nil {
		return
	}

	opts.profileStop()
	opts.profileStop = nil
}
