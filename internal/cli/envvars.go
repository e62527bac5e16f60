package cli

import (
	envparse "github.com/caarlos0/env/v11"
)

// baseEnv defines root CLI defaults sourced from ADVENTCTL_* env vars.
// Seeded values become flag defaults, so explicit flags still win.
type baseEnv struct {
	// Manifest is the answers.yaml path from ADVENTCTL_MANIFEST.
	Manifest string `env:"ADVENTCTL_MANIFEST"`
	// InputRoot is the puzzle input directory from ADVENTCTL_INPUT_ROOT.
	InputRoot string `env:"ADVENTCTL_INPUT_ROOT"`
	// LogLevel is the logging level from ADVENTCTL_LOG_LEVEL.
	LogLevel string `env:"ADVENTCTL_LOG_LEVEL"`
	// ProfileDir is the CPU profile directory from ADVENTCTL_CPU_PROFILE.
	ProfileDir string `env:"ADVENTCTL_CPU_PROFILE"`
}

// varsEnv describes inline vars and var files passed via env.
type varsEnv struct {
	// Vars is a k=v,k2=v2 list from ADVENTCTL_VARS.
	Vars string `env:"ADVENTCTL_VARS"`
	// VarFile is a YAML/ENV path from ADVENTCTL_VAR_FILE.
	VarFile string `env:"ADVENTCTL_VAR_FILE"`
}

// verifyEnv captures ADVENTCTL_* inputs for verification runs.
type verifyEnv struct {
	// Only restricts verification to listed entries from ADVENTCTL_ONLY.
	Only string `env:"ADVENTCTL_ONLY"`
	// Skip excludes listed entries from ADVENTCTL_SKIP.
	Skip string `env:"ADVENTCTL_SKIP"`
}

// parseEnv fills target from ADVENTCTL_* env vars via caarlos0/env.
func parseEnv(target interface{}) error {
	return envparse.Parse(target)
}

// applyEnvDefaults seeds root options from the environment.
func applyEnvDefaults(opts *Options) error {
	var defaults baseEnv
	if err := parseEnv(&defaults); err != nil {
		return err
	}
	if defaults.Manifest != "" {
		opts.ManifestPath = defaults.Manifest
	}
	if defaults.InputRoot != "" {
		opts.InputRoot = defaults.InputRoot
	}
	if defaults.LogLevel != "" {
		opts.LogLevel = defaults.LogLevel
	}
	if defaults.ProfileDir != "" {
		opts.ProfileDir = defaults.ProfileDir
	}
	return nil
}
