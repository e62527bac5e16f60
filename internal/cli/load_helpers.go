package cli

import (
	"github.com/spf13/cobra"

	"github.com/advent-kit/adventctl/internal/config"
	"github.com/advent-kit/adventctl/internal/env"
)

// parseInlineVarsAndFiles collects template variables from the --vars
// and --var-file flags, falling back to ADVENTCTL_VARS and
// ADVENTCTL_VAR_FILE when the flags are untouched.
func parseInlineVarsAndFiles(cmd *cobra.Command) (env.Vars, []string, error) {
	var fromEnv varsEnv
	if err := parseEnv(&fromEnv); err != nil {
		return nil, nil, err
	}

	rawVars := cmd.Flag("vars").Value.String()
	if !cmd.Flags().Changed("vars") && fromEnv.Vars != "" {
		rawVars = fromEnv.Vars
	}
	inlineVars, err := env.ParseInlineVars(rawVars)
	if err != nil {
		return nil, nil, err
	}

	varFile := cmd.Flag("var-file").Value.String()
	if !cmd.Flags().Changed("var-file") && fromEnv.VarFile != "" {
		varFile = fromEnv.VarFile
	}
	var varFiles []string
	if varFile != "" {
		varFiles = append(varFiles, varFile)
	}
	return inlineVars, varFiles, nil
}

// loadManifestFromCmd loads the answers manifest with the command's
// var flags applied and returns it together with the directory that
// relative input paths resolve from. The --input-root flag overrides
// the manifest's own inputRoot.
func loadManifestFromCmd(opts *Options, cmd *cobra.Command) (*config.Manifest, string, error) {
	inlineVars, varFiles, err := parseInlineVarsAndFiles(cmd)
	if err != nil {
		return nil, "", err
	}

	m, ctxData, err := config.LoadManifest(opts.ManifestPath, config.LoadOptions{
		UserVars: inlineVars,
		VarFiles: varFiles,
	})
	if err != nil {
		return nil, "", err
	}

	baseDir := ctxData.ManifestDir
	if opts.InputRoot != "" {
		m.InputRoot = opts.InputRoot
		baseDir = "."
	}
	return m, baseDir, nil
}

func addVarsFlags(cmd *cobra.Command) {
	cmd.Flags().String("vars", "", "Additional variables in k=v,k2=v2 format")
	cmd.Flags().String("var-file", "", "Path to YAML/ENV file with additional variables")
}
