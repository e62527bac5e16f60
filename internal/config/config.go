// Package config contains the loader and strongly typed model for answers.yaml.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/advent-kit/adventctl/internal/env"
)

// Manifest describes the puzzle runs to verify and where their inputs
// live. It mirrors the structure of answers.yaml after template
// rendering.
type Manifest struct {
	// InputRoot is the directory relative puzzle input paths resolve
	// against. When itself relative, it resolves against the manifest
	// directory.
	InputRoot string `yaml:"inputRoot,omitempty"`
	// EnvFiles lists .env files to load before rendering.
	EnvFiles []string `yaml:"envFiles,omitempty"`
	// Puzzles lists the solver runs to verify, in order.
	Puzzles []PuzzleEntry `yaml:"puzzles"`
}

// PuzzleEntry describes one solver run and its expected report.
type PuzzleEntry struct {
	// Name is the unique entry label, used in logs and by the verify
	// --only and --skip filters.
	Name string `yaml:"name"`
	// Solver is the registered solver to run. Defaults to Name, so
	// entries only need it when one solver appears more than once.
	Solver string `yaml:"solver,omitempty"`
	// Input is the puzzle input path, joined with inputRoot when
	// relative.
	Input string `yaml:"input"`
	// With provides named parameters selecting the solver variant.
	With map[string]string `yaml:"with,omitempty"`
	// Expect lists the exact report lines the solver must print. Omit
	// it to only check that the solver runs cleanly.
	Expect []string `yaml:"expect,omitempty"`
}

// SolverName returns the registered solver this entry runs.
func (e PuzzleEntry) SolverName() string {
	if s := strings.TrimSpace(e.Solver); s != "" {
		return s
	}
	return strings.TrimSpace(e.Name)
}

// LoadOptions describes parameters that influence template rendering
// of answers.yaml.
type LoadOptions struct {
	// UserVars are inline variables for template rendering.
	UserVars env.Vars
	// VarFiles lists additional var-files to load.
	VarFiles []string
}

// TemplateContext represents the data exposed to Go-templates when
// rendering answers.yaml.
type TemplateContext struct {
	// ManifestDir is the directory containing the manifest on disk.
	ManifestDir string
	// Now is the timestamp captured for template rendering.
	Now time.Time
	// UserVars contains inline user variables.
	UserVars env.Vars
	// EnvMap merges OS env, envFiles, var-files, and user variables.
	EnvMap env.Vars
}

// rawHeader is a minimal struct used to extract top-level fields
// before templating.
type rawHeader struct {
	EnvFiles []string `yaml:"envFiles"`
}

// LoadManifest reads answers.yaml, loads envFiles and user vars,
// renders the template, and parses the result into a Manifest together
// with the template context that was used.
func LoadManifest(path string, opts LoadOptions) (*Manifest, TemplateContext, error) {
	var zeroCtx TemplateContext

	if path == "" {
		return nil, zeroCtx, fmt.Errorf("manifest path is empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, zeroCtx, fmt.Errorf("resolve manifest path: %w", err)
	}

	rawBytes, err := os.ReadFile(absPath)
	if err != nil {
		return nil, zeroCtx, fmt.Errorf("read manifest %q: %w", absPath, err)
	}

	var header rawHeader
	if err := yaml.Unmarshal(rawBytes, &header); err != nil {
		return nil, zeroCtx, fmt.Errorf("parse top-level manifest fields: %w", err)
	}

	baseDir := filepath.Dir(absPath)
	osVars := env.FromOS()

	envFileVars, err := env.LoadEnvFiles(baseDir, header.EnvFiles)
	if err != nil {
		return nil, zeroCtx, err
	}

	varFileVars := make(env.Vars)
	for _, vf := range opts.VarFiles {
		if strings.TrimSpace(vf) == "" {
			continue
		}
		vars, err := env.LoadVarFile(vf)
		if err != nil {
			return nil, zeroCtx, fmt.Errorf("load var-file %q: %w", vf, err)
		}
		varFileVars = env.Merge(varFileVars, vars)
	}

	ctx := TemplateContext{
		ManifestDir: baseDir,
		Now:         time.Now().UTC(),
		UserVars:    opts.UserVars,
		EnvMap:      env.Merge(osVars, envFileVars, varFileVars, opts.UserVars),
	}

	rendered, err := RenderTemplate("answers.yaml", rawBytes, ctx)
	if err != nil {
		return nil, zeroCtx, err
	}

	var m Manifest
	if err := yaml.Unmarshal(rendered, &m); err != nil {
		return nil, zeroCtx, fmt.Errorf("parse rendered answers.yaml: %w", err)
	}

	if err := m.Validate(); err != nil {
		return nil, zeroCtx, err
	}

	return &m, ctx, nil
}

// Validate checks the structural invariants of the manifest.
func (m *Manifest) Validate() error {
	seen := make(map[string]struct{}, len(m.Puzzles))
	for i, entry := range m.Puzzles {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return fmt.Errorf("puzzle %d has no name", i+1)
		}
		if strings.TrimSpace(entry.Input) == "" {
			return fmt.Errorf("puzzle %q has no input", entry.Name)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("puzzle %q is listed twice", entry.Name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// InputPath resolves a puzzle input path. Absolute paths pass through;
// relative paths are joined with the input root, which in turn resolves
// against baseDir.
func (m *Manifest) InputPath(baseDir, input string) string {
	if filepath.IsAbs(input) {
		return input
	}
	root := strings.TrimSpace(m.InputRoot)
	if root == "" {
		return filepath.Join(baseDir, input)
	}
	if !filepath.IsAbs(root) {
		root = filepath.Join(baseDir, root)
	}
	return filepath.Join(root, input)
}

// RenderTemplate renders YAML or text content using the manifest
// template context and helpers.
func RenderTemplate(name string, raw []byte, ctx TemplateContext) ([]byte, error) {
	funcs := buildFuncMap(ctx)

	tmpl, err := template.New(name).Funcs(funcs).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parse template %q: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return nil, fmt.Errorf("execute template %q: %w", name, err)
	}
	return buf.Bytes(), nil
}

// buildFuncMap constructs the set of template functions available in
// answers.yaml.
func buildFuncMap(ctx TemplateContext) template.FuncMap {
	return template.FuncMap{
		"default":    funcDef,
		"toLower":    strings.ToLower,
		"envOr":      funcEnvOr(ctx.EnvMap),
		"now":        func() time.Time { return ctx.Now },
		"join":       funcJoin,
		"trimPrefix": funcTrimPrefix,
	}
}

// funcDef returns def when value is empty or whitespace, otherwise value.
func funcDef(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}

// funcEnvOr returns a function that looks up a key in envMap and falls back to def.
func funcEnvOr(envMap env.Vars) func(key, def string) string {
	return func(key, def string) string {
		if v, ok := envMap[key]; ok && v != "" {
			return v
		}
		return def
	}
}

// funcJoin joins a slice of strings with the given separator.
func funcJoin(values []string, sep string) string {
	return strings.Join(values, sep)
}

// funcTrimPrefix removes the prefix from value when present.
func funcTrimPrefix(value, prefix string) string {
	return strings.TrimPrefix(value, prefix)
}
