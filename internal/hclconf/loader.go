package hclconf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/spvbuildgo/internal/config"
	"github.com/vk/spvbuildgo/internal/ctxlog"
)

// ManifestName is the filename of the optional build manifest, looked up in
// the scan directory.
const ManifestName = "spvbuild.hcl"

// manifest is the top-level HCL schema of a spvbuild.hcl file.
type manifest struct {
	Build *buildBlock `hcl:"build,block"`
}

// buildBlock holds the user-tunable build settings. Every attribute is
// optional; absent ones keep their default.
type buildBlock struct {
	Compiler   *string  `hcl:"compiler,optional"`
	OutDir     *string  `hcl:"out_dir,optional"`
	Marker     *string  `hcl:"marker,optional"`
	Extensions []string `hcl:"extensions,optional"`
	ExtraFlags []string `hcl:"extra_flags,optional"`
}

// Loader is the HCL-backed config.Loader.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads dir/spvbuild.hcl if it exists and returns the merged settings.
// A missing manifest yields the defaults; a malformed one is an error.
func (l *Loader) Load(ctx context.Context, dir string) (*config.Settings, error) {
	logger := ctxlog.FromContext(ctx)
	settings := config.DefaultSettings()

	path := filepath.Join(dir, ManifestName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			logger.Debug("No manifest found, using defaults.", "path", path)
			return settings, nil
		}
		return nil, fmt.Errorf("failed to stat manifest %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, diags)
	}

	var mf manifest
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &mf); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode manifest %s: %w", path, diags)
	}

	if mf.Build != nil {
		applyBlock(settings, mf.Build)
	}
	logger.Debug("Manifest loaded.", "path", path)
	return settings, nil
}

// applyBlock merges the manifest's build block over the defaults. Only
// attributes the user actually wrote are applied.
func applyBlock(settings *config.Settings, block *buildBlock) {
	if block.Compiler != nil {
		settings.Compiler = *block.Compiler
	}
	if block.OutDir != nil {
		settings.OutDir = *block.OutDir
	}
	if block.Marker != nil {
		settings.Marker = *block.Marker
	}
	if len(block.Extensions) > 0 {
		settings.Extensions = block.Extensions
	}
	if len(block.ExtraFlags) > 0 {
		settings.ExtraFlags = block.ExtraFlags
	}
}

// evalContext exposes the process environment as an `env` object so a
// manifest can reference it, e.g. `compiler = env.GLSLC`.
func evalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		vars[key] = cty.StringVal(value)
	}

	env := cty.EmptyObjectVal
	if len(vars) > 0 {
		env = cty.ObjectVal(vars)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": env},
	}
}
