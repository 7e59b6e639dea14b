// Package driver implements the build loop: for every discovered shader
// source it issues a debug and a release compiler invocation, and reports
// debug failures to the console.
package driver

import (
	"context"
	"io"
	"path/filepath"

	"github.com/vk/spvbuildgo/internal/config"
	"github.com/vk/spvbuildgo/internal/ctxlog"
	"github.com/vk/spvbuildgo/internal/invoke"
)

// ArtifactExtension is appended to the source filename to form the compiled
// artifact's name.
const ArtifactExtension = ".spv"

// DebugPrefix distinguishes the unoptimized artifact from the release one.
const DebugPrefix = "debug_"

// Driver compiles shader sources by invoking the external compiler through
// an injected Runner.
type Driver struct {
	settings *config.Settings
	runner   invoke.Runner
	out      io.Writer
}

// New constructs a Driver. The out writer receives the human-readable
// failure reports; it is separate from logging because the report format is
// part of the tool's observable contract.
func New(settings *config.Settings, runner invoke.Runner, out io.Writer) *Driver {
	return &Driver{
		settings: settings,
		runner:   runner,
		out:      out,
	}
}

// BuildAll compiles every source in order, one at a time. Individual shader
// failures are reported and do not stop the loop; only a failure to spawn
// the compiler at all aborts the run.
func (d *Driver) BuildAll(ctx context.Context, sources []string) error {
	for _, name := range sources {
		if err := d.BuildOne(ctx, name); err != nil {
			return err
		}
	}
	return nil
}

// BuildOne runs the debug and release invocations for a single source file.
// The debug result is captured and reported; the release result is
// intentionally not inspected.
func (d *Driver) BuildOne(ctx context.Context, name string) error {
	logger := ctxlog.FromContext(ctx).With("shader", name)
	logger.Debug("Compiling shader.")

	debugArgs := d.invocationArgs(nil, name, DebugPrefix+name+ArtifactExtension)
	result, err := d.runner.Run(ctx, d.settings.Compiler, debugArgs...)
	if err != nil {
		return err
	}
	d.report(name, result)

	releaseArgs := d.invocationArgs([]string{"-O"}, name, name+ArtifactExtension)
	if _, err := d.runner.Run(ctx, d.settings.Compiler, releaseArgs...); err != nil {
		return err
	}
	logger.Debug("Both artifacts attempted.", "debug_failed", result.Failed())
	return nil
}

// invocationArgs assembles one compiler command line:
//
//	<compiler> [lead...] [extra_flags...] <source> -o <out_dir>/<artifact>
func (d *Driver) invocationArgs(lead []string, source, artifact string) []string {
	args := make([]string, 0, len(lead)+len(d.settings.ExtraFlags)+3)
	args = append(args, lead...)
	args = append(args, d.settings.ExtraFlags...)
	args = append(args, source, "-o", filepath.Join(d.settings.OutDir, artifact))
	return args
}
