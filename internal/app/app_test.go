package app_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/spvbuildgo/internal/app"
	"github.com/vk/spvbuildgo/internal/hclconf"
	"github.com/vk/spvbuildgo/internal/invoke"
	"github.com/vk/spvbuildgo/internal/testutil"
)

func TestRun_CompilesEveryMatchingSource(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"a.vert":     "#version 450\nvoid main() {}",
		"b.frag":     "#version 450\nvoid main() {}",
		"readme.txt": "not a shader",
	}
	runner := &testutil.FakeRunner{}

	// --- Act ---
	result := testutil.RunBuild(t, files, runner)

	// --- Assert ---
	// Two invocations per shader source, none for other files.
	require.NoError(t, result.Err)
	require.Len(t, runner.Calls(), 4)
	for _, line := range runner.CommandLines() {
		require.NotContains(t, line, "readme.txt")
	}
}

func TestRun_DebugFailureIsReportedButNotFatal(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	runner := &testutil.FakeRunner{
		Results: map[string]invoke.Result{
			"glslc a.vert -o bin/debug_a.vert.spv": {
				ExitCode: 1,
				Stderr:   "a.vert:3: error: ...",
			},
		},
	}

	// --- Act ---
	result := testutil.RunBuild(t, map[string]string{"a.vert": "x", "b.frag": "y"}, runner)

	// --- Assert ---
	// The failure is printed, the loop continues, and the run still succeeds.
	require.NoError(t, result.Err)
	require.Contains(t, result.Output, "Failed to compile shader a.vert")
	require.Contains(t, result.Output, "a.vert:3: error: ...")
	require.Len(t, runner.Calls(), 4, "remaining sources must still be compiled")
}

func TestRun_GuardFailurePreventsAllInvocations(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// t.TempDir paths do not contain the default marker, so pointing the app
	// at one directly must trip the guard.
	dir := t.TempDir()
	runner := &testutil.FakeRunner{}
	cfg, err := app.NewConfig(app.Config{Dir: dir, LogFormat: "text", LogLevel: "info"})
	require.NoError(t, err)

	// --- Act ---
	buildApp := app.NewApp(&testutil.SafeBuffer{}, cfg, hclconf.NewLoader(), runner)
	runErr := buildApp.Run(context.Background(), cfg)

	// --- Assert ---
	require.Error(t, runErr)
	require.Contains(t, runErr.Error(), "must be run from within the shaders folder")
	require.Contains(t, runErr.Error(), dir)
	require.Empty(t, runner.Calls(), "no compiler invocation may happen after a guard failure")
}

func TestRun_MarkerOverrideTripsGuard(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	runner := &testutil.FakeRunner{}

	// --- Act ---
	// The harness directory contains "shaders" but not the overridden marker.
	result := testutil.RunBuild(t, map[string]string{"a.vert": "x"}, runner, "-marker", "not-there")

	// --- Assert ---
	require.Error(t, result.Err)
	require.Empty(t, runner.Calls())
}

func TestRun_ManifestDrivesInvocations(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"a.vert": "x",
		hclconf.ManifestName: `
build {
  compiler    = "mock-glslc"
  extra_flags = ["--target-env=vulkan1.1"]
}
`,
	}
	runner := &testutil.FakeRunner{}

	// --- Act ---
	result := testutil.RunBuild(t, files, runner)

	// --- Assert ---
	require.NoError(t, result.Err)
	require.Equal(t, []string{
		"mock-glslc --target-env=vulkan1.1 a.vert -o bin/debug_a.vert.spv",
		"mock-glslc -O --target-env=vulkan1.1 a.vert -o bin/a.vert.spv",
	}, runner.CommandLines())
}

func TestRun_CompilerFlagBeatsManifest(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"a.vert":             "x",
		hclconf.ManifestName: "build {\n  compiler = \"manifest-glslc\"\n}\n",
	}
	runner := &testutil.FakeRunner{}

	// --- Act ---
	result := testutil.RunBuild(t, files, runner, "-compiler", "flag-glslc")

	// --- Assert ---
	require.NoError(t, result.Err)
	require.True(t, strings.HasPrefix(runner.CommandLines()[0], "flag-glslc "),
		"flag override must select the compiler executable")
}

func TestRun_EmptyDirectoryIsANoop(t *testing.T) {
	t.Parallel()

	runner := &testutil.FakeRunner{}
	result := testutil.RunBuild(t, map[string]string{}, runner)

	require.NoError(t, result.Err)
	require.Empty(t, runner.Calls())
}

func TestNewApp_PanicsOnMalformedManifest(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := testutil.ShaderDir(t, map[string]string{
		hclconf.ManifestName: "build { compiler = ",
	})
	cfg, err := app.NewConfig(app.Config{Dir: dir, LogFormat: "text", LogLevel: "info"})
	require.NoError(t, err)

	// --- Assert ---
	require.Panics(t, func() {
		app.NewApp(&testutil.SafeBuffer{}, cfg, hclconf.NewLoader(), &testutil.FakeRunner{})
	})
}
