// Package testutil provides shared helpers for the test suite: a scripted
// fake compiler runner, a thread-safe output buffer, and an app-level
// harness that runs a full build against a temporary shader directory.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/spvbuildgo/internal/app"
	"github.com/vk/spvbuildgo/internal/cli"
	"github.com/vk/spvbuildgo/internal/hclconf"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an app-level test run.
type HarnessResult struct {
	Output string // combined log and report output
	Err    error
	Dir    string // the shader directory the build ran against
	Runner *FakeRunner
}

// ShaderDir creates a fresh directory whose path contains the default
// working-directory marker and populates it with the given files.
func ShaderDir(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "shaders")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	return dir
}

// RunBuild provides a standardized harness for app-level tests: it writes
// the given files into a fresh shader directory, parses extraArgs on top of
// the directory flag, and runs the app with the provided fake runner.
func RunBuild(t *testing.T, files map[string]string, runner *FakeRunner, extraArgs ...string) *HarnessResult {
	t.Helper()

	dir := ShaderDir(t, files)
	buf := &SafeBuffer{}

	args := append([]string{"-dir", dir}, extraArgs...)
	cfg, shouldExit, err := cli.Parse(args, buf)
	require.NoError(t, err, "harness flag parsing must succeed")
	require.False(t, shouldExit, "harness args must not request a clean exit")

	buildApp := app.NewApp(buf, cfg, hclconf.NewLoader(), runner)
	runErr := buildApp.Run(context.Background(), cfg)

	return &HarnessResult{
		Output: buf.String(),
		Err:    runErr,
		Dir:    dir,
		Runner: runner,
	}
}
