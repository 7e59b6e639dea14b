package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A manifest with a syntax error is guaranteed to cause a panic during
	// the loading phase inside app.NewApp().
	invalidManifest := `
		build {
			compiler =
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "spvbuild.hcl")
	err := os.WriteFile(filePath, []byte(invalidManifest), 0o600)
	require.NoError(t, err, "failed to set up test file")

	args := []string{"-dir", tempDir}
	out := &bytes.Buffer{}

	// --- Act ---
	// The run function should recover the panic and return it as an error.
	runErr := run(out, args)

	// --- Assert ---
	require.Error(t, runErr, "run() should have returned an error after recovering from a panic")

	errStr := runErr.Error()
	require.True(t, strings.Contains(errStr, "application startup panicked"), "The error message should indicate that a panic was recovered.")
	require.True(t, strings.Contains(errStr, "failed to parse"), "The error message should contain the underlying reason for the panic.")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_WrongWorkingDirectory(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A temp dir path does not contain the default "shaders" marker, so the
	// guard must refuse before any compiler invocation is attempted.
	args := []string{"-dir", t.TempDir()}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "must be run from within the shaders folder")
}

func TestRun_FlagError(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, []string{"-log-format", "xml"})

	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid log-format")
}
