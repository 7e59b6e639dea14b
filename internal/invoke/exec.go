package invoke

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// ExecRunner is the os/exec backed Runner used outside of tests.
type ExecRunner struct {
	// Dir is the working directory for spawned commands. Empty means the
	// process's own working directory.
	Dir string
}

// Run spawns the command, blocks until it exits, and captures both output
// streams as text. The child is killed if ctx is cancelled.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		// The command never ran: missing binary, permission denied, and the
		// like. This is fatal to the whole run.
		return result, fmt.Errorf("failed to run %s: %w", name, err)
	}
	return result, nil
}
