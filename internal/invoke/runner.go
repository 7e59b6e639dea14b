// Package invoke abstracts running an external command to completion while
// capturing its exit code and output streams. The driver and its tests
// depend only on the Runner interface; the process-spawning implementation
// lives in ExecRunner.
package invoke

import "context"

// Result holds the outcome of a single external command invocation. It is
// consumed immediately by the reporting step and never persisted.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Failed reports whether the invocation exited non-zero.
func (r Result) Failed() bool {
	return r.ExitCode != 0
}

// Runner runs an external command to completion and captures its outcome.
// A non-nil error means the command could not be run at all (missing
// executable, permission error); a command that ran and exited non-zero is
// reported through Result, not through the error.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}
