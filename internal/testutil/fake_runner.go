package testutil

import (
	"context"
	"strings"
	"sync"

	"github.com/vk/spvbuildgo/internal/invoke"
)

// FakeRunner is a scripted invoke.Runner for tests. It records every
// invocation and replays configured results without spawning a process.
type FakeRunner struct {
	mu    sync.Mutex
	calls [][]string

	// Results maps a space-joined argv (executable first) to the result that
	// invocation should produce. Unlisted invocations succeed with empty
	// output.
	Results map[string]invoke.Result

	// Err, when set, is returned by every call, simulating a compiler that
	// cannot be run at all.
	Err error
}

// Run implements invoke.Runner.
func (f *FakeRunner) Run(_ context.Context, name string, args ...string) (invoke.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	argv := append([]string{name}, args...)
	f.calls = append(f.calls, argv)

	if f.Err != nil {
		return invoke.Result{}, f.Err
	}
	return f.Results[strings.Join(argv, " ")], nil
}

// Calls returns a copy of every recorded argv, in invocation order.
func (f *FakeRunner) Calls() [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	calls := make([][]string, len(f.calls))
	copy(calls, f.calls)
	return calls
}

// CommandLines returns every recorded invocation as a space-joined string,
// in invocation order. It keeps assertions on command shapes readable.
func (f *FakeRunner) CommandLines() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	lines := make([]string, 0, len(f.calls))
	for _, argv := range f.calls {
		lines = append(lines, strings.Join(argv, " "))
	}
	return lines
}
