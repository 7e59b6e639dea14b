package driver

import (
	"fmt"

	"github.com/vk/spvbuildgo/internal/invoke"
)

// report prints the failure diagnostics for one debug invocation. A
// successful invocation prints nothing at all. Failures are reported per
// file with no aggregation; the overall process still exits cleanly.
func (d *Driver) report(name string, result invoke.Result) {
	if !result.Failed() {
		return
	}

	fmt.Fprintf(d.out, "Failed to compile shader %s\n", name)
	if len(result.Stdout) != 0 {
		fmt.Fprintln(d.out, ">> Stdout:")
		fmt.Fprintln(d.out, result.Stdout)
		fmt.Fprintln(d.out)
	}
	if len(result.Stderr) != 0 {
		fmt.Fprintln(d.out, ">> Stderr:")
		fmt.Fprintln(d.out, result.Stderr)
		fmt.Fprintln(d.out)
	}
	fmt.Fprintln(d.out)
}
