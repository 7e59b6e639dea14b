// Package guard implements the working-directory precondition that must hold
// before any compilation is attempted.
package guard

import (
	"fmt"
	"strings"
)

// Check verifies that the given directory path contains the marker
// substring. The path is passed in explicitly rather than read from ambient
// process state so the precondition is testable on its own.
func Check(path, marker string) error {
	if strings.Contains(path, marker) {
		return nil
	}
	return fmt.Errorf("spvbuild must be run from within the %s folder\nYou're at: %s", marker, path)
}
