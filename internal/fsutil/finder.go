// Package fsutil provides file system utility functions.
package fsutil

import (
	"os"
	"strings"
)

// FindByExtensions lists the entries of dir (non-recursive) and returns the
// names of the files whose name ends with one of the given extensions.
// Directories are skipped, even when their names match. The result preserves
// whatever order the directory listing yields; callers must not rely on it.
func FindByExtensions(dir string, extensions []string) ([]string, error) {
	if len(extensions) == 0 {
		panic("extensions must not be empty")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if HasMatchingExtension(entry.Name(), extensions) {
			files = append(files, entry.Name())
		}
	}

	return files, nil
}

// HasMatchingExtension reports whether name ends with one of the given
// extensions.
func HasMatchingExtension(name string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
