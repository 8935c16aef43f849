// Package source discovers the annotated files to document.
package source

import (
	"fmt"
	"path/filepath"
	"slices"
)

// Discover returns the files matching pattern plus the extra paths, sorted
// lexicographically with duplicates removed. Extra paths are not checked for
// existence; reading them later reports missing files.
func Discover(pattern string, extra []string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad source pattern %q: %w", pattern, err)
	}

	files := append(matches, extra...)
	slices.Sort(files)
	return slices.Compact(files), nil
}
