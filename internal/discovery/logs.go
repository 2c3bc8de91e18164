// Package discovery locates package test logs produced by the build
// system.
package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ErrNoTestLogs indicates that no test log files were found during
// discovery.
var ErrNoTestLogs = errors.New("no test logs discovered")

// logGlob matches the build system's test log naming convention.
const logGlob = "*.src.rpm.test.log"

// TestLogs returns test log file paths. If explicit paths are provided
// they are validated and returned in the order given. Otherwise dir is
// globbed for the test log naming convention and results are sorted
// lexicographically.
func TestLogs(dir string, explicit []string) ([]string, error) {
	if len(explicit) > 0 {
		return resolveExplicit(dir, explicit)
	}

	pattern := filepath.Join(dir, logGlob)
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, ErrNoTestLogs
	}

	sort.Strings(matches)
	return matches, nil
}

func resolveExplicit(dir string, explicit []string) ([]string, error) {
	seen := make(map[string]struct{})
	resolved := make([]string, 0, len(explicit))
	for _, input := range explicit {
		path := input
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("test log %q not found", input)
			}
			return nil, fmt.Errorf("stat %q: %w", input, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("test log %q is a directory", input)
		}
		if _, ok := seen[path]; ok {
			continue
		}
		seen[path] = struct{}{}
		resolved = append(resolved, path)
	}
	if len(resolved) == 0 {
		return nil, ErrNoTestLogs
	}
	return resolved, nil
}
