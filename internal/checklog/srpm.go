package checklog

import (
	"fmt"
	"regexp"
)

// Package identifies the SRPM a test log belongs to. Version carries the
// combined version-release string, matching how the build system names the
// log files.
type Package struct {
	Name    string
	Version string
}

// Test logs are named <name>-<version>-<release>.src.rpm.test.log; name
// may itself contain dashes, so version and release bind as the last two
// dash-separated fields.
var testLogNameRegex = regexp.MustCompile(`(.*/)*(.*)-(.*)-(.*?)\.src\.rpm\.test\.log`)

// ParseLogName extracts the package details from a test log path. A path
// not following the naming convention is an error; callers treat it as
// fatal for that file.
func ParseLogName(path string) (Package, error) {
	match := testLogNameRegex.FindStringSubmatch(path)
	if match == nil {
		return Package{}, fmt.Errorf("test log name %q does not match <name>-<version>-<release>.src.rpm.test.log", path)
	}
	return Package{
		Name:    match[2],
		Version: fmt.Sprintf("%s-%s", match[3], match[4]),
	}, nil
}
