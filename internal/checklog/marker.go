// Package checklog classifies per-package RPM test logs. A log is an
// ordered stream of lines carrying msg="..." fields; fixed markers inside
// the message signal the lifecycle of the package's %check section.
package checklog

import "regexp"

// MarkerKind identifies the lifecycle marker matched on a log line.
type MarkerKind int

const (
	// MarkerIgnore is shell echo noise; recognized so it can be skipped
	// without inspecting the rest of the line.
	MarkerIgnore MarkerKind = iota
	// MarkerStart signals the check section has begun.
	MarkerStart
	// MarkerEnd signals the check section completed; the line carries the
	// numeric exit status.
	MarkerEnd
	// MarkerSkip signals the check was intentionally not run.
	MarkerSkip
)

var (
	ignoreRegex = regexp.MustCompile(`msg="\+ echo`)
	startRegex  = regexp.MustCompile(`msg="====== CHECK START`)
	endRegex    = regexp.MustCompile(`msg="====== CHECK DONE .*\. EXIT STATUS (\d+)`)
	skipRegex   = regexp.MustCompile(`msg="====== SKIPPING CHECK`)
)

// Classify reports the first marker the line matches, checking in the fixed
// order ignore, start, end, skip. It returns false when the line carries no
// marker at all.
func Classify(line string) (MarkerKind, bool) {
	switch {
	case ignoreRegex.MatchString(line):
		return MarkerIgnore, true
	case startRegex.MatchString(line):
		return MarkerStart, true
	case endRegex.MatchString(line):
		return MarkerEnd, true
	case skipRegex.MatchString(line):
		return MarkerSkip, true
	}
	return 0, false
}

// exitStatus extracts the numeric exit-status token from an end-marker
// line. The second value is false when the line is not an end marker.
func exitStatus(line string) (string, bool) {
	match := endRegex.FindStringSubmatch(line)
	if len(match) < 2 {
		return "", false
	}
	return match[1], true
}

func (k MarkerKind) String() string {
	switch k {
	case MarkerIgnore:
		return "ignore"
	case MarkerStart:
		return "start"
	case MarkerEnd:
		return "end"
	case MarkerSkip:
		return "skip"
	default:
		return "unknown"
	}
}
