package checklog

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/rpmtoolkit/ptest/internal/logger"
)

// Status is the classified outcome of one package's test log.
type Status int

const (
	// StatusNotSupported is the default when no relevant marker is seen:
	// the spec has no %check section to run.
	StatusNotSupported Status = iota
	// StatusPass means the check section completed with exit status 0.
	StatusPass
	// StatusFail means the check section completed with a non-zero exit
	// status.
	StatusFail
	// StatusSkipped means the check was intentionally not run.
	StatusSkipped
	// StatusAborted is inferred when a start marker was seen but no end
	// marker followed before the log ended.
	StatusAborted
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "Pass"
	case StatusFail:
		return "Fail"
	case StatusSkipped:
		return "Skipped"
	case StatusAborted:
		return "Aborted"
	case StatusNotSupported:
		return "Not Supported"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the outcome of scanning one test log. Start is set only when a
// start marker was observed; End only when an end marker was, which also
// means Status is Pass or Fail.
type Result struct {
	Status Status
	Start  *time.Time
	End    *time.Time
}

// maxLineSize bounds a single log line; rpmbuild output can carry very
// long lines when packages dump build state.
const maxLineSize = 1024 * 1024

// Scanner performs the single-pass classification of a test log.
type Scanner struct {
	log logger.Logger
}

// NewScanner creates a Scanner reporting diagnostics through log.
func NewScanner(log logger.Logger) *Scanner {
	return &Scanner{log: log}
}

// Scan reads the log line by line and classifies the package's test
// outcome. Line order matters: checks run in the order ignore, start, end,
// skip, and scanning stops at the first end or skip marker. Malformed lines
// never fail the scan; the only error source is the reader itself.
func (s *Scanner) Scan(r io.Reader) (Result, error) {
	result := Result{Status: StatusNotSupported}

	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 0, 64*1024), maxLineSize)

scan:
	for lines.Scan() {
		line := strings.TrimRight(lines.Text(), "\n")

		if ignoreRegex.MatchString(line) {
			continue
		}

		if startRegex.MatchString(line) {
			s.log.Debug(line)
			result.Start = s.timestamp(line)
		}

		// Start and end are checked independently; a line matching both is
		// grammatically impossible but the end marker must always win.
		if code, ok := exitStatus(line); ok {
			s.log.Debug(line)
			result.End = s.timestamp(line)
			result.Status = statusFromExit(code)
			break scan
		}

		if skipRegex.MatchString(line) {
			s.log.Debug(line)
			result.Status = StatusSkipped
			break scan
		}
	}
	if err := lines.Err(); err != nil {
		return Result{Status: StatusNotSupported}, fmt.Errorf("read test log: %w", err)
	}

	if result.Start != nil && result.End == nil {
		result.Status = StatusAborted
	}
	return result, nil
}

// TestOutput captures the check section of the log for failure reports:
// every line from the start marker through the end marker, with echo noise
// skipped.
func (s *Scanner) TestOutput(r io.Reader) (string, error) {
	var (
		started  bool
		contents []string
	)

	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for lines.Scan() {
		line := lines.Text()
		if ignoreRegex.MatchString(line) {
			continue
		}
		if startRegex.MatchString(line) {
			started = true
		}
		if started {
			contents = append(contents, line)
		}
		if endRegex.MatchString(line) {
			break
		}
	}
	if err := lines.Err(); err != nil {
		return "", fmt.Errorf("read test log: %w", err)
	}

	return strings.Join(contents, "\n"), nil
}

// timestamp extracts the instant from the line's leading key="value"
// token. Parse failures are tolerated: the toolkit occasionally emits
// lines without a timestamp prefix, so a nil return just means no
// timestamp is available.
func (s *Scanner) timestamp(line string) *time.Time {
	token, _, _ := strings.Cut(line, " ")
	_, value, found := strings.Cut(token, "=")
	if !found {
		s.log.Debugf("Timestamp parsing failed. Line: '%s'. Error: 'no key=value token'.", line)
		return nil
	}
	value = strings.Trim(value, `"`)

	parsed, err := dateparse.ParseAny(value)
	if err != nil {
		s.log.Debugf("Timestamp parsing failed. Line: '%s'. Error: '%v'.", line, err)
		return nil
	}
	return &parsed
}

func statusFromExit(code string) Status {
	if code == "0" {
		return StatusPass
	}
	return StatusFail
}

// ElapsedSeconds derives the check duration in seconds from scan
// timestamps, 0 when either side is missing. Negative deltas from clock
// skew are propagated as-is.
func ElapsedSeconds(start, end *time.Time) float64 {
	if start == nil || end == nil {
		return 0
	}
	return end.Sub(*start).Seconds()
}
