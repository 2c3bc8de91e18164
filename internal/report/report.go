// Package report holds the test suite model built from scanned package
// test logs, independent of any output format.
package report

import "github.com/rpmtoolkit/ptest/internal/checklog"

// TestCase captures the outcome of one package's test run.
type TestCase struct {
	// Name is the SRPM package name.
	Name string `json:"name"`
	// Classname is the suite the case belongs to.
	Classname string `json:"classname"`
	// Time is the check duration in seconds.
	Time float64 `json:"time"`
	// Status is the classified log outcome.
	Status checklog.Status `json:"-"`
	// StatusText mirrors Status for machine-readable output.
	StatusText string `json:"status"`
	// Message is the human-readable explanation attached to non-passing
	// cases.
	Message string `json:"message,omitempty"`
	// Output is the captured check section, populated for failures.
	Output string `json:"-"`
}

// TestSuite aggregates the test cases of one scan run.
type TestSuite struct {
	Name  string     `json:"name"`
	Cases []TestCase `json:"cases"`
}

// Summary tallies suite outcomes.
type Summary struct {
	Tests    int     `json:"tests"`
	Failures int     `json:"failures"`
	Skipped  int     `json:"skipped"`
	Errors   int     `json:"errors"`
	Time     float64 `json:"time"`
}

// Summarize computes the suite tallies. Skipped and not-supported cases
// both count as skipped; aborted and other unexpected statuses count as
// errors.
func (s TestSuite) Summarize() Summary {
	var sum Summary
	sum.Tests = len(s.Cases)
	for _, tc := range s.Cases {
		sum.Time += tc.Time
		switch tc.Status {
		case checklog.StatusPass:
		case checklog.StatusFail:
			sum.Failures++
		case checklog.StatusSkipped, checklog.StatusNotSupported:
			sum.Skipped++
		default:
			sum.Errors++
		}
	}
	return sum
}
