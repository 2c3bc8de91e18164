package results

import (
	"fmt"
	"io"
)

// Tally counts run outcomes, crossing the orchestrator's verdict with the
// expected-failure flag.
type Tally struct {
	ExpectedSuccesses   int
	UnexpectedSuccesses int
	ExpectedFailures    int
	UnexpectedFailures  int
	Blocked             int
	Skipped             int
	Unknown             int
}

// Report walks the records in deterministic order, dispatching each one to
// every reporter, and returns the outcome tally.
func Report(records map[string]Record, reporters []Reporter) Tally {
	var tally Tally

	for _, name := range SortedNames(records) {
		rec := records[name]
		switch rec.Result {
		case ResultSkipped:
			tally.Skipped++
			for _, r := range reporters {
				r.Skipped(name)
			}
		case ResultBlocked:
			tally.Blocked++
			for _, r := range reporters {
				r.Blocked(name)
			}
		case ResultFailed:
			if rec.ExpectedFailure {
				tally.ExpectedFailures++
			} else {
				tally.UnexpectedFailures++
			}
			for _, r := range reporters {
				r.Failed(name, rec.ExpectedFailure, rec.LogPath)
			}
		case ResultSucceeded:
			if rec.ExpectedFailure {
				tally.UnexpectedSuccesses++
			} else {
				tally.ExpectedSuccesses++
			}
			for _, r := range reporters {
				r.Succeeded(name, rec.ExpectedFailure)
			}
		default:
			tally.Unknown++
			for _, r := range reporters {
				r.Unknown(name, rec.Result)
			}
		}
	}

	return tally
}

// Failed reports whether the run should exit non-zero: any unexpected
// failure or blocked component counts.
func (t Tally) Failed() bool {
	return t.UnexpectedFailures > 0 || t.Blocked > 0
}

// WriteSummary prints the readable summary, listing only non-zero
// counters.
func (t Tally) WriteSummary(out io.Writer) {
	fmt.Fprintln(out)
	if t.ExpectedSuccesses > 0 {
		fmt.Fprintf(out, "Tests succeeded:              %d\n", t.ExpectedSuccesses)
	}
	if t.UnexpectedSuccesses > 0 {
		fmt.Fprintf(out, "Tests succeeded unexpectedly: %d\n", t.UnexpectedSuccesses)
	}
	if t.ExpectedFailures > 0 {
		fmt.Fprintf(out, "Tests expected to fail:       %d\n", t.ExpectedFailures)
	}
	if t.UnexpectedFailures > 0 {
		fmt.Fprintf(out, "Tests failed:                 %d\n", t.UnexpectedFailures)
	}
	if t.Blocked > 0 {
		fmt.Fprintf(out, "Tests blocked:                %d\n", t.Blocked)
	}
	if t.Skipped > 0 {
		fmt.Fprintf(out, "Tests skipped:                %d\n", t.Skipped)
	}
	if t.Unknown > 0 {
		fmt.Fprintf(out, "Tests with unknown results:   %d\n", t.Unknown)
	}
}
