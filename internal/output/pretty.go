package output

import (
	"fmt"
	"io"

	"github.com/rpmtoolkit/ptest/internal/checklog"
	"github.com/rpmtoolkit/ptest/internal/report"
)

// PrettyRenderer renders scan results in a human-friendly format.
type PrettyRenderer struct {
	out io.Writer
}

// NewPretty creates a PrettyRenderer writing to the provided writer.
func NewPretty(out io.Writer) *PrettyRenderer {
	return &PrettyRenderer{out: out}
}

// Render writes one glyph line per test case followed by the suite
// summary.
func (p *PrettyRenderer) Render(suite report.TestSuite) error {
	fmt.Fprintf(p.out, "%s\n\n", suite.Name)

	for _, tc := range suite.Cases {
		switch tc.Status {
		case checklog.StatusPass:
			fmt.Fprintf(p.out, "✅ %s: PASSED (%.2fs)\n", tc.Name, tc.Time)
		case checklog.StatusFail:
			fmt.Fprintf(p.out, "❌ %s: FAILED (%.2fs)\n", tc.Name, tc.Time)
		case checklog.StatusSkipped:
			fmt.Fprintf(p.out, "⏩ %s: SKIPPED\n", tc.Name)
		case checklog.StatusNotSupported:
			fmt.Fprintf(p.out, "⏩ %s: NOT SUPPORTED\n", tc.Name)
		default:
			fmt.Fprintf(p.out, "🚫 %s: %s\n", tc.Name, tc.StatusText)
		}
	}

	sum := suite.Summarize()
	fmt.Fprintf(p.out, "\n%d tests, %d failures, %d skipped, %d errors (%.2fs)\n",
		sum.Tests, sum.Failures, sum.Skipped, sum.Errors, sum.Time)
	return nil
}
