package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/rpmtoolkit/ptest/internal/checklog"
	"github.com/rpmtoolkit/ptest/internal/report"
)

// failureTailLines is how much captured test output a failed case shows.
const failureTailLines = 100

// MarkdownRenderer emits a human-oriented Markdown report.
type MarkdownRenderer struct {
	out io.Writer
}

// NewMarkdown creates a Markdown renderer writing to out.
func NewMarkdown(out io.Writer) *MarkdownRenderer {
	return &MarkdownRenderer{out: out}
}

// Render writes the suite as Markdown: a heading per test case, a result
// glyph line, and for failures the tail of the captured test output in a
// code block.
func (m *MarkdownRenderer) Render(suite report.TestSuite) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", suite.Name)
	for _, tc := range suite.Cases {
		fmt.Fprintf(&b, "## `%s`\n\n", tc.Name)

		switch tc.Status {
		case checklog.StatusFail:
			b.WriteString("Result: ❌ FAILED\n")
		case checklog.StatusSkipped, checklog.StatusNotSupported:
			b.WriteString("Result: ⏩ SKIPPED\n")
		case checklog.StatusAborted:
			b.WriteString("Result: 🚫 ABORTED\n")
		default:
			b.WriteString("Result: ✅ PASSED\n")
		}

		if tc.Status == checklog.StatusFail {
			fmt.Fprintf(&b, "\nLast %d lines of test output:\n\n", failureTailLines)
			b.WriteString("```\n")
			for _, line := range tailLines(tc.Output, failureTailLines) {
				b.WriteString(line)
				b.WriteByte('\n')
			}
			b.WriteString("```\n")
		}
		b.WriteByte('\n')
	}

	if _, err := io.WriteString(m.out, b.String()); err != nil {
		return fmt.Errorf("write markdown report: %w", err)
	}
	return nil
}

func tailLines(input string, maxLines int) []string {
	if input == "" {
		return nil
	}
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	if len(lines) <= maxLines {
		return lines
	}
	return lines[len(lines)-maxLines:]
}
