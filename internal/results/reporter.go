package results

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// failureTailLines is how much of a failed component's log the Markdown
// report shows.
const failureTailLines = 100

// Reporter receives one callback per component as results are walked.
type Reporter interface {
	Skipped(name string)
	Blocked(name string)
	Failed(name string, expectedFailure bool, logPath string)
	Succeeded(name string, expectedFailure bool)
	Unknown(name, result string)
}

// ReadableReporter prints one glyph-prefixed line per component for
// terminal consumption.
type ReadableReporter struct {
	out             io.Writer
	displayLogPaths bool
}

// NewReadable creates a ReadableReporter writing to out.
func NewReadable(out io.Writer, displayLogPaths bool) *ReadableReporter {
	return &ReadableReporter{out: out, displayLogPaths: displayLogPaths}
}

func (r *ReadableReporter) Skipped(name string) {
	fmt.Fprintf(r.out, "⏩ %s: SKIPPED\n", name)
}

func (r *ReadableReporter) Blocked(name string) {
	fmt.Fprintf(r.out, "🚫 %s: BLOCKED\n", name)
}

func (r *ReadableReporter) Failed(name string, expectedFailure bool, logPath string) {
	if expectedFailure {
		fmt.Fprintf(r.out, "🟡 %s: FAILED (expected)\n", name)
	} else {
		fmt.Fprintf(r.out, "❌ %s: FAILED\n", name)
	}
	if r.displayLogPaths && logPath != "" {
		fmt.Fprintf(r.out, "    Log: %s\n", logPath)
	}
}

func (r *ReadableReporter) Succeeded(name string, expectedFailure bool) {
	if expectedFailure {
		fmt.Fprintf(r.out, "🔴 %s: PASSED (unexpected)\n", name)
	} else {
		fmt.Fprintf(r.out, "✅ %s: PASSED\n", name)
	}
}

func (r *ReadableReporter) Unknown(name, result string) {
	fmt.Fprintf(r.out, "❓ %s: %s\n", name, result)
}

// MarkdownReporter writes a Markdown report with a heading per component
// and, for failures, the tail of the test log in a code block.
type MarkdownReporter struct {
	out io.Writer
}

// NewMarkdown creates a MarkdownReporter writing to out.
func NewMarkdown(out io.Writer) *MarkdownReporter {
	return &MarkdownReporter{out: out}
}

func (m *MarkdownReporter) Skipped(name string) {
	m.heading(name)
	fmt.Fprintf(m.out, "⏩ %s: SKIPPED\n\n", name)
}

func (m *MarkdownReporter) Blocked(name string) {
	m.heading(name)
	fmt.Fprintf(m.out, "🚫 %s: BLOCKED\n\n", name)
}

func (m *MarkdownReporter) Failed(name string, expectedFailure bool, logPath string) {
	m.heading(name)
	if expectedFailure {
		fmt.Fprintf(m.out, "🟡 %s: FAILED (expected)\n", name)
	} else {
		fmt.Fprintf(m.out, "❌ %s: FAILED\n", name)
	}

	fmt.Fprintf(m.out, "\nLast %d lines of test output:\n\n", failureTailLines)
	fmt.Fprintln(m.out, "```")
	for _, line := range tailLogLines(logPath, failureTailLines) {
		fmt.Fprintln(m.out, line)
	}
	fmt.Fprintln(m.out, "```")
	fmt.Fprintln(m.out)
}

func (m *MarkdownReporter) Succeeded(name string, expectedFailure bool) {
	m.heading(name)
	if expectedFailure {
		fmt.Fprintf(m.out, "🔴 %s: PASSED (unexpected)\n\n", name)
	} else {
		fmt.Fprintf(m.out, "✅ %s: PASSED\n\n", name)
	}
}

func (m *MarkdownReporter) Unknown(name, result string) {
	m.heading(name)
	fmt.Fprintf(m.out, "❓ %s: %s\n\n", name, result)
}

func (m *MarkdownReporter) heading(name string) {
	fmt.Fprintf(m.out, "## `%s`\n\n", name)
}

// tailLogLines reads the last maxLines lines of the log at path. A missing
// or unreadable log yields a single placeholder line rather than aborting
// the report.
func tailLogLines(path string, maxLines int) []string {
	f, err := os.Open(path)
	if err != nil {
		return []string{fmt.Sprintf("(test log unavailable: %v)", err)}
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\n"))
		if len(lines) > maxLines {
			lines = lines[1:]
		}
	}
	if err := scanner.Err(); err != nil {
		return []string{fmt.Sprintf("(test log unavailable: %v)", err)}
	}
	return lines
}
