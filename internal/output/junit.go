// Package output renders a scanned test suite as JUnit XML, Markdown, or
// JSON.
package output

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/rpmtoolkit/ptest/internal/checklog"
	"github.com/rpmtoolkit/ptest/internal/report"
)

// JUnit XML schema types.

// JUnitTestSuites is the top-level container.
type JUnitTestSuites struct {
	XMLName  xml.Name         `xml:"testsuites"`
	Tests    int              `xml:"tests,attr"`
	Failures int              `xml:"failures,attr"`
	Errors   int              `xml:"errors,attr"`
	Time     float64          `xml:"time,attr"`
	Suites   []JUnitTestSuite `xml:"testsuite"`
}

// JUnitTestSuite maps to one scan run.
type JUnitTestSuite struct {
	XMLName   xml.Name        `xml:"testsuite"`
	Name      string          `xml:"name,attr"`
	Tests     int             `xml:"tests,attr"`
	Failures  int             `xml:"failures,attr"`
	Errors    int             `xml:"errors,attr"`
	Skipped   int             `xml:"skipped,attr"`
	Time      float64         `xml:"time,attr"`
	TestCases []JUnitTestCase `xml:"testcase"`
}

// JUnitTestCase maps to one package's test run.
type JUnitTestCase struct {
	XMLName   xml.Name      `xml:"testcase"`
	Name      string        `xml:"name,attr"`
	Classname string        `xml:"classname,attr"`
	Time      float64       `xml:"time,attr"`
	Failure   *JUnitFailure `xml:"failure,omitempty"`
	Error     *JUnitError   `xml:"error,omitempty"`
	Skipped   *JUnitSkipped `xml:"skipped,omitempty"`
	SystemOut string        `xml:"system-out,omitempty"`
}

// JUnitFailure represents a failed package test.
type JUnitFailure struct {
	Message string `xml:"message,attr"`
	Body    string `xml:",chardata"`
}

// JUnitError represents a test that never completed.
type JUnitError struct {
	Message string `xml:"message,attr"`
}

// JUnitSkipped marks a test as skipped.
type JUnitSkipped struct {
	Message string `xml:"message,attr,omitempty"`
}

// ConvertToJUnit maps the suite model onto the JUnit XML schema.
func ConvertToJUnit(suite report.TestSuite) JUnitTestSuites {
	sum := suite.Summarize()

	out := JUnitTestSuite{
		Name:     suite.Name,
		Tests:    sum.Tests,
		Failures: sum.Failures,
		Errors:   sum.Errors,
		Skipped:  sum.Skipped,
		Time:     sum.Time,
	}

	for _, tc := range suite.Cases {
		out.TestCases = append(out.TestCases, convertTestCase(tc))
	}

	return JUnitTestSuites{
		Tests:    sum.Tests,
		Failures: sum.Failures,
		Errors:   sum.Errors,
		Time:     sum.Time,
		Suites:   []JUnitTestSuite{out},
	}
}

func convertTestCase(tc report.TestCase) JUnitTestCase {
	out := JUnitTestCase{
		Name:      tc.Name,
		Classname: tc.Classname,
		Time:      tc.Time,
	}

	switch tc.Status {
	case checklog.StatusPass:
	case checklog.StatusFail:
		out.Failure = &JUnitFailure{Message: tc.Message, Body: tc.Output}
	case checklog.StatusSkipped, checklog.StatusNotSupported:
		out.Skipped = &JUnitSkipped{Message: tc.Message}
	default:
		out.Error = &JUnitError{Message: tc.Status.String()}
	}

	return out
}

// JUnitRenderer emits the suite as JUnit XML.
type JUnitRenderer struct {
	out io.Writer
}

// NewJUnit creates a JUnit renderer writing to out.
func NewJUnit(out io.Writer) *JUnitRenderer {
	return &JUnitRenderer{out: out}
}

// Render writes the suite as indented JUnit XML.
func (j *JUnitRenderer) Render(suite report.TestSuite) error {
	data, err := xml.MarshalIndent(ConvertToJUnit(suite), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JUnit XML: %w", err)
	}
	if _, err := io.WriteString(j.out, xml.Header); err != nil {
		return fmt.Errorf("write JUnit XML: %w", err)
	}
	if _, err := j.out.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write JUnit XML: %w", err)
	}
	return nil
}
