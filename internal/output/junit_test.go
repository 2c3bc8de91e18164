package output

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpmtoolkit/ptest/internal/checklog"
	"github.com/rpmtoolkit/ptest/internal/report"
)

func sampleSuite() report.TestSuite {
	return report.TestSuite{
		Name: "Package Tests",
		Cases: []report.TestCase{
			{Name: "zlib", Classname: "Package Tests", Time: 42.5, Status: checklog.StatusPass, StatusText: "Pass"},
			{Name: "bash", Classname: "Package Tests", Time: 90, Status: checklog.StatusFail, StatusText: "Fail",
				Message: "TEST FAILED. CHECK ATTACHMENTS TAB FOR FAILURE LOG", Output: "line one\nline two"},
			{Name: "curl", Classname: "Package Tests", Status: checklog.StatusSkipped, StatusText: "Skipped",
				Message: "PACKAGE TEST SKIPPED"},
			{Name: "gzip", Classname: "Package Tests", Status: checklog.StatusNotSupported, StatusText: "Not Supported",
				Message: "PACKAGE TEST NOT SUPPORTED"},
			{Name: "sed", Classname: "Package Tests", Status: checklog.StatusAborted, StatusText: "Aborted"},
		},
	}
}

func TestConvertToJUnit(t *testing.T) {
	suites := ConvertToJUnit(sampleSuite())

	assert.Equal(t, 5, suites.Tests)
	assert.Equal(t, 1, suites.Failures)
	assert.Equal(t, 1, suites.Errors)
	require.Len(t, suites.Suites, 1)

	suite := suites.Suites[0]
	assert.Equal(t, "Package Tests", suite.Name)
	assert.Equal(t, 2, suite.Skipped)
	require.Len(t, suite.TestCases, 5)

	pass := suite.TestCases[0]
	assert.Nil(t, pass.Failure)
	assert.Nil(t, pass.Skipped)
	assert.Nil(t, pass.Error)

	fail := suite.TestCases[1]
	require.NotNil(t, fail.Failure)
	assert.Equal(t, "TEST FAILED. CHECK ATTACHMENTS TAB FOR FAILURE LOG", fail.Failure.Message)
	assert.Contains(t, fail.Failure.Body, "line two")

	skipped := suite.TestCases[2]
	require.NotNil(t, skipped.Skipped)
	assert.Equal(t, "PACKAGE TEST SKIPPED", skipped.Skipped.Message)

	notSupported := suite.TestCases[3]
	require.NotNil(t, notSupported.Skipped)
	assert.Equal(t, "PACKAGE TEST NOT SUPPORTED", notSupported.Skipped.Message)

	aborted := suite.TestCases[4]
	require.NotNil(t, aborted.Error)
	assert.Equal(t, "Aborted", aborted.Error.Message)
}

func TestJUnitRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJUnit(&buf).Render(sampleSuite()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, xml.Header))
	assert.Contains(t, out, `<testsuite name="Package Tests"`)
	assert.Contains(t, out, `<testcase name="zlib" classname="Package Tests" time="42.5">`)
	assert.Contains(t, out, "<failure message=")
	assert.Contains(t, out, "<skipped message=")

	// Round-trips as valid XML.
	var decoded JUnitTestSuites
	require.NoError(t, xml.Unmarshal(buf.Bytes()[len(xml.Header):], &decoded))
	assert.Equal(t, 5, decoded.Tests)
}
