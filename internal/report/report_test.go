package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rpmtoolkit/ptest/internal/checklog"
)

func TestSummarize(t *testing.T) {
	suite := TestSuite{
		Name: "Package Tests",
		Cases: []TestCase{
			{Name: "zlib", Time: 42.5, Status: checklog.StatusPass},
			{Name: "bash", Time: 90, Status: checklog.StatusFail},
			{Name: "curl", Status: checklog.StatusSkipped},
			{Name: "gzip", Status: checklog.StatusNotSupported},
			{Name: "sed", Status: checklog.StatusAborted},
		},
	}

	sum := suite.Summarize()
	assert.Equal(t, 5, sum.Tests)
	assert.Equal(t, 1, sum.Failures)
	assert.Equal(t, 2, sum.Skipped)
	assert.Equal(t, 1, sum.Errors)
	assert.InDelta(t, 132.5, sum.Time, 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	sum := TestSuite{Name: "Package Tests"}.Summarize()
	assert.Zero(t, sum.Tests)
	assert.Zero(t, sum.Time)
}
