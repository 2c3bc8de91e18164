package output

import (
	"encoding/json"
	"io"

	"github.com/rpmtoolkit/ptest/internal/report"
)

// JSONRenderer emits structured scan data.
type JSONRenderer struct {
	out io.Writer
}

// NewJSON creates a JSON renderer writing to out.
func NewJSON(out io.Writer) *JSONRenderer {
	return &JSONRenderer{out: out}
}

// Report captures the JSON output schema.
type Report struct {
	Suite   report.TestSuite `json:"suite"`
	Summary report.Summary   `json:"summary"`
}

// Render encodes the suite and its summary as JSON.
func (j *JSONRenderer) Render(suite report.TestSuite) error {
	enc := json.NewEncoder(j.out)
	enc.SetIndent("", "  ")
	return enc.Encode(Report{Suite: suite, Summary: suite.Summarize()})
}
