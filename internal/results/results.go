// Package results consumes the build orchestrator's test_results.json and
// reports run outcomes.
package results

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Known Result values in the orchestrator's contract. Anything else is
// reported through the unknown-result branch rather than rejected.
const (
	ResultSkipped   = "skipped"
	ResultBlocked   = "blocked"
	ResultFailed    = "failed"
	ResultSucceeded = "succeeded"
)

// Record is one component's outcome as written by the build orchestrator.
type Record struct {
	// Result is the orchestrator's verdict.
	Result string
	// ExpectedFailure marks a test known in advance to fail, so its
	// failure is not treated as a regression.
	ExpectedFailure bool
	// LogPath locates the test log; the orchestrator populates it for
	// failures.
	LogPath string
}

// Load reads a test results file: a JSON object mapping component name to
// result record. Records missing the Result or ExpectedFailure keys are a
// contract violation and fail the load, as is a failed record without a
// LogPath.
func Load(path string) (map[string]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read test results %q: %w", path, err)
	}

	var raw map[string]map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse test results %q: %w", path, err)
	}

	records := make(map[string]Record, len(raw))
	for name, fields := range raw {
		rec, err := decodeRecord(fields)
		if err != nil {
			return nil, fmt.Errorf("test results %q: component %q: %w", path, name, err)
		}
		records[name] = rec
	}
	return records, nil
}

func decodeRecord(fields map[string]json.RawMessage) (Record, error) {
	var rec Record

	resultRaw, ok := fields["Result"]
	if !ok {
		return rec, fmt.Errorf("missing key %q", "Result")
	}
	if err := json.Unmarshal(resultRaw, &rec.Result); err != nil {
		return rec, fmt.Errorf("decode %q: %w", "Result", err)
	}

	expectedRaw, ok := fields["ExpectedFailure"]
	if !ok {
		return rec, fmt.Errorf("missing key %q", "ExpectedFailure")
	}
	if err := json.Unmarshal(expectedRaw, &rec.ExpectedFailure); err != nil {
		return rec, fmt.Errorf("decode %q: %w", "ExpectedFailure", err)
	}

	if logRaw, ok := fields["LogPath"]; ok {
		if err := json.Unmarshal(logRaw, &rec.LogPath); err != nil {
			return rec, fmt.Errorf("decode %q: %w", "LogPath", err)
		}
	} else if rec.Result == ResultFailed {
		return rec, fmt.Errorf("missing key %q", "LogPath")
	}

	return rec, nil
}

// SortedNames returns the component names in deterministic order.
func SortedNames(records map[string]Record) []string {
	names := make([]string, 0, len(records))
	for name := range records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
