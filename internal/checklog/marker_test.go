package checklog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		line string
		kind MarkerKind
		ok   bool
	}{
		{"start", startLine, MarkerStart, true},
		{"end", passLine, MarkerEnd, true},
		{"skip", skipLine, MarkerSkip, true},
		{"ignore", echoLine, MarkerIgnore, true},
		{"noise", noiseLine, 0, false},
		{"empty", "", 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			kind, ok := Classify(c.line)
			assert.Equal(t, c.ok, ok)
			if c.ok {
				assert.Equal(t, c.kind, kind)
			}
		})
	}
}

func TestClassifyIgnoreWinsOverQuotedMarkers(t *testing.T) {
	// Echo noise quoting a real marker must classify as ignore.
	kind, ok := Classify(echoLine)
	assert.True(t, ok)
	assert.Equal(t, MarkerIgnore, kind)
}

func TestExitStatus(t *testing.T) {
	code, ok := exitStatus(passLine)
	assert.True(t, ok)
	assert.Equal(t, "0", code)

	code, ok = exitStatus(failLine)
	assert.True(t, ok)
	assert.Equal(t, "1", code)

	_, ok = exitStatus(startLine)
	assert.False(t, ok)
}

func TestMarkerKindString(t *testing.T) {
	assert.Equal(t, "ignore", MarkerIgnore.String())
	assert.Equal(t, "start", MarkerStart.String())
	assert.Equal(t, "end", MarkerEnd.String())
	assert.Equal(t, "skip", MarkerSkip.String())
}
