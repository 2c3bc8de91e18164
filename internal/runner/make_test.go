package runner

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand(t *testing.T) {
	r := New(Options{
		ToolkitDir: "/repo/toolkit",
		Specs:      []string{"zlib", "bash"},
		Jobs:       8,
		LogLevel:   "info",
		Sudo:       true,
	})

	args := r.Command()
	assert.Equal(t, []string{
		"sudo",
		"make",
		"build-packages",
		"-j", "8",
		"REBUILD_TOOLS=y",
		"LOG_LEVEL=info",
		"SRPM_PACK_LIST=zlib bash",
		"PACKAGE_REBUILD_LIST=zlib bash",
		"RUN_CHECK=y",
		"DAILY_BUILD_ID=lkg",
	}, args)
}

func TestCommandNoSudo(t *testing.T) {
	r := New(Options{Specs: []string{"zlib"}, Jobs: 1})

	args := r.Command()
	assert.Equal(t, "make", args[0])
}

func TestCommandDefaults(t *testing.T) {
	r := New(Options{Specs: []string{"zlib"}})

	args := strings.Join(r.Command(), " ")
	assert.Contains(t, args, "LOG_LEVEL=warn")
	assert.NotContains(t, args, "-j 0")
}

func TestRunDryRun(t *testing.T) {
	var out bytes.Buffer
	r := New(Options{
		Specs:  []string{"zlib"},
		Jobs:   4,
		DryRun: true,
		Stdout: &out,
	})

	elapsed, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, elapsed)
	assert.Contains(t, out.String(), "make build-packages -j 4")
	assert.Contains(t, out.String(), "SRPM_PACK_LIST=zlib")
}

func TestRunCommandFailure(t *testing.T) {
	var out bytes.Buffer
	r := New(Options{
		Specs:  []string{"zlib"},
		Stdout: &out,
		Stderr: &out,
	})
	// Point the invocation at a directory that does not exist so exec
	// fails fast without touching a real toolkit.
	r.opts.ToolkitDir = "/nonexistent/toolkit"

	_, err := r.Run(context.Background())
	assert.Error(t, err)
}
