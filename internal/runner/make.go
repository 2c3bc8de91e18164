// Package runner invokes the toolkit's make-based package build to
// execute %check sections.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// Options configure the package test invocation.
type Options struct {
	// ToolkitDir is the directory holding the toolkit Makefile.
	ToolkitDir string
	// Specs are the spec names to pack and rebuild with checks enabled.
	Specs []string
	// Jobs is the make parallelism; defaults to the CPU count.
	Jobs int
	// LogLevel is passed to the toolkit as LOG_LEVEL.
	LogLevel string
	// Sudo wraps the invocation in sudo; the toolkit build needs root.
	Sudo bool
	// DryRun prints the command without executing it.
	DryRun bool

	Stdout io.Writer
	Stderr io.Writer
	Env    []string
	Now    func() time.Time
}

// Runner executes the toolkit package test build.
type Runner struct {
	opts Options
}

// New creates a runner with the supplied options, filling in defaults.
func New(opts Options) *Runner {
	if opts.Stdout == nil {
		opts.Stdout = io.Discard
	}
	if opts.Stderr == nil {
		opts.Stderr = io.Discard
	}
	if opts.Jobs <= 0 {
		opts.Jobs = runtime.NumCPU()
	}
	if opts.LogLevel == "" {
		opts.LogLevel = "warn"
	}
	if opts.Env == nil {
		opts.Env = os.Environ()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Runner{opts: opts}
}

// Command builds the argument vector for the package test invocation.
// TEST_RUN_LIST and TEST_RERUN_LIST are deliberately not used: they fail
// in undesirable ways on specs with no %check section. RUN_CHECK=y is set
// instead and the outcome is determined afterwards from the results file.
func (r *Runner) Command() []string {
	specs := strings.Join(r.opts.Specs, " ")

	args := []string{
		"make",
		"build-packages",
		"-j", strconv.Itoa(r.opts.Jobs),
		"REBUILD_TOOLS=y",
		fmt.Sprintf("LOG_LEVEL=%s", r.opts.LogLevel),
		fmt.Sprintf("SRPM_PACK_LIST=%s", specs),
		fmt.Sprintf("PACKAGE_REBUILD_LIST=%s", specs),
		"RUN_CHECK=y",
		"DAILY_BUILD_ID=lkg",
	}
	if r.opts.Sudo {
		args = append([]string{"sudo"}, args...)
	}
	return args
}

// Run executes the package test build in the toolkit directory, returning
// the elapsed wall time. A non-zero exit from make is returned as an
// error carrying the exit code.
func (r *Runner) Run(ctx context.Context) (time.Duration, error) {
	args := r.Command()

	if r.opts.DryRun {
		fmt.Fprintln(r.opts.Stdout, strings.Join(args, " "))
		return 0, nil
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = r.opts.ToolkitDir
	cmd.Env = r.opts.Env
	cmd.Stdout = r.opts.Stdout
	cmd.Stderr = r.opts.Stderr

	start := r.opts.Now()
	err := cmd.Run()
	elapsed := r.opts.Now().Sub(start)

	if err != nil {
		return elapsed, fmt.Errorf("build tools invocation failed (exit %d): %w", exitCode(err), err)
	}
	return elapsed, nil
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}
