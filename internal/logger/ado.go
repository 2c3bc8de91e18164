package logger

import (
	"fmt"
	"io"
)

// ADOLogger renders log output as Azure DevOps pipeline logging commands so
// that groups collapse and progress shows up in the pipeline UI.
type ADOLogger struct {
	out   io.Writer
	scope string
}

// NewADO creates an ADOLogger writing to out. Scope labels debug lines so
// they can be traced back to the emitting tool.
func NewADO(out io.Writer, scope string) *ADOLogger {
	if scope == "" {
		scope = "PACKAGE_TESTS"
	}
	return &ADOLogger{out: out, scope: scope}
}

// Log writes a plain message line.
func (a *ADOLogger) Log(msg string) {
	fmt.Fprintln(a.out, msg)
}

// Logf writes a formatted message line.
func (a *ADOLogger) Logf(format string, args ...any) {
	a.Log(fmt.Sprintf(format, args...))
}

// Debug writes a debug line using the ##[debug] directive.
func (a *ADOLogger) Debug(msg string) {
	fmt.Fprintf(a.out, "##[debug]%s::%s\n", a.scope, msg)
}

// Debugf writes a formatted debug line.
func (a *ADOLogger) Debugf(format string, args ...any) {
	a.Debug(fmt.Sprintf(format, args...))
}

// GroupBegin opens a collapsible log group.
func (a *ADOLogger) GroupBegin(name string) {
	fmt.Fprintf(a.out, "##[group]%s\n", name)
}

// GroupEnd closes the current log group.
func (a *ADOLogger) GroupEnd() {
	fmt.Fprintln(a.out, "##[endgroup]")
}

// Progress updates the task progress indicator.
func (a *ADOLogger) Progress(percentage int) {
	fmt.Fprintf(a.out, "##vso[task.setprogress value=%d;]Log parsing progress\n", percentage)
}
