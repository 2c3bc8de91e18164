// Package logger provides the logging facade shared by the ptest commands.
// Two implementations exist: one emitting Azure DevOps pipeline directives
// and one backed by logrus for plain terminal use.
package logger

// Logger is the capability surface the analysis code logs through. Group
// and progress calls map to pipeline UI affordances where the backend
// supports them and are no-ops otherwise.
type Logger interface {
	Log(msg string)
	Logf(format string, args ...any)
	Debug(msg string)
	Debugf(format string, args ...any)
	GroupBegin(name string)
	GroupEnd()
	Progress(percentage int)
}

const (
	// KindADO selects the Azure DevOps pipeline logger.
	KindADO = "ado"
	// KindStd selects the logrus-backed logger.
	KindStd = "std"
)
