package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

// StdLogger is the default logger for interactive use, backed by logrus.
// Group and progress directives have no terminal equivalent and are dropped.
type StdLogger struct {
	log *logrus.Logger
}

// NewStd creates a StdLogger writing to out. Verbose enables debug lines.
func NewStd(out io.Writer, verbose bool) *StdLogger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
	return &StdLogger{log: log}
}

// Log writes a message at info level.
func (s *StdLogger) Log(msg string) {
	s.log.Info(msg)
}

// Logf writes a formatted message at info level.
func (s *StdLogger) Logf(format string, args ...any) {
	s.log.Infof(format, args...)
}

// Debug writes a message at debug level.
func (s *StdLogger) Debug(msg string) {
	s.log.Debug(msg)
}

// Debugf writes a formatted message at debug level.
func (s *StdLogger) Debugf(format string, args ...any) {
	s.log.Debugf(format, args...)
}

// GroupBegin is a no-op for terminal output.
func (s *StdLogger) GroupBegin(string) {}

// GroupEnd is a no-op for terminal output.
func (s *StdLogger) GroupEnd() {}

// Progress is a no-op for terminal output.
func (s *StdLogger) Progress(int) {}
