package logging

import (
	"github.com/sirupsen/logrus"
)

// Logger is the capability handlers and storage collaborators log through.
type Logger interface {
	Info(message string)
	Warning(message string)
}

// Wrap adapts a logrus entry to the Logger capability. Use entries with
// fields to tag everything logged through the returned Logger, e.g. with a
// request id.
func Wrap(entry *logrus.Entry) Logger {
	return &logrusLogger{entry: entry}
}

type logrusLogger struct {
	entry *logrus.Entry
}

func (l *logrusLogger) Info(message string) {
	l.entry.Info(message)
}

func (l *logrusLogger) Warning(message string) {
	l.entry.Warning(message)
}
