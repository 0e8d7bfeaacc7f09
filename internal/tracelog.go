package internal

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewTraceLogger builds the logger threaded through a Session's
// diagnostics sink. Disabled by default (level set so nothing is ever
// emitted), so that without -trace it has zero effect on the process's
// stdout/stderr; passing enabled=true raises it to Debug against w with
// a plain text formatter, the only place structured tracing is ever
// turned on.
func NewTraceLogger(w io.Writer, enabled bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)

	if !enabled {
		logger.SetLevel(logrus.PanicLevel)
		return logger
	}

	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: false})
	return logger
}
