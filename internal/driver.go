package internal

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Session is one interpreter lifetime: a single Interpreter and
// diagnostics sink shared across every Run call. A file run calls Run
// once; a REPL calls it once per line so that var bindings in the
// shared globals environment persist across lines.
type Session struct {
	diag   *diagnostics
	interp *Interpreter
}

// NewSession wires up a diagnostics sink writing compile/runtime
// diagnostics to errw and print output to out. trace may be nil, in
// which case no structured tracing is emitted.
func NewSession(out, errw io.Writer, trace *logrus.Logger) *Session {
	diag := newDiagnostics(out, errw, trace)
	return &Session{diag: diag, interp: newInterpreter(diag)}
}

// Run scans, parses, and — absent a compile error — evaluates source.
// It resets both sticky error flags first, so each call's outcome
// reflects only that call's source.
func (s *Session) Run(source string) {
	s.diag.resetCompileError()
	s.diag.resetRuntimeError()

	tokens := newScanner(source, s.diag).scanTokens()
	if s.diag.trace != nil {
		s.diag.trace.WithField("tokens", len(tokens)).Debug("scan complete")
	}

	statements := newParser(tokens, s.diag).parse()
	if s.diag.trace != nil {
		s.diag.trace.WithField("stmts", len(statements)).Debug("parse complete")
	}

	if s.diag.hadCompileError {
		return
	}

	s.interp.Interpret(statements)
}

func (s *Session) HadCompileError() bool { return s.diag.hadCompileError }
func (s *Session) HadRuntimeError() bool { return s.diag.hadRuntimeError }
