package internal

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// diagnostics is the process's error-reporting sink. It exposes two
// sticky flags, hadCompileError and hadRuntimeError, set respectively
// by the scanner/parser and by the evaluator, and owns the exact wire
// format of every compile and runtime diagnostic. It is carried as a
// field of Interpreter rather than a package-level variable, but a
// REPL keeps exactly one Interpreter alive for the whole session, so
// in effect it behaves like the process-wide state spec.md describes.
type diagnostics struct {
	out io.Writer
	err io.Writer

	hadCompileError bool
	hadRuntimeError bool

	trace *logrus.Logger
}

func newDiagnostics(out, errw io.Writer, trace *logrus.Logger) *diagnostics {
	return &diagnostics{out: out, err: errw, trace: trace}
}

// reportCompile writes a scan or parse error in the exact form
// "[line <n>] Error<where>: <message>" and sets hadCompileError.
func (d *diagnostics) reportCompile(line int, where, message string) {
	fmt.Fprintf(d.err, "[line %d] Error%s: %s\n", line, where, message)
	d.hadCompileError = true
	if d.trace != nil {
		d.trace.WithFields(logrus.Fields{"line": line, "where": where}).Debug(message)
	}
}

// reportCompileAt reports a parse error located at a token: " at end"
// when the token is EOF, " at '<lexeme>'" otherwise.
func (d *diagnostics) reportCompileAt(tok *token, message string) {
	where := fmt.Sprintf(" at '%s'", tok.lexeme)
	if tok.kind == tkEOF {
		where = " at end"
	}
	d.reportCompile(tok.line, where, message)
}

// reportRuntime writes a runtime error in the exact form
// "<message>\n[line <n>]" and sets hadRuntimeError.
func (d *diagnostics) reportRuntime(tok *token, message string) {
	fmt.Fprintf(d.err, "%s\n[line %d]\n", message, tok.line)
	d.hadRuntimeError = true
	if d.trace != nil {
		d.trace.WithFields(logrus.Fields{"line": tok.line}).Debug(message)
	}
}

func (d *diagnostics) resetCompileError() {
	d.hadCompileError = false
}

func (d *diagnostics) resetRuntimeError() {
	d.hadRuntimeError = false
}
