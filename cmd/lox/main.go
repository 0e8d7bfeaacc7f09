// Command lox is the scanner/parser/evaluator CLI: run a script file,
// or drop into a REPL when invoked with no file argument.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	gommonbytes "github.com/labstack/gommon/bytes"
	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"

	"lox/internal"
)

func main() {
	trace := flag.Bool("trace", false, "emit structured trace logging to stderr")
	progname := filepath.Base(os.Args[0])
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [script]\n", progname)
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(64)
	}

	logger := internal.NewTraceLogger(os.Stderr, *trace)
	session := internal.NewSession(os.Stdout, os.Stderr, logger)

	if flag.NArg() == 1 {
		runFile(session, logger, flag.Arg(0))
		return
	}

	runPrompt(session)
}

func runFile(session *internal.Session, logger *logrus.Logger, path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(64)
	}

	logger.WithField("size", gommonbytes.Format(int64(len(source)))).Debug("read source file")

	session.Run(string(source))

	if session.HadCompileError() {
		os.Exit(65)
	}
	if session.HadRuntimeError() {
		os.Exit(70)
	}
}

// runPrompt is a line-at-a-time REPL. Each line runs as its own Run
// call against the session's persistent global environment, so a var
// declared on one line is visible on the next. The REPL always exits
// 0, even after a compile or runtime error on some earlier line.
func runPrompt(session *internal.Session) {
	fmt.Println(color.Cyan("Lox interactive — Ctrl+D to exit"))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		session.Run(scanner.Text())
	}
}
