package internal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kr/pretty"
)

func parseExpr(t *testing.T, source string) expr {
	t.Helper()
	var out, errw bytes.Buffer
	diag := newDiagnostics(&out, &errw, nil)
	tokens := newScanner(source+";", diag).scanTokens()
	statements := newParser(tokens, diag).parse()
	if diag.hadCompileError {
		t.Fatalf("unexpected compile error parsing %q: %s", source, errw.String())
	}
	if len(statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(statements))
	}
	es, ok := statements[0].(*expressionStmt)
	if !ok {
		t.Fatalf("statement is %T, want *expressionStmt", statements[0])
	}
	return es.expression
}

func TestPrecedenceAdditionAndMultiplication(t *testing.T) {
	e := parseExpr(t, `1 + 2 * 3`)
	printer := &astPrinter{}
	got := printer.print(e)
	want := "(1 + (2 * 3))"
	if got != want {
		t.Errorf("print = %q, want %q", got, want)
	}
}

func TestAssignmentIsRightAssociative(t *testing.T) {
	e := parseExpr(t, `a = b = c`)
	printer := &astPrinter{}
	got := printer.print(e)
	want := "(a = (b = c))"
	if got != want {
		t.Errorf("print = %q, want %q", got, want)
	}
}

func TestUnaryBindsTighterThanMultiplication(t *testing.T) {
	e := parseExpr(t, `-x * y`)
	printer := &astPrinter{}
	got := printer.print(e)
	want := "((-x) * y)"
	if got != want {
		t.Errorf("print = %q, want %q", got, want)
	}
}

func TestTernaryIsBetweenAssignmentAndLogicOr(t *testing.T) {
	e := parseExpr(t, `a ? b : c`)
	printer := &astPrinter{}
	got := printer.print(e)
	want := "(a ? b : c)"
	if got != want {
		t.Errorf("print = %q, want %q", got, want)
	}
}

// TestRoundTrip covers the printer round-trip law. A single print pass
// introduces explicit grouping around every operator node (so that the
// printed text is valid, re-parseable source), which a second pass
// cannot add to again — reparsed is one print pass past the original
// and reparsedAgain two, so they must be structurally identical, not
// just textually equal.
func TestRoundTrip(t *testing.T) {
	sources := []string{
		`1 + 2 * 3`,
		`a = b = c`,
		`-x * y`,
		`a ? b : c`,
		`1 < 2 and 3 > 4 or false`,
		`(1 + 2) * 3`,
		`1, 2, 3`,
	}

	printer := &astPrinter{}
	for _, src := range sources {
		first := printer.print(parseExpr(t, src))
		reparsed := parseExpr(t, first)
		second := printer.print(reparsed)
		reparsedAgain := parseExpr(t, second)

		if diff := pretty.Diff(reparsed, reparsedAgain); len(diff) > 0 {
			t.Errorf("round-trip AST mismatch for %q:\n%s", src, strings.Join(diff, "\n"))
		}
	}
}

func TestDanglingBinaryOperatorReportsAndRecovers(t *testing.T) {
	var out, errw bytes.Buffer
	diag := newDiagnostics(&out, &errw, nil)
	tokens := newScanner(`print * 2;`, diag).scanTokens()
	newParser(tokens, diag).parse()

	if !diag.hadCompileError {
		t.Fatal("expected compile error")
	}
	want := "[line 1] Error at '*': Expect left-hand operand.\n"
	if errw.String() != want {
		t.Errorf("stderr = %q, want %q", errw.String(), want)
	}
}

func TestInvalidAssignmentTargetDoesNotAbortParsing(t *testing.T) {
	var out, errw bytes.Buffer
	diag := newDiagnostics(&out, &errw, nil)
	tokens := newScanner(`1 = 2;`, diag).scanTokens()
	statements := newParser(tokens, diag).parse()

	if !diag.hadCompileError {
		t.Fatal("expected compile error")
	}
	if len(statements) != 1 {
		t.Fatalf("got %d statements, want 1 (parsing must continue)", len(statements))
	}
}
