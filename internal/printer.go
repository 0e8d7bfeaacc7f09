package internal

import "strconv"

// astPrinter renders an expression tree back into valid, fully
// parenthesized source text — e.g. "(1 + (2 * 3))" — rather than a
// debug-only notation. Parsing its output with the same parser and
// re-printing the result reproduces the identical text, so parsing that
// text again yields a structurally equal AST, which is the round-trip
// property spec.md requires of the printer.
type astPrinter struct{}

func (p *astPrinter) print(e expr) string {
	return e.accept(p).(string)
}

func (p *astPrinter) visitLiteralExpr(e *literalExpr) interface{} {
	switch v := e.value.(type) {
	case nil:
		return "nil"
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return "\"" + v + "\""
	}
	return "nil"
}

// visitGroupingExpr prints transparently: every operator node below
// already parenthesizes itself, so adding another layer here would
// make re-parsing wrap it in a fresh groupingExpr on every pass and
// the printed text would grow without ever reaching a fixpoint.
func (p *astPrinter) visitGroupingExpr(e *groupingExpr) interface{} {
	return p.print(e.inner)
}

func (p *astPrinter) visitUnaryExpr(e *unaryExpr) interface{} {
	return "(" + e.operator.lexeme + p.print(e.right) + ")"
}

func (p *astPrinter) visitBinaryExpr(e *binaryExpr) interface{} {
	return p.infix(e.left, e.operator, e.right)
}

func (p *astPrinter) visitLogicalExpr(e *logicalExpr) interface{} {
	return p.infix(e.left, e.operator, e.right)
}

func (p *astPrinter) visitCommaExpr(e *commaExpr) interface{} {
	return p.infix(e.left, e.operator, e.right)
}

func (p *astPrinter) visitConditionalExpr(e *conditionalExpr) interface{} {
	return "(" + p.print(e.condition) + " ? " + p.print(e.thenBranch) + " : " + p.print(e.elseBranch) + ")"
}

func (p *astPrinter) visitVariableExpr(e *variableExpr) interface{} {
	return e.name.lexeme
}

func (p *astPrinter) visitAssignExpr(e *assignExpr) interface{} {
	return "(" + e.name.lexeme + " = " + p.print(e.value) + ")"
}

func (p *astPrinter) infix(left expr, operator *token, right expr) string {
	return "(" + p.print(left) + " " + operator.lexeme + " " + p.print(right) + ")"
}
