package internal

// expr is the sum type of expression AST nodes. Each variant implements
// accept, dispatching to the matching exprVisitor method — the
// tagged-union substitute for the teacher's polymorphic-class visitor.
type expr interface {
	accept(exprVisitor) interface{}
}

type exprVisitor interface {
	visitLiteralExpr(e *literalExpr) interface{}
	visitGroupingExpr(e *groupingExpr) interface{}
	visitUnaryExpr(e *unaryExpr) interface{}
	visitBinaryExpr(e *binaryExpr) interface{}
	visitLogicalExpr(e *logicalExpr) interface{}
	visitCommaExpr(e *commaExpr) interface{}
	visitConditionalExpr(e *conditionalExpr) interface{}
	visitVariableExpr(e *variableExpr) interface{}
	visitAssignExpr(e *assignExpr) interface{}
}

type literalExpr struct {
	value interface{}
}

func (e *literalExpr) accept(v exprVisitor) interface{} { return v.visitLiteralExpr(e) }

type groupingExpr struct {
	inner expr
}

func (e *groupingExpr) accept(v exprVisitor) interface{} { return v.visitGroupingExpr(e) }

type unaryExpr struct {
	operator *token
	right    expr
}

func (e *unaryExpr) accept(v exprVisitor) interface{} { return v.visitUnaryExpr(e) }

type binaryExpr struct {
	left     expr
	operator *token
	right    expr
}

func (e *binaryExpr) accept(v exprVisitor) interface{} { return v.visitBinaryExpr(e) }

// logicalExpr is distinct from binaryExpr because and/or short-circuit.
type logicalExpr struct {
	left     expr
	operator *token
	right    expr
}

func (e *logicalExpr) accept(v exprVisitor) interface{} { return v.visitLogicalExpr(e) }

type commaExpr struct {
	left     expr
	operator *token
	right    expr
}

func (e *commaExpr) accept(v exprVisitor) interface{} { return v.visitCommaExpr(e) }

type conditionalExpr struct {
	condition  expr
	thenBranch expr
	elseBranch expr
}

func (e *conditionalExpr) accept(v exprVisitor) interface{} { return v.visitConditionalExpr(e) }

type variableExpr struct {
	name *token
}

func (e *variableExpr) accept(v exprVisitor) interface{} { return v.visitVariableExpr(e) }

type assignExpr struct {
	name  *token
	value expr
}

func (e *assignExpr) accept(v exprVisitor) interface{} { return v.visitAssignExpr(e) }
