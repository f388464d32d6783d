package parser

import (
	"testing"

	"github.com/ezhangle/mjs/ast"
)

func parseOrFail(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := New(src)
	program, errs := p.ParseProgram()
	if len(errs) > 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, errs)
	}
	return program
}

func TestParseVariableStatement(t *testing.T) {
	program := parseOrFail(t, "var x = 42;")
	if len(program.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(program.Statements))
	}
	stmt, ok := program.Statements[0].(*ast.VariableStatement)
	if !ok {
		t.Fatalf("expected *ast.VariableStatement, got %T", program.Statements[0])
	}
	if len(stmt.Declarations) != 1 || stmt.Declarations[0].Name.Value != "x" {
		t.Fatalf("unexpected declarations: %+v", stmt.Declarations)
	}
}

func TestOperatorPrecedence(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"a = b = c", "(a = (b = c))"},
		{"a ? b : c ? d : e", "(a ? b : (c ? d : e))"},
		{"a, b, c", "(a, b, c)"},
		{"1 < 2 == true", "((1 < 2) == true)"},
	}
	for _, c := range cases {
		program := parseOrFail(t, c.src+";")
		stmt := program.Statements[0].(*ast.ExpressionStatement)
		got := ast.Print(stmt.Expression)
		if got != c.want {
			t.Errorf("%q: expected %q, got %q", c.src, c.want, got)
		}
	}
}

func TestShortCircuitOperatorsParse(t *testing.T) {
	program := parseOrFail(t, "a && b || c;")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	if ast.Print(stmt.Expression) != "((a && b) || c)" {
		t.Errorf("got %q", ast.Print(stmt.Expression))
	}
}

func TestFunctionDeclarationAndCall(t *testing.T) {
	program := parseOrFail(t, `function sum(a, b) { return a + b; } sum(1, 2);`)
	if len(program.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(program.Statements))
	}
	decl, ok := program.Statements[0].(*ast.FunctionDeclaration)
	if !ok {
		t.Fatalf("expected *ast.FunctionDeclaration, got %T", program.Statements[0])
	}
	if decl.Name.Value != "sum" || len(decl.Params) != 2 {
		t.Fatalf("unexpected function declaration: %+v", decl)
	}
	exprStmt, ok := program.Statements[1].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("expected *ast.ExpressionStatement, got %T", program.Statements[1])
	}
	call, ok := exprStmt.Expression.(*ast.CallExpression)
	if !ok || len(call.Arguments) != 2 {
		t.Fatalf("unexpected call expression: %+v", exprStmt.Expression)
	}
}

func TestForLoopClauses(t *testing.T) {
	program := parseOrFail(t, "for (var i = 0; i < 10; ++i) { i; }")
	forStmt, ok := program.Statements[0].(*ast.ForStatement)
	if !ok {
		t.Fatalf("expected *ast.ForStatement, got %T", program.Statements[0])
	}
	if forStmt.Init == nil || forStmt.Test == nil || forStmt.Update == nil {
		t.Fatalf("expected all three for-clauses to be present: %+v", forStmt)
	}
}

func TestNewWithoutParens(t *testing.T) {
	program := parseOrFail(t, "new Object;")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	newExpr, ok := stmt.Expression.(*ast.NewExpression)
	if !ok {
		t.Fatalf("expected *ast.NewExpression, got %T", stmt.Expression)
	}
	if newExpr.Arguments != nil {
		t.Errorf("expected nil arguments for `new Object;`, got %v", newExpr.Arguments)
	}
}

func TestMemberAndComputedAccess(t *testing.T) {
	program := parseOrFail(t, "o.x = o['y'];")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	assign := stmt.Expression.(*ast.AssignmentExpression)
	left, ok := assign.Left.(*ast.MemberExpression)
	if !ok || left.Computed {
		t.Fatalf("expected dotted member on the left, got %+v", assign.Left)
	}
	right, ok := assign.Right.(*ast.MemberExpression)
	if !ok || !right.Computed {
		t.Fatalf("expected computed member on the right, got %+v", assign.Right)
	}
}

func TestWithStatementParses(t *testing.T) {
	program := parseOrFail(t, "with (o) { x; }")
	if _, ok := program.Statements[0].(*ast.WithStatement); !ok {
		t.Fatalf("expected *ast.WithStatement, got %T", program.Statements[0])
	}
}

func TestDeleteTypeofVoidPrefix(t *testing.T) {
	cases := []struct {
		src string
		op  string
	}{
		{"delete x;", "delete"},
		{"typeof x;", "typeof"},
		{"void x;", "void"},
	}
	for _, c := range cases {
		program := parseOrFail(t, c.src)
		stmt := program.Statements[0].(*ast.ExpressionStatement)
		prefix, ok := stmt.Expression.(*ast.PrefixExpression)
		if !ok || prefix.Operator != c.op {
			t.Errorf("%q: expected prefix %q, got %+v", c.src, c.op, stmt.Expression)
		}
	}
}
