package interpreter

import (
	"github.com/ezhangle/mjs/ast"
	"github.com/ezhangle/mjs/runtime"
)

// HoistInto implements spec.md section 4.7: before any statement in a
// block runs, every var name and function declaration name found
// anywhere within it -- without descending into nested function
// bodies -- gets a property on activation, defaulting to undefined if
// not already present.
func HoistInto(activation *runtime.Object, stmts []ast.Statement) {
	for _, name := range hoistedNames(stmts) {
		if !activation.HasOwnProperty(name) {
			activation.DefineOwnProperty(name, runtime.UndefinedValue, 0)
		}
	}
}

// hoistedNames walks stmts recursively through the statement forms
// that can nest another statement -- block, if, while, for, with --
// collecting every var declarator name and function declaration name
// in first-occurrence order. It never looks inside a FunctionDeclaration's
// or FunctionExpression's own body: that function hoists its own
// locals when it is called, not when its enclosing block is hoisted.
func hoistedNames(stmts []ast.Statement) []string {
	var names []string
	seen := make(map[string]bool)
	add := func(n string) {
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	var walk func(ast.Statement)
	walk = func(s ast.Statement) {
		switch n := s.(type) {
		case *ast.VariableStatement:
			for _, d := range n.Declarations {
				add(d.Name.Value)
			}
		case *ast.BlockStatement:
			for _, st := range n.Statements {
				walk(st)
			}
		case *ast.IfStatement:
			walk(n.Consequence)
			if n.Alternative != nil {
				walk(n.Alternative)
			}
		case *ast.WhileStatement:
			walk(n.Body)
		case *ast.ForStatement:
			if vs, ok := n.Init.(*ast.VariableStatement); ok {
				walk(vs)
			}
			walk(n.Body)
		case *ast.WithStatement:
			walk(n.Body)
		case *ast.FunctionDeclaration:
			add(n.Name.Value)
		}
	}
	for _, s := range stmts {
		walk(s)
	}
	return names
}
