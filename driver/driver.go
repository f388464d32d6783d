// Package driver wires the lexer/parser/interpreter pipeline together
// into the parse-then-evaluate entry point spec.md section 9 expects a
// host to provide: feed it source text, get back the last statement's
// value or the error that stopped execution. cmd/mjs is the only
// caller; the package exists so that caller and a future REPL or test
// harness don't each reimplement the same parse/hoist/run sequence.
package driver

import (
	"fmt"

	"github.com/ezhangle/mjs/ast"
	"github.com/ezhangle/mjs/interpreter"
	"github.com/ezhangle/mjs/parser"
	"github.com/ezhangle/mjs/runtime"
)

// Trace is invoked after every top-level statement runs, generalizing
// the teacher's REPL pass/fail echo (testrunner/runner.go in the
// original tree) into a hook any caller can install instead of a
// hardcoded print. cmd/mjs's -trace flag wires one that prints the
// source form and the resulting completion.
type Trace func(stmt ast.Statement, c runtime.Completion)

// Run parses source as a full program and evaluates its statements in
// order against a fresh Interpreter, returning the value of the last
// statement whose completion was normal. A top-level abrupt completion
// (a stray break, continue, or return) does not stop the program: its
// value is skipped and the next statement runs. eval(v) differs there,
// stopping at the first abrupt completion and returning its value. If
// trace is non-nil it is called after each statement, abrupt or not.
func Run(source string, trace Trace) (*runtime.Value, error) {
	program, err := Parse(source)
	if err != nil {
		return nil, err
	}

	in := interpreter.New()
	in.HoistProgram(program.Statements)

	result := runtime.UndefinedValue
	for _, stmt := range program.Statements {
		c, err := in.EvaluateStatement(stmt)
		if err != nil {
			return nil, err
		}
		if trace != nil {
			trace(stmt, c)
		}
		if !c.IsAbrupt() {
			result = c.Value
		}
	}
	return result, nil
}

// Parse runs the lexer/parser pipeline alone, for callers that only
// want the AST (cmd/mjs's -ast flag).
func Parse(source string) (*ast.Program, error) {
	p := parser.New(source)
	program, errs := p.ParseProgram()
	if len(errs) > 0 {
		return nil, fmt.Errorf("%d parse error(s), first: %w", len(errs), errs[0])
	}
	return program, nil
}
