package interpreter

import (
	"github.com/ezhangle/mjs/ast"
	"github.com/ezhangle/mjs/runtime"
)

// evalStatement implements spec.md section 4.6's statement evaluator.
// Blocks, if, while, for, and with never push a new Scope -- this
// dialect has no block scoping, so every statement within a function
// body (or the top level) shares the one activation its enclosing
// call (or the program itself) created.
func (in *Interpreter) evalStatement(stmt ast.Statement, scope *runtime.Scope) (runtime.Completion, error) {
	switch n := stmt.(type) {
	case *ast.VariableStatement:
		for _, d := range n.Declarations {
			if d.Init == nil {
				continue
			}
			v, err := in.evalExpression(d.Init, scope)
			if err != nil {
				return runtime.Completion{}, err
			}
			gv, err := runtime.GetValue(v)
			if err != nil {
				return runtime.Completion{}, err
			}
			scope.Frame.Put(d.Name.Value, gv)
		}
		return runtime.NormalCompletion(runtime.UndefinedValue), nil

	case *ast.EmptyStatement:
		return runtime.NormalCompletion(runtime.UndefinedValue), nil

	case *ast.ExpressionStatement:
		v, err := in.evalExpression(n.Expression, scope)
		if err != nil {
			return runtime.Completion{}, err
		}
		gv, err := runtime.GetValue(v)
		if err != nil {
			return runtime.Completion{}, err
		}
		return runtime.NormalCompletion(gv), nil

	case *ast.BlockStatement:
		return in.evalBlock(n.Statements, scope)

	case *ast.IfStatement:
		tv, err := in.evalExpression(n.Condition, scope)
		if err != nil {
			return runtime.Completion{}, err
		}
		cond, err := runtime.GetValue(tv)
		if err != nil {
			return runtime.Completion{}, err
		}
		if runtime.ToBoolean(cond) {
			return in.evalStatement(n.Consequence, scope)
		}
		if n.Alternative != nil {
			return in.evalStatement(n.Alternative, scope)
		}
		return runtime.NormalCompletion(runtime.UndefinedValue), nil

	case *ast.WhileStatement:
		return in.evalWhile(n, scope)

	case *ast.ForStatement:
		return in.evalFor(n, scope)

	case *ast.BreakStatement:
		return runtime.BreakCompletion(), nil

	case *ast.ContinueStatement:
		return runtime.ContinueCompletion(), nil

	case *ast.ReturnStatement:
		if n.Value == nil {
			return runtime.ReturnCompletion(runtime.UndefinedValue), nil
		}
		v, err := in.evalExpression(n.Value, scope)
		if err != nil {
			return runtime.Completion{}, err
		}
		gv, err := runtime.GetValue(v)
		if err != nil {
			return runtime.Completion{}, err
		}
		return runtime.ReturnCompletion(gv), nil

	case *ast.FunctionDeclaration:
		fnObj := in.newFunctionObject(n.Name.Value, n.Params, n.Body, scope)
		scope.Frame.Put(n.Name.Value, runtime.NewObjectValue(fnObj))
		return runtime.NormalCompletion(runtime.UndefinedValue), nil

	case *ast.WithStatement:
		return runtime.Completion{}, runtime.NewRuntimeError("not implemented: with statement")

	default:
		return runtime.Completion{}, runtime.NewRuntimeError("not implemented: %T", stmt)
	}
}

// evalBlock implements spec.md section 4.6's block composition rule:
// the first non-normal (abrupt) completion wins, otherwise the block
// as a whole is normal(undefined) regardless of what its last
// statement's own completion value was.
func (in *Interpreter) evalBlock(stmts []ast.Statement, scope *runtime.Scope) (runtime.Completion, error) {
	for _, s := range stmts {
		c, err := in.evalStatement(s, scope)
		if err != nil {
			return runtime.Completion{}, err
		}
		if c.IsAbrupt() {
			return c, nil
		}
	}
	return runtime.NormalCompletion(runtime.UndefinedValue), nil
}

func (in *Interpreter) evalWhile(n *ast.WhileStatement, scope *runtime.Scope) (runtime.Completion, error) {
	for {
		tv, err := in.evalExpression(n.Condition, scope)
		if err != nil {
			return runtime.Completion{}, err
		}
		cond, err := runtime.GetValue(tv)
		if err != nil {
			return runtime.Completion{}, err
		}
		if !runtime.ToBoolean(cond) {
			break
		}
		c, err := in.evalStatement(n.Body, scope)
		if err != nil {
			return runtime.Completion{}, err
		}
		switch c.Kind {
		case runtime.Break:
			return runtime.NormalCompletion(runtime.UndefinedValue), nil
		case runtime.Return:
			return c, nil
		}
	}
	return runtime.NormalCompletion(runtime.UndefinedValue), nil
}

// evalFor runs the init clause once, then test/body/update per spec.md
// section 4.6: continue falls through to the update clause before the
// next test, break stops the loop with normal(undefined), and return
// propagates straight out.
func (in *Interpreter) evalFor(n *ast.ForStatement, scope *runtime.Scope) (runtime.Completion, error) {
	if n.Init != nil {
		switch init := n.Init.(type) {
		case *ast.VariableStatement:
			if _, err := in.evalStatement(init, scope); err != nil {
				return runtime.Completion{}, err
			}
		case *ast.ExpressionStatement:
			v, err := in.evalExpression(init.Expression, scope)
			if err != nil {
				return runtime.Completion{}, err
			}
			if _, err := runtime.GetValue(v); err != nil {
				return runtime.Completion{}, err
			}
		}
	}
	for {
		if n.Test != nil {
			tv, err := in.evalExpression(n.Test, scope)
			if err != nil {
				return runtime.Completion{}, err
			}
			cond, err := runtime.GetValue(tv)
			if err != nil {
				return runtime.Completion{}, err
			}
			if !runtime.ToBoolean(cond) {
				break
			}
		}
		c, err := in.evalStatement(n.Body, scope)
		if err != nil {
			return runtime.Completion{}, err
		}
		switch c.Kind {
		case runtime.Break:
			return runtime.NormalCompletion(runtime.UndefinedValue), nil
		case runtime.Return:
			return c, nil
		}
		if n.Update != nil {
			v, err := in.evalExpression(n.Update, scope)
			if err != nil {
				return runtime.Completion{}, err
			}
			if _, err := runtime.GetValue(v); err != nil {
				return runtime.Completion{}, err
			}
		}
	}
	return runtime.NormalCompletion(runtime.UndefinedValue), nil
}
