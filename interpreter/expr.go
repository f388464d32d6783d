package interpreter

import (
	"math"
	"strings"

	"github.com/ezhangle/mjs/ast"
	"github.com/ezhangle/mjs/runtime"
)

// evalExpression implements spec.md section 4.5. It may return a
// reference (from Identifier and MemberExpression) rather than a
// dereferenced value -- callers that need a plain value must pass the
// result through runtime.GetValue themselves, the same way delete,
// typeof, ++/--, and assignment need the raw reference instead.
func (in *Interpreter) evalExpression(expr ast.Expression, scope *runtime.Scope) (*runtime.Value, error) {
	switch n := expr.(type) {
	case *ast.Identifier:
		return scope.Lookup(n.Value), nil

	case *ast.Literal:
		switch n.Kind {
		case ast.NumberLiteral:
			return runtime.NewNumber(n.Number), nil
		case ast.StringLiteral:
			return runtime.NewString(n.Str), nil
		case ast.BooleanLiteral:
			return runtime.NewBoolean(n.Bool), nil
		case ast.NullLiteral:
			return runtime.NullValue, nil
		default:
			return runtime.UndefinedValue, nil
		}

	case *ast.ThisExpression:
		return runtime.GetValue(scope.Lookup("this"))

	case *ast.FunctionExpression:
		name := ""
		if n.Name != nil {
			name = n.Name.Value
		}
		return runtime.NewObjectValue(in.newFunctionObject(name, n.Params, n.Body, scope)), nil

	case *ast.MemberExpression:
		return in.evalMember(n, scope)

	case *ast.CallExpression:
		return in.evalCall(n, scope)

	case *ast.NewExpression:
		return in.evalNew(n, scope)

	case *ast.PrefixExpression:
		return in.evalPrefix(n, scope)

	case *ast.PostfixExpression:
		return in.evalIncDec(n.Operand, scope, n.Operator, false)

	case *ast.BinaryExpression:
		return in.evalBinary(n, scope)

	case *ast.LogicalExpression:
		return in.evalLogical(n, scope)

	case *ast.AssignmentExpression:
		return in.evalAssignment(n, scope)

	case *ast.ConditionalExpression:
		return in.evalConditional(n, scope)

	case *ast.SequenceExpression:
		return in.evalSequence(n, scope)
	}
	return nil, runtime.NewRuntimeError("not implemented: %T", expr)
}

// evalMember implements member access (spec.md section 4.5): the
// object side is coerced via ToObject, which is where accessing a
// property of null or undefined raises TypeError rather than at
// GetValue time.
func (in *Interpreter) evalMember(n *ast.MemberExpression, scope *runtime.Scope) (*runtime.Value, error) {
	bv, err := in.evalExpression(n.Object, scope)
	if err != nil {
		return nil, err
	}
	base, err := runtime.GetValue(bv)
	if err != nil {
		return nil, err
	}
	obj, err := runtime.ToObject(base)
	if err != nil {
		return nil, err
	}
	var name string
	if n.Computed {
		pv, err := in.evalExpression(n.Property, scope)
		if err != nil {
			return nil, err
		}
		pgv, err := runtime.GetValue(pv)
		if err != nil {
			return nil, err
		}
		name, err = runtime.ToString(pgv)
		if err != nil {
			return nil, err
		}
	} else {
		name = n.Property.(*ast.Identifier).Value
	}
	return runtime.NewReference(obj, name), nil
}

// evalCall implements function invocation (spec.md section 4.5): the
// callee's this binding is null when the reference's base is a
// function Activation, the reference's base object otherwise, and
// null for a non-reference callee (e.g. an immediately invoked
// function expression). A callee that is the installed eval function
// (compared by identity, whatever name it is reached through) is
// special-cased to run in the calling scope rather than through the
// generic Call slot. A runtime error coming back out of the callee
// gets this call expression's position appended to its Stack.
func (in *Interpreter) evalCall(n *ast.CallExpression, scope *runtime.Scope) (*runtime.Value, error) {
	calleeRef, err := in.evalExpression(n.Callee, scope)
	if err != nil {
		return nil, err
	}
	fnVal, err := runtime.GetValue(calleeRef)
	if err != nil {
		return nil, err
	}
	if fnVal.Type != runtime.ObjectType || !fnVal.Obj.IsCallable() {
		return nil, runtime.NewTypeError("value is not a function")
	}
	args, err := in.evalArgs(n.Arguments, scope)
	if err != nil {
		return nil, err
	}
	var result *runtime.Value
	if fnVal.Obj == in.evalFn {
		result, err = in.runEval(args, scope)
	} else {
		result, err = fnVal.Obj.Call(callThis(calleeRef), args)
	}
	if rtErr, ok := err.(*runtime.Error); ok && rtErr != nil {
		rtErr.AddFrame(runtime.Frame{Line: n.Token.Line, Column: n.Token.Column})
	}
	return result, err
}

func callThis(calleeRef *runtime.Value) *runtime.Value {
	if calleeRef.Type == runtime.Reference && calleeRef.Ref.Base != nil {
		if calleeRef.Ref.Base.Class == "Activation" {
			return runtime.NullValue
		}
		return runtime.NewObjectValue(calleeRef.Ref.Base)
	}
	return runtime.NullValue
}

// evalNew implements spec.md section 4.5's new expression: the callee
// must evaluate to an object with a construct slot; the this passed
// into [[Construct]] is irrelevant since construct always builds and
// binds its own receiver object (spec.md section 4.8).
func (in *Interpreter) evalNew(n *ast.NewExpression, scope *runtime.Scope) (*runtime.Value, error) {
	cv, err := in.evalExpression(n.Callee, scope)
	if err != nil {
		return nil, err
	}
	fnVal, err := runtime.GetValue(cv)
	if err != nil {
		return nil, err
	}
	if fnVal.Type != runtime.ObjectType || !fnVal.Obj.IsConstructable() {
		return nil, runtime.NewTypeError("value is not a constructor")
	}
	args, err := in.evalArgs(n.Arguments, scope)
	if err != nil {
		return nil, err
	}
	return fnVal.Obj.Construct(runtime.UndefinedValue, args)
}

func (in *Interpreter) evalArgs(exprs []ast.Expression, scope *runtime.Scope) ([]*runtime.Value, error) {
	args := make([]*runtime.Value, 0, len(exprs))
	for _, a := range exprs {
		v, err := in.evalExpression(a, scope)
		if err != nil {
			return nil, err
		}
		gv, err := runtime.GetValue(v)
		if err != nil {
			return nil, err
		}
		args = append(args, gv)
	}
	return args, nil
}

// evalPrefix implements delete, void, typeof, unary +/-, ~, !, and
// prefix ++/-- (spec.md section 4.5). delete and typeof work on the
// raw (possibly reference) operand rather than its dereferenced value.
func (in *Interpreter) evalPrefix(n *ast.PrefixExpression, scope *runtime.Scope) (*runtime.Value, error) {
	switch n.Operator {
	case "delete":
		v, err := in.evalExpression(n.Operand, scope)
		if err != nil {
			return nil, err
		}
		if v.Type != runtime.Reference || v.Ref.Base == nil {
			return runtime.TrueValue, nil
		}
		return runtime.NewBoolean(v.Ref.Base.Delete(v.Ref.Name)), nil

	case "void":
		v, err := in.evalExpression(n.Operand, scope)
		if err != nil {
			return nil, err
		}
		if _, err := runtime.GetValue(v); err != nil {
			return nil, err
		}
		return runtime.UndefinedValue, nil

	case "typeof":
		v, err := in.evalExpression(n.Operand, scope)
		if err != nil {
			return nil, err
		}
		if v.Type == runtime.Reference && v.Ref.Base == nil {
			return runtime.NewString("undefined"), nil
		}
		gv, err := runtime.GetValue(v)
		if err != nil {
			return nil, err
		}
		return runtime.NewString(gv.TypeOf()), nil

	case "++", "--":
		return in.evalIncDec(n.Operand, scope, n.Operator, true)

	case "+":
		gv, err := in.evalUnaryOperand(n.Operand, scope)
		if err != nil {
			return nil, err
		}
		num, err := runtime.ToNumber(gv)
		if err != nil {
			return nil, err
		}
		return runtime.NewNumber(num), nil

	case "-":
		gv, err := in.evalUnaryOperand(n.Operand, scope)
		if err != nil {
			return nil, err
		}
		num, err := runtime.ToNumber(gv)
		if err != nil {
			return nil, err
		}
		return runtime.NewNumber(-num), nil

	case "~":
		gv, err := in.evalUnaryOperand(n.Operand, scope)
		if err != nil {
			return nil, err
		}
		i32, err := runtime.ToInt32(gv)
		if err != nil {
			return nil, err
		}
		return runtime.NewNumber(float64(^i32)), nil

	case "!":
		gv, err := in.evalUnaryOperand(n.Operand, scope)
		if err != nil {
			return nil, err
		}
		return runtime.NewBoolean(!runtime.ToBoolean(gv)), nil
	}
	return nil, runtime.NewRuntimeError("not implemented: prefix operator %q", n.Operator)
}

func (in *Interpreter) evalUnaryOperand(operand ast.Expression, scope *runtime.Scope) (*runtime.Value, error) {
	v, err := in.evalExpression(operand, scope)
	if err != nil {
		return nil, err
	}
	return runtime.GetValue(v)
}

// evalIncDec implements prefix and postfix ++/-- (spec.md section
// 4.5): the operand must evaluate to a reference, since both forms
// write back through it.
func (in *Interpreter) evalIncDec(operand ast.Expression, scope *runtime.Scope, op string, prefix bool) (*runtime.Value, error) {
	ref, err := in.evalExpression(operand, scope)
	if err != nil {
		return nil, err
	}
	if ref.Type != runtime.Reference {
		return nil, runtime.NewReferenceError("invalid assignment target")
	}
	old, err := runtime.GetValue(ref)
	if err != nil {
		return nil, err
	}
	oldNum, err := runtime.ToNumber(old)
	if err != nil {
		return nil, err
	}
	newNum := oldNum + 1
	if op == "--" {
		newNum = oldNum - 1
	}
	if err := runtime.PutValue(ref, runtime.NewNumber(newNum)); err != nil {
		return nil, err
	}
	if prefix {
		return runtime.NewNumber(newNum), nil
	}
	return runtime.NewNumber(oldNum), nil
}

func (in *Interpreter) evalBinary(n *ast.BinaryExpression, scope *runtime.Scope) (*runtime.Value, error) {
	lv, err := in.evalExpression(n.Left, scope)
	if err != nil {
		return nil, err
	}
	l, err := runtime.GetValue(lv)
	if err != nil {
		return nil, err
	}
	rv, err := in.evalExpression(n.Right, scope)
	if err != nil {
		return nil, err
	}
	r, err := runtime.GetValue(rv)
	if err != nil {
		return nil, err
	}
	return applyBinaryOp(n.Operator, l, r)
}

// applyBinaryOp implements spec.md section 4.5's operator table. It is
// also used by evalAssignment for compound assignment operators
// (+=, -=, and so on), which reduce to the plain operator applied to
// the current value and the right-hand side.
func applyBinaryOp(op string, l, r *runtime.Value) (*runtime.Value, error) {
	switch op {
	case "+":
		lp, err := runtime.ToPrimitive(l, "")
		if err != nil {
			return nil, err
		}
		rp, err := runtime.ToPrimitive(r, "")
		if err != nil {
			return nil, err
		}
		if lp.Type == runtime.String || rp.Type == runtime.String {
			ls, err := runtime.ToString(lp)
			if err != nil {
				return nil, err
			}
			rs, err := runtime.ToString(rp)
			if err != nil {
				return nil, err
			}
			return runtime.NewString(ls + rs), nil
		}
		ln, err := runtime.ToNumber(lp)
		if err != nil {
			return nil, err
		}
		rn, err := runtime.ToNumber(rp)
		if err != nil {
			return nil, err
		}
		return runtime.NewNumber(ln + rn), nil

	case "-", "*", "/", "%":
		ln, err := runtime.ToNumber(l)
		if err != nil {
			return nil, err
		}
		rn, err := runtime.ToNumber(r)
		if err != nil {
			return nil, err
		}
		switch op {
		case "-":
			return runtime.NewNumber(ln - rn), nil
		case "*":
			return runtime.NewNumber(ln * rn), nil
		case "/":
			return runtime.NewNumber(ln / rn), nil
		default:
			return runtime.NewNumber(math.Mod(ln, rn)), nil
		}

	case "<<":
		li, err := runtime.ToInt32(l)
		if err != nil {
			return nil, err
		}
		ru, err := runtime.ToUint32(r)
		if err != nil {
			return nil, err
		}
		return runtime.NewNumber(float64(li << (ru & 31))), nil

	case ">>":
		li, err := runtime.ToInt32(l)
		if err != nil {
			return nil, err
		}
		ru, err := runtime.ToUint32(r)
		if err != nil {
			return nil, err
		}
		return runtime.NewNumber(float64(li >> (ru & 31))), nil

	case ">>>":
		lu, err := runtime.ToUint32(l)
		if err != nil {
			return nil, err
		}
		ru, err := runtime.ToUint32(r)
		if err != nil {
			return nil, err
		}
		return runtime.NewNumber(float64(lu >> (ru & 31))), nil

	case "<":
		b, err := runtime.LessThan(l, r)
		return runtime.NewBoolean(b), err
	case "<=":
		b, err := runtime.LessOrEqual(l, r)
		return runtime.NewBoolean(b), err
	case ">":
		b, err := runtime.GreaterThan(l, r)
		return runtime.NewBoolean(b), err
	case ">=":
		b, err := runtime.GreaterOrEqual(l, r)
		return runtime.NewBoolean(b), err
	case "==":
		b, err := runtime.CompareEqual(l, r)
		return runtime.NewBoolean(b), err
	case "!=":
		b, err := runtime.CompareEqual(l, r)
		return runtime.NewBoolean(!b), err

	case "&", "^", "|":
		li, err := runtime.ToInt32(l)
		if err != nil {
			return nil, err
		}
		ri, err := runtime.ToInt32(r)
		if err != nil {
			return nil, err
		}
		switch op {
		case "&":
			return runtime.NewNumber(float64(li & ri)), nil
		case "^":
			return runtime.NewNumber(float64(li ^ ri)), nil
		default:
			return runtime.NewNumber(float64(li | ri)), nil
		}
	}
	return nil, runtime.NewRuntimeError("not implemented: binary operator %q", op)
}

// evalLogical implements && and || (spec.md section 4.5): short-circuit
// on the left operand's truthiness, returning it as-is (not coerced to
// boolean) when it decides the result; otherwise the right operand's
// dereferenced value is the result.
func (in *Interpreter) evalLogical(n *ast.LogicalExpression, scope *runtime.Scope) (*runtime.Value, error) {
	lv, err := in.evalExpression(n.Left, scope)
	if err != nil {
		return nil, err
	}
	l, err := runtime.GetValue(lv)
	if err != nil {
		return nil, err
	}
	truthy := runtime.ToBoolean(l)
	if (n.Operator == "&&" && !truthy) || (n.Operator == "||" && truthy) {
		return l, nil
	}
	rv, err := in.evalExpression(n.Right, scope)
	if err != nil {
		return nil, err
	}
	return runtime.GetValue(rv)
}

// evalAssignment implements = and the compound assignment operators
// (spec.md section 4.5): the left side must evaluate to a reference.
func (in *Interpreter) evalAssignment(n *ast.AssignmentExpression, scope *runtime.Scope) (*runtime.Value, error) {
	ref, err := in.evalExpression(n.Left, scope)
	if err != nil {
		return nil, err
	}
	if ref.Type != runtime.Reference {
		return nil, runtime.NewReferenceError("invalid assignment target")
	}
	if n.Operator == "=" {
		rv, err := in.evalExpression(n.Right, scope)
		if err != nil {
			return nil, err
		}
		val, err := runtime.GetValue(rv)
		if err != nil {
			return nil, err
		}
		if err := runtime.PutValue(ref, val); err != nil {
			return nil, err
		}
		return val, nil
	}
	old, err := runtime.GetValue(ref)
	if err != nil {
		return nil, err
	}
	rv, err := in.evalExpression(n.Right, scope)
	if err != nil {
		return nil, err
	}
	rval, err := runtime.GetValue(rv)
	if err != nil {
		return nil, err
	}
	newVal, err := applyBinaryOp(strings.TrimSuffix(n.Operator, "="), old, rval)
	if err != nil {
		return nil, err
	}
	if err := runtime.PutValue(ref, newVal); err != nil {
		return nil, err
	}
	return newVal, nil
}

func (in *Interpreter) evalConditional(n *ast.ConditionalExpression, scope *runtime.Scope) (*runtime.Value, error) {
	tv, err := in.evalExpression(n.Test, scope)
	if err != nil {
		return nil, err
	}
	t, err := runtime.GetValue(tv)
	if err != nil {
		return nil, err
	}
	branch := n.Alternate
	if runtime.ToBoolean(t) {
		branch = n.Consequent
	}
	v, err := in.evalExpression(branch, scope)
	if err != nil {
		return nil, err
	}
	return runtime.GetValue(v)
}

func (in *Interpreter) evalSequence(n *ast.SequenceExpression, scope *runtime.Scope) (*runtime.Value, error) {
	last := runtime.UndefinedValue
	for _, e := range n.Expressions {
		v, err := in.evalExpression(e, scope)
		if err != nil {
			return nil, err
		}
		gv, err := runtime.GetValue(v)
		if err != nil {
			return nil, err
		}
		last = gv
	}
	return last, nil
}
