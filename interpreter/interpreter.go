// Package interpreter implements the tree-walking evaluator spec.md
// section 4 describes: expression evaluation (section 4.5), statement
// evaluation (section 4.6), hoisting (section 4.7), and function
// activation and closures (section 4.8), all driven directly off the
// ast package's nodes with no intermediate bytecode.
package interpreter

import (
	"github.com/ezhangle/mjs/ast"
	"github.com/ezhangle/mjs/builtins"
	"github.com/ezhangle/mjs/parser"
	"github.com/ezhangle/mjs/runtime"
)

// Interpreter owns the global object and the top-level scope built on
// it. One Interpreter corresponds to one program's worth of global
// state; eval (section 4.9) and Function(...) both reuse it rather
// than spinning up a second global object.
type Interpreter struct {
	Global *runtime.Object
	scope  *runtime.Scope
	protos builtins.Prototypes
	evalFn *runtime.Object
}

// New allocates a fresh global object, installs the built-in Object,
// Function, Boolean, and Number constructors and the handful of
// global functions spec.md section 4.9 names, and wires up eval and
// Function's source-compiling behavior, both of which need access to
// the parser and evaluator and so cannot live in package builtins
// without an import cycle.
func New() *Interpreter {
	global := runtime.NewObject("Global", nil)
	in := &Interpreter{Global: global, scope: runtime.NewScope(global, nil)}

	in.protos = builtins.Install(global, builtins.Hooks{
		CompileFunction: in.compileFunction,
	})
	global.Prototype = in.protos.Object

	global.DefineOwnProperty("this", runtime.NewObjectValue(global), runtime.ReadOnly|runtime.DontEnum|runtime.DontDelete)

	in.installEval()
	return in
}

// installEval registers the eval global (spec.md section 4.9). Its
// Call slot runs in the top-level scope only. evalCall recognises the
// eval function by identity, so every call expression that reaches it
// -- "eval(...)" or a stored alias such as "var e = eval; e(...)" --
// runs in the scope the call expression was evaluated in instead; the
// Call slot is used only when Go code invokes eval directly (for
// example ToPrimitive calling it as an object's valueOf).
func (in *Interpreter) installEval() {
	fn := runtime.NewObject("Function", in.protos.Function)
	fn.Call = func(this *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
		return in.runEval(args, in.scope)
	}
	fn.DefineOwnProperty("length", runtime.NewNumber(1), runtime.ReadOnly|runtime.DontEnum|runtime.DontDelete)
	in.evalFn = fn
	in.Global.DefineOwnProperty("eval", runtime.NewObjectValue(fn), runtime.DontEnum)
}

// runEval implements spec.md section 4.9's eval(v): non-strings pass
// through unchanged; otherwise v is parsed as a program and its
// statements run in scope, yielding the last statement's normal
// completion value (or undefined for an empty or all-declarations
// program).
func (in *Interpreter) runEval(args []*runtime.Value, scope *runtime.Scope) (*runtime.Value, error) {
	if len(args) == 0 {
		return runtime.UndefinedValue, nil
	}
	v := args[0]
	if v.Type != runtime.String {
		return v, nil
	}
	p := parser.New(v.S)
	program, errs := p.ParseProgram()
	if len(errs) > 0 {
		return nil, runtime.NewRuntimeError("eval: %v", errs[0])
	}
	HoistInto(scope.Frame, program.Statements)
	result := runtime.UndefinedValue
	for _, stmt := range program.Statements {
		c, err := in.evalStatement(stmt, scope)
		if err != nil {
			return nil, err
		}
		if c.IsAbrupt() {
			return c.Value, nil
		}
		result = c.Value
	}
	return result, nil
}

// compileFunction backs the Function(...) constructor (spec.md section
// 4.9): the last argument is the body source, the rest are parameter
// names, and the resulting function closes over the global scope only
// -- it has no access to whatever scope Function(...) was called from.
func (in *Interpreter) compileFunction(params []string, body string) (*runtime.Object, error) {
	src := "function anonymous(" + joinParams(params) + ") {" + body + "}"
	p := parser.New(src)
	program, errs := p.ParseProgram()
	if len(errs) > 0 {
		return nil, runtime.NewRuntimeError("Function: %v", errs[0])
	}
	if len(program.Statements) != 1 {
		return nil, runtime.NewRuntimeError("Function: invalid function body")
	}
	decl, ok := program.Statements[0].(*ast.FunctionDeclaration)
	if !ok {
		return nil, runtime.NewRuntimeError("Function: invalid function body")
	}
	return in.newFunctionObject(decl.Name.Value, decl.Params, decl.Body, in.scope), nil
}

func joinParams(params []string) string {
	out := ""
	for i, p := range params {
		if i > 0 {
			out += ","
		}
		out += p
	}
	return out
}

// HoistProgram runs spec.md section 4.7's hoisting pass over a
// program's top-level statements against the global object.
func (in *Interpreter) HoistProgram(stmts []ast.Statement) {
	HoistInto(in.Global, stmts)
}

// EvaluateStatement evaluates one top-level statement in the global
// scope, returning its completion. The driver package iterates a
// program's statements one at a time through this so it can invoke a
// per-statement trace hook between them.
func (in *Interpreter) EvaluateStatement(stmt ast.Statement) (runtime.Completion, error) {
	return in.evalStatement(stmt, in.scope)
}

// EvaluateExpression evaluates expr in the global scope and
// dereferences the result, for callers (tests, a future REPL) that
// just want a value rather than a full statement completion.
func (in *Interpreter) EvaluateExpression(expr ast.Expression) (*runtime.Value, error) {
	v, err := in.evalExpression(expr, in.scope)
	if err != nil {
		return nil, err
	}
	return runtime.GetValue(v)
}

func argAt(args []*runtime.Value, i int) *runtime.Value {
	if i < len(args) {
		return args[i]
	}
	return runtime.UndefinedValue
}
