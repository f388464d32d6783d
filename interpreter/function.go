package interpreter

import (
	"strconv"

	"github.com/ezhangle/mjs/ast"
	"github.com/ezhangle/mjs/runtime"
)

// userFunction closes over the scope active when its FunctionDeclaration
// or FunctionExpression was evaluated (spec.md section 4.8): calling it
// later resumes that scope chain, plus a fresh activation frame, no
// matter where the call expression itself appears.
type userFunction struct {
	name    string
	params  []*ast.Identifier
	body    *ast.BlockStatement
	closure *runtime.Scope
	in      *Interpreter
	fnObj   *runtime.Object
}

// newFunctionObject builds the callable/constructable object backing a
// function declaration or expression. Every function gets its own
// prototype object (for "new"), a DontDelete own "prototype" property
// pointing at it, and a ReadOnly "length" matching its declared arity,
// mirroring the shape spec.md section 4.8 describes.
func (in *Interpreter) newFunctionObject(name string, params []*ast.Identifier, body *ast.BlockStatement, closure *runtime.Scope) *runtime.Object {
	class := name
	if class == "" {
		class = "Function"
	}
	fnObj := runtime.NewObject(class, in.protos.Function)
	uf := &userFunction{name: name, params: params, body: body, closure: closure, in: in}
	fnObj.Call = uf.call
	fnObj.Construct = uf.construct
	uf.fnObj = fnObj

	proto := runtime.NewObject("Object", in.protos.Object)
	proto.DefineOwnProperty("constructor", runtime.NewObjectValue(fnObj), runtime.DontEnum)
	fnObj.DefineOwnProperty("prototype", runtime.NewObjectValue(proto), runtime.DontDelete)
	fnObj.DefineOwnProperty("length", runtime.NewNumber(float64(len(params))), runtime.ReadOnly|runtime.DontEnum|runtime.DontDelete)
	fnObj.DefineOwnProperty("name", runtime.NewString(name), runtime.ReadOnly|runtime.DontEnum|runtime.DontDelete)
	return fnObj
}

// call implements spec.md section 4.8's activation algorithm: a fresh
// Activation object holds this, arguments, and the parameters, chained
// in front of the closure scope (not the caller's scope), then the
// body -- a block -- runs against it. A block's own normal completion
// always carries undefined, so the function's result is undefined
// unless the body hit an explicit return.
func (uf *userFunction) call(this *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
	activation := runtime.NewObject("Activation", nil)
	activation.DefineOwnProperty("this", this, runtime.ReadOnly|runtime.DontEnum|runtime.DontDelete)
	activation.DefineOwnProperty("arguments", runtime.NewObjectValue(uf.in.makeArguments(args, uf.fnObj)), runtime.DontDelete)
	for i, p := range uf.params {
		activation.DefineOwnProperty(p.Value, argAt(args, i), 0)
	}

	callScope := runtime.NewScope(activation, uf.closure)
	HoistInto(activation, uf.body.Statements)

	completion, err := uf.in.evalBlock(uf.body.Statements, callScope)
	if err != nil {
		return nil, err
	}
	if completion.Kind == runtime.Return {
		return completion.Value, nil
	}
	return runtime.UndefinedValue, nil
}

// construct implements [[Construct]] (spec.md section 4.8): a new
// plain object is created, linked to the function's own "prototype"
// property (or Object.prototype if that property was overwritten with
// a non-object), and passed as this to call; an object return value
// from the body replaces it, a primitive return value is discarded.
func (uf *userFunction) construct(_ *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
	proto := uf.in.protos.Object
	if p := uf.fnObj.Get("prototype"); p.Type == runtime.ObjectType {
		proto = p.Obj
	}
	newObj := runtime.NewObject("Object", proto)
	result, err := uf.call(runtime.NewObjectValue(newObj), args)
	if err != nil {
		return nil, err
	}
	if result.Type == runtime.ObjectType {
		return result, nil
	}
	return runtime.NewObjectValue(newObj), nil
}

// makeArguments builds the per-call arguments object (spec.md section
// 4.8): class Object, a DontEnum "callee" and "length", and DontEnum
// indexed properties for each actual argument.
func (in *Interpreter) makeArguments(args []*runtime.Value, callee *runtime.Object) *runtime.Object {
	obj := runtime.NewObject("Object", in.protos.Object)
	obj.DefineOwnProperty("callee", runtime.NewObjectValue(callee), runtime.DontEnum)
	obj.DefineOwnProperty("length", runtime.NewNumber(float64(len(args))), runtime.DontEnum)
	for i, a := range args {
		obj.DefineOwnProperty(strconv.Itoa(i), a, runtime.DontEnum)
	}
	return obj
}
