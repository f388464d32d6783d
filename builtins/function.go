package builtins

import "github.com/ezhangle/mjs/runtime"

// installFunction wires Function.prototype (a no-op callable with a
// toString stub) and the Function constructor, which -- per spec.md
// section 4.9 -- compiles its last argument as a function body with
// the preceding arguments as parameter names, via the CompileFunction
// hook package interpreter supplies (building a function from source
// text needs the parser and the evaluator's closure machinery, which
// this package cannot reach without cycling back to interpreter).
func installFunction(global *runtime.Object, protos *Prototypes, hooks Hooks) {
	funcProto := protos.Function

	setMethod(funcProto, funcProto, "toString", 0, func(this *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
		if this.Type != runtime.ObjectType {
			return nil, runtime.NewTypeError("Function.prototype.toString called on a non-object")
		}
		return runtime.NewString("function " + this.Obj.Class + "() { [native code] }"), nil
	})

	call := func(this *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
		if hooks.CompileFunction == nil {
			return nil, runtime.NewTypeError("Function constructor is not available")
		}
		params := make([]string, 0, len(args))
		body := ""
		for i, a := range args {
			s, err := runtime.ToString(a)
			if err != nil {
				return nil, err
			}
			if i == len(args)-1 {
				body = s
			} else {
				params = append(params, s)
			}
		}
		obj, err := hooks.CompileFunction(params, body)
		if err != nil {
			return nil, err
		}
		return runtime.NewObjectValue(obj), nil
	}

	ctor := newNativeFunction(funcProto, "Function", 1, call)
	ctor.Construct = call
	ctor.DefineOwnProperty("prototype", runtime.NewObjectValue(funcProto), runtime.ReadOnly|runtime.DontEnum|runtime.DontDelete)
	funcProto.DefineOwnProperty("constructor", runtime.NewObjectValue(ctor), runtime.DontEnum)

	global.DefineOwnProperty("Function", runtime.NewObjectValue(ctor), runtime.DontEnum)
}
