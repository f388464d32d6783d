package builtins

import "github.com/ezhangle/mjs/runtime"

// Hooks supplies the behavior that needs the parser and evaluator
// (package interpreter), and so cannot be implemented inside this
// package without an import cycle: the Function constructor's source
// compilation. eval needs them too; package interpreter installs it on
// the global object itself rather than through Hooks.
type Hooks struct {
	// CompileFunction backs the Function(...) constructor: params are
	// the parameter names, body is the function body source, and the
	// result is a callable/constructable function object.
	CompileFunction func(params []string, body string) (*runtime.Object, error)
}

// Prototypes are the prototype objects Install creates, returned so
// package interpreter can hang its own function objects off
// Prototypes.Function and its plain objects off Prototypes.Object.
type Prototypes struct {
	Object   *runtime.Object
	Function *runtime.Object
	Boolean  *runtime.Object
	Number   *runtime.Object
}

// Install builds the Object/Function/Boolean/Number constructor and
// prototype chain and the handful of global functions spec.md section
// 4.9 names, all as own properties of global. This is the only
// built-in surface the spec calls for -- no Array, String, Math,
// Date, JSON, RegExp, Error, or console object, all of which the
// teacher installs but none of which spec.md section 1's non-goals or
// section 4.9's built-ins list include.
func Install(global *runtime.Object, hooks Hooks) Prototypes {
	objProto := runtime.NewObject("ObjectPrototype", nil)
	funcProto := runtime.NewObject("Function", objProto)
	funcProto.Call = func(*runtime.Value, []*runtime.Value) (*runtime.Value, error) {
		return runtime.UndefinedValue, nil
	}

	protos := Prototypes{Object: objProto, Function: funcProto}
	installObject(global, &protos)
	installFunction(global, &protos, hooks)
	installBoolean(global, &protos)
	installNumber(global, &protos)
	installGlobals(global, &protos)

	runtime.WrapBoolean = func(b bool) *runtime.Object {
		o := runtime.NewObject("Boolean", protos.Boolean)
		o.InternalValue = runtime.NewBoolean(b)
		return o
	}
	runtime.WrapNumber = func(n float64) *runtime.Object {
		o := runtime.NewObject("Number", protos.Number)
		o.InternalValue = runtime.NewNumber(n)
		return o
	}

	return protos
}
