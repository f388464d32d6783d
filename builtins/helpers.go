// Package builtins installs the Object, Function, Boolean, and Number
// constructors and prototypes, and the small set of global functions,
// spec.md section 4.9 names. It never imports package interpreter:
// the two behaviors that need the evaluator come from there instead --
// the Function constructor's source compilation as a Hooks entry, and
// eval installed onto the global object by package interpreter itself.
package builtins

import "github.com/ezhangle/mjs/runtime"

// newNativeFunction wraps a Go Callable as a function object, the
// same shape as the teacher's newFuncObject: a "length" matching the
// declared arity and "Function" as its class.
func newNativeFunction(proto *runtime.Object, name string, length int, fn runtime.Callable) *runtime.Object {
	obj := runtime.NewObject("Function", proto)
	obj.Call = fn
	obj.DefineOwnProperty("name", runtime.NewString(name), runtime.ReadOnly|runtime.DontEnum|runtime.DontDelete)
	obj.DefineOwnProperty("length", runtime.NewNumber(float64(length)), runtime.ReadOnly|runtime.DontEnum|runtime.DontDelete)
	return obj
}

// setMethod installs a non-enumerable method on obj, mirroring the
// teacher's convention of the same name.
func setMethod(proto *runtime.Object, obj *runtime.Object, name string, length int, fn runtime.Callable) {
	obj.DefineOwnProperty(name, runtime.NewObjectValue(newNativeFunction(proto, name, length, fn)), runtime.DontEnum)
}

// setConstant installs a ReadOnly, DontEnum, DontDelete data property,
// for things like Number.MAX_VALUE.
func setConstant(obj *runtime.Object, name string, val *runtime.Value) {
	obj.DefineOwnProperty(name, val, runtime.ReadOnly|runtime.DontEnum|runtime.DontDelete)
}

// argAt returns the i'th argument, or undefined if args is too short --
// every built-in method in this package is tolerant of missing
// arguments the way spec.md section 4.2's ToNumber/ToString table
// treats undefined.
func argAt(args []*runtime.Value, i int) *runtime.Value {
	if i < len(args) {
		return args[i]
	}
	return runtime.UndefinedValue
}
