package builtins

import "github.com/ezhangle/mjs/runtime"

// installObject wires Object.prototype (toString/valueOf) and the
// Object constructor (spec.md section 4.9): Object(v) and new Object(v)
// behave identically -- null/undefined/missing yields a fresh plain
// object, anything else goes through ToObject, which for an object
// argument is the identity (new Object(o) === o, not a copy).
func installObject(global *runtime.Object, protos *Prototypes) {
	objProto := protos.Object

	setMethod(protos.Function, objProto, "toString", 0, func(this *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
		if this.Type != runtime.ObjectType {
			return nil, runtime.NewTypeError("Object.prototype.toString called on a non-object")
		}
		return runtime.NewString("[object " + this.Obj.Class + "]"), nil
	})
	setMethod(protos.Function, objProto, "valueOf", 0, func(this *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
		return this, nil
	})

	call := func(this *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
		v := argAt(args, 0)
		if v.Type == runtime.Undefined || v.Type == runtime.Null {
			return runtime.NewObjectValue(runtime.NewObject("Object", objProto)), nil
		}
		obj, err := runtime.ToObject(v)
		if err != nil {
			return nil, err
		}
		return runtime.NewObjectValue(obj), nil
	}

	ctor := newNativeFunction(protos.Function, "Object", 1, call)
	ctor.Construct = call
	ctor.DefineOwnProperty("prototype", runtime.NewObjectValue(objProto), runtime.ReadOnly|runtime.DontEnum|runtime.DontDelete)
	objProto.DefineOwnProperty("constructor", runtime.NewObjectValue(ctor), runtime.DontEnum)

	global.DefineOwnProperty("Object", runtime.NewObjectValue(ctor), runtime.DontEnum)
}
