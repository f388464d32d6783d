package builtins

import "github.com/ezhangle/mjs/runtime"

// installBoolean wires Boolean.prototype and the Boolean constructor
// (spec.md section 4.9): called as a function it coerces to a
// primitive boolean; called with new it produces a Boolean-class
// wrapper object holding the coerced value in InternalValue, matching
// what ToObject's WrapBoolean hook (runtime/coercion.go) produces when
// member access auto-boxes a bare true/false.
func installBoolean(global *runtime.Object, protos *Prototypes) {
	boolProto := runtime.NewObject("Boolean", protos.Object)
	boolProto.InternalValue = runtime.FalseValue
	protos.Boolean = boolProto

	setMethod(protos.Function, boolProto, "toString", 0, func(this *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
		v, err := booleanInternalValue(this)
		if err != nil {
			return nil, err
		}
		if v.B {
			return runtime.NewString("true"), nil
		}
		return runtime.NewString("false"), nil
	})
	setMethod(protos.Function, boolProto, "valueOf", 0, func(this *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
		return booleanInternalValue(this)
	})

	call := func(this *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
		return runtime.NewBoolean(runtime.ToBoolean(argAt(args, 0))), nil
	}
	construct := func(this *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
		obj := runtime.NewObject("Boolean", boolProto)
		obj.InternalValue = runtime.NewBoolean(runtime.ToBoolean(argAt(args, 0)))
		return runtime.NewObjectValue(obj), nil
	}

	ctor := newNativeFunction(protos.Function, "Boolean", 1, call)
	ctor.Construct = construct
	ctor.DefineOwnProperty("prototype", runtime.NewObjectValue(boolProto), runtime.ReadOnly|runtime.DontEnum|runtime.DontDelete)
	boolProto.DefineOwnProperty("constructor", runtime.NewObjectValue(ctor), runtime.DontEnum)

	global.DefineOwnProperty("Boolean", runtime.NewObjectValue(ctor), runtime.DontEnum)
}

func booleanInternalValue(this *runtime.Value) (*runtime.Value, error) {
	if this.Type != runtime.ObjectType || this.Obj == nil || this.Obj.Class != "Boolean" {
		return nil, runtime.NewTypeError("Boolean.prototype method called on incompatible receiver")
	}
	return this.Obj.InternalValue, nil
}
