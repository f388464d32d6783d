package builtins

import (
	"fmt"
	"math"

	"github.com/ezhangle/mjs/runtime"
)

// installGlobals wires the constant and function globals spec.md
// section 4.9 names outside the constructors: NaN, Infinity,
// isNaN, isFinite, and alert. eval is installed separately by package
// interpreter, since it needs the calling scope.
func installGlobals(global *runtime.Object, protos *Prototypes) {
	setConstant(global, "NaN", runtime.NaNValue)
	setConstant(global, "Infinity", runtime.PosInfValue)
	global.DefineOwnProperty("undefined", runtime.UndefinedValue, runtime.ReadOnly|runtime.DontEnum|runtime.DontDelete)

	setMethod(protos.Function, global, "isNaN", 1, func(this *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
		n, err := runtime.ToNumber(argAt(args, 0))
		if err != nil {
			return nil, err
		}
		return runtime.NewBoolean(math.IsNaN(n)), nil
	})

	setMethod(protos.Function, global, "isFinite", 1, func(this *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
		n, err := runtime.ToNumber(argAt(args, 0))
		if err != nil {
			return nil, err
		}
		return runtime.NewBoolean(!math.IsNaN(n) && !math.IsInf(n, 0)), nil
	})

	// alert implements spec.md section 6's observable output: it
	// writes "ALERT[: <value>]\n" to standard output and returns
	// undefined.
	setMethod(protos.Function, global, "alert", 1, func(this *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
		if len(args) == 0 {
			fmt.Println("ALERT")
			return runtime.UndefinedValue, nil
		}
		s, err := runtime.ToString(args[0])
		if err != nil {
			return nil, err
		}
		fmt.Printf("ALERT: %s\n", s)
		return runtime.UndefinedValue, nil
	})
}
