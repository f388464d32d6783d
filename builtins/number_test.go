package builtins_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ezhangle/mjs/builtins"
	"github.com/ezhangle/mjs/runtime"
)

func TestNumberCalledWithoutArgumentsIsZero(t *testing.T) {
	global := runtime.NewObject("Global", nil)
	protos := builtins.Install(global, builtins.Hooks{})
	global.Prototype = protos.Object

	ctor := global.Get("Number").Obj
	v, err := ctor.Call(runtime.UndefinedValue, nil)
	require.NoError(t, err)
	require.Equal(t, 0.0, v.N)
}

func TestNumberStatics(t *testing.T) {
	global := runtime.NewObject("Global", nil)
	protos := builtins.Install(global, builtins.Hooks{})
	global.Prototype = protos.Object

	ctor := global.Get("Number").Obj
	require.True(t, ctor.Get("MAX_VALUE").N > 0)
	require.True(t, ctor.Get("NaN").N != ctor.Get("NaN").N)
	require.Equal(t, runtime.PosInfValue, ctor.Get("POSITIVE_INFINITY"))
}

func TestNumberToStringRadix(t *testing.T) {
	global := runtime.NewObject("Global", nil)
	protos := builtins.Install(global, builtins.Hooks{})
	global.Prototype = protos.Object

	ctor := global.Get("Number").Obj
	v, err := ctor.Construct(runtime.UndefinedValue, []*runtime.Value{runtime.NewNumber(255)})
	require.NoError(t, err)

	toString := v.Obj.Get("toString").Obj
	result, err := toString.Call(v, []*runtime.Value{runtime.NewNumber(16)})
	require.NoError(t, err)
	require.Equal(t, "ff", result.S)

	_, err = toString.Call(v, []*runtime.Value{runtime.NewNumber(1)})
	require.Error(t, err)
	rtErr, ok := err.(*runtime.Error)
	require.True(t, ok)
	require.Equal(t, "RangeError", rtErr.Kind)
}
