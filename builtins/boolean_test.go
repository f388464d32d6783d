package builtins_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ezhangle/mjs/builtins"
	"github.com/ezhangle/mjs/runtime"
)

func TestBooleanCalledAsFunctionCoerces(t *testing.T) {
	global := runtime.NewObject("Global", nil)
	protos := builtins.Install(global, builtins.Hooks{})
	global.Prototype = protos.Object

	ctor := global.Get("Boolean").Obj
	v, err := ctor.Call(runtime.UndefinedValue, []*runtime.Value{runtime.NewString("")})
	require.NoError(t, err)
	require.Equal(t, runtime.Boolean, v.Type)
	require.False(t, v.B)
}

func TestBooleanConstructedWithNewWrapsPrimitive(t *testing.T) {
	global := runtime.NewObject("Global", nil)
	protos := builtins.Install(global, builtins.Hooks{})
	global.Prototype = protos.Object

	ctor := global.Get("Boolean").Obj
	v, err := ctor.Construct(runtime.UndefinedValue, []*runtime.Value{runtime.TrueValue})
	require.NoError(t, err)
	require.Equal(t, runtime.ObjectType, v.Type)
	require.Equal(t, "Boolean", v.Obj.Class)

	valueOf := v.Obj.Get("valueOf").Obj
	prim, err := valueOf.Call(v, nil)
	require.NoError(t, err)
	require.True(t, prim.B)
}

func TestRuntimeWrapBooleanMatchesBuiltinBoxing(t *testing.T) {
	global := runtime.NewObject("Global", nil)
	protos := builtins.Install(global, builtins.Hooks{})
	global.Prototype = protos.Object

	obj, err := runtime.ToObject(runtime.TrueValue)
	require.NoError(t, err)
	require.Equal(t, "Boolean", obj.Class)
	require.Same(t, protos.Boolean, obj.Prototype)
	require.True(t, obj.InternalValue.B)
}
