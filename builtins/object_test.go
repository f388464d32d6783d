package builtins_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ezhangle/mjs/builtins"
	"github.com/ezhangle/mjs/runtime"
)

func newGlobal(t *testing.T) (*runtime.Object, builtins.Prototypes) {
	t.Helper()
	global := runtime.NewObject("Global", nil)
	protos := builtins.Install(global, builtins.Hooks{})
	global.Prototype = protos.Object
	return global, protos
}

func TestObjectConstructorWithoutArgumentCreatesPlainObject(t *testing.T) {
	global, protos := newGlobal(t)
	ctor := global.Get("Object")
	require.Equal(t, runtime.ObjectType, ctor.Type)

	v, err := ctor.Obj.Construct(runtime.UndefinedValue, nil)
	require.NoError(t, err)
	require.Equal(t, runtime.ObjectType, v.Type)
	require.Same(t, protos.Object, v.Obj.Prototype)
}

func TestObjectConstructorWithObjectArgumentReturnsSameObject(t *testing.T) {
	global, _ := newGlobal(t)
	ctor := global.Get("Object").Obj

	o, err := ctor.Construct(runtime.UndefinedValue, nil)
	require.NoError(t, err)
	o.Obj.Put("x", runtime.NewNumber(42))

	wrapped, err := ctor.Construct(runtime.UndefinedValue, []*runtime.Value{o})
	require.NoError(t, err)
	require.Same(t, o.Obj, wrapped.Obj)
	require.Equal(t, 42.0, wrapped.Obj.Get("x").N)
}

func TestObjectPrototypeToString(t *testing.T) {
	global, _ := newGlobal(t)
	ctor := global.Get("Object").Obj
	o, err := ctor.Construct(runtime.UndefinedValue, nil)
	require.NoError(t, err)

	toString := o.Obj.Get("toString")
	result, err := toString.Obj.Call(o, nil)
	require.NoError(t, err)
	require.Equal(t, "[object Object]", result.S)
}
