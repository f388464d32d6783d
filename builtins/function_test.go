package builtins_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ezhangle/mjs/builtins"
	"github.com/ezhangle/mjs/runtime"
)

func TestFunctionConstructorUsesCompileFunctionHook(t *testing.T) {
	global := runtime.NewObject("Global", nil)
	var gotParams []string
	var gotBody string
	protos := builtins.Install(global, builtins.Hooks{
		CompileFunction: func(params []string, body string) (*runtime.Object, error) {
			gotParams = params
			gotBody = body
			fn := runtime.NewObject("Function", nil)
			fn.Call = func(*runtime.Value, []*runtime.Value) (*runtime.Value, error) {
				return runtime.NewNumber(1), nil
			}
			return fn, nil
		},
	})
	global.Prototype = protos.Object

	ctor := global.Get("Function").Obj
	result, err := ctor.Call(runtime.UndefinedValue, []*runtime.Value{
		runtime.NewString("a"),
		runtime.NewString("b"),
		runtime.NewString("return a+b;"),
	})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, gotParams)
	require.Equal(t, "return a+b;", gotBody)
	require.Equal(t, runtime.ObjectType, result.Type)
}

func TestFunctionConstructorWithoutHookErrors(t *testing.T) {
	global := runtime.NewObject("Global", nil)
	protos := builtins.Install(global, builtins.Hooks{})
	global.Prototype = protos.Object

	ctor := global.Get("Function").Obj
	_, err := ctor.Call(runtime.UndefinedValue, []*runtime.Value{runtime.NewString("")})
	require.Error(t, err)
}
