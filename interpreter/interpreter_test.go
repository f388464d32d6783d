package interpreter_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ezhangle/mjs/interpreter"
	"github.com/ezhangle/mjs/parser"
	"github.com/ezhangle/mjs/runtime"
)

// run parses and evaluates src against a fresh Interpreter, returning
// the last top-level statement's normal-completion value -- the same
// rule spec.md section 4.9 gives eval(v).
func run(t *testing.T, src string) *runtime.Value {
	t.Helper()
	p := parser.New(src)
	program, errs := p.ParseProgram()
	require.Empty(t, errs, "parse errors for %q", src)

	in := interpreter.New()
	in.HoistProgram(program.Statements)

	result := runtime.UndefinedValue
	for _, stmt := range program.Statements {
		c, err := in.EvaluateStatement(stmt)
		require.NoError(t, err, "evaluating %q", src)
		if !c.IsAbrupt() {
			result = c.Value
		}
	}
	return result
}

func TestScenario1ModuloOfNegativeOperand(t *testing.T) {
	v := run(t, "-7.5 % 2")
	require.Equal(t, -1.5, v.N)
}

func TestScenario2StringConcatenationWithArithmetic(t *testing.T) {
	v := run(t, "x = 42; 'test ' + 2 * (6 - 4 + 1) + ' ' + x")
	require.Equal(t, "test 6 42", v.S)
}

func TestScenario3DeleteOfDeclaredVariable(t *testing.T) {
	v := run(t, "var x = 42; delete x; x")
	require.Equal(t, runtime.Undefined, v.Type)
}

func TestScenario4UnsignedRightShiftOfNegativeNumber(t *testing.T) {
	v := run(t, "-5 >>> 2")
	require.Equal(t, 1073741822.0, v.N)
}

func TestScenario5ArgumentsObjectSumsActualArguments(t *testing.T) {
	v := run(t, `
		function sum() {
			var s = 0;
			for (var i = 0; i < arguments.length; ++i) s += arguments[i];
			return s;
		}
		sum(1, 2, 3)
	`)
	require.Equal(t, 6.0, v.N)
}

func TestScenario6NewObjectOfAnObjectReturnsTheSameObject(t *testing.T) {
	v := run(t, "o = new Object; o.x = 42; new Object(o).x")
	require.Equal(t, 42.0, v.N)
}

func TestScenario7UndeclaredAssignmentInsideFunctionCreatesGlobal(t *testing.T) {
	v := run(t, "function f(){ i = 42; }; f(); i")
	require.Equal(t, 42.0, v.N)
}

func TestScenario8LocalVarShadowsGlobal(t *testing.T) {
	v := run(t, "i = 1; function f(){ var i = 42; }; f(); i")
	require.Equal(t, 1.0, v.N)
}

func TestScenario9LooseEquality(t *testing.T) {
	require.True(t, run(t, "'' == false").B)
	require.False(t, run(t, "null == false").B)
	require.Equal(t, 2.0, run(t, "true + true").N)
}

func TestTypeofCoversEveryPrimitiveTag(t *testing.T) {
	require.Equal(t, "undefined", run(t, "typeof undefined").S)
	require.Equal(t, "object", run(t, "typeof null").S)
	require.Equal(t, "boolean", run(t, "typeof true").S)
	require.Equal(t, "number", run(t, "typeof 1").S)
	require.Equal(t, "string", run(t, "typeof 'x'").S)
	require.Equal(t, "object", run(t, "typeof (new Object())").S)
	require.Equal(t, "function", run(t, "typeof (function(){})").S)
}

func TestUnaryPlusMatchesNumberConstructor(t *testing.T) {
	v := run(t, "+'42' == Number('42')")
	require.True(t, v.B)
}

func TestDoubleNegationIsIdentityExceptForNaN(t *testing.T) {
	require.Equal(t, 5.0, run(t, "-(-5)").N)
	nan := run(t, "-(-(0/0))")
	require.True(t, math.IsNaN(nan.N))
}

func TestBitwiseNotTwiceMatchesToInt32(t *testing.T) {
	require.Equal(t, 5.0, run(t, "~~5.9").N)
	require.Equal(t, -1.0, run(t, "~~(-1.9)").N)
}

func TestLogicalAndShortCircuitsOnFalsyLeft(t *testing.T) {
	v := run(t, "var calls = 0; function bump(){ calls++; return true; }; 0 && bump(); calls")
	require.Equal(t, 0.0, v.N)
}

func TestLogicalOrShortCircuitsOnTruthyLeft(t *testing.T) {
	v := run(t, "var calls = 0; function bump(){ calls++; return true; }; 1 || bump(); calls")
	require.Equal(t, 0.0, v.N)
}

func TestLogicalAndReturnsRawOperandNotCoercedBoolean(t *testing.T) {
	v := run(t, "0 && 1")
	require.Equal(t, 0.0, v.N)
	v = run(t, "2 && 3")
	require.Equal(t, 3.0, v.N)
}

func TestHoistingMakesVarVisibleBeforeItsDeclaration(t *testing.T) {
	v := run(t, "(typeof x == 'undefined'); var x = 1; x")
	require.Equal(t, 1.0, v.N)
}

func TestHoistingDoesNotDescendIntoNestedFunctionBodies(t *testing.T) {
	v := run(t, `
		function outer() {
			return typeof inner;
		}
		function container() {
			function inner() {}
		}
		outer()
	`)
	require.Equal(t, "undefined", v.S)
}

func TestClosureCapturesDeclarationScope(t *testing.T) {
	v := run(t, `
		function makeCounter() {
			var n = 0;
			return function() { return ++n; };
		}
		var c1 = makeCounter();
		var c2 = makeCounter();
		c1(); c1(); c2();
		c1()
	`)
	require.Equal(t, 3.0, v.N)
}

func TestMethodCallBindsThisToReceiver(t *testing.T) {
	v := run(t, `
		var o = new Object();
		o.value = 42;
		o.get = function() { return this.value; };
		o.get()
	`)
	require.Equal(t, 42.0, v.N)
}

func TestConstructorFunctionBindsThisToNewInstance(t *testing.T) {
	v := run(t, `
		function Point(x, y) { this.x = x; this.y = y; }
		var p = new Point(1, 2);
		p.x + p.y
	`)
	require.Equal(t, 3.0, v.N)
}

func TestConstructorReturningObjectReplacesTheInstance(t *testing.T) {
	v := run(t, `
		function Weird() {
			var replacement = new Object();
			replacement.tag = "replaced";
			return replacement;
		}
		new Weird().tag
	`)
	require.Equal(t, "replaced", v.S)
}

func TestForLoopContinueRunsTheUpdateClause(t *testing.T) {
	v := run(t, `
		var sum = 0;
		for (var i = 0; i < 5; ++i) {
			if (i == 2) continue;
			sum += i;
		}
		sum
	`)
	require.Equal(t, 8.0, v.N)
}

func TestWhileLoopBreakStopsIteration(t *testing.T) {
	v := run(t, `
		var i = 0;
		while (true) {
			if (i == 3) break;
			++i;
		}
		i
	`)
	require.Equal(t, 3.0, v.N)
}

func TestEvalRunsInCallingScope(t *testing.T) {
	v := run(t, `
		function f() {
			var x = 10;
			eval("x = x + 5");
			return x;
		}
		f()
	`)
	require.Equal(t, 15.0, v.N)
}

func TestEvalOnNonStringReturnsItUnchanged(t *testing.T) {
	v := run(t, "eval(42)")
	require.Equal(t, 42.0, v.N)
}

func TestDeleteOfNonReferenceReturnsTrue(t *testing.T) {
	v := run(t, "delete 5")
	require.True(t, v.B)
}

func TestCommaOperatorEvaluatesLeftToRightAndReturnsLast(t *testing.T) {
	v := run(t, "var a = 0; (a = 1, a = 2, a = 3)")
	require.Equal(t, 3.0, v.N)
}

func TestConditionalExpressionOnlyEvaluatesChosenBranch(t *testing.T) {
	v := run(t, `
		var calls = 0;
		function bump() { calls++; return 1; }
		true ? 'yes' : bump();
		calls
	`)
	require.Equal(t, 0.0, v.N)
}

func TestWithStatementIsNotImplemented(t *testing.T) {
	p := parser.New("with (this) { x; }")
	program, errs := p.ParseProgram()
	require.Empty(t, errs)

	in := interpreter.New()
	in.HoistProgram(program.Statements)
	_, err := in.EvaluateStatement(program.Statements[0])
	require.Error(t, err)
}

func TestReferenceToUndeclaredGlobalObservesUndefinedWithoutThrowing(t *testing.T) {
	v := run(t, "typeof neverDeclared")
	require.Equal(t, "undefined", v.S)
}

func TestAssigningToNonReferenceIsAReferenceError(t *testing.T) {
	p := parser.New("1 = 2;")
	program, errs := p.ParseProgram()
	require.Empty(t, errs)

	in := interpreter.New()
	_, err := in.EvaluateStatement(program.Statements[0])
	require.Error(t, err)
	rtErr, ok := err.(*runtime.Error)
	require.True(t, ok)
	require.Equal(t, "ReferenceError", rtErr.Kind)
}
