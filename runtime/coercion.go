package runtime

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
)

// WrapBoolean and WrapNumber let ToObject box a primitive into the
// corresponding wrapper object without runtime importing builtins
// (which would cycle); builtins.Install wires them once at startup,
// the same way the teacher threads its DefaultXPrototype globals
// through from package builtins back into package runtime.
var (
	WrapBoolean func(b bool) *Object
	WrapNumber  func(n float64) *Object
)

// ToPrimitive implements the ECMAScript-1 ToPrimitive abstract
// operation (spec.md section 4.2): call valueOf then toString (or the
// reverse when hint is "string"), returning the first primitive
// result. hint "" behaves like "number".
func ToPrimitive(v *Value, hint string) (*Value, error) {
	if v.Type != ObjectType {
		return v, nil
	}
	methods := [2]string{"valueOf", "toString"}
	if hint == "string" {
		methods = [2]string{"toString", "valueOf"}
	}
	obj := v.Obj
	for _, name := range methods {
		m := obj.Get(name)
		if m.Type == ObjectType && m.Obj != nil && m.Obj.IsCallable() {
			result, err := m.Obj.Call(v, nil)
			if err != nil {
				return nil, err
			}
			if result.Type != ObjectType {
				return result, nil
			}
		}
	}
	return nil, NewTypeError("cannot convert object to a primitive value")
}

// ToObject coerces v to an object (spec.md section 4.9: "Object(v)
// called as function"; also used by member access, spec.md section
// 4.5, which errors on null/undefined rather than boxing).
func ToObject(v *Value) (*Object, error) {
	switch v.Type {
	case Undefined, Null:
		return nil, NewTypeError("cannot convert undefined or null to object")
	case ObjectType:
		return v.Obj, nil
	case Boolean:
		if WrapBoolean != nil {
			return WrapBoolean(v.B), nil
		}
	case Number:
		if WrapNumber != nil {
			return WrapNumber(v.N), nil
		}
	}
	return nil, NewTypeError("cannot convert value to object")
}

// ToBoolean implements spec.md section 4.2's ToBoolean table exactly;
// it never fails since no object method call is involved.
func ToBoolean(v *Value) bool {
	switch v.Type {
	case Undefined, Null:
		return false
	case Boolean:
		return v.B
	case Number:
		return v.N != 0 && !math.IsNaN(v.N)
	case String:
		return len(v.S) > 0
	case ObjectType:
		return true
	default:
		return false
	}
}

// ToNumber implements spec.md section 4.2's ToNumber: strings parse
// per the numeric grammar, objects go through ToPrimitive(number).
func ToNumber(v *Value) (float64, error) {
	switch v.Type {
	case Undefined:
		return math.NaN(), nil
	case Null:
		return 0, nil
	case Boolean:
		if v.B {
			return 1, nil
		}
		return 0, nil
	case Number:
		return v.N, nil
	case String:
		return parseNumericString(v.S), nil
	case ObjectType:
		prim, err := ToPrimitive(v, "number")
		if err != nil {
			return 0, err
		}
		return ToNumber(prim)
	}
	return math.NaN(), nil
}

// parseNumericString implements spec.md section 4.2's numeric
// grammar: decimal digits, an optional sign, fractional part, and
// exponent; empty or all-whitespace text is 0, anything else malformed
// is NaN.
func parseNumericString(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if strings.IndexFunc(s, func(r rune) bool { return !strings.ContainsRune("0123456789+-.eE", r) }) >= 0 {
		return math.NaN()
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return n
}

// ToString implements spec.md section 4.2's ToString, including the
// shortest-round-trip numeric formatting and the ±0/NaN/Infinity
// special cases.
func ToString(v *Value) (string, error) {
	switch v.Type {
	case Undefined:
		return "undefined", nil
	case Null:
		return "null", nil
	case Boolean:
		if v.B {
			return "true", nil
		}
		return "false", nil
	case Number:
		return formatNumber(v.N), nil
	case String:
		return v.S, nil
	case ObjectType:
		prim, err := ToPrimitive(v, "string")
		if err != nil {
			return "", err
		}
		return ToString(prim)
	}
	return "undefined", nil
}

func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case n == 0:
		return "0" // covers -0 too: spec.md section 4.2 says ±0 both yield "0"
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// ToInt32 and ToUint32 implement spec.md section 4.2: ToNumber, then
// NaN/±Infinity collapse to 0, else truncate toward zero modulo 2^32,
// reinterpreted as signed or unsigned.
func ToInt32(v *Value) (int32, error) {
	n, err := ToNumber(v)
	if err != nil {
		return 0, err
	}
	return int32(toUint32(n)), nil
}

func ToUint32(v *Value) (uint32, error) {
	n, err := ToNumber(v)
	if err != nil {
		return 0, err
	}
	return toUint32(n), nil
}

func toUint32(n float64) uint32 {
	if math.IsNaN(n) || math.IsInf(n, 0) || n == 0 {
		return 0
	}
	n = math.Trunc(n)
	m := math.Mod(n, 4294967296)
	if m < 0 {
		m += 4294967296
	}
	return uint32(m)
}

// CompareEqual implements the loose == algorithm (spec.md section
// 4.1): same-type values compare directly; cross-type comparisons
// coerce per the table there. It is symmetric by construction (each
// cross-type branch recurses with the coerced operand back into the
// same function).
func CompareEqual(a, b *Value) (bool, error) {
	if a.Type == b.Type {
		return sameTypeEqual(a, b), nil
	}
	if (a.Type == Null && b.Type == Undefined) || (a.Type == Undefined && b.Type == Null) {
		return true, nil
	}
	if a.Type == Number && b.Type == String {
		n, err := ToNumber(b)
		if err != nil {
			return false, err
		}
		return CompareEqual(a, NewNumber(n))
	}
	if a.Type == String && b.Type == Number {
		n, err := ToNumber(a)
		if err != nil {
			return false, err
		}
		return CompareEqual(NewNumber(n), b)
	}
	if a.Type == Boolean {
		n, _ := ToNumber(a)
		return CompareEqual(NewNumber(n), b)
	}
	if b.Type == Boolean {
		n, _ := ToNumber(b)
		return CompareEqual(a, NewNumber(n))
	}
	if (a.Type == Number || a.Type == String) && b.Type == ObjectType {
		prim, err := ToPrimitive(b, "")
		if err != nil {
			return false, err
		}
		return CompareEqual(a, prim)
	}
	if a.Type == ObjectType && (b.Type == Number || b.Type == String) {
		prim, err := ToPrimitive(a, "")
		if err != nil {
			return false, err
		}
		return CompareEqual(prim, b)
	}
	return false, nil
}

func sameTypeEqual(a, b *Value) bool {
	switch a.Type {
	case Undefined, Null:
		return true
	case Boolean:
		return a.B == b.B
	case Number:
		if math.IsNaN(a.N) || math.IsNaN(b.N) {
			return false
		}
		return a.N == b.N
	case String:
		return a.S == b.S
	case ObjectType:
		return a.Obj == b.Obj
	}
	return false
}

// TriResult is the three-valued result of abstract relational
// comparison (spec.md section 4.1): TriUndefined is distinct from
// TriFalse so that NaN propagates correctly through <=/>= instead of
// collapsing into false.
type TriResult int

const (
	TriUndefined TriResult = iota - 1
	TriFalse
	TriTrue
)

// TriCompare implements "is x less than y", spec.md section 4.1: both
// operands go through ToPrimitive(number); string/string pairs compare
// lexicographically by UTF-16 code unit, everything else compares as
// numbers with TriUndefined standing in for a NaN operand.
func TriCompare(x, y *Value) (TriResult, error) {
	px, err := ToPrimitive(x, "number")
	if err != nil {
		return TriUndefined, err
	}
	py, err := ToPrimitive(y, "number")
	if err != nil {
		return TriUndefined, err
	}
	if px.Type == String && py.Type == String {
		return compareUTF16(px.S, py.S), nil
	}
	nx, err := ToNumber(px)
	if err != nil {
		return TriUndefined, err
	}
	ny, err := ToNumber(py)
	if err != nil {
		return TriUndefined, err
	}
	if math.IsNaN(nx) || math.IsNaN(ny) {
		return TriUndefined, nil
	}
	if nx < ny {
		return TriTrue, nil
	}
	return TriFalse, nil
}

func compareUTF16(a, b string) TriResult {
	au := utf16.Encode([]rune(a))
	bu := utf16.Encode([]rune(b))
	for i := 0; i < len(au) && i < len(bu); i++ {
		if au[i] != bu[i] {
			if au[i] < bu[i] {
				return TriTrue
			}
			return TriFalse
		}
	}
	if len(au) < len(bu) {
		return TriTrue
	}
	return TriFalse
}

// LessThan, LessOrEqual, GreaterThan, GreaterOrEqual compose
// TriCompare per spec.md section 4.5's table: the arg order and
// negation on each is chosen so that a NaN operand makes every one of
// them false, not just "<" and ">".
func LessThan(a, b *Value) (bool, error) {
	r, err := TriCompare(a, b)
	return r == TriTrue, err
}

func LessOrEqual(a, b *Value) (bool, error) {
	r, err := TriCompare(b, a)
	return r == TriFalse, err
}

func GreaterThan(a, b *Value) (bool, error) {
	r, err := TriCompare(b, a)
	return r == TriTrue, err
}

func GreaterOrEqual(a, b *Value) (bool, error) {
	r, err := TriCompare(a, b)
	return r == TriFalse, err
}
