// Package runtime implements the value model and object model spec.md
// section 3 describes: the tagged Value sum (undefined, null, boolean,
// number, string, object, reference), the prototype-chained Object
// with its attributed property map, and the conversions and equality
// rules built on top of them (coercion.go). The scope chain (scope.go)
// and the single runtime error type with its stack trace (error.go)
// live here too, since both are consulted by every layer above.
package runtime

import "math"

// Type identifies which variant of the value sum a Value holds.
type Type int

const (
	Undefined Type = iota
	Null
	Boolean
	Number
	String
	ObjectType
	Reference
)

func (t Type) String() string {
	switch t {
	case Undefined:
		return "undefined"
	case Null:
		return "object" // typeof null === "object"
	case Boolean:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case ObjectType:
		return "object"
	case Reference:
		return "reference"
	default:
		return "unknown"
	}
}

// Value is the tagged sum spec.md section 3 describes. Exactly one of
// the typed fields is meaningful, selected by Type; Ref is populated
// only when Type is Reference, which the evaluator produces transiently
// and must never let escape into a property slot (GetValue always
// dereferences before a value is handed back to user code).
type Value struct {
	Type Type
	B    bool
	N    float64
	S    string
	Obj  *Object
	Ref  *Ref
}

// Ref is a reference: a transient (base object or none, property name)
// pair. It is produced by identifier and member-expression evaluation
// and consumed by GetValue/PutValue; it is never stored in a property.
type Ref struct {
	Base *Object
	Name string
}

// Singletons for the handful of values that don't carry distinguishing
// data, mirroring ECMAScript's canonical undefined/null/true/false.
var (
	UndefinedValue = &Value{Type: Undefined}
	NullValue      = &Value{Type: Null}
	TrueValue      = &Value{Type: Boolean, B: true}
	FalseValue     = &Value{Type: Boolean, B: false}
	NaNValue       = &Value{Type: Number, N: math.NaN()}
	PosInfValue    = &Value{Type: Number, N: math.Inf(1)}
	NegInfValue    = &Value{Type: Number, N: math.Inf(-1)}
)

func NewNumber(n float64) *Value { return &Value{Type: Number, N: n} }
func NewString(s string) *Value  { return &Value{Type: String, S: s} }

func NewBoolean(b bool) *Value {
	if b {
		return TrueValue
	}
	return FalseValue
}

func NewObjectValue(o *Object) *Value { return &Value{Type: ObjectType, Obj: o} }

// NewReference wraps a Ref as a transient value. base may be nil, in
// which case the reference is unresolvable (spec.md section 3: reads
// fail with "not defined"; delete/typeof special-case it).
func NewReference(base *Object, name string) *Value {
	return &Value{Type: Reference, Ref: &Ref{Base: base, Name: name}}
}

// IsReference reports whether v is a transient reference rather than a
// value proper. Expression evaluators that feed a non-lvalue context
// must run their result through GetValue before returning it further.
func (v *Value) IsReference() bool { return v.Type == Reference }

// Attr is a bitset over the property attributes spec.md section 3
// defines: ReadOnly, DontEnum, DontDelete, and Internal (the last
// marking slots that exist for bookkeeping rather than script
// visibility).
type Attr int

const (
	ReadOnly Attr = 1 << iota
	DontEnum
	DontDelete
	Internal
)

// Property is one entry of an Object's property map: a value plus its
// attribute set.
type Property struct {
	Value *Value
	Attrs Attr
}

// Callable is the shape of a Go function backing an object's [[Call]]
// or [[Construct]] internal slot (spec.md section 3).
type Callable func(this *Value, args []*Value) (*Value, error)

// Object is the entity spec.md section 3 describes: a class tag, a
// prototype link, an ordered own-property map, an internal value slot
// (used by the Boolean/Number wrapper objects to hold their boxed
// primitive), and optional call/construct slots.
type Object struct {
	Class         string
	Prototype     *Object
	InternalValue *Value
	Call          Callable
	Construct     Callable

	props map[string]*Property
	keys  []string // insertion order; own-property enumeration order
}

// NewObject allocates an object of the given class with no own
// properties, linked to proto (which may be nil, as for the root
// Object.prototype).
func NewObject(class string, proto *Object) *Object {
	return &Object{Class: class, Prototype: proto, props: make(map[string]*Property)}
}

// Get walks own properties then the prototype chain (spec.md section
// 4.3); an absent name yields undefined rather than an error.
func (o *Object) Get(name string) *Value {
	for cur := o; cur != nil; cur = cur.Prototype {
		if p, ok := cur.props[name]; ok {
			return p.Value
		}
	}
	return UndefinedValue
}

// GetOwnProperty returns the own property entry, or nil if name is
// not an own property (prototype chain not consulted).
func (o *Object) GetOwnProperty(name string) *Property {
	return o.props[name]
}

// Put writes to the own property, creating it if absent (spec.md
// section 4.3). A ReadOnly *own* property is a silent no-op; writing
// through to an existing own property never changes its attributes.
// When a new property is created its attributes default to the empty
// set unless attrs is supplied.
func (o *Object) Put(name string, val *Value, attrs ...Attr) {
	if p, ok := o.props[name]; ok {
		if p.Attrs&ReadOnly != 0 {
			return
		}
		p.Value = val
		return
	}
	a := Attr(0)
	if len(attrs) > 0 {
		a = attrs[0]
	}
	o.DefineOwnProperty(name, val, a)
}

// DefineOwnProperty creates or replaces an own property unconditionally,
// bypassing the ReadOnly check Put enforces. Used by built-in setup
// code to install properties with specific attributes and by the
// evaluator's hoisting step.
func (o *Object) DefineOwnProperty(name string, val *Value, attrs Attr) {
	if _, exists := o.props[name]; !exists {
		o.keys = append(o.keys, name)
	}
	o.props[name] = &Property{Value: val, Attrs: attrs}
}

// HasProperty reports whether name exists anywhere in the prototype
// chain (own or inherited).
func (o *Object) HasProperty(name string) bool {
	for cur := o; cur != nil; cur = cur.Prototype {
		if _, ok := cur.props[name]; ok {
			return true
		}
	}
	return false
}

// HasOwnProperty reports whether name is an own property.
func (o *Object) HasOwnProperty(name string) bool {
	_, ok := o.props[name]
	return ok
}

// Delete removes the own property unless it is DontDelete, returning
// whether the property is absent after the call (true both when it
// was deleted and when it was never present, matching spec.md section
// 4.3's "returns whether absent after call").
func (o *Object) Delete(name string) bool {
	p, ok := o.props[name]
	if !ok {
		return true
	}
	if p.Attrs&DontDelete != 0 {
		return false
	}
	delete(o.props, name)
	for i, k := range o.keys {
		if k == name {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return true
}

// OwnPropertyNames returns own property names in insertion order,
// including DontEnum ones. There is no for-in in this dialect, and
// nothing in the evaluator or the built-ins calls it.
func (o *Object) OwnPropertyNames() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// IsCallable reports whether the object has a [[Call]] slot.
func (o *Object) IsCallable() bool { return o.Call != nil }

// IsConstructable reports whether the object has a [[Construct]] slot.
func (o *Object) IsConstructable() bool { return o.Construct != nil }

// TypeOf implements the typeof type-tag mapping (spec.md sections 4.1
// and 8): primitive tags map directly to Type.String(), objects are
// "function" when callable, else "object".
func (v *Value) TypeOf() string {
	if v.Type == ObjectType {
		if v.Obj != nil && v.Obj.IsCallable() {
			return "function"
		}
		return "object"
	}
	return v.Type.String()
}
