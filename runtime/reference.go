package runtime

// GetValue dereferences a reference produced by identifier or member
// lookup (spec.md section 4.4): every expression evaluator that feeds
// a non-lvalue context runs its result through this before handing it
// further up. A non-reference passes through unchanged.
func GetValue(v *Value) (*Value, error) {
	if v.Type != Reference {
		return v, nil
	}
	if v.Ref.Base == nil {
		return nil, NewReferenceError("%s is not defined", v.Ref.Name)
	}
	return v.Ref.Base.Get(v.Ref.Name), nil
}

// PutValue assigns through a reference, creating the property on the
// base (the global object, for an undeclared identifier write) when
// absent. Assigning into a non-reference -- the left side of "=" not
// having evaluated to one -- is a ReferenceError (spec.md section 7).
func PutValue(v *Value, val *Value) error {
	if v.Type != Reference {
		return NewReferenceError("invalid assignment target")
	}
	if v.Ref.Base == nil {
		return NewReferenceError("%s is not defined", v.Ref.Name)
	}
	v.Ref.Base.Put(v.Ref.Name, val)
	return nil
}
