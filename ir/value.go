package ir

// Value is the payload of a Node. The set of implementations is closed:
// String, Number, Bool, NullValue, Object and Array.
type Value interface {
	Type() Type
	isValue()
}

type (
	String    string
	Number    float32
	Bool      bool
	NullValue struct{}
	Object    []*Node
	Array     []*Node
)

func (String) Type() Type    { return StringType }
func (Number) Type() Type    { return NumberType }
func (Bool) Type() Type      { return BoolType }
func (NullValue) Type() Type { return NullType }
func (Object) Type() Type    { return ObjectType }
func (Array) Type() Type     { return ArrayType }

func (String) isValue()    {}
func (Number) isValue()    {}
func (Bool) isValue()      {}
func (NullValue) isValue() {}
func (Object) isValue()    {}
func (Array) isValue()     {}

// Text is the string payload a null carries.
func (NullValue) Text() string { return "null" }

// As returns the value of n as T. It fails with a *TypeMismatchError when n
// holds some other kind of value.
func As[T Value](n *Node) (T, error) {
	var zero T
	v, ok := n.value().(T)
	if ok {
		return v, nil
	}
	want := EmptyType
	if zv, isV := any(zero).(Value); isV {
		want = zv.Type()
	}
	return zero, &TypeMismatchError{Want: want, Got: n.Type()}
}

func (n *Node) value() Value {
	if n == nil {
		return nil
	}
	return n.Value
}

// AsString returns the text of a String node, or "null" for a Null node.
func (n *Node) AsString() (string, error) {
	switch v := n.value().(type) {
	case String:
		return string(v), nil
	case NullValue:
		return v.Text(), nil
	}
	return "", &TypeMismatchError{Want: StringType, Got: n.Type()}
}

func (n *Node) AsNumber() (float32, error) {
	v, err := As[Number](n)
	return float32(v), err
}

func (n *Node) AsBool() (bool, error) {
	v, err := As[Bool](n)
	return bool(v), err
}

// AsChildren returns the children of an Object or Array node.
func (n *Node) AsChildren() ([]*Node, error) {
	switch v := n.value().(type) {
	case Object:
		return v, nil
	case Array:
		return v, nil
	}
	return nil, &TypeMismatchError{Want: ObjectType, Got: n.Type()}
}
