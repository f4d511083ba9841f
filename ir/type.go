package ir

import "fmt"

type Type int

const (
	EmptyType Type = iota
	StringType
	NumberType
	ObjectType
	ArrayType
	NullType
	BoolType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		EmptyType:  "Empty",
		StringType: "String",
		NumberType: "Number",
		ObjectType: "Object",
		ArrayType:  "Array",
		NullType:   "Null",
		BoolType:   "Bool",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Empty":  EmptyType,
		"String": StringType,
		"Number": NumberType,
		"Object": ObjectType,
		"Array":  ArrayType,
		"Null":   NullType,
		"Bool":   BoolType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		EmptyType,
		StringType,
		NumberType,
		ObjectType,
		ArrayType,
		NullType,
		BoolType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}
