package gomap

import (
	"encoding"
	"fmt"
	"math"
	"reflect"

	"github.com/signadot/serjson/go-serjson/ir"
)

// FromIR stores the value of node in the value pointed to by v. Object
// members without a matching field are ignored. Null and empty nodes
// set the destination to its zero value.
func FromIR(node *ir.Node, v any) error {
	if v == nil {
		return &UnmarshalError{Message: "destination value cannot be nil"}
	}
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Pointer {
		return &UnmarshalError{Message: "destination value must be a pointer"}
	}
	if val.IsNil() {
		return &UnmarshalError{Message: "destination pointer cannot be nil"}
	}
	return fromIRValue(node, val.Elem(), "")
}

func fromIRValue(node *ir.Node, val reflect.Value, fieldPath string) error {
	switch node.Type() {
	case ir.NullType, ir.EmptyType:
		val.SetZero()
		return nil
	}
	if val.CanAddr() && val.Addr().CanInterface() {
		if tu, ok := val.Addr().Interface().(encoding.TextUnmarshaler); ok {
			s, err := node.AsString()
			if err != nil {
				return mismatch(fieldPath, err)
			}
			if err := tu.UnmarshalText([]byte(s)); err != nil {
				return &UnmarshalError{FieldPath: fieldPath, Message: "UnmarshalText failed", Err: err}
			}
			return nil
		}
	}
	if val.Type() == reflect.TypeFor[ir.Node]() {
		val.Set(reflect.ValueOf(*node.Clone()))
		return nil
	}

	switch val.Kind() {
	case reflect.Pointer:
		if val.IsNil() {
			val.Set(reflect.New(val.Type().Elem()))
		}
		return fromIRValue(node, val.Elem(), fieldPath)
	case reflect.Interface:
		if val.NumMethod() != 0 {
			break
		}
		val.Set(reflect.ValueOf(toAny(node)))
		return nil
	case reflect.String:
		s, err := node.AsString()
		if err != nil {
			return mismatch(fieldPath, err)
		}
		val.SetString(s)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f, err := node.AsNumber()
		if err != nil {
			return mismatch(fieldPath, err)
		}
		i := int64(f)
		if float32(i) != f || val.OverflowInt(i) {
			return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("%v does not fit %s", f, val.Type())}
		}
		val.SetInt(i)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		f, err := node.AsNumber()
		if err != nil {
			return mismatch(fieldPath, err)
		}
		if f < 0 || f != float32(math.Trunc(float64(f))) || val.OverflowUint(uint64(f)) {
			return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("%v does not fit %s", f, val.Type())}
		}
		val.SetUint(uint64(f))
		return nil
	case reflect.Float32, reflect.Float64:
		f, err := node.AsNumber()
		if err != nil {
			return mismatch(fieldPath, err)
		}
		val.SetFloat(float64(f))
		return nil
	case reflect.Bool:
		b, err := node.AsBool()
		if err != nil {
			return mismatch(fieldPath, err)
		}
		val.SetBool(b)
		return nil
	case reflect.Slice:
		elts, err := ir.As[ir.Array](node)
		if err != nil {
			return mismatch(fieldPath, err)
		}
		res := reflect.MakeSlice(val.Type(), len(elts), len(elts))
		for i, elt := range elts {
			if err := fromIRValue(elt, res.Index(i), joinIndex(fieldPath, i)); err != nil {
				return err
			}
		}
		val.Set(res)
		return nil
	case reflect.Array:
		elts, err := ir.As[ir.Array](node)
		if err != nil {
			return mismatch(fieldPath, err)
		}
		val.SetZero()
		for i := 0; i < min(len(elts), val.Len()); i++ {
			if err := fromIRValue(elts[i], val.Index(i), joinIndex(fieldPath, i)); err != nil {
				return err
			}
		}
		return nil
	case reflect.Map:
		return fromIRMap(node, val, fieldPath)
	case reflect.Struct:
		return fromIRStruct(node, val, fieldPath)
	}
	return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("unsupported type: %s", val.Type())}
}

func fromIRMap(node *ir.Node, val reflect.Value, fieldPath string) error {
	typ := val.Type()
	if typ.Key().Kind() != reflect.String {
		return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("unsupported map key type: %s", typ.Key())}
	}
	members, err := ir.As[ir.Object](node)
	if err != nil {
		return mismatch(fieldPath, err)
	}
	res := reflect.MakeMapWithSize(typ, len(members))
	for _, m := range members {
		elt := reflect.New(typ.Elem()).Elem()
		if err := fromIRValue(m, elt, joinField(fieldPath, m.Key)); err != nil {
			return err
		}
		res.SetMapIndex(reflect.ValueOf(m.Key).Convert(typ.Key()), elt)
	}
	val.Set(res)
	return nil
}

func fromIRStruct(node *ir.Node, val reflect.Value, fieldPath string) error {
	members, err := ir.As[ir.Object](node)
	if err != nil {
		return mismatch(fieldPath, err)
	}
	fields, err := StructFields(val.Type())
	if err != nil {
		return &UnmarshalError{FieldPath: fieldPath, Message: "invalid struct fields", Err: err}
	}
	byKey := make(map[string]*FieldInfo, len(fields))
	for _, info := range fields {
		byKey[info.Key] = info
	}
	for _, m := range members {
		info, ok := byKey[m.Key]
		if !ok {
			continue
		}
		if err := fromIRValue(m, val.FieldByIndex(info.Index), joinField(fieldPath, m.Key)); err != nil {
			return err
		}
	}
	return nil
}

func mismatch(fieldPath string, err error) error {
	return &UnmarshalError{FieldPath: fieldPath, Message: err.Error(), Err: err}
}

func toAny(node *ir.Node) any {
	switch v := node.Value.(type) {
	case ir.Object:
		res := make(map[string]any, len(v))
		for _, c := range v {
			res[c.Key] = toAny(c)
		}
		return res
	case ir.Array:
		res := make([]any, len(v))
		for i, c := range v {
			res[i] = toAny(c)
		}
		return res
	case ir.String:
		return string(v)
	case ir.Number:
		return float64(v)
	case ir.Bool:
		return bool(v)
	}
	return nil
}
