package gomap

import (
	"encoding"
	"fmt"
	"reflect"
	"slices"

	"github.com/signadot/serjson/go-serjson/ir"
)

type serializable interface {
	Serialize() *ir.Node
}

// ToIR converts a Go value to a node. The result is unkeyed.
func ToIR(v any) (*ir.Node, error) {
	if v == nil {
		return ir.Null(), nil
	}
	visited := make(map[uintptr]string)
	return toIRValue(reflect.ValueOf(v), "", visited)
}

// toIRValue converts val. visited tracks pointer addresses on the current
// path to detect circular references.
func toIRValue(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	if !val.IsValid() {
		return ir.Null(), nil
	}
	kind := val.Kind()
	if (kind == reflect.Pointer || kind == reflect.Interface || kind == reflect.Map || kind == reflect.Slice) && val.IsNil() {
		return ir.Null(), nil
	}
	if val.CanInterface() {
		switch x := val.Interface().(type) {
		case *ir.Node:
			return x.Clone(), nil
		case ir.Node:
			return x.Clone(), nil
		case serializable:
			n := x.Serialize()
			if n == nil {
				return ir.Null(), nil
			}
			return n.Clone(), nil
		case encoding.TextMarshaler:
			text, err := x.MarshalText()
			if err != nil {
				return nil, &MarshalError{FieldPath: fieldPath, Message: "MarshalText failed", Err: err}
			}
			return ir.FromString(string(text)), nil
		}
	}
	if kind != reflect.Pointer && val.CanAddr() && val.Addr().CanInterface() {
		switch x := val.Addr().Interface().(type) {
		case serializable:
			return toIRValue(reflect.ValueOf(x), fieldPath, visited)
		case encoding.TextMarshaler:
			return toIRValue(reflect.ValueOf(x), fieldPath, visited)
		}
	}

	switch kind {
	case reflect.Pointer:
		ptr := val.Pointer()
		if prevPath, seen := visited[ptr]; seen {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("circular reference detected: %s -> %s", prevPath, fieldPath),
			}
		}
		visited[ptr] = fieldPath
		defer delete(visited, ptr)
		return toIRValue(val.Elem(), fieldPath, visited)
	case reflect.Interface:
		return toIRValue(val.Elem(), fieldPath, visited)
	case reflect.String:
		return ir.FromString(val.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromNumber(float32(val.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return ir.FromNumber(float32(val.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return ir.FromNumber(float32(val.Float())), nil
	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil
	case reflect.Slice, reflect.Array:
		return toIRSlice(val, fieldPath, visited)
	case reflect.Map:
		return toIRMap(val, fieldPath, visited)
	case reflect.Struct:
		return toIRStruct(val, fieldPath, visited)
	}
	return nil, &MarshalError{
		FieldPath: fieldPath,
		Message:   fmt.Sprintf("unsupported type: %s", val.Type()),
	}
}

func toIRSlice(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	if val.Kind() == reflect.Slice && val.Len() > 0 {
		ptr := val.Pointer()
		if prevPath, seen := visited[ptr]; seen {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("circular reference detected: %s -> %s", prevPath, fieldPath),
			}
		}
		visited[ptr] = fieldPath
		defer delete(visited, ptr)
	}
	elements := make([]*ir.Node, val.Len())
	for i := range elements {
		elt, err := toIRValue(val.Index(i), joinIndex(fieldPath, i), visited)
		if err != nil {
			return nil, err
		}
		elements[i] = elt
	}
	return ir.FromArray(elements...), nil
}

// toIRMap converts a map with string keys to an object with members in
// key order.
func toIRMap(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	if val.Type().Key().Kind() != reflect.String {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported map key type: %s", val.Type().Key()),
		}
	}
	ptr := val.Pointer()
	if prevPath, seen := visited[ptr]; seen {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("circular reference detected: %s -> %s", prevPath, fieldPath),
		}
	}
	visited[ptr] = fieldPath
	defer delete(visited, ptr)

	keys := make([]string, 0, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		keys = append(keys, iter.Key().String())
	}
	slices.Sort(keys)
	members := make([]*ir.Node, len(keys))
	for i, k := range keys {
		kv := reflect.ValueOf(k).Convert(val.Type().Key())
		m, err := toIRValue(val.MapIndex(kv), joinField(fieldPath, k), visited)
		if err != nil {
			return nil, err
		}
		members[i] = m.WithKey(k)
	}
	return ir.FromObject(members...), nil
}

func toIRStruct(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	fields, err := StructFields(val.Type())
	if err != nil {
		return nil, &MarshalError{FieldPath: fieldPath, Message: "invalid struct fields", Err: err}
	}
	members := make([]*ir.Node, 0, len(fields))
	for _, info := range fields {
		fv := val.FieldByIndex(info.Index)
		if info.Optional && fv.IsZero() {
			continue
		}
		m, err := toIRValue(fv, joinField(fieldPath, info.Key), visited)
		if err != nil {
			return nil, err
		}
		members = append(members, m.WithKey(info.Key))
	}
	return ir.FromObject(members...), nil
}
