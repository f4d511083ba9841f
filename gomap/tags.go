package gomap

import (
	"fmt"
	"reflect"
	"strings"
)

// FieldInfo holds field metadata extracted from struct tags
type FieldInfo struct {
	// Name is the struct field name
	Name string

	// Key is the member key used in the node
	Key string

	Index []int

	// Optional fields are left out when zero
	Optional bool
}

// ParseStructTag parses a tag such as `serjson:"field=name,optional"` into
// its flags and key=value pairs. Values may be single or double quoted.
func ParseStructTag(tag string) (map[string]string, error) {
	result := make(map[string]string)
	var parts []string
	var current strings.Builder
	inQuote := byte(0)
	flush := func() {
		if part := strings.TrimSpace(current.String()); part != "" {
			parts = append(parts, part)
		}
		current.Reset()
	}
	for i := 0; i < len(tag); i++ {
		c := tag[i]
		switch {
		case inQuote != 0:
			if c == inQuote {
				inQuote = 0
			}
			current.WriteByte(c)
		case c == '\'' || c == '"':
			inQuote = c
			current.WriteByte(c)
		case c == ',' || c == ' ':
			flush()
		default:
			current.WriteByte(c)
		}
	}
	if inQuote != 0 {
		return nil, fmt.Errorf("invalid tag %q: unterminated quote", tag)
	}
	flush()

	for _, part := range parts {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			result[part] = ""
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("invalid tag: empty key in %q", part)
		}
		result[key] = unquoteValue(strings.TrimSpace(value))
	}
	return result, nil
}

func unquoteValue(value string) string {
	if len(value) >= 2 && (value[0] == '\'' || value[0] == '"') && value[len(value)-1] == value[0] {
		return value[1 : len(value)-1]
	}
	return value
}

// StructFields lists the fields of a struct type that map to object
// members, in declaration order. Fields of embedded structs without a tag
// are flattened into the parent.
func StructFields(typ reflect.Type) ([]*FieldInfo, error) {
	var res []*FieldInfo
	seen := map[string]bool{}
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		tag, hasTag := field.Tag.Lookup("serjson")
		if field.Anonymous && !hasTag && field.Type.Kind() == reflect.Struct {
			embedded, err := StructFields(field.Type)
			if err != nil {
				return nil, err
			}
			for _, info := range embedded {
				if seen[info.Key] {
					return nil, fmt.Errorf("field name conflict: embedded field %q in %s", info.Key, typ)
				}
				seen[info.Key] = true
				info.Index = append([]int{i}, info.Index...)
				res = append(res, info)
			}
			continue
		}
		if !field.IsExported() {
			continue
		}
		info := &FieldInfo{Name: field.Name, Key: field.Name, Index: field.Index}
		parsed, err := ParseStructTag(tag)
		if err != nil {
			return nil, fmt.Errorf("failed to parse tag on field %s: %w", field.Name, err)
		}
		if _, ok := parsed["omit"]; ok {
			continue
		}
		if _, ok := parsed["-"]; ok {
			continue
		}
		if name, ok := parsed["field"]; ok && name != "" {
			info.Key = name
		}
		_, info.Optional = parsed["optional"]
		if seen[info.Key] {
			return nil, fmt.Errorf("field name conflict: %q in %s", info.Key, typ)
		}
		seen[info.Key] = true
		res = append(res, info)
	}
	return res, nil
}
