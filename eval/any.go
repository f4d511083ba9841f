package eval

import (
	"fmt"
	"maps"
	"slices"

	"github.com/signadot/serjson/go-serjson/ir"
	"github.com/signadot/serjson/go-serjson/parse"

	json "github.com/goccy/go-json"
)

// ToAny converts a node to plain Go values: map[string]any, []any,
// string, float64, bool or nil. Empty members of objects are dropped.
func ToAny(node *ir.Node) any {
	switch v := node.Value.(type) {
	case ir.Object:
		res := make(map[string]any, len(v))
		for _, c := range v {
			if c.IsEmpty() {
				continue
			}
			res[c.Key] = ToAny(c)
		}
		return res
	case ir.Array:
		res := make([]any, len(v))
		for i, c := range v {
			res[i] = ToAny(c)
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

// FromAny converts the result of an expression back to a node. Values
// other than the ones ToAny produces go through their JSON encoding.
func FromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case *ir.Node:
		if x == nil {
			return ir.Null(), nil
		}
		return x.Clone(), nil
	case []*ir.Node:
		res := make([]*ir.Node, len(x))
		for i, elt := range x {
			res[i] = elt.Clone()
		}
		return ir.FromArray(res...), nil
	case string:
		return ir.FromString(x), nil
	case bool:
		return ir.FromBool(x), nil
	case int:
		return ir.FromNumber(float32(x)), nil
	case int64:
		return ir.FromNumber(float32(x)), nil
	case float32:
		return ir.FromNumber(x), nil
	case float64:
		return ir.FromNumber(float32(x)), nil
	case []any:
		res := make([]*ir.Node, len(x))
		for i, elt := range x {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			res[i] = n
		}
		return ir.FromArray(res...), nil
	case map[string]any:
		res := make([]*ir.Node, 0, len(x))
		for _, k := range slices.Sorted(maps.Keys(x)) {
			n, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			res = append(res, n.WithKey(k))
		}
		return ir.FromObject(res...), nil
	}
	// wrapped in an array so ParseJSON yields exactly the value
	d, err := json.Marshal([]any{v})
	if err != nil {
		return nil, fmt.Errorf("could not convert %T: %w", v, err)
	}
	nodes, err := parse.ParseJSON(d)
	if err != nil {
		return nil, err
	}
	if len(nodes) != 1 {
		return nil, fmt.Errorf("could not convert %T", v)
	}
	return nodes[0], nil
}
