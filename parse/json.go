package parse

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/signadot/serjson/go-serjson/ir"

	json "github.com/goccy/go-json"
)

// ParseJSON imports strict JSON. The members of a top-level object, or the
// elements of a top-level array, are returned in document order. A
// top-level scalar is returned as a single unkeyed node.
func ParseJSON(d []byte, opts ...ParseOption) ([]*ir.Node, error) {
	pOpts := newParseOpts(opts)
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	node, err := decodeJSON(dec, 0, pOpts)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after json value", ErrParse)
	}
	return topLevel(node), nil
}

func topLevel(node *ir.Node) []*ir.Node {
	switch v := node.Value.(type) {
	case ir.Object:
		return v
	case ir.Array:
		return v
	}
	return []*ir.Node{node}
}

func decodeJSON(dec *json.Decoder, depth int, opts *parseOpts) (*ir.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	switch v := tok.(type) {
	case json.Delim:
		if depth >= opts.maxDepth {
			return nil, fmt.Errorf("%w: %d", ErrMaxDepth, opts.maxDepth)
		}
		switch v {
		case '{':
			var children []*ir.Node
			for dec.More() {
				kTok, err := dec.Token()
				if err != nil {
					return nil, fmt.Errorf("%w: %w", ErrParse, err)
				}
				key, ok := kTok.(string)
				if !ok {
					return nil, fmt.Errorf("%w: expected object key, got %v", ErrParse, kTok)
				}
				child, err := decodeJSON(dec, depth+1, opts)
				if err != nil {
					return nil, err
				}
				children = append(children, child.WithKey(key))
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrParse, err)
			}
			return ir.FromObject(children...), nil
		case '[':
			var children []*ir.Node
			for dec.More() {
				child, err := decodeJSON(dec, depth+1, opts)
				if err != nil {
					return nil, err
				}
				children = append(children, child)
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrParse, err)
			}
			return ir.FromArray(children...), nil
		}
		return nil, fmt.Errorf("%w: unexpected %v", ErrParse, v)
	case string:
		return ir.FromString(v), nil
	case json.Number:
		f, err := strconv.ParseFloat(string(v), 32)
		if err != nil {
			return nil, fmt.Errorf("%w: number %s: %w", ErrParse, v, err)
		}
		return ir.FromNumber(float32(f)), nil
	case float64:
		return ir.FromNumber(float32(v)), nil
	case bool:
		return ir.FromBool(v), nil
	case nil:
		return ir.Null(), nil
	}
	return nil, fmt.Errorf("%w: unexpected token %v", ErrParse, tok)
}
