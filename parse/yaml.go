package parse

import (
	"fmt"
	"strconv"

	"github.com/signadot/serjson/go-serjson/ir"

	"gopkg.in/yaml.v3"
)

// ParseYAML imports the first document of a YAML stream, with the same
// top-level conventions as ParseJSON. An empty stream yields no nodes.
func ParseYAML(d []byte, opts ...ParseOption) ([]*ir.Node, error) {
	pOpts := newParseOpts(opts)
	var doc yaml.Node
	if err := yaml.Unmarshal(d, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}
	node, err := fromYAML(doc.Content[0], 0, pOpts)
	if err != nil {
		return nil, err
	}
	return topLevel(node), nil
}

func fromYAML(y *yaml.Node, depth int, opts *parseOpts) (*ir.Node, error) {
	if opts.aliasDepth > 0 {
		opts.aliasNodes++
		if opts.aliasNodes > opts.maxAliasNodes {
			return nil, fmt.Errorf("%w: yaml aliases expand past %d nodes at line %d", ErrParse, opts.maxAliasNodes, y.Line)
		}
	}
	switch y.Kind {
	case yaml.DocumentNode:
		if len(y.Content) == 0 {
			return ir.Null(), nil
		}
		return fromYAML(y.Content[0], depth, opts)
	case yaml.AliasNode:
		if y.Alias == nil {
			return nil, fmt.Errorf("%w: unresolved alias at line %d", ErrParse, y.Line)
		}
		opts.aliasDepth++
		n, err := fromYAML(y.Alias, depth, opts)
		opts.aliasDepth--
		return n, err
	case yaml.MappingNode:
		if depth >= opts.maxDepth {
			return nil, fmt.Errorf("%w: %d", ErrMaxDepth, opts.maxDepth)
		}
		children := make([]*ir.Node, 0, len(y.Content)/2)
		for i := 0; i+1 < len(y.Content); i += 2 {
			k, v := y.Content[i], y.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: non-scalar key at line %d", ErrParse, k.Line)
			}
			child, err := fromYAML(v, depth+1, opts)
			if err != nil {
				return nil, err
			}
			children = append(children, child.WithKey(k.Value))
		}
		return ir.FromObject(children...), nil
	case yaml.SequenceNode:
		if depth >= opts.maxDepth {
			return nil, fmt.Errorf("%w: %d", ErrMaxDepth, opts.maxDepth)
		}
		children := make([]*ir.Node, 0, len(y.Content))
		for _, v := range y.Content {
			child, err := fromYAML(v, depth+1, opts)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		return ir.FromArray(children...), nil
	case yaml.ScalarNode:
		return yamlScalar(y)
	}
	return nil, fmt.Errorf("%w: unsupported yaml node kind %d at line %d", ErrParse, y.Kind, y.Line)
}

func yamlScalar(y *yaml.Node) (*ir.Node, error) {
	switch y.ShortTag() {
	case "!!null":
		return ir.Null(), nil
	case "!!bool":
		b, err := strconv.ParseBool(y.Value)
		if err != nil {
			var v bool
			if err := y.Decode(&v); err != nil {
				return nil, fmt.Errorf("%w: bool at line %d: %w", ErrParse, y.Line, err)
			}
			b = v
		}
		return ir.FromBool(b), nil
	case "!!int", "!!float":
		var f float64
		if err := y.Decode(&f); err != nil {
			return nil, fmt.Errorf("%w: number at line %d: %w", ErrParse, y.Line, err)
		}
		return ir.FromNumber(float32(f)), nil
	}
	return ir.FromString(y.Value), nil
}
