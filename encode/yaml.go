package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/signadot/serjson/go-serjson/ir"

	"gopkg.in/yaml.v3"
)

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	if node.Key != "" {
		node = &ir.Node{Value: ir.Object{node}}
	}
	y, err := toYAML(node)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	if es.indent > 0 {
		enc.SetIndent(es.indent)
	}
	if err := enc.Encode(y); err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return enc.Close()
}

func toYAML(node *ir.Node) (*yaml.Node, error) {
	switch v := node.Value.(type) {
	case ir.String:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(v)}, nil
	case ir.Number:
		f := float64(v)
		if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatFloat(f, 'f', -1, 64)}, nil
		}
		switch {
		case math.IsNaN(f):
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: ".nan"}, nil
		case math.IsInf(f, 1):
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: ".inf"}, nil
		case math.IsInf(f, -1):
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: "-.inf"}, nil
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(f, 'g', -1, 32)}, nil
	case ir.Bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(bool(v))}, nil
	case ir.NullValue:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case ir.Object:
		res := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, c := range v {
			val, err := toYAML(c)
			if err != nil {
				return nil, err
			}
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: c.Key}
			res.Content = append(res.Content, key, val)
		}
		return res, nil
	case ir.Array:
		res := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, c := range v {
			val, err := toYAML(c)
			if err != nil {
				return nil, err
			}
			res.Content = append(res.Content, val)
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w: %s node in yaml", ErrEncoding, node.Type())
}
