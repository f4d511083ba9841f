package encode

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/signadot/serjson/go-serjson/debug"
	"github.com/signadot/serjson/go-serjson/format"
	"github.com/signadot/serjson/go-serjson/ir"
	"github.com/signadot/serjson/go-serjson/token"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	format format.Format
	indent int

	Color func(ir.Type, ColorAttr, string) string
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes node to w.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	switch es.format {
	case format.JSONFormat:
		return encodeJSON(node, w, es)
	case format.YAMLFormat:
		return encodeYAML(node, w, es)
	}
	return encode(node, w, es)
}

// EncodeNodes writes the top-level members of a document. In serjson they
// are always wrapped as an object. In JSON and YAML, members that all lack
// keys are wrapped as an array instead.
func EncodeNodes(nodes []*ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	if debug.Encode() {
		debug.Logf("encoding %d nodes as %s\n", len(nodes), es.format)
	}
	switch es.format {
	case format.JSONFormat:
		return encodeJSON(wrap(nodes), w, es)
	case format.YAMLFormat:
		return encodeYAML(wrap(nodes), w, es)
	}
	if err := writeSep(w, es, ir.ObjectType, "{ "); err != nil {
		return err
	}
	if err := encodeChildren(nodes, w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ObjectType, " }")
}

func wrap(nodes []*ir.Node) *ir.Node {
	if len(nodes) == 0 {
		return ir.FromObject()
	}
	for _, n := range nodes {
		if n.Key != "" {
			return &ir.Node{Value: ir.Object(nodes)}
		}
	}
	return &ir.Node{Value: ir.Array(nodes)}
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	t := node.Type()
	if node.Key != "" {
		if err := writeString(w, applyColor(es, t, FieldColor, token.Quote(node.Key))); err != nil {
			return err
		}
		if err := writeSep(w, es, t, ": "); err != nil {
			return err
		}
	}
	switch v := node.Value.(type) {
	case ir.String:
		return writeString(w, applyColor(es, t, ValueColor, token.Quote(string(v))))
	case ir.Number:
		return writeString(w, applyColor(es, t, ValueColor, FormatNumber(float32(v))))
	case ir.Bool:
		return writeString(w, applyColor(es, t, ValueColor, strconv.FormatBool(bool(v))))
	case ir.NullValue:
		return writeString(w, applyColor(es, t, ValueColor, "null"))
	case ir.Object:
		return encodeContainer(v, "{ ", " }", w, es, t)
	case ir.Array:
		return encodeContainer(v, "[ ", " ]", w, es, t)
	}
	return nil
}

func encodeContainer(children []*ir.Node, lb, rb string, w io.Writer, es *EncState, t ir.Type) error {
	if len(children) == 0 {
		return writeString(w, applyColor(es, ir.NullType, ValueColor, "null"))
	}
	if err := writeSep(w, es, t, lb); err != nil {
		return err
	}
	if err := encodeChildren(children, w, es); err != nil {
		return err
	}
	return writeSep(w, es, t, rb)
}

func encodeChildren(children []*ir.Node, w io.Writer, es *EncState) error {
	for i, c := range children {
		if i > 0 {
			if err := writeSep(w, es, ir.ObjectType, ", "); err != nil {
				return err
			}
		}
		if err := encode(c, w, es); err != nil {
			return err
		}
	}
	return nil
}

// FormatNumber renders f with 6 decimals. Non-finite values come out as
// NaN, +Inf and -Inf, which the parser does not read back as numbers.
func FormatNumber(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', 6, 64)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func writeSep(w io.Writer, es *EncState, t ir.Type, sep string) error {
	return writeString(w, applyColor(es, t, SepColor, sep))
}

func applyColor(es *EncState, t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}
