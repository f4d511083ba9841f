package encode

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/serjson/go-serjson/ir"

	json "github.com/goccy/go-json"
)

// encodeJSON writes strict JSON: strings and keys are escaped, empty
// containers stay {} or [], and numbers use their shortest form. A keyed
// node is written as a single-member object.
func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	buf := &bytes.Buffer{}
	if node.Key != "" {
		node = &ir.Node{Value: ir.Object{node}}
	}
	if err := appendJSON(buf, node); err != nil {
		return err
	}
	if es.indent > 0 {
		out := &bytes.Buffer{}
		if err := json.Indent(out, buf.Bytes(), "", strings.Repeat(" ", es.indent)); err != nil {
			return fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		buf = out
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func appendJSON(buf *bytes.Buffer, node *ir.Node) error {
	switch v := node.Value.(type) {
	case ir.String:
		return appendJSONString(buf, string(v))
	case ir.Number:
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: %v is not representable in json", ErrEncoding, v)
		}
		buf.WriteString(strconv.FormatFloat(f, 'g', -1, 32))
	case ir.Bool:
		buf.WriteString(strconv.FormatBool(bool(v)))
	case ir.NullValue:
		buf.WriteString("null")
	case ir.Object:
		buf.WriteByte('{')
		for i, c := range v {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := appendJSONString(buf, c.Key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := appendJSON(buf, c); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case ir.Array:
		buf.WriteByte('[')
		for i, c := range v {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := appendJSON(buf, c); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	default:
		return fmt.Errorf("%w: %s node in json", ErrEncoding, node.Type())
	}
	return nil
}

func appendJSONString(buf *bytes.Buffer, s string) error {
	d, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	buf.Write(d)
	return nil
}
