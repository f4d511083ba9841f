package debug

import (
	"io"
	"strconv"
	"strings"

	"github.com/signadot/serjson/go-serjson/ir"
)

// String renders n for diagnostics. The output is not serjson and is not
// meant to be parsed: keyed nodes render as { key: "k", value: v}, strings
// are unquoted and numbers use at most 6 significant digits.
func String(n *ir.Node) string {
	b := &strings.Builder{}
	write(b, n)
	return b.String()
}

// Strings renders each node with String, separated by ", ".
func Strings(ns []*ir.Node) string {
	b := &strings.Builder{}
	b.WriteString("[ ")
	writeAll(b, ns)
	b.WriteString(" ]")
	return b.String()
}

// Fprint writes the debug rendering of n to w.
func Fprint(w io.Writer, n *ir.Node) error {
	_, err := io.WriteString(w, String(n))
	return err
}

func write(b *strings.Builder, n *ir.Node) {
	if n == nil {
		b.WriteString("<nil>")
		return
	}
	keyed := n.Key != ""
	if keyed {
		b.WriteString(`{ key: "`)
		b.WriteString(n.Key)
		b.WriteString(`", value: `)
	}
	switch v := n.Value.(type) {
	case ir.String:
		b.WriteString(string(v))
	case ir.Number:
		b.WriteString(strconv.FormatFloat(float64(v), 'g', 6, 32))
	case ir.Bool:
		b.WriteString(strconv.FormatBool(bool(v)))
	case ir.NullValue:
		b.WriteString(v.Text())
	case ir.Object:
		b.WriteString("{ ")
		writeAll(b, v)
		b.WriteString(" } ")
	case ir.Array:
		b.WriteString("[ ")
		writeAll(b, v)
		b.WriteString(" ] ")
	}
	if keyed {
		b.WriteString("}")
	}
}

func writeAll(b *strings.Builder, ns []*ir.Node) {
	for i, c := range ns {
		if i > 0 {
			b.WriteString(", ")
		}
		write(b, c)
	}
}
