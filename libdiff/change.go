package libdiff

import (
	"github.com/signadot/serjson/go-serjson/encode"
	"github.com/signadot/serjson/go-serjson/ir"
)

type Op int

const (
	OpReplace Op = iota
	OpInsert
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpInsert:
		return "+"
	case OpDelete:
		return "-"
	}
	return "~"
}

// Change records one differing node. From is nil for an insertion and To
// is nil for a deletion.
type Change struct {
	Path string
	From *ir.Node
	To   *ir.Node
}

func (c Change) Op() Op {
	switch {
	case c.From == nil:
		return OpInsert
	case c.To == nil:
		return OpDelete
	}
	return OpReplace
}

func (c Change) String() string {
	path := "$"
	if c.Path != "" {
		path = "$." + c.Path
		if c.Path[0] == '[' {
			path = "$" + c.Path
		}
	}
	switch c.Op() {
	case OpInsert:
		return "+ " + path + ": " + valueString(c.To)
	case OpDelete:
		return "- " + path + ": " + valueString(c.From)
	}
	return "~ " + path + ": " + valueString(c.From) + " -> " + valueString(c.To)
}

func valueString(n *ir.Node) string {
	if n.Key == "" {
		return encode.MustString(n)
	}
	return encode.MustString(&ir.Node{Value: n.Value})
}
