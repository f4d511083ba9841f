package libdiff

import (
	"github.com/signadot/serjson/go-serjson/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns the changes which turn from into to, in document order.
func Diff(from, to *ir.Node) []Change {
	var res []Change
	diff(nil, from, to, &res)
	return res
}

// DiffNodes is Diff for two sequences of top-level document nodes.
func DiffNodes(from, to []*ir.Node) []Change {
	return Diff(&ir.Node{Value: ir.Object(from)}, &ir.Node{Value: ir.Object(to)})
}

func diff(path []ir.PathElt, from, to *ir.Node, res *[]Change) {
	if from.Type() != to.Type() {
		*res = append(*res, Change{Path: ir.JoinPath(path), From: from, To: to})
		return
	}
	switch fv := from.Value.(type) {
	case ir.Object:
		diffObject(path, fv, to.Value.(ir.Object), res)
	case ir.Array:
		diffArray(path, fv, to.Value.(ir.Array), res)
	default:
		if ir.Compare(from, to) != 0 {
			*res = append(*res, Change{Path: ir.JoinPath(path), From: from, To: to})
		}
	}
}

// diffObject aligns member keys as runes so that members which are only
// reordered or surrounded by insertions still pair up.
func diffObject(path []ir.PathElt, from, to []*ir.Node, res *[]Change) {
	fieldMap := map[string]rune{}
	fromRunes := mapFieldsTo(fieldMap, from)
	toRunes := mapFieldsTo(fieldMap, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := range diffs {
		d := &diffs[i]
		for range []rune(d.Text) {
			switch d.Type {
			case diffpatch.DiffDelete:
				f := from[fi]
				*res = append(*res, Change{Path: ir.JoinPath(ir.AppendField(path, f.Key)), From: f})
				fi++
			case diffpatch.DiffEqual:
				f, t := from[fi], to[ti]
				diff(ir.AppendField(path, f.Key), f, t, res)
				fi++
				ti++
			case diffpatch.DiffInsert:
				t := to[ti]
				*res = append(*res, Change{Path: ir.JoinPath(ir.AppendField(path, t.Key)), To: t})
				ti++
			}
		}
	}
}

func diffArray(path []ir.PathElt, from, to []*ir.Node, res *[]Change) {
	n := min(len(from), len(to))
	for i := 0; i < n; i++ {
		diff(ir.AppendIndex(path, i), from[i], to[i], res)
	}
	for i := n; i < len(from); i++ {
		*res = append(*res, Change{Path: ir.JoinPath(ir.AppendIndex(path, i)), From: from[i]})
	}
	for i := n; i < len(to); i++ {
		*res = append(*res, Change{Path: ir.JoinPath(ir.AppendIndex(path, i)), To: to[i]})
	}
}

// mapFieldsTo maps each distinct key to a rune.
func mapFieldsTo(m map[string]rune, nodes []*ir.Node) []rune {
	rs := make([]rune, len(nodes))
	for i, n := range nodes {
		r, ok := m[n.Key]
		if !ok {
			r = rune(len(m))
			m[n.Key] = r
		}
		rs[i] = r
	}
	return rs
}
