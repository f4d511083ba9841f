package libdiff

import (
	"testing"

	"github.com/signadot/serjson/go-serjson/ir"

	"github.com/google/go-cmp/cmp"
)

func TestDiffEqual(t *testing.T) {
	a := ir.FromObject(
		ir.FromNumber(1).WithKey("a"),
		ir.FromArray(ir.FromBool(true)).WithKey("b"),
	)
	if cs := Diff(a, a.Clone()); len(cs) != 0 {
		t.Errorf("got %v", cs)
	}
}

func TestDiff(t *testing.T) {
	from := ir.FromObject(
		ir.FromNumber(1).WithKey("a"),
		ir.FromString("x").WithKey("b"),
		ir.FromObject(ir.FromBool(true).WithKey("on")).WithKey("c"),
		ir.FromArray(ir.FromNumber(1), ir.FromNumber(2), ir.FromNumber(3)).WithKey("d"),
	)
	to := ir.FromObject(
		ir.FromNumber(1).WithKey("a"),
		ir.FromObject(ir.FromBool(false).WithKey("on")).WithKey("c"),
		ir.FromArray(ir.FromNumber(1), ir.FromNumber(5)).WithKey("d"),
		ir.Null().WithKey("e"),
	)
	got := Diff(from, to)
	want := []string{
		`- $.b: "x"`,
		`~ $.c.on: true -> false`,
		`~ $.d[1]: 2.000000 -> 5.000000`,
		`- $.d[2]: 3.000000`,
		`+ $.e: null`,
	}
	strs := make([]string, len(got))
	for i, c := range got {
		strs[i] = c.String()
	}
	if diff := cmp.Diff(want, strs); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got[0].Op() != OpDelete || got[1].Op() != OpReplace || got[4].Op() != OpInsert {
		t.Errorf("ops: %v %v %v", got[0].Op(), got[1].Op(), got[4].Op())
	}
}

func TestDiffTypeChange(t *testing.T) {
	from := ir.FromObject(ir.FromString("1").WithKey("a"))
	to := ir.FromObject(ir.FromObject().WithKey("a"))
	got := Diff(from, to)
	if len(got) != 1 || got[0].Path != "a" || got[0].Op() != OpReplace {
		t.Fatalf("got %v", got)
	}
	if s := got[0].String(); s != `~ $.a: "1" -> null` {
		t.Errorf("got %q", s)
	}
}

func TestDiffNodes(t *testing.T) {
	from := []*ir.Node{ir.FromNumber(1).WithKey("x")}
	to := []*ir.Node{ir.FromNumber(1).WithKey("x"), ir.FromNumber(2).WithKey("y")}
	got := DiffNodes(from, to)
	if len(got) != 1 || got[0].Path != "y" || got[0].To != to[1] {
		t.Errorf("got %v", got)
	}
}
