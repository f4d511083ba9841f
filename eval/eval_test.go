package eval

import (
	"testing"

	"github.com/signadot/serjson/go-serjson/ir"

	"github.com/google/go-cmp/cmp"
)

func testDoc() *ir.Node {
	return ir.FromObject(
		ir.FromNumber(1).WithKey("a"),
		ir.FromObject(ir.FromString("hi").WithKey("c")).WithKey("b"),
		ir.FromArray(ir.FromNumber(1), ir.FromNumber(2), ir.FromNumber(3)).WithKey("xs"),
		ir.FromBool(true).WithKey("on"),
	)
}

func TestEval(t *testing.T) {
	t.Setenv("SJ_EVAL_TEST", "from env")
	tests := []struct {
		src  string
		want *ir.Node
	}{
		{"a + 1", ir.FromNumber(2)},
		{"1 + 2", ir.FromNumber(3)},
		{"b.c", ir.FromString("hi")},
		{`getpath("b.c")`, ir.FromString("hi")},
		{`getpath("xs[2]")`, ir.FromNumber(3)},
		{`haspath("b.zz")`, ir.FromBool(false)},
		{"len(xs)", ir.FromNumber(3)},
		{"!on", ir.FromBool(false)},
		{"nil", ir.Null()},
		{`getenv("SJ_EVAL_TEST")`, ir.FromString("from env")},
		{"b", ir.FromObject(ir.FromString("hi").WithKey("c"))},
		{"xs", ir.FromArray(ir.FromNumber(1), ir.FromNumber(2), ir.FromNumber(3))},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := Eval(testDoc(), tt.src)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	for _, src := range []string{`getpath("nope")`, "a +", `getpath("[")`} {
		if _, err := Eval(testDoc(), src); err == nil {
			t.Errorf("%s: expected error", src)
		}
	}
}

func TestEvalEnv(t *testing.T) {
	got, err := EvalEnv(testDoc(), "a + extra", Env{"extra": 10})
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := got.AsNumber(); n != 11 {
		t.Errorf("got %v", n)
	}
}

func TestExpandString(t *testing.T) {
	doc := ir.FromObject(
		ir.FromString("X").WithKey("x"),
		ir.FromString("STUFF").WithKey("stuff"),
		ir.FromString("HERE").WithKey("here"),
		ir.FromNumber(2).WithKey("n"),
	)
	tests := []struct{ in, out string }{
		{"abc", "abc"},
		{"$[", "$["},
		{"$[x]", "X"},
		{" $[x]", " X"},
		{"$[x", "$[x"},
		{"some $[stuff] $[here]", "some STUFF HERE"},
		{"some $[ stuff ] $[here] trailing", "some STUFF HERE trailing"},
		{"$abc", "$abc"},
		{"n=$[n]", "n=2.000000"},
	}
	for _, tt := range tests {
		got, err := ExpandString(doc, tt.in, nil)
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if got != tt.out {
			t.Errorf("%q: got %q want %q", tt.in, got, tt.out)
		}
	}
}

func TestExpandEnv(t *testing.T) {
	doc := testDoc()
	node := ir.FromObject(
		ir.FromString("$[b.c] there").WithKey("greeting"),
		ir.FromArray(ir.FromString("$[ a + 1 ]"), ir.FromNumber(7)).WithKey("list"),
	)
	if err := ExpandEnv(doc, node, nil); err != nil {
		t.Fatal(err)
	}
	want := ir.FromObject(
		ir.FromString("hi there").WithKey("greeting"),
		ir.FromArray(ir.FromString("2.000000"), ir.FromNumber(7)).WithKey("list"),
	)
	if diff := cmp.Diff(want, node); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestAnyRoundTrip(t *testing.T) {
	got, err := FromAny(ToAny(testDoc()))
	if err != nil {
		t.Fatal(err)
	}
	// object members come back in key order
	want := ir.FromObject(
		ir.FromNumber(1).WithKey("a"),
		ir.FromObject(ir.FromString("hi").WithKey("c")).WithKey("b"),
		ir.FromBool(true).WithKey("on"),
		ir.FromArray(ir.FromNumber(1), ir.FromNumber(2), ir.FromNumber(3)).WithKey("xs"),
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	type pair struct {
		A int    `json:"a"`
		B string `json:"b"`
	}
	got, err = FromAny(pair{A: 1, B: "x"})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(ir.FromObject(ir.FromNumber(1).WithKey("a"), ir.FromString("x").WithKey("b")), got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
