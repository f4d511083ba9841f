package parse

import (
	"errors"
	"testing"

	"github.com/signadot/serjson/go-serjson/ir"

	"github.com/google/go-cmp/cmp"
)

func TestParseYAML(t *testing.T) {
	in := `
name: demo
count: 3
ratio: 0.5
enabled: true
missing: null
tags:
  - a
  - b
inner:
  x: 13
`
	got, err := ParseYAML([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []*ir.Node{
		ir.FromString("demo").WithKey("name"),
		ir.FromNumber(3).WithKey("count"),
		ir.FromNumber(0.5).WithKey("ratio"),
		ir.FromBool(true).WithKey("enabled"),
		ir.Null().WithKey("missing"),
		ir.FromArray(ir.FromString("a"), ir.FromString("b")).WithKey("tags"),
		ir.FromObject(ir.FromNumber(13).WithKey("x")).WithKey("inner"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("nodes differ (-want +got):\n%s", diff)
	}
}

func TestParseYAMLAlias(t *testing.T) {
	in := "base: &b\n  v: 1\ncopy: *b\n"
	got, err := ParseYAML([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d nodes", len(got))
	}
	if !ir.Equal(got[0].Get("v"), got[1].Get("v")) {
		t.Errorf("alias not resolved")
	}
}

func TestParseYAMLAliasExpansion(t *testing.T) {
	laughs := `a: &a ["lol","lol","lol","lol","lol","lol","lol","lol","lol"]
b: &b [*a,*a,*a,*a,*a,*a,*a,*a,*a]
c: &c [*b,*b,*b,*b,*b,*b,*b,*b,*b]
d: &d [*c,*c,*c,*c,*c,*c,*c,*c,*c]
e: &e [*d,*d,*d,*d,*d,*d,*d,*d,*d]
f: &f [*e,*e,*e,*e,*e,*e,*e,*e,*e]
g: &g [*f,*f,*f,*f,*f,*f,*f,*f,*f]
`
	if _, err := ParseYAML([]byte(laughs)); !errors.Is(err, ErrParse) {
		t.Errorf("expected parse error, got %v", err)
	}
	in := "base: &b [1, 2, 3]\ncopy: *b\n"
	if _, err := ParseYAML([]byte(in), MaxAliasNodes(3)); !errors.Is(err, ErrParse) {
		t.Errorf("expected parse error with small budget, got %v", err)
	}
	got, err := ParseYAML([]byte(in), MaxAliasNodes(4))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || !ir.Equal(got[0], got[1].WithKey("base")) {
		t.Errorf("got %v", got)
	}
}

func TestParseYAMLEmpty(t *testing.T) {
	got, err := ParseYAML(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %d nodes", len(got))
	}
	if _, err := ParseYAML([]byte("a: [")); !errors.Is(err, ErrParse) {
		t.Errorf("expected parse error, got %v", err)
	}
}
