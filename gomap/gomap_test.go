package gomap

import (
	"errors"
	"testing"

	"github.com/signadot/serjson/go-serjson/ir"

	"github.com/google/go-cmp/cmp"
)

type Base struct {
	ID int `serjson:"field=id"`
}

type user struct {
	Base
	Name    string
	Tags    []string          `serjson:"field=tags"`
	Labels  map[string]string `serjson:"field=labels optional"`
	Kind    ir.Type           `serjson:"field=kind"`
	Score   float32
	Active  bool
	Secret  string `serjson:"omit"`
	Skipped string `serjson:"-"`
	Next    *user  `serjson:"optional"`
	hidden  int
}

type point struct{ x, y float32 }

func (p point) Serialize() *ir.Node {
	return ir.FromArray(ir.FromNumber(p.x), ir.FromNumber(p.y))
}

func TestToIR(t *testing.T) {
	u := user{
		Base:   Base{ID: 3},
		Name:   "ann",
		Tags:   []string{"a", "b"},
		Kind:   ir.StringType,
		Score:  1.5,
		Active: true,
		Secret: "x",
	}
	got, err := ToIR(&u)
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromObject(
		ir.FromNumber(3).WithKey("id"),
		ir.FromString("ann").WithKey("Name"),
		ir.FromArray(ir.FromString("a"), ir.FromString("b")).WithKey("tags"),
		ir.FromString("String").WithKey("kind"),
		ir.FromNumber(1.5).WithKey("Score"),
		ir.FromBool(true).WithKey("Active"),
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestToIRValues(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want *ir.Node
	}{
		{"nil", nil, ir.Null()},
		{"int", 7, ir.FromNumber(7)},
		{"uint8", uint8(2), ir.FromNumber(2)},
		{"nil slice", []int(nil), ir.Null()},
		{"map", map[string]int{"b": 2, "a": 1}, ir.FromObject(ir.FromNumber(1).WithKey("a"), ir.FromNumber(2).WithKey("b"))},
		{"serializable", point{1, 2}, ir.FromArray(ir.FromNumber(1), ir.FromNumber(2))},
		{"array", [2]bool{true, false}, ir.FromArray(ir.FromBool(true), ir.FromBool(false))},
		{"node", ir.FromString("x"), ir.FromString("x")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToIR(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

type cached struct{ n *ir.Node }

func (c *cached) Serialize() *ir.Node { return c.n }

func TestToIRSerializeCopies(t *testing.T) {
	shared := ir.FromObject(ir.FromNumber(1).WithKey("v")).WithKey("orig")
	got, err := ToIR(&cached{shared})
	if err != nil {
		t.Fatal(err)
	}
	if got == shared {
		t.Fatal("serialized node returned without copying")
	}
	got.WithKey("other")
	got.Get("v").Value = ir.Number(2)
	if shared.Key != "orig" {
		t.Errorf("shared key changed to %q", shared.Key)
	}
	if v, _ := shared.Get("v").AsNumber(); v != 1 {
		t.Errorf("shared member changed to %v", v)
	}
}

func TestToIRErrors(t *testing.T) {
	u := &user{Name: "loop"}
	u.Next = u
	_, err := ToIR(u)
	var me *MarshalError
	if !errors.As(err, &me) {
		t.Fatalf("got %v", err)
	}
	if me.FieldPath != "Next" {
		t.Errorf("field path %q", me.FieldPath)
	}
	if _, err := ToIR(map[int]int{1: 1}); err == nil {
		t.Error("expected error for int keys")
	}
	if _, err := ToIR(make(chan int)); err == nil {
		t.Error("expected error for chan")
	}
}

func TestFromIR(t *testing.T) {
	node := ir.FromObject(
		ir.FromNumber(3).WithKey("id"),
		ir.FromString("ann").WithKey("Name"),
		ir.FromArray(ir.FromString("a")).WithKey("tags"),
		ir.FromObject(ir.FromString("v").WithKey("k")).WithKey("labels"),
		ir.FromString("Bool").WithKey("kind"),
		ir.FromNumber(2.5).WithKey("Score"),
		ir.FromBool(true).WithKey("Active"),
		ir.FromString("ignored").WithKey("unknown"),
		ir.FromObject(ir.FromString("bob").WithKey("Name")).WithKey("Next"),
	)
	var got user
	if err := FromIR(node, &got); err != nil {
		t.Fatal(err)
	}
	want := user{
		Base:   Base{ID: 3},
		Name:   "ann",
		Tags:   []string{"a"},
		Labels: map[string]string{"k": "v"},
		Kind:   ir.BoolType,
		Score:  2.5,
		Active: true,
		Next:   &user{Name: "bob"},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(user{})); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestFromIRAny(t *testing.T) {
	var v any
	node := ir.FromObject(ir.FromArray(ir.FromNumber(1), ir.Null()).WithKey("a"))
	if err := FromIR(node, &v); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"a": []any{1.0, nil}}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestFromIRErrors(t *testing.T) {
	var i int
	if err := FromIR(ir.FromNumber(1.5), &i); err == nil {
		t.Error("expected error for fraction")
	}
	var u8 uint8
	if err := FromIR(ir.FromNumber(300), &u8); err == nil {
		t.Error("expected overflow error")
	}
	var s string
	err := FromIR(ir.FromNumber(1), &s)
	if !errors.Is(err, ir.ErrTypeMismatch) {
		t.Errorf("got %v", err)
	}
	if err := FromIR(ir.FromString("x"), s); err == nil {
		t.Error("expected error for non pointer")
	}
	var u user
	err = FromIR(ir.FromObject(ir.FromString("x").WithKey("Score")), &u)
	var ue *UnmarshalError
	if !errors.As(err, &ue) || ue.FieldPath != "Score" {
		t.Errorf("got %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	in := map[string][]float64{"xs": {1, 2.5}, "ys": nil}
	node, err := ToIR(in)
	if err != nil {
		t.Fatal(err)
	}
	var out map[string][]float64
	if err := FromIR(node, &out); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestParseStructTag(t *testing.T) {
	got, err := ParseStructTag(`field='a b',optional`)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]string{"field": "a b", "optional": ""}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, err := ParseStructTag(`field='x`); err == nil {
		t.Error("expected unterminated quote error")
	}
}
