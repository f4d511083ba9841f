package ir

import (
	"errors"
	"testing"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  error
	}{
		{in: "", want: ""},
		{in: "$", want: ""},
		{in: "a", want: "a"},
		{in: "$.a.b", want: "a.b"},
		{in: "a[0].b", want: "a[0].b"},
		{in: "[1][2]", want: "[1][2]"},
		{in: `a."b.c"`, want: `a."b.c"`},
		{in: "a.", err: ErrPath},
		{in: "a[x]", err: ErrPath},
		{in: "a[0", err: ErrPath},
		{in: `"a`, err: ErrPath},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			elts, err := ParsePath(tt.in)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("expected %v, got %v", tt.err, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got := JoinPath(elts); got != tt.want {
				t.Errorf("got %q want %q", got, tt.want)
			}
		})
	}
}

func TestGetPath(t *testing.T) {
	root := sample()
	x, err := root.GetPath("inner.x")
	if err != nil {
		t.Fatal(err)
	}
	if f, _ := x.AsNumber(); f != 13 {
		t.Errorf("inner.x = %v", f)
	}
	c1, err := root.GetPath("$.c[1]")
	if err != nil {
		t.Fatal(err)
	}
	if b, _ := c1.AsBool(); b {
		t.Errorf("c[1] = true")
	}
	self, err := root.GetPath("")
	if err != nil || self != root {
		t.Errorf("empty path: %v", err)
	}
	if _, err := root.GetPath("c[2]"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
	if _, err := root.GetPath("a.b"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestAppendPath(t *testing.T) {
	p := AppendField(nil, "a")
	q := AppendIndex(p, 3)
	r := AppendField(p, "b")
	if got := JoinPath(q); got != "a[3]" {
		t.Errorf("got %q", got)
	}
	if got := JoinPath(r); got != "a.b" {
		t.Errorf("got %q", got)
	}
}
