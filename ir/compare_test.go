package ir

import (
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Type Ranking: Empty < Null < Bool < Number < String < Array < Object
		{"Empty < Null", Empty(), Null(), -1},
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Number", FromBool(true), FromNumber(1), -1},
		{"Number < String", FromNumber(1), FromString("a"), -1},
		{"String < Array", FromString("a"), FromArray(), -1},
		{"Array < Object", FromArray(), FromObject(), -1},

		{"false < true", FromBool(false), FromBool(true), -1},
		{"true > false", FromBool(true), FromBool(false), 1},
		{"true == true", FromBool(true), FromBool(true), 0},

		{"Number < Number", FromNumber(1), FromNumber(2), -1},
		{"String < String", FromString("a"), FromString("b"), -1},
		{"Null == Null", Null(), Null(), 0},

		{"Empty Array == Empty Array", FromArray(), FromArray(), 0},
		{"Short Array < Long Array", FromArray(FromNumber(1)), FromArray(FromNumber(1), FromNumber(2)), -1},
		{"Array Element Comparison", FromArray(FromNumber(1)), FromArray(FromNumber(2)), -1},

		{"Empty Object == Empty Object", FromObject(), FromObject(), 0},
		{"Short Object < Long Object",
			FromObject(FromNumber(1).WithKey("a")),
			FromObject(FromNumber(1).WithKey("a"), FromNumber(2).WithKey("b")),
			-1},
		{"Object Key Comparison",
			FromObject(FromNumber(1).WithKey("a")),
			FromObject(FromNumber(1).WithKey("b")),
			-1},
		{"Object Value Comparison",
			FromObject(FromNumber(1).WithKey("a")),
			FromObject(FromNumber(2).WithKey("a")),
			-1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.expected)
			}
			if tt.expected != 0 {
				if got := Compare(tt.b, tt.a); got != -tt.expected {
					t.Errorf("Compare(%v, %v) = %d, want %d", tt.b, tt.a, got, -tt.expected)
				}
			}
		})
	}
}

func TestEqual(t *testing.T) {
	if !Equal(FromNumber(1).WithKey("a"), FromNumber(1).WithKey("a")) {
		t.Errorf("equal nodes reported different")
	}
	if Equal(FromNumber(1).WithKey("a"), FromNumber(1).WithKey("b")) {
		t.Errorf("keys ignored")
	}
	if Equal(nil, Empty()) {
		t.Errorf("nil equal to empty")
	}
	if !Equal(nil, nil) {
		t.Errorf("nil not equal to nil")
	}
}
