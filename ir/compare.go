package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Keys of a and b themselves are not compared; keys of object members are.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type())
	rankB := rank(b.Type())
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch av := a.Value.(type) {
	case Number:
		return cmp.Compare(av, b.Value.(Number))
	case String:
		return strings.Compare(string(av), string(b.Value.(String)))
	case Bool:
		bv := b.Value.(Bool)
		if av == bv {
			return 0
		}
		if !av {
			return -1
		}
		return 1
	case Array:
		return compareChildren(av, b.Value.(Array), false)
	case Object:
		return compareChildren(av, b.Value.(Object), true)
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Empty < Null < Bool < Number < String < Array < Object
func rank(t Type) int {
	switch t {
	case EmptyType:
		return 0
	case NullType:
		return 1
	case BoolType:
		return 2
	case NumberType:
		return 3
	case StringType:
		return 4
	case ArrayType:
		return 5
	case ObjectType:
		return 6
	}
	return 100
}

func compareChildren(as, bs []*Node, keyed bool) int {
	minLen := min(len(as), len(bs))
	for i := 0; i < minLen; i++ {
		if keyed {
			if c := strings.Compare(as[i].Key, bs[i].Key); c != 0 {
				return c
			}
		}
		if c := Compare(as[i], bs[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(as), len(bs))
}

// Equal reports whether a and b have the same key and value.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Key == b.Key && Compare(a, b) == 0
}
