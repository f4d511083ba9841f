package token

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStack(t *testing.T) {
	s := NewStack(Tokenize([]byte("{ 1 } ")))
	if s.Len() != 3 {
		t.Fatalf("len %d", s.Len())
	}
	tok, ok := s.Peek()
	if !ok || tok.Type != TLCurl {
		t.Fatalf("peek got %v", tok)
	}
	if diff := cmp.Diff([]string{"{", "1", "}"}, texts(s.Remaining())); diff != "" {
		t.Errorf("remaining (-want +got):\n%s", diff)
	}
	for _, want := range []TokenType{TLCurl, TNumber, TRCurl} {
		tok, ok := s.Pop()
		if !ok || tok.Type != want {
			t.Fatalf("pop got %v %v, want %s", tok, ok, want)
		}
	}
	if !s.Empty() {
		t.Fatal("stack not empty")
	}
	if _, ok := s.Pop(); ok {
		t.Error("pop on empty stack succeeded")
	}
	if _, ok := s.Peek(); ok {
		t.Error("peek on empty stack succeeded")
	}
}
