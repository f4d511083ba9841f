package token

// Stack hands out tokens in order. Peek and Pop are O(1).
type Stack struct {
	rev []Token
}

func NewStack(toks []Token) *Stack {
	rev := make([]Token, len(toks))
	for i, t := range toks {
		rev[len(toks)-1-i] = t
	}
	return &Stack{rev: rev}
}

func (s *Stack) Len() int {
	return len(s.rev)
}

func (s *Stack) Empty() bool {
	return len(s.rev) == 0
}

// Peek returns the next token without consuming it.
func (s *Stack) Peek() (Token, bool) {
	if len(s.rev) == 0 {
		return Token{}, false
	}
	return s.rev[len(s.rev)-1], true
}

// Pop consumes and returns the next token.
func (s *Stack) Pop() (Token, bool) {
	t, ok := s.Peek()
	if ok {
		s.rev = s.rev[:len(s.rev)-1]
	}
	return t, ok
}

// Remaining returns the unconsumed tokens in order.
func (s *Stack) Remaining() []Token {
	res := make([]Token, len(s.rev))
	for i := range s.rev {
		res[i] = s.rev[len(s.rev)-1-i]
	}
	return res
}
