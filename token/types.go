package token

import (
	"fmt"
	"strings"
)

type TokenType int

const (
	TLiteral TokenType = iota
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TColon
	TString
	TNumber
	TTrue
	TFalse
	TNull
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TLiteral: "TLiteral",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TColon:   "TColon",
		TString:  "TString",
		TNumber:  "TNumber",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TNull:    "TNull",
	}[t]
}

type Token struct {
	Type TokenType
	Text string
}

func NewToken(text string) Token {
	return Token{Type: Classify(text), Text: text}
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q", t.Type, t.Text)
}

// IsOpen reports whether t opens an object or array.
func (t Token) IsOpen() bool {
	return t.Type == TLCurl || t.Type == TLSquare
}

// IsClose reports whether t closes an object or array.
func (t Token) IsClose() bool {
	return t.Type == TRCurl || t.Type == TRSquare
}

// Classify determines the type of a token from its text. The checks are
// ordered: a leading quote wins over a leading digit, which wins over the
// keywords and punctuation.
func Classify(s string) TokenType {
	if s == "" {
		return TLiteral
	}
	switch {
	case s[0] == '"':
		return TString
	case isDigit(s[0]):
		return TNumber
	}
	switch s {
	case "true":
		return TTrue
	case "false":
		return TFalse
	case "null":
		return TNull
	case "{":
		return TLCurl
	case "}":
		return TRCurl
	case "[":
		return TLSquare
	case "]":
		return TRSquare
	case ":":
		return TColon
	}
	return TLiteral
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Unquote strips one pair of surrounding double quotes. Text not both
// starting and ending with a quote is returned unchanged.
func Unquote(s string) string {
	if len(s) < 2 || !strings.HasPrefix(s, `"`) || !strings.HasSuffix(s, `"`) {
		return s
	}
	return s[1 : len(s)-1]
}

// Quote wraps s in double quotes without escaping anything.
func Quote(s string) string {
	return `"` + s + `"`
}
