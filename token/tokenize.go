package token

import (
	"bytes"
	"strings"
)

// FromLines turns file contents into tokenizer input: each line is
// followed by a single space, so line breaks separate tokens.
func FromLines(d []byte) []byte {
	if len(d) == 0 {
		return nil
	}
	lines := bytes.Split(d, []byte{'\n'})
	buf := bytes.NewBuffer(make([]byte, 0, len(d)+len(lines)))
	for _, ln := range lines {
		buf.Write(bytes.TrimSuffix(ln, []byte{'\r'}))
		buf.WriteByte(' ')
	}
	return buf.Bytes()
}

// Tokenize splits src into tokens. src is expected in the form produced by
// FromLines.
func Tokenize(src []byte) []Token {
	s := string(src)
	var res []Token
	for s != "" {
		s = strings.TrimLeft(s, " \t")
		i := strings.IndexByte(s, ' ')
		if i == -1 {
			if s != "" {
				res = append(res, NewToken(s))
			}
			break
		}
		chunk := strings.TrimSuffix(s[:i], ",")
		isKey := false
		if strings.HasSuffix(chunk, ":") {
			isKey = true
			chunk = chunk[:len(chunk)-1]
		}
		if chunk != "" {
			res = append(res, NewToken(chunk))
		}
		if isKey {
			res = append(res, Token{Type: TColon, Text: ":"})
		}
		s = s[i+1:]
	}
	return res
}
