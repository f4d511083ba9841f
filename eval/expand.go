package eval

import (
	"fmt"
	"strings"

	"github.com/signadot/serjson/go-serjson/encode"
	"github.com/signadot/serjson/go-serjson/ir"
)

// ExpandString replaces each $[expr] in s by the result of evaluating expr
// against doc. String results are inserted as is, anything else in its
// serjson form. An unterminated $[ is left alone.
func ExpandString(doc *ir.Node, s string, env Env) (string, error) {
	var b strings.Builder
	for {
		i := strings.Index(s, "$[")
		if i == -1 {
			break
		}
		j := strings.IndexByte(s[i+2:], ']')
		if j == -1 {
			break
		}
		b.WriteString(s[:i])
		src := strings.TrimSpace(s[i+2 : i+2+j])
		v, err := run(doc, src, env)
		if err != nil {
			return "", err
		}
		if str, ok := v.(string); ok {
			b.WriteString(str)
		} else {
			n, err := FromAny(v)
			if err != nil {
				return "", err
			}
			b.WriteString(encode.MustString(n))
		}
		s = s[i+2+j+1:]
	}
	b.WriteString(s)
	return b.String(), nil
}

// ExpandEnv expands every string leaf under node in place. Expressions
// see the members of doc.
func ExpandEnv(doc, node *ir.Node, env Env) error {
	return node.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		s, ok := n.Value.(ir.String)
		if !ok {
			return true, nil
		}
		v, err := ExpandString(doc, string(s), env)
		if err != nil {
			return false, fmt.Errorf("error expanding %q: %w", string(s), err)
		}
		n.Value = ir.String(v)
		return true, nil
	})
}
