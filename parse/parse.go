package parse

import (
	"fmt"
	"strconv"

	"github.com/signadot/serjson/go-serjson/debug"
	"github.com/signadot/serjson/go-serjson/ir"
	"github.com/signadot/serjson/go-serjson/token"
)

// ParseBytes parses serjson document text and returns the members of its
// top-level object. Text whose first token does not open an object yields
// no nodes; in particular top-level arrays are not read.
func ParseBytes(d []byte, opts ...ParseOption) ([]*ir.Node, error) {
	toks := token.Tokenize(token.FromLines(d))
	if debug.Tokens() {
		debug.Logf("tokens: %v\n", toks)
	}
	var res []*ir.Node
	err := ParseDocument(token.NewStack(toks), &res, opts...)
	return res, err
}

// ParseDocument is Parse restricted to a top-level object.
func ParseDocument(toks *token.Stack, target *[]*ir.Node, opts ...ParseOption) error {
	if t, ok := toks.Peek(); !ok || t.Type != token.TLCurl {
		return nil
	}
	return Parse(toks, target, opts...)
}

// Parse consumes one object or array from toks, appending its children to
// target. If the next token opens neither, nothing is consumed.
func Parse(toks *token.Stack, target *[]*ir.Node, opts ...ParseOption) error {
	pOpts := newParseOpts(opts)
	err := parseContainer(toks, target, 0, pOpts)
	if debug.Parse() && !toks.Empty() {
		debug.Logf("%d tokens left after parse: %v\n", toks.Len(), toks.Remaining())
	}
	return err
}

func parseContainer(toks *token.Stack, target *[]*ir.Node, depth int, opts *parseOpts) error {
	open, ok := toks.Peek()
	if !ok || !open.IsOpen() {
		return nil
	}
	if depth >= opts.maxDepth {
		return fmt.Errorf("%w: %d", ErrMaxDepth, opts.maxDepth)
	}
	isArray := open.Type == token.TLSquare
	toks.Pop()

	for {
		t, ok := toks.Peek()
		if !ok || t.IsClose() {
			break
		}
		node := &ir.Node{}
		if !isArray && t.Type == token.TString {
			toks.Pop()
			node.Key = token.Unquote(t.Text)
			colon, ok := toks.Peek()
			if !ok || colon.Type != token.TColon {
				if debug.Parse() {
					debug.Logf("key %q not followed by ':', abandoning object\n", node.Key)
				}
				return nil
			}
			toks.Pop()
			if t, ok = toks.Peek(); !ok || t.IsClose() {
				break
			}
		}
		switch t.Type {
		case token.TLCurl, token.TLSquare:
			var children []*ir.Node
			err := parseContainer(toks, &children, depth+1, opts)
			if t.Type == token.TLCurl {
				node.Value = ir.Object(children)
			} else {
				node.Value = ir.Array(children)
			}
			*target = append(*target, node)
			if err != nil {
				return err
			}
			continue
		}
		toks.Pop()
		switch t.Type {
		case token.TString:
			node.Value = ir.String(token.Unquote(t.Text))
		case token.TNumber:
			node.Value = ir.Number(parseNumber(t.Text))
		case token.TTrue:
			node.Value = ir.Bool(true)
		case token.TFalse:
			node.Value = ir.Bool(false)
		case token.TNull:
			node.Value = ir.NullValue{}
		default:
			if debug.Parse() {
				debug.Logf("skipping %s\n", t)
			}
			continue
		}
		*target = append(*target, node)
	}
	if t, ok := toks.Peek(); ok && t.IsClose() {
		toks.Pop()
	}
	return nil
}

// parseNumber reads the longest numeric prefix of s as a 32-bit float.
func parseNumber(s string) float32 {
	end := numberPrefix(s)
	// out of range values come back as ±Inf along with the error
	f, _ := strconv.ParseFloat(s[:end], 32)
	return float32(f)
}

func numberPrefix(s string) int {
	i, n := 0, len(s)
	digits := func() {
		for i < n && s[i] >= '0' && s[i] <= '9' {
			i++
		}
	}
	digits()
	if i < n && s[i] == '.' {
		i++
		digits()
	}
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		j := i
		i++
		if i < n && (s[i] == '+' || s[i] == '-') {
			i++
		}
		k := i
		digits()
		if i == k {
			i = j
		}
	}
	return i
}
