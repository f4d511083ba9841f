package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// PathElt is one step of a path: either a field or an index.
type PathElt struct {
	Field *string
	Index *int
}

func (e PathElt) String() string {
	if e.Index != nil {
		return "[" + strconv.Itoa(*e.Index) + "]"
	}
	return *e.Field
}

// ParsePath parses a path such as "a.b[2].c". A leading "$" is accepted
// and ignored. Fields containing '.', '[' or spaces may be double quoted.
func ParsePath(p string) ([]PathElt, error) {
	p = strings.TrimPrefix(p, "$")
	p = strings.TrimPrefix(p, ".")
	var res []PathElt
	i, n := 0, len(p)
	for i < n {
		switch p[i] {
		case '.':
			i++
			if i == n {
				return nil, fmt.Errorf("%w: trailing '.' in %q", ErrPath, p)
			}
		case '[':
			j := strings.IndexByte(p[i:], ']')
			if j == -1 {
				return nil, fmt.Errorf("%w: unterminated index in %q", ErrPath, p)
			}
			idx, err := strconv.Atoi(p[i+1 : i+j])
			if err != nil {
				return nil, fmt.Errorf("%w: bad index %q: %w", ErrPath, p[i+1:i+j], err)
			}
			res = append(res, PathElt{Index: &idx})
			i += j + 1
			continue
		}
		if p[i] == '"' {
			j := strings.IndexByte(p[i+1:], '"')
			if j == -1 {
				return nil, fmt.Errorf("%w: unterminated quote in %q", ErrPath, p)
			}
			f := p[i+1 : i+1+j]
			res = append(res, PathElt{Field: &f})
			i += j + 2
			continue
		}
		j := i
		for j < n && p[j] != '.' && p[j] != '[' {
			j++
		}
		if j == i {
			continue
		}
		f := p[i:j]
		res = append(res, PathElt{Field: &f})
		i = j
	}
	return res, nil
}

// GetPath follows path from n. The empty path yields n itself.
func (n *Node) GetPath(path string) (*Node, error) {
	elts, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	res := n
	for i, elt := range elts {
		var (
			next *Node
			ok   bool
		)
		if elt.Index != nil {
			next, ok = res.At(*elt.Index)
		} else {
			next, ok = res.Lookup(*elt.Field)
		}
		if !ok {
			return nil, fmt.Errorf("%w: %s at %s (%s)", ErrNotFound, elt, JoinPath(elts[:i]), res.Type())
		}
		res = next
	}
	return res, nil
}

// JoinPath renders a parsed path back to text.
func JoinPath(elts []PathElt) string {
	var b strings.Builder
	for _, elt := range elts {
		if elt.Index != nil {
			b.WriteString(elt.String())
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		f := *elt.Field
		if strings.ContainsAny(f, ".[] ") {
			f = `"` + f + `"`
		}
		b.WriteString(f)
	}
	return b.String()
}

// AppendField returns path extended by a field step.
func AppendField(path []PathElt, field string) []PathElt {
	res := make([]PathElt, len(path), len(path)+1)
	copy(res, path)
	return append(res, PathElt{Field: &field})
}

// AppendIndex returns path extended by an index step.
func AppendIndex(path []PathElt, i int) []PathElt {
	res := make([]PathElt, len(path), len(path)+1)
	copy(res, path)
	return append(res, PathElt{Index: &i})
}
