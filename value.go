package serjson

import (
	"github.com/signadot/serjson/go-serjson/gomap"
)

// AddValue converts v with gomap.ToIR and appends it to the document under
// key.
func AddValue(key string, v any, doc *Document) error {
	n, err := gomap.ToIR(v)
	if err != nil {
		return err
	}
	AddNode(n.WithKey(key), doc)
	return nil
}

// Decode stores the node with the given key in the value pointed to by v.
// A missing key decodes as the zero value.
func (doc *Document) Decode(key string, v any) error {
	return gomap.FromIR(doc.Get(key), v)
}
