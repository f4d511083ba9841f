package serjson

import (
	"fmt"

	"github.com/signadot/serjson/go-serjson/ir"
)

// Document is the persisted unit: a file path and the members of the
// implicit top-level object.
type Document struct {
	FilePath string
	Nodes    []*ir.Node
}

// Serializable is implemented by types that can describe their state as a
// node.
type Serializable interface {
	Serialize() *ir.Node
}

func (doc *Document) Empty() bool {
	return len(doc.Nodes) == 0
}

// IsArray reports whether the document looks like an array, i.e. its first
// node has no key.
func (doc *Document) IsArray() bool {
	return !doc.Empty() && doc.Nodes[0].Key == ""
}

func (doc *Document) Clear() {
	doc.Nodes = nil
}

// Lookup returns the first top-level node with the given key.
func (doc *Document) Lookup(key string) (*ir.Node, bool) {
	for _, n := range doc.Nodes {
		if n.Key == key {
			return n, true
		}
	}
	return nil, false
}

// Get is like Lookup but returns a new empty node when there is no such
// node.
func (doc *Document) Get(key string) *ir.Node {
	if n, ok := doc.Lookup(key); ok {
		return n
	}
	return ir.Empty()
}

func (doc *Document) At(i int) (*ir.Node, bool) {
	if i < 0 || i >= len(doc.Nodes) {
		return nil, false
	}
	return doc.Nodes[i], true
}

// Index is like At but returns a new empty node when i is out of range.
func (doc *Document) Index(i int) *ir.Node {
	if n, ok := doc.At(i); ok {
		return n
	}
	return ir.Empty()
}

// Root returns the document's nodes as a single object node sharing the
// document's children.
func (doc *Document) Root() *ir.Node {
	return &ir.Node{Value: ir.Object(doc.Nodes)}
}

func (doc *Document) String() string {
	return fmt.Sprintf("{ file path: %q, number of nodes: %d }", doc.FilePath, len(doc.Nodes))
}

// AddNode appends n to the document's top-level nodes.
func AddNode(n *ir.Node, doc *Document) {
	doc.Nodes = append(doc.Nodes, n)
}

// AddSerializable appends the node s serializes to.
func AddSerializable(s Serializable, doc *Document) {
	AddNode(s.Serialize(), doc)
}

// GenerateParent returns an object node with the given key and members.
func GenerateParent(key string, children ...*ir.Node) *ir.Node {
	return ir.FromObject(children...).WithKey(key)
}
