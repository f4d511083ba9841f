package ir

type Node struct {
	Key   string
	Value Value
}

// Type reports the kind of value n holds. A nil node or a node without a
// value is of EmptyType.
func (n *Node) Type() Type {
	if n == nil || n.Value == nil {
		return EmptyType
	}
	return n.Value.Type()
}

func (n *Node) IsEmpty() bool {
	return n.Type() == EmptyType
}

func (n *Node) WithKey(key string) *Node {
	n.Key = key
	return n
}

// Empty returns a new node holding no value.
func Empty() *Node {
	return &Node{}
}

func FromString(v string) *Node {
	return &Node{Value: String(v)}
}

func FromNumber(v float32) *Node {
	return &Node{Value: Number(v)}
}

func FromBool(v bool) *Node {
	return &Node{Value: Bool(v)}
}

func Null() *Node {
	return &Node{Value: NullValue{}}
}

// FromObject returns an object node with the given members. The members
// are expected to carry keys.
func FromObject(children ...*Node) *Node {
	return &Node{Value: Object(children)}
}

// FromArray returns an array node with the given elements. Element keys are
// cleared.
func FromArray(children ...*Node) *Node {
	for _, c := range children {
		c.Key = ""
	}
	return &Node{Value: Array(children)}
}

// Children returns the children of an object or array node, nil otherwise.
func (n *Node) Children() []*Node {
	cs, _ := n.AsChildren()
	return cs
}

// Lookup returns the first child of an object node with the given key.
func (n *Node) Lookup(key string) (*Node, bool) {
	obj, ok := n.value().(Object)
	if !ok {
		return nil, false
	}
	for _, c := range obj {
		if c.Key == key {
			return c, true
		}
	}
	return nil, false
}

// Get is like Lookup but returns a new empty node when there is no such
// child.
func (n *Node) Get(key string) *Node {
	if c, ok := n.Lookup(key); ok {
		return c
	}
	return Empty()
}

// At returns element i of an array node.
func (n *Node) At(i int) (*Node, bool) {
	arr, ok := n.value().(Array)
	if !ok || len(arr) == 0 {
		return nil, false
	}
	if i < 0 || i >= len(arr) {
		return nil, false
	}
	return arr[i], true
}

// Index is like At but returns a new empty node when there is no such
// element.
func (n *Node) Index(i int) *Node {
	if c, ok := n.At(i); ok {
		return c
	}
	return Empty()
}

func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	res := &Node{Key: n.Key}
	switch v := n.Value.(type) {
	case Object:
		res.Value = Object(cloneAll(v))
	case Array:
		res.Value = Array(cloneAll(v))
	default:
		res.Value = v
	}
	return res
}

func cloneAll(ns []*Node) []*Node {
	if ns == nil {
		return nil
	}
	res := make([]*Node, len(ns))
	for i, c := range ns {
		res[i] = c.Clone()
	}
	return res
}

// Visit calls f on n before and after its children. Children are only
// visited when the pre-order call returns true.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.Children() {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
