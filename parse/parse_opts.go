package parse

// DefaultMaxDepth bounds container nesting when no MaxDepth option is
// given.
const DefaultMaxDepth = 512

// DefaultMaxAliasNodes bounds the nodes YAML alias expansion may produce
// when no MaxAliasNodes option is given.
const DefaultMaxAliasNodes = 10000

type parseOpts struct {
	maxDepth      int
	maxAliasNodes int

	// yaml alias expansion state
	aliasDepth int
	aliasNodes int
}

type ParseOption func(*parseOpts)

// MaxDepth sets the deepest container nesting the parser descends into.
// Values below 1 leave the default in place.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		if n > 0 {
			o.maxDepth = n
		}
	}
}

// MaxAliasNodes sets how many nodes YAML aliases may expand to in total.
// Values below 1 leave the default in place.
func MaxAliasNodes(n int) ParseOption {
	return func(o *parseOpts) {
		if n > 0 {
			o.maxAliasNodes = n
		}
	}
}

func newParseOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth, maxAliasNodes: DefaultMaxAliasNodes}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}
