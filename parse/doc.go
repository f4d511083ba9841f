// Package parse rebuilds ir trees from token streams.
//
// # Usage
//
//	// Parse serjson text into top-level members
//	nodes, err := parse.ParseBytes([]byte(`{ "a": 1.000000, "b": "hi" }`))
//
//	// Parse an already tokenized stream
//	var nodes []*ir.Node
//	err := parse.Parse(token.NewStack(toks), &nodes)
//
//	// Import strict JSON or YAML
//	nodes, err := parse.ParseJSON(data)
//	nodes, err := parse.ParseYAML(data)
//
// The serjson parser degrades silently on malformed input: an object
// member without a quoted key gets an empty key, and tokens that do not
// start a value are skipped. The only error it reports is exceeding the
// maximum nesting depth, in which case everything parsed so far is kept.
//
// # Related Packages
//
//   - github.com/signadot/serjson/go-serjson/ir - IR representation
//   - github.com/signadot/serjson/go-serjson/encode - Encode IR to text
//   - github.com/signadot/serjson/go-serjson/token - Tokenization
package parse
