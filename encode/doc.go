// Package encode renders ir trees as text.
//
// # Usage
//
//	// Encode one node in serjson
//	err := encode.Encode(node, w)
//
//	// Encode the members of a document, wrapped in { ... }
//	err := encode.EncodeNodes(doc.Nodes, w)
//
//	// Export as JSON or YAML
//	err := encode.Encode(node, w, encode.EncodeFormat(format.JSONFormat))
//
// The serjson output is compact and round trips through the parser as long
// as strings contain no spaces: members are joined by ", ", keys are
// written as "key": and numbers always carry 6 decimals. Strings are not
// escaped. Empty objects and arrays are written as null.
//
// # Related Packages
//
//   - github.com/signadot/serjson/go-serjson/ir - IR representation
//   - github.com/signadot/serjson/go-serjson/parse - Parse text to IR
package encode
