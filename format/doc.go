// Package format names the text formats serjson trees can be encoded to
// and imported from.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//	err = encode.Encode(node, w, encode.EncodeFormat(f))
//
// # Related Packages
//
//   - github.com/signadot/serjson/go-serjson/parse - Parse text to IR
//   - github.com/signadot/serjson/go-serjson/encode - Encode IR to text
package format
