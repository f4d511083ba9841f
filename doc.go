// Package serjson persists trees of ir nodes in a small JSON-like text
// format and reads them back.
//
// # Usage
//
//	doc := &serjson.Document{FilePath: "state.sjson"}
//	serjson.AddSerializable(example, doc)
//	serjson.AddNode(ir.FromNumber(13).WithKey("x"), doc)
//	serjson.Write(doc)
//
//	doc = serjson.Read("state.sjson")
//	x, err := doc.Get("x").AsNumber()
//
// Reading never fails: a missing, unreadable or empty file gives a
// document with no nodes, and malformed text gives whatever could be
// recovered. Write likewise ignores failure to open the file; use WriteErr
// to see errors.
//
// # Format
//
// The document is written as one object, { "key": value, ... }. Every
// piece of punctuation is separated by a space, strings are written
// without escaping and numbers as 32-bit floats with 6 decimals. Empty
// objects and arrays are written as null. A document whose text starts
// with '[' reads as empty.
//
// # Related Packages
//
//   - github.com/signadot/serjson/go-serjson/ir - IR representation
//   - github.com/signadot/serjson/go-serjson/parse - Parse text to IR
//   - github.com/signadot/serjson/go-serjson/encode - Encode IR to text
package serjson
