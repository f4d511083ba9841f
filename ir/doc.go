// Package ir provides the in-memory value tree for serjson documents.
//
// # Overview
//
// A document is a tree of [Node] values. Each node carries an optional key
// and a [Value]. A non-empty key marks an object member; an empty key marks
// an array element (or a free-standing value).
//
// Value is a closed sum type:
//
//   - [String]: unescaped text
//   - [Number]: a 32-bit float
//   - [Bool]: true or false
//   - [NullValue]: the literal null
//   - [Object]: keyed children, in order
//   - [Array]: unkeyed children, in order
//
// The node type is always derived from the value, so the two can never
// disagree. A node with no value has [EmptyType]; it is what failed lookups
// return.
//
// # Creating Nodes
//
//	obj := ir.FromObject(
//	    ir.FromNumber(13).WithKey("x"),
//	    ir.FromArray(ir.FromBool(true), ir.FromBool(false)).WithKey("c"),
//	)
//
// # Navigation
//
// [Node.Get] and [Node.Index] never fail: a missing child yields a freshly
// allocated empty node, so results of failed lookups never share state.
// [Node.Lookup] and [Node.At] are the checked forms, and [Node.GetPath]
// follows a path like "a.b[2]".
//
// # Related Packages
//
//   - github.com/signadot/serjson/go-serjson/parse - Parse text to IR
//   - github.com/signadot/serjson/go-serjson/encode - Encode IR to text
package ir
