// Package eval evaluates expr-lang expressions against serjson trees.
//
// The members of the document are visible to an expression by key, so
// given { "a": 1.000000, "b": { "c": "hi" } }
//
//	a + 1        // 2
//	b.c          // "hi"
//	getpath("b.c")
//	getenv("HOME")
//
// Strings can also embed expressions as $[expr], see ExpandString.
//
// # Related Packages
//
//   - github.com/signadot/serjson/go-serjson/ir - IR representation
package eval
