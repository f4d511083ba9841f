// Package gomap converts between ir nodes and Go values.
//
// # Usage
//
//	type User struct {
//	    Name string
//	    Age  int    `serjson:"field=age"`
//	    Note string `serjson:"optional"`
//	}
//	node, err := gomap.ToIR(User{Name: "ann", Age: 7})
//
//	var user User
//	err = gomap.FromIR(node, &user)
//
// Values implementing Serialize() *ir.Node or encoding.TextMarshaler are
// converted with those methods. Numbers are stored as float32, so integers
// beyond 2^24 lose precision.
//
// # Struct tags
//
// The serjson tag holds space or comma separated flags and key=value pairs:
//
//   - field=name renames the member
//   - optional omits the member when the field is the zero value
//   - omit (or -) skips the field
//
// # Related Packages
//
//   - github.com/signadot/serjson/go-serjson/ir - IR representation
package gomap
