// Package libdiff computes structural differences between serjson trees.
//
// # Usage
//
//	for _, c := range libdiff.Diff(oldNode, newNode) {
//		fmt.Println(c)
//	}
//
// Object members are matched by key, array elements by position. Each
// Change names the path of a node that was inserted, deleted or replaced.
//
// # Related Packages
//
//   - github.com/signadot/serjson/go-serjson/ir - IR representation
package libdiff
