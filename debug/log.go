package debug

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/serjson/go-serjson/ir"
)

var out io.Writer = os.Stderr

// Logf writes a diagnostic message to stderr. *ir.Node arguments are
// rendered with the debug formatter.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			args[i] = String(x)
		case []*ir.Node:
			args[i] = Strings(x)
		}
	}
	fmt.Fprintf(out, msg, args...)
}
