package eval

import (
	"fmt"
	"maps"

	"github.com/signadot/serjson/go-serjson/debug"
	"github.com/signadot/serjson/go-serjson/ir"

	"github.com/expr-lang/expr"
)

// Env holds extra variables for an expression.
type Env map[string]any

// Eval evaluates src with the members of doc in scope.
func Eval(doc *ir.Node, src string) (*ir.Node, error) {
	return EvalEnv(doc, src, nil)
}

// EvalEnv is like Eval with additional variables. Variables in env shadow
// document members of the same name.
func EvalEnv(doc *ir.Node, src string, env Env) (*ir.Node, error) {
	v, err := run(doc, src, env)
	if err != nil {
		return nil, err
	}
	return FromAny(v)
}

func run(doc *ir.Node, src string, env Env) (any, error) {
	if debug.Eval() {
		debug.Logf("eval %q\n", src)
	}
	prg, err := expr.Compile(src, exprOpts(doc)...)
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", src, err)
	}
	res, err := expr.Run(prg, scope(doc, env))
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", src, err)
	}
	return res, nil
}

func scope(doc *ir.Node, env Env) map[string]any {
	res := map[string]any{}
	if m, ok := ToAny(doc).(map[string]any); ok {
		res = m
	}
	maps.Copy(res, env)
	return res
}
