package main

import (
	"fmt"
	"strings"

	"github.com/signadot/serjson/go-serjson/eval"

	"github.com/scott-cotton/cli"

	"gopkg.in/yaml.v3"
)

func sjEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Expand {
		return expandFiles(cfg, cc, stdinArgs(args))
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	src := args[0]
	for _, arg := range stdinArgs(args[1:]) {
		doc, err := readArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		res, err := eval.EvalEnv(doc.Root(), src, cfg.Env)
		if err != nil {
			return fmt.Errorf("error evaluating %s: %w", arg, err)
		}
		if err := writeNode(cfg.MainConfig, cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}

func expandFiles(cfg *EvalConfig, cc *cli.Context, files []string) error {
	for _, file := range files {
		doc, err := readArg(cfg.MainConfig, file)
		if err != nil {
			return err
		}
		root := doc.Root()
		if err := eval.ExpandEnv(root, root, cfg.Env); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if err := writeNodes(cfg.MainConfig, cc.Out, doc.Nodes); err != nil {
			return err
		}
	}
	return nil
}

// envFunc sets a.b.c=val in env, decoding val as yaml.
func envFunc(env map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	err := yaml.Unmarshal([]byte(val), &v)
	if err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := env
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot access %s, list or scalar", strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}
