package main

import (
	"fmt"

	"github.com/signadot/serjson/go-serjson/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	if _, err := ir.ParsePath(path); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	for _, arg := range stdinArgs(args[1:]) {
		doc, err := readArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		n, err := doc.Root().GetPath(path)
		if err != nil {
			return fmt.Errorf("error getting %s from %s: %w", path, arg, err)
		}
		if err := writeNode(cfg.MainConfig, cc.Out, &ir.Node{Value: n.Value}); err != nil {
			return err
		}
	}
	return nil
}
