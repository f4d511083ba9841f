package main

import (
	"fmt"

	"github.com/signadot/serjson/go-serjson/debug"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, arg := range stdinArgs(args) {
		doc, err := readArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if err := writeNodes(cfg.MainConfig, cc.Out, doc.Nodes); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, arg := range stdinArgs(args) {
		doc, err := readArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		fmt.Fprintln(cc.Out, doc)
		for _, n := range doc.Nodes {
			if err := debug.Fprint(cc.Out, n); err != nil {
				return err
			}
			fmt.Fprintln(cc.Out)
		}
	}
	return nil
}
