package main

import (
	"fmt"
	"io"

	"github.com/signadot/serjson/go-serjson/ir"
	"github.com/signadot/serjson/go-serjson/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 arguments", cli.ErrUsage)
	}
	from, err := readArg(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	to, err := readArg(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		from, to = to, from
	}
	n, err := writeDiff(cc.Out, from.Nodes, to.Nodes)
	if err != nil {
		return err
	}
	if n != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func writeDiff(w io.Writer, from, to []*ir.Node) (int, error) {
	changes := libdiff.DiffNodes(from, to)
	for _, c := range changes {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return 0, err
		}
	}
	return len(changes), nil
}
