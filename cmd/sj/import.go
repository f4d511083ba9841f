package main

import (
	"fmt"

	serjson "github.com/signadot/serjson/go-serjson"
	"github.com/signadot/serjson/go-serjson/format"

	"github.com/scott-cotton/cli"
)

func sjImport(cfg *ImportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Import.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: import requires an input and optionally an output", cli.ErrUsage)
	}
	doc, err := readArg(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	if len(args) == 1 {
		return writeNodes(cfg.MainConfig, cc.Out, doc.Nodes)
	}
	out := &serjson.Document{FilePath: args[1], Nodes: doc.Nodes}
	f := format.FromSuffix(out.FilePath)
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return serjson.WriteErr(out, serjson.WithFormat(f), serjson.WithLogger(theLog))
}
