package main

import (
	"fmt"
	"os"

	serjson "github.com/signadot/serjson/go-serjson"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	p, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("error reading patch: %w", err)
	}
	files := stdinArgs(args[1:])
	if cfg.InPlace && files[0] == "-" {
		return fmt.Errorf("%w: -w requires files", cli.ErrUsage)
	}
	for _, file := range files {
		doc, err := readArg(cfg.MainConfig, file)
		if err != nil {
			return err
		}
		if cfg.Merge {
			err = serjson.ApplyMergePatch(doc, p)
		} else {
			err = serjson.ApplyJSONPatch(doc, p)
		}
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		if cfg.InPlace {
			if err := serjson.WriteErr(doc, cfg.readOpts(file)...); err != nil {
				return err
			}
			continue
		}
		if err := writeNodes(cfg.MainConfig, cc.Out, doc.Nodes); err != nil {
			return err
		}
	}
	return nil
}
