package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	serjson "github.com/signadot/serjson/go-serjson"
	"github.com/signadot/serjson/go-serjson/encode"
	"github.com/signadot/serjson/go-serjson/ir"

	"github.com/scott-cotton/cli"
)

func sjMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if count(cfg.S, cfg.J, cfg.Y) > 1 {
		return fmt.Errorf("%w: must specify at most one of -s[erjson] -j[son] -y[aml]", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// readArg reads a document from a file, or stdin for "-". Unlike
// serjson.Read, failing to open or read is an error.
func readArg(cfg *MainConfig, arg string) (*serjson.Document, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", arg, err)
	}
	return serjson.ReadBytes(arg, d, cfg.readOpts(arg)...), nil
}

// stdinArgs defaults an empty file list to stdin.
func stdinArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func writeNodes(cfg *MainConfig, w io.Writer, nodes []*ir.Node) error {
	if err := encode.EncodeNodes(nodes, w, cfg.encOpts(w)...); err != nil {
		return err
	}
	_, err := w.Write([]byte{'\n'})
	return err
}

func writeNode(cfg *MainConfig, w io.Writer, node *ir.Node) error {
	if err := encode.Encode(node, w, cfg.encOpts(w)...); err != nil {
		return err
	}
	_, err := w.Write([]byte{'\n'})
	return err
}
