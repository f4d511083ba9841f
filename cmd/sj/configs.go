package main

import (
	"fmt"
	"io"
	"os"

	serjson "github.com/signadot/serjson/go-serjson"
	"github.com/signadot/serjson/go-serjson/encode"
	"github.com/signadot/serjson/go-serjson/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Indent int  `cli:"name=indent desc='indentation for json and yaml output'"`

	S bool `cli:"name=s aliases=serjson desc='do i/o in serjson'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// ioFormat returns the format selected by -s, -j or -y, if any.
func (cfg *MainConfig) ioFormat() (format.Format, bool) {
	switch {
	case cfg.S:
		return format.SerjsonFormat, true
	case cfg.J:
		return format.JSONFormat, true
	case cfg.Y:
		return format.YAMLFormat, true
	}
	return format.SerjsonFormat, false
}

// inFormat is the format used to read file. Without -I or an i/o flag it
// is guessed from the file name.
func (cfg *MainConfig) inFormat(file string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, ok := cfg.ioFormat(); ok {
		return f
	}
	return format.FromSuffix(file)
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	f, _ := cfg.ioFormat()
	return f
}

func (cfg *MainConfig) readOpts(file string) []serjson.Option {
	return []serjson.Option{
		serjson.WithFormat(cfg.inFormat(file)),
		serjson.WithLogger(theLog),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeIndent(cfg.Indent),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env    map[string]any
	Expand bool `cli:"name=x desc='expand embedded expressions in the strings of each file'"`

	Eval *cli.Command
}

type ImportConfig struct {
	*MainConfig

	Import *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge   bool `cli:"name=m desc='patch is a json merge patch'"`
	InPlace bool `cli:"name=w desc='write results back to the files'"`

	Patch *cli.Command
}
