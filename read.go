package serjson

import (
	"io"
	"os"

	"github.com/signadot/serjson/go-serjson/format"
	"github.com/signadot/serjson/go-serjson/ir"
	"github.com/signadot/serjson/go-serjson/parse"
)

// Read loads the document at path. Failures are logged and yield a
// document with whatever nodes could be recovered, possibly none.
func Read(path string, opts ...Option) *Document {
	o := newOptions(opts)
	d, err := readFile(path)
	if err != nil {
		o.logger.Debug("unable to read document", "path", path, "error", err)
		return &Document{FilePath: path}
	}
	return readBytes(path, d, o)
}

// ReadBytes is like Read but takes the document text directly. path is
// only recorded in the result.
func ReadBytes(path string, d []byte, opts ...Option) *Document {
	return readBytes(path, d, newOptions(opts))
}

func readBytes(path string, d []byte, o *options) *Document {
	doc := &Document{FilePath: path}
	if len(d) == 0 {
		return doc
	}
	var (
		nodes []*ir.Node
		err   error
	)
	switch o.format {
	case format.JSONFormat:
		nodes, err = parse.ParseJSON(d, o.parseOpts()...)
	case format.YAMLFormat:
		nodes, err = parse.ParseYAML(d, o.parseOpts()...)
	default:
		nodes, err = parse.ParseBytes(d, o.parseOpts()...)
	}
	if err != nil {
		o.logger.Warn("error parsing document", "path", path, "format", o.format, "nodes", len(nodes), "error", err)
	}
	doc.Nodes = nodes
	return doc
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
