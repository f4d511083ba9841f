package serjson

import (
	"bufio"
	"fmt"
	"os"

	"github.com/signadot/serjson/go-serjson/encode"
)

// Write serializes doc and overwrites doc.FilePath. Errors are logged and
// otherwise ignored.
func Write(doc *Document, opts ...Option) {
	o := newOptions(opts)
	if err := writeDoc(doc, o); err != nil {
		o.logger.Debug("unable to write document", "path", doc.FilePath, "error", err)
	}
}

// WriteErr is like Write but reports errors.
func WriteErr(doc *Document, opts ...Option) error {
	return writeDoc(doc, newOptions(opts))
}

func writeDoc(doc *Document, o *options) (err error) {
	f, err := os.OpenFile(doc.FilePath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open %q: %w", doc.FilePath, err)
	}
	defer func() {
		if cErr := f.Close(); cErr != nil && err == nil {
			err = cErr
		}
	}()
	w := bufio.NewWriter(f)
	if err := encode.EncodeNodes(doc.Nodes, w, encode.EncodeFormat(o.format)); err != nil {
		return fmt.Errorf("error encoding %q: %w", doc.FilePath, err)
	}
	return w.Flush()
}
