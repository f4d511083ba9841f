package serjson

import (
	"bytes"
	"fmt"

	"github.com/signadot/serjson/go-serjson/encode"
	"github.com/signadot/serjson/go-serjson/format"
	"github.com/signadot/serjson/go-serjson/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

// ApplyJSONPatch applies an RFC 6902 JSON patch to the document. The
// document is converted to JSON, patched and converted back, so paths in
// the patch address top-level nodes by key (or by index when the document
// is an array).
func ApplyJSONPatch(doc *Document, patch []byte) error {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return fmt.Errorf("error decoding patch: %w", err)
	}
	return patchJSON(doc, func(d []byte) ([]byte, error) {
		return ops.Apply(d)
	})
}

// ApplyMergePatch applies an RFC 7386 JSON merge patch to the document.
func ApplyMergePatch(doc *Document, patch []byte) error {
	return patchJSON(doc, func(d []byte) ([]byte, error) {
		return jsonpatch.MergePatch(d, patch)
	})
}

func patchJSON(doc *Document, apply func([]byte) ([]byte, error)) error {
	buf := &bytes.Buffer{}
	if err := encode.EncodeNodes(doc.Nodes, buf, encode.EncodeFormat(format.JSONFormat)); err != nil {
		return err
	}
	out, err := apply(buf.Bytes())
	if err != nil {
		return fmt.Errorf("error applying patch: %w", err)
	}
	nodes, err := parse.ParseJSON(out)
	if err != nil {
		return err
	}
	doc.Nodes = nodes
	return nil
}
