package encode

import (
	"bytes"
	"testing"

	"github.com/signadot/serjson/go-serjson/format"
	"github.com/signadot/serjson/go-serjson/ir"
	"github.com/signadot/serjson/go-serjson/parse"

	"github.com/google/go-cmp/cmp"
)

func TestEncodeYAML(t *testing.T) {
	got := MustString(example(), EncodeFormat(format.YAMLFormat))
	want := `example:
    a: 5
    b: example
    c:
        - true
        - false
    inner:
        x: 13
`
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	nodes := []*ir.Node{
		ir.FromString("true").WithKey("quoted"),
		ir.FromString("12").WithKey("digits"),
		ir.FromNumber(1.5).WithKey("f"),
		ir.Null().WithKey("n"),
		ir.FromArray(ir.FromBool(false)).WithKey("a"),
	}
	buf := &bytes.Buffer{}
	if err := EncodeNodes(nodes, buf, EncodeFormat(format.YAMLFormat), EncodeIndent(2)); err != nil {
		t.Fatal(err)
	}
	got, err := parse.ParseYAML(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(nodes, got); diff != "" {
		t.Errorf("round trip differs (-want +got):\n%s\n%s", diff, buf)
	}
}
