package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		got, err := ParseFormat(f.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != f {
			t.Errorf("%s round tripped to %s", f, got)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected bad format, got %v", err)
	}
	var f Format
	if err := f.UnmarshalText([]byte("y")); err != nil || !f.IsYAML() {
		t.Errorf("unmarshal y: %v %s", err, f)
	}
}

func TestFromSuffix(t *testing.T) {
	tests := []struct {
		name string
		want Format
	}{
		{"a.json", JSONFormat},
		{"a.yaml", YAMLFormat},
		{"a.yml", YAMLFormat},
		{"a.sjson", SerjsonFormat},
		{"a.txt", SerjsonFormat},
		{".json", SerjsonFormat},
	}
	for _, tt := range tests {
		if got := FromSuffix(tt.name); got != tt.want {
			t.Errorf("FromSuffix(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}
}
