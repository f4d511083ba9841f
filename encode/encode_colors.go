package encode

import (
	"github.com/signadot/serjson/go-serjson/ir"

	"github.com/fatih/color"
)

// Colorable names something the encoder writes: the key, value or
// punctuation of a node of a given type.
type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

// Colors picks a color for each Colorable. Map entries win over ByAttr
// entries, and Default covers the rest.
type Colors struct {
	Default func(string) string
	ByAttr  map[ColorAttr]func(string) string
	Map     map[Colorable]func(string) string
}

// NewColors returns the terminal palette. Keys and punctuation are colored
// the same for every type; scalar values get one color per type.
func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		ByAttr: map[ColorAttr]func(string) string{
			FieldColor: paint(color.FgBlue),
			SepColor:   paint(color.Faint),
		},
		Map: map[Colorable]func(string) string{
			{Type: ir.StringType, Attr: ValueColor}: paint(color.FgGreen),
			{Type: ir.NumberType, Attr: ValueColor}: paint(color.FgCyan),
			{Type: ir.BoolType, Attr: ValueColor}:   paint(color.FgYellow),
			{Type: ir.NullType, Attr: ValueColor}:   paint(color.FgMagenta),
		},
	}
}

// paint ignores color.NoColor: callers decide whether to color at all.
func paint(attrs ...color.Attribute) func(string) string {
	c := color.New(attrs...)
	c.EnableColor()
	f := c.SprintFunc()
	return func(s string) string { return f(s) }
}

func colorDefault(v string) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string) string {
	if f := c.Map[Colorable{Type: t, Attr: a}]; f != nil {
		return f
	}
	if f := c.ByAttr[a]; f != nil {
		return f
	}
	if c.Default == nil {
		return colorDefault
	}
	return c.Default
}
