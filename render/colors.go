package render

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorAttr selects which render element a color applies to.
type ColorAttr int

const (
	TypeColor ColorAttr = iota
	FieldColor
	ValueColor
	NullColor
	MarkerColor
)

// Colors maps render elements to sprintf-style colorizers.
type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

// NewColors returns the default color scheme.
func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
	colors.Map[TypeColor] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[FieldColor] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[ValueColor] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[NullColor] = color.RGB(168, 0, 196).SprintfFunc()
	colors.Map[MarkerColor] = color.RGB(255, 0, 196).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

// AutoColors returns the default scheme when w is a terminal and nil
// otherwise, so piped output stays plain.
func AutoColors(w io.Writer) *Colors {
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return nil
	}
	return NewColors()
}

func (c *Colors) Color(a ColorAttr, s string) string {
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}
