package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/relic-format/go-relic/walk"
)

type renderState struct {
	depth  int
	indent int
	color  *Colors
}

type Option func(*renderState)

// WithIndent sets the indent step in spaces (default 2).
func WithIndent(n int) Option {
	return func(rs *renderState) { rs.indent = n }
}

// WithColors enables ANSI colors. A nil Colors leaves output plain.
func WithColors(c *Colors) Option {
	return func(rs *renderState) { rs.color = c }
}

// Render walks v's described parts and returns a deterministic indented
// tree. Given stable part and list order the output is byte-stable, which
// is what makes it usable for regression comparisons and for checking
// clone/round-trip fidelity.
func Render(v walk.Describer, opts ...Option) string {
	var sb strings.Builder
	// strings.Builder never errors
	_ = RenderTo(&sb, v, opts...)
	return sb.String()
}

// RenderTo renders v into w.
func RenderTo(w io.Writer, v walk.Describer, opts ...Option) error {
	rs := &renderState{indent: 2}
	for _, opt := range opts {
		opt(rs)
	}
	return renderObject(w, v, rs)
}

// renderObject prints the type-name header line and then each part one
// level deeper. The caller has already written any field prefix for the
// header line.
func renderObject(w io.Writer, v walk.Describer, rs *renderState) error {
	head := rs.apply(TypeColor, walk.TypeName(v)) + " " + rs.mark("(object)")
	if err := writeLine(w, head, rs, false); err != nil {
		return err
	}
	parts := v.Describe(walk.NewFormatter())
	rs.depth++
	defer func() { rs.depth-- }()
	for _, p := range parts {
		if err := renderPart(w, p, rs); err != nil {
			return err
		}
	}
	return nil
}

func renderPart(w io.Writer, p walk.Part, rs *renderState) error {
	prefix := rs.field(p.Name) + ": "
	switch p.Kind {
	case walk.PartNested:
		if err := writeIndent(w, rs); err != nil {
			return err
		}
		if err := writeString(w, prefix); err != nil {
			return err
		}
		return renderObject(w, p.Nested, rs)
	case walk.PartList:
		if err := writeLine(w, prefix+rs.mark("(list)"), rs, true); err != nil {
			return err
		}
		rs.depth++
		defer func() { rs.depth-- }()
		for _, item := range p.Items {
			if item.Kind == walk.PartNested {
				if err := writeIndent(w, rs); err != nil {
					return err
				}
				if err := renderObject(w, item.Nested, rs); err != nil {
					return err
				}
				continue
			}
			if err := writeLine(w, rs.scalar(item.Scalar), rs, true); err != nil {
				return err
			}
		}
		return nil
	default:
		return writeLine(w, prefix+rs.scalar(p.Scalar), rs, true)
	}
}

func (rs *renderState) scalar(v any) string {
	if v == nil {
		return rs.apply(NullColor, "[null]")
	}
	return rs.apply(ValueColor, scalarText(v))
}

func (rs *renderState) field(name string) string {
	return rs.apply(FieldColor, name)
}

func (rs *renderState) mark(m string) string {
	return rs.apply(MarkerColor, m)
}

func (rs *renderState) apply(attr ColorAttr, s string) string {
	if rs.color == nil {
		return s
	}
	return rs.color.Color(attr, s)
}

// scalarText is the textual form of a scalar. It must be deterministic;
// every branch formats a single value with a fixed rule.
func scalarText(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.FormatInt(int64(x), 10)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case []byte:
		return fmt.Sprintf("%x", x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

func writeIndent(w io.Writer, rs *renderState) error {
	return writeString(w, strings.Repeat(" ", rs.indent*rs.depth))
}

func writeLine(w io.Writer, s string, rs *renderState, indent bool) error {
	if indent {
		if err := writeIndent(w, rs); err != nil {
			return err
		}
	}
	return writeString(w, s+"\n")
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
