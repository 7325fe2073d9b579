package debug

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/relic-format/go-relic/token"
	"github.com/relic-format/go-relic/walk"
)

// Trace dumps the full token stream of v to stderr when enabled. label
// names the operation in the output.
func Trace(label string, v walk.Describer) {
	if !Tokens() {
		return
	}
	sink := &token.SliceSink{}
	if err := walk.Emit(v, sink); err != nil {
		fmt.Fprintf(os.Stderr, "# %s: emit failed: %v\n", label, err)
		return
	}
	fmt.Fprintf(os.Stderr, "# %s\n%s", label, dump(sink.Tokens))
}

func dump(toks []*token.Token) string {
	rows := make([]map[string]any, 0, len(toks))
	for _, t := range toks {
		row := map[string]any{"kind": t.Kind.String()}
		switch t.Kind {
		case token.KindFormatVersion:
			row["version"] = t.Version
		case token.KindObjectHeader:
			row["version"] = t.Version
			row["type"] = t.TypeName
		case token.KindProperty:
			row["name"] = t.Name
			if t.Recurse {
				row["recurse"] = true
			} else {
				row["scalar"] = scalarField(t.Scalar)
			}
		case token.KindListHeader:
			row["name"] = t.Name
			row["length"] = t.Length
		case token.KindListItem:
			if t.Recurse {
				row["recurse"] = true
			} else {
				row["scalar"] = scalarField(t.Scalar)
			}
		}
		rows = append(rows, row)
	}
	out, err := yaml.Marshal(rows)
	if err != nil {
		return fmt.Sprintf("# marshal failed: %v\n", err)
	}
	return string(out)
}

// scalarField keeps the dump marshalable: scalar payloads that YAML cannot
// represent are replaced by their formatted form.
func scalarField(v any) any {
	switch v.(type) {
	case nil, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, []byte:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
