package walk

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/relic-format/go-relic/token"
)

type leaf struct {
	Label string
	N     int64
}

func (l *leaf) SchemaVersion() int { return 1 }

func (l *leaf) Describe(f *Formatter) []Part {
	return []Part{
		f.Format("Label", l.Label),
		f.Format("N", l.N),
	}
}

func (l *leaf) Load(r *Reader, storedVersion int) error {
	var err error
	if l.Label, err = ReadScalar[string](r); err != nil {
		return err
	}
	l.N, err = ReadScalar[int64](r)
	return err
}

type branch struct {
	Name   string
	Child  *leaf
	Tags   []string
	Leaves []*leaf
	Note   any
}

func (b *branch) SchemaVersion() int { return 3 }

func (b *branch) Describe(f *Formatter) []Part {
	return []Part{
		f.Format("Name", b.Name),
		f.Format("Child", b.Child),
		f.Format("Tags", b.Tags),
		f.Format("Leaves", b.Leaves),
		f.Format("Note", b.Note),
	}
}

func (b *branch) Load(r *Reader, storedVersion int) error {
	var err error
	if b.Name, err = ReadScalar[string](r); err != nil {
		return err
	}
	if b.Child, err = ReadScalar[*leaf](r); err != nil {
		return err
	}
	if b.Tags, err = ReadList[string](r); err != nil {
		return err
	}
	if b.Leaves, err = ReadList[*leaf](r); err != nil {
		return err
	}
	b.Note, err = ReadScalar[any](r)
	return err
}

func testBranch() *branch {
	return &branch{
		Name:   "root",
		Child:  &leaf{Label: "only", N: 7},
		Tags:   []string{"a", "b"},
		Leaves: []*leaf{{Label: "x", N: 1}, {Label: "y", N: 2}},
	}
}

// flat is a token flattened for comparison.
type flat struct {
	Kind    string
	Name    string
	Type    string
	Version int32
	Recurse bool
	Scalar  any
	Length  int32
}

func flatten(toks []*token.Token) []flat {
	out := make([]flat, len(toks))
	for i, t := range toks {
		out[i] = flat{
			Kind: t.Kind.String(), Name: t.Name, Type: t.TypeName,
			Version: t.Version, Recurse: t.Recurse, Scalar: t.Scalar,
			Length: t.Length,
		}
	}
	return out
}

func TestEmitOrder(t *testing.T) {
	sink := &token.SliceSink{}
	if err := Emit(testBranch(), sink); err != nil {
		t.Fatalf("emit: %v", err)
	}
	want := []flat{
		{Kind: "FormatVersion", Version: 1},
		{Kind: "ObjectHeader", Type: "branch", Version: 3},
		{Kind: "Property", Name: "Name", Scalar: "root"},
		{Kind: "Property", Name: "Child", Recurse: true},
		{Kind: "ObjectHeader", Type: "leaf", Version: 1},
		{Kind: "Property", Name: "Label", Scalar: "only"},
		{Kind: "Property", Name: "N", Scalar: int64(7)},
		{Kind: "ObjectFooter"},
		{Kind: "ListHeader", Name: "Tags", Length: 2},
		{Kind: "ListItem", Scalar: "a"},
		{Kind: "ListItem", Scalar: "b"},
		{Kind: "ListHeader", Name: "Leaves", Length: 2},
		{Kind: "ListItem", Recurse: true},
		{Kind: "ObjectHeader", Type: "leaf", Version: 1},
		{Kind: "Property", Name: "Label", Scalar: "x"},
		{Kind: "Property", Name: "N", Scalar: int64(1)},
		{Kind: "ObjectFooter"},
		{Kind: "ListItem", Recurse: true},
		{Kind: "ObjectHeader", Type: "leaf", Version: 1},
		{Kind: "Property", Name: "Label", Scalar: "y"},
		{Kind: "Property", Name: "N", Scalar: int64(2)},
		{Kind: "ObjectFooter"},
		{Kind: "Property", Name: "Note", Scalar: nil},
		{Kind: "ObjectFooter"},
	}
	if diff := cmp.Diff(want, flatten(sink.Tokens)); diff != "" {
		t.Errorf("token sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestEmitEmptyList(t *testing.T) {
	b := &branch{Name: "bare", Tags: []string{}, Leaves: nil, Child: &leaf{}}
	sink := &token.SliceSink{}
	if err := Emit(b, sink); err != nil {
		t.Fatalf("emit: %v", err)
	}
	var headers []flat
	for _, f := range flatten(sink.Tokens) {
		if f.Kind == "ListHeader" {
			headers = append(headers, f)
		}
	}
	want := []flat{
		{Kind: "ListHeader", Name: "Tags", Length: 0},
		{Kind: "ListHeader", Name: "Leaves", Length: 0},
	}
	if diff := cmp.Diff(want, headers); diff != "" {
		t.Errorf("list headers (-want +got):\n%s", diff)
	}
}

// Nested levels must not be described until the consumer enters them.
func TestEmitLazy(t *testing.T) {
	b := testBranch()
	seq := Tokens(b)
	// consume only the FormatVersion step; the object thunk stays closed
	st, ok := seq.Next()
	if !ok || st.Token == nil || st.Token.Kind != token.KindFormatVersion {
		t.Fatalf("expected FormatVersion step")
	}
	st, ok = seq.Next()
	if !ok || st.Open == nil {
		t.Fatalf("expected open step for the root object")
	}
	if _, ok := seq.Next(); ok {
		t.Errorf("top-level sequence should have exactly two steps")
	}
}

func TestFormatterFallbacks(t *testing.T) {
	f := NewFormatter()
	// []byte is a scalar, not a list
	p := f.Format("Raw", []byte{1, 2})
	if p.Kind != PartScalar {
		t.Errorf("[]byte: got %s, want Scalar", p.Kind)
	}
	// a list of lists degrades element-wise to opaque scalars
	p = f.Format("Matrix", [][]int{{1}, {2}})
	if p.Kind != PartList {
		t.Fatalf("list of lists: got %s, want List", p.Kind)
	}
	for i, item := range p.Items {
		if item.Kind != PartScalar {
			t.Errorf("item %d: got %s, want Scalar", i, item.Kind)
		}
	}
}
