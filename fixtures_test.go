package relic_test

import (
	"strconv"

	"github.com/relic-format/go-relic/walk"
)

// Fixture types for the top-level operation tests. Each type owns its
// schema version and its own legacy handling, independent of whatever
// encloses it.

type Address struct {
	Street string
	City   string
}

func (a *Address) SchemaVersion() int { return 1 }

func (a *Address) Describe(f *walk.Formatter) []walk.Part {
	return []walk.Part{
		f.Format("Street", a.Street),
		f.Format("City", a.City),
	}
}

func (a *Address) Load(r *walk.Reader, storedVersion int) error {
	var err error
	if a.Street, err = walk.ReadScalar[string](r); err != nil {
		return err
	}
	a.City, err = walk.ReadScalar[string](r)
	return err
}

type Pet struct {
	Kind  string
	Legs  int64
	Tame  bool
	Quirk any
}

func (p *Pet) SchemaVersion() int { return 4 }

func (p *Pet) Describe(f *walk.Formatter) []walk.Part {
	return []walk.Part{
		f.Format("Kind", p.Kind),
		f.Format("Legs", p.Legs),
		f.Format("Tame", p.Tame),
		f.Format("Quirk", p.Quirk),
	}
}

func (p *Pet) Load(r *walk.Reader, storedVersion int) error {
	var err error
	if p.Kind, err = walk.ReadScalar[string](r); err != nil {
		return err
	}
	if p.Legs, err = walk.ReadScalar[int64](r); err != nil {
		return err
	}
	if p.Tame, err = walk.ReadScalar[bool](r); err != nil {
		return err
	}
	p.Quirk, err = walk.ReadScalar[any](r)
	return err
}

type Person struct {
	Name string
	Home *Address
	Pets []*Pet
	Tags []string
	Note any
}

func (p *Person) SchemaVersion() int { return 2 }

func (p *Person) Describe(f *walk.Formatter) []walk.Part {
	return []walk.Part{
		f.Format("Name", p.Name),
		f.Format("Home", p.Home),
		f.Format("Pets", p.Pets),
		f.Format("Tags", p.Tags),
		f.Format("Note", p.Note),
	}
}

func (p *Person) Load(r *walk.Reader, storedVersion int) error {
	var err error
	if p.Name, err = walk.ReadScalar[string](r); err != nil {
		return err
	}
	if p.Home, err = walk.ReadScalar[*Address](r); err != nil {
		return err
	}
	if p.Pets, err = walk.ReadList[*Pet](r); err != nil {
		return err
	}
	if p.Tags, err = walk.ReadList[string](r); err != nil {
		return err
	}
	p.Note, err = walk.ReadScalar[any](r)
	return err
}

func testPerson() *Person {
	return &Person{
		Name: "alice",
		Home: &Address{Street: "Elm", City: "Springfield"},
		Pets: []*Pet{
			{Kind: "cat", Legs: 4, Tame: true},
			{Kind: "crow", Legs: 2, Quirk: "talks"},
		},
		Tags: []string{"a", "b", "c"},
	}
}

// ItemV1 is the old shape of Item: version 1, Name only. It shares the
// type name on the wire via its own struct name being different, which is
// fine: reconstruction is driven by the target type, not the stored name.
type ItemV1 struct {
	Name string
}

func (i *ItemV1) SchemaVersion() int { return 1 }

func (i *ItemV1) Describe(f *walk.Formatter) []walk.Part {
	return []walk.Part{f.Format("Name", i.Name)}
}

func (i *ItemV1) Load(r *walk.Reader, storedVersion int) error {
	var err error
	i.Name, err = walk.ReadScalar[string](r)
	return err
}

// ItemV2 adds NewProp in version 2; loads of version-1 data leave it unset.
type ItemV2 struct {
	Name    string
	NewProp string
}

func (i *ItemV2) SchemaVersion() int { return 2 }

func (i *ItemV2) Describe(f *walk.Formatter) []walk.Part {
	return []walk.Part{
		f.Format("Name", i.Name),
		f.Format("NewProp", i.NewProp),
	}
}

func (i *ItemV2) Load(r *walk.Reader, storedVersion int) error {
	var err error
	if i.Name, err = walk.ReadScalar[string](r); err != nil {
		return err
	}
	if storedVersion < 2 {
		return nil
	}
	i.NewProp, err = walk.ReadScalar[string](r)
	return err
}

// GadgetV1 stores Serial, Legacy, and Rank; GadgetV2 dropped Legacy from
// the middle of the layout and steps over it when loading old data.
type GadgetV1 struct {
	Serial string
	Legacy string
	Rank   int64
}

func (g *GadgetV1) SchemaVersion() int { return 1 }

func (g *GadgetV1) Describe(f *walk.Formatter) []walk.Part {
	return []walk.Part{
		f.Format("Serial", g.Serial),
		f.Format("Legacy", g.Legacy),
		f.Format("Rank", g.Rank),
	}
}

func (g *GadgetV1) Load(r *walk.Reader, storedVersion int) error {
	var err error
	if g.Serial, err = walk.ReadScalar[string](r); err != nil {
		return err
	}
	if g.Legacy, err = walk.ReadScalar[string](r); err != nil {
		return err
	}
	g.Rank, err = walk.ReadScalar[int64](r)
	return err
}

type GadgetV2 struct {
	Serial string
	Rank   int64
}

func (g *GadgetV2) SchemaVersion() int { return 2 }

func (g *GadgetV2) Describe(f *walk.Formatter) []walk.Part {
	return []walk.Part{
		f.Format("Serial", g.Serial),
		f.Format("Rank", g.Rank),
	}
}

func (g *GadgetV2) Load(r *walk.Reader, storedVersion int) error {
	var err error
	if g.Serial, err = walk.ReadScalar[string](r); err != nil {
		return err
	}
	if storedVersion < 2 {
		if err = r.Skip(); err != nil {
			return err
		}
	}
	g.Rank, err = walk.ReadScalar[int64](r)
	return err
}

// MeterV1 stored Reading as text; MeterV2 stores it numerically and
// converts old values itself, falling back to the unset default when the
// stored text does not parse.
type MeterV1 struct {
	Reading string
}

func (m *MeterV1) SchemaVersion() int { return 1 }

func (m *MeterV1) Describe(f *walk.Formatter) []walk.Part {
	return []walk.Part{f.Format("Reading", m.Reading)}
}

func (m *MeterV1) Load(r *walk.Reader, storedVersion int) error {
	var err error
	m.Reading, err = walk.ReadScalar[string](r)
	return err
}

type MeterV2 struct {
	Reading int64
}

func (m *MeterV2) SchemaVersion() int { return 2 }

func (m *MeterV2) Describe(f *walk.Formatter) []walk.Part {
	return []walk.Part{f.Format("Reading", m.Reading)}
}

func (m *MeterV2) Load(r *walk.Reader, storedVersion int) error {
	if storedVersion < 2 {
		text, err := walk.ReadScalar[string](r)
		if err != nil {
			return err
		}
		if n, err := strconv.ParseInt(text, 10, 64); err == nil {
			m.Reading = n
		}
		return nil
	}
	var err error
	m.Reading, err = walk.ReadScalar[int64](r)
	return err
}

// Household nests two sibling types with different schema versions under a
// parent whose version matches neither.
type Household struct {
	Owner *Person
	Pet   *Pet
	Count int64
}

func (h *Household) SchemaVersion() int { return 7 }

func (h *Household) Describe(f *walk.Formatter) []walk.Part {
	return []walk.Part{
		f.Format("Owner", h.Owner),
		f.Format("Pet", h.Pet),
		f.Format("Count", h.Count),
	}
}

func (h *Household) Load(r *walk.Reader, storedVersion int) error {
	var err error
	if h.Owner, err = walk.ReadScalar[*Person](r); err != nil {
		return err
	}
	if h.Pet, err = walk.ReadScalar[*Pet](r); err != nil {
		return err
	}
	h.Count, err = walk.ReadScalar[int64](r)
	return err
}
