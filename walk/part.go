package walk

import "reflect"

// PartKind represents the shape of one described part.
type PartKind int

const (
	PartScalar PartKind = iota
	PartNested
	PartList
)

func (k PartKind) String() string {
	switch k {
	case PartScalar:
		return "Scalar"
	case PartNested:
		return "Nested"
	case PartList:
		return "List"
	default:
		return "Unknown"
	}
}

// Part is one named element of a Describer's layout. Exactly one of Scalar,
// Nested, or Items is meaningful, selected by Kind. The kind is decided once,
// at Describe time, rather than re-checked by every consumer.
type Part struct {
	Name string
	Kind PartKind

	Scalar any
	Nested Describer
	Items  []Part
}

// Formatter builds Parts during Describe. It decides each value's shape:
// a Describer becomes a nested part, a slice or array (other than []byte)
// becomes a list with one sub-part per element, and everything else is a
// scalar. A list element that is itself a list, or any otherwise
// unrecognized value, falls through to an opaque scalar; the consuming
// channel's scalar codec has the final say on whether it can be encoded.
type Formatter struct{}

// NewFormatter returns a Formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format builds the Part for one named value.
func (f *Formatter) Format(name string, value any) Part {
	if d, ok := value.(Describer); ok {
		// a nil *T still asserts to Describer; store it as null
		if isNilPointer(value) {
			return Part{Name: name, Kind: PartScalar}
		}
		return Part{Name: name, Kind: PartNested, Nested: d}
	}
	if items, ok := listItems(value); ok {
		return Part{Name: name, Kind: PartList, Items: items}
	}
	return Part{Name: name, Kind: PartScalar, Scalar: value}
}

func isNilPointer(value any) bool {
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func listItems(value any) ([]Part, bool) {
	if !isList(value) {
		return nil, false
	}
	rv := reflect.ValueOf(value)
	items := make([]Part, rv.Len())
	for i := range items {
		elem := rv.Index(i).Interface()
		if d, ok := elem.(Describer); ok && !isNilPointer(elem) {
			items[i] = Part{Kind: PartNested, Nested: d}
			continue
		}
		if isNilPointer(elem) {
			items[i] = Part{Kind: PartScalar}
			continue
		}
		// A list inside a list is handed to the scalar codec opaquely.
		items[i] = Part{Kind: PartScalar, Scalar: elem}
	}
	return items, true
}

func isList(value any) bool {
	if value == nil {
		return false
	}
	if _, ok := value.([]byte); ok {
		return false
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}
