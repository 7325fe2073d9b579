package walk

import "reflect"

// Describer is a value able to enumerate its own named parts for traversal.
// SchemaVersion must be a non-negative constant per type; it identifies the
// field layout Describe yields. The order of parts returned by Describe is
// load-bearing: Load must consume exactly the same parts in the same order.
// That pairing is the implementing type's obligation; the engine cannot
// verify it (see the package doc on ordering).
type Describer interface {
	SchemaVersion() int
	Describe(f *Formatter) []Part
}

// Loader is a Describer that can reconstruct its state from a pull-based
// reader. storedVersion is the schema version recorded when the instance was
// written; Load may branch on it to interpret legacy layouts. Conversion of
// legacy representations (and fallback on conversion failure) is the
// implementing type's responsibility.
type Loader interface {
	Describer
	Load(r *Reader, storedVersion int) error
}

// TypeName reports the concrete type name of v with pointer indirections
// stripped. It is recorded in object headers for diagnostics.
func TypeName(v Describer) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// New default-constructs a Loader of type T. For the usual pointer-to-struct
// loader, the pointed-to struct is allocated at its zero value.
func New[T Loader]() T {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() == reflect.Pointer {
		return reflect.New(t.Elem()).Interface().(T)
	}
	return reflect.Zero(t).Interface().(T)
}

// newLoader default-constructs an instance of any type and reports whether
// it is a Loader. Shared by the generic read paths, where the element type
// is not constrained at compile time.
func newLoader(t reflect.Type) (Loader, bool) {
	var inst any
	if t.Kind() == reflect.Pointer {
		inst = reflect.New(t.Elem()).Interface()
	} else {
		inst = reflect.Zero(t).Interface()
	}
	ld, ok := inst.(Loader)
	return ld, ok
}
