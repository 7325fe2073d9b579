package token

import "fmt"

// FormatVersion is the protocol version of the token model itself. It is
// emitted once at the start of a top-level token sequence; nested object
// emissions never carry it.
const FormatVersion int32 = 1

// Token represents one structural record produced while walking a value tree.
// The fields that are meaningful depend on Kind; the rest are zero.
type Token struct {
	Kind Kind

	// Version holds the protocol version (FormatVersion tokens) or the
	// writing type's schema version (ObjectHeader tokens).
	Version int32

	// TypeName is the concrete type name of the object being opened
	// (ObjectHeader only). Carried for diagnostics; reconstruction is
	// driven by the target type at the read site.
	TypeName string

	// Name is the declared part name (Property and ListHeader).
	Name string

	// Recurse marks a Property or ListItem whose value follows as a full
	// nested ObjectHeader...ObjectFooter block. When false, Scalar holds
	// the value directly.
	Recurse bool

	// Scalar holds the value of a non-recursing Property or ListItem.
	// A nil Scalar is the designated null marker.
	Scalar any

	// Length is the exact item count of a ListHeader.
	Length int32
}

// Kind represents the type of a structural token.
type Kind int

const (
	KindFormatVersion Kind = iota
	KindObjectHeader
	KindProperty
	KindListHeader
	KindListItem
	KindObjectFooter
)

func (k Kind) String() string {
	switch k {
	case KindFormatVersion:
		return "FormatVersion"
	case KindObjectHeader:
		return "ObjectHeader"
	case KindProperty:
		return "Property"
	case KindListHeader:
		return "ListHeader"
	case KindListItem:
		return "ListItem"
	case KindObjectFooter:
		return "ObjectFooter"
	default:
		return "Unknown"
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	s := string(d)
	pk, ok := map[string]Kind{
		"FormatVersion": KindFormatVersion,
		"ObjectHeader":  KindObjectHeader,
		"Property":      KindProperty,
		"ListHeader":    KindListHeader,
		"ListItem":      KindListItem,
		"ObjectFooter":  KindObjectFooter,
	}[s]
	if ok {
		*k = pk
		return nil
	}
	return fmt.Errorf("unknown kind %q", s)
}
