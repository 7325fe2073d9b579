package walk

import (
	"io"
	"reflect"

	"github.com/cockroachdb/errors"

	"github.com/relic-format/go-relic/token"
)

// Reader is the pull interface handed to Load implementations. It wraps a
// token.Source with a one-token unread buffer and tracks the ordinal of the
// token being consumed for error context.
//
// Reads are strictly sequential; a Load that pulls parts in a different
// order than Describe emitted them silently misreads data. With the
// RELIC_DEBUG_ORDER environment toggle set, same-version loads additionally
// assert consumed part names against the target's declared order.
type Reader struct {
	src     token.Source
	pending *token.Token
	pos     int

	// consumed part names per open object scope, tracked only when the
	// order check is enabled.
	scopes [][]string
}

// NewReader creates a Reader pulling from src.
func NewReader(src token.Source) *Reader {
	return &Reader{src: src}
}

func (r *Reader) next() (*token.Token, error) {
	if t := r.pending; t != nil {
		r.pending = nil
		return t, nil
	}
	t, err := r.src.Next()
	if err != nil {
		return nil, err
	}
	r.pos++
	return t, nil
}

func (r *Reader) unread(t *token.Token) {
	r.pending = t
}

func (r *Reader) errf(format string, args ...any) error {
	err := errors.Wrapf(token.ErrMalformedStream, format, args...)
	return errors.Wrapf(err, "token %d", r.pos)
}

func (r *Reader) noteName(name string) {
	if !debugOrder || len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1] = append(r.scopes[len(r.scopes)-1], name)
}

// ReadScalar consumes the next Property or ListItem and returns its value as
// a T. When the part recurses into a nested object and *T's pointee is a
// Loader, a fresh instance is default-constructed and loaded. Scalar
// payloads convert between numeric widths; any other representation change
// is the caller's job (the raw stored value is returned as-is when T is its
// type).
func ReadScalar[T any](r *Reader) (T, error) {
	var zero T
	tok, err := r.next()
	if err != nil {
		if err == io.EOF {
			return zero, r.errf("unexpected end of stream reading scalar")
		}
		return zero, err
	}
	switch tok.Kind {
	case token.KindProperty:
		r.noteName(tok.Name)
	case token.KindListItem:
	default:
		return zero, r.errf("expected Property or ListItem, got %s", tok.Kind)
	}
	if tok.Recurse {
		return readNested[T](r, tok)
	}
	v, err := convertScalar[T](tok.Scalar)
	if err != nil {
		return zero, errors.Wrapf(err, "token %d (%s)", r.pos, tok.Name)
	}
	return v, nil
}

// ReadList consumes the next ListHeader and exactly its declared number of
// items. An empty stored list comes back as an empty, non-nil slice.
func ReadList[T any](r *Reader) ([]T, error) {
	tok, err := r.next()
	if err != nil {
		if err == io.EOF {
			return nil, r.errf("unexpected end of stream reading list")
		}
		return nil, err
	}
	if tok.Kind != token.KindListHeader {
		return nil, r.errf("expected ListHeader, got %s", tok.Kind)
	}
	if tok.Length < 0 {
		return nil, r.errf("list %q declares negative length %d", tok.Name, tok.Length)
	}
	r.noteName(tok.Name)
	out := make([]T, 0, tok.Length)
	for i := int32(0); i < tok.Length; i++ {
		item, err := r.next()
		if err != nil {
			if err == io.EOF {
				return nil, r.errf("list %q truncated at item %d of %d", tok.Name, i, tok.Length)
			}
			return nil, err
		}
		if item.Kind != token.KindListItem {
			return nil, r.errf("list %q: expected ListItem, got %s", tok.Name, item.Kind)
		}
		var v T
		if item.Recurse {
			v, err = readNested[T](r, item)
		} else {
			v, err = convertScalar[T](item.Scalar)
			if err != nil {
				err = errors.Wrapf(err, "token %d (%s[%d])", r.pos, tok.Name, i)
			}
		}
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Skip consumes and discards one part: a scalar Property, a recursing
// Property with its whole nested block, or a ListHeader with all its items.
// Loads use it to step over a stored field the current schema dropped from
// the middle of the layout.
func (r *Reader) Skip() error {
	tok, err := r.next()
	if err != nil {
		if err == io.EOF {
			return r.errf("unexpected end of stream skipping part")
		}
		return err
	}
	switch tok.Kind {
	case token.KindProperty:
		r.noteName(tok.Name)
		if tok.Recurse {
			return r.skipObject()
		}
		return nil
	case token.KindListHeader:
		if tok.Length < 0 {
			return r.errf("list %q declares negative length %d", tok.Name, tok.Length)
		}
		r.noteName(tok.Name)
		for i := int32(0); i < tok.Length; i++ {
			item, err := r.next()
			if err != nil {
				if err == io.EOF {
					return r.errf("list %q truncated at item %d of %d", tok.Name, i, tok.Length)
				}
				return err
			}
			if item.Kind != token.KindListItem {
				return r.errf("list %q: expected ListItem, got %s", tok.Name, item.Kind)
			}
			if item.Recurse {
				if err := r.skipObject(); err != nil {
					return err
				}
			}
		}
		return nil
	case token.KindListItem:
		if tok.Recurse {
			return r.skipObject()
		}
		return nil
	default:
		return r.errf("expected a part, got %s", tok.Kind)
	}
}

// skipObject consumes one ObjectHeader...ObjectFooter block, including any
// nested blocks.
func (r *Reader) skipObject() error {
	tok, err := r.next()
	if err != nil {
		if err == io.EOF {
			return r.errf("unexpected end of stream in nested object")
		}
		return err
	}
	if tok.Kind != token.KindObjectHeader {
		return r.errf("expected ObjectHeader, got %s", tok.Kind)
	}
	depth := 0
	for {
		tok, err := r.next()
		if err != nil {
			if err == io.EOF {
				return r.errf("unterminated object")
			}
			return err
		}
		switch tok.Kind {
		case token.KindObjectHeader:
			depth++
		case token.KindObjectFooter:
			if depth == 0 {
				return nil
			}
			depth--
		}
	}
}

func readNested[T any](r *Reader, at *token.Token) (T, error) {
	var zero T
	t := reflect.TypeOf((*T)(nil)).Elem()
	ld, ok := newLoader(t)
	if !ok {
		return zero, r.errf("part %q recurses but %s does not load", at.Name, t)
	}
	if err := r.absorbObject(ld); err != nil {
		return zero, err
	}
	return any(ld).(T), nil
}

// convertScalar maps a decoded scalar payload onto T. nil maps to the zero
// value; numeric payloads convert across widths and signedness as long as
// both sides are numeric. Anything else must match T exactly.
func convertScalar[T any](s any) (T, error) {
	var zero T
	if s == nil {
		return zero, nil
	}
	if v, ok := s.(T); ok {
		return v, nil
	}
	tt := reflect.TypeOf((*T)(nil)).Elem()
	sv := reflect.ValueOf(s)
	if isNumericKind(sv.Kind()) && isNumericKind(tt.Kind()) {
		return sv.Convert(tt).Interface().(T), nil
	}
	return zero, errors.Wrapf(token.ErrMalformedStream,
		"cannot read stored %T as %s", s, tt)
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
