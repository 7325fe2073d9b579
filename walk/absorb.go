package walk

import (
	"io"

	"github.com/cockroachdb/errors"

	"github.com/relic-format/go-relic/token"
)

// Absorb reads a complete top-level token sequence from src into target:
// the FormatVersion is checked against the version this library speaks,
// then target.Load is driven with the stored schema version. Stored parts
// the load did not consume (a trailing field the current schema dropped)
// are drained silently before the closing footer.
func Absorb(src token.Source, target Loader) error {
	r := NewReader(src)
	tok, err := r.next()
	if err != nil {
		if err == io.EOF {
			return r.errf("empty stream")
		}
		return err
	}
	if tok.Kind != token.KindFormatVersion {
		return r.errf("expected FormatVersion, got %s", tok.Kind)
	}
	if tok.Version != token.FormatVersion {
		return errors.Wrapf(token.ErrProtocolVersion,
			"stream has version %d, this library speaks %d", tok.Version, token.FormatVersion)
	}
	return r.absorbObject(target)
}

// absorbObject reads one ObjectHeader...ObjectFooter block into target.
func (r *Reader) absorbObject(target Loader) error {
	hdr, err := r.next()
	if err != nil {
		if err == io.EOF {
			return r.errf("unexpected end of stream, expected ObjectHeader")
		}
		return err
	}
	if hdr.Kind != token.KindObjectHeader {
		return r.errf("expected ObjectHeader, got %s", hdr.Kind)
	}
	if debugOrder {
		r.scopes = append(r.scopes, nil)
	}
	if err := target.Load(r, int(hdr.Version)); err != nil {
		return errors.Wrapf(err, "loading %s (stored version %d)", hdr.TypeName, hdr.Version)
	}
	if debugOrder {
		consumed := r.scopes[len(r.scopes)-1]
		r.scopes = r.scopes[:len(r.scopes)-1]
		if err := checkOrder(target, int(hdr.Version), consumed); err != nil {
			return err
		}
	}
	return r.drainFooter(hdr)
}

// drainFooter consumes tokens up to and including the footer matching hdr,
// discarding any parts the load left unread.
func (r *Reader) drainFooter(hdr *token.Token) error {
	depth := 0
	for {
		tok, err := r.next()
		if err != nil {
			if err == io.EOF {
				return r.errf("object %s not terminated", hdr.TypeName)
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
		case token.KindFormatVersion:
			return r.errf("FormatVersion inside object %s", hdr.TypeName)
		}
	}
}
