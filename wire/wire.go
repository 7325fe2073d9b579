package wire

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"math"

	"github.com/cockroachdb/errors"

	"github.com/relic-format/go-relic/token"
	"github.com/relic-format/go-relic/walk"
)

// Writer encodes tokens onto an io.Writer. Encoding is strictly sequential
// and self-describing per token: a kind byte, then kind-specific fields.
// There is no whole-object framing and no random access.
//
// Writer implements token.Sink.
type Writer struct {
	w       io.Writer
	scratch bytes.Buffer
	count   int
}

// NewWriter creates a Writer encoding to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write encodes one token. The token is staged in full before any of its
// bytes reach the underlying writer, so an unencodable scalar fails without
// leaving a partial token behind.
func (w *Writer) Write(t *token.Token) error {
	w.scratch.Reset()
	w.scratch.WriteByte(byte(t.Kind))
	switch t.Kind {
	case token.KindFormatVersion:
		appendInt32(&w.scratch, t.Version)
	case token.KindObjectHeader:
		appendInt32(&w.scratch, t.Version)
		appendString(&w.scratch, t.TypeName)
	case token.KindProperty:
		appendString(&w.scratch, t.Name)
		appendBool(&w.scratch, t.Recurse)
		if !t.Recurse {
			if err := appendScalar(&w.scratch, t.Scalar); err != nil {
				return errors.Wrapf(err, "token %d (%s)", w.count, t.Name)
			}
		}
	case token.KindListHeader:
		appendString(&w.scratch, t.Name)
		appendInt32(&w.scratch, t.Length)
	case token.KindListItem:
		appendBool(&w.scratch, t.Recurse)
		if !t.Recurse {
			if err := appendScalar(&w.scratch, t.Scalar); err != nil {
				return errors.Wrapf(err, "token %d (list item)", w.count)
			}
		}
	case token.KindObjectFooter:
		// zero-length marker
	default:
		return errors.Wrapf(token.ErrMalformedStream,
			"token %d: cannot encode kind %s", w.count, t.Kind)
	}
	if _, err := w.w.Write(w.scratch.Bytes()); err != nil {
		return err
	}
	w.count++
	return nil
}

func appendInt32(b *bytes.Buffer, v int32) {
	var fb [4]byte
	binary.LittleEndian.PutUint32(fb[:], uint32(v))
	b.Write(fb[:])
}

func appendBool(b *bytes.Buffer, v bool) {
	if v {
		b.WriteByte(1)
	} else {
		b.WriteByte(0)
	}
}

// Reader decodes tokens from an io.Reader. A truncated or garbled stream
// fails at the missing or malformed token, not earlier.
//
// Reader implements token.Source.
type Reader struct {
	br    *bufio.Reader
	count int
}

// NewReader creates a Reader decoding from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// Next decodes the next token. Returns io.EOF cleanly at a token boundary.
func (r *Reader) Next() (*token.Token, error) {
	kb, err := r.br.ReadByte()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, err
	}
	r.count++
	k := token.Kind(kb)
	t := &token.Token{Kind: k}
	switch k {
	case token.KindFormatVersion:
		if t.Version, err = r.readInt32(); err != nil {
			return nil, err
		}
	case token.KindObjectHeader:
		if t.Version, err = r.readInt32(); err != nil {
			return nil, err
		}
		if t.TypeName, err = r.readString(); err != nil {
			return nil, err
		}
	case token.KindProperty:
		if t.Name, err = r.readString(); err != nil {
			return nil, err
		}
		if t.Recurse, err = r.readBool(); err != nil {
			return nil, err
		}
		if !t.Recurse {
			if t.Scalar, err = r.readScalar(); err != nil {
				return nil, err
			}
		}
	case token.KindListHeader:
		if t.Name, err = r.readString(); err != nil {
			return nil, err
		}
		if t.Length, err = r.readInt32(); err != nil {
			return nil, err
		}
		if t.Length < 0 {
			return nil, errors.Wrapf(token.ErrMalformedStream,
				"token %d: negative list length %d", r.count, t.Length)
		}
	case token.KindListItem:
		if t.Recurse, err = r.readBool(); err != nil {
			return nil, err
		}
		if !t.Recurse {
			if t.Scalar, err = r.readScalar(); err != nil {
				return nil, err
			}
		}
	case token.KindObjectFooter:
	default:
		return nil, errors.Wrapf(token.ErrMalformedStream,
			"token %d: unknown kind byte 0x%02x", r.count, kb)
	}
	return t, nil
}

func (r *Reader) corrupt(err error) error {
	err = errors.Wrapf(token.ErrMalformedStream, "token %d: %v", r.count, err)
	return err
}

func (r *Reader) readByte() (byte, error) {
	b, err := r.br.ReadByte()
	if err != nil {
		return 0, r.corrupt(io.ErrUnexpectedEOF)
	}
	return b, nil
}

func (r *Reader) readFull(buf []byte) error {
	if _, err := io.ReadFull(r.br, buf); err != nil {
		return r.corrupt(io.ErrUnexpectedEOF)
	}
	return nil
}

func (r *Reader) readInt32() (int32, error) {
	var fb [4]byte
	if err := r.readFull(fb[:]); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(fb[:])), nil
}

func (r *Reader) readBool() (bool, error) {
	b, err := r.readByte()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

func (r *Reader) readString() (string, error) {
	n, err := binary.ReadUvarint(r.br)
	if err != nil {
		return "", r.corrupt(err)
	}
	if n > math.MaxInt32 {
		return "", errors.Wrapf(token.ErrMalformedStream,
			"token %d: string length %d out of range", r.count, n)
	}
	buf := make([]byte, n)
	if err := r.readFull(buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// Write walks v and encodes its full token sequence to w.
func Write(w io.Writer, v walk.Describer) error {
	return walk.Emit(v, NewWriter(w))
}

// Read decodes a token sequence from r into target.
func Read(r io.Reader, target walk.Loader) error {
	return walk.Absorb(NewReader(r), target)
}
