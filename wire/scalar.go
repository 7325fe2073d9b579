package wire

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/cockroachdb/errors"

	"github.com/relic-format/go-relic/token"
)

// Scalar payloads are self-describing: one tag byte, then a fixed or
// varint-framed value. Decoding yields the canonical widest representation
// (int64, uint64, float32/float64, bool, string, []byte, nil); narrowing to
// the field's declared type happens at the read site.
const (
	scNil byte = iota
	scBool
	scInt
	scUint
	scFloat32
	scFloat64
	scString
	scBytes
)

// appendScalar encodes v onto b. An unencodable value fails with
// ErrUnsupportedType and leaves b untouched.
func appendScalar(b *bytes.Buffer, v any) error {
	switch x := v.(type) {
	case nil:
		b.WriteByte(scNil)
	case bool:
		b.WriteByte(scBool)
		if x {
			b.WriteByte(1)
		} else {
			b.WriteByte(0)
		}
	case int:
		appendInt(b, int64(x))
	case int8:
		appendInt(b, int64(x))
	case int16:
		appendInt(b, int64(x))
	case int32:
		appendInt(b, int64(x))
	case int64:
		appendInt(b, x)
	case uint:
		appendUint(b, uint64(x))
	case uint8:
		appendUint(b, uint64(x))
	case uint16:
		appendUint(b, uint64(x))
	case uint32:
		appendUint(b, uint64(x))
	case uint64:
		appendUint(b, x)
	case float32:
		b.WriteByte(scFloat32)
		var fb [4]byte
		binary.LittleEndian.PutUint32(fb[:], math.Float32bits(x))
		b.Write(fb[:])
	case float64:
		b.WriteByte(scFloat64)
		var fb [8]byte
		binary.LittleEndian.PutUint64(fb[:], math.Float64bits(x))
		b.Write(fb[:])
	case string:
		b.WriteByte(scString)
		appendString(b, x)
	case []byte:
		b.WriteByte(scBytes)
		b.Write(binary.AppendUvarint(nil, uint64(len(x))))
		b.Write(x)
	default:
		return errors.Wrapf(token.ErrUnsupportedType, "%T", v)
	}
	return nil
}

func appendInt(b *bytes.Buffer, v int64) {
	b.WriteByte(scInt)
	b.Write(binary.AppendVarint(nil, v))
}

func appendUint(b *bytes.Buffer, v uint64) {
	b.WriteByte(scUint)
	b.Write(binary.AppendUvarint(nil, v))
}

func appendString(b *bytes.Buffer, s string) {
	b.Write(binary.AppendUvarint(nil, uint64(len(s))))
	b.WriteString(s)
}

// readScalar decodes one scalar payload.
func (r *Reader) readScalar() (any, error) {
	tag, err := r.readByte()
	if err != nil {
		return nil, err
	}
	switch tag {
	case scNil:
		return nil, nil
	case scBool:
		v, err := r.readByte()
		if err != nil {
			return nil, err
		}
		return v != 0, nil
	case scInt:
		v, err := binary.ReadVarint(r.br)
		if err != nil {
			return nil, r.corrupt(err)
		}
		return v, nil
	case scUint:
		v, err := binary.ReadUvarint(r.br)
		if err != nil {
			return nil, r.corrupt(err)
		}
		return v, nil
	case scFloat32:
		var fb [4]byte
		if err := r.readFull(fb[:]); err != nil {
			return nil, err
		}
		return math.Float32frombits(binary.LittleEndian.Uint32(fb[:])), nil
	case scFloat64:
		var fb [8]byte
		if err := r.readFull(fb[:]); err != nil {
			return nil, err
		}
		return math.Float64frombits(binary.LittleEndian.Uint64(fb[:])), nil
	case scString:
		return r.readString()
	case scBytes:
		n, err := binary.ReadUvarint(r.br)
		if err != nil {
			return nil, r.corrupt(err)
		}
		if n > math.MaxInt32 {
			return nil, errors.Wrapf(token.ErrMalformedStream,
				"token %d: bytes length %d out of range", r.count, n)
		}
		buf := make([]byte, n)
		if err := r.readFull(buf); err != nil {
			return nil, err
		}
		return buf, nil
	default:
		return nil, errors.Wrapf(token.ErrMalformedStream,
			"token %d: unknown scalar tag 0x%02x", r.count, tag)
	}
}
