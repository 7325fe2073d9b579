// Package wire is the binary channel: it encodes the token sequence of a
// value onto an append-only byte stream and decodes it back.
//
// Each token is self-describing (kind byte plus kind-specific payload) and
// the stream carries no whole-object framing, so readers consume it
// strictly sequentially and corruption surfaces at the malformed token.
// Scalars cover signed and unsigned integers, floats, booleans, UTF-8
// strings, byte slices, and a designated null marker; anything else fails
// encoding with token.ErrUnsupportedType.
//
// # Example
//
//	var buf bytes.Buffer
//	if err := wire.Write(&buf, value); err != nil {
//	    return err
//	}
//	restored := &Thing{}
//	if err := wire.Read(&buf, restored); err != nil {
//	    return err
//	}
package wire
