package token

import "github.com/cockroachdb/errors"

var (
	// ErrProtocolVersion indicates the stream's format version token does
	// not match the version this library speaks. Fatal; nothing after the
	// version token can be interpreted.
	ErrProtocolVersion = errors.New("unsupported format version")

	// ErrMalformedStream indicates an unexpected token kind, truncated
	// data, or a list count mismatch. Fatal for the read in progress.
	ErrMalformedStream = errors.New("malformed token stream")

	// ErrUnsupportedType indicates a scalar value with no registered
	// encoding. Raised at encode time, before any bytes of the value are
	// written.
	ErrUnsupportedType = errors.New("unsupported scalar type")
)
