package relic

import (
	"bytes"
	"io"

	"github.com/relic-format/go-relic/debug"
	"github.com/relic-format/go-relic/mem"
	"github.com/relic-format/go-relic/render"
	"github.com/relic-format/go-relic/walk"
	"github.com/relic-format/go-relic/wire"
)

// Persist writes the full token stream of v to w via the binary channel.
func Persist(w io.Writer, v walk.Describer) error {
	debug.Trace("persist", v)
	return wire.Write(w, v)
}

// Restore reads a token stream from r into a fresh instance of T.
func Restore[T walk.Loader](r io.Reader) (T, error) {
	target := walk.New[T]()
	if err := wire.Read(r, target); err != nil {
		var zero T
		return zero, err
	}
	return target, nil
}

// RestoreInto reads a token stream from r into target.
func RestoreInto(r io.Reader, target walk.Loader) error {
	return wire.Read(r, target)
}

// ToBytes persists v into a byte buffer.
func ToBytes(v walk.Describer) ([]byte, error) {
	var buf bytes.Buffer
	if err := Persist(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FromBytes restores a fresh instance of T from b.
func FromBytes[T walk.Loader](b []byte) (T, error) {
	return Restore[T](bytes.NewReader(b))
}

// Clone produces an independent same-type copy of v through the in-memory
// channel; no bytes are encoded.
func Clone[T walk.Loader](v T) (T, error) {
	target := walk.New[T]()
	if err := CloneInto(v, target); err != nil {
		var zero T
		return zero, err
	}
	return target, nil
}

// CloneInto copies v's state into target, which may be a different type as
// long as its load understands v's layout.
func CloneInto(v walk.Describer, target walk.Loader) error {
	debug.Trace("clone", v)
	return mem.Capture(v).Restore(target)
}

// Render returns the deterministic indented text tree of v.
func Render(v walk.Describer, opts ...render.Option) string {
	return render.Render(v, opts...)
}

// RenderTo renders v into w.
func RenderTo(w io.Writer, v walk.Describer, opts ...render.Option) error {
	return render.RenderTo(w, v, opts...)
}
