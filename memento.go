package relic

import (
	"bytes"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/snappy"

	"github.com/relic-format/go-relic/debug"
	"github.com/relic-format/go-relic/walk"
	"github.com/relic-format/go-relic/wire"
)

// Memento is a reusable captured snapshot of a value, taken through the
// binary channel into a resettable buffer. After Reset it can be restored
// any number of times, into the value it came from or into any Loader that
// understands the stored layout.
type Memento struct {
	buf        []byte
	compressed bool
	rd         *bytes.Reader
	medium     io.ReadWriteSeeker
}

// SnapshotOption configures Snapshot.
type SnapshotOption func(*snapshotOpts)

type snapshotOpts struct {
	compress bool
}

// WithCompressedBuffer stores the captured bytes snappy-compressed. Restores
// decompress transparently; Bytes returns the compressed form.
func WithCompressedBuffer() SnapshotOption {
	return func(o *snapshotOpts) { o.compress = true }
}

// Snapshot captures v into a fresh in-process buffer and leaves the memento
// positioned for an immediate Restore.
func Snapshot(v walk.Describer, opts ...SnapshotOption) (*Memento, error) {
	so := &snapshotOpts{}
	for _, opt := range opts {
		opt(so)
	}
	debug.Trace("snapshot", v)

	var buf bytes.Buffer
	if so.compress {
		cw := snappy.NewBufferedWriter(&buf)
		if err := wire.Write(cw, v); err != nil {
			return nil, err
		}
		if err := cw.Close(); err != nil {
			return nil, err
		}
	} else {
		if err := wire.Write(&buf, v); err != nil {
			return nil, err
		}
	}
	m := &Memento{buf: buf.Bytes(), compressed: so.compress}
	if err := m.Reset(); err != nil {
		return nil, err
	}
	return m, nil
}

// SnapshotTo captures v onto a caller-supplied medium. The medium must be
// seekable so the memento can be reset and restored repeatedly; anything
// else is rejected before a byte is written.
func SnapshotTo(v walk.Describer, medium io.ReadWriter) (*Memento, error) {
	rws, ok := medium.(io.ReadWriteSeeker)
	if !ok {
		return nil, errors.New("memento requires a seekable medium")
	}
	if _, err := rws.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	debug.Trace("snapshot", v)
	if err := wire.Write(rws, v); err != nil {
		return nil, err
	}
	m := &Memento{medium: rws}
	if err := m.Reset(); err != nil {
		return nil, err
	}
	return m, nil
}

// Reset seeks the buffer back to its start, enabling another Restore.
func (m *Memento) Reset() error {
	if m.medium != nil {
		_, err := m.medium.Seek(0, io.SeekStart)
		return err
	}
	m.rd = bytes.NewReader(m.buf)
	return nil
}

// Restore reads the captured state into target from the current position.
// Call Reset first to replay from the start.
func (m *Memento) Restore(target walk.Loader) error {
	var r io.Reader
	if m.medium != nil {
		r = m.medium
	} else {
		r = m.rd
	}
	if m.compressed {
		r = snappy.NewReader(r)
	}
	return wire.Read(r, target)
}

// Bytes returns the captured encoding as stored (compressed when the
// memento was taken with WithCompressedBuffer). Nil for mementos captured
// onto an external medium.
func (m *Memento) Bytes() []byte {
	return m.buf
}
