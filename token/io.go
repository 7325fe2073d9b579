package token

import "io"

// Source provides tokens from a producer (wire decoder, in-memory frames,
// empty stream, etc.). Next returns io.EOF when the sequence is exhausted.
type Source interface {
	Next() (*Token, error)
}

// Sink receives tokens (wire encoder, collector, etc.).
type Sink interface {
	Write(*Token) error
}

// EmptySource provides an empty token stream.
type EmptySource struct{}

// Next returns io.EOF immediately (empty stream).
func (s *EmptySource) Next() (*Token, error) {
	return nil, io.EOF
}

// SliceSource provides tokens from a slice, in order.
type SliceSource struct {
	toks []*Token
	pos  int
}

// NewSliceSource creates a source over toks.
func NewSliceSource(toks []*Token) *SliceSource {
	return &SliceSource{toks: toks}
}

// Next returns the next token or io.EOF.
func (s *SliceSource) Next() (*Token, error) {
	if s.pos >= len(s.toks) {
		return nil, io.EOF
	}
	t := s.toks[s.pos]
	s.pos++
	return t, nil
}

// SliceSink collects tokens into a slice.
type SliceSink struct {
	Tokens []*Token
}

// Write appends t.
func (s *SliceSink) Write(t *Token) error {
	s.Tokens = append(s.Tokens, t)
	return nil
}
