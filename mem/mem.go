package mem

import (
	"io"

	"github.com/relic-format/go-relic/token"
	"github.com/relic-format/go-relic/walk"
)

// Snapshot is an in-memory capture of a value's token sequence. It holds
// the lazy cursor produced by the traversal engine, not bytes: restoring
// pulls tokens straight from the cursor, so clone and memento-style reuse
// of live values never touch a byte medium.
//
// Because the cursor is lazy, the source value is read as Restore walks it,
// not at Capture time: mutating the source between Capture and Restore
// changes what Restore sees. Restore immediately, or use a Memento for a
// point-in-time copy.
//
// A Snapshot is consumed by a single Restore; capture again for another.
type Snapshot struct {
	root *walk.Seq
}

// Capture stages the token sequence of v. Only the top level is staged
// eagerly; nested objects are described when Restore enters them.
func Capture(v walk.Describer) *Snapshot {
	return &Snapshot{root: walk.Tokens(v)}
}

// Restore loads the captured sequence into target.
func (s *Snapshot) Restore(target walk.Loader) error {
	return walk.Absorb(&Frames{stack: []*walk.Seq{s.root}}, target)
}

// Frames flattens a tree of nested sequences into one token stream with an
// explicit stack of resumable cursors: when the top cursor is exhausted it
// is popped and the parent resumes; when a step opens a sub-sequence it is
// pushed and pulled from first. Bounded call depth regardless of tree depth.
//
// Frames implements token.Source.
type Frames struct {
	stack []*walk.Seq
}

// NewFrames creates a Frames rooted at seq.
func NewFrames(seq *walk.Seq) *Frames {
	return &Frames{stack: []*walk.Seq{seq}}
}

// Next returns the next token in depth-first order, or io.EOF when the root
// sequence is exhausted.
func (f *Frames) Next() (*token.Token, error) {
	for len(f.stack) > 0 {
		top := f.stack[len(f.stack)-1]
		st, ok := top.Next()
		if !ok {
			f.stack = f.stack[:len(f.stack)-1]
			continue
		}
		if st.Open != nil {
			f.stack = append(f.stack, st.Open())
			continue
		}
		return st.Token, nil
	}
	return nil, io.EOF
}

// Depth returns the number of currently open cursors.
func (f *Frames) Depth() int {
	return len(f.stack)
}
