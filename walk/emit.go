package walk

import (
	"github.com/relic-format/go-relic/token"
)

// Step is one element of a Seq: either a single token or the opening of a
// nested sub-sequence. Open is a thunk so a nested object is not described
// until the consumer actually enters it.
type Step struct {
	Token *token.Token
	Open  func() *Seq
}

// Seq is a resumable cursor over one nesting level's steps. A level's parts
// are staged when the Seq is created; nested levels stay behind Open thunks,
// so at most one level per open scope is materialized at a time.
type Seq struct {
	steps []Step
	pos   int
}

// Next returns the next step, or ok=false when the level is exhausted.
func (s *Seq) Next() (Step, bool) {
	if s.pos >= len(s.steps) {
		return Step{}, false
	}
	st := s.steps[s.pos]
	s.pos++
	return st, true
}

// Tokens returns the lazy token sequence for v: a FormatVersion token
// followed by v's complete object block. Consumers flatten the nested
// sub-sequences with an explicit stack (see Emit, and the mem package).
func Tokens(v Describer) *Seq {
	return &Seq{steps: []Step{
		{Token: &token.Token{Kind: token.KindFormatVersion, Version: token.FormatVersion}},
		{Open: func() *Seq { return objectSeq(v) }},
	}}
}

// objectSeq stages one object's block: header, one step (or
// header-plus-items) per part, footer. Pre-order, depth-first.
func objectSeq(v Describer) *Seq {
	parts := v.Describe(NewFormatter())
	steps := make([]Step, 0, len(parts)+2)
	steps = append(steps, Step{Token: &token.Token{
		Kind:     token.KindObjectHeader,
		Version:  int32(v.SchemaVersion()),
		TypeName: TypeName(v),
	}})
	for _, p := range parts {
		steps = appendPartSteps(steps, p)
	}
	steps = append(steps, Step{Token: &token.Token{Kind: token.KindObjectFooter}})
	return &Seq{steps: steps}
}

func appendPartSteps(steps []Step, p Part) []Step {
	switch p.Kind {
	case PartNested:
		nested := p.Nested
		return append(steps,
			Step{Token: &token.Token{Kind: token.KindProperty, Name: p.Name, Recurse: true}},
			Step{Open: func() *Seq { return objectSeq(nested) }},
		)
	case PartList:
		steps = append(steps, Step{Token: &token.Token{
			Kind:   token.KindListHeader,
			Name:   p.Name,
			Length: int32(len(p.Items)),
		}})
		for _, item := range p.Items {
			if item.Kind == PartNested {
				nested := item.Nested
				steps = append(steps,
					Step{Token: &token.Token{Kind: token.KindListItem, Recurse: true}},
					Step{Open: func() *Seq { return objectSeq(nested) }},
				)
				continue
			}
			steps = append(steps, Step{Token: &token.Token{Kind: token.KindListItem, Scalar: item.Scalar}})
		}
		return steps
	default:
		return append(steps, Step{Token: &token.Token{Kind: token.KindProperty, Name: p.Name, Scalar: p.Scalar}})
	}
}

// Emit walks v and writes its full token sequence to sink, one token at a
// time. Nested sub-sequences are flattened with an explicit stack so the
// call depth does not grow with the tree depth.
func Emit(v Describer, sink token.Sink) error {
	stack := []*Seq{Tokens(v)}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		st, ok := top.Next()
		if !ok {
			stack = stack[:len(stack)-1]
			continue
		}
		if st.Open != nil {
			stack = append(stack, st.Open())
			continue
		}
		if err := sink.Write(st.Token); err != nil {
			return err
		}
	}
	return nil
}
