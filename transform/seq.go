package transform

import (
	"strings"

	"github.com/fulmenhq/wordrules/errors"
)

// Seq applies a fixed list of transformations in order, threading the
// residual input from one to the next.
type Seq struct {
	elements []Transformation
}

// NewSeq constructs a Seq from the given elements, in order.
func NewSeq(elements []Transformation) *Seq {
	cp := make([]Transformation, len(elements))
	copy(cp, elements)
	return &Seq{elements: cp}
}

// Elements returns a copy of the sequence's elements.
func (s *Seq) Elements() []Transformation {
	cp := make([]Transformation, len(s.elements))
	copy(cp, s.elements)
	return cp
}

func (s *Seq) applyStep(emitted, remaining string) (string, string, error) {
	var err error
	for _, t := range s.elements {
		emitted, remaining, err = t.applyStep(emitted, remaining)
		if err != nil {
			return "", "", err
		}
	}
	return emitted, remaining, nil
}

// Apply rewrites word in full; the trailing residual is discarded.
func (s *Seq) Apply(word string) (string, error) {
	emitted, _, err := s.applyStep("", word)
	return emitted, err
}

func asSeq(t Transformation) *Seq {
	if seq, ok := t.(*Seq); ok {
		return seq
	}
	return NewSeq([]Transformation{t})
}

// MaybeJoinable reports whether other (a bare transformation or
// another Seq) has the same length and pairwise-joinable elements.
// Sequences of differing length are never joinable.
func (s *Seq) MaybeJoinable(other Transformation) bool {
	o := asSeq(other)
	if len(s.elements) != len(o.elements) {
		return false
	}
	for i := range s.elements {
		if !s.elements[i].MaybeJoinable(o.elements[i]) {
			return false
		}
	}
	return true
}

// Join joins element-wise; panics with NotJoinableError (via the
// element Join calls) if a pair is not joinable, or directly if the
// lengths differ.
func (s *Seq) Join(other Transformation) Transformation {
	o := asSeq(other)
	if len(s.elements) != len(o.elements) {
		panic(errors.NewNotJoinableError(s, other))
	}
	joined := make([]Transformation, len(s.elements))
	for i := range s.elements {
		joined[i] = s.elements[i].Join(o.elements[i])
	}
	return NewSeq(joined)
}

// Equal reports structural equality on the element tuple.
func (s *Seq) Equal(other Transformation) bool {
	o, ok := other.(*Seq)
	if !ok {
		return false
	}
	if len(s.elements) != len(o.elements) {
		return false
	}
	for i := range s.elements {
		if !s.elements[i].Equal(o.elements[i]) {
			return false
		}
	}
	return true
}

// Hash is the xor-fold of element hashes.
func (s *Seq) Hash() uint64 {
	var h uint64
	for _, t := range s.elements {
		h ^= t.Hash()
	}
	return h
}

// String renders elements joined by ", then ".
func (s *Seq) String() string {
	parts := make([]string, len(s.elements))
	for i, t := range s.elements {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", then ")
}
