// Package transform implements the rewrite-rule algebra: a contextual
// edit operation and a sequence combinator, both closed under
// application, joinability testing, and joining into a least-general
// common form.
package transform

import (
	"strings"

	"github.com/zeebo/xxh3"

	"github.com/fulmenhq/wordrules/errors"
)

// Transformation is the capability set shared by every variant of the
// rewrite algebra: Edit (a contextual edit) and Seq (a sequence of
// transformations).
type Transformation interface {
	// Apply rewrites the whole of word under this transformation.
	Apply(word string) (string, error)

	// applyStep threads (emitted, remaining) through this
	// transformation, returning what's left unconsumed.
	applyStep(emitted, remaining string) (string, string, error)

	// MaybeJoinable reports whether this and other describe the same
	// abstract rule shape and can be generalised into one.
	MaybeJoinable(other Transformation) bool

	// Join returns the least general transformation that subsumes
	// both this and other. Panics with NotJoinableError if they are
	// not joinable; callers must guard with MaybeJoinable first.
	Join(other Transformation) Transformation

	// Equal reports structural equality.
	Equal(other Transformation) bool

	// Hash returns a hash stable under generalisation: joinable
	// transformations hash identically.
	Hash() uint64

	// String renders a deterministic, human-readable form.
	String() string
}

// Edit is a contextual edit operation: find the first occurrence of
// pre+replaced in the remaining input, emit everything scanned before
// pre, then pre itself, then inserted; consume up to and including the
// match.
type Edit struct {
	Pre, Replaced, Inserted string
}

// NewEdit constructs an Edit.
func NewEdit(pre, replaced, inserted string) *Edit {
	return &Edit{Pre: pre, Replaced: replaced, Inserted: inserted}
}

func (e *Edit) applyStep(emitted, remaining string) (string, string, error) {
	pattern := e.Pre + e.Replaced
	idx := strings.Index(remaining, pattern)
	if idx < 0 {
		return "", "", errors.NewPatternNotFoundError(remaining, pattern)
	}
	newEmitted := emitted + remaining[:idx] + e.Pre + e.Inserted
	newRemaining := remaining[idx+len(pattern):]
	return newEmitted, newRemaining, nil
}

// Apply rewrites word in full, ignoring any unconsumed residual.
func (e *Edit) Apply(word string) (string, error) {
	emitted, _, err := e.applyStep("", word)
	return emitted, err
}

// MaybeJoinable reports whether other shares this Edit's Replaced and
// Inserted fields (Pre may differ; it is what gets generalised).
func (e *Edit) MaybeJoinable(other Transformation) bool {
	if seq, ok := other.(*Seq); ok {
		return seq.MaybeJoinable(e)
	}
	o, ok := other.(*Edit)
	if !ok {
		return false
	}
	return e.Replaced == o.Replaced && e.Inserted == o.Inserted
}

// Join generalises Pre to the longest common suffix of the two edits'
// Pre fields, keeping Replaced and Inserted (which must already match).
func (e *Edit) Join(other Transformation) Transformation {
	if seq, ok := other.(*Seq); ok {
		if !e.MaybeJoinable(seq) {
			panic(errors.NewNotJoinableError(e, seq))
		}
		return seq.Join(e)
	}
	o, ok := other.(*Edit)
	if !ok || !e.MaybeJoinable(other) {
		panic(errors.NewNotJoinableError(e, other))
	}
	return NewEdit(commonSuffix(e.Pre, o.Pre), e.Replaced, e.Inserted)
}

// Equal reports structural equality on all three fields.
func (e *Edit) Equal(other Transformation) bool {
	o, ok := other.(*Edit)
	if !ok {
		return false
	}
	return e.Pre == o.Pre && e.Replaced == o.Replaced && e.Inserted == o.Inserted
}

// Hash mixes Replaced and Inserted only, deliberately ignoring Pre so
// that joinable edits (which may differ in Pre) hash identically. This
// is the property the cluster set's bucket key relies on.
func (e *Edit) Hash() uint64 {
	hr := xxh3.HashString(e.Replaced)
	hi := xxh3.HashString(e.Inserted)
	return 11*hr ^ 23*hi
}

// String renders as "find ~{pre}{replaced} and replace {replaced} with
// {inserted}", degrading to "add {inserted}" when Replaced is empty and
// dropping the find clause when Pre and Replaced are both empty.
func (e *Edit) String() string {
	var b strings.Builder
	if len(e.Pre)+len(e.Replaced) > 0 {
		b.WriteString("find ~")
		b.WriteString(e.Pre)
		b.WriteString(e.Replaced)
		b.WriteString(" and ")
	}
	if e.Replaced == "" {
		b.WriteString("add ")
		b.WriteString(e.Inserted)
	} else {
		b.WriteString("replace ")
		b.WriteString(e.Replaced)
		b.WriteString(" with ")
		b.WriteString(e.Inserted)
	}
	return b.String()
}

func commonPrefix(a, b string) string {
	ra, rb := []rune(a), []rune(b)
	n := 0
	for n < len(ra) && n < len(rb) && ra[n] == rb[n] {
		n++
	}
	return string(ra[:n])
}

func commonSuffix(a, b string) string {
	return reverseString(commonPrefix(reverseString(a), reverseString(b)))
}

func reverseString(s string) string {
	r := []rune(s)
	for l, rgt := 0, len(r)-1; l < rgt; l, rgt = l+1, rgt-1 {
		r[l], r[rgt] = r[rgt], r[l]
	}
	return string(r)
}
