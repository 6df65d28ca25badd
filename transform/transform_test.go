package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditApply(t *testing.T) {
	e := NewEdit("li", "egen", "t")
	got, err := e.Apply("xxliegeny")
	require.NoError(t, err)
	assert.Equal(t, "xxlit", got)
}

func TestEditApplyPatternNotFound(t *testing.T) {
	e := NewEdit("li", "egen", "t")
	_, err := e.Apply("nomatch")
	require.Error(t, err)
}

func TestEditAddForm(t *testing.T) {
	e := NewEdit("", "", "ge")
	assert.Equal(t, "add ge", e.String())
}

func TestEditReplaceForm(t *testing.T) {
	e := NewEdit("schmier", "en", "t")
	assert.Equal(t, "find ~schmieren and replace en with t", e.String())
}

func TestEditFindNoReplacedForm(t *testing.T) {
	e := NewEdit("egen", "", "")
	assert.Equal(t, "find ~egen and add ", e.String())
}

func TestEditJoinableSameReplacedInserted(t *testing.T) {
	a := NewEdit("li", "egen", "t")
	b := NewEdit("xyegen", "egen", "t")
	assert.True(t, a.MaybeJoinable(b))
	assert.True(t, b.MaybeJoinable(a))
}

func TestEditNotJoinableDifferentReplaced(t *testing.T) {
	a := NewEdit("li", "egen", "t")
	b := NewEdit("li", "en", "t")
	assert.False(t, a.MaybeJoinable(b))
}

func TestEditJoinLongestCommonSuffix(t *testing.T) {
	a := NewEdit("schmier", "en", "t")
	b := NewEdit("f", "en", "t")
	joined := a.Join(b)
	edit, ok := joined.(*Edit)
	require.True(t, ok)
	assert.Equal(t, "", edit.Pre)
	assert.Equal(t, "en", edit.Replaced)
	assert.Equal(t, "t", edit.Inserted)
}

func TestEditJoinSymmetric(t *testing.T) {
	a := NewEdit("abschmier", "en", "t")
	b := NewEdit("xmier", "en", "t")
	assert.True(t, a.Join(b).Equal(b.Join(a)))
}

func TestEditJoinIdempotent(t *testing.T) {
	a := NewEdit("li", "egen", "t")
	joined := a.Join(a)
	assert.True(t, joined.Equal(a))
	assert.Equal(t, a.Hash(), joined.Hash())
}

func TestEditHashStableUnderPreGeneralisation(t *testing.T) {
	a := NewEdit("li", "egen", "t")
	b := NewEdit("xyzegen", "egen", "t")
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestEditJoinNotJoinablePanics(t *testing.T) {
	a := NewEdit("li", "egen", "t")
	b := NewEdit("li", "en", "t")
	assert.Panics(t, func() { a.Join(b) })
}

func TestEditJoinSoundness(t *testing.T) {
	a := NewEdit("li", "egen", "t")
	b := NewEdit("xy", "egen", "t")
	joined := a.Join(b)

	for _, w := range []string{"zzliegenq", "zzxyegenq"} {
		before, errBefore := pick(a, b, w).Apply(w)
		after, errAfter := joined.Apply(w)
		if errBefore == nil {
			require.NoError(t, errAfter)
			assert.Equal(t, before, after)
		}
	}
}

func pick(a, b *Edit, w string) *Edit {
	if _, err := a.Apply(w); err == nil {
		return a
	}
	return b
}

func TestSeqJoinElementWise(t *testing.T) {
	seqA := NewSeq([]Transformation{
		NewEdit("", "", "ge"),
		NewEdit("schmier", "en", "t"),
	})
	seqB := NewSeq([]Transformation{
		NewEdit("", "", "ge"),
		NewEdit("f", "en", "t"),
	})
	require.True(t, seqA.MaybeJoinable(seqB))
	joined := seqA.Join(seqB).(*Seq)
	elems := joined.Elements()
	edit1 := elems[1].(*Edit)
	assert.Equal(t, "", edit1.Pre)
}

func TestSeqUnequalLengthNotJoinable(t *testing.T) {
	a := NewSeq([]Transformation{NewEdit("", "", "ge")})
	b := NewSeq([]Transformation{NewEdit("", "", "ge"), NewEdit("x", "y", "z")})
	assert.False(t, a.MaybeJoinable(b))
	assert.Panics(t, func() { a.Join(b) })
}

func TestSeqJoinableWithBareTransformation(t *testing.T) {
	single := NewSeq([]Transformation{NewEdit("li", "egen", "t")})
	bare := NewEdit("xy", "egen", "t")
	assert.True(t, single.MaybeJoinable(bare))
	assert.True(t, bare.MaybeJoinable(single))
}

func TestSeqHashXorFold(t *testing.T) {
	e1 := NewEdit("", "", "ge")
	e2 := NewEdit("schmier", "en", "t")
	seq := NewSeq([]Transformation{e1, e2})
	assert.Equal(t, e1.Hash()^e2.Hash(), seq.Hash())
}

func TestSeqString(t *testing.T) {
	seq := NewSeq([]Transformation{
		NewEdit("", "", "ge"),
		NewEdit("l", "i", ""),
		NewEdit("egen", "", ""),
	})
	assert.Equal(t, "add ge, then find ~li and replace i with , then find ~egen and add ", seq.String())
}

func TestReflexiveJoinability(t *testing.T) {
	transforms := []Transformation{
		NewEdit("li", "egen", "t"),
		NewSeq([]Transformation{NewEdit("", "", "ge"), NewEdit("l", "i", "")}),
	}
	for _, tr := range transforms {
		assert.True(t, tr.MaybeJoinable(tr))
		assert.True(t, tr.Join(tr).Equal(tr))
		assert.Equal(t, tr.Hash(), tr.Join(tr).Hash())
	}
}
