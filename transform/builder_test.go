package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fulmenhq/wordrules/align"
)

func TestBuildLiegenGelegen(t *testing.T) {
	seg := align.Segment(align.Compute("liegen", "gelegen"))
	seq := Build("liegen", "gelegen", seg)

	want := NewSeq([]Transformation{
		NewEdit("", "", "ge"),
		NewEdit("l", "i", ""),
		NewEdit("egen", "", ""),
	})
	assert.True(t, seq.Equal(want))

	got, err := seq.Apply("liegen")
	require.NoError(t, err)
	assert.Equal(t, "gelegen", got)
}

func TestBuildSchmierenGeschmiert(t *testing.T) {
	seg := align.Segment(align.Compute("schmieren", "geschmiert"))
	seq := Build("schmieren", "geschmiert", seg)

	want := NewSeq([]Transformation{
		NewEdit("", "", "ge"),
		NewEdit("schmier", "en", "t"),
	})
	assert.True(t, seq.Equal(want))

	got, err := seq.Apply("schmieren")
	require.NoError(t, err)
	assert.Equal(t, "geschmiert", got)
}

func TestBuildIdenticalWordsProducesTerminalEdit(t *testing.T) {
	seg := align.Segment(align.Compute("same", "same"))
	seq := Build("same", "same", seg)
	got, err := seq.Apply("same")
	require.NoError(t, err)
	assert.Equal(t, "same", got)
}

func TestBuildAlwaysReproducesB(t *testing.T) {
	pairs := [][2]string{
		{"liegen", "gelegen"},
		{"schmieren", "geschmiert"},
		{"hallo", "hello"},
		{"a", "b"},
		{"", "abc"},
		{"abc", ""},
		{"same", "same"},
	}
	for _, p := range pairs {
		seg := align.Segment(align.Compute(p[0], p[1]))
		seq := Build(p[0], p[1], seg)
		got, err := seq.Apply(p[0])
		require.NoError(t, err)
		assert.Equal(t, p[1], got, "pair %v", p)
	}
}
