// Package cluster partitions a corpus of word pairs into equivalence
// classes of a shared, minimally general rewrite rule: each
// TrainingElement binds a word pair to its derived alignment and
// transformation, and a Set groups elements whose
// transformations are pairwise joinable into Clusters.
package cluster

import (
	"fmt"

	"github.com/fulmenhq/wordrules/align"
	"github.com/fulmenhq/wordrules/transform"
)

// TrainingElement binds a word pair to the alignment segmentation and
// transformation derived from it at construction time. Two elements
// built from the same (A, B) are distinct values (identity-like
// equality); the core deduplicates clusters only by transformation
// joinability, not by element value.
type TrainingElement struct {
	wordA, wordB    string
	segmentation    align.Segmentation
	transformation  *transform.Seq
	editDistance    int
}

// New constructs a TrainingElement for (wordA, wordB), computing the
// edit matrix, the segmentation, and the transformation immediately.
func New(wordA, wordB string) *TrainingElement {
	matrix := align.Compute(wordA, wordB)
	seg := align.Segment(matrix)
	t := transform.Build(wordA, wordB, seg)
	return &TrainingElement{
		wordA:          wordA,
		wordB:          wordB,
		segmentation:   seg,
		transformation: t,
		editDistance:   matrix.EditDistance(),
	}
}

// WordA returns the source word.
func (e *TrainingElement) WordA() string { return e.wordA }

// WordB returns the target word.
func (e *TrainingElement) WordB() string { return e.wordB }

// Segmentation returns the derived alignment segmentation.
func (e *TrainingElement) Segmentation() align.Segmentation { return e.segmentation }

// Transformation returns the derived transformation.
func (e *TrainingElement) Transformation() *transform.Seq { return e.transformation }

// EditDistance returns the Levenshtein distance between WordA and WordB.
func (e *TrainingElement) EditDistance() int { return e.editDistance }

// Hash delegates to the transformation's hash, used as the cluster
// set's bucket key.
func (e *TrainingElement) Hash() uint64 { return e.transformation.Hash() }

func (e *TrainingElement) String() string {
	return fmt.Sprintf("(%s, %s, %s)", e.wordA, e.wordB, e.transformation)
}
