package transform

import "github.com/fulmenhq/wordrules/align"

// Build walks a segmentation left to right and emits a Seq whose
// Apply(wordA) reproduces wordB: common intervals become the left
// context (Pre) for the next edit, and each non-common interval
// becomes an Edit(pre, A-substring, B-substring). A trailing common
// segment with no following edit is closed off with a terminal
// Edit(pre, "", "") so Apply consumes the whole of wordA.
func Build(wordA, wordB string, seg align.Segmentation) *Seq {
	a, b := []rune(wordA), []rune(wordB)
	var elements []Transformation
	pre := ""
	for _, pair := range seg {
		subA := string(a[pair.A.Start():pair.A.End()])
		subB := string(b[pair.B.Start():pair.B.End()])
		if pair.Common {
			pre = subA
		} else {
			elements = append(elements, NewEdit(pre, subA, subB))
			pre = ""
		}
	}
	if pre != "" {
		elements = append(elements, NewEdit(pre, "", ""))
	}
	return NewSeq(elements)
}
