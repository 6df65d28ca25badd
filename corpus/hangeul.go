package corpus

// HangeulComposer decomposes precomposed Hangul syllables into their
// constituent jamo on input, and recomposes jamo sequences back into
// syllables on output, per the algorithm in the Unicode Standard,
// chapter 3, Hangul Syllable Decomposition.
type HangeulComposer struct{}

const (
	sBase = 0xAC00
	lBase = 0x1100
	vBase = 0x1161
	tBase = 0x11A7
	lCount = 19
	vCount = 21
	tCount = 28
	nCount = vCount * tCount
	sCount = nCount * lCount
)

func outOfBounds(i, max int) bool {
	return i < 0 || i >= max
}

func (HangeulComposer) ProcessInput(s string) string {
	return decomposeHangeul(s)
}

func (HangeulComposer) ProcessOutput(s string) string {
	return composeHangeul(s)
}

func decomposeHangeul(input string) string {
	out := make([]rune, 0, len(input))
	for _, c := range input {
		sIndex := int(c) - sBase
		if outOfBounds(sIndex, sCount) {
			out = append(out, c)
			continue
		}
		lIndex := lBase + sIndex/nCount
		vIndex := vBase + (sIndex%nCount)/tCount
		tIndex := tBase + sIndex%tCount
		out = append(out, rune(lIndex), rune(vIndex))
		if tIndex > tBase {
			out = append(out, rune(tIndex))
		}
	}
	return string(out)
}

func composeHangeul(input string) string {
	runes := []rune(input)
	bases := [3]int{lBase, vBase, tBase}
	counts := [3]int{lCount, vCount, tCount}

	out := make([]rune, 0, len(runes))
	i := 0
	for i < len(runes) {
		inds := [3]int{-1, -1, -1}
		j := 0
		for j < 3 && i+j < len(runes) {
			inds[j] = int(runes[i+j]) - bases[j]
			j++
		}
		if outOfBounds(inds[0], counts[0]) || outOfBounds(inds[1], counts[1]) {
			out = append(out, runes[i])
			i++
			continue
		}
		if outOfBounds(inds[2], counts[2]) {
			inds[2] = 0
			j = 2
		}
		composed := (inds[0]*vCount+inds[1])*tCount + inds[2] + sBase
		out = append(out, rune(composed))
		i += j
	}
	return string(out)
}
