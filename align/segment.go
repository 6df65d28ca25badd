package align

// Segmentation is the ordered, left-to-right sequence of interval
// pairs produced by backtracing a Matrix. Concatenating the A-side
// intervals covers [0, len(A)) exactly once and likewise for B;
// adjacent pairs alternate Common.
type Segmentation []IntervalPair

// Segment backtraces m from (len(A), len(B)) toward (0,0) and returns
// the canonical segmentation.
//
// Ties between delete/substitute/insert steps are broken in the fixed
// order delete < substitute < insert (i.e. prefer consuming from A).
// This is part of the contract: it determines segment boundaries on
// ambiguous pairs and must not change.
func Segment(m *Matrix) Segmentation {
	a, b := m.a, m.b
	builder := &intervalPairBuilder{}
	builder.endA = len(a)
	builder.endB = len(b)

	var pairs []IntervalPair

	lastCommon := len(a) > 0 && len(b) > 0 && a[len(a)-1] == b[len(b)-1]
	builder.common = lastCommon

	i, j := len(a), len(b)
	for i > 0 && j > 0 {
		oldI, oldJ := i, j
		currentCommon := a[i-1] == b[j-1]
		if currentCommon {
			i--
			j--
		} else {
			// Tie-break order: delete, substitute, insert.
			del := m.rows[i-1][j]
			sub := m.rows[i-1][j-1]
			ins := m.rows[i][j-1]
			switch argmin3(del, sub, ins) {
			case 0: // delete
				i--
			case 1: // substitute
				i--
				j--
			case 2: // insert
				j--
			}
		}
		if currentCommon != lastCommon {
			builder.startA = oldI
			builder.startB = oldJ
			pairs = append(pairs, builder.build())
			builder.prepareNext()
		}
		lastCommon = currentCommon
	}
	builder.startA = i
	builder.startB = j
	pairs = append(pairs, builder.build())
	if (i > 0 || j > 0) && lastCommon {
		builder.prepareNext()
		pairs = append(pairs, builder.build())
	}

	reverse(pairs)
	return Segmentation(pairs)
}

// argmin3 returns the index (0, 1, or 2) of the smallest of three
// values, breaking ties in favour of the earlier index.
func argmin3(del, sub, ins int) int {
	idx, val := 0, del
	if sub < val {
		idx, val = 1, sub
	}
	if ins < val {
		idx = 2
	}
	return idx
}

func reverse(pairs []IntervalPair) {
	for l, r := 0, len(pairs)-1; l < r; l, r = l+1, r-1 {
		pairs[l], pairs[r] = pairs[r], pairs[l]
	}
}
