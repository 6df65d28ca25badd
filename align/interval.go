package align

import "github.com/fulmenhq/wordrules/errors"

// Interval is a half-open range [Start, End) over code-point indices.
type Interval struct {
	start int
	end   int
}

// NewInterval constructs an Interval, panicking with an
// InvalidIntervalError if start is after end.
func NewInterval(start, end int) Interval {
	if start > end {
		panic(errors.NewInvalidIntervalError(start, end))
	}
	return Interval{start: start, end: end}
}

// Start returns the inclusive lower bound.
func (i Interval) Start() int { return i.start }

// End returns the exclusive upper bound.
func (i Interval) End() int { return i.end }

// Length returns End-Start.
func (i Interval) Length() int { return i.end - i.start }

// Empty reports whether the interval covers no code points.
func (i Interval) Empty() bool { return i.Length() == 0 }

// Equal reports structural equality.
func (i Interval) Equal(other Interval) bool {
	return i.start == other.start && i.end == other.end
}

// IntervalPair binds an interval over A to an interval over B, flagged
// as a common (shared-letters) or differing region.
type IntervalPair struct {
	A      Interval
	B      Interval
	Common bool
}

// Equal reports structural equality.
func (p IntervalPair) Equal(other IntervalPair) bool {
	return p.A.Equal(other.A) && p.B.Equal(other.B) && p.Common == other.Common
}

// intervalPairBuilder accumulates start/end indices while the backtrace
// walks from (|A|,|B|) toward (0,0), then flips to the next pair.
// Mirrors the teacher's builder-pattern helpers (config/option builders)
// and the reference implementation's IntervalPairBuilder.
type intervalPairBuilder struct {
	startA, endA int
	startB, endB int
	common       bool
}

func (b *intervalPairBuilder) prepareNext() {
	b.endA = b.startA
	b.startA = 0
	b.endB = b.startB
	b.startB = 0
	b.common = !b.common
}

func (b *intervalPairBuilder) build() IntervalPair {
	return IntervalPair{
		A:      NewInterval(b.startA, b.endA),
		B:      NewInterval(b.startB, b.endB),
		Common: b.common,
	}
}
