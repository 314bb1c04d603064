package pcomb

import (
	"fmt"

	"github.com/apstndb/pcomb/seq"
	"golang.org/x/exp/constraints"
)

// Interval is a closed range of ordered values.
type Interval[E constraints.Ordered] struct {
	Lo, Hi E
}

// Closed returns the interval [lo, hi].
func Closed[E constraints.Ordered](lo, hi E) Interval[E] {
	return Interval[E]{Lo: lo, Hi: hi}
}

// Contains reports whether lo <= e <= hi.
func (i Interval[E]) Contains(e E) bool {
	return i.Lo <= e && e <= i.Hi
}

func (i Interval[E]) String() string {
	return fmt.Sprintf("%v...%v", i.Lo, i.Hi)
}

// Range matches a single element within interval. Its tree is the
// one-element prefix, so a run of Range matches can be concatenated back
// into input form.
func Range[E constraints.Ordered, S seq.Sequence[E, S]](interval Interval[E]) Parser[S, S] {
	return func(input S) Result[S, S] {
		first, ok := seq.First[E](input)
		if !ok || !interval.Contains(first) {
			return NoMatch[S, S]()
		}
		head, rest := input.SplitAt(1)
		return Match(head, rest)
	}
}
