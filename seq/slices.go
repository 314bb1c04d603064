package seq

// String is a byte string.
type String string

func (s String) Len() int { return len(s) }
func (s String) At(i int) byte { return s[i] }
func (s String) SplitAt(i int) (String, String) { return s[:i], s[i:] }

// Runes is a sequence of Unicode code points.
type Runes []rune

// RunesOf decodes s into Runes.
func RunesOf(s string) Runes {
	return Runes(s)
}

func (r Runes) Len() int { return len(r) }
func (r Runes) At(i int) rune { return r[i] }
func (r Runes) SplitAt(i int) (Runes, Runes) { return r[:i:i], r[i:] }
func (r Runes) String() string { return string(r) }

// Slice is a sequence over any comparable element type.
type Slice[E comparable] []E

// Of builds a Slice from individual elements.
// It is the usual way to spell a literal element by element.
func Of[E comparable](elems ...E) Slice[E] {
	return Slice[E](elems)
}

func (s Slice[E]) Len() int { return len(s) }
func (s Slice[E]) At(i int) E { return s[i] }

// SplitAt caps the prefix so appending to it never overwrites the suffix.
func (s Slice[E]) SplitAt(i int) (Slice[E], Slice[E]) { return s[:i:i], s[i:] }
