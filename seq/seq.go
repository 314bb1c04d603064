// Package seq defines the input abstraction parsers consume.
//
// A Sequence is randomly indexable and closed under slicing: splitting a
// Sequence of type S yields two values of type S. Parsers thread the suffix
// half through a chain of combinators, so every combinator works on "the same
// kind of thing" no matter how much input has been consumed.
//
// Implementations are provided for byte strings (String), rune arrays
// (Runes), arbitrary element slices (Slice) and user-perceived text (Text).
package seq

import "iter"

// Collection is a finite run of elements with random access.
type Collection[E comparable] interface {
	// Len returns the number of elements.
	Len() int
	// At returns the element at index i. It panics if i is out of range.
	At(i int) E
}

// Sequence is a Collection that can be split into two values of its own type.
type Sequence[E comparable, S any] interface {
	Collection[E]
	// SplitAt divides the sequence into the first i elements and the rest.
	// i must be within [0, Len()].
	SplitAt(i int) (S, S)
}

// Measurable is the minimal capability needed to detect consumption.
type Measurable interface {
	Len() int
}

// HasPrefix reports whether s starts with prefix, comparing element-wise.
func HasPrefix[E comparable, S, P Collection[E]](s S, prefix P) bool {
	n := prefix.Len()
	if s.Len() < n {
		return false
	}
	for i := range n {
		if s.At(i) != prefix.At(i) {
			return false
		}
	}
	return true
}

// First returns the first element of c, if any.
func First[E comparable, C Collection[E]](c C) (E, bool) {
	if c.Len() == 0 {
		var zero E
		return zero, false
	}
	return c.At(0), true
}

// Values iterates the elements of c in order.
func Values[E comparable, C Collection[E]](c C) iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := range c.Len() {
			if !yield(c.At(i)) {
				return
			}
		}
	}
}

// Equal reports whether a and b hold the same elements in the same order.
func Equal[E comparable, A, B Collection[E]](a A, b B) bool {
	return a.Len() == b.Len() && HasPrefix[E](a, b)
}
