package pcomb

import (
	"github.com/apstndb/pcomb/seq"
)

// Any matches any single element. Its tree is the one-element prefix.
//
// Any is itself a parser; instantiate it for the input type in use, e.g.
// Any[byte, seq.String].
func Any[E comparable, S seq.Sequence[E, S]](input S) Result[S, S] {
	if input.Len() == 0 {
		return NoMatch[S, S]()
	}
	head, rest := input.SplitAt(1)
	return Match(head, rest)
}

// Literal matches literal as a prefix of the input. Its tree is literal.
func Literal[E comparable, S seq.Sequence[E, S]](literal S) Parser[S, S] {
	return LiteralOf[E, S](literal)
}

// LiteralOf matches the elements of literal as a prefix of the input.
// literal may be any collection of the input's element type, which allows
// spelling a literal element by element with seq.Of.
func LiteralOf[E comparable, S seq.Sequence[E, S], C seq.Collection[E]](literal C) Parser[S, C] {
	n := literal.Len()
	return func(input S) Result[S, C] {
		if !seq.HasPrefix[E](input, literal) {
			return NoMatch[S, C]()
		}
		_, rest := input.SplitAt(n)
		return Match(literal, rest)
	}
}

// Satisfy matches a single element for which pred holds. Its tree is the
// element.
func Satisfy[E comparable, S seq.Sequence[E, S]](pred func(E) bool) Parser[S, E] {
	return func(input S) Result[S, E] {
		first, ok := seq.First[E](input)
		if !ok || !pred(first) {
			return NoMatch[S, E]()
		}
		_, rest := input.SplitAt(1)
		return Match(first, rest)
	}
}

// Element matches a single element equal to literal.
func Element[E comparable, S seq.Sequence[E, S]](literal E) Parser[S, E] {
	return Satisfy[E, S](func(e E) bool { return e == literal })
}
