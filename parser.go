package pcomb

import (
	"github.com/apstndb/pcomb/option"
	"github.com/apstndb/pcomb/seq"
	"github.com/samber/lo"
)

// Result is what a parser produces: either nothing, or the parse tree (A)
// paired with the unconsumed remainder (B).
type Result[S, T any] = option.Option[lo.Tuple2[T, S]]

// Parser parses a prefix of its input.
//
// The remainder of a successful Result is always a suffix of the input.
// An empty Result means the parser does not match at this position.
type Parser[S, T any] func(input S) Result[S, T]

// Unit is the tree of parsers whose value carries no information.
type Unit = struct{}

// Match builds a successful Result.
func Match[S, T any](tree T, rest S) Result[S, T] {
	return option.Some(lo.T2(tree, rest))
}

// NoMatch builds an empty Result.
func NoMatch[S, T any]() Result[S, T] {
	return option.None[lo.Tuple2[T, S]]()
}

// Run applies p to input and unpacks the Result.
func Run[S, T any](p Parser[S, T], input S) (tree T, rest S, ok bool) {
	r, ok := p(input).Get()
	if !ok {
		return tree, rest, false
	}
	tree, rest = r.Unpack()
	return tree, rest, true
}

// Parse runs p against input and returns its tree only if p matched and
// consumed the whole input. A match that leaves a non-empty remainder is
// reported the same way as no match at all.
func Parse[S seq.Measurable, T any](p Parser[S, T], input S) option.Option[T] {
	return option.FlatMap(p(input), func(r lo.Tuple2[T, S]) option.Option[T] {
		tree, rest := r.Unpack()
		if rest.Len() != 0 {
			return option.None[T]()
		}
		return option.Some(tree)
	})
}

// mapTree applies f to the tree of a successful Result, leaving the
// remainder untouched.
func mapTree[S, T, U any](r Result[S, T], f func(T) U) Result[S, U] {
	return option.Map(r, func(r lo.Tuple2[T, S]) lo.Tuple2[U, S] {
		return lo.T2(f(r.A), r.B)
	})
}
