package pcomb

import (
	"github.com/apstndb/pcomb/option"
	"github.com/samber/lo"
)

// Map transforms the tree produced by p with f. f is only called when p
// matches, and must not fail.
func Map[S, T, U any](p Parser[S, T], f func(T) U) Parser[S, U] {
	return func(input S) Result[S, U] {
		return mapTree(p(input), f)
	}
}

// As replaces the tree produced by p with v.
func As[S, T, U any](p Parser[S, T], v U) Parser[S, U] {
	return Map(p, func(T) U { return v })
}

// Ignore discards the tree produced by p, keeping only its consumption.
func Ignore[S, T any](p Parser[S, T]) Parser[S, Unit] {
	return As(p, Unit{})
}

// MapOption transforms the tree produced by p with f. A None from f turns
// the match into no match, so a grammar can reject a tree it cannot convert.
func MapOption[S, T, U any](p Parser[S, T], f func(T) option.Option[U]) Parser[S, U] {
	return func(input S) Result[S, U] {
		return option.FlatMap(p(input), func(r lo.Tuple2[T, S]) Result[S, U] {
			return option.Map(f(r.A), func(tree U) lo.Tuple2[U, S] {
				return lo.T2(tree, r.B)
			})
		})
	}
}

// Where matches p only if pred holds for its tree.
func Where[S, T any](p Parser[S, T], pred func(T) bool) Parser[S, T] {
	return MapOption(p, func(tree T) option.Option[T] {
		if !pred(tree) {
			return option.None[T]()
		}
		return option.Some(tree)
	})
}
