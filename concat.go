package pcomb

import (
	"github.com/apstndb/pcomb/option"
	"github.com/samber/lo"
)

// Both parses the concatenation of left and right. left produces a function
// which is applied to the tree produced by right.
//
// right runs on left's remainder, and only if left matched. If right fails
// the whole parse fails; left is not retried.
func Both[S, T, U any](left Parser[S, func(T) U], right Parser[S, T]) Parser[S, U] {
	return func(input S) Result[S, U] {
		return option.FlatMap(left(input), func(l lo.Tuple2[func(T) U, S]) Result[S, U] {
			f, rest := l.Unpack()
			return mapTree(right(rest), f)
		})
	}
}

// Left parses the concatenation of left and right, keeping left's tree.
func Left[S, T, U any](left Parser[S, T], right Parser[S, U]) Parser[S, T] {
	return func(input S) Result[S, T] {
		return option.FlatMap(left(input), func(l lo.Tuple2[T, S]) Result[S, T] {
			tree, rest := l.Unpack()
			return mapTree(right(rest), func(U) T { return tree })
		})
	}
}

// Right parses the concatenation of left and right, keeping right's tree.
func Right[S, T, U any](left Parser[S, T], right Parser[S, U]) Parser[S, U] {
	return func(input S) Result[S, U] {
		return option.FlatMap(left(input), func(l lo.Tuple2[T, S]) Result[S, U] {
			return right(l.B)
		})
	}
}

// Pair parses the concatenation of left and right, keeping both trees.
func Pair[S, T, U any](left Parser[S, T], right Parser[S, U]) Parser[S, lo.Tuple2[T, U]] {
	return Both(Map(left, curry2[T, U]), right)
}

// Between parses before, p and after in sequence, keeping p's tree.
func Between[S, B, T, A any](before Parser[S, B], p Parser[S, T], after Parser[S, A]) Parser[S, T] {
	return Left(Right(before, p), after)
}

func curry2[T, U any](t T) func(U) lo.Tuple2[T, U] {
	return func(u U) lo.Tuple2[T, U] { return lo.T2(t, u) }
}
