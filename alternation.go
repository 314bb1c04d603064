package pcomb

import (
	"sync"

	"github.com/apstndb/pcomb/option"
	"github.com/apstndb/pcomb/seq"
)

// Pure matches without consuming input and produces v.
func Pure[S, T any](v T) Parser[S, T] {
	return func(input S) Result[S, T] {
		return Match(v, input)
	}
}

// Fail never matches.
func Fail[S, T any]() Parser[S, T] {
	return func(S) Result[S, T] {
		return NoMatch[S, T]()
	}
}

// Or tries each parser in order against the same input and returns the first
// match.
func Or[S, T any](ps ...Parser[S, T]) Parser[S, T] {
	return func(input S) Result[S, T] {
		for _, p := range ps {
			if r := p(input); r.IsSome() {
				return r
			}
		}
		return NoMatch[S, T]()
	}
}

// Optional matches p or nothing. It never fails.
func Optional[S, T any](p Parser[S, T]) Parser[S, option.Option[T]] {
	return Or(Map(p, option.Some[T]), Pure[S](option.None[T]()))
}

// Many matches p as many times as possible, including zero times.
//
// Repetition also stops as soon as p matches without consuming anything, so
// Many terminates even for parsers that can match the empty string.
func Many[S seq.Measurable, T any](p Parser[S, T]) Parser[S, []T] {
	return func(input S) Result[S, []T] {
		var trees []T
		rest := input
		for {
			tree, next, ok := Run(p, rest)
			if !ok {
				break
			}
			consumed := next.Len() < rest.Len()
			trees = append(trees, tree)
			rest = next
			if !consumed {
				break
			}
		}
		return Match(trees, rest)
	}
}

// Many1 matches p one or more times.
func Many1[S seq.Measurable, T any](p Parser[S, T]) Parser[S, []T] {
	return Both(Map(p, prepend[T]), Many(p))
}

// SepBy1 matches one or more p separated by sep, keeping the trees of p.
func SepBy1[S seq.Measurable, T, U any](p Parser[S, T], sep Parser[S, U]) Parser[S, []T] {
	return Both(Map(p, prepend[T]), Many(Right(sep, p)))
}

// Lazy defers building a parser until it is first used. It is how
// recursive grammars refer to rules that are not constructed yet.
func Lazy[S, T any](build func() Parser[S, T]) Parser[S, T] {
	get := sync.OnceValue(build)
	return func(input S) Result[S, T] {
		return get()(input)
	}
}

func prepend[T any](head T) func([]T) []T {
	return func(tail []T) []T {
		return append([]T{head}, tail...)
	}
}

// End matches only the empty input.
func End[S seq.Measurable]() Parser[S, Unit] {
	return func(input S) Result[S, Unit] {
		if input.Len() != 0 {
			return NoMatch[S, Unit]()
		}
		return Match(Unit{}, input)
	}
}
