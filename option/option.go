// Package option provides a generic optional value.
//
// Option is the result wrapper of the combinator core: a parser either
// produces a value or produces nothing. Map and FlatMap are the functor and
// monad operations the sequencing combinators are built from.
package option

import (
	"fmt"

	"github.com/samber/lo"
)

// Option holds either a value of type T or nothing.
// The zero value is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr converts nil to None and any other pointer to Some of its target.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Get returns the held value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether o is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// OrElse returns the held value, or fallback when o is empty.
func (o Option[T]) OrElse(fallback T) T {
	return lo.Ternary(o.ok, o.value, fallback)
}

// ToPtr returns nil for None and a pointer to a copy of the value otherwise.
func (o Option[T]) ToPtr() *T {
	if !o.ok {
		return nil
	}
	return lo.ToPtr(o.value)
}

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Map applies f to the held value. f is not called for None.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(f(o.value))
}

// FlatMap applies f to the held value and returns its result.
// f is not called for None.
func FlatMap[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return f(o.value)
}

// Flatten collapses a nested Option.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	return FlatMap(o, func(inner Option[T]) Option[T] { return inner })
}
