package value

import (
	"github.com/apstndb/pcomb/option"
	"github.com/apstndb/pcomb/text"
)

// OptionalParser wraps a parser to handle NULL values.
// NULL in any case, optionally surrounded by white space, parses to None.
type OptionalParser[T any] struct {
	base Parser[T]
}

// NewOptionalParser creates a parser that can handle NULL values.
func NewOptionalParser[T any](base Parser[T]) *OptionalParser[T] {
	return &OptionalParser[T]{base: base}
}

// Parse parses the value, returning None for NULL.
func (p *OptionalParser[T]) Parse(value string) (option.Option[T], error) {
	if text.Parse(nullGrammar, value).IsSome() {
		return option.None[T](), nil
	}

	v, err := p.base.Parse(value)
	if err != nil {
		return option.None[T](), err
	}
	return option.Some(v), nil
}

// Validate validates a present value using the base parser's validation.
func (p *OptionalParser[T]) Validate(value option.Option[T]) error {
	v, ok := value.Get()
	if !ok {
		return nil
	}
	return p.base.Validate(v)
}

// ParseAndValidate combines parsing and validation.
func (p *OptionalParser[T]) ParseAndValidate(value string) (option.Option[T], error) {
	parsed, err := p.Parse(value)
	if err != nil {
		return option.None[T](), err
	}
	if err := p.Validate(parsed); err != nil {
		return option.None[T](), err
	}
	return parsed, nil
}
