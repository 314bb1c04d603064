package value

import (
	"fmt"

	"github.com/apstndb/pcomb/text"
)

// Parser is the core interface for parsing and validating values of type T.
type Parser[T any] interface {
	// Parse converts a string value to type T.
	// It returns an error if the string cannot be parsed.
	Parse(value string) (T, error)

	// Validate checks if a parsed value meets additional constraints.
	Validate(value T) error

	// ParseAndValidate calls Parse followed by Validate.
	ParseAndValidate(value string) (T, error)
}

// BaseParser provides a foundation for implementing parsers.
// It handles the common ParseAndValidate logic.
type BaseParser[T any] struct {
	ParseFunc    func(string) (T, error)
	ValidateFunc func(T) error
}

// Parse implements the Parser interface.
func (p *BaseParser[T]) Parse(value string) (T, error) {
	if p.ParseFunc == nil {
		var zero T
		return zero, fmt.Errorf("parse function not implemented")
	}
	return p.ParseFunc(value)
}

// Validate implements the Parser interface.
func (p *BaseParser[T]) Validate(value T) error {
	if p.ValidateFunc == nil {
		return nil
	}
	return p.ValidateFunc(value)
}

// ParseAndValidate implements the Parser interface.
func (p *BaseParser[T]) ParseAndValidate(value string) (T, error) {
	parsed, err := p.Parse(value)
	if err != nil {
		var zero T
		return zero, err
	}

	if err := p.Validate(parsed); err != nil {
		var zero T
		return zero, err
	}

	return parsed, nil
}

// NewGrammarParser creates a parser that accepts exactly the strings
// matched in full by grammar. what names the expected value in errors.
func NewGrammarParser[T any](what string, grammar text.Parser[T]) *BaseParser[T] {
	return &BaseParser[T]{
		ParseFunc: func(value string) (T, error) {
			v, ok := text.Parse(grammar, value).Get()
			if !ok {
				return v, fmt.Errorf("invalid %s: %q", what, value)
			}
			return v, nil
		},
	}
}

// Validator is a function type for value validation.
type Validator[T any] func(value T) error

// ChainValidators combines multiple validators into a single validator.
// All validators must pass for the value to be considered valid.
func ChainValidators[T any](validators ...Validator[T]) Validator[T] {
	return func(value T) error {
		for _, validator := range validators {
			if err := validator(value); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithValidation wraps an existing parser with additional validation.
func WithValidation[T any](parser Parser[T], validators ...Validator[T]) Parser[T] {
	return &BaseParser[T]{
		ParseFunc: parser.Parse,
		ValidateFunc: func(value T) error {
			if err := parser.Validate(value); err != nil {
				return err
			}
			return ChainValidators(validators...)(value)
		},
	}
}
