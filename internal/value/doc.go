// Package value parses typed values out of strings for pcomb's command line.
//
// It is built on the combinator core: each concrete parser is a grammar run
// with text.Parse, followed by optional validation.
//
// # Core Interfaces
//
//   - Parser[T]: Parse, Validate and ParseAndValidate for any type T
//   - BaseParser[T]: function-backed implementation of Parser[T]
//   - Concrete parsers for bool, int64, time.Duration, quoted strings and enums
//   - OptionalParser[T]: NULL as None around any Parser[T]
//
// Validation is separate from parsing and composes with WithValidation and
// ChainValidators. WithTransform turns a Parser[T] into a Parser[U].
package value
