// Package pcomb is a parser combinator toolkit.
//
// A Parser is a pure function from the remaining input to an optional pair of
// (tree, remainder). Terminal parsers consume input directly; combinators
// build new parsers from existing ones. Every parser is a partial matcher:
// it consumes a prefix of its input and hands the rest back, which is what
// lets parsers be chained. Parse is the only entry point that requires the
// whole input to be consumed.
//
// # Input
//
// Input is any seq.Sequence: a randomly indexable sequence whose sub-slices
// have the same type. seq.String, seq.Runes, seq.Slice and seq.Text are
// provided. The text package specializes the toolkit for seq.Text so that
// grammars over strings read naturally.
//
// # Failure
//
// There is exactly one failure channel: an empty Result. "Malformed input",
// "unexpected end of input" and "this alternative does not apply here" are
// indistinguishable. Combinators never recover from a failure by themselves;
// Or is the only combinator that tries another parser after one fails.
//
// # Operators
//
// The combinators correspond to the usual operator vocabulary:
//
//	<*>   Both     apply the left tree (a function) to the right tree
//	<*    Left     keep the left tree
//	*>    Right    keep the right tree
//	-->   Map      transform the tree
//	%     Literal, LiteralOf, Element, Range
//
// Go has no user-defined operators, so precedence is written with nesting.
// Mapping binds tighter than sequencing and both associate to the left:
// "a --> f <*> b" is Both(Map(a, f), b).
//
// # Usage
//
//	number := pcomb.Map(text.Digits, func(s string) int {
//	    n, _ := strconv.Atoi(s)
//	    return n
//	})
//	add := func(a int) func(int) int {
//	    return func(b int) int { return a + b }
//	}
//	sum := pcomb.Both(pcomb.Map(pcomb.Left(number, text.Lit("+")), add), number)
//	text.Parse(sum, "12+30") // Some(42)
//
// Parsers own no state and are safe for concurrent use.
package pcomb
