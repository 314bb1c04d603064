// Package text specializes pcomb for seq.Text input.
//
// Elements are grapheme clusters, so Char and Range take strings. A single
// cluster such as "é" or "🇯🇵" is one element.
package text

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/apstndb/pcomb"
	"github.com/apstndb/pcomb/option"
	"github.com/apstndb/pcomb/seq"
	"github.com/samber/lo"
	"golang.org/x/text/unicode/norm"
)

// Parser is a parser over Text.
type Parser[T any] = pcomb.Parser[seq.Text, T]

// Any matches any single character.
func Any(input seq.Text) pcomb.Result[seq.Text, seq.Text] {
	return pcomb.Any[string](input)
}

// Lit matches the literal string s.
func Lit(s string) Parser[seq.Text] {
	return pcomb.Literal[string](seq.TextOf(s))
}

// LitOf matches the given strings in order. Each argument is segmented the
// way input is, so LitOf("ab") and LitOf("a", "b") are the same parser. Its
// tree is the resulting characters in normalized form.
func LitOf(chars ...string) Parser[seq.Slice[string]] {
	clusters := lo.FlatMap(chars, func(c string, _ int) []string {
		return slices.Collect(seq.Values[string](seq.TextOf(c)))
	})
	return pcomb.LiteralOf[string, seq.Text](seq.Of(clusters...))
}

// Char matches the single character c. c is normalized the same way input
// is, so canonically equivalent spellings match each other. A c that spans
// more than one grapheme cluster never matches; use Lit for those.
func Char(c string) Parser[string] {
	return pcomb.Element[string, seq.Text](norm.NFC.String(c))
}

// Range matches a single character whose first code point is in [from, to].
// from and to are compared by their first code point as well, so a base
// letter followed by combining marks is in range exactly when the base
// letter is.
func Range(from, to string) Parser[seq.Text] {
	interval := pcomb.Closed(firstRune(from), firstRune(to))
	return pcomb.Where[seq.Text, seq.Text](Any, func(c seq.Text) bool {
		return interval.Contains(firstRune(c.At(0)))
	})
}

// Satisfy matches a single character for which pred holds.
func Satisfy(pred func(string) bool) Parser[string] {
	return pcomb.Satisfy[string, seq.Text](pred)
}

// Ignore matches the literal string s and discards it.
func Ignore(s string) Parser[pcomb.Unit] {
	return pcomb.Ignore(Lit(s))
}

// Parse runs p over s and requires the whole string to be consumed.
func Parse[T any](p Parser[T], s string) option.Option[T] {
	return pcomb.Parse(p, seq.TextOf(s))
}

// Run runs p over s and returns its tree and the unconsumed remainder.
func Run[T any](p Parser[T], s string) (T, string, bool) {
	tree, rest, ok := pcomb.Run(p, seq.TextOf(s))
	return tree, rest.String(), ok
}

// Join concatenates the trees of a repetition of character parsers.
func Join(texts []seq.Text) seq.Text {
	return seq.Concat(texts...)
}

// String converts a Text tree into a string.
func String(t seq.Text) string {
	return t.String()
}

// Digit matches one ASCII decimal digit.
var Digit = Range("0", "9")

// Digits matches one or more ASCII decimal digits.
var Digits = pcomb.Map(pcomb.Map(pcomb.Many1(Digit), Join), String)

// Space matches one Unicode white space character.
var Space = Satisfy(isSpace)

// Spaces matches zero or more white space characters.
var Spaces = pcomb.Ignore(pcomb.Many(Space))

// Token matches p followed by optional white space.
func Token[T any](p Parser[T]) Parser[T] {
	return pcomb.Left(p, Spaces)
}

// Symbol matches the literal s followed by optional white space.
func Symbol(s string) Parser[string] {
	return Token(pcomb.Map(Lit(s), String))
}

// Fold matches p, then greedily matches (op p) pairs, combining left to
// right. It is the usual shape of a left-associative binary operator rule.
func Fold[T any](p Parser[T], op Parser[func(T, T) T]) Parser[T] {
	step := pcomb.Pair(op, p)
	return pcomb.Both(
		pcomb.Map(p, func(first T) func([]lo.Tuple2[func(T, T) T, T]) T {
			return func(steps []lo.Tuple2[func(T, T) T, T]) T {
				return lo.Reduce(steps, func(acc T, s lo.Tuple2[func(T, T) T, T], _ int) T {
					return s.A(acc, s.B)
				}, first)
			}
		}),
		pcomb.Many(step),
	)
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(norm.NFC.String(s))
	return r
}

func isSpace(c string) bool {
	return strings.TrimFunc(c, unicode.IsSpace) == ""
}
