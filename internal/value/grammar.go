package value

import (
	"strings"

	"github.com/apstndb/pcomb"
	"github.com/apstndb/pcomb/option"
	"github.com/apstndb/pcomb/seq"
	"github.com/apstndb/pcomb/text"
	"github.com/samber/lo"
)

var end = pcomb.End[seq.Text]()

// padded allows surrounding white space around p.
func padded[T any](p text.Parser[T]) text.Parser[T] {
	return pcomb.Between(text.Spaces, p, text.Spaces)
}

// literalFold matches s ignoring case.
func literalFold(s string) text.Parser[pcomb.Unit] {
	chars := seq.TextOf(s)
	p := pcomb.Pure[seq.Text](pcomb.Unit{})
	for c := range seq.Values[string](chars) {
		p = pcomb.Left(p, text.Satisfy(func(got string) bool { return strings.EqualFold(got, c) }))
	}
	return p
}

// remaining matches the rest of the input as a string.
var remaining = pcomb.Map(pcomb.Many[seq.Text, seq.Text](text.Any), func(ts []seq.Text) string {
	return text.Join(ts).String()
})

func oneOf(tree bool, spellings ...string) text.Parser[bool] {
	return pcomb.As(pcomb.Or(lo.Map(spellings, func(s string, _ int) text.Parser[seq.Text] {
		return text.Lit(s)
	})...), tree)
}

// boolGrammar accepts the spellings strconv.ParseBool accepts.
var boolGrammar = padded(pcomb.Or(
	oneOf(true, "true", "TRUE", "True", "t", "T", "1"),
	oneOf(false, "false", "FALSE", "False", "f", "F", "0"),
))

var sign = pcomb.Optional(pcomb.Or(text.Char("-"), text.Char("+")))

// intGrammar matches an optionally signed decimal integer and yields its
// canonical spelling.
var intGrammar = padded(pcomb.Map(pcomb.Pair(sign, text.Digits), func(t lo.Tuple2[option.Option[string], string]) string {
	return t.A.OrElse("") + t.B
}))

var durationUnit = pcomb.Or(
	text.Lit("ns"),
	text.Lit("us"),
	text.Lit("µs"),
	text.Lit("μs"),
	text.Lit("ms"),
	text.Lit("s"),
	text.Lit("m"),
	text.Lit("h"),
)

var decimal = pcomb.Or(
	pcomb.Ignore(pcomb.Pair(text.Digits, pcomb.Optional(pcomb.Pair(text.Char("."), pcomb.Optional(text.Digits))))),
	pcomb.Ignore(pcomb.Pair(text.Char("."), text.Digits)),
)

// durationGrammar recognizes the syntax time.ParseDuration accepts: an
// optional sign and either "0" or a sequence of decimal numbers with units.
var durationGrammar = padded(pcomb.Ignore(pcomb.Pair(sign, pcomb.Or(
	pcomb.Ignore(pcomb.Many1(pcomb.Pair(decimal, durationUnit))),
	pcomb.Ignore(text.Char("0")),
))))

func quoted(q string) text.Parser[string] {
	body := pcomb.Map(pcomb.Many(text.Satisfy(func(c string) bool { return c != q })), func(cs []string) string {
		return strings.Join(cs, "")
	})
	return pcomb.Left(pcomb.Between(text.Char(q), body, text.Char(q)), end)
}

// quotedStringGrammar removes one pair of matching surrounding quotes and
// otherwise returns its input unchanged.
var quotedStringGrammar = pcomb.Or(quoted(`"`), quoted(`'`), remaining)

// nullGrammar matches NULL in any case.
var nullGrammar = padded(literalFold("NULL"))
