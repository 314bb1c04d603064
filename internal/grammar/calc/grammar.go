package calc

import (
	"strconv"

	"github.com/apstndb/pcomb"
	"github.com/apstndb/pcomb/option"
	"github.com/apstndb/pcomb/text"
	"github.com/samber/lo"
)

// Grammar matches an expression with optional surrounding white space. It
// does not require the whole input to be consumed; use Parse for that.
var Grammar = newGrammar()

// Parse parses s as a complete expression.
func Parse(s string) option.Option[Node] {
	return text.Parse(Grammar, s)
}

// number rejects literals that do not fit in an int64.
var number = text.Token(pcomb.MapOption(text.Digits, func(digits string) option.Option[Node] {
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return option.None[Node]()
	}
	return option.Some[Node](Num{Value: n})
}))

func operators(symbols ...string) text.Parser[func(Node, Node) Node] {
	return pcomb.Or(lo.Map(symbols, func(op string, _ int) text.Parser[func(Node, Node) Node] {
		return pcomb.As(text.Symbol(op), func(l, r Node) Node {
			return Binary{Op: op, Left: l, Right: r}
		})
	})...)
}

func newGrammar() text.Parser[Node] {
	var expr, factor text.Parser[Node]
	lazyExpr := pcomb.Lazy(func() text.Parser[Node] { return expr })
	lazyFactor := pcomb.Lazy(func() text.Parser[Node] { return factor })

	factor = pcomb.Or(
		number,
		pcomb.Between(text.Symbol("("), lazyExpr, text.Symbol(")")),
		pcomb.Map(pcomb.Right(text.Symbol("-"), lazyFactor), func(x Node) Node { return Neg{X: x} }),
	)
	term := text.Fold(factor, operators("*", "/", "%"))
	expr = text.Fold(term, operators("+", "-"))

	return pcomb.Right(text.Spaces, expr)
}
