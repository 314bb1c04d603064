package pcomb_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/apstndb/pcomb"
	"github.com/apstndb/pcomb/option"
	"github.com/apstndb/pcomb/seq"
)

func TestMap(t *testing.T) {
	length := func(s seq.String) int { return s.Len() }
	p := pcomb.Map(pcomb.Literal[byte](seq.String("abc")), length)

	checkResult(t, p("abcd"), some[seq.String](3, seq.String("d")))
	checkResult(t, p("xyz"), nil)
}

func TestMapDoesNotInvokeFOnFailure(t *testing.T) {
	called := false
	p := pcomb.Map(litA, func(s seq.String) string {
		called = true
		return strings.ToUpper(string(s))
	})

	checkResult(t, p("b"), nil)
	if called {
		t.Error("f must not be invoked when the parser fails")
	}

	checkResult(t, p("a"), some[seq.String]("A", seq.String("")))
	if !called {
		t.Error("f should be invoked when the parser matches")
	}
}

func TestIgnore(t *testing.T) {
	p := pcomb.Ignore(pcomb.Literal[byte](seq.String("ab")))

	checkResult(t, p("abc"), some(pcomb.Unit{}, seq.String("c")))
	checkResult(t, p("ac"), nil)
}

func TestAs(t *testing.T) {
	p := pcomb.As(litA, 1)
	checkResult(t, p("ab"), some[seq.String](1, seq.String("b")))
}

func TestMapOption(t *testing.T) {
	digits := pcomb.Many1(pcomb.Range[byte, seq.String](pcomb.Closed[byte]('0', '9')))
	small := pcomb.MapOption(digits, func(ds []seq.String) option.Option[uint8] {
		var b strings.Builder
		for _, d := range ds {
			b.WriteString(string(d))
		}
		n, err := strconv.ParseUint(b.String(), 10, 8)
		if err != nil {
			return option.None[uint8]()
		}
		return option.Some(uint8(n))
	})

	checkResult(t, small("255x"), some[seq.String](uint8(255), seq.String("x")))
	checkResult(t, small("256x"), nil)
	checkResult(t, small("x"), nil)
}

func TestWhere(t *testing.T) {
	vowel := pcomb.Where[seq.String, seq.String](pcomb.Any[byte, seq.String], func(s seq.String) bool {
		return strings.ContainsAny(string(s), "aeiou")
	})

	checkResult(t, vowel("ab"), some[seq.String, seq.String]("a", "b"))
	checkResult(t, vowel("ba"), nil)
}
