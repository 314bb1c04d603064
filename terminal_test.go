package pcomb_test

import (
	"testing"

	"github.com/apstndb/pcomb"
	"github.com/apstndb/pcomb/seq"
	"github.com/google/go-cmp/cmp"
	"github.com/samber/lo"
)

// match describes an expected Result; a nil *match means no match.
type match[S, T any] struct {
	tree T
	rest S
}

func checkResult[S, T any](t *testing.T, got pcomb.Result[S, T], want *match[S, T]) {
	t.Helper()
	r, ok := got.Get()
	if want == nil {
		if ok {
			t.Errorf("got match %+v, want no match", r)
		}
		return
	}
	if !ok {
		t.Fatalf("got no match, want tree %v rest %v", want.tree, want.rest)
	}
	if diff := cmp.Diff(lo.T2(want.tree, want.rest), r); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func some[S, T any](tree T, rest S) *match[S, T] {
	return &match[S, T]{tree: tree, rest: rest}
}

var anyByte = pcomb.Any[byte, seq.String]

func TestAny(t *testing.T) {
	tests := []struct {
		name  string
		input seq.String
		want  *match[seq.String, seq.String]
	}{
		{"empty input fails", "", nil},
		{"consumes one", "ab", some[seq.String, seq.String]("a", "b")},
		{"single element", "z", some[seq.String, seq.String]("z", "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkResult(t, anyByte(tt.input), tt.want)
		})
	}
}

func TestLiteral(t *testing.T) {
	abc := pcomb.Literal[byte](seq.String("abc"))

	t.Run("prefix", func(t *testing.T) {
		tests := []struct {
			name  string
			input seq.String
			want  *match[seq.String, seq.String]
		}{
			{"exact", "abc", some[seq.String, seq.String]("abc", "")},
			{"trailing input is returned", "abcd", some[seq.String, seq.String]("abc", "d")},
			{"too short", "ab", nil},
			{"mismatch", "abx", nil},
			{"empty", "", nil},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				checkResult(t, abc(tt.input), tt.want)
			})
		}
	})

	t.Run("full parse", func(t *testing.T) {
		tests := []struct {
			input  seq.String
			want   seq.String
			wantOK bool
		}{
			{"abc", "abc", true},
			{"abcd", "", false},
			{"ab", "", false},
		}

		for _, tt := range tests {
			got, ok := pcomb.Parse(abc, tt.input).Get()
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Parse(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		}
	})

	t.Run("empty literal matches without consuming", func(t *testing.T) {
		empty := pcomb.Literal[byte](seq.String(""))
		checkResult(t, empty("xy"), some[seq.String, seq.String]("", "xy"))
	})
}

func TestLiteralOf(t *testing.T) {
	p := pcomb.LiteralOf[rune, seq.Runes](seq.Of('1', '2', '3'))

	checkResult(t, p(seq.RunesOf("1234")), some(seq.Of('1', '2', '3'), seq.RunesOf("4")))
	checkResult(t, p(seq.RunesOf("124")), nil)

	got, ok := pcomb.Parse(p, seq.RunesOf("123")).Get()
	if !ok {
		t.Fatal("Parse should match 123")
	}
	if diff := cmp.Diff(seq.Of('1', '2', '3'), got); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestElement(t *testing.T) {
	x := pcomb.Element[byte, seq.String]('x')

	checkResult(t, x("xyz"), some[seq.String, byte]('x', "yz"))
	checkResult(t, x("abc"), nil)
	checkResult(t, x(""), nil)
}

func TestElementOverSlice(t *testing.T) {
	type token int
	const (
		lparen token = iota
		rparen
	)
	p := pcomb.Element[token, seq.Slice[token]](lparen)
	checkResult(t, p(seq.Of(lparen, rparen)), some(lparen, seq.Of(rparen)))
	checkResult(t, p(seq.Of(rparen)), nil)
}

func TestSatisfy(t *testing.T) {
	upper := pcomb.Satisfy[byte, seq.String](func(b byte) bool { return 'A' <= b && b <= 'Z' })

	checkResult(t, upper("Ab"), some[seq.String, byte]('A', "b"))
	checkResult(t, upper("ab"), nil)
	checkResult(t, upper(""), nil)
}

func TestRange(t *testing.T) {
	lower := pcomb.Range[byte, seq.String](pcomb.Closed[byte]('a', 'z'))

	tests := []struct {
		name  string
		input seq.String
		want  *match[seq.String, seq.String]
	}{
		{"inside", "m1", some[seq.String, seq.String]("m", "1")},
		{"lower bound", "a", some[seq.String, seq.String]("a", "")},
		{"upper bound", "z!", some[seq.String, seq.String]("z", "!")},
		{"outside", "M1", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkResult(t, lower(tt.input), tt.want)
		})
	}
}

func TestInterval(t *testing.T) {
	i := pcomb.Closed(1, 5)
	for _, v := range []int{1, 3, 5} {
		if !i.Contains(v) {
			t.Errorf("%v should contain %d", i, v)
		}
	}
	for _, v := range []int{0, 6} {
		if i.Contains(v) {
			t.Errorf("%v should not contain %d", i, v)
		}
	}
	if got := i.String(); got != "1...5" {
		t.Errorf("String() = %q", got)
	}
}
