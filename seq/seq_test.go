package seq_test

import (
	"slices"
	"testing"

	"github.com/apstndb/pcomb/seq"
	"github.com/google/go-cmp/cmp"
)

func TestHasPrefix(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		prefix string
		want   bool
	}{
		{"exact", "abc", "abc", true},
		{"proper prefix", "abcd", "abc", true},
		{"empty prefix", "abc", "", true},
		{"shorter input", "ab", "abc", false},
		{"mismatch", "abd", "abc", false},
		{"empty input", "", "a", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := seq.HasPrefix[byte](seq.String(tt.input), seq.String(tt.prefix)); got != tt.want {
				t.Errorf("HasPrefix(%q, %q) = %v, want %v", tt.input, tt.prefix, got, tt.want)
			}
		})
	}
}

func TestHasPrefixAcrossCollectionTypes(t *testing.T) {
	input := seq.RunesOf("xyz")
	if !seq.HasPrefix[rune](input, seq.Of('x', 'y')) {
		t.Error("Runes should have Slice prefix x, y")
	}
	if seq.HasPrefix[rune](input, seq.Of('y')) {
		t.Error("Runes should not have Slice prefix y")
	}
}

func TestSplitAt(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		head, tail := seq.String("hello").SplitAt(2)
		if head != "he" || tail != "llo" {
			t.Errorf("SplitAt(2) = (%q, %q)", head, tail)
		}
	})

	t.Run("Slice prefix is capped", func(t *testing.T) {
		s := seq.Of(1, 2, 3, 4)
		head, tail := s.SplitAt(2)
		head = append(head, 99)
		if diff := cmp.Diff(seq.Of(3, 4), tail); diff != "" {
			t.Errorf("appending to head changed tail (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(seq.Of(1, 2, 99), head); diff != "" {
			t.Errorf("head mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Runes", func(t *testing.T) {
		head, tail := seq.RunesOf("日本語").SplitAt(1)
		if head.String() != "日" || tail.String() != "本語" {
			t.Errorf("SplitAt(1) = (%q, %q)", head, tail)
		}
	})
}

func TestFirst(t *testing.T) {
	if _, ok := seq.First[byte](seq.String("")); ok {
		t.Error("First of empty String should report false")
	}
	if got, ok := seq.First[byte](seq.String("q")); !ok || got != 'q' {
		t.Errorf("First() = (%q, %v)", got, ok)
	}
}

func TestValues(t *testing.T) {
	got := slices.Collect(seq.Values[string](seq.TextOf("añb")))
	if diff := cmp.Diff([]string{"a", "ñ", "b"}, got); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}
}

func TestText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"ascii", "abc", []string{"a", "b", "c"}},
		{"combining mark is composed", "e\u0301x", []string{"é", "x"}},
		{"flag is one cluster", "🇯🇵!", []string{"🇯🇵", "!"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := seq.TextOf(tt.input)
			got := slices.Collect(seq.Values[string](text))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("TextOf(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestTextEquality(t *testing.T) {
	decomposed := seq.TextOf("cafe\u0301")
	precomposed := seq.TextOf("café")
	if !decomposed.Equal(precomposed) {
		t.Errorf("%q and %q should be equal after normalization", decomposed, precomposed)
	}
	if diff := cmp.Diff(precomposed, decomposed); diff != "" {
		t.Errorf("cmp.Diff should use Equal (-want +got):\n%s", diff)
	}
	if !seq.Equal[string](decomposed, seq.Of("c", "a", "f", "é")) {
		t.Error("Text should equal a Slice of the same clusters")
	}
}

func TestTextSplitAndConcat(t *testing.T) {
	text := seq.TextOf("héllo")
	head, tail := text.SplitAt(2)
	if head.String() != "hé" || tail.String() != "llo" {
		t.Errorf("SplitAt(2) = (%q, %q)", head, tail)
	}
	if got := seq.Concat(head, tail); !got.Equal(text) {
		t.Errorf("Concat() = %q, want %q", got, text)
	}
	if !seq.TextOf("").IsEmpty() {
		t.Error("empty text should be empty")
	}
}
