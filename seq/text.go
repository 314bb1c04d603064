package seq

import (
	"slices"
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// Text is a sequence of user-perceived characters.
//
// The source string is normalized to NFC and then split into extended
// grapheme clusters, so "e" followed by a combining acute accent and the
// precomposed "é" are the same single element. Each element is the cluster's
// string form.
type Text struct {
	clusters []string
}

// TextOf segments s into a Text.
func TextOf(s string) Text {
	s = norm.NFC.String(s)
	clusters := make([]string, 0, len(s))
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		clusters = append(clusters, cluster)
	}
	return Text{clusters: clusters}
}

func (t Text) Len() int { return len(t.clusters) }

func (t Text) At(i int) string { return t.clusters[i] }

func (t Text) SplitAt(i int) (Text, Text) {
	return Text{clusters: t.clusters[:i:i]}, Text{clusters: t.clusters[i:]}
}

// IsEmpty reports whether t has no characters.
func (t Text) IsEmpty() bool { return len(t.clusters) == 0 }

// String joins the clusters back into a string.
func (t Text) String() string {
	return strings.Join(t.clusters, "")
}

// Equal reports whether t and other hold the same clusters.
func (t Text) Equal(other Text) bool {
	return slices.Equal(t.clusters, other.clusters)
}

// Concat joins several Texts into one.
func Concat(texts ...Text) Text {
	var n int
	for _, t := range texts {
		n += t.Len()
	}
	clusters := make([]string, 0, n)
	for _, t := range texts {
		clusters = append(clusters, t.clusters...)
	}
	return Text{clusters: clusters}
}
