// Package semver parses semantic versions of the form
// MAJOR.MINOR.PATCH[-PRERELEASE][+BUILD].
package semver

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/apstndb/pcomb"
	"github.com/apstndb/pcomb/option"
	"github.com/apstndb/pcomb/seq"
	"github.com/apstndb/pcomb/text"
	"github.com/samber/lo"
)

// Version is a parsed semantic version.
type Version struct {
	Major, Minor, Patch uint64
	Prerelease          []string `json:",omitempty" yaml:",omitempty"`
	Build               []string `json:",omitempty" yaml:",omitempty"`
}

func (v Version) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d.%d.%d", v.Major, v.Minor, v.Patch)
	if len(v.Prerelease) > 0 {
		b.WriteString("-" + strings.Join(v.Prerelease, "."))
	}
	if len(v.Build) > 0 {
		b.WriteString("+" + strings.Join(v.Build, "."))
	}
	return b.String()
}

// Compare orders versions by precedence. Build metadata is ignored.
func Compare(a, b Version) int {
	if c := cmp.Compare(a.Major, b.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Minor, b.Minor); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Patch, b.Patch); c != 0 {
		return c
	}

	// A version without prerelease identifiers has higher precedence.
	switch {
	case len(a.Prerelease) == 0 && len(b.Prerelease) == 0:
		return 0
	case len(a.Prerelease) == 0:
		return 1
	case len(b.Prerelease) == 0:
		return -1
	}
	return slices.CompareFunc(a.Prerelease, b.Prerelease, compareIdentifier)
}

func compareIdentifier(a, b string) int {
	an, aErr := strconv.ParseUint(a, 10, 64)
	bn, bErr := strconv.ParseUint(b, 10, 64)
	switch {
	case aErr == nil && bErr == nil:
		return cmp.Compare(an, bn)
	case aErr == nil:
		return -1
	case bErr == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// Grammar matches a version. It does not require the whole input to be
// consumed; use Parse for that.
var Grammar = pcomb.Both(
	pcomb.Map(core, func(c [3]uint64) func(lo.Tuple2[[]string, []string]) Version {
		return func(suffix lo.Tuple2[[]string, []string]) Version {
			return Version{Major: c[0], Minor: c[1], Patch: c[2], Prerelease: suffix.A, Build: suffix.B}
		}
	}),
	pcomb.Pair(
		optionalList(pcomb.Right(text.Char("-"), dotted(prereleaseIdentifier))),
		optionalList(pcomb.Right(text.Char("+"), dotted(identifier))),
	),
)

// Parse parses s as a complete version.
func Parse(s string) option.Option[Version] {
	return text.Parse(Grammar, s)
}

var (
	digits = pcomb.Map(pcomb.Many(text.Digit), text.Join)

	// numeric is "0" or a digit string without a leading zero.
	numeric = pcomb.Map(pcomb.Or(
		pcomb.Both(pcomb.Map(text.Range("1", "9"), prependText), digits),
		text.Lit("0"),
	), text.String)

	number = pcomb.MapOption(numeric, func(s string) option.Option[uint64] {
		n, err := strconv.ParseUint(s, 10, 64)
		return lo.Ternary(err == nil, option.Some(n), option.None[uint64]())
	})

	core = pcomb.Map(
		pcomb.Pair(pcomb.Left(number, text.Char(".")), pcomb.Pair(pcomb.Left(number, text.Char(".")), number)),
		func(t lo.Tuple2[uint64, lo.Tuple2[uint64, uint64]]) [3]uint64 {
			return [3]uint64{t.A, t.B.A, t.B.B}
		},
	)

	identifier = pcomb.Map(pcomb.Many1(text.Satisfy(isIdentifierChar)), func(cs []string) string {
		return strings.Join(cs, "")
	})

	// Numeric prerelease identifiers must not have leading zeros.
	prereleaseIdentifier = pcomb.Where(identifier, func(id string) bool {
		if strings.Trim(id, "0123456789") != "" {
			return true
		}
		return id == "0" || !strings.HasPrefix(id, "0")
	})
)

func prependText(head seq.Text) func(seq.Text) seq.Text {
	return func(tail seq.Text) seq.Text {
		return seq.Concat(head, tail)
	}
}

func dotted(p text.Parser[string]) text.Parser[[]string] {
	return pcomb.SepBy1(p, text.Char("."))
}

func optionalList(p text.Parser[[]string]) text.Parser[[]string] {
	return pcomb.Map(pcomb.Optional(p), func(o option.Option[[]string]) []string {
		return o.OrElse(nil)
	})
}

func isIdentifierChar(c string) bool {
	if len(c) != 1 {
		return false
	}
	b := c[0]
	return b == '-' || '0' <= b && b <= '9' || 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}
