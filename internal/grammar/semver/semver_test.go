package semver_test

import (
	"slices"
	"testing"

	mvsemver "github.com/Masterminds/semver/v3"
	"github.com/apstndb/pcomb/internal/grammar/semver"
	"github.com/google/go-cmp/cmp"
	"github.com/samber/lo"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  semver.Version
	}{
		{"0.0.0", semver.Version{}},
		{"1.2.3", semver.Version{Major: 1, Minor: 2, Patch: 3}},
		{"10.20.30", semver.Version{Major: 10, Minor: 20, Patch: 30}},
		{"1.0.0-alpha", semver.Version{Major: 1, Prerelease: []string{"alpha"}}},
		{"1.0.0-alpha.1", semver.Version{Major: 1, Prerelease: []string{"alpha", "1"}}},
		{"1.0.0-0.3.7", semver.Version{Major: 1, Prerelease: []string{"0", "3", "7"}}},
		{"1.0.0-x-y-z.--", semver.Version{Major: 1, Prerelease: []string{"x-y-z", "--"}}},
		{"1.0.0-alpha+001", semver.Version{Major: 1, Prerelease: []string{"alpha"}, Build: []string{"001"}}},
		{"1.0.0+20130313144700", semver.Version{Major: 1, Build: []string{"20130313144700"}}},
		{"1.0.0-beta+exp.sha.5114f85", semver.Version{Major: 1, Prerelease: []string{"beta"}, Build: []string{"exp", "sha", "5114f85"}}},
		{"1.0.0-0a", semver.Version{Major: 1, Prerelease: []string{"0a"}}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := semver.Parse(tt.input).Get()
			if !ok {
				t.Fatalf("Parse(%q) did not match", tt.input)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
			if got.String() != tt.input {
				t.Errorf("String() = %q, want %q", got.String(), tt.input)
			}
		})
	}
}

func TestParseRejects(t *testing.T) {
	for _, input := range []string{
		"",
		"1",
		"1.2",
		"1.2.3.4",
		"01.2.3",
		"1.02.3",
		"1.2.03",
		"1.2.3-",
		"1.2.3-01",
		"1.2.3-alpha..1",
		"1.2.3+",
		"1.2.3-alpha_beta",
		"v1.2.3",
		"18446744073709551616.0.0",
	} {
		if v, ok := semver.Parse(input).Get(); ok {
			t.Errorf("Parse(%q) = %v, want no match", input, v)
		}
	}
}

func TestCompare(t *testing.T) {
	// Ascending precedence.
	ordered := []string{
		"1.0.0-alpha",
		"1.0.0-alpha.1",
		"1.0.0-alpha.beta",
		"1.0.0-beta",
		"1.0.0-beta.2",
		"1.0.0-beta.11",
		"1.0.0-rc.1",
		"1.0.0",
		"1.0.1",
		"1.1.0",
		"2.0.0",
	}
	versions := lo.Map(ordered, func(s string, _ int) semver.Version {
		v, ok := semver.Parse(s).Get()
		if !ok {
			t.Fatalf("Parse(%q) did not match", s)
		}
		return v
	})

	shuffled := slices.Clone(versions)
	slices.Reverse(shuffled)
	slices.SortFunc(shuffled, semver.Compare)

	got := lo.Map(shuffled, func(v semver.Version, _ int) string { return v.String() })
	if diff := cmp.Diff(ordered, got); diff != "" {
		t.Errorf("sort order mismatch (-want +got):\n%s", diff)
	}

	a, _ := semver.Parse("1.0.0+build.1").Get()
	b, _ := semver.Parse("1.0.0+build.2").Get()
	if semver.Compare(a, b) != 0 {
		t.Error("build metadata must not affect precedence")
	}
}

func TestCompareAgreesWithMasterminds(t *testing.T) {
	inputs := []string{
		"1.0.0", "1.0.0-alpha", "1.0.0-alpha.1", "1.0.0-beta.11", "1.0.0-beta.2",
		"1.0.0-rc.1", "0.9.9", "1.0.1", "2.0.0+build", "1.0.0-0.3.7",
	}

	for _, a := range inputs {
		for _, b := range inputs {
			va, _ := semver.Parse(a).Get()
			vb, _ := semver.Parse(b).Get()
			ma, err := mvsemver.StrictNewVersion(a)
			if err != nil {
				t.Fatalf("StrictNewVersion(%q): %v", a, err)
			}
			mb, err := mvsemver.StrictNewVersion(b)
			if err != nil {
				t.Fatalf("StrictNewVersion(%q): %v", b, err)
			}
			if got, want := semver.Compare(va, vb), ma.Compare(mb); got != want {
				t.Errorf("Compare(%s, %s) = %d, want %d", a, b, got, want)
			}
		}
	}
}
