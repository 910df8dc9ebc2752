package domain

import (
	"math"
	"strings"
)

// RangeKind identifies how a version specifier constrains candidate versions.
type RangeKind int

const (
	// RangeExact matches a single version by string equality.
	RangeExact RangeKind = iota
	// RangeMajorOnly matches any version sharing the first numeric component.
	RangeMajorOnly
	// RangeCaret matches versions on the same major line that are at least the given version.
	RangeCaret
	// RangeGreaterOrEqual matches versions at least the given version, with no major constraint.
	RangeGreaterOrEqual
)

// String returns the string representation of the RangeKind.
func (k RangeKind) String() string {
	switch k {
	case RangeExact:
		return "exact"
	case RangeMajorOnly:
		return "major"
	case RangeCaret:
		return "caret"
	case RangeGreaterOrEqual:
		return "gte"
	default:
		return "unknown"
	}
}

// VersionRange is a parsed version specifier.
type VersionRange struct {
	Kind  RangeKind
	Value string
}

// ParseVersion parses a version specifier into a VersionRange.
// Every input parses to some range; unrecognized forms are treated as exact versions.
func ParseVersion(spec string) VersionRange {
	switch {
	case strings.HasPrefix(spec, "^"):
		return VersionRange{Kind: RangeCaret, Value: spec[1:]}
	case strings.HasPrefix(spec, ">="):
		return VersionRange{Kind: RangeGreaterOrEqual, Value: spec[2:]}
	case isBareInteger(spec):
		return VersionRange{Kind: RangeMajorOnly, Value: spec}
	default:
		return VersionRange{Kind: RangeExact, Value: spec}
	}
}

// Matches reports whether candidate satisfies r.
func (r VersionRange) Matches(candidate string) bool {
	switch r.Kind {
	case RangeExact:
		return candidate == r.Value
	case RangeMajorOnly:
		return majorOf(candidate) == majorOf(r.Value)
	case RangeCaret:
		return majorOf(candidate) == majorOf(r.Value) && CompareVersions(candidate, r.Value) >= 0
	case RangeGreaterOrEqual:
		return CompareVersions(candidate, r.Value) >= 0
	default:
		return false
	}
}

// String renders the range back into specifier syntax.
func (r VersionRange) String() string {
	switch r.Kind {
	case RangeCaret:
		return "^" + r.Value
	case RangeGreaterOrEqual:
		return ">=" + r.Value
	default:
		return r.Value
	}
}

// CompareVersions compares two dot-separated versions component by component.
// Missing trailing components count as 0, and so do components without leading digits.
// It returns -1, 0 or 1.
func CompareVersions(a, b string) int {
	pa := versionComponents(a)
	pb := versionComponents(b)

	n := max(len(pa), len(pb))
	for i := range n {
		var x, y int
		if i < len(pa) {
			x = pa[i]
		}
		if i < len(pb) {
			y = pb[i]
		}
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
	}
	return 0
}

// FindBestMatch returns the highest candidate satisfying r.
// Numerically equal candidates are ordered by string comparison, so the result
// does not depend on the order of candidates.
func FindBestMatch(candidates []string, r VersionRange) (string, bool) {
	var (
		best  string
		found bool
	)
	for _, c := range candidates {
		if !r.Matches(c) {
			continue
		}
		if !found {
			best, found = c, true
			continue
		}
		cmp := CompareVersions(c, best)
		if cmp > 0 || (cmp == 0 && c > best) {
			best = c
		}
	}
	return best, found
}

func versionComponents(v string) []int {
	parts := strings.Split(v, ".")
	out := make([]int, len(parts))
	for i, p := range parts {
		out[i] = leadingInt(p)
	}
	return out
}

func majorOf(v string) int {
	head, _, _ := strings.Cut(v, ".")
	return leadingInt(head)
}

// leadingInt parses the leading decimal digits of s, returning 0 when there are none.
// Values that do not fit an int saturate at math.MaxInt.
func leadingInt(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		d := int(c - '0')
		if n > (math.MaxInt-d)/10 {
			return math.MaxInt
		}
		n = n*10 + d
	}
	return n
}

func isBareInteger(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
