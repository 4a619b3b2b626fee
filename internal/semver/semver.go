// Package semver implements package version ordering for dependency specs.
//
// A version is a dotted list of numbers, an optional trailing letter, any
// number of "_alpha", "_beta", "_pre", "_rc" or "_p" suffixes (each with an
// optional number) and an optional "-rN" revision. The first three numeric
// components are held in a github.com/Masterminds/semver/v3 Version; further
// components are compared after it, missing components counting as zero.
// Revisions only matter for exact equality and revision-aware ordering.
package semver

import (
	"cmp"
	"strconv"
	"strings"

	mm "github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

// ErrInvalidVersion is returned when a version string cannot be parsed.
var ErrInvalidVersion = zerr.New("invalid version")

type suffixKind int

// Suffix kinds in ascending order; a version without suffix sorts between rc and p.
const (
	suffixAlpha suffixKind = iota
	suffixBeta
	suffixPre
	suffixRC
	suffixNone
	suffixP
)

// Longest prefix first so "pre" is not read as "p".
var suffixNames = []struct {
	name string
	kind suffixKind
}{
	{"alpha", suffixAlpha},
	{"beta", suffixBeta},
	{"pre", suffixPre},
	{"rc", suffixRC},
	{"p", suffixP},
}

type suffix struct {
	kind suffixKind
	num  uint64
}

// Version is a package version.
type Version struct {
	core     *mm.Version
	extra    []uint64
	letter   byte
	suffixes []suffix
	revision uint64
	hasRev   bool
	raw      string
}

// ParseVersion parses raw, keeping the original text for display.
func ParseVersion(raw string) (Version, error) {
	v := Version{raw: raw}
	s := raw

	if i := strings.LastIndex(s, "-r"); i > 0 && isDigits(s[i+2:]) {
		rev, err := strconv.ParseUint(s[i+2:], 10, 64)
		if err != nil {
			return Version{}, invalid(raw, "revision out of range")
		}
		v.revision, v.hasRev = rev, true
		s = s[:i]
	}

	parts := strings.Split(s, "_")
	s = parts[0]
	for _, part := range parts[1:] {
		sfx, ok := parseSuffix(part)
		if !ok {
			return Version{}, invalid(raw, "unknown suffix "+strconv.Quote(part))
		}
		v.suffixes = append(v.suffixes, sfx)
	}

	if n := len(s); n > 1 && s[n-1] >= 'a' && s[n-1] <= 'z' {
		v.letter = s[n-1]
		s = s[:n-1]
	}

	var nums []uint64
	for _, c := range strings.Split(s, ".") {
		if !isDigits(c) {
			return Version{}, invalid(raw, "components must be numeric")
		}
		n, err := strconv.ParseUint(c, 10, 64)
		if err != nil {
			return Version{}, invalid(raw, "component out of range")
		}
		nums = append(nums, n)
	}

	core := make([]uint64, 3)
	copy(core, nums)
	v.core = mm.New(core[0], core[1], core[2], "", "")
	if len(nums) > 3 {
		v.extra = nums[3:]
	}
	return v, nil
}

func invalid(raw, reason string) error {
	return zerr.With(zerr.Wrap(ErrInvalidVersion, reason), "version", raw)
}

func parseSuffix(s string) (suffix, bool) {
	for _, candidate := range suffixNames {
		rest, ok := strings.CutPrefix(s, candidate.name)
		if !ok {
			continue
		}
		if rest == "" {
			return suffix{kind: candidate.kind}, true
		}
		if !isDigits(rest) {
			return suffix{}, false
		}
		n, err := strconv.ParseUint(rest, 10, 64)
		if err != nil {
			return suffix{}, false
		}
		return suffix{kind: candidate.kind, num: n}, true
	}
	return suffix{}, false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// MustParseVersion is like ParseVersion but panics on error.
func MustParseVersion(raw string) Version {
	v, err := ParseVersion(raw)
	if err != nil {
		panic(err)
	}
	return v
}

// IsZero reports whether v was never parsed.
func (v Version) IsZero() bool {
	return v.core == nil
}

// String returns the version as it was written.
func (v Version) String() string {
	return v.raw
}

// Revision returns the package revision as "rN", or "" when none was given.
func (v Version) Revision() string {
	if !v.hasRev {
		return ""
	}
	return "r" + strconv.FormatUint(v.revision, 10)
}

// Compare compares a and b ignoring revisions, returning:
// -1 if a < b
//
//	0 if a == b
//	1 if a > b
func Compare(a, b Version) int {
	if a.core == nil && b.core == nil {
		return 0
	}
	if a.core == nil {
		return -1
	}
	if b.core == nil {
		return 1
	}
	if c := a.core.Compare(b.core); c != 0 {
		return c
	}
	for i := range max(len(a.extra), len(b.extra)) {
		if c := cmp.Compare(component(a.extra, i), component(b.extra, i)); c != 0 {
			return c
		}
	}
	if c := cmp.Compare(a.letter, b.letter); c != 0 {
		return c
	}
	for i := range max(len(a.suffixes), len(b.suffixes)) {
		if c := compareSuffix(suffixAt(a.suffixes, i), suffixAt(b.suffixes, i)); c != 0 {
			return c
		}
	}
	return 0
}

func component(nums []uint64, i int) uint64 {
	if i < len(nums) {
		return nums[i]
	}
	return 0
}

func suffixAt(suffixes []suffix, i int) suffix {
	if i < len(suffixes) {
		return suffixes[i]
	}
	return suffix{kind: suffixNone}
}

func compareSuffix(a, b suffix) int {
	if c := cmp.Compare(a.kind, b.kind); c != 0 {
		return c
	}
	return cmp.Compare(a.num, b.num)
}

// CompareWithRevision compares a and b, ordering equal versions by revision.
// An absent revision counts as r0.
func CompareWithRevision(a, b Version) int {
	if c := Compare(a, b); c != 0 {
		return c
	}
	return cmp.Compare(a.revision, b.revision)
}

// Equal reports whether a and b are the same version including revision.
func Equal(a, b Version) bool {
	return CompareWithRevision(a, b) == 0
}

// Operator is a version comparison operator as written in a dependency spec.
type Operator string

const (
	// OpEqual matches exactly, revision included.
	OpEqual Operator = "="
	// OpEqualStar matches any version whose text starts with the requirement.
	OpEqualStar Operator = "=*"
	// OpTilde matches equal versions with any revision.
	OpTilde Operator = "~"
	// OpLess matches strictly lower versions.
	OpLess Operator = "<"
	// OpLessEqual matches lower or equal versions.
	OpLessEqual Operator = "<="
	// OpGreater matches strictly higher versions.
	OpGreater Operator = ">"
	// OpGreaterEqual matches higher or equal versions.
	OpGreaterEqual Operator = ">="
)

// Operators lists every operator, longest prefix first so parsers can match greedily.
var Operators = []Operator{OpGreaterEqual, OpLessEqual, OpGreater, OpLess, OpTilde, OpEqual}

// Satisfies reports whether v satisfies "op want".
func Satisfies(v Version, op Operator, want Version) bool {
	if v.IsZero() || want.IsZero() {
		return false
	}
	switch op {
	case OpEqual:
		return Equal(v, want)
	case OpEqualStar:
		return strings.HasPrefix(v.String(), want.String())
	case OpTilde:
		return Compare(v, want) == 0
	case OpLess:
		return CompareWithRevision(v, want) < 0
	case OpLessEqual:
		return CompareWithRevision(v, want) <= 0
	case OpGreater:
		return CompareWithRevision(v, want) > 0
	case OpGreaterEqual:
		return CompareWithRevision(v, want) >= 0
	default:
		return false
	}
}

// Max returns the highest version in candidates.
//
// If multiple versions are equal, the first encountered wins.
func Max(candidates []Version) (Version, bool) {
	var best Version
	found := false
	for _, candidate := range candidates {
		if !found || CompareWithRevision(candidate, best) > 0 {
			best = candidate
			found = true
		}
	}
	return best, found
}
