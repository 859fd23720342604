package versions

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidVersion is returned by Parse for unparseable input.
var ErrInvalidVersion = errors.New("invalid version")

// Version is a three-part version number. Missing parts are zero.
type Version struct {
	Major int
	Minor int
	Patch int
}

// New returns a Version from its parts.
func New(major, minor, patch int) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// Parse reads a version string such as "1.2.3", "v1.2" or "1,2,3". Parts
// may be separated by dots or commas; at most three are accepted.
func Parse(s string) (Version, error) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "v"))
	if trimmed == "" {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}

	parts := strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == '.' || r == ','
	})
	if len(parts) > 3 {
		return Version{}, fmt.Errorf("%w: %q has more than three parts", ErrInvalidVersion, s)
	}

	nums := make([]int, 0, 3)
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
		}
		nums = append(nums, n)
	}
	return FromInts(nums), nil
}

// MustParse is Parse but panics on error, for constant-like declarations.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// FromInts builds a Version from up to three integers. Extra values are
// ignored, missing ones default to zero.
func FromInts(parts []int) Version {
	var v Version
	if len(parts) > 0 {
		v.Major = parts[0]
	}
	if len(parts) > 1 {
		v.Minor = parts[1]
	}
	if len(parts) > 2 {
		v.Patch = parts[2]
	}
	return v
}

// FromFloat builds a Version from a major.minor float, e.g. 2.6 -> v2.6.0.
func FromFloat(f float64) (Version, error) {
	return Parse(strconv.FormatFloat(f, 'f', -1, 64))
}

// String renders the version as "v1.2.3".
func (v Version) String() string {
	return fmt.Sprintf("v%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Equal reports strict equality of all three parts.
func (v Version) Equal(other Version) bool {
	return v == other
}

// EqualPrefix compares only the first n parts, so a version known to two
// parts can match any patch level. n outside 1..3 is clamped.
func (v Version) EqualPrefix(other Version, n int) bool {
	switch {
	case n <= 1:
		return v.Major == other.Major
	case n == 2:
		return v.Major == other.Major && v.Minor == other.Minor
	default:
		return v == other
	}
}

// Compare orders two versions on the full triple, returning -1, 0 or 1.
func (v Version) Compare(other Version) int {
	if c := cmp(v.Major, other.Major); c != 0 {
		return c
	}
	if c := cmp(v.Minor, other.Minor); c != 0 {
		return c
	}
	return cmp(v.Patch, other.Patch)
}

// Less reports whether v orders before other.
func (v Version) Less(other Version) bool { return v.Compare(other) < 0 }

// Greater reports whether v orders after other.
func (v Version) Greater(other Version) bool { return v.Compare(other) > 0 }

func cmp(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
