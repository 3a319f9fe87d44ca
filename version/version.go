// Package version models Solidity compiler versions as a totally ordered
// value type, plus the feature gates the writer uses to decide which syntax
// a target compiler can accept.
package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version identifies one release of the Solidity compiler. Build metadata
// emitted by solc (e.g. "0.8.21+commit.d9974bed.Linux.g++") is accepted on
// parse and ignored for ordering, per semver rules.
type Version struct {
	v *semver.Version
}

// Parse parses a solc version string. The leading "v" some toolchains emit
// is tolerated, as is the platform suffix of solc's long form
// ("0.8.21+commit.d9974bed.Linux.g++"), whose extra "+" characters are not
// valid semver build metadata.
func Parse(s string) (Version, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		if base, _, ok := strings.Cut(s, "+"); ok {
			if v, retryErr := semver.NewVersion(base); retryErr == nil {
				return Version{v: v}, nil
			}
		}
		return Version{}, fmt.Errorf("invalid compiler version %q: %w", s, err)
	}
	return Version{v: v}, nil
}

// MustParse is like Parse but panics on error. It is intended for
// package-level feature gate declarations and tests.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// IsZero reports whether v is the zero Version, i.e. was never parsed.
func (v Version) IsZero() bool {
	return v.v == nil
}

// Compare returns -1, 0, or 1 if v is less than, equal to, or greater
// than other. The zero Version orders before every parsed version.
func (v Version) Compare(other Version) int {
	switch {
	case v.v == nil && other.v == nil:
		return 0
	case v.v == nil:
		return -1
	case other.v == nil:
		return 1
	}
	return v.v.Compare(other.v)
}

// LessThan reports whether v orders strictly before other.
func (v Version) LessThan(other Version) bool {
	return v.Compare(other) < 0
}

// AtLeast reports whether v orders at or after other. This is the test the
// writer's rules use against feature gates.
func (v Version) AtLeast(other Version) bool {
	return v.Compare(other) >= 0
}

func (v Version) String() string {
	if v.v == nil {
		return "<unset>"
	}
	return v.v.String()
}
