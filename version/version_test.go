package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	v, err := Parse("0.8.21")
	require.NoError(t, err)
	assert.Equal(t, "0.8.21", v.String())
	assert.False(t, v.IsZero())

	// solc embeds commit metadata in its version output.
	v, err = Parse("0.8.21+commit.d9974bed.Linux.g++")
	require.NoError(t, err)
	assert.True(t, v.AtLeast(MustParse("0.8.21")))
	assert.True(t, MustParse("0.8.21").AtLeast(v))

	v, err = Parse("v0.4.26")
	require.NoError(t, err)
	assert.Equal(t, "0.4.26", v.String())

	_, err = Parse("not a version")
	require.Error(t, err)
}

func TestOrdering(t *testing.T) {
	cases := []struct {
		a, b string
		cmp  int
	}{
		{"0.4.11", "0.4.12", -1},
		{"0.4.12", "0.4.12", 0},
		{"0.8.0", "0.7.6", 1},
		{"0.8.9", "0.8.10", -1},
	}
	for _, tc := range cases {
		a, b := MustParse(tc.a), MustParse(tc.b)
		assert.Equal(t, tc.cmp, a.Compare(b), "%s vs %s", tc.a, tc.b)
		assert.Equal(t, tc.cmp < 0, a.LessThan(b))
		assert.Equal(t, tc.cmp >= 0, a.AtLeast(b))
	}
}

func TestZeroVersion(t *testing.T) {
	var zero Version
	assert.True(t, zero.IsZero())
	assert.Equal(t, "<unset>", zero.String())

	// The zero version orders before everything, so feature gates all
	// report unsupported for it.
	assert.True(t, zero.LessThan(MustParse("0.1.0")))
	assert.False(t, zero.AtLeast(EmitStatement))
	assert.Equal(t, 0, zero.Compare(Version{}))
}

func TestFeatureGateOrdering(t *testing.T) {
	// Gates must hold their relative chronology.
	assert.True(t, ViewPureKeywords.LessThan(EmitStatement))
	assert.True(t, EmitStatement.LessThan(ConstructorKeyword))
	assert.True(t, ConstructorKeyword.LessThan(ReceiveFunction))
	assert.True(t, ReceiveFunction.LessThan(ImmutableState))
	assert.True(t, ImmutableState.LessThan(ConstructorVisibilityDropped))
	assert.True(t, ConstructorVisibilityDropped.LessThan(UncheckedBlocks))
	assert.True(t, UncheckedBlocks.LessThan(CustomErrors))
	assert.True(t, CustomErrors.LessThan(UserDefinedValueTypes))
}
