package typestring

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type corpusSample struct {
	Input     string `yaml:"input"`
	Kind      string `yaml:"kind"`
	Canonical string `yaml:"canonical"`
}

// TestParseCorpus runs every captured compiler type string through a
// parse / re-serialize / re-parse cycle.
func TestParseCorpus(t *testing.T) {
	data, err := os.ReadFile("testdata/corpus.yaml")
	require.NoError(t, err)
	var corpus struct {
		Samples []corpusSample `yaml:"samples"`
	}
	require.NoError(t, yaml.Unmarshal(data, &corpus))
	require.NotEmpty(t, corpus.Samples)

	for _, sample := range corpus.Samples {
		t.Run(sample.Input, func(t *testing.T) {
			d, err := Parse(sample.Input)
			require.NoError(t, err)
			assert.Equal(t, sample.Kind, d.Kind.String())

			want := sample.Canonical
			if want == "" {
				want = sample.Input
			}
			assert.Equal(t, want, d.String())

			again, err := Parse(d.String())
			require.NoError(t, err)
			assert.True(t, d.Equal(again), "re-parse of %q differs", d.String())
		})
	}
}

func TestParseStructure(t *testing.T) {
	t.Run("nested mapping", func(t *testing.T) {
		d, err := Parse("mapping(address => mapping(uint256 => bool))")
		require.NoError(t, err)
		require.Equal(t, KindMapping, d.Kind)
		assert.Equal(t, "address", d.Key.Name)
		require.Equal(t, KindMapping, d.Val.Kind)
		assert.Equal(t, "uint256", d.Val.Key.Name)
		assert.Equal(t, "bool", d.Val.Val.Name)
	})

	t.Run("array of struct keeps both locations", func(t *testing.T) {
		d, err := Parse("struct S memory[] memory")
		require.NoError(t, err)
		require.Equal(t, KindArray, d.Kind)
		assert.Equal(t, []string{"memory"}, d.Qualifiers)
		require.Equal(t, KindUserDefined, d.Elem.Kind)
		assert.Equal(t, "S", d.Elem.Name)
		assert.Equal(t, "struct", d.Elem.Scope)
		assert.Equal(t, []string{"memory"}, d.Elem.Qualifiers)
	})

	t.Run("function signature", func(t *testing.T) {
		d, err := Parse("function (uint256,bytes32) external payable returns (bool)")
		require.NoError(t, err)
		require.Equal(t, KindFunction, d.Kind)
		require.Len(t, d.Params, 2)
		assert.Equal(t, "uint256", d.Params[0].Name)
		assert.Equal(t, "bytes32", d.Params[1].Name)
		assert.Equal(t, []string{"external", "payable"}, d.Qualifiers)
		require.Len(t, d.Returns, 1)
		assert.Equal(t, "bool", d.Returns[0].Name)
	})

	t.Run("truncated constant survives verbatim", func(t *testing.T) {
		in := "int_const 1157...(70 digits omitted)...9936"
		d, err := Parse(in)
		require.NoError(t, err)
		require.Equal(t, KindLiteral, d.Kind)
		assert.Equal(t, "int_const", d.Name)
		assert.Equal(t, "1157...(70 digits omitted)...9936", d.Value)
	})

	t.Run("fixed array length stays textual", func(t *testing.T) {
		d, err := Parse("uint8[115792089237316195423570985008687907853269984665640564039457584007913129639936]")
		require.NoError(t, err)
		require.Equal(t, KindArray, d.Kind)
		assert.Equal(t, "115792089237316195423570985008687907853269984665640564039457584007913129639936", d.Length)
	})

	t.Run("unknown qualifier preserved", func(t *testing.T) {
		d, err := Parse("uint256 transient")
		require.NoError(t, err)
		assert.Equal(t, []string{"transient"}, d.Qualifiers)
		assert.Equal(t, "uint256 transient", d.String())
	})
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"spaces only", "   "},
		{"mapping missing arrow", "mapping(uint256 uint256)"},
		{"mapping unterminated", "mapping(uint256 => bool"},
		{"struct missing name", "struct"},
		{"unterminated array", "uint256[5"},
		{"function missing parens", "function uint256"},
		{"trailing garbage", "uint256)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)
			require.Error(t, err)
			var malformed *MalformedTypeStringError
			require.True(t, errors.As(err, &malformed))
			assert.Equal(t, tc.input, malformed.Input)
		})
	}
}

func TestEqual(t *testing.T) {
	a, err := Parse("mapping(address => uint256[])")
	require.NoError(t, err)
	b, err := Parse("mapping(address => uint256[])")
	require.NoError(t, err)
	c, err := Parse("mapping(address => uint256[2])")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
	var nilDesc *Descriptor
	assert.True(t, nilDesc.Equal(nil))
}
