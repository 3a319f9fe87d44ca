package solcast

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contractshark/solc-typed-ast/ast"
	"github.com/contractshark/solc-typed-ast/reader"
	"github.com/contractshark/solc-typed-ast/version"
)

func TestReadJSON(t *testing.T) {
	data, err := os.ReadFile("reader/testdata/modern/counter.json")
	require.NoError(t, err)

	res, err := ReadJSON(data)
	require.NoError(t, err)
	require.Len(t, res.Units, 1)
	assert.Equal(t, "counter.sol", res.Units[0].AbsolutePath)
	assert.True(t, res.Version.AtLeast(version.MustParse("0.8.0")))
}

func TestReadJSONMalformed(t *testing.T) {
	_, err := ReadJSON([]byte(`{"not": "solc output"}`))
	var malformed *reader.CompileDataMalformedError
	require.ErrorAs(t, err, &malformed)
}

func TestReadAllJSON(t *testing.T) {
	modern, err := os.ReadFile("reader/testdata/modern/counter.json")
	require.NoError(t, err)
	legacy, err := os.ReadFile("reader/testdata/legacy/token.json")
	require.NoError(t, err)

	results, err := ReadAllJSON(context.Background(), [][]byte{modern, legacy})
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Results line up with inputs by index, each with its own Context.
	assert.Equal(t, "counter.sol", results[0].Units[0].AbsolutePath)
	assert.Equal(t, "token.sol", results[1].Units[0].AbsolutePath)
	assert.NotSame(t, results[0].Context, results[1].Context)
}

func TestReadAllJSONFirstErrorWins(t *testing.T) {
	good, err := os.ReadFile("reader/testdata/modern/counter.json")
	require.NoError(t, err)

	_, err = ReadAllJSON(context.Background(), [][]byte{good, []byte(`{`)})
	require.Error(t, err)
}

func TestReadAllJSONCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	data, err := os.ReadFile("reader/testdata/modern/counter.json")
	require.NoError(t, err)
	_, err = ReadAllJSON(ctx, [][]byte{data})
	require.ErrorIs(t, err, context.Canceled)
}

func TestWriteUnit(t *testing.T) {
	data, err := os.ReadFile("reader/testdata/modern/counter.json")
	require.NoError(t, err)
	res, err := ReadJSON(data)
	require.NoError(t, err)

	out, err := WriteUnit(res.Units[0], res.Version)
	require.NoError(t, err)
	assert.Contains(t, out, "contract Counter {")
	assert.Contains(t, out, "count += 1;")
}

func TestReadThenDetach(t *testing.T) {
	data, err := os.ReadFile("reader/testdata/modern/counter.json")
	require.NoError(t, err)
	res, err := ReadJSON(data)
	require.NoError(t, err)

	unit := res.Units[0]
	var contract *ast.ContractDefinition
	err = ast.Walk(unit, func(n ast.Node) error {
		if c, ok := n.(*ast.ContractDefinition); ok {
			contract = c
		}
		return nil
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, contract)

	ast.Detach(contract)
	_, err = res.Context.Resolve(contract.ID())
	var unresolved *ast.UnresolvedReferenceError
	require.ErrorAs(t, err, &unresolved)
}
