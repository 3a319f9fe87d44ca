package reader

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contractshark/solc-typed-ast/ast"
)

// shape flattens a tree into comparable lines, one per node in walk
// order, capturing identity, kind, and the fields postprocessing
// derives. Parent pointers make the trees themselves cyclic, so
// comparisons go through this projection.
func shape(t *testing.T, unit *ast.SourceUnit) []string {
	t.Helper()
	var out []string
	err := ast.Walk(unit, func(n ast.Node) error {
		line := fmt.Sprintf("%s#%d", n.Kind(), n.ID())
		switch node := n.(type) {
		case *ast.FunctionDefinition:
			line += fmt.Sprintf(" kind=%s mut=%s", node.FunctionKind, node.StateMutability)
		case *ast.VariableDeclaration:
			line += fmt.Sprintf(" mut=%s", node.Mutability)
		case *ast.Identifier:
			line += fmt.Sprintf(" decl=%d", node.Declaration.ID())
		case *ast.Return:
			line += fmt.Sprintf(" returns=%d", node.FunctionReturns.ID())
		}
		out = append(out, line)
		return nil
	}, nil)
	require.NoError(t, err)
	return out
}

// TestPipelineIdempotent re-runs every pass over an already processed
// result and requires the trees to come out untouched.
func TestPipelineIdempotent(t *testing.T) {
	for _, path := range []string{"testdata/modern/counter.json", "testdata/legacy/token.json"} {
		t.Run(path, func(t *testing.T) {
			res := readFixture(t, path)

			var before [][]string
			for _, u := range res.Units {
				before = append(before, shape(t, u))
			}

			for _, pass := range Pipeline() {
				require.NoError(t, pass.Run(res), "pass %s", pass.Name())
			}

			for i, u := range res.Units {
				if diff := cmp.Diff(before[i], shape(t, u)); diff != "" {
					t.Errorf("unit %s changed on second run (-first +second):\n%s", u.AbsolutePath, diff)
				}
			}
		})
	}
}

func TestPipelineOrder(t *testing.T) {
	var names []string
	for _, pass := range Pipeline() {
		names = append(names, pass.Name())
	}
	// Reference integrity first, then variant gap filling, then
	// cross-unit linking; later passes rely on the earlier ones.
	assert.Equal(t, []string{
		"resolve-references",
		"normalize-function-kinds",
		"link-exported-symbols",
	}, names)
}

func TestNormalizeNeverOverwrites(t *testing.T) {
	// A modern read already carries explicit kinds; normalization must
	// leave them alone rather than re-deriving.
	res := readFixture(t, "testdata/modern/counter.json")
	fn := ast.DescendantsOf[*ast.FunctionDefinition](res.Units[0])[0]
	fn.StateMutability = ast.MutabilityPure

	require.NoError(t, normalizeFunctionKinds{}.Run(res))
	assert.Equal(t, ast.MutabilityPure, fn.StateMutability)
}
