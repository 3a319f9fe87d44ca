package writer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contractshark/solc-typed-ast/ast"
	"github.com/contractshark/solc-typed-ast/version"
	"github.com/contractshark/solc-typed-ast/writer"
)

// Rules are authored outside the package as well: the Renderer surface is
// what a consumer swapping in custom rendering gets to use.
func TestOverrideFromConsumer(t *testing.T) {
	redact := func(w *writer.Renderer, n ast.Node) error {
		w.Write("<redacted>")
		return nil
	}
	mapping := writer.DefaultMapping().Override(ast.KindLiteral, redact)

	expr := &ast.BinaryOperation{
		BaseNode: ast.MakeBase(ast.KindBinaryOperation, ast.NodeHeader{}),
		Operator: "+",
		Left: &ast.Identifier{
			BaseNode:  ast.MakeBase(ast.KindIdentifier, ast.NodeHeader{}),
			IdentName: "a",
		},
		Right: &ast.Literal{
			BaseNode: ast.MakeBase(ast.KindLiteral, ast.NodeHeader{}),
			LitKind:  ast.LiteralNumber,
			Value:    "42",
		},
	}
	out, err := writer.WriteWith(mapping, expr, version.MustParse("0.8.21"), writer.DefaultPolicy())
	require.NoError(t, err)
	assert.Equal(t, "a + <redacted>", out)
}

func TestConsumerRuleVersionGate(t *testing.T) {
	gated := func(w *writer.Renderer, n ast.Node) error {
		if !w.At(version.CustomErrors) {
			return w.Unsupported(n.Kind(), version.CustomErrors)
		}
		return w.Render(n.(*ast.ExpressionStatement).Expr)
	}
	mapping := writer.DefaultMapping().Override(ast.KindExpressionStatement, gated)

	stmt := &ast.ExpressionStatement{
		BaseNode: ast.MakeBase(ast.KindExpressionStatement, ast.NodeHeader{}),
		Expr: &ast.Identifier{
			BaseNode:  ast.MakeBase(ast.KindIdentifier, ast.NodeHeader{}),
			IdentName: "x",
		},
	}
	out, err := writer.WriteWith(mapping, stmt, version.MustParse("0.8.4"), writer.DefaultPolicy())
	require.NoError(t, err)
	assert.Equal(t, "x", out)

	_, err = writer.WriteWith(mapping, stmt, version.MustParse("0.8.3"), writer.DefaultPolicy())
	var unsupported *writer.UnsupportedForTargetVersionError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, version.MustParse("0.8.3"), unsupported.Target)
}
