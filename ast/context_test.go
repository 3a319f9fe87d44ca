package ast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdent(id NodeID, name string) *Identifier {
	return &Identifier{
		BaseNode:  MakeBase(KindIdentifier, NodeHeader{ID: id, Src: "0:0:0"}),
		IdentName: name,
	}
}

func TestContextRegister(t *testing.T) {
	ctx := NewContext()
	a := newIdent(1, "a")
	require.NoError(t, ctx.Register(a))
	assert.Equal(t, 1, ctx.Len())
	assert.Same(t, ctx, a.Context())

	got, ok := ctx.Lookup(1)
	require.True(t, ok)
	assert.Same(t, Node(a), got)

	err := ctx.Register(newIdent(1, "dup"))
	require.Error(t, err)
	var dup *DuplicateIdentityError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, NodeID(1), dup.ID)
	assert.Equal(t, KindIdentifier, dup.Existing)
	assert.Equal(t, 1, ctx.Len(), "failed registration must not replace the original")
}

func TestContextResolve(t *testing.T) {
	ctx := NewContext()
	require.NoError(t, ctx.Register(newIdent(7, "x")))

	n, err := ctx.Resolve(7)
	require.NoError(t, err)
	assert.Equal(t, NodeID(7), n.ID())

	_, err = ctx.Resolve(99)
	var unresolved *UnresolvedReferenceError
	require.True(t, errors.As(err, &unresolved))
	assert.Equal(t, NodeID(99), unresolved.ID)
}

func TestContextSeal(t *testing.T) {
	ctx := NewContext()
	assert.False(t, ctx.Sealed())
	ctx.Seal()
	assert.True(t, ctx.Sealed())
}

func TestContextScanOrder(t *testing.T) {
	ctx := NewContext()
	for _, id := range []NodeID{5, 1, 3, 2, 4} {
		require.NoError(t, ctx.Register(newIdent(id, "n")))
	}
	var order []NodeID
	ctx.Scan(func(n Node) bool {
		order = append(order, n.ID())
		return true
	})
	assert.Equal(t, []NodeID{1, 2, 3, 4, 5}, order)
}

func TestRefResolve(t *testing.T) {
	ctx := NewContext()
	decl := &VariableDeclaration{
		BaseNode: MakeBase(KindVariableDeclaration, NodeHeader{ID: 7, Src: "0:0:0"}),
		VarName:  "balance",
	}
	require.NoError(t, ctx.Register(decl))

	ref := MakeRef[*VariableDeclaration](ctx, 7)
	assert.True(t, ref.Valid())
	assert.False(t, ref.IsExternal())
	got, ok := ref.Resolve()
	require.True(t, ok)
	assert.Same(t, decl, got)

	strict, err := ref.ResolveStrict()
	require.NoError(t, err)
	assert.Same(t, decl, strict)
}

func TestRefExternal(t *testing.T) {
	ctx := NewContext()
	ref := MakeRef[Node](ctx, -1)
	assert.True(t, ref.IsExternal())

	_, ok := ref.Resolve()
	assert.False(t, ok)

	// An external reference is legitimate, never an error.
	n, err := ref.ResolveStrict()
	require.NoError(t, err)
	assert.Nil(t, n)
}

func TestRefUnrecorded(t *testing.T) {
	var ref Ref[Node]
	assert.False(t, ref.Valid())
	_, ok := ref.Resolve()
	assert.False(t, ok)
	n, err := ref.ResolveStrict()
	require.NoError(t, err)
	assert.Nil(t, n)
}

func TestRefDangling(t *testing.T) {
	ctx := NewContext()
	ref := MakeRef[Node](ctx, 42)
	ctx.Seal()

	_, ok := ref.Resolve()
	assert.False(t, ok)

	_, err := ref.ResolveStrict()
	var unresolved *UnresolvedReferenceError
	require.True(t, errors.As(err, &unresolved))
}

func TestRefWrongVariant(t *testing.T) {
	ctx := NewContext()
	require.NoError(t, ctx.Register(newIdent(3, "x")))

	ref := MakeRef[*VariableDeclaration](ctx, 3)
	_, ok := ref.Resolve()
	assert.False(t, ok)
	_, err := ref.ResolveStrict()
	require.Error(t, err)
}

func TestParseSourceRange(t *testing.T) {
	r, err := ParseSourceRange("10:25:1")
	require.NoError(t, err)
	assert.Equal(t, SourceRange{Offset: 10, Length: 25, FileIndex: 1}, r)
	assert.Equal(t, "10:25:1", r.String())

	for _, bad := range []string{"", "1:2", "a:b:c", "1:2:3:4"} {
		_, err := ParseSourceRange(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestSyntheticNodeHasNoSource(t *testing.T) {
	b := MakeBase(KindStructuredDocumentation, NodeHeader{ID: -2})
	_, ok := b.SourceRange()
	assert.False(t, ok)
}
