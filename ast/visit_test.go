package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildUnit assembles a small registered tree:
//
//	SourceUnit 1
//	  ContractDefinition 2 "Vault"
//	    VariableDeclaration 3 "total" (state)
//	    FunctionDefinition 4 "get"
//	      ParameterList 5
//	      ParameterList 6
//	      Block 7
//	        Return 8
//	          Identifier 9 -> 3
func buildUnit(t *testing.T) (*SourceUnit, *Context) {
	t.Helper()
	ctx := NewContext()

	unit := &SourceUnit{
		BaseNode:     MakeBase(KindSourceUnit, NodeHeader{ID: 1, Src: "0:100:0"}),
		AbsolutePath: "vault.sol",
	}
	contract := &ContractDefinition{
		BaseNode:     MakeBase(KindContractDefinition, NodeHeader{ID: 2, Src: "0:100:0"}),
		ContractName: "Vault",
		ContractKind: ContractKindContract,
	}
	total := &VariableDeclaration{
		BaseNode:      MakeBase(KindVariableDeclaration, NodeHeader{ID: 3, Src: "10:20:0"}),
		VarName:       "total",
		StateVariable: true,
	}
	fn := &FunctionDefinition{
		BaseNode:     MakeBase(KindFunctionDefinition, NodeHeader{ID: 4, Src: "30:60:0"}),
		FunctionName: "get",
		FunctionKind: FunctionKindFunction,
	}
	params := &ParameterList{BaseNode: MakeBase(KindParameterList, NodeHeader{ID: 5, Src: "40:2:0"})}
	rets := &ParameterList{BaseNode: MakeBase(KindParameterList, NodeHeader{ID: 6, Src: "50:2:0"})}
	body := &Block{BaseNode: MakeBase(KindBlock, NodeHeader{ID: 7, Src: "60:30:0"})}
	ident := &Identifier{
		BaseNode:    MakeBase(KindIdentifier, NodeHeader{ID: 9, Src: "75:5:0"}),
		IdentName:   "total",
		Declaration: MakeRef[Node](ctx, 3),
	}
	ret := &Return{
		BaseNode: MakeBase(KindReturn, NodeHeader{ID: 8, Src: "70:12:0"}),
		Expr:     ident,
	}

	for _, n := range []Node{unit, contract, total, fn, params, rets, body, ret, ident} {
		require.NoError(t, ctx.Register(n))
	}

	body.AppendStatement(ret)
	Adopt(ret)
	fn.Parameters = params
	fn.ReturnParameters = rets
	fn.Body = body
	Adopt(fn)
	contract.AppendPart(total)
	contract.AppendPart(fn)
	unit.AppendNode(contract)
	return unit, ctx
}

func TestWalkOrder(t *testing.T) {
	unit, _ := buildUnit(t)

	var entered, exited []NodeID
	err := Walk(unit, func(n Node) error {
		entered = append(entered, n.ID())
		return nil
	}, func(n Node) error {
		exited = append(exited, n.ID())
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []NodeID{1, 2, 3, 4, 5, 6, 7, 8, 9}, entered)
	assert.Equal(t, []NodeID{3, 5, 6, 9, 8, 7, 4, 2, 1}, exited)
}

func TestDescendantsOf(t *testing.T) {
	unit, _ := buildUnit(t)

	idents := DescendantsOf[*Identifier](unit)
	require.Len(t, idents, 1)
	assert.Equal(t, "total", idents[0].IdentName)

	decls := Descendants(unit, func(n Node) bool {
		_, ok := n.(Declaration)
		return ok
	})
	assert.Len(t, decls, 3) // contract, state variable, function
}

func TestAncestors(t *testing.T) {
	unit, _ := buildUnit(t)
	ident := DescendantsOf[*Identifier](unit)[0]

	fn, ok := AncestorOf[*FunctionDefinition](ident)
	require.True(t, ok)
	assert.Equal(t, "get", fn.FunctionName)

	contract, ok := AncestorOf[*ContractDefinition](ident)
	require.True(t, ok)
	assert.Equal(t, "Vault", contract.ContractName)

	assert.Same(t, Node(unit), Root(ident))
	assert.Same(t, unit, Unit(ident))

	_, ok = AncestorOf[*Block](unit)
	assert.False(t, ok)
}

func TestReferenceResolution(t *testing.T) {
	unit, _ := buildUnit(t)
	ident := DescendantsOf[*Identifier](unit)[0]

	decl, ok := ident.Declaration.Resolve()
	require.True(t, ok)
	v, ok := decl.(*VariableDeclaration)
	require.True(t, ok)
	assert.Equal(t, "total", v.VarName)
}

func TestDetachRetiresIdentities(t *testing.T) {
	unit, ctx := buildUnit(t)
	contract := unit.Nodes[0].(*ContractDefinition)
	fn := contract.Parts[1].(*FunctionDefinition)

	Detach(fn)

	assert.Len(t, contract.Parts, 1)
	assert.Nil(t, fn.Parent())

	// Every identity in the detached subtree is gone from the registry.
	for _, id := range []NodeID{4, 5, 6, 7, 8, 9} {
		_, ok := ctx.Lookup(id)
		assert.False(t, ok, "id %d still registered", id)
	}
	// The rest of the tree is untouched.
	for _, id := range []NodeID{1, 2, 3} {
		_, ok := ctx.Lookup(id)
		assert.True(t, ok, "id %d missing", id)
	}
}

func TestDetachLeavesDanglingRefsUnresolved(t *testing.T) {
	unit, ctx := buildUnit(t)
	contract := unit.Nodes[0].(*ContractDefinition)

	// Remove the state variable the function body refers to.
	Detach(contract.Parts[0])

	ref := MakeRef[Node](ctx, 3)
	_, ok := ref.Resolve()
	assert.False(t, ok)
}

func TestDetachRootIsNoop(t *testing.T) {
	unit, ctx := buildUnit(t)
	Detach(unit)
	_, ok := ctx.Lookup(1)
	assert.True(t, ok)
}

func TestStructuralInsertRemove(t *testing.T) {
	unit, ctx := buildUnit(t)
	contract := unit.Nodes[0].(*ContractDefinition)

	extra := &VariableDeclaration{
		BaseNode:      MakeBase(KindVariableDeclaration, NodeHeader{ID: 10, Src: "25:5:0"}),
		VarName:       "owner",
		StateVariable: true,
	}
	require.NoError(t, ctx.Register(extra))
	contract.InsertPart(0, extra)

	require.Len(t, contract.Parts, 3)
	assert.Same(t, Node(contract), extra.Parent())
	assert.Equal(t, "owner", contract.Parts[0].(*VariableDeclaration).VarName)

	removed := contract.RemovePart(0)
	assert.Same(t, Node(extra), removed)
	assert.Nil(t, extra.Parent())
	_, ok := ctx.Lookup(10)
	assert.False(t, ok)
}

func TestFirstChild(t *testing.T) {
	unit, _ := buildUnit(t)
	contract := unit.Nodes[0].(*ContractDefinition)

	got, ok := FirstChild(contract, func(n Node) bool {
		_, isFn := n.(*FunctionDefinition)
		return isFn
	})
	require.True(t, ok)
	assert.Equal(t, NodeID(4), got.ID())

	_, ok = FirstChild(contract, func(n Node) bool {
		_, isEnum := n.(*EnumDefinition)
		return isEnum
	})
	assert.False(t, ok)
}

func TestReplace(t *testing.T) {
	unit, ctx := buildUnit(t)
	contract := unit.Nodes[0].(*ContractDefinition)
	total := contract.Parts[0].(*VariableDeclaration)

	swapped := &VariableDeclaration{
		BaseNode:      MakeBase(KindVariableDeclaration, NodeHeader{ID: 10, Src: "10:20:0"}),
		VarName:       "balance",
		StateVariable: true,
	}
	require.NoError(t, ctx.Register(swapped))

	require.True(t, Replace(total, swapped))
	assert.Equal(t, "balance", contract.Parts[0].(*VariableDeclaration).VarName)
	assert.Same(t, Node(contract), swapped.Parent())
	assert.Nil(t, total.Parent())

	// The replaced identity is retired, the replacement stays registered.
	_, ok := ctx.Lookup(3)
	assert.False(t, ok)
	_, ok = ctx.Lookup(10)
	assert.True(t, ok)
}

func TestReplaceRootFails(t *testing.T) {
	unit, _ := buildUnit(t)
	other := &SourceUnit{BaseNode: MakeBase(KindSourceUnit, NodeHeader{})}
	assert.False(t, Replace(unit, other))
}
