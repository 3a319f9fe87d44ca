package reader

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"strconv"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contractshark/solc-typed-ast/ast"
	"github.com/contractshark/solc-typed-ast/typestring"
	"github.com/contractshark/solc-typed-ast/version"
)

func readFixture(t *testing.T, path string, opts ...Option) *Result {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out, err := DecodeOutput(data)
	require.NoError(t, err)
	res, err := Read(out, opts...)
	require.NoError(t, err)
	return res
}

// TestFixturesRead ensures every checked-in fixture decodes and reads,
// whichever schema variant it uses.
func TestFixturesRead(t *testing.T) {
	paths, err := doublestar.FilepathGlob("testdata/**/*.json")
	require.NoError(t, err)
	require.NotEmpty(t, paths)
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			res := readFixture(t, path)
			require.NotEmpty(t, res.Units)
			assert.True(t, res.Context.Sealed())
		})
	}
}

func TestReadModern(t *testing.T) {
	res := readFixture(t, "testdata/modern/counter.json")

	assert.True(t, res.Version.AtLeast(version.MustParse("0.8.21")))

	unit, ok := res.Unit("counter.sol")
	require.True(t, ok)
	assert.Equal(t, "MIT", unit.License)
	require.Len(t, unit.Nodes, 2)

	contract, ok := unit.Nodes[1].(*ast.ContractDefinition)
	require.True(t, ok)
	assert.Equal(t, "Counter", contract.ContractName)
	assert.Equal(t, ast.ContractKindContract, contract.ContractKind)

	count := contract.Parts[0].(*ast.VariableDeclaration)
	assert.True(t, count.StateVariable)
	// The compiler's "default" storage location folds to the zero value.
	assert.Equal(t, ast.LocationDefault, count.StorageLocation)
	assert.Empty(t, string(count.StorageLocation))
	assert.Equal(t, "uint256", count.TypeString)
	require.NotNil(t, count.TypeDescriptor)
	assert.Equal(t, "uint256", count.TypeDescriptor.Name)

	fn := contract.Parts[1].(*ast.FunctionDefinition)
	assert.Equal(t, ast.FunctionKindFunction, fn.FunctionKind)
	assert.Equal(t, ast.MutabilityNonpayable, fn.StateMutability)
	require.NotNil(t, fn.Body)

	idents := ast.DescendantsOf[*ast.Identifier](unit)
	require.Len(t, idents, 1)
	decl, ok := idents[0].Declaration.Resolve()
	require.True(t, ok)
	assert.Same(t, ast.Node(count), decl)

	// Exported symbols were linked by the pipeline.
	exported, ok := unit.ExportedSymbol("Counter")
	require.True(t, ok)
	assert.Same(t, ast.Node(contract), exported)
}

func TestReadLegacy(t *testing.T) {
	res := readFixture(t, "testdata/legacy/token.json")

	unit, ok := res.Unit("token.sol")
	require.True(t, ok)
	contract := unit.Nodes[0].(*ast.ContractDefinition)
	assert.Equal(t, "Token", contract.ContractName)
	require.Len(t, contract.Parts, 3)

	balance := contract.Parts[0].(*ast.VariableDeclaration)
	assert.Equal(t, "balance", balance.VarName)
	assert.Equal(t, ast.NodeID(7), balance.ID())
	assert.Equal(t, ast.VariableMutable, balance.Mutability)

	// The legacy "constant" flag becomes view mutability.
	getter := contract.Parts[1].(*ast.FunctionDefinition)
	assert.Equal(t, "getBalance", getter.FunctionName)
	assert.Equal(t, ast.FunctionKindFunction, getter.FunctionKind)
	assert.Equal(t, ast.MutabilityView, getter.StateMutability)
	require.NotNil(t, getter.Parameters)
	require.NotNil(t, getter.ReturnParameters)
	require.Len(t, getter.ReturnParameters.Parameters, 1)

	// The legacy isConstructor flag becomes the constructor kind, and the
	// payable flag its mutability.
	ctor := contract.Parts[2].(*ast.FunctionDefinition)
	assert.Equal(t, ast.FunctionKindConstructor, ctor.FunctionKind)
	assert.Equal(t, ast.MutabilityPayable, ctor.StateMutability)

	// The identifier inside the getter resolves to state variable 7.
	idents := ast.DescendantsOf[*ast.Identifier](unit)
	require.Len(t, idents, 1)
	assert.Equal(t, ast.NodeID(7), idents[0].Declaration.ID())
	decl, ok := idents[0].Declaration.Resolve()
	require.True(t, ok)
	assert.Same(t, ast.Node(balance), decl)

	// Return statements carry the back-reference to the return list.
	rets := ast.DescendantsOf[*ast.Return](unit)
	require.Len(t, rets, 1)
	list, ok := rets[0].FunctionReturns.Resolve()
	require.True(t, ok)
	assert.Equal(t, ast.NodeID(9), list.ID())
}

func TestBothVariantsSameShape(t *testing.T) {
	// Two fixtures expressing comparable programs must produce trees that
	// downstream code can treat identically: kinds populated, references
	// resolved, no variant-specific gaps.
	for _, path := range []string{"testdata/modern/counter.json", "testdata/legacy/token.json"} {
		res := readFixture(t, path)
		res.Context.Scan(func(n ast.Node) bool {
			if fn, ok := n.(*ast.FunctionDefinition); ok {
				assert.NotEmpty(t, fn.FunctionKind, "%s: function %d has no kind", path, fn.ID())
				assert.NotEmpty(t, fn.StateMutability, "%s: function %d has no mutability", path, fn.ID())
			}
			if vd, ok := n.(*ast.VariableDeclaration); ok {
				assert.NotEmpty(t, vd.Mutability, "%s: variable %d has no mutability", path, vd.ID())
			}
			return true
		})
	}
}

func TestDecodeOutputMalformed(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"not json", "not json at all"},
		{"no sources", `{"version": "0.8.21"}`},
		{"entry not an object", `{"sources": {"a.sol": 42}}`},
		{"entry carries no ast", `{"sources": {"a.sol": {"bytecode": "0x00"}}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeOutput([]byte(tc.data))
			require.Error(t, err)
			var malformed *CompileDataMalformedError
			assert.True(t, errors.As(err, &malformed), "got %T: %v", err, err)
		})
	}
}

func TestReadUnknownVariant(t *testing.T) {
	out := &CompilerOutput{
		Sources: map[string]json.RawMessage{
			"a.sol": json.RawMessage(`{"foo": 1}`),
		},
	}
	_, err := Read(out)
	require.Error(t, err)
	var malformed *CompileDataMalformedError
	assert.True(t, errors.As(err, &malformed))
}

func TestReadNilOutput(t *testing.T) {
	_, err := Read(nil)
	var malformed *CompileDataMalformedError
	require.True(t, errors.As(err, &malformed))
}

func TestDuplicateIdentityFailsRead(t *testing.T) {
	doc := `{"sources": {"a.sol": {"AST": {
		"nodeType": "SourceUnit", "id": 1, "src": "0:10:0",
		"nodes": [
			{"nodeType": "PragmaDirective", "id": 2, "src": "0:5:0", "literals": ["solidity"]},
			{"nodeType": "PragmaDirective", "id": 2, "src": "5:5:0", "literals": ["solidity"]}
		]
	}}}}`
	out, err := DecodeOutput([]byte(doc))
	require.NoError(t, err)
	_, err = Read(out)
	require.Error(t, err)

	var readErr *ReadError
	require.True(t, errors.As(err, &readErr))
	var dup *ast.DuplicateIdentityError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, ast.NodeID(2), dup.ID)
}

func TestDanglingReferenceFailsRead(t *testing.T) {
	doc := `{"sources": {"a.sol": {"AST": {
		"nodeType": "SourceUnit", "id": 1, "src": "0:10:0",
		"nodes": [{
			"nodeType": "ContractDefinition", "id": 2, "src": "0:10:0",
			"name": "C", "contractKind": "contract",
			"baseContracts": [], "nodes": [{
				"nodeType": "VariableDeclaration", "id": 3, "src": "0:5:0",
				"name": "x", "stateVariable": true,
				"typeDescriptions": {"typeString": "uint256"},
				"typeName": {"nodeType": "ElementaryTypeName", "id": 4, "src": "0:4:0", "name": "uint256"},
				"value": {
					"nodeType": "Identifier", "id": 5, "src": "0:1:0",
					"name": "ghost", "referencedDeclaration": 999,
					"typeDescriptions": {"typeString": "uint256"}
				}
			}]
		}]
	}}}}`
	out, err := DecodeOutput([]byte(doc))
	require.NoError(t, err)
	_, err = Read(out)
	require.Error(t, err)
	var unresolved *ast.UnresolvedReferenceError
	require.True(t, errors.As(err, &unresolved))
	assert.Equal(t, ast.NodeID(999), unresolved.ID)

	// The failure names the pass, the offending node, and its unit.
	var pperr *PostprocessError
	require.True(t, errors.As(err, &pperr))
	assert.Equal(t, "resolve-references", pperr.Pass)
	assert.Equal(t, ast.KindIdentifier, pperr.Kind)
	assert.Equal(t, "a.sol", pperr.Unit)
}

func TestDanglingExportedSymbolFailsRead(t *testing.T) {
	doc := `{"sources": {"a.sol": {"AST": {
		"nodeType": "SourceUnit", "id": 1, "src": "0:10:0",
		"exportedSymbols": {"Ghost": [777]},
		"nodes": []
	}}}}`
	out, err := DecodeOutput([]byte(doc))
	require.NoError(t, err)
	_, err = Read(out)
	require.Error(t, err)

	var pperr *PostprocessError
	require.True(t, errors.As(err, &pperr))
	assert.Equal(t, "link-exported-symbols", pperr.Pass)
	assert.Equal(t, "a.sol", pperr.Unit)
	assert.Contains(t, err.Error(), `"Ghost"`)
	var unresolved *ast.UnresolvedReferenceError
	require.True(t, errors.As(err, &unresolved))
	assert.Equal(t, ast.NodeID(777), unresolved.ID)
}

func TestExternalReferenceIsNotAnError(t *testing.T) {
	doc := `{"sources": {"a.sol": {"AST": {
		"nodeType": "SourceUnit", "id": 1, "src": "0:10:0",
		"nodes": [{
			"nodeType": "ContractDefinition", "id": 2, "src": "0:10:0",
			"name": "C", "contractKind": "contract",
			"baseContracts": [], "nodes": [{
				"nodeType": "VariableDeclaration", "id": 3, "src": "0:5:0",
				"name": "x", "stateVariable": true, "constant": true,
				"typeDescriptions": {"typeString": "uint256"},
				"typeName": {"nodeType": "ElementaryTypeName", "id": 4, "src": "0:4:0", "name": "uint256"},
				"value": {
					"nodeType": "Identifier", "id": 5, "src": "0:1:0",
					"name": "IMPORTED", "referencedDeclaration": -1,
					"typeDescriptions": {"typeString": "uint256"}
				}
			}]
		}]
	}}}}`
	out, err := DecodeOutput([]byte(doc))
	require.NoError(t, err)
	res, err := Read(out)
	require.NoError(t, err)

	idents := ast.DescendantsOf[*ast.Identifier](res.Units[0])
	require.Len(t, idents, 1)
	assert.True(t, idents[0].Declaration.IsExternal())
	_, ok := idents[0].Declaration.Resolve()
	assert.False(t, ok)
}

func TestTolerateMalformedTypeStrings(t *testing.T) {
	doc := `{"sources": {"a.sol": {"AST": {
		"nodeType": "SourceUnit", "id": 1, "src": "0:10:0",
		"nodes": [{
			"nodeType": "ContractDefinition", "id": 2, "src": "0:10:0",
			"name": "C", "contractKind": "contract",
			"baseContracts": [], "nodes": [{
				"nodeType": "VariableDeclaration", "id": 3, "src": "0:5:0",
				"name": "x", "stateVariable": true,
				"typeDescriptions": {"typeString": "mapping(uint256"},
				"typeName": {"nodeType": "ElementaryTypeName", "id": 4, "src": "0:4:0", "name": "uint256"}
			}]
		}]
	}}}}`
	out, err := DecodeOutput([]byte(doc))
	require.NoError(t, err)

	// Default: the malformed annotation aborts the read.
	_, err = Read(out)
	require.Error(t, err)
	var malformed *typestring.MalformedTypeStringError
	require.True(t, errors.As(err, &malformed))

	// Tolerant: the text is kept opaque, with no descriptor.
	res, err := Read(out, WithTolerateMalformedTypeStrings())
	require.NoError(t, err)
	v := ast.DescendantsOf[*ast.VariableDeclaration](res.Units[0])[0]
	assert.Equal(t, "mapping(uint256", v.TypeString)
	assert.Nil(t, v.TypeDescriptor)
}

func TestUnsupportedNodeShape(t *testing.T) {
	doc := `{"sources": {"a.sol": {"AST": {
		"nodeType": "SourceUnit", "id": 1, "src": "0:10:0",
		"nodes": [{"nodeType": "SomethingNovel", "id": 2, "src": "0:5:0"}]
	}}}}`
	out, err := DecodeOutput([]byte(doc))
	require.NoError(t, err)
	_, err = Read(out)
	require.Error(t, err)
	var unsupported *UnsupportedNodeShapeError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "SomethingNovel", unsupported.Kind)
}

func TestAuxiliarySectionsPreserved(t *testing.T) {
	doc := `{"sources": {"a.sol": {
		"AST": {"nodeType": "SourceUnit", "id": 1, "src": "0:0:0", "nodes": []},
		"bytecode": "0x6001"
	}}}`
	out, err := DecodeOutput([]byte(doc))
	require.NoError(t, err)
	require.Contains(t, out.Auxiliary, "a.sol")
	assert.JSONEq(t, `"0x6001"`, string(out.Auxiliary["a.sol"]["bytecode"]))
}

func TestReadUserDefinedValueType(t *testing.T) {
	doc := `{"sources": {"price.sol": {"AST": {
		"nodeType": "SourceUnit", "id": 3, "src": "0:40:0", "absolutePath": "price.sol",
		"nodes": [{
			"nodeType": "UserDefinedValueTypeDefinition", "id": 2, "src": "0:24:0",
			"name": "Price", "canonicalName": "Price",
			"underlyingType": {"nodeType": "ElementaryTypeName", "id": 1, "src": "17:7:0", "name": "uint128"}
		}]
	}}}}`
	out, err := DecodeOutput([]byte(doc))
	require.NoError(t, err)
	res, err := Read(out)
	require.NoError(t, err)

	unit := res.Units[0]
	require.Len(t, unit.Nodes, 1)
	def, ok := unit.Nodes[0].(*ast.UserDefinedValueTypeDefinition)
	require.True(t, ok)
	assert.Equal(t, "Price", def.TypeDefName)
	require.NotNil(t, def.Underlying)
	underlying, ok := def.Underlying.(*ast.ElementaryTypeName)
	require.True(t, ok)
	assert.Equal(t, "uint128", underlying.ElemName)
	assert.Same(t, ast.Node(def), underlying.Parent())
}

func TestSourceIdentity(t *testing.T) {
	doc := `{"sources": {
		"hashed.sol": {
			"AST": {"nodeType": "SourceUnit", "id": 1, "src": "0:0:0", "nodes": []},
			"keccak256": "0xabc123"
		},
		"texted.sol": {
			"AST": {"nodeType": "SourceUnit", "id": 2, "src": "0:0:0", "nodes": []},
			"source": "contract C {}"
		},
		"bare.sol": {
			"AST": {"nodeType": "SourceUnit", "id": 3, "src": "0:0:0", "nodes": []}
		}
	}}`
	out, err := DecodeOutput([]byte(doc))
	require.NoError(t, err)
	res, err := Read(out)
	require.NoError(t, err)

	hashed, ok := res.Unit("hashed.sol")
	require.True(t, ok)
	// A compiler-reported digest is taken verbatim.
	assert.Equal(t, "0xabc123", hashed.SourceHash)

	texted, ok := res.Unit("texted.sol")
	require.True(t, ok)
	sum := sha256.Sum256([]byte("contract C {}"))
	assert.Equal(t, "sha256:"+hex.EncodeToString(sum[:]), texted.SourceHash)

	bare, ok := res.Unit("bare.sol")
	require.True(t, ok)
	assert.Empty(t, bare.SourceHash)
}

func TestDeterministicUnitOrder(t *testing.T) {
	unitJSON := func(path string, id int) string {
		return `{"nodeType": "SourceUnit", "id": ` + strconv.Itoa(id) + `, "src": "0:0:0", "absolutePath": "` + path + `", "nodes": []}`
	}
	doc := `{"sources": {
		"zz.sol": {"AST": ` + unitJSON("zz.sol", 1) + `},
		"aa.sol": {"AST": ` + unitJSON("aa.sol", 2) + `},
		"mm.sol": {"AST": ` + unitJSON("mm.sol", 3) + `}
	}}`
	out, err := DecodeOutput([]byte(doc))
	require.NoError(t, err)
	res, err := Read(out)
	require.NoError(t, err)

	var order []string
	for _, u := range res.Units {
		order = append(order, u.AbsolutePath)
	}
	assert.Equal(t, []string{"aa.sol", "mm.sol", "zz.sol"}, order)
}
