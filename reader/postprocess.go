package reader

import (
	"encoding/json"
	"fmt"

	"github.com/contractshark/solc-typed-ast/ast"
)

// Pass is one tree-wide postprocessing step. Passes run once over the
// whole unit set after construction, in the fixed order Pipeline declares.
// Every pass must be idempotent and must never delete nodes: it only adds
// derived information or resolves references.
type Pass interface {
	Name() string
	Run(*Result) error
}

// Pipeline returns the standard pass sequence. The order is deliberate:
// reference integrity is established first, then variant-specific gaps are
// filled, then cross-unit links are wired.
func Pipeline() []Pass {
	return []Pass{
		resolveReferences{},
		normalizeFunctionKinds{},
		linkExportedSymbols{},
	}
}

// resolveReferences checks every recorded cross-reference: each must either
// resolve to a registered node or name an external declaration. A positive
// identity that resolves to nothing is corrupt input and fails the read.
// It also synthesizes the return-parameter back-reference on Return
// statements where the raw schema omitted it.
type resolveReferences struct{}

func (resolveReferences) Name() string { return "resolve-references" }

func (resolveReferences) Run(res *Result) error {
	var firstErr error
	res.Context.Scan(func(n ast.Node) bool {
		var err error
		switch node := n.(type) {
		case *ast.Identifier:
			_, err = node.Declaration.ResolveStrict()
		case *ast.MemberAccess:
			_, err = node.Declaration.ResolveStrict()
		case *ast.UserDefinedTypeName:
			_, err = node.Referenced.ResolveStrict()
		case *ast.ImportDirective:
			_, err = node.Unit.ResolveStrict()
		case *ast.Return:
			if !node.FunctionReturns.Valid() {
				if fn, ok := ast.AncestorOf[*ast.FunctionDefinition](node); ok && fn.ReturnParameters != nil {
					node.FunctionReturns = ast.MakeRef[*ast.ParameterList](res.Context, fn.ReturnParameters.ID())
				}
			}
			_, err = node.FunctionReturns.ResolveStrict()
		}
		if err != nil {
			firstErr = passError(resolveReferences{}, n, err)
			return false
		}
		return true
	})
	return firstErr
}

// passError wraps a pass failure with the offending node's kind and the
// path of its enclosing unit.
func passError(pass Pass, n ast.Node, err error) error {
	var unitPath string
	if u := ast.Unit(n); u != nil {
		unitPath = u.AbsolutePath
	}
	return &PostprocessError{Pass: pass.Name(), Unit: unitPath, Kind: n.Kind(), Err: err}
}

// normalizeFunctionKinds fills the function fields one schema variant
// carries and the other encodes through flags, so downstream code never
// branches on schema variant: the function kind (constructor, fallback,
// receive, free function) and the state mutability derived from the legacy
// "payable"/"constant" booleans retained in the node's extras.
type normalizeFunctionKinds struct{}

func (normalizeFunctionKinds) Name() string { return "normalize-function-kinds" }

func (normalizeFunctionKinds) Run(res *Result) error {
	res.Context.Scan(func(n ast.Node) bool {
		fn, ok := n.(*ast.FunctionDefinition)
		if !ok {
			return true
		}
		if fn.FunctionKind == "" {
			fn.FunctionKind = classifyFunction(fn)
		}
		if fn.StateMutability == "" {
			switch {
			case extraBool(fn.Extras(), "payable"):
				fn.StateMutability = ast.MutabilityPayable
			case extraBool(fn.Extras(), "constant"):
				fn.StateMutability = ast.MutabilityView
			default:
				fn.StateMutability = ast.MutabilityNonpayable
			}
		}
		return true
	})

	// Variable mutability is a modern-only field; derive it from the
	// constant flag where absent.
	res.Context.Scan(func(n ast.Node) bool {
		vd, ok := n.(*ast.VariableDeclaration)
		if !ok {
			return true
		}
		if vd.Mutability == "" {
			if vd.Constant {
				vd.Mutability = ast.VariableConstant
			} else {
				vd.Mutability = ast.VariableMutable
			}
		}
		return true
	})
	return nil
}

func classifyFunction(fn *ast.FunctionDefinition) ast.FunctionKind {
	if extraBool(fn.Extras(), "isConstructor") {
		return ast.FunctionKindConstructor
	}
	parent := fn.Parent()
	contract, inContract := parent.(*ast.ContractDefinition)
	if !inContract {
		return ast.FunctionKindFree
	}
	switch fn.FunctionName {
	case "":
		// Before 0.6.0 the unnamed function is the fallback; receive
		// functions always carry an explicit kind.
		return ast.FunctionKindFallback
	case contract.ContractName:
		// The oldest legacy outputs do not even flag constructors; a
		// function named after its contract is one.
		return ast.FunctionKindConstructor
	}
	return ast.FunctionKindFunction
}

func extraBool(extras map[string]json.RawMessage, key string) bool {
	m, ok := extras[key]
	if !ok {
		return false
	}
	var b bool
	if err := json.Unmarshal(m, &b); err == nil {
		return b
	}
	var s string
	if err := json.Unmarshal(m, &s); err == nil {
		return s == "true"
	}
	return false
}

// linkExportedSymbols wires the cross-unit relations that can only exist
// once every unit is constructed: each source unit's exported-symbol table
// becomes resolved references, and import directives that recorded no
// source-unit identity are matched to units by absolute path.
type linkExportedSymbols struct{}

func (linkExportedSymbols) Name() string { return "link-exported-symbols" }

func (linkExportedSymbols) Run(res *Result) error {
	byPath := make(map[string]*ast.SourceUnit, len(res.Units))
	for _, u := range res.Units {
		byPath[u.AbsolutePath] = u
	}
	for _, u := range res.Units {
		for name, id := range u.ExportedSymbols {
			ref := ast.MakeRef[ast.Node](res.Context, id)
			if _, err := ref.ResolveStrict(); err != nil {
				return passError(linkExportedSymbols{}, u, fmt.Errorf("exported symbol %q: %w", name, err))
			}
			u.SetExportedRef(name, ref)
		}
		for _, imp := range ast.DescendantsOf[*ast.ImportDirective](u) {
			if imp.Unit.Valid() {
				continue
			}
			if target, ok := byPath[imp.AbsolutePath]; ok {
				imp.Unit = ast.MakeRef[*ast.SourceUnit](res.Context, target.ID())
			}
		}
	}
	return nil
}
