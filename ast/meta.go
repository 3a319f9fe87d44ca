package ast

// StructuredDocumentation is a `///` or `/** */` documentation comment
// attached to a declaration.
type StructuredDocumentation struct {
	BaseNode
	Text string
}

func (*StructuredDocumentation) Children() []Node { return nil }

// InheritanceSpecifier is one `Base(args...)` entry of a contract's
// inheritance list.
type InheritanceSpecifier struct {
	BaseNode

	BaseName *UserDefinedTypeName
	Args     []Expression
}

func (s *InheritanceSpecifier) Children() []Node {
	out := make([]Node, 0, 1+len(s.Args))
	out = append(out, s.BaseName)
	for _, a := range s.Args {
		out = append(out, a)
	}
	return out
}

// ModifierInvocation is one `m(args...)` entry of a function's modifier
// list. The compiler also uses it for base constructor invocations.
type ModifierInvocation struct {
	BaseNode

	ModifierName *Identifier
	Args         []Expression
}

func (m *ModifierInvocation) Children() []Node {
	out := make([]Node, 0, 1+len(m.Args))
	out = append(out, m.ModifierName)
	for _, a := range m.Args {
		out = append(out, a)
	}
	return out
}

// OverrideSpecifier is an `override` or `override(A, B)` marker.
type OverrideSpecifier struct {
	BaseNode
	Overrides []*UserDefinedTypeName
}

func (o *OverrideSpecifier) Children() []Node {
	out := make([]Node, len(o.Overrides))
	for i, n := range o.Overrides {
		out[i] = n
	}
	return out
}
