package ast

import "slices"

func insertAt[S ~[]E, E any](s S, i int, v E) S {
	return slices.Insert(s, i, v)
}

func removeAt[S ~[]E, E any](s S, i int) S {
	return slices.Delete(s, i, i+1)
}

// orphan clears a removed node's parent pointer and retires the subtree's
// identities from the context, so stale cross-references from elsewhere in
// the tree report as unresolved rather than pointing into a detached
// subtree.
func orphan(n Node) {
	b := n.base()
	b.parent = nil
	if b.ctx == nil {
		return
	}
	_ = Walk(n, func(c Node) error {
		if ctx := c.base().ctx; ctx != nil {
			ctx.Unregister(c.ID())
		}
		return nil
	}, nil)
}

// Detach removes n, with its whole subtree, from its parent. It is the
// generic form of the per-container Remove methods: ordering and parent
// pointers are updated in one step, and the subtree's identities are
// retired from the Context. Detaching a root is a no-op.
func Detach(n Node) {
	parent := n.Parent()
	if parent == nil {
		return
	}
	switch p := parent.(type) {
	case *SourceUnit:
		if i := slices.Index(p.Nodes, n); i >= 0 {
			p.RemoveNode(i)
			return
		}
	case *ContractDefinition:
		if i := slices.Index(p.Parts, n); i >= 0 {
			p.RemovePart(i)
			return
		}
		if s, ok := n.(*InheritanceSpecifier); ok {
			if i := slices.Index(p.Bases, s); i >= 0 {
				p.Bases = removeAt(p.Bases, i)
				orphan(n)
				return
			}
		}
	case *Block:
		if i := slices.IndexFunc(p.Statements, func(c Statement) bool { return Node(c) == n }); i >= 0 {
			p.RemoveStatement(i)
			return
		}
	case *UncheckedBlock:
		if i := slices.IndexFunc(p.Statements, func(c Statement) bool { return Node(c) == n }); i >= 0 {
			s := p.Statements[i]
			p.Statements = removeAt(p.Statements, i)
			orphan(s)
			return
		}
	case *ParameterList:
		if v, ok := n.(*VariableDeclaration); ok {
			if i := slices.Index(p.Parameters, v); i >= 0 {
				p.Parameters = removeAt(p.Parameters, i)
				orphan(n)
				return
			}
		}
	case *StructDefinition:
		if v, ok := n.(*VariableDeclaration); ok {
			if i := slices.Index(p.Members, v); i >= 0 {
				p.Members = removeAt(p.Members, i)
				orphan(n)
				return
			}
		}
	case *EnumDefinition:
		if v, ok := n.(*EnumValue); ok {
			if i := slices.Index(p.Members, v); i >= 0 {
				p.Members = removeAt(p.Members, i)
				orphan(n)
				return
			}
		}
	}
	// Fixed-arity slots (an if condition, a unary operand) cannot be
	// removed without leaving the parent syntactically incomplete; callers
	// replace those fields directly instead.
}

// Replace swaps old for with in old's parent, keeping position. The old
// subtree is orphaned like a Detach. It reports false when old has no
// parent, when with is not a valid member of that parent, or when the
// parent holds old in a fixed-arity slot callers must assign directly.
func Replace(old, with Node) bool {
	parent := old.Parent()
	if parent == nil {
		return false
	}
	switch p := parent.(type) {
	case *SourceUnit:
		if i := slices.Index(p.Nodes, old); i >= 0 {
			orphan(old)
			p.Nodes[i] = with
			with.base().parent = p
			return true
		}
	case *ContractDefinition:
		if i := slices.Index(p.Parts, old); i >= 0 {
			orphan(old)
			p.Parts[i] = with
			with.base().parent = p
			return true
		}
	case *Block:
		s, ok := with.(Statement)
		if !ok {
			return false
		}
		if i := slices.IndexFunc(p.Statements, func(c Statement) bool { return Node(c) == old }); i >= 0 {
			orphan(old)
			p.Statements[i] = s
			s.base().parent = p
			return true
		}
	case *UncheckedBlock:
		s, ok := with.(Statement)
		if !ok {
			return false
		}
		if i := slices.IndexFunc(p.Statements, func(c Statement) bool { return Node(c) == old }); i >= 0 {
			orphan(old)
			p.Statements[i] = s
			s.base().parent = p
			return true
		}
	case *ParameterList:
		v, ok := with.(*VariableDeclaration)
		if !ok {
			return false
		}
		oldVar, ok := old.(*VariableDeclaration)
		if !ok {
			return false
		}
		if i := slices.Index(p.Parameters, oldVar); i >= 0 {
			orphan(old)
			p.Parameters[i] = v
			v.base().parent = p
			return true
		}
	}
	return false
}
