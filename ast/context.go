package ast

import (
	"fmt"

	"github.com/tidwall/btree"
)

// DuplicateIdentityError is returned by Context.Register when two nodes in
// one read claim the same identity, which indicates corrupt or duplicated
// raw compiler output.
type DuplicateIdentityError struct {
	ID       NodeID
	Existing NodeKind
	Incoming NodeKind
}

func (e *DuplicateIdentityError) Error() string {
	return fmt.Sprintf("duplicate node identity %d: already registered as %s, re-registered as %s",
		e.ID, e.Existing, e.Incoming)
}

// UnresolvedReferenceError is returned when a cross-reference names an
// identity that was never registered during the read.
type UnresolvedReferenceError struct {
	ID NodeID
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("unresolved reference to node identity %d", e.ID)
}

// Context is the reference graph for one read: a registry from node identity
// to node instance, shared by every node produced in that read. Identities
// are only unique within one compiler invocation's output, so a Context is
// never shared or merged across independent reads.
//
// A Context is not safe for concurrent mutation; callers processing trees
// concurrently must give each read its own Context.
type Context struct {
	nodes  *btree.Map[NodeID, Node]
	sealed bool
}

// NewContext returns an empty reference graph.
func NewContext() *Context {
	return &Context{nodes: btree.NewMap[NodeID, Node](32)}
}

// Register inserts node at its identity and attaches the context to it.
// Registering the same identity twice fails with DuplicateIdentityError.
func (c *Context) Register(node Node) error {
	id := node.ID()
	if existing, ok := c.nodes.Get(id); ok {
		return &DuplicateIdentityError{ID: id, Existing: existing.Kind(), Incoming: node.Kind()}
	}
	c.nodes.Set(id, node)
	node.base().ctx = c
	return nil
}

// Seal declares the registration phase closed. After sealing, a failed
// Resolve means the input referenced an identity that never existed, not
// one that has yet to be constructed.
func (c *Context) Seal() {
	c.sealed = true
}

// Sealed reports whether registration has been declared closed.
func (c *Context) Sealed() bool {
	return c.sealed
}

// Lookup returns the node registered at id, if any.
func (c *Context) Lookup(id NodeID) (Node, bool) {
	return c.nodes.Get(id)
}

// Resolve returns the node registered at id, or UnresolvedReferenceError if
// the identity is absent.
func (c *Context) Resolve(id NodeID) (Node, error) {
	if n, ok := c.nodes.Get(id); ok {
		return n, nil
	}
	return nil, &UnresolvedReferenceError{ID: id}
}

// Unregister removes id from the registry. Structural deletion uses this to
// retire a detached subtree's identities so later lookups report the
// reference as unresolved instead of returning a node outside any tree.
func (c *Context) Unregister(id NodeID) {
	c.nodes.Delete(id)
}

// Len returns the number of registered nodes.
func (c *Context) Len() int {
	return c.nodes.Len()
}

// Scan visits every registered node in ascending identity order. Iteration
// stops when fn returns false. The ordering makes whole-graph passes
// deterministic regardless of construction order.
func (c *Context) Scan(fn func(Node) bool) {
	c.nodes.Scan(func(_ NodeID, n Node) bool {
		return fn(n)
	})
}

// Ref is a non-owning cross-reference to another node in the same Context,
// held as an identity and resolved lazily. It never forms a second
// ownership edge: the referenced node stays owned by its tree parent.
type Ref[T Node] struct {
	id  NodeID
	ctx *Context
}

// MakeRef builds a reference to id within ctx.
func MakeRef[T Node](ctx *Context, id NodeID) Ref[T] {
	return Ref[T]{id: id, ctx: ctx}
}

// ID returns the raw identity the reference names.
func (r Ref[T]) ID() NodeID { return r.id }

// Valid reports whether a reference was recorded at all. The zero Ref is
// not valid.
func (r Ref[T]) Valid() bool { return r.ctx != nil }

// IsExternal reports whether the reference names a declaration outside the
// compiled set. External references legitimately do not resolve.
func (r Ref[T]) IsExternal() bool { return r.id.IsExternal() }

// Resolve returns the referenced node. ok is false when the reference is
// external, unrecorded, of an unexpected variant, or names an identity no
// longer in the registry; callers must handle that.
func (r Ref[T]) Resolve() (T, bool) {
	var zero T
	if r.ctx == nil || r.id.IsExternal() {
		return zero, false
	}
	n, ok := r.ctx.Lookup(r.id)
	if !ok {
		return zero, false
	}
	t, ok := n.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// ResolveStrict is Resolve for references that must land: external and
// unrecorded references are not errors, but a recorded internal identity
// that is absent from the registry fails with UnresolvedReferenceError.
func (r Ref[T]) ResolveStrict() (T, error) {
	var zero T
	if !r.Valid() || r.IsExternal() {
		return zero, nil
	}
	n, err := r.ctx.Resolve(r.id)
	if err != nil {
		return zero, err
	}
	t, ok := n.(T)
	if !ok {
		return zero, fmt.Errorf("reference %d resolved to unexpected node kind %s", r.id, n.Kind())
	}
	return t, nil
}
