package ast

// Walk performs a depth-first traversal of the tree rooted at n, calling
// enter before a node's children and exit after. A nil exit is allowed. A
// non-nil error from either aborts the traversal.
func Walk(n Node, enter, exit func(Node) error) error {
	if err := enter(n); err != nil {
		return err
	}
	for _, child := range n.Children() {
		if err := Walk(child, enter, exit); err != nil {
			return err
		}
	}
	if exit != nil {
		if err := exit(n); err != nil {
			return err
		}
	}
	return nil
}

// Descendants returns every node in the subtree rooted at n, excluding n
// itself, that satisfies pred, in depth-first order.
func Descendants(n Node, pred func(Node) bool) []Node {
	var out []Node
	for _, child := range n.Children() {
		collect(child, pred, &out)
	}
	return out
}

func collect(n Node, pred func(Node) bool, out *[]Node) {
	if pred(n) {
		*out = append(*out, n)
	}
	for _, child := range n.Children() {
		collect(child, pred, out)
	}
}

// FirstChild returns the first direct child of n satisfying pred.
func FirstChild(n Node, pred func(Node) bool) (Node, bool) {
	for _, child := range n.Children() {
		if pred(child) {
			return child, true
		}
	}
	return nil, false
}

// DescendantsOf returns every descendant of n with the concrete type T, in
// depth-first order.
func DescendantsOf[T Node](n Node) []T {
	var out []T
	for _, d := range Descendants(n, func(c Node) bool {
		_, ok := c.(T)
		return ok
	}) {
		out = append(out, d.(T))
	}
	return out
}

// Ancestor returns the nearest ancestor of n satisfying pred, or nil.
func Ancestor(n Node, pred func(Node) bool) Node {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if pred(p) {
			return p
		}
	}
	return nil
}

// AncestorOf returns the nearest ancestor of n with concrete type T.
func AncestorOf[T Node](n Node) (T, bool) {
	var zero T
	a := Ancestor(n, func(p Node) bool {
		_, ok := p.(T)
		return ok
	})
	if a == nil {
		return zero, false
	}
	return a.(T), true
}

// Root returns the tree root n belongs to, which is n itself for roots.
func Root(n Node) Node {
	for n.Parent() != nil {
		n = n.Parent()
	}
	return n
}

// Unit returns the source unit n belongs to, or nil for detached subtrees.
func Unit(n Node) *SourceUnit {
	u, _ := Root(n).(*SourceUnit)
	return u
}
