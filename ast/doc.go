// Package ast defines the version-independent typed model of a Solidity
// source tree, together with the Context that turns the compiler's flat
// ID-based cross-references back into an object graph.
//
// The node set is closed: every variant lives in this package, embeds
// BaseNode, and is reachable through the sealed Node, Expression,
// Statement, Declaration and TypeName interfaces. Ownership is a strict
// forest: each non-root node has exactly one parent, children are an
// ordered sequence, and a node never appears in two trees. Relations that
// would make the structure a graph (an identifier's link to its
// declaration, a contract's base list) are represented as Ref values:
// identities resolved lazily through the Context, never as ownership edges.
// A Ref may legitimately fail to resolve when it names a declaration
// outside the compiled set.
//
// Trees are produced by the reader package, may be mutated in place through
// direct field assignment plus the structural mutation methods on container
// nodes, and are rendered back to source text by the writer package.
package ast
