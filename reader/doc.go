// Package reader normalizes the Solidity compiler's raw AST JSON, in
// either the legacy or the modern compact schema, into the typed node
// model of the ast package.
//
// The schema variant of each document is detected from structural signals,
// never from a version string. Conversion is one depth-first pass per
// source unit: every node is registered in the shared Context before its
// children are descended into, so intra-subtree references resolve as soon
// as the pass completes. After all units are built, a fixed pipeline of
// idempotent postprocessing passes verifies reference integrity, fills the
// fields one schema encodes only through flags, and wires cross-unit
// relations.
//
// A read either produces the complete unit set or fails with a structured
// error naming the offending node's kind and path; partial trees are never
// returned.
package reader
