// Package solcast normalizes the JSON AST emitted by the Solidity
// compiler into one typed, navigable tree model, and renders trees back
// into source text.
//
// Two incompatible raw schemas exist in the wild: the legacy format old
// compilers emitted, with the node kind under "name", fields under
// "attributes", and a positional "children" array, and the modern
// compact format keyed by "nodeType" with named child fields. The
// reader detects which schema a document uses by structure alone and
// produces the same typed tree for both.
//
// The sub-packages represent the stages and their models:
//  1. Decode compiler output and normalize each source unit.
//     Also see: reader.Read
//  2. Navigate and mutate the typed tree.
//     Also see: ast.Walk
//  3. Parse and compare solc type strings.
//     Also see: typestring.Parse
//  4. Render a tree as source text for a target compiler version.
//     Also see: writer.Write
//
// Every tree read from one document shares a single ast.Context, which
// owns identity: node IDs are unique within it and cross-references
// (an Identifier to its declaration, an import to its unit) resolve
// through it rather than through pointers. Independent documents get
// independent Contexts and may be read concurrently; ReadAllJSON does
// exactly that.
//
// This package is the facade: ReadJSON and ReadAllJSON for the common
// decode-and-normalize path, WriteUnit for the common render path. The
// sub-packages expose the full surface when callers need options,
// custom rendering rules, or direct tree construction.
package solcast
