package reader

import (
	"fmt"

	"github.com/contractshark/solc-typed-ast/ast"
)

// CompileDataMalformedError is returned when the compiler output's required
// top-level structure is absent, before any per-node work starts.
type CompileDataMalformedError struct {
	Reason string
}

func (e *CompileDataMalformedError) Error() string {
	return fmt.Sprintf("malformed compile data: %s", e.Reason)
}

// UnsupportedNodeShapeError is returned when a processor encounters a raw
// node it cannot map: an unknown kind tag, or a known kind whose shape does
// not match the detected schema variant.
type UnsupportedNodeShapeError struct {
	Kind    string
	Variant SchemaVariant
	Reason  string
}

func (e *UnsupportedNodeShapeError) Error() string {
	msg := fmt.Sprintf("unsupported %s-schema node shape %q", e.Variant, e.Kind)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// ReadError wraps any per-node failure with the raw node's kind tag and its
// path from the document root, for diagnosis. The read that produced it was
// aborted: no partial trees are returned.
type ReadError struct {
	Unit string
	Path string
	Kind ast.NodeKind
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s: reading %s node at %s: %v", e.Unit, e.Kind, e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// PostprocessError wraps a pass failure with the pass name and the
// offending node's kind and unit. Like ReadError, it aborts the read.
type PostprocessError struct {
	Pass string
	Unit string
	Kind ast.NodeKind
	Err  error
}

func (e *PostprocessError) Error() string {
	return fmt.Sprintf("%s: pass %s failed on %s node: %v", e.Unit, e.Pass, e.Kind, e.Err)
}

func (e *PostprocessError) Unwrap() error {
	return e.Err
}
