// Package writer renders typed AST nodes back into Solidity source text.
//
// Rendering is a per-node-kind rule mapping, selected at call time: callers
// may substitute custom rules for any subset of kinds while defaulting to
// the standard mapping. Each rule is a pure function of the node, the
// formatting policy, and the target compiler version; where syntax differs
// across versions for the same semantics the rule branches on the target,
// and where a construct cannot be expressed at all it fails with
// UnsupportedForTargetVersionError. Output is deterministic: identical
// inputs yield byte-identical text.
package writer

import (
	"fmt"
	"strings"

	"github.com/contractshark/solc-typed-ast/ast"
	"github.com/contractshark/solc-typed-ast/version"
)

// DefaultTargetVersion is the compiler version Write targets when the
// caller does not pass one, and the version ast.Print renders at.
var DefaultTargetVersion = version.MustParse("0.8.21")

// UnsupportedForTargetVersionError is returned when a node's semantics
// cannot be expressed in the syntax of the requested target version.
type UnsupportedForTargetVersionError struct {
	Kind     ast.NodeKind
	Required version.Version
	Target   version.Version
}

func (e *UnsupportedForTargetVersionError) Error() string {
	return fmt.Sprintf("%s requires compiler %s or later, cannot be expressed at target %s",
		e.Kind, e.Required, e.Target)
}

// Policy governs whitespace and indentation only, never semantics.
type Policy struct {
	// Indent is the string prepended once per nesting level.
	Indent string
	// Compact collapses the output onto minimal lines.
	Compact bool
}

// DefaultPolicy returns the standard formatting: four-space indentation,
// one statement per line.
func DefaultPolicy() Policy {
	return Policy{Indent: "    "}
}

// RuleFunc renders one node kind. Rules recurse through Renderer.Render so
// that mapping overrides apply at every level.
type RuleFunc func(w *Renderer, n ast.Node) error

// Mapping is the per-kind rule set used for one write call.
type Mapping map[ast.NodeKind]RuleFunc

// DefaultMapping returns the standard rule set covering every node kind.
func DefaultMapping() Mapping {
	m := make(Mapping, len(defaultRules))
	for kind, rule := range defaultRules {
		m[kind] = rule
	}
	return m
}

// Override returns a copy of the mapping with the rule for one kind
// replaced. The receiver is not modified.
func (m Mapping) Override(kind ast.NodeKind, rule RuleFunc) Mapping {
	out := make(Mapping, len(m))
	for k, r := range m {
		out[k] = r
	}
	out[kind] = rule
	return out
}

// Write renders the tree rooted at n as source text valid for the target
// compiler version, using the standard rule mapping.
func Write(n ast.Node, target version.Version, policy Policy) (string, error) {
	return WriteWith(DefaultMapping(), n, target, policy)
}

// WriteWith is Write with a caller-supplied rule mapping.
func WriteWith(m Mapping, n ast.Node, target version.Version, policy Policy) (string, error) {
	w := &Renderer{mapping: m, target: target, policy: policy}
	if err := w.Render(n); err != nil {
		return "", err
	}
	return w.sb.String(), nil
}

// Renderer is the rendering accumulator threaded through recursion: the
// output buffer plus the current indentation depth. There is no other
// hidden state. Rules, including caller-supplied ones, emit through its
// exported methods.
type Renderer struct {
	sb      strings.Builder
	mapping Mapping
	target  version.Version
	policy  Policy
	depth   int
}

// Render dispatches n to its rule in the active mapping.
func (w *Renderer) Render(n ast.Node) error {
	rule, ok := w.mapping[n.Kind()]
	if !ok {
		return fmt.Errorf("no rendering rule for node kind %s", n.Kind())
	}
	return rule(w, n)
}

// Write appends s to the output.
func (w *Renderer) Write(s string) {
	w.sb.WriteString(s)
}

// Writef appends a formatted string to the output.
func (w *Renderer) Writef(format string, args ...any) {
	fmt.Fprintf(&w.sb, format, args...)
}

// Line writes the current indentation, renders n, and terminates the
// line. In compact mode lines collapse to single spaces.
func (w *Renderer) Line(n ast.Node) error {
	w.Indent()
	if err := w.Render(n); err != nil {
		return err
	}
	w.Newline()
	return nil
}

// Indent writes the indentation for the current nesting depth.
func (w *Renderer) Indent() {
	if w.policy.Compact {
		return
	}
	for i := 0; i < w.depth; i++ {
		w.Write(w.policy.Indent)
	}
}

// Newline terminates the current line, or writes a separating space in
// compact mode.
func (w *Renderer) Newline() {
	if w.policy.Compact {
		w.Write(" ")
		return
	}
	w.Write("\n")
}

// Target is the compiler version being rendered for.
func (w *Renderer) Target() version.Version {
	return w.target
}

// Unsupported builds the error a rule returns when its node cannot be
// expressed at the current target.
func (w *Renderer) Unsupported(kind ast.NodeKind, required version.Version) error {
	return &UnsupportedForTargetVersionError{Kind: kind, Required: required, Target: w.target}
}

// At reports whether the target version admits a gated syntax choice.
func (w *Renderer) At(gate version.Version) bool {
	return w.target.AtLeast(gate)
}

func init() {
	ast.SetPrinter(func(n ast.Node) (string, error) {
		return Write(n, DefaultTargetVersion, DefaultPolicy())
	})
}
