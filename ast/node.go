package ast

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// NodeID is the identity the compiler assigned to a raw node. It is unique
// within one compiler invocation's output, and therefore within one Context.
// Negative IDs are the compiler's sentinel for references to declarations
// outside the compiled set.
type NodeID int64

// IsExternal reports whether the ID is the compiler's external-reference
// sentinel rather than a real node identity.
func (id NodeID) IsExternal() bool {
	return id < 0
}

// NodeKind discriminates the variant of a node. Values match the compiler's
// modern nodeType tags, which are also the tags the legacy schema carries in
// its "name" field.
type NodeKind string

const (
	KindSourceUnit      NodeKind = "SourceUnit"
	KindPragmaDirective NodeKind = "PragmaDirective"
	KindImportDirective NodeKind = "ImportDirective"

	KindContractDefinition NodeKind = "ContractDefinition"
	KindFunctionDefinition NodeKind = "FunctionDefinition"
	KindModifierDefinition NodeKind = "ModifierDefinition"
	KindVariableDeclaration NodeKind = "VariableDeclaration"
	KindStructDefinition    NodeKind = "StructDefinition"
	KindEnumDefinition      NodeKind = "EnumDefinition"
	KindEnumValue           NodeKind = "EnumValue"
	KindEventDefinition     NodeKind = "EventDefinition"
	KindErrorDefinition     NodeKind = "ErrorDefinition"
	KindParameterList       NodeKind = "ParameterList"

	KindUserDefinedValueTypeDefinition NodeKind = "UserDefinedValueTypeDefinition"

	KindBlock                        NodeKind = "Block"
	KindUncheckedBlock               NodeKind = "UncheckedBlock"
	KindExpressionStatement          NodeKind = "ExpressionStatement"
	KindVariableDeclarationStatement NodeKind = "VariableDeclarationStatement"
	KindIfStatement                  NodeKind = "IfStatement"
	KindForStatement                 NodeKind = "ForStatement"
	KindWhileStatement               NodeKind = "WhileStatement"
	KindDoWhileStatement             NodeKind = "DoWhileStatement"
	KindReturn                       NodeKind = "Return"
	KindBreak                        NodeKind = "Break"
	KindContinue                     NodeKind = "Continue"
	KindEmitStatement                NodeKind = "EmitStatement"
	KindRevertStatement              NodeKind = "RevertStatement"
	KindPlaceholderStatement         NodeKind = "PlaceholderStatement"

	KindIdentifier                   NodeKind = "Identifier"
	KindLiteral                      NodeKind = "Literal"
	KindBinaryOperation              NodeKind = "BinaryOperation"
	KindUnaryOperation               NodeKind = "UnaryOperation"
	KindAssignment                   NodeKind = "Assignment"
	KindConditional                  NodeKind = "Conditional"
	KindFunctionCall                 NodeKind = "FunctionCall"
	KindMemberAccess                 NodeKind = "MemberAccess"
	KindIndexAccess                  NodeKind = "IndexAccess"
	KindTupleExpression              NodeKind = "TupleExpression"
	KindNewExpression                NodeKind = "NewExpression"
	KindElementaryTypeNameExpression NodeKind = "ElementaryTypeNameExpression"

	KindElementaryTypeName  NodeKind = "ElementaryTypeName"
	KindUserDefinedTypeName NodeKind = "UserDefinedTypeName"
	KindArrayTypeName       NodeKind = "ArrayTypeName"
	KindMapping             NodeKind = "Mapping"
	KindFunctionTypeName    NodeKind = "FunctionTypeName"

	KindStructuredDocumentation NodeKind = "StructuredDocumentation"
	KindInheritanceSpecifier    NodeKind = "InheritanceSpecifier"
	KindModifierInvocation      NodeKind = "ModifierInvocation"
	KindOverrideSpecifier       NodeKind = "OverrideSpecifier"
)

// SourceRange locates a node in its originating source unit as a byte offset
// and length, plus the compiler's source list index.
type SourceRange struct {
	Offset    int
	Length    int
	FileIndex int
}

// ParseSourceRange parses the compiler's "offset:length:fileIndex" form.
func ParseSourceRange(s string) (SourceRange, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return SourceRange{}, fmt.Errorf("invalid source range %q", s)
	}
	var r SourceRange
	var err error
	if r.Offset, err = strconv.Atoi(parts[0]); err != nil {
		return SourceRange{}, fmt.Errorf("invalid source range %q: %w", s, err)
	}
	if r.Length, err = strconv.Atoi(parts[1]); err != nil {
		return SourceRange{}, fmt.Errorf("invalid source range %q: %w", s, err)
	}
	if r.FileIndex, err = strconv.Atoi(parts[2]); err != nil {
		return SourceRange{}, fmt.Errorf("invalid source range %q: %w", s, err)
	}
	return r, nil
}

func (r SourceRange) String() string {
	return fmt.Sprintf("%d:%d:%d", r.Offset, r.Length, r.FileIndex)
}

// Node is the universal contract of every AST node. The set of
// implementations is closed: all live in this package and embed BaseNode.
type Node interface {
	// ID returns the node's identity within its Context.
	ID() NodeID
	// Kind returns the variant discriminant.
	Kind() NodeKind
	// SourceRange returns the node's location, or ok=false for synthetic
	// nodes that have no originating source text.
	SourceRange() (SourceRange, bool)
	// Parent returns the owning node, or nil for source-unit roots.
	Parent() Node
	// Children returns the node's owned children in syntactic order. The
	// returned slice must not be mutated; use the owner's structural
	// mutation methods instead.
	Children() []Node
	// Extras holds raw fields the processors did not model, keyed by raw
	// field name, preserved for round-tripping.
	Extras() map[string]json.RawMessage

	base() *baseNode
}

// Expression, Statement, Declaration and TypeName partition most node kinds
// into the categories the grammar cares about. They are sealed the same way
// Node is.
type Expression interface {
	Node
	isExpression()
}

type Statement interface {
	Node
	isStatement()
}

type Declaration interface {
	Node
	// Name returns the declared name, which may be empty (e.g. unnamed
	// function parameters).
	Name() string
	isDeclaration()
}

type TypeName interface {
	Node
	isTypeName()
}

type baseNode struct {
	id     NodeID
	kind   NodeKind
	src    SourceRange
	hasSrc bool
	parent Node
	ctx    *Context
	extras map[string]json.RawMessage
}

// NodeHeader carries the identity fields common to every raw node; the
// reader fills one per node and hands it to the variant constructors.
type NodeHeader struct {
	ID  NodeID
	Src string
}

// MakeBase constructs the embedded base for a node variant. A Src that does
// not parse is treated as absent, which is how synthetic nodes are made.
func MakeBase(kind NodeKind, h NodeHeader) BaseNode {
	b := BaseNode{baseNode{id: h.ID, kind: kind}}
	if r, err := ParseSourceRange(h.Src); err == nil {
		b.src = r
		b.hasSrc = true
	}
	return b
}

// BaseNode is embedded by every node variant and supplies the generic half
// of the Node contract.
type BaseNode struct {
	baseNode
}

func (b *BaseNode) ID() NodeID     { return b.id }
func (b *BaseNode) Kind() NodeKind { return b.kind }

func (b *BaseNode) SourceRange() (SourceRange, bool) {
	return b.src, b.hasSrc
}

func (b *BaseNode) Parent() Node { return b.parent }

// Context returns the reference graph this node was registered in, or nil
// for nodes built outside a read.
func (b *BaseNode) Context() *Context { return b.ctx }

func (b *BaseNode) Extras() map[string]json.RawMessage {
	return b.extras
}

// SetExtra records an unmodeled raw field for round-tripping.
func (b *BaseNode) SetExtra(key string, raw json.RawMessage) {
	if b.extras == nil {
		b.extras = make(map[string]json.RawMessage)
	}
	b.extras[key] = raw
}

func (b *BaseNode) base() *baseNode { return &b.baseNode }

// Adopt points every current child of parent back at it. Constructors and
// structural mutations call this so that Parent stays O(1) and consistent
// with Children ordering.
func Adopt(parent Node) {
	for _, child := range parent.Children() {
		if child != nil {
			child.base().parent = parent
		}
	}
}
