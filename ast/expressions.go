package ast

import "github.com/contractshark/solc-typed-ast/typestring"

// Typed carries the compiler's resolved-type annotation on an expression:
// the raw type string plus its parsed descriptor. The core preserves these;
// it never recomputes them.
type Typed struct {
	TypeString     string
	TypeDescriptor *typestring.Descriptor
}

// LiteralKind is the token flavor of a Literal expression.
type LiteralKind string

const (
	LiteralNumber        LiteralKind = "number"
	LiteralBool          LiteralKind = "bool"
	LiteralString        LiteralKind = "string"
	LiteralHexString     LiteralKind = "hexString"
	LiteralUnicodeString LiteralKind = "unicodeString"
)

// FunctionCallKind distinguishes real calls from the call-shaped syntax the
// grammar reuses.
type FunctionCallKind string

const (
	CallFunction          FunctionCallKind = "functionCall"
	CallTypeConversion    FunctionCallKind = "typeConversion"
	CallStructConstructor FunctionCallKind = "structConstructorCall"
)

// Identifier is a name usage. Declaration references the declaration the
// compiler resolved the name to; it may legitimately be external.
type Identifier struct {
	BaseNode
	Typed

	IdentName   string
	Declaration Ref[Node]
}

func (e *Identifier) Name() string { return e.IdentName }

func (*Identifier) Children() []Node { return nil }

// Literal is a constant token: number, string, bool, or hex string. Value
// is the token as written (minus quotes); HexValue is the compiler's hex
// encoding of the payload; Subdenomination is a unit suffix such as
// "wei" or "days", if present.
type Literal struct {
	BaseNode
	Typed

	LitKind         LiteralKind
	Value           string
	HexValue        string
	Subdenomination string
}

func (*Literal) Children() []Node { return nil }

// BinaryOperation is `left op right`. Operator is drawn from the fixed
// Solidity binary operator set.
type BinaryOperation struct {
	BaseNode
	Typed

	Operator string
	Left     Expression
	Right    Expression
}

func (e *BinaryOperation) Children() []Node {
	return []Node{e.Left, e.Right}
}

// UnaryOperation is `op sub` or `sub op` depending on Prefix.
type UnaryOperation struct {
	BaseNode
	Typed

	Operator string
	Prefix   bool
	Sub      Expression
}

func (e *UnaryOperation) Children() []Node {
	return []Node{e.Sub}
}

// Assignment is `lhs op rhs` where op is "=" or a compound form.
type Assignment struct {
	BaseNode
	Typed

	Operator string
	LHS      Expression
	RHS      Expression
}

func (e *Assignment) Children() []Node {
	return []Node{e.LHS, e.RHS}
}

// Conditional is `cond ? true-expr : false-expr`.
type Conditional struct {
	BaseNode
	Typed

	Condition Expression
	TrueExpr  Expression
	FalseExpr Expression
}

func (e *Conditional) Children() []Node {
	return []Node{e.Condition, e.TrueExpr, e.FalseExpr}
}

// FunctionCall is call-shaped syntax: a real call, a type conversion, or a
// struct constructor invocation. Names carries argument names for
// `f({a: 1})` call syntax, parallel to Args.
type FunctionCall struct {
	BaseNode
	Typed

	CallKind FunctionCallKind
	Callee   Expression
	Args     []Expression
	Names    []string
}

func (e *FunctionCall) Children() []Node {
	out := make([]Node, 0, 1+len(e.Args))
	out = append(out, e.Callee)
	for _, a := range e.Args {
		out = append(out, a)
	}
	return out
}

// MemberAccess is `expr.member`. Declaration references the resolved member
// declaration where the compiler recorded one (built-in members resolve to
// nothing).
type MemberAccess struct {
	BaseNode
	Typed

	Expr        Expression
	MemberName  string
	Declaration Ref[Node]
}

func (e *MemberAccess) Children() []Node {
	return []Node{e.Expr}
}

// IndexAccess is `base[index]`; Index is nil in abstract type contexts such
// as `uint[]` used as an expression.
type IndexAccess struct {
	BaseNode
	Typed

	Base  Expression
	Index Expression
}

func (e *IndexAccess) Children() []Node {
	if e.Index == nil {
		return []Node{e.Base}
	}
	return []Node{e.Base, e.Index}
}

// TupleExpression is `(a, b)` or an inline array `[a, b]`. Components may
// contain nil entries for skipped slots.
type TupleExpression struct {
	BaseNode
	Typed

	IsArray    bool
	Components []Expression
}

func (e *TupleExpression) Children() []Node {
	var out []Node
	for _, c := range e.Components {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// NewExpression is `new T`.
type NewExpression struct {
	BaseNode
	Typed

	AllocType TypeName
}

func (e *NewExpression) Children() []Node {
	return []Node{e.AllocType}
}

// ElementaryTypeNameExpression is an elementary type used in expression
// position, e.g. the callee of `uint256(x)`.
type ElementaryTypeNameExpression struct {
	BaseNode
	Typed

	TypeName *ElementaryTypeName
}

func (e *ElementaryTypeNameExpression) Children() []Node {
	if e.TypeName == nil {
		return nil
	}
	return []Node{e.TypeName}
}

func (*Identifier) isExpression()                   {}
func (*Literal) isExpression()                      {}
func (*BinaryOperation) isExpression()              {}
func (*UnaryOperation) isExpression()               {}
func (*Assignment) isExpression()                   {}
func (*Conditional) isExpression()                  {}
func (*FunctionCall) isExpression()                 {}
func (*MemberAccess) isExpression()                 {}
func (*IndexAccess) isExpression()                  {}
func (*TupleExpression) isExpression()              {}
func (*NewExpression) isExpression()                {}
func (*ElementaryTypeNameExpression) isExpression() {}
