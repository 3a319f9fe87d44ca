package writer

import (
	"fmt"
	"strings"

	"github.com/contractshark/solc-typed-ast/ast"
)

// Operator precedence levels, higher binds tighter. Operands are
// parenthesized only when strictly necessary: redundant parentheses
// would reparse as tuple expressions and change the tree shape.
const (
	precAssignment     = 1
	precConditional    = 2
	precOr             = 3
	precAnd            = 4
	precEquality       = 5
	precRelational     = 6
	precBitOr          = 7
	precBitXor         = 8
	precBitAnd         = 9
	precShift          = 10
	precAdditive       = 11
	precMultiplicative = 12
	precExponent       = 13
	precPrefix         = 14
	precPostfix        = 15
	precAtom           = 16
)

func binaryPrec(op string) int {
	switch op {
	case "**":
		return precExponent
	case "*", "/", "%":
		return precMultiplicative
	case "+", "-":
		return precAdditive
	case "<<", ">>":
		return precShift
	case "&":
		return precBitAnd
	case "^":
		return precBitXor
	case "|":
		return precBitOr
	case "<", ">", "<=", ">=":
		return precRelational
	case "==", "!=":
		return precEquality
	case "&&":
		return precAnd
	case "||":
		return precOr
	}
	return 0
}

func exprPrec(e ast.Expression) int {
	switch e := e.(type) {
	case *ast.Assignment:
		return precAssignment
	case *ast.Conditional:
		return precConditional
	case *ast.BinaryOperation:
		return binaryPrec(e.Operator)
	case *ast.UnaryOperation:
		if e.Prefix {
			return precPrefix
		}
		return precPostfix
	case *ast.FunctionCall, *ast.MemberAccess, *ast.IndexAccess, *ast.NewExpression:
		return precPostfix
	default:
		return precAtom
	}
}

// operand renders e, parenthesized only when its precedence is too low
// for the surrounding position.
func (w *Renderer) operand(e ast.Expression, min int) error {
	if exprPrec(e) < min {
		w.Write("(")
		if err := w.Render(e); err != nil {
			return err
		}
		w.Write(")")
		return nil
	}
	return w.Render(e)
}

// exprList writes a comma-separated expression list, skipping nil holes.
func (w *Renderer) exprList(list []ast.Expression) error {
	for i, e := range list {
		if i > 0 {
			w.Write(", ")
		}
		if e == nil {
			continue
		}
		if err := w.Render(e); err != nil {
			return err
		}
	}
	return nil
}

func writeIdentifier(w *Renderer, n ast.Node) error {
	w.Write(n.(*ast.Identifier).IdentName)
	return nil
}

func writeLiteral(w *Renderer, n ast.Node) error {
	lit := n.(*ast.Literal)
	switch lit.LitKind {
	case ast.LiteralString:
		w.Write(quoteString(lit.Value))
	case ast.LiteralUnicodeString:
		w.Write("unicode" + quoteString(lit.Value))
	case ast.LiteralHexString:
		w.Writef("hex%q", lit.HexValue)
	default:
		w.Write(lit.Value)
		if lit.Subdenomination != "" {
			w.Write(" " + lit.Subdenomination)
		}
	}
	return nil
}

// quoteString renders a double-quoted Solidity string literal. Printable
// bytes pass through, other bytes escape as \xNN.
func quoteString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch b := s[i]; {
		case b == '"' || b == '\\':
			sb.WriteByte('\\')
			sb.WriteByte(b)
		case b == '\n':
			sb.WriteString(`\n`)
		case b == '\r':
			sb.WriteString(`\r`)
		case b == '\t':
			sb.WriteString(`\t`)
		case b < 0x20 || b == 0x7f:
			fmt.Fprintf(&sb, `\x%02x`, b)
		default:
			sb.WriteByte(b)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func writeBinary(w *Renderer, n ast.Node) error {
	bin := n.(*ast.BinaryOperation)
	p := binaryPrec(bin.Operator)
	leftMin, rightMin := p, p+1
	if bin.Operator == "**" {
		// Exponentiation associates right.
		leftMin, rightMin = p+1, p
	}
	if err := w.operand(bin.Left, leftMin); err != nil {
		return err
	}
	w.Writef(" %s ", bin.Operator)
	return w.operand(bin.Right, rightMin)
}

func writeUnary(w *Renderer, n ast.Node) error {
	un := n.(*ast.UnaryOperation)
	if !un.Prefix {
		if err := w.operand(un.Sub, precPostfix); err != nil {
			return err
		}
		w.Write(un.Operator)
		return nil
	}
	w.Write(un.Operator)
	if un.Operator == "delete" || startsLikeOperator(un.Sub, un.Operator) {
		w.Write(" ")
	}
	return w.operand(un.Sub, precPrefix)
}

// startsLikeOperator reports whether rendering sub directly after op
// would glue into a different token, as in -(-x) becoming --x.
func startsLikeOperator(sub ast.Expression, op string) bool {
	inner, ok := sub.(*ast.UnaryOperation)
	return ok && inner.Prefix && strings.HasPrefix(inner.Operator, op[:1])
}

func writeAssignment(w *Renderer, n ast.Node) error {
	assign := n.(*ast.Assignment)
	if err := w.operand(assign.LHS, precConditional); err != nil {
		return err
	}
	w.Writef(" %s ", assign.Operator)
	return w.operand(assign.RHS, precAssignment)
}

func writeConditional(w *Renderer, n ast.Node) error {
	cond := n.(*ast.Conditional)
	if err := w.operand(cond.Condition, precOr); err != nil {
		return err
	}
	w.Write(" ? ")
	if err := w.operand(cond.TrueExpr, precAssignment); err != nil {
		return err
	}
	w.Write(" : ")
	return w.operand(cond.FalseExpr, precConditional)
}

func writeCall(w *Renderer, n ast.Node) error {
	call := n.(*ast.FunctionCall)
	if err := w.operand(call.Callee, precPostfix); err != nil {
		return err
	}
	w.Write("(")
	if len(call.Names) > 0 {
		w.Write("{")
		for i, name := range call.Names {
			if i > 0 {
				w.Write(", ")
			}
			w.Write(name + ": ")
			if err := w.Render(call.Args[i]); err != nil {
				return err
			}
		}
		w.Write("}")
	} else if err := w.exprList(call.Args); err != nil {
		return err
	}
	w.Write(")")
	return nil
}

func writeMemberAccess(w *Renderer, n ast.Node) error {
	access := n.(*ast.MemberAccess)
	if err := w.operand(access.Expr, precPostfix); err != nil {
		return err
	}
	w.Write("." + access.MemberName)
	return nil
}

func writeIndexAccess(w *Renderer, n ast.Node) error {
	access := n.(*ast.IndexAccess)
	if err := w.operand(access.Base, precPostfix); err != nil {
		return err
	}
	w.Write("[")
	if access.Index != nil {
		if err := w.Render(access.Index); err != nil {
			return err
		}
	}
	w.Write("]")
	return nil
}

func writeTuple(w *Renderer, n ast.Node) error {
	tuple := n.(*ast.TupleExpression)
	open, closing := "(", ")"
	if tuple.IsArray {
		open, closing = "[", "]"
	}
	w.Write(open)
	if err := w.exprList(tuple.Components); err != nil {
		return err
	}
	w.Write(closing)
	return nil
}

func writeNew(w *Renderer, n ast.Node) error {
	alloc := n.(*ast.NewExpression)
	w.Write("new ")
	return w.Render(alloc.AllocType)
}

func writeElementaryTypeNameExpression(w *Renderer, n ast.Node) error {
	expr := n.(*ast.ElementaryTypeNameExpression)
	if expr.TypeName == nil {
		w.Write(expr.TypeString)
		return nil
	}
	return w.Render(expr.TypeName)
}
