package writer

import (
	"github.com/contractshark/solc-typed-ast/ast"
	"github.com/contractshark/solc-typed-ast/version"
)

func writeBlock(w *Renderer, n ast.Node) error {
	block := n.(*ast.Block)
	return w.braced(block.Statements)
}

func writeUncheckedBlock(w *Renderer, n ast.Node) error {
	block := n.(*ast.UncheckedBlock)
	if !w.At(version.UncheckedBlocks) {
		return w.Unsupported(ast.KindUncheckedBlock, version.UncheckedBlocks)
	}
	w.Write("unchecked ")
	return w.braced(block.Statements)
}

// braced writes a brace-delimited statement list at one deeper
// indentation level, leaving the closing brace at the current level.
func (w *Renderer) braced(stmts []ast.Statement) error {
	w.Write("{")
	w.Newline()
	w.depth++
	for _, stmt := range stmts {
		if err := w.Line(stmt); err != nil {
			return err
		}
	}
	w.depth--
	w.Indent()
	w.Write("}")
	return nil
}

func writeExpressionStatement(w *Renderer, n ast.Node) error {
	stmt := n.(*ast.ExpressionStatement)
	if err := w.Render(stmt.Expr); err != nil {
		return err
	}
	w.Write(";")
	return nil
}

func writeVariableDeclarationStatement(w *Renderer, n ast.Node) error {
	stmt := n.(*ast.VariableDeclarationStatement)
	if len(stmt.Declarations) == 1 && stmt.Declarations[0] != nil {
		if err := w.Render(stmt.Declarations[0]); err != nil {
			return err
		}
	} else {
		w.Write("(")
		for i, decl := range stmt.Declarations {
			if i > 0 {
				w.Write(", ")
			}
			if decl == nil {
				continue
			}
			if err := w.Render(decl); err != nil {
				return err
			}
		}
		w.Write(")")
	}
	if stmt.InitialValue != nil {
		w.Write(" = ")
		if err := w.Render(stmt.InitialValue); err != nil {
			return err
		}
	}
	w.Write(";")
	return nil
}

func writeIf(w *Renderer, n ast.Node) error {
	stmt := n.(*ast.IfStatement)
	w.Write("if (")
	if err := w.Render(stmt.Condition); err != nil {
		return err
	}
	w.Write(") ")
	if err := w.Render(stmt.TrueBody); err != nil {
		return err
	}
	if stmt.FalseBody != nil {
		w.Write(" else ")
		return w.Render(stmt.FalseBody)
	}
	return nil
}

func writeFor(w *Renderer, n ast.Node) error {
	stmt := n.(*ast.ForStatement)
	w.Write("for (")
	if stmt.Init != nil {
		// Init statements carry their own semicolon.
		if err := w.Render(stmt.Init); err != nil {
			return err
		}
	} else {
		w.Write(";")
	}
	if stmt.Condition != nil {
		w.Write(" ")
		if err := w.Render(stmt.Condition); err != nil {
			return err
		}
	}
	w.Write(";")
	if stmt.Post != nil {
		w.Write(" ")
		if err := w.renderLoopPost(stmt.Post); err != nil {
			return err
		}
	}
	w.Write(") ")
	return w.Render(stmt.Body)
}

// renderLoopPost writes the loop expression without the trailing
// semicolon an ExpressionStatement would otherwise render.
func (w *Renderer) renderLoopPost(post ast.Statement) error {
	if stmt, ok := post.(*ast.ExpressionStatement); ok {
		return w.Render(stmt.Expr)
	}
	return w.Render(post)
}

func writeWhile(w *Renderer, n ast.Node) error {
	stmt := n.(*ast.WhileStatement)
	w.Write("while (")
	if err := w.Render(stmt.Condition); err != nil {
		return err
	}
	w.Write(") ")
	return w.Render(stmt.Body)
}

func writeDoWhile(w *Renderer, n ast.Node) error {
	stmt := n.(*ast.DoWhileStatement)
	w.Write("do ")
	if err := w.Render(stmt.Body); err != nil {
		return err
	}
	w.Write(" while (")
	if err := w.Render(stmt.Condition); err != nil {
		return err
	}
	w.Write(");")
	return nil
}

func writeReturn(w *Renderer, n ast.Node) error {
	stmt := n.(*ast.Return)
	w.Write("return")
	if stmt.Expr != nil {
		w.Write(" ")
		if err := w.Render(stmt.Expr); err != nil {
			return err
		}
	}
	w.Write(";")
	return nil
}

func writeBreak(w *Renderer, _ ast.Node) error {
	w.Write("break;")
	return nil
}

func writeContinue(w *Renderer, _ ast.Node) error {
	w.Write("continue;")
	return nil
}

func writeEmit(w *Renderer, n ast.Node) error {
	stmt := n.(*ast.EmitStatement)
	// Before the emit keyword existed, event invocation was a plain call
	// statement.
	if w.At(version.EmitStatement) {
		w.Write("emit ")
	}
	if err := w.Render(stmt.Call); err != nil {
		return err
	}
	w.Write(";")
	return nil
}

func writeRevert(w *Renderer, n ast.Node) error {
	stmt := n.(*ast.RevertStatement)
	if !w.At(version.CustomErrors) {
		return w.Unsupported(ast.KindRevertStatement, version.CustomErrors)
	}
	w.Write("revert ")
	if err := w.Render(stmt.Call); err != nil {
		return err
	}
	w.Write(";")
	return nil
}

func writePlaceholder(w *Renderer, _ ast.Node) error {
	w.Write("_;")
	return nil
}
