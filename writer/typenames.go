package writer

import (
	"github.com/contractshark/solc-typed-ast/ast"
)

func writeElementaryTypeName(w *Renderer, n ast.Node) error {
	tn := n.(*ast.ElementaryTypeName)
	w.Write(tn.ElemName)
	if tn.ElemName == "address" && tn.StateMutability == ast.MutabilityPayable {
		w.Write(" payable")
	}
	return nil
}

func writeUserDefinedTypeName(w *Renderer, n ast.Node) error {
	w.Write(n.(*ast.UserDefinedTypeName).NamePath)
	return nil
}

func writeArrayTypeName(w *Renderer, n ast.Node) error {
	tn := n.(*ast.ArrayTypeName)
	if err := w.Render(tn.Elem); err != nil {
		return err
	}
	w.Write("[")
	if tn.Length != nil {
		if err := w.Render(tn.Length); err != nil {
			return err
		}
	}
	w.Write("]")
	return nil
}

func writeMappingTypeName(w *Renderer, n ast.Node) error {
	tn := n.(*ast.Mapping)
	w.Write("mapping(")
	if err := w.Render(tn.Key); err != nil {
		return err
	}
	w.Write(" => ")
	if err := w.Render(tn.Value); err != nil {
		return err
	}
	w.Write(")")
	return nil
}

func writeFunctionTypeName(w *Renderer, n ast.Node) error {
	tn := n.(*ast.FunctionTypeName)
	w.Write("function")
	if err := w.params(tn.Parameters); err != nil {
		return err
	}
	if tn.Visibility != ast.VisibilityDefault {
		w.Write(" " + string(tn.Visibility))
	}
	if err := w.mutability(tn.StateMutability); err != nil {
		return err
	}
	if tn.ReturnParameters != nil && len(tn.ReturnParameters.Parameters) > 0 {
		w.Write(" returns ")
		if err := w.Render(tn.ReturnParameters); err != nil {
			return err
		}
	}
	return nil
}
