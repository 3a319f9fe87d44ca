package writer

import (
	"github.com/contractshark/solc-typed-ast/ast"
	"github.com/contractshark/solc-typed-ast/version"
)

func writeSourceUnit(w *Renderer, n ast.Node) error {
	unit := n.(*ast.SourceUnit)
	if unit.License != "" && !w.policy.Compact {
		w.Writef("// SPDX-License-Identifier: %s", unit.License)
		w.Newline()
	}
	prevDirective := true
	for i, child := range unit.Nodes {
		directive := child.Kind() == ast.KindPragmaDirective || child.Kind() == ast.KindImportDirective
		if i > 0 && !(directive && prevDirective) {
			w.Newline()
		}
		if err := w.Line(child); err != nil {
			return err
		}
		prevDirective = directive
	}
	return nil
}

func writePragma(w *Renderer, n ast.Node) error {
	pragma := n.(*ast.PragmaDirective)
	if len(pragma.Literals) == 0 {
		w.Write("pragma;")
		return nil
	}
	w.Write("pragma ")
	w.Write(pragma.Literals[0])
	if len(pragma.Literals) > 1 {
		w.Write(" ")
		for _, lit := range pragma.Literals[1:] {
			w.Write(lit)
		}
	}
	w.Write(";")
	return nil
}

func writeImport(w *Renderer, n ast.Node) error {
	imp := n.(*ast.ImportDirective)
	switch {
	case imp.UnitAlias != "":
		w.Writef("import %q as %s;", imp.File, imp.UnitAlias)
	case len(imp.SymbolAliases) > 0:
		w.Write("import {")
		for i, sym := range imp.SymbolAliases {
			if i > 0 {
				w.Write(", ")
			}
			w.Write(sym.Name)
			if sym.Alias != "" {
				w.Write(" as " + sym.Alias)
			}
		}
		w.Writef("} from %q;", imp.File)
	default:
		w.Writef("import %q;", imp.File)
	}
	return nil
}

func writeContract(w *Renderer, n ast.Node) error {
	contract := n.(*ast.ContractDefinition)
	if err := w.docBefore(contract.Documentation); err != nil {
		return err
	}
	if contract.Abstract && w.At(version.VirtualOverride) {
		w.Write("abstract ")
	}
	w.Write(string(contract.ContractKind))
	w.Write(" ")
	w.Write(contract.ContractName)
	for i, base := range contract.Bases {
		if i == 0 {
			w.Write(" is ")
		} else {
			w.Write(", ")
		}
		if err := w.Render(base); err != nil {
			return err
		}
	}
	w.Write(" {")
	w.Newline()
	w.depth++
	for i, part := range contract.Parts {
		if i > 0 {
			w.Newline()
		}
		if err := w.Line(part); err != nil {
			return err
		}
	}
	w.depth--
	w.Indent()
	w.Write("}")
	return nil
}

func writeInheritanceSpecifier(w *Renderer, n ast.Node) error {
	spec := n.(*ast.InheritanceSpecifier)
	if err := w.Render(spec.BaseName); err != nil {
		return err
	}
	if spec.Args == nil {
		return nil
	}
	w.Write("(")
	if err := w.exprList(spec.Args); err != nil {
		return err
	}
	w.Write(")")
	return nil
}

func writeFunction(w *Renderer, n ast.Node) error {
	fn := n.(*ast.FunctionDefinition)
	if err := w.docBefore(fn.Documentation); err != nil {
		return err
	}
	switch fn.FunctionKind {
	case ast.FunctionKindConstructor:
		if w.At(version.ConstructorKeyword) {
			w.Write("constructor")
		} else {
			w.Writef("function %s", enclosingContractName(fn))
		}
	case ast.FunctionKindReceive:
		if !w.At(version.ReceiveFunction) {
			return w.Unsupported(ast.KindFunctionDefinition, version.ReceiveFunction)
		}
		w.Write("receive")
	case ast.FunctionKindFallback:
		if w.At(version.ReceiveFunction) {
			w.Write("fallback")
		} else {
			w.Write("function")
		}
	default:
		w.Writef("function %s", fn.FunctionName)
	}
	if err := w.params(fn.Parameters); err != nil {
		return err
	}
	if vis := fn.Visibility; vis != ast.VisibilityDefault && !omitVisibility(w, fn) {
		w.Write(" " + string(vis))
	}
	if err := w.mutability(fn.StateMutability); err != nil {
		return err
	}
	if fn.Virtual && w.At(version.VirtualOverride) {
		w.Write(" virtual")
	}
	if fn.Overrides != nil && w.At(version.VirtualOverride) {
		w.Write(" ")
		if err := w.Render(fn.Overrides); err != nil {
			return err
		}
	}
	for _, mod := range fn.Modifiers {
		w.Write(" ")
		if err := w.Render(mod); err != nil {
			return err
		}
	}
	if fn.ReturnParameters != nil && len(fn.ReturnParameters.Parameters) > 0 {
		w.Write(" returns ")
		if err := w.Render(fn.ReturnParameters); err != nil {
			return err
		}
	}
	if fn.Body == nil {
		w.Write(";")
		return nil
	}
	w.Write(" ")
	return w.Render(fn.Body)
}

// omitVisibility reports whether the visibility keyword must be left out
// of a function header at the current target. Constructors stopped
// accepting one in 0.7.0.
func omitVisibility(w *Renderer, fn *ast.FunctionDefinition) bool {
	return fn.FunctionKind == ast.FunctionKindConstructor && w.At(version.ConstructorVisibilityDropped) ||
		fn.FunctionKind == ast.FunctionKindFree
}

// mutability writes the state mutability keyword appropriate for the
// target, spelling view and pure as `constant` before 0.4.16.
func (w *Renderer) mutability(mut ast.StateMutability) error {
	switch mut {
	case ast.MutabilityPayable:
		w.Write(" payable")
	case ast.MutabilityView, ast.MutabilityPure:
		if w.At(version.ViewPureKeywords) {
			w.Write(" " + string(mut))
		} else {
			w.Write(" constant")
		}
	}
	return nil
}

func enclosingContractName(fn *ast.FunctionDefinition) string {
	if contract, ok := ast.AncestorOf[*ast.ContractDefinition](fn); ok {
		return contract.ContractName
	}
	return fn.FunctionName
}

func writeModifierDefinition(w *Renderer, n ast.Node) error {
	mod := n.(*ast.ModifierDefinition)
	if err := w.docBefore(mod.Documentation); err != nil {
		return err
	}
	w.Writef("modifier %s", mod.ModifierName)
	if mod.Parameters != nil {
		if err := w.Render(mod.Parameters); err != nil {
			return err
		}
	}
	if mod.Virtual && w.At(version.VirtualOverride) {
		w.Write(" virtual")
	}
	if mod.Overrides != nil && w.At(version.VirtualOverride) {
		w.Write(" ")
		if err := w.Render(mod.Overrides); err != nil {
			return err
		}
	}
	if mod.Body == nil {
		w.Write(";")
		return nil
	}
	w.Write(" ")
	return w.Render(mod.Body)
}

func writeModifierInvocation(w *Renderer, n ast.Node) error {
	inv := n.(*ast.ModifierInvocation)
	if err := w.Render(inv.ModifierName); err != nil {
		return err
	}
	if inv.Args == nil {
		return nil
	}
	w.Write("(")
	if err := w.exprList(inv.Args); err != nil {
		return err
	}
	w.Write(")")
	return nil
}

func writeOverrideSpecifier(w *Renderer, n ast.Node) error {
	spec := n.(*ast.OverrideSpecifier)
	w.Write("override")
	if len(spec.Overrides) == 0 {
		return nil
	}
	w.Write("(")
	for i, name := range spec.Overrides {
		if i > 0 {
			w.Write(", ")
		}
		if err := w.Render(name); err != nil {
			return err
		}
	}
	w.Write(")")
	return nil
}

func writeVariableDeclaration(w *Renderer, n ast.Node) error {
	v := n.(*ast.VariableDeclaration)
	if v.StateVariable {
		return writeStateVariable(w, v)
	}
	if err := w.varType(v); err != nil {
		return err
	}
	if v.StorageLocation != ast.LocationDefault {
		w.Write(" " + string(v.StorageLocation))
	}
	if v.Indexed {
		w.Write(" indexed")
	}
	if v.VarName != "" {
		w.Write(" " + v.VarName)
	}
	return nil
}

func writeStateVariable(w *Renderer, v *ast.VariableDeclaration) error {
	if err := w.docBefore(v.Documentation); err != nil {
		return err
	}
	if err := w.varType(v); err != nil {
		return err
	}
	if v.Visibility != ast.VisibilityDefault {
		w.Write(" " + string(v.Visibility))
	}
	switch v.Mutability {
	case ast.VariableConstant:
		w.Write(" constant")
	case ast.VariableImmutable:
		if !w.At(version.ImmutableState) {
			return w.Unsupported(ast.KindVariableDeclaration, version.ImmutableState)
		}
		w.Write(" immutable")
	}
	if v.Overrides != nil && w.At(version.VirtualOverride) {
		w.Write(" ")
		if err := w.Render(v.Overrides); err != nil {
			return err
		}
	}
	w.Write(" " + v.VarName)
	if v.Value != nil {
		w.Write(" = ")
		if err := w.Render(v.Value); err != nil {
			return err
		}
	}
	w.Write(";")
	return nil
}

// varType writes the declared type, falling back to `var` for the
// untyped declarations old compilers allowed.
func (w *Renderer) varType(v *ast.VariableDeclaration) error {
	if v.VarType == nil {
		w.Write("var")
		return nil
	}
	return w.Render(v.VarType)
}

func writeStruct(w *Renderer, n ast.Node) error {
	st := n.(*ast.StructDefinition)
	w.Writef("struct %s {", st.StructName)
	w.Newline()
	w.depth++
	for _, member := range st.Members {
		w.Indent()
		if err := w.Render(member); err != nil {
			return err
		}
		w.Write(";")
		w.Newline()
	}
	w.depth--
	w.Indent()
	w.Write("}")
	return nil
}

func writeEnum(w *Renderer, n ast.Node) error {
	enum := n.(*ast.EnumDefinition)
	w.Writef("enum %s { ", enum.EnumName)
	for i, member := range enum.Members {
		if i > 0 {
			w.Write(", ")
		}
		if err := w.Render(member); err != nil {
			return err
		}
	}
	w.Write(" }")
	return nil
}

func writeEnumValue(w *Renderer, n ast.Node) error {
	w.Write(n.(*ast.EnumValue).ValueName)
	return nil
}

func writeEvent(w *Renderer, n ast.Node) error {
	event := n.(*ast.EventDefinition)
	if err := w.docBefore(event.Documentation); err != nil {
		return err
	}
	w.Writef("event %s", event.EventName)
	if err := w.params(event.Parameters); err != nil {
		return err
	}
	if event.Anonymous {
		w.Write(" anonymous")
	}
	w.Write(";")
	return nil
}

func writeUserDefinedValueType(w *Renderer, n ast.Node) error {
	def := n.(*ast.UserDefinedValueTypeDefinition)
	if !w.At(version.UserDefinedValueTypes) {
		return w.Unsupported(ast.KindUserDefinedValueTypeDefinition, version.UserDefinedValueTypes)
	}
	w.Writef("type %s is ", def.TypeDefName)
	if err := w.Render(def.Underlying); err != nil {
		return err
	}
	w.Write(";")
	return nil
}

func writeErrorDefinition(w *Renderer, n ast.Node) error {
	def := n.(*ast.ErrorDefinition)
	if !w.At(version.CustomErrors) {
		return w.Unsupported(ast.KindErrorDefinition, version.CustomErrors)
	}
	if err := w.docBefore(def.Documentation); err != nil {
		return err
	}
	w.Writef("error %s", def.ErrorName)
	if err := w.params(def.Parameters); err != nil {
		return err
	}
	w.Write(";")
	return nil
}

// params renders a possibly-absent parameter list, writing empty parens
// when the declaration carries none.
func (w *Renderer) params(list *ast.ParameterList) error {
	if list == nil {
		w.Write("()")
		return nil
	}
	return w.Render(list)
}

func writeParameterList(w *Renderer, n ast.Node) error {
	list := n.(*ast.ParameterList)
	w.Write("(")
	for i, param := range list.Parameters {
		if i > 0 {
			w.Write(", ")
		}
		if err := w.Render(param); err != nil {
			return err
		}
	}
	w.Write(")")
	return nil
}
