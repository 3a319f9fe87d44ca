package reader

import (
	"github.com/contractshark/solc-typed-ast/ast"
)

// modernProcessors maps each node kind to its conversion rule for the
// compact schema (compilers 0.4.12 and later): fields are inlined on the
// node, children live in named fields, and child lists are explicit.
var modernProcessors = map[ast.NodeKind]processorFunc{
	ast.KindSourceUnit:      modernSourceUnit,
	ast.KindPragmaDirective: modernPragma,
	ast.KindImportDirective: modernImport,

	ast.KindContractDefinition:  modernContract,
	ast.KindFunctionDefinition:  modernFunction,
	ast.KindModifierDefinition:  modernModifier,
	ast.KindVariableDeclaration: modernVariable,
	ast.KindStructDefinition:    modernStruct,
	ast.KindEnumDefinition:      modernEnum,
	ast.KindEnumValue:           modernEnumValue,
	ast.KindEventDefinition:     modernEvent,
	ast.KindErrorDefinition:     modernError,
	ast.KindParameterList:       modernParameterList,

	// Legacy output predates `type T is V;`, so only this family carries it.
	ast.KindUserDefinedValueTypeDefinition: modernUserDefinedValueType,

	ast.KindBlock:                        modernBlock,
	ast.KindUncheckedBlock:               modernUncheckedBlock,
	ast.KindExpressionStatement:          modernExpressionStatement,
	ast.KindVariableDeclarationStatement: modernVarDeclStatement,
	ast.KindIfStatement:                  modernIf,
	ast.KindForStatement:                 modernFor,
	ast.KindWhileStatement:               modernWhile,
	ast.KindDoWhileStatement:             modernDoWhile,
	ast.KindReturn:                       modernReturn,
	ast.KindBreak:                        modernNoFields,
	ast.KindContinue:                     modernNoFields,
	ast.KindEmitStatement:                modernEmit,
	ast.KindRevertStatement:              modernRevert,
	ast.KindPlaceholderStatement:         modernNoFields,

	ast.KindIdentifier:                   modernIdentifier,
	ast.KindLiteral:                      modernLiteral,
	ast.KindBinaryOperation:              modernBinary,
	ast.KindUnaryOperation:               modernUnary,
	ast.KindAssignment:                   modernAssignment,
	ast.KindConditional:                  modernConditional,
	ast.KindFunctionCall:                 modernFunctionCall,
	ast.KindMemberAccess:                 modernMemberAccess,
	ast.KindIndexAccess:                  modernIndexAccess,
	ast.KindTupleExpression:              modernTuple,
	ast.KindNewExpression:                modernNew,
	ast.KindElementaryTypeNameExpression: modernElementaryExpr,

	ast.KindElementaryTypeName:  modernElementaryTypeName,
	ast.KindUserDefinedTypeName: modernUserDefinedTypeName,
	ast.KindArrayTypeName:       modernArrayTypeName,
	ast.KindMapping:             modernMapping,
	ast.KindFunctionTypeName:    modernFunctionTypeName,

	ast.KindStructuredDocumentation: modernDocumentation,
	ast.KindInheritanceSpecifier:    modernInheritance,
	ast.KindModifierInvocation:      modernModifierInvocation,
	ast.KindOverrideSpecifier:       modernOverride,
}

func modernNoFields(*reading, ast.Node, *raw) error { return nil }

func modernSourceUnit(rd *reading, n ast.Node, r *raw) error {
	u := n.(*ast.SourceUnit)
	u.AbsolutePath = r.str("absolutePath")
	u.License = r.str("license")
	u.ExportedSymbols = r.symbolMap("exportedSymbols")
	items, err := r.objList("nodes")
	if err != nil {
		return err
	}
	for _, item := range items {
		child, err := rd.convert(item)
		if err != nil {
			return err
		}
		u.Nodes = append(u.Nodes, child)
	}
	return nil
}

func modernPragma(_ *reading, n ast.Node, r *raw) error {
	n.(*ast.PragmaDirective).Literals = r.strList("literals")
	return nil
}

func modernImport(rd *reading, n ast.Node, r *raw) error {
	imp := n.(*ast.ImportDirective)
	imp.File = r.str("file")
	imp.AbsolutePath = r.str("absolutePath")
	imp.UnitAlias = r.str("unitAlias")
	if id, ok := r.nodeID("sourceUnit"); ok {
		imp.Unit = ast.MakeRef[*ast.SourceUnit](rd.ctx, id)
	}
	aliases, err := r.objList("symbolAliases")
	if err != nil {
		return err
	}
	for _, alias := range aliases {
		if alias == nil {
			continue
		}
		var a ast.SymbolAlias
		if foreign, ok, err := alias.obj("foreign"); err != nil {
			return err
		} else if ok {
			a.Name = foreign.topStr("name")
		}
		a.Alias = alias.topStr("local")
		imp.SymbolAliases = append(imp.SymbolAliases, a)
	}
	return nil
}

func modernContract(rd *reading, n ast.Node, r *raw) error {
	c := n.(*ast.ContractDefinition)
	c.ContractName = r.str("name")
	c.ContractKind = ast.ContractKind(r.str("contractKind"))
	if c.ContractKind == "" {
		c.ContractKind = ast.ContractKindContract
	}
	c.Abstract = r.boolean("abstract")
	c.FullyImplemented = r.boolean("fullyImplemented")
	c.Linearization = r.idList("linearizedBaseContracts")
	var err error
	if c.Documentation, err = rd.docField(r); err != nil {
		return err
	}
	bases, err := r.objList("baseContracts")
	if err != nil {
		return err
	}
	for _, base := range bases {
		spec, err := convertAs[*ast.InheritanceSpecifier](rd, base)
		if err != nil {
			return err
		}
		c.Bases = append(c.Bases, spec)
	}
	parts, err := r.objList("nodes")
	if err != nil {
		return err
	}
	for _, part := range parts {
		child, err := rd.convert(part)
		if err != nil {
			return err
		}
		c.Parts = append(c.Parts, child)
	}
	return nil
}

func modernFunction(rd *reading, n ast.Node, r *raw) error {
	f := n.(*ast.FunctionDefinition)
	f.FunctionName = r.str("name")
	f.FunctionKind = ast.FunctionKind(r.str("kind"))
	f.Visibility = ast.Visibility(r.str("visibility"))
	f.StateMutability = ast.StateMutability(r.str("stateMutability"))
	f.Virtual = r.boolean("virtual")
	f.Implemented = r.boolean("implemented")
	var err error
	if f.Documentation, err = rd.docField(r); err != nil {
		return err
	}
	if overrides, ok, err := r.obj("overrides"); err != nil {
		return err
	} else if ok {
		if f.Overrides, err = convertAs[*ast.OverrideSpecifier](rd, overrides); err != nil {
			return err
		}
	}
	if f.Parameters, err = rd.paramListField(r, "parameters"); err != nil {
		return err
	}
	if f.ReturnParameters, err = rd.paramListField(r, "returnParameters"); err != nil {
		return err
	}
	mods, err := r.objList("modifiers")
	if err != nil {
		return err
	}
	for _, mod := range mods {
		inv, err := convertAs[*ast.ModifierInvocation](rd, mod)
		if err != nil {
			return err
		}
		f.Modifiers = append(f.Modifiers, inv)
	}
	if body, ok, err := r.obj("body"); err != nil {
		return err
	} else if ok {
		if f.Body, err = convertAs[*ast.Block](rd, body); err != nil {
			return err
		}
		f.Implemented = true
	}
	return nil
}

func modernModifier(rd *reading, n ast.Node, r *raw) error {
	m := n.(*ast.ModifierDefinition)
	m.ModifierName = r.str("name")
	m.Virtual = r.boolean("virtual")
	var err error
	if m.Documentation, err = rd.docField(r); err != nil {
		return err
	}
	if overrides, ok, err := r.obj("overrides"); err != nil {
		return err
	} else if ok {
		if m.Overrides, err = convertAs[*ast.OverrideSpecifier](rd, overrides); err != nil {
			return err
		}
	}
	if m.Parameters, err = rd.paramListField(r, "parameters"); err != nil {
		return err
	}
	if body, ok, err := r.obj("body"); err != nil {
		return err
	} else if ok {
		if m.Body, err = convertAs[*ast.Block](rd, body); err != nil {
			return err
		}
	}
	return nil
}

func modernVariable(rd *reading, n ast.Node, r *raw) error {
	v := n.(*ast.VariableDeclaration)
	v.VarName = r.str("name")
	v.Visibility = ast.Visibility(r.str("visibility"))
	v.StorageLocation = ast.ParseStorageLocation(r.str("storageLocation"))
	v.Constant = r.boolean("constant")
	v.StateVariable = r.boolean("stateVariable")
	v.Indexed = r.boolean("indexed")
	v.Mutability = ast.VariableMutability(r.str("mutability"))
	typed, err := rd.typed(r)
	if err != nil {
		return err
	}
	v.TypeString = typed.TypeString
	v.TypeDescriptor = typed.TypeDescriptor
	if v.Documentation, err = rd.docField(r); err != nil {
		return err
	}
	if overrides, ok, err := r.obj("overrides"); err != nil {
		return err
	} else if ok {
		if v.Overrides, err = convertAs[*ast.OverrideSpecifier](rd, overrides); err != nil {
			return err
		}
	}
	if v.VarType, err = rd.typeNameField(r, "typeName"); err != nil {
		return err
	}
	if v.Value, err = rd.exprField(r, "value"); err != nil {
		return err
	}
	return nil
}

func modernStruct(rd *reading, n ast.Node, r *raw) error {
	s := n.(*ast.StructDefinition)
	s.StructName = r.str("name")
	members, err := r.objList("members")
	if err != nil {
		return err
	}
	for _, member := range members {
		decl, err := convertAs[*ast.VariableDeclaration](rd, member)
		if err != nil {
			return err
		}
		s.Members = append(s.Members, decl)
	}
	return nil
}

func modernEnum(rd *reading, n ast.Node, r *raw) error {
	e := n.(*ast.EnumDefinition)
	e.EnumName = r.str("name")
	members, err := r.objList("members")
	if err != nil {
		return err
	}
	for _, member := range members {
		val, err := convertAs[*ast.EnumValue](rd, member)
		if err != nil {
			return err
		}
		e.Members = append(e.Members, val)
	}
	return nil
}

func modernEnumValue(_ *reading, n ast.Node, r *raw) error {
	n.(*ast.EnumValue).ValueName = r.str("name")
	return nil
}

func modernUserDefinedValueType(rd *reading, n ast.Node, r *raw) error {
	d := n.(*ast.UserDefinedValueTypeDefinition)
	d.TypeDefName = r.str("name")
	d.CanonicalName = r.str("canonicalName")
	var err error
	if d.Underlying, err = rd.typeNameField(r, "underlyingType"); err != nil {
		return err
	}
	return nil
}

func modernEvent(rd *reading, n ast.Node, r *raw) error {
	e := n.(*ast.EventDefinition)
	e.EventName = r.str("name")
	e.Anonymous = r.boolean("anonymous")
	var err error
	if e.Documentation, err = rd.docField(r); err != nil {
		return err
	}
	e.Parameters, err = rd.paramListField(r, "parameters")
	return err
}

func modernError(rd *reading, n ast.Node, r *raw) error {
	e := n.(*ast.ErrorDefinition)
	e.ErrorName = r.str("name")
	var err error
	if e.Documentation, err = rd.docField(r); err != nil {
		return err
	}
	e.Parameters, err = rd.paramListField(r, "parameters")
	return err
}

func modernParameterList(rd *reading, n ast.Node, r *raw) error {
	p := n.(*ast.ParameterList)
	params, err := r.objList("parameters")
	if err != nil {
		return err
	}
	for _, param := range params {
		decl, err := convertAs[*ast.VariableDeclaration](rd, param)
		if err != nil {
			return err
		}
		p.Parameters = append(p.Parameters, decl)
	}
	return nil
}

func modernStatements(rd *reading, r *raw) ([]ast.Statement, error) {
	items, err := r.objList("statements")
	if err != nil {
		return nil, err
	}
	var out []ast.Statement
	for _, item := range items {
		s, err := convertAs[ast.Statement](rd, item)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func modernBlock(rd *reading, n ast.Node, r *raw) error {
	stmts, err := modernStatements(rd, r)
	n.(*ast.Block).Statements = stmts
	return err
}

func modernUncheckedBlock(rd *reading, n ast.Node, r *raw) error {
	stmts, err := modernStatements(rd, r)
	n.(*ast.UncheckedBlock).Statements = stmts
	return err
}

func modernExpressionStatement(rd *reading, n ast.Node, r *raw) error {
	expr, err := rd.exprField(r, "expression")
	n.(*ast.ExpressionStatement).Expr = expr
	return err
}

func modernVarDeclStatement(rd *reading, n ast.Node, r *raw) error {
	s := n.(*ast.VariableDeclarationStatement)
	decls, err := r.objList("declarations")
	if err != nil {
		return err
	}
	for _, decl := range decls {
		if decl == nil {
			// A tuple-assignment hole: `(, x) = f()`.
			s.Declarations = append(s.Declarations, nil)
			continue
		}
		d, err := convertAs[*ast.VariableDeclaration](rd, decl)
		if err != nil {
			return err
		}
		s.Declarations = append(s.Declarations, d)
	}
	s.InitialValue, err = rd.exprField(r, "initialValue")
	return err
}

func modernIf(rd *reading, n ast.Node, r *raw) error {
	s := n.(*ast.IfStatement)
	var err error
	if s.Condition, err = rd.exprField(r, "condition"); err != nil {
		return err
	}
	if s.TrueBody, err = rd.stmtField(r, "trueBody"); err != nil {
		return err
	}
	s.FalseBody, err = rd.stmtField(r, "falseBody")
	return err
}

func modernFor(rd *reading, n ast.Node, r *raw) error {
	s := n.(*ast.ForStatement)
	var err error
	if s.Init, err = rd.stmtField(r, "initializationExpression"); err != nil {
		return err
	}
	if s.Condition, err = rd.exprField(r, "condition"); err != nil {
		return err
	}
	if s.Post, err = rd.stmtField(r, "loopExpression"); err != nil {
		return err
	}
	s.Body, err = rd.stmtField(r, "body")
	return err
}

func modernWhile(rd *reading, n ast.Node, r *raw) error {
	s := n.(*ast.WhileStatement)
	var err error
	if s.Condition, err = rd.exprField(r, "condition"); err != nil {
		return err
	}
	s.Body, err = rd.stmtField(r, "body")
	return err
}

func modernDoWhile(rd *reading, n ast.Node, r *raw) error {
	s := n.(*ast.DoWhileStatement)
	var err error
	if s.Condition, err = rd.exprField(r, "condition"); err != nil {
		return err
	}
	s.Body, err = rd.stmtField(r, "body")
	return err
}

func modernReturn(rd *reading, n ast.Node, r *raw) error {
	s := n.(*ast.Return)
	if id, ok := r.nodeID("functionReturnParameters"); ok {
		s.FunctionReturns = ast.MakeRef[*ast.ParameterList](rd.ctx, id)
	}
	var err error
	s.Expr, err = rd.exprField(r, "expression")
	return err
}

func modernEmit(rd *reading, n ast.Node, r *raw) error {
	call, ok, err := r.obj("eventCall")
	if err != nil {
		return err
	}
	if !ok {
		return &UnsupportedNodeShapeError{Kind: string(ast.KindEmitStatement), Variant: rd.variant, Reason: "missing eventCall"}
	}
	fc, err := convertAs[*ast.FunctionCall](rd, call)
	n.(*ast.EmitStatement).Call = fc
	return err
}

func modernRevert(rd *reading, n ast.Node, r *raw) error {
	call, ok, err := r.obj("errorCall")
	if err != nil {
		return err
	}
	if !ok {
		return &UnsupportedNodeShapeError{Kind: string(ast.KindRevertStatement), Variant: rd.variant, Reason: "missing errorCall"}
	}
	fc, err := convertAs[*ast.FunctionCall](rd, call)
	n.(*ast.RevertStatement).Call = fc
	return err
}

func modernIdentifier(rd *reading, n ast.Node, r *raw) error {
	e := n.(*ast.Identifier)
	e.IdentName = r.str("name")
	e.Declaration = rd.ref(r, "referencedDeclaration")
	var err error
	e.Typed, err = rd.typed(r)
	return err
}

func modernLiteral(rd *reading, n ast.Node, r *raw) error {
	e := n.(*ast.Literal)
	e.LitKind = ast.LiteralKind(r.str("kind"))
	e.Value = r.str("value")
	e.HexValue = r.str("hexValue")
	e.Subdenomination = r.str("subdenomination")
	var err error
	e.Typed, err = rd.typed(r)
	return err
}

func modernBinary(rd *reading, n ast.Node, r *raw) error {
	e := n.(*ast.BinaryOperation)
	e.Operator = r.str("operator")
	var err error
	if e.Typed, err = rd.typed(r); err != nil {
		return err
	}
	if e.Left, err = rd.exprField(r, "leftExpression"); err != nil {
		return err
	}
	e.Right, err = rd.exprField(r, "rightExpression")
	return err
}

func modernUnary(rd *reading, n ast.Node, r *raw) error {
	e := n.(*ast.UnaryOperation)
	e.Operator = r.str("operator")
	e.Prefix = r.boolean("prefix")
	var err error
	if e.Typed, err = rd.typed(r); err != nil {
		return err
	}
	e.Sub, err = rd.exprField(r, "subExpression")
	return err
}

func modernAssignment(rd *reading, n ast.Node, r *raw) error {
	e := n.(*ast.Assignment)
	e.Operator = r.str("operator")
	var err error
	if e.Typed, err = rd.typed(r); err != nil {
		return err
	}
	if e.LHS, err = rd.exprField(r, "leftHandSide"); err != nil {
		return err
	}
	e.RHS, err = rd.exprField(r, "rightHandSide")
	return err
}

func modernConditional(rd *reading, n ast.Node, r *raw) error {
	e := n.(*ast.Conditional)
	var err error
	if e.Typed, err = rd.typed(r); err != nil {
		return err
	}
	if e.Condition, err = rd.exprField(r, "condition"); err != nil {
		return err
	}
	if e.TrueExpr, err = rd.exprField(r, "trueExpression"); err != nil {
		return err
	}
	e.FalseExpr, err = rd.exprField(r, "falseExpression")
	return err
}

func modernFunctionCall(rd *reading, n ast.Node, r *raw) error {
	e := n.(*ast.FunctionCall)
	e.CallKind = ast.FunctionCallKind(r.str("kind"))
	if e.CallKind == "" {
		// Early compact schemas used boolean flags instead of "kind".
		switch {
		case r.boolean("type_conversion") || r.boolean("isTypeConversion"):
			e.CallKind = ast.CallTypeConversion
		case r.boolean("isStructConstructorCall"):
			e.CallKind = ast.CallStructConstructor
		default:
			e.CallKind = ast.CallFunction
		}
	}
	e.Names = r.strList("names")
	var err error
	if e.Typed, err = rd.typed(r); err != nil {
		return err
	}
	if e.Callee, err = rd.exprField(r, "expression"); err != nil {
		return err
	}
	args, err := rd.exprList(r, "arguments")
	if err != nil {
		return err
	}
	for _, a := range args {
		if a != nil {
			e.Args = append(e.Args, a)
		}
	}
	return nil
}

func modernMemberAccess(rd *reading, n ast.Node, r *raw) error {
	e := n.(*ast.MemberAccess)
	e.MemberName = r.str("memberName")
	e.Declaration = rd.ref(r, "referencedDeclaration")
	var err error
	if e.Typed, err = rd.typed(r); err != nil {
		return err
	}
	e.Expr, err = rd.exprField(r, "expression")
	return err
}

func modernIndexAccess(rd *reading, n ast.Node, r *raw) error {
	e := n.(*ast.IndexAccess)
	var err error
	if e.Typed, err = rd.typed(r); err != nil {
		return err
	}
	if e.Base, err = rd.exprField(r, "baseExpression"); err != nil {
		return err
	}
	e.Index, err = rd.exprField(r, "indexExpression")
	return err
}

func modernTuple(rd *reading, n ast.Node, r *raw) error {
	e := n.(*ast.TupleExpression)
	e.IsArray = r.boolean("isInlineArray")
	var err error
	if e.Typed, err = rd.typed(r); err != nil {
		return err
	}
	e.Components, err = rd.exprList(r, "components")
	return err
}

func modernNew(rd *reading, n ast.Node, r *raw) error {
	e := n.(*ast.NewExpression)
	var err error
	if e.Typed, err = rd.typed(r); err != nil {
		return err
	}
	e.AllocType, err = rd.typeNameField(r, "typeName")
	return err
}

func modernElementaryExpr(rd *reading, n ast.Node, r *raw) error {
	e := n.(*ast.ElementaryTypeNameExpression)
	var err error
	if e.Typed, err = rd.typed(r); err != nil {
		return err
	}
	m, ok := r.get("typeName")
	if !ok {
		return nil
	}
	if len(m) > 0 && m[0] == '{' {
		child, _, err := r.obj("typeName")
		if err != nil {
			return err
		}
		e.TypeName, err = convertAs[*ast.ElementaryTypeName](rd, child)
		return err
	}
	// Compact schemas before 0.6.0 inline the type name as a bare string.
	e.TypeName = &ast.ElementaryTypeName{
		BaseNode: ast.MakeBase(ast.KindElementaryTypeName, ast.NodeHeader{ID: rd.nextSyntheticID()}),
		ElemName: r.str("typeName"),
	}
	return nil
}

func modernElementaryTypeName(rd *reading, n ast.Node, r *raw) error {
	t := n.(*ast.ElementaryTypeName)
	t.ElemName = r.str("name")
	t.StateMutability = ast.StateMutability(r.str("stateMutability"))
	typed, err := rd.typed(r)
	if err != nil {
		return err
	}
	t.TypeString = typed.TypeString
	return nil
}

func modernUserDefinedTypeName(rd *reading, n ast.Node, r *raw) error {
	t := n.(*ast.UserDefinedTypeName)
	t.NamePath = r.str("name")
	t.Referenced = rd.ref(r, "referencedDeclaration")
	typed, err := rd.typed(r)
	if err != nil {
		return err
	}
	t.TypeString = typed.TypeString
	// Since 0.8.0 the path lives in a nested IdentifierPath node.
	if path, ok, err := r.obj("pathNode"); err != nil {
		return err
	} else if ok {
		if t.NamePath == "" {
			t.NamePath = path.topStr("name")
		}
		if !t.Referenced.Valid() {
			t.Referenced = rd.ref(path, "referencedDeclaration")
		}
	}
	return nil
}

func modernArrayTypeName(rd *reading, n ast.Node, r *raw) error {
	t := n.(*ast.ArrayTypeName)
	typed, err := rd.typed(r)
	if err != nil {
		return err
	}
	t.TypeString = typed.TypeString
	if t.Elem, err = rd.typeNameField(r, "baseType"); err != nil {
		return err
	}
	t.Length, err = rd.exprField(r, "length")
	return err
}

func modernMapping(rd *reading, n ast.Node, r *raw) error {
	t := n.(*ast.Mapping)
	typed, err := rd.typed(r)
	if err != nil {
		return err
	}
	t.TypeString = typed.TypeString
	if t.Key, err = rd.typeNameField(r, "keyType"); err != nil {
		return err
	}
	t.Value, err = rd.typeNameField(r, "valueType")
	return err
}

func modernFunctionTypeName(rd *reading, n ast.Node, r *raw) error {
	t := n.(*ast.FunctionTypeName)
	t.Visibility = ast.Visibility(r.str("visibility"))
	t.StateMutability = ast.StateMutability(r.str("stateMutability"))
	typed, err := rd.typed(r)
	if err != nil {
		return err
	}
	t.TypeString = typed.TypeString
	if t.Parameters, err = rd.paramListField(r, "parameterTypes"); err != nil {
		return err
	}
	t.ReturnParameters, err = rd.paramListField(r, "returnParameterTypes")
	return err
}

func modernDocumentation(_ *reading, n ast.Node, r *raw) error {
	n.(*ast.StructuredDocumentation).Text = r.str("text")
	return nil
}

func modernInheritance(rd *reading, n ast.Node, r *raw) error {
	s := n.(*ast.InheritanceSpecifier)
	base, ok, err := r.obj("baseName")
	if err != nil {
		return err
	}
	if !ok {
		return &UnsupportedNodeShapeError{Kind: string(ast.KindInheritanceSpecifier), Variant: rd.variant, Reason: "missing baseName"}
	}
	if s.BaseName, err = rd.userTypeName(base); err != nil {
		return err
	}
	args, err := rd.exprList(r, "arguments")
	if err != nil {
		return err
	}
	for _, a := range args {
		if a != nil {
			s.Args = append(s.Args, a)
		}
	}
	return nil
}

func modernModifierInvocation(rd *reading, n ast.Node, r *raw) error {
	m := n.(*ast.ModifierInvocation)
	name, ok, err := r.obj("modifierName")
	if err != nil {
		return err
	}
	if !ok {
		return &UnsupportedNodeShapeError{Kind: string(ast.KindModifierInvocation), Variant: rd.variant, Reason: "missing modifierName"}
	}
	if m.ModifierName, err = rd.identName(name); err != nil {
		return err
	}
	args, err := rd.exprList(r, "arguments")
	if err != nil {
		return err
	}
	for _, a := range args {
		if a != nil {
			m.Args = append(m.Args, a)
		}
	}
	return nil
}

func modernOverride(rd *reading, n ast.Node, r *raw) error {
	o := n.(*ast.OverrideSpecifier)
	items, err := r.objList("overrides")
	if err != nil {
		return err
	}
	for _, item := range items {
		t, err := rd.userTypeName(item)
		if err != nil {
			return err
		}
		o.Overrides = append(o.Overrides, t)
	}
	return nil
}

// userTypeName converts a node that names a user-defined type, folding the
// 0.8+ IdentifierPath spelling into UserDefinedTypeName so downstream code
// sees one shape.
func (rd *reading) userTypeName(r *raw) (*ast.UserDefinedTypeName, error) {
	if r.kindTag() != "IdentifierPath" {
		return convertAs[*ast.UserDefinedTypeName](rd, r)
	}
	t := &ast.UserDefinedTypeName{BaseNode: ast.MakeBase(ast.KindUserDefinedTypeName, r.header())}
	if !t.ID().IsExternal() {
		if err := rd.ctx.Register(t); err != nil {
			return nil, rd.wrap(r, ast.KindUserDefinedTypeName, err)
		}
	}
	t.NamePath = r.topStr("name")
	t.Referenced = rd.ref(r, "referencedDeclaration")
	r.stashExtras(t)
	return t, nil
}

// identName converts a modifier or base-constructor name, which is an
// Identifier in older compact schemas and an IdentifierPath since 0.8.0.
func (rd *reading) identName(r *raw) (*ast.Identifier, error) {
	if r.kindTag() != "IdentifierPath" {
		return convertAs[*ast.Identifier](rd, r)
	}
	e := &ast.Identifier{BaseNode: ast.MakeBase(ast.KindIdentifier, r.header())}
	if !e.ID().IsExternal() {
		if err := rd.ctx.Register(e); err != nil {
			return nil, rd.wrap(r, ast.KindIdentifier, err)
		}
	}
	e.IdentName = r.topStr("name")
	e.Declaration = rd.ref(r, "referencedDeclaration")
	r.stashExtras(e)
	return e, nil
}
