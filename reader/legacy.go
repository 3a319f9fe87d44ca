package reader

import (
	"github.com/contractshark/solc-typed-ast/ast"
)

// legacyProcessors maps each node kind to its conversion rule for the
// legacy schema (compilers before 0.4.12): the kind tag is overloaded onto
// "name", per-kind fields nest under "attributes", and children sit in one
// positional "children" array that each rule reassembles into named slots.
var legacyProcessors = map[ast.NodeKind]processorFunc{
	ast.KindSourceUnit:      legacySourceUnit,
	ast.KindPragmaDirective: legacyPragma,
	ast.KindImportDirective: legacyImport,

	ast.KindContractDefinition:  legacyContract,
	ast.KindFunctionDefinition:  legacyFunction,
	ast.KindModifierDefinition:  legacyModifier,
	ast.KindVariableDeclaration: legacyVariable,
	ast.KindStructDefinition:    legacyStruct,
	ast.KindEnumDefinition:      legacyEnum,
	ast.KindEnumValue:           legacyEnumValue,
	ast.KindEventDefinition:     legacyEvent,
	ast.KindParameterList:       legacyParameterList,

	ast.KindBlock:                        legacyBlock,
	ast.KindExpressionStatement:          legacyExpressionStatement,
	ast.KindVariableDeclarationStatement: legacyVarDeclStatement,
	ast.KindIfStatement:                  legacyIf,
	ast.KindForStatement:                 legacyFor,
	ast.KindWhileStatement:               legacyWhile,
	ast.KindDoWhileStatement:             legacyDoWhile,
	ast.KindReturn:                       legacyReturn,
	ast.KindBreak:                        legacyNoFields,
	ast.KindContinue:                     legacyNoFields,
	ast.KindEmitStatement:                legacyEmit,
	ast.KindPlaceholderStatement:         legacyNoFields,

	ast.KindIdentifier:                   legacyIdentifier,
	ast.KindLiteral:                      legacyLiteral,
	ast.KindBinaryOperation:              legacyBinary,
	ast.KindUnaryOperation:               legacyUnary,
	ast.KindAssignment:                   legacyAssignment,
	ast.KindConditional:                  legacyConditional,
	ast.KindFunctionCall:                 legacyFunctionCall,
	ast.KindMemberAccess:                 legacyMemberAccess,
	ast.KindIndexAccess:                  legacyIndexAccess,
	ast.KindTupleExpression:              legacyTuple,
	ast.KindNewExpression:                legacyNew,
	ast.KindElementaryTypeNameExpression: legacyElementaryExpr,

	ast.KindElementaryTypeName:  legacyElementaryTypeName,
	ast.KindUserDefinedTypeName: legacyUserDefinedTypeName,
	ast.KindArrayTypeName:       legacyArrayTypeName,
	ast.KindMapping:             legacyMapping,
	ast.KindFunctionTypeName:    legacyFunctionTypeName,

	ast.KindInheritanceSpecifier: legacyInheritance,
	ast.KindModifierInvocation:   legacyModifierInvocation,
}

func legacyNoFields(*reading, ast.Node, *raw) error { return nil }

// expressionKinds classifies legacy child tags for the positional slots
// where the schema mixes statements and expressions.
var expressionKinds = map[string]bool{
	"Identifier": true, "Literal": true, "BinaryOperation": true,
	"UnaryOperation": true, "Assignment": true, "Conditional": true,
	"FunctionCall": true, "MemberAccess": true, "IndexAccess": true,
	"TupleExpression": true, "NewExpression": true,
	"ElementaryTypeNameExpression": true,
}

var typeNameKinds = map[string]bool{
	"ElementaryTypeName": true, "UserDefinedTypeName": true,
	"ArrayTypeName": true, "Mapping": true, "FunctionTypeName": true,
}

func legacySourceUnit(rd *reading, n ast.Node, r *raw) error {
	u := n.(*ast.SourceUnit)
	u.AbsolutePath = r.str("absolutePath")
	u.ExportedSymbols = r.symbolMap("exportedSymbols")
	children, err := r.children()
	if err != nil {
		return err
	}
	for _, child := range children {
		converted, err := rd.convert(child)
		if err != nil {
			return err
		}
		u.Nodes = append(u.Nodes, converted)
	}
	return nil
}

func legacyPragma(_ *reading, n ast.Node, r *raw) error {
	n.(*ast.PragmaDirective).Literals = r.strList("literals")
	return nil
}

func legacyImport(_ *reading, n ast.Node, r *raw) error {
	imp := n.(*ast.ImportDirective)
	imp.File = r.str("file")
	imp.AbsolutePath = r.str("absolutePath")
	imp.UnitAlias = r.str("unitAlias")
	return nil
}

func legacyContract(rd *reading, n ast.Node, r *raw) error {
	c := n.(*ast.ContractDefinition)
	c.ContractName = r.str("name")
	c.ContractKind = ast.ContractKind(r.str("contractKind"))
	if c.ContractKind == "" {
		// The oldest outputs flag libraries instead of carrying a kind.
		if r.boolean("isLibrary") {
			c.ContractKind = ast.ContractKindLibrary
		} else {
			c.ContractKind = ast.ContractKindContract
		}
	}
	c.FullyImplemented = r.boolean("fullyImplemented")
	c.Linearization = r.idList("linearizedBaseContracts")
	if doc, err := rd.docField(r); err != nil {
		return err
	} else {
		c.Documentation = doc
	}
	children, err := r.children()
	if err != nil {
		return err
	}
	for _, child := range children {
		if child.kindTag() == string(ast.KindInheritanceSpecifier) {
			spec, err := convertAs[*ast.InheritanceSpecifier](rd, child)
			if err != nil {
				return err
			}
			c.Bases = append(c.Bases, spec)
			continue
		}
		part, err := rd.convert(child)
		if err != nil {
			return err
		}
		c.Parts = append(c.Parts, part)
	}
	return nil
}

// legacyFunction reassembles a function from the positional child list:
// the first ParameterList is the parameters, the second the returns,
// ModifierInvocation children are the modifier list, and a Block child is
// the body. Kind and state mutability are absent in this schema; the
// normalization pass synthesizes them from the stashed legacy flags.
func legacyFunction(rd *reading, n ast.Node, r *raw) error {
	f := n.(*ast.FunctionDefinition)
	f.FunctionName = r.str("name")
	f.Visibility = ast.Visibility(r.str("visibility"))
	var err error
	if f.Documentation, err = rd.docField(r); err != nil {
		return err
	}
	children, err := r.children()
	if err != nil {
		return err
	}
	for _, child := range children {
		switch ast.NodeKind(child.kindTag()) {
		case ast.KindParameterList:
			list, err := convertAs[*ast.ParameterList](rd, child)
			if err != nil {
				return err
			}
			if f.Parameters == nil {
				f.Parameters = list
			} else {
				f.ReturnParameters = list
			}
		case ast.KindModifierInvocation:
			inv, err := convertAs[*ast.ModifierInvocation](rd, child)
			if err != nil {
				return err
			}
			f.Modifiers = append(f.Modifiers, inv)
		case ast.KindBlock:
			if f.Body, err = convertAs[*ast.Block](rd, child); err != nil {
				return err
			}
			f.Implemented = true
		default:
			return &UnsupportedNodeShapeError{
				Kind:    child.kindTag(),
				Variant: rd.variant,
				Reason:  "unexpected child of a legacy function definition",
			}
		}
	}
	return nil
}

func legacyModifier(rd *reading, n ast.Node, r *raw) error {
	m := n.(*ast.ModifierDefinition)
	m.ModifierName = r.str("name")
	var err error
	if m.Documentation, err = rd.docField(r); err != nil {
		return err
	}
	children, err := r.children()
	if err != nil {
		return err
	}
	for _, child := range children {
		switch ast.NodeKind(child.kindTag()) {
		case ast.KindParameterList:
			if m.Parameters, err = convertAs[*ast.ParameterList](rd, child); err != nil {
				return err
			}
		case ast.KindBlock:
			if m.Body, err = convertAs[*ast.Block](rd, child); err != nil {
				return err
			}
		}
	}
	return nil
}

func legacyVariable(rd *reading, n ast.Node, r *raw) error {
	v := n.(*ast.VariableDeclaration)
	v.VarName = r.str("name")
	v.Visibility = ast.Visibility(r.str("visibility"))
	v.StorageLocation = ast.ParseStorageLocation(r.str("storageLocation"))
	v.Constant = r.boolean("constant")
	v.StateVariable = r.boolean("stateVariable")
	v.Indexed = r.boolean("indexed")
	typed, err := rd.typed(r)
	if err != nil {
		return err
	}
	v.TypeString = typed.TypeString
	v.TypeDescriptor = typed.TypeDescriptor
	children, err := r.children()
	if err != nil {
		return err
	}
	for _, child := range children {
		tag := child.kindTag()
		switch {
		case typeNameKinds[tag]:
			if v.VarType, err = convertAs[ast.TypeName](rd, child); err != nil {
				return err
			}
		case expressionKinds[tag]:
			if v.Value, err = convertAs[ast.Expression](rd, child); err != nil {
				return err
			}
		}
	}
	return nil
}

func legacyStruct(rd *reading, n ast.Node, r *raw) error {
	s := n.(*ast.StructDefinition)
	s.StructName = r.str("name")
	children, err := r.children()
	if err != nil {
		return err
	}
	for _, child := range children {
		decl, err := convertAs[*ast.VariableDeclaration](rd, child)
		if err != nil {
			return err
		}
		s.Members = append(s.Members, decl)
	}
	return nil
}

func legacyEnum(rd *reading, n ast.Node, r *raw) error {
	e := n.(*ast.EnumDefinition)
	e.EnumName = r.str("name")
	children, err := r.children()
	if err != nil {
		return err
	}
	for _, child := range children {
		val, err := convertAs[*ast.EnumValue](rd, child)
		if err != nil {
			return err
		}
		e.Members = append(e.Members, val)
	}
	return nil
}

func legacyEnumValue(_ *reading, n ast.Node, r *raw) error {
	n.(*ast.EnumValue).ValueName = r.str("name")
	return nil
}

func legacyEvent(rd *reading, n ast.Node, r *raw) error {
	e := n.(*ast.EventDefinition)
	e.EventName = r.str("name")
	e.Anonymous = r.boolean("anonymous")
	children, err := r.children()
	if err != nil {
		return err
	}
	for _, child := range children {
		if e.Parameters, err = convertAs[*ast.ParameterList](rd, child); err != nil {
			return err
		}
	}
	return nil
}

func legacyParameterList(rd *reading, n ast.Node, r *raw) error {
	p := n.(*ast.ParameterList)
	children, err := r.children()
	if err != nil {
		return err
	}
	for _, child := range children {
		decl, err := convertAs[*ast.VariableDeclaration](rd, child)
		if err != nil {
			return err
		}
		p.Parameters = append(p.Parameters, decl)
	}
	return nil
}

func legacyBlock(rd *reading, n ast.Node, r *raw) error {
	b := n.(*ast.Block)
	children, err := r.children()
	if err != nil {
		return err
	}
	for _, child := range children {
		s, err := convertAs[ast.Statement](rd, child)
		if err != nil {
			return err
		}
		b.Statements = append(b.Statements, s)
	}
	return nil
}

func legacyExpressionStatement(rd *reading, n ast.Node, r *raw) error {
	children, err := r.children()
	if err != nil {
		return err
	}
	if len(children) > 0 {
		expr, err := convertAs[ast.Expression](rd, children[0])
		if err != nil {
			return err
		}
		n.(*ast.ExpressionStatement).Expr = expr
	}
	return nil
}

func legacyVarDeclStatement(rd *reading, n ast.Node, r *raw) error {
	s := n.(*ast.VariableDeclarationStatement)
	children, err := r.children()
	if err != nil {
		return err
	}
	for _, child := range children {
		if child.kindTag() == string(ast.KindVariableDeclaration) {
			decl, err := convertAs[*ast.VariableDeclaration](rd, child)
			if err != nil {
				return err
			}
			s.Declarations = append(s.Declarations, decl)
			continue
		}
		// A trailing non-declaration child is the initializer.
		if s.InitialValue, err = convertAs[ast.Expression](rd, child); err != nil {
			return err
		}
	}
	return nil
}

func legacyIf(rd *reading, n ast.Node, r *raw) error {
	s := n.(*ast.IfStatement)
	children, err := r.children()
	if err != nil {
		return err
	}
	if len(children) < 2 {
		return &UnsupportedNodeShapeError{Kind: r.kindTag(), Variant: rd.variant, Reason: "if statement needs a condition and a body"}
	}
	if s.Condition, err = convertAs[ast.Expression](rd, children[0]); err != nil {
		return err
	}
	if s.TrueBody, err = convertAs[ast.Statement](rd, children[1]); err != nil {
		return err
	}
	if len(children) > 2 {
		if s.FalseBody, err = convertAs[ast.Statement](rd, children[2]); err != nil {
			return err
		}
	}
	return nil
}

// legacyFor reassembles the for-statement header from the positional child
// list, in which omitted slots simply do not appear: the last child is
// always the body; among the rest, an expression child is the condition,
// the first statement child the initializer, a later one the post
// statement.
func legacyFor(rd *reading, n ast.Node, r *raw) error {
	s := n.(*ast.ForStatement)
	children, err := r.children()
	if err != nil {
		return err
	}
	if len(children) == 0 {
		return &UnsupportedNodeShapeError{Kind: r.kindTag(), Variant: rd.variant, Reason: "for statement has no body"}
	}
	if s.Body, err = convertAs[ast.Statement](rd, children[len(children)-1]); err != nil {
		return err
	}
	for _, child := range children[:len(children)-1] {
		if expressionKinds[child.kindTag()] {
			if s.Condition, err = convertAs[ast.Expression](rd, child); err != nil {
				return err
			}
			continue
		}
		stmt, err := convertAs[ast.Statement](rd, child)
		if err != nil {
			return err
		}
		if s.Init == nil && s.Condition == nil {
			s.Init = stmt
		} else {
			s.Post = stmt
		}
	}
	return nil
}

func legacyCondBody(rd *reading, r *raw) (ast.Expression, ast.Statement, error) {
	children, err := r.children()
	if err != nil {
		return nil, nil, err
	}
	if len(children) != 2 {
		return nil, nil, &UnsupportedNodeShapeError{Kind: r.kindTag(), Variant: rd.variant, Reason: "loop needs a condition and a body"}
	}
	cond, err := convertAs[ast.Expression](rd, children[0])
	if err != nil {
		return nil, nil, err
	}
	body, err := convertAs[ast.Statement](rd, children[1])
	if err != nil {
		return nil, nil, err
	}
	return cond, body, nil
}

func legacyWhile(rd *reading, n ast.Node, r *raw) error {
	s := n.(*ast.WhileStatement)
	var err error
	s.Condition, s.Body, err = legacyCondBody(rd, r)
	return err
}

func legacyDoWhile(rd *reading, n ast.Node, r *raw) error {
	s := n.(*ast.DoWhileStatement)
	var err error
	s.Condition, s.Body, err = legacyCondBody(rd, r)
	return err
}

func legacyReturn(rd *reading, n ast.Node, r *raw) error {
	s := n.(*ast.Return)
	if id, ok := r.nodeID("functionReturnParameters"); ok {
		s.FunctionReturns = ast.MakeRef[*ast.ParameterList](rd.ctx, id)
	}
	children, err := r.children()
	if err != nil {
		return err
	}
	if len(children) > 0 {
		if s.Expr, err = convertAs[ast.Expression](rd, children[0]); err != nil {
			return err
		}
	}
	return nil
}

func legacyEmit(rd *reading, n ast.Node, r *raw) error {
	children, err := r.children()
	if err != nil {
		return err
	}
	if len(children) == 0 {
		return &UnsupportedNodeShapeError{Kind: r.kindTag(), Variant: rd.variant, Reason: "emit statement has no call"}
	}
	call, err := convertAs[*ast.FunctionCall](rd, children[0])
	n.(*ast.EmitStatement).Call = call
	return err
}

func legacyIdentifier(rd *reading, n ast.Node, r *raw) error {
	e := n.(*ast.Identifier)
	// The legacy schema stores the identifier's name in "value"; "name" is
	// taken by the kind tag.
	e.IdentName = r.str("value")
	e.Declaration = rd.ref(r, "referencedDeclaration")
	var err error
	e.Typed, err = rd.typed(r)
	return err
}

func legacyLiteral(rd *reading, n ast.Node, r *raw) error {
	e := n.(*ast.Literal)
	e.LitKind = ast.LiteralKind(r.str("token"))
	e.Value = r.str("value")
	e.HexValue = r.str("hexvalue")
	e.Subdenomination = r.str("subdenomination")
	var err error
	e.Typed, err = rd.typed(r)
	return err
}

func legacyOperands(rd *reading, r *raw, want int) ([]ast.Expression, error) {
	children, err := r.children()
	if err != nil {
		return nil, err
	}
	if len(children) != want {
		return nil, &UnsupportedNodeShapeError{
			Kind:    r.kindTag(),
			Variant: rd.variant,
			Reason:  "wrong operand count",
		}
	}
	out := make([]ast.Expression, want)
	for i, child := range children {
		if out[i], err = convertAs[ast.Expression](rd, child); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func legacyBinary(rd *reading, n ast.Node, r *raw) error {
	e := n.(*ast.BinaryOperation)
	e.Operator = r.str("operator")
	var err error
	if e.Typed, err = rd.typed(r); err != nil {
		return err
	}
	ops, err := legacyOperands(rd, r, 2)
	if err != nil {
		return err
	}
	e.Left, e.Right = ops[0], ops[1]
	return nil
}

func legacyUnary(rd *reading, n ast.Node, r *raw) error {
	e := n.(*ast.UnaryOperation)
	e.Operator = r.str("operator")
	e.Prefix = r.boolean("prefix")
	var err error
	if e.Typed, err = rd.typed(r); err != nil {
		return err
	}
	ops, err := legacyOperands(rd, r, 1)
	if err != nil {
		return err
	}
	e.Sub = ops[0]
	return nil
}

func legacyAssignment(rd *reading, n ast.Node, r *raw) error {
	e := n.(*ast.Assignment)
	e.Operator = r.str("operator")
	var err error
	if e.Typed, err = rd.typed(r); err != nil {
		return err
	}
	ops, err := legacyOperands(rd, r, 2)
	if err != nil {
		return err
	}
	e.LHS, e.RHS = ops[0], ops[1]
	return nil
}

func legacyConditional(rd *reading, n ast.Node, r *raw) error {
	e := n.(*ast.Conditional)
	var err error
	if e.Typed, err = rd.typed(r); err != nil {
		return err
	}
	ops, err := legacyOperands(rd, r, 3)
	if err != nil {
		return err
	}
	e.Condition, e.TrueExpr, e.FalseExpr = ops[0], ops[1], ops[2]
	return nil
}

func legacyFunctionCall(rd *reading, n ast.Node, r *raw) error {
	e := n.(*ast.FunctionCall)
	switch {
	case r.boolean("type_conversion"):
		e.CallKind = ast.CallTypeConversion
	case r.boolean("isStructConstructorCall"):
		e.CallKind = ast.CallStructConstructor
	default:
		e.CallKind = ast.CallFunction
	}
	e.Names = r.strList("names")
	var err error
	if e.Typed, err = rd.typed(r); err != nil {
		return err
	}
	children, err := r.children()
	if err != nil {
		return err
	}
	if len(children) == 0 {
		return &UnsupportedNodeShapeError{Kind: r.kindTag(), Variant: rd.variant, Reason: "call has no callee"}
	}
	if e.Callee, err = convertAs[ast.Expression](rd, children[0]); err != nil {
		return err
	}
	for _, child := range children[1:] {
		arg, err := convertAs[ast.Expression](rd, child)
		if err != nil {
			return err
		}
		e.Args = append(e.Args, arg)
	}
	return nil
}

func legacyMemberAccess(rd *reading, n ast.Node, r *raw) error {
	e := n.(*ast.MemberAccess)
	e.MemberName = r.str("member_name")
	e.Declaration = rd.ref(r, "referencedDeclaration")
	var err error
	if e.Typed, err = rd.typed(r); err != nil {
		return err
	}
	ops, err := legacyOperands(rd, r, 1)
	if err != nil {
		return err
	}
	e.Expr = ops[0]
	return nil
}

func legacyIndexAccess(rd *reading, n ast.Node, r *raw) error {
	e := n.(*ast.IndexAccess)
	var err error
	if e.Typed, err = rd.typed(r); err != nil {
		return err
	}
	children, err := r.children()
	if err != nil {
		return err
	}
	if len(children) == 0 || len(children) > 2 {
		return &UnsupportedNodeShapeError{Kind: r.kindTag(), Variant: rd.variant, Reason: "wrong operand count"}
	}
	if e.Base, err = convertAs[ast.Expression](rd, children[0]); err != nil {
		return err
	}
	if len(children) == 2 {
		if e.Index, err = convertAs[ast.Expression](rd, children[1]); err != nil {
			return err
		}
	}
	return nil
}

func legacyTuple(rd *reading, n ast.Node, r *raw) error {
	e := n.(*ast.TupleExpression)
	e.IsArray = r.boolean("isInlineArray")
	var err error
	if e.Typed, err = rd.typed(r); err != nil {
		return err
	}
	children, err := r.children()
	if err != nil {
		return err
	}
	for _, child := range children {
		c, err := convertAs[ast.Expression](rd, child)
		if err != nil {
			return err
		}
		e.Components = append(e.Components, c)
	}
	return nil
}

func legacyNew(rd *reading, n ast.Node, r *raw) error {
	e := n.(*ast.NewExpression)
	var err error
	if e.Typed, err = rd.typed(r); err != nil {
		return err
	}
	children, err := r.children()
	if err != nil {
		return err
	}
	if len(children) > 0 {
		if e.AllocType, err = convertAs[ast.TypeName](rd, children[0]); err != nil {
			return err
		}
	}
	return nil
}

// legacyElementaryExpr lifts the bare type-name string of the legacy
// schema into a synthetic ElementaryTypeName node, so the modern and
// legacy trees have the same shape.
func legacyElementaryExpr(rd *reading, n ast.Node, r *raw) error {
	e := n.(*ast.ElementaryTypeNameExpression)
	var err error
	if e.Typed, err = rd.typed(r); err != nil {
		return err
	}
	e.TypeName = &ast.ElementaryTypeName{
		BaseNode: ast.MakeBase(ast.KindElementaryTypeName, ast.NodeHeader{ID: rd.nextSyntheticID()}),
		ElemName: r.str("value"),
	}
	return nil
}

func legacyElementaryTypeName(rd *reading, n ast.Node, r *raw) error {
	t := n.(*ast.ElementaryTypeName)
	t.ElemName = r.str("name")
	t.TypeString = r.str("type")
	return nil
}

func legacyUserDefinedTypeName(rd *reading, n ast.Node, r *raw) error {
	t := n.(*ast.UserDefinedTypeName)
	t.NamePath = r.str("name")
	t.Referenced = rd.ref(r, "referencedDeclaration")
	t.TypeString = r.str("type")
	return nil
}

func legacyArrayTypeName(rd *reading, n ast.Node, r *raw) error {
	t := n.(*ast.ArrayTypeName)
	t.TypeString = r.str("type")
	children, err := r.children()
	if err != nil {
		return err
	}
	if len(children) == 0 {
		return &UnsupportedNodeShapeError{Kind: r.kindTag(), Variant: rd.variant, Reason: "array type has no element type"}
	}
	if t.Elem, err = convertAs[ast.TypeName](rd, children[0]); err != nil {
		return err
	}
	if len(children) > 1 {
		if t.Length, err = convertAs[ast.Expression](rd, children[1]); err != nil {
			return err
		}
	}
	return nil
}

func legacyMapping(rd *reading, n ast.Node, r *raw) error {
	t := n.(*ast.Mapping)
	t.TypeString = r.str("type")
	children, err := r.children()
	if err != nil {
		return err
	}
	if len(children) != 2 {
		return &UnsupportedNodeShapeError{Kind: r.kindTag(), Variant: rd.variant, Reason: "mapping needs a key and a value type"}
	}
	if t.Key, err = convertAs[ast.TypeName](rd, children[0]); err != nil {
		return err
	}
	t.Value, err = convertAs[ast.TypeName](rd, children[1])
	return err
}

func legacyFunctionTypeName(rd *reading, n ast.Node, r *raw) error {
	t := n.(*ast.FunctionTypeName)
	t.Visibility = ast.Visibility(r.str("visibility"))
	t.TypeString = r.str("type")
	if r.boolean("payable") {
		t.StateMutability = ast.MutabilityPayable
	} else if r.boolean("constant") {
		t.StateMutability = ast.MutabilityView
	}
	children, err := r.children()
	if err != nil {
		return err
	}
	for _, child := range children {
		list, err := convertAs[*ast.ParameterList](rd, child)
		if err != nil {
			return err
		}
		if t.Parameters == nil {
			t.Parameters = list
		} else {
			t.ReturnParameters = list
		}
	}
	return nil
}

func legacyInheritance(rd *reading, n ast.Node, r *raw) error {
	s := n.(*ast.InheritanceSpecifier)
	children, err := r.children()
	if err != nil {
		return err
	}
	if len(children) == 0 {
		return &UnsupportedNodeShapeError{Kind: r.kindTag(), Variant: rd.variant, Reason: "missing base name"}
	}
	if s.BaseName, err = convertAs[*ast.UserDefinedTypeName](rd, children[0]); err != nil {
		return err
	}
	for _, child := range children[1:] {
		arg, err := convertAs[ast.Expression](rd, child)
		if err != nil {
			return err
		}
		s.Args = append(s.Args, arg)
	}
	return nil
}

func legacyModifierInvocation(rd *reading, n ast.Node, r *raw) error {
	m := n.(*ast.ModifierInvocation)
	children, err := r.children()
	if err != nil {
		return err
	}
	if len(children) == 0 {
		return &UnsupportedNodeShapeError{Kind: r.kindTag(), Variant: rd.variant, Reason: "missing modifier name"}
	}
	if m.ModifierName, err = convertAs[*ast.Identifier](rd, children[0]); err != nil {
		return err
	}
	for _, child := range children[1:] {
		arg, err := convertAs[ast.Expression](rd, child)
		if err != nil {
			return err
		}
		m.Args = append(m.Args, arg)
	}
	return nil
}
