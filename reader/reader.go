package reader

import (
	"github.com/contractshark/solc-typed-ast/ast"
	"github.com/contractshark/solc-typed-ast/typestring"
	"github.com/contractshark/solc-typed-ast/version"
)

// Result is a finished read: the source units in deterministic (path)
// order, plus the Context that owns every registered identity. The Context
// is exposed so callers can run further lookups without re-walking trees.
type Result struct {
	Units   []*ast.SourceUnit
	Context *ast.Context

	// Version is the compiler version parsed from the output, when the
	// toolchain reported one; zero otherwise.
	Version version.Version

	// Output is the raw input the result was read from, retained for the
	// auxiliary sections the core passes through untouched.
	Output *CompilerOutput
}

// Unit returns the source unit with the given absolute path, if present.
func (r *Result) Unit(path string) (*ast.SourceUnit, bool) {
	for _, u := range r.Units {
		if u.AbsolutePath == path {
			return u, true
		}
	}
	return nil, false
}

// Option configures a read.
type Option func(*readOptions)

type readOptions struct {
	tolerateBadTypeStrings bool
}

// WithTolerateMalformedTypeStrings makes the read keep an unparseable type
// annotation as opaque text on the node instead of failing the read. The
// default is to propagate the MalformedTypeStringError.
func WithTolerateMalformedTypeStrings() Option {
	return func(o *readOptions) {
		o.tolerateBadTypeStrings = true
	}
}

// Read normalizes one compiler invocation's raw output into typed source
// unit trees sharing one fresh Context. The schema variant of each document
// is detected structurally, every node is registered before its children
// are descended into, and the postprocessor pipeline runs once over the
// whole unit set at the end. On any per-node failure the whole read is
// aborted: no partial trees are ever returned.
func Read(out *CompilerOutput, opts ...Option) (*Result, error) {
	if out == nil || out.Sources == nil {
		return nil, &CompileDataMalformedError{Reason: `missing top-level "sources" section`}
	}
	var options readOptions
	for _, opt := range opts {
		opt(&options)
	}

	res := &Result{Context: ast.NewContext(), Output: out}
	if out.Version != "" {
		if v, err := version.Parse(out.Version); err == nil {
			res.Version = v
		}
	}

	synth := syntheticID
	for _, path := range out.SortedPaths() {
		doc := out.Sources[path]
		variant := DetectVariant(doc)
		if variant == VariantUnknown {
			return nil, &CompileDataMalformedError{Reason: "source entry " + path + " matches neither raw AST schema"}
		}
		rd := &reading{
			ctx:      res.Context,
			variant:  variant,
			procs:    processorsFor(variant),
			opts:     options,
			unitPath: path,
			synth:    &synth,
		}
		root, err := decodeRaw(doc, variant, "$")
		if err != nil {
			return nil, &CompileDataMalformedError{Reason: err.Error()}
		}
		unit, err := convertAs[*ast.SourceUnit](rd, root)
		if err != nil {
			return nil, err
		}
		if unit.AbsolutePath == "" {
			unit.AbsolutePath = path
		}
		unit.SourceHash = out.SourceIdentity(path)
		res.Units = append(res.Units, unit)
	}

	res.Context.Seal()

	for _, pass := range Pipeline() {
		if err := pass.Run(res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func processorsFor(variant SchemaVariant) map[ast.NodeKind]processorFunc {
	if variant == VariantLegacy {
		return legacyProcessors
	}
	return modernProcessors
}

// processorFunc fills one pre-constructed, already registered node from its
// raw form, converting children recursively.
type processorFunc func(rd *reading, n ast.Node, r *raw) error

// reading is the per-unit conversion state: the shared Context, the
// detected variant with its processor family, and the synthetic-ID counter
// shared across the whole read.
type reading struct {
	ctx      *ast.Context
	variant  SchemaVariant
	procs    map[ast.NodeKind]processorFunc
	opts     readOptions
	unitPath string
	synth    *ast.NodeID
}

func (rd *reading) nextSyntheticID() ast.NodeID {
	*rd.synth--
	return *rd.synth
}

// convert dispatches one raw node to its processor. The node is constructed
// and registered before its children are descended into, so references into
// the same subtree resolve once the pass completes; references to
// later-appearing siblings stay lazy and are checked in postprocessing.
func (rd *reading) convert(r *raw) (ast.Node, error) {
	tag := r.kindTag()
	kind := ast.NodeKind(tag)
	factory, haveFactory := factories[kind]
	proc, haveProc := rd.procs[kind]
	if tag == "" || !haveFactory || !haveProc {
		return nil, rd.wrap(r, kind, &UnsupportedNodeShapeError{Kind: tag, Variant: rd.variant})
	}

	h := r.header()
	if h.ID == syntheticID {
		h.ID = rd.nextSyntheticID()
	}
	n := factory(h)
	if !h.ID.IsExternal() {
		if err := rd.ctx.Register(n); err != nil {
			return nil, rd.wrap(r, kind, err)
		}
	}
	if err := proc(rd, n, r); err != nil {
		return nil, rd.wrap(r, kind, err)
	}
	r.stashExtras(n)
	ast.Adopt(n)
	return n, nil
}

func (rd *reading) wrap(r *raw, kind ast.NodeKind, err error) error {
	if _, ok := err.(*ReadError); ok {
		return err
	}
	return &ReadError{Unit: rd.unitPath, Path: r.path, Kind: kind, Err: err}
}

// convertAs converts and narrows to a concrete or category type.
func convertAs[T ast.Node](rd *reading, r *raw) (T, error) {
	var zero T
	n, err := rd.convert(r)
	if err != nil {
		return zero, err
	}
	t, ok := n.(T)
	if !ok {
		return zero, rd.wrap(r, n.Kind(), &UnsupportedNodeShapeError{
			Kind:    string(n.Kind()),
			Variant: rd.variant,
			Reason:  "node variant not valid in this position",
		})
	}
	return t, nil
}

// factories constructs the empty shell for each supported node kind, so a
// node can be registered before its processor descends into children.
var factories = map[ast.NodeKind]func(ast.NodeHeader) ast.Node{
	ast.KindSourceUnit:      func(h ast.NodeHeader) ast.Node { return &ast.SourceUnit{BaseNode: ast.MakeBase(ast.KindSourceUnit, h)} },
	ast.KindPragmaDirective: func(h ast.NodeHeader) ast.Node { return &ast.PragmaDirective{BaseNode: ast.MakeBase(ast.KindPragmaDirective, h)} },
	ast.KindImportDirective: func(h ast.NodeHeader) ast.Node { return &ast.ImportDirective{BaseNode: ast.MakeBase(ast.KindImportDirective, h)} },

	ast.KindContractDefinition:  func(h ast.NodeHeader) ast.Node { return &ast.ContractDefinition{BaseNode: ast.MakeBase(ast.KindContractDefinition, h)} },
	ast.KindFunctionDefinition:  func(h ast.NodeHeader) ast.Node { return &ast.FunctionDefinition{BaseNode: ast.MakeBase(ast.KindFunctionDefinition, h)} },
	ast.KindModifierDefinition:  func(h ast.NodeHeader) ast.Node { return &ast.ModifierDefinition{BaseNode: ast.MakeBase(ast.KindModifierDefinition, h)} },
	ast.KindVariableDeclaration: func(h ast.NodeHeader) ast.Node { return &ast.VariableDeclaration{BaseNode: ast.MakeBase(ast.KindVariableDeclaration, h)} },
	ast.KindStructDefinition:    func(h ast.NodeHeader) ast.Node { return &ast.StructDefinition{BaseNode: ast.MakeBase(ast.KindStructDefinition, h)} },
	ast.KindEnumDefinition:      func(h ast.NodeHeader) ast.Node { return &ast.EnumDefinition{BaseNode: ast.MakeBase(ast.KindEnumDefinition, h)} },
	ast.KindEnumValue:           func(h ast.NodeHeader) ast.Node { return &ast.EnumValue{BaseNode: ast.MakeBase(ast.KindEnumValue, h)} },
	ast.KindEventDefinition:     func(h ast.NodeHeader) ast.Node { return &ast.EventDefinition{BaseNode: ast.MakeBase(ast.KindEventDefinition, h)} },
	ast.KindErrorDefinition:     func(h ast.NodeHeader) ast.Node { return &ast.ErrorDefinition{BaseNode: ast.MakeBase(ast.KindErrorDefinition, h)} },
	ast.KindParameterList:       func(h ast.NodeHeader) ast.Node { return &ast.ParameterList{BaseNode: ast.MakeBase(ast.KindParameterList, h)} },

	ast.KindUserDefinedValueTypeDefinition: func(h ast.NodeHeader) ast.Node {
		return &ast.UserDefinedValueTypeDefinition{BaseNode: ast.MakeBase(ast.KindUserDefinedValueTypeDefinition, h)}
	},

	ast.KindBlock:                        func(h ast.NodeHeader) ast.Node { return &ast.Block{BaseNode: ast.MakeBase(ast.KindBlock, h)} },
	ast.KindUncheckedBlock:               func(h ast.NodeHeader) ast.Node { return &ast.UncheckedBlock{BaseNode: ast.MakeBase(ast.KindUncheckedBlock, h)} },
	ast.KindExpressionStatement:          func(h ast.NodeHeader) ast.Node { return &ast.ExpressionStatement{BaseNode: ast.MakeBase(ast.KindExpressionStatement, h)} },
	ast.KindVariableDeclarationStatement: func(h ast.NodeHeader) ast.Node { return &ast.VariableDeclarationStatement{BaseNode: ast.MakeBase(ast.KindVariableDeclarationStatement, h)} },
	ast.KindIfStatement:                  func(h ast.NodeHeader) ast.Node { return &ast.IfStatement{BaseNode: ast.MakeBase(ast.KindIfStatement, h)} },
	ast.KindForStatement:                 func(h ast.NodeHeader) ast.Node { return &ast.ForStatement{BaseNode: ast.MakeBase(ast.KindForStatement, h)} },
	ast.KindWhileStatement:               func(h ast.NodeHeader) ast.Node { return &ast.WhileStatement{BaseNode: ast.MakeBase(ast.KindWhileStatement, h)} },
	ast.KindDoWhileStatement:             func(h ast.NodeHeader) ast.Node { return &ast.DoWhileStatement{BaseNode: ast.MakeBase(ast.KindDoWhileStatement, h)} },
	ast.KindReturn:                       func(h ast.NodeHeader) ast.Node { return &ast.Return{BaseNode: ast.MakeBase(ast.KindReturn, h)} },
	ast.KindBreak:                        func(h ast.NodeHeader) ast.Node { return &ast.Break{BaseNode: ast.MakeBase(ast.KindBreak, h)} },
	ast.KindContinue:                     func(h ast.NodeHeader) ast.Node { return &ast.Continue{BaseNode: ast.MakeBase(ast.KindContinue, h)} },
	ast.KindEmitStatement:                func(h ast.NodeHeader) ast.Node { return &ast.EmitStatement{BaseNode: ast.MakeBase(ast.KindEmitStatement, h)} },
	ast.KindRevertStatement:              func(h ast.NodeHeader) ast.Node { return &ast.RevertStatement{BaseNode: ast.MakeBase(ast.KindRevertStatement, h)} },
	ast.KindPlaceholderStatement:         func(h ast.NodeHeader) ast.Node { return &ast.PlaceholderStatement{BaseNode: ast.MakeBase(ast.KindPlaceholderStatement, h)} },

	ast.KindIdentifier:                   func(h ast.NodeHeader) ast.Node { return &ast.Identifier{BaseNode: ast.MakeBase(ast.KindIdentifier, h)} },
	ast.KindLiteral:                      func(h ast.NodeHeader) ast.Node { return &ast.Literal{BaseNode: ast.MakeBase(ast.KindLiteral, h)} },
	ast.KindBinaryOperation:              func(h ast.NodeHeader) ast.Node { return &ast.BinaryOperation{BaseNode: ast.MakeBase(ast.KindBinaryOperation, h)} },
	ast.KindUnaryOperation:               func(h ast.NodeHeader) ast.Node { return &ast.UnaryOperation{BaseNode: ast.MakeBase(ast.KindUnaryOperation, h)} },
	ast.KindAssignment:                   func(h ast.NodeHeader) ast.Node { return &ast.Assignment{BaseNode: ast.MakeBase(ast.KindAssignment, h)} },
	ast.KindConditional:                  func(h ast.NodeHeader) ast.Node { return &ast.Conditional{BaseNode: ast.MakeBase(ast.KindConditional, h)} },
	ast.KindFunctionCall:                 func(h ast.NodeHeader) ast.Node { return &ast.FunctionCall{BaseNode: ast.MakeBase(ast.KindFunctionCall, h)} },
	ast.KindMemberAccess:                 func(h ast.NodeHeader) ast.Node { return &ast.MemberAccess{BaseNode: ast.MakeBase(ast.KindMemberAccess, h)} },
	ast.KindIndexAccess:                  func(h ast.NodeHeader) ast.Node { return &ast.IndexAccess{BaseNode: ast.MakeBase(ast.KindIndexAccess, h)} },
	ast.KindTupleExpression:              func(h ast.NodeHeader) ast.Node { return &ast.TupleExpression{BaseNode: ast.MakeBase(ast.KindTupleExpression, h)} },
	ast.KindNewExpression:                func(h ast.NodeHeader) ast.Node { return &ast.NewExpression{BaseNode: ast.MakeBase(ast.KindNewExpression, h)} },
	ast.KindElementaryTypeNameExpression: func(h ast.NodeHeader) ast.Node { return &ast.ElementaryTypeNameExpression{BaseNode: ast.MakeBase(ast.KindElementaryTypeNameExpression, h)} },

	ast.KindElementaryTypeName:  func(h ast.NodeHeader) ast.Node { return &ast.ElementaryTypeName{BaseNode: ast.MakeBase(ast.KindElementaryTypeName, h)} },
	ast.KindUserDefinedTypeName: func(h ast.NodeHeader) ast.Node { return &ast.UserDefinedTypeName{BaseNode: ast.MakeBase(ast.KindUserDefinedTypeName, h)} },
	ast.KindArrayTypeName:       func(h ast.NodeHeader) ast.Node { return &ast.ArrayTypeName{BaseNode: ast.MakeBase(ast.KindArrayTypeName, h)} },
	ast.KindMapping:             func(h ast.NodeHeader) ast.Node { return &ast.Mapping{BaseNode: ast.MakeBase(ast.KindMapping, h)} },
	ast.KindFunctionTypeName:    func(h ast.NodeHeader) ast.Node { return &ast.FunctionTypeName{BaseNode: ast.MakeBase(ast.KindFunctionTypeName, h)} },

	ast.KindStructuredDocumentation: func(h ast.NodeHeader) ast.Node { return &ast.StructuredDocumentation{BaseNode: ast.MakeBase(ast.KindStructuredDocumentation, h)} },
	ast.KindInheritanceSpecifier:    func(h ast.NodeHeader) ast.Node { return &ast.InheritanceSpecifier{BaseNode: ast.MakeBase(ast.KindInheritanceSpecifier, h)} },
	ast.KindModifierInvocation:      func(h ast.NodeHeader) ast.Node { return &ast.ModifierInvocation{BaseNode: ast.MakeBase(ast.KindModifierInvocation, h)} },
	ast.KindOverrideSpecifier:       func(h ast.NodeHeader) ast.Node { return &ast.OverrideSpecifier{BaseNode: ast.MakeBase(ast.KindOverrideSpecifier, h)} },
}

// typed extracts the resolved-type annotation of an expression node: the
// modern schema nests it under typeDescriptions, the legacy one keeps the
// bare string under "type".
func (rd *reading) typed(r *raw) (ast.Typed, error) {
	var ts string
	if rd.variant == VariantModern {
		if td, ok, err := r.obj("typeDescriptions"); err != nil {
			return ast.Typed{}, err
		} else if ok {
			ts = td.topStr("typeString")
		}
	} else {
		ts = r.str("type")
	}
	if ts == "" {
		return ast.Typed{}, nil
	}
	desc, err := typestring.Parse(ts)
	if err != nil {
		if rd.opts.tolerateBadTypeStrings {
			return ast.Typed{TypeString: ts}, nil
		}
		return ast.Typed{}, err
	}
	return ast.Typed{TypeString: ts, TypeDescriptor: desc}, nil
}

// ref records a lazily resolved cross-reference field.
func (rd *reading) ref(r *raw, key string) ast.Ref[ast.Node] {
	id, ok := r.nodeID(key)
	if !ok {
		return ast.Ref[ast.Node]{}
	}
	return ast.MakeRef[ast.Node](rd.ctx, id)
}

func (rd *reading) exprField(r *raw, key string) (ast.Expression, error) {
	child, ok, err := r.obj(key)
	if err != nil || !ok {
		return nil, err
	}
	return convertAs[ast.Expression](rd, child)
}

func (rd *reading) stmtField(r *raw, key string) (ast.Statement, error) {
	child, ok, err := r.obj(key)
	if err != nil || !ok {
		return nil, err
	}
	return convertAs[ast.Statement](rd, child)
}

func (rd *reading) typeNameField(r *raw, key string) (ast.TypeName, error) {
	child, ok, err := r.obj(key)
	if err != nil || !ok {
		return nil, err
	}
	return convertAs[ast.TypeName](rd, child)
}

func (rd *reading) paramListField(r *raw, key string) (*ast.ParameterList, error) {
	child, ok, err := r.obj(key)
	if err != nil || !ok {
		return nil, err
	}
	return convertAs[*ast.ParameterList](rd, child)
}

// exprList converts a list field, preserving null holes as nil entries.
func (rd *reading) exprList(r *raw, key string) ([]ast.Expression, error) {
	items, err := r.objList(key)
	if err != nil || items == nil {
		return nil, err
	}
	out := make([]ast.Expression, len(items))
	for i, item := range items {
		if item == nil {
			continue
		}
		e, err := convertAs[ast.Expression](rd, item)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

// docField handles the three historical encodings of documentation: a
// StructuredDocumentation child node, a bare string on modern nodes before
// 0.6.3, and a legacy attribute string. String forms are lifted into
// synthetic nodes so downstream code sees one shape.
func (rd *reading) docField(r *raw) (*ast.StructuredDocumentation, error) {
	m, ok := r.get("documentation")
	if !ok {
		return nil, nil
	}
	if len(m) > 0 && m[0] == '{' {
		child, _, err := r.obj("documentation")
		if err != nil {
			return nil, err
		}
		return convertAs[*ast.StructuredDocumentation](rd, child)
	}
	text := r.str("documentation")
	if text == "" {
		return nil, nil
	}
	doc := &ast.StructuredDocumentation{
		BaseNode: ast.MakeBase(ast.KindStructuredDocumentation, ast.NodeHeader{ID: rd.nextSyntheticID()}),
		Text:     text,
	}
	return doc, nil
}
