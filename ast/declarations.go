package ast

import "github.com/contractshark/solc-typed-ast/typestring"

// ContractKind is the flavor of a contract-like definition.
type ContractKind string

const (
	ContractKindContract  ContractKind = "contract"
	ContractKindInterface ContractKind = "interface"
	ContractKindLibrary   ContractKind = "library"
)

// FunctionKind is the flavor of a function definition. The legacy schema
// does not carry it; postprocessing synthesizes it there.
type FunctionKind string

const (
	FunctionKindFunction    FunctionKind = "function"
	FunctionKindConstructor FunctionKind = "constructor"
	FunctionKindFallback    FunctionKind = "fallback"
	FunctionKindReceive     FunctionKind = "receive"
	FunctionKindFree        FunctionKind = "freeFunction"
)

// Visibility of a declaration.
type Visibility string

const (
	VisibilityDefault  Visibility = ""
	VisibilityPublic   Visibility = "public"
	VisibilityPrivate  Visibility = "private"
	VisibilityInternal Visibility = "internal"
	VisibilityExternal Visibility = "external"
)

// StateMutability of a function or of the address type.
type StateMutability string

const (
	MutabilityDefault    StateMutability = ""
	MutabilityNonpayable StateMutability = "nonpayable"
	MutabilityPayable    StateMutability = "payable"
	MutabilityView       StateMutability = "view"
	MutabilityPure       StateMutability = "pure"
)

// VariableMutability of a state variable.
type VariableMutability string

const (
	VariableMutable   VariableMutability = "mutable"
	VariableConstant  VariableMutability = "constant"
	VariableImmutable VariableMutability = "immutable"
)

// StorageLocation of a variable. The zero value means no explicit
// location; the compiler's literal "default" normalizes to it on read.
type StorageLocation string

const (
	LocationDefault  StorageLocation = ""
	LocationStorage  StorageLocation = "storage"
	LocationMemory   StorageLocation = "memory"
	LocationCalldata StorageLocation = "calldata"
)

// ParseStorageLocation folds the compiler's "default" spelling and absent
// attributes into the zero value.
func ParseStorageLocation(s string) StorageLocation {
	if s == "default" {
		return LocationDefault
	}
	return StorageLocation(s)
}

// SourceUnit is the root container for one source file's tree. It owns the
// file's top-level declarations in declaration order.
type SourceUnit struct {
	BaseNode

	// AbsolutePath is the path the compiler knew the unit by; writer output
	// for the unit is destined for this path.
	AbsolutePath string
	// License is the SPDX identifier from the license comment, if any.
	License string
	// SourceHash identifies the raw source text the unit was compiled
	// from, when the compiler output carried the text or its digest;
	// empty otherwise.
	SourceHash string
	// ExportedSymbols maps each name the unit exports to the declaration's
	// identity, resolved into refs by postprocessing.
	ExportedSymbols map[string]NodeID

	Nodes []Node

	exportedRefs map[string]Ref[Node]
}

func (u *SourceUnit) Children() []Node {
	return u.Nodes
}

// ExportedSymbol resolves one exported name to its declaration, if the
// declaration is part of the read set.
func (u *SourceUnit) ExportedSymbol(name string) (Node, bool) {
	r, ok := u.exportedRefs[name]
	if !ok {
		return nil, false
	}
	return r.Resolve()
}

// SetExportedRef records the resolved form of one exported symbol; the
// symbol-linking postprocessing pass calls this.
func (u *SourceUnit) SetExportedRef(name string, ref Ref[Node]) {
	if u.exportedRefs == nil {
		u.exportedRefs = make(map[string]Ref[Node])
	}
	u.exportedRefs[name] = ref
}

// AppendNode appends a top-level declaration and reparents it.
func (u *SourceUnit) AppendNode(n Node) {
	u.Nodes = append(u.Nodes, n)
	n.base().parent = u
}

// InsertNode inserts a top-level declaration at index i.
func (u *SourceUnit) InsertNode(i int, n Node) {
	u.Nodes = insertAt(u.Nodes, i, n)
	n.base().parent = u
}

// RemoveNode detaches the top-level declaration at index i together with
// its whole subtree; see Detach.
func (u *SourceUnit) RemoveNode(i int) Node {
	n := u.Nodes[i]
	u.Nodes = removeAt(u.Nodes, i)
	orphan(n)
	return n
}

// PragmaDirective is a `pragma ...;` directive. Literals holds the
// compiler's tokenization, e.g. ["solidity", "^", "0.8.0"].
type PragmaDirective struct {
	BaseNode
	Literals []string
}

func (*PragmaDirective) Children() []Node { return nil }

// SymbolAlias is one `{Name as Alias}` entry of an import.
type SymbolAlias struct {
	Name  string
	Alias string
}

// ImportDirective is an `import ...;` directive.
type ImportDirective struct {
	BaseNode

	// File is the import string as written; AbsolutePath is the resolved
	// unit path.
	File         string
	AbsolutePath string
	// UnitAlias is the `as X` name for whole-unit imports, or empty.
	UnitAlias     string
	SymbolAliases []SymbolAlias

	// Unit references the imported source unit when it is part of the
	// same read.
	Unit Ref[*SourceUnit]
}

func (*ImportDirective) Children() []Node { return nil }

// ContractDefinition is a contract, interface or library definition. Parts
// holds the members in declaration order.
type ContractDefinition struct {
	BaseNode

	ContractName     string
	ContractKind     ContractKind
	Abstract         bool
	FullyImplemented bool

	Documentation *StructuredDocumentation
	Bases         []*InheritanceSpecifier
	Parts         []Node

	// Linearization is the C3-linearized base contract identities, most
	// derived first, as emitted by the compiler.
	Linearization []NodeID
}

func (c *ContractDefinition) Name() string { return c.ContractName }

func (c *ContractDefinition) Children() []Node {
	out := make([]Node, 0, 1+len(c.Bases)+len(c.Parts))
	if c.Documentation != nil {
		out = append(out, c.Documentation)
	}
	for _, b := range c.Bases {
		out = append(out, b)
	}
	out = append(out, c.Parts...)
	return out
}

// AppendPart appends a member declaration and reparents it.
func (c *ContractDefinition) AppendPart(n Node) {
	c.Parts = append(c.Parts, n)
	n.base().parent = c
}

// InsertPart inserts a member declaration at index i.
func (c *ContractDefinition) InsertPart(i int, n Node) {
	c.Parts = insertAt(c.Parts, i, n)
	n.base().parent = c
}

// RemovePart detaches the member at index i together with its subtree.
func (c *ContractDefinition) RemovePart(i int) Node {
	n := c.Parts[i]
	c.Parts = removeAt(c.Parts, i)
	orphan(n)
	return n
}

// Base resolves the i-th inheritance specifier's referenced contract, if it
// is part of the read set.
func (c *ContractDefinition) Base(i int) (*ContractDefinition, bool) {
	if i < 0 || i >= len(c.Bases) || c.Bases[i].BaseName == nil {
		return nil, false
	}
	n, ok := c.Bases[i].BaseName.Referenced.Resolve()
	if !ok {
		return nil, false
	}
	def, ok := n.(*ContractDefinition)
	return def, ok
}

// FunctionDefinition is a function, constructor, fallback or receive
// definition. Body is nil for unimplemented declarations.
type FunctionDefinition struct {
	BaseNode

	FunctionName    string
	FunctionKind    FunctionKind
	Visibility      Visibility
	StateMutability StateMutability
	Virtual         bool
	Implemented     bool

	Documentation    *StructuredDocumentation
	Overrides        *OverrideSpecifier
	Parameters       *ParameterList
	ReturnParameters *ParameterList
	Modifiers        []*ModifierInvocation
	Body             *Block
}

func (f *FunctionDefinition) Name() string { return f.FunctionName }

func (f *FunctionDefinition) Children() []Node {
	var out []Node
	if f.Documentation != nil {
		out = append(out, f.Documentation)
	}
	if f.Overrides != nil {
		out = append(out, f.Overrides)
	}
	if f.Parameters != nil {
		out = append(out, f.Parameters)
	}
	for _, m := range f.Modifiers {
		out = append(out, m)
	}
	if f.ReturnParameters != nil {
		out = append(out, f.ReturnParameters)
	}
	if f.Body != nil {
		out = append(out, f.Body)
	}
	return out
}

// ModifierDefinition is a `modifier M(...) { ... }` definition.
type ModifierDefinition struct {
	BaseNode

	ModifierName string
	Virtual      bool

	Documentation *StructuredDocumentation
	Overrides     *OverrideSpecifier
	Parameters    *ParameterList
	Body          *Block
}

func (m *ModifierDefinition) Name() string { return m.ModifierName }

func (m *ModifierDefinition) Children() []Node {
	var out []Node
	if m.Documentation != nil {
		out = append(out, m.Documentation)
	}
	if m.Overrides != nil {
		out = append(out, m.Overrides)
	}
	if m.Parameters != nil {
		out = append(out, m.Parameters)
	}
	if m.Body != nil {
		out = append(out, m.Body)
	}
	return out
}

// VariableDeclaration covers state variables, parameters, local variables
// and struct members.
type VariableDeclaration struct {
	BaseNode

	VarName         string
	TypeString      string
	TypeDescriptor  *typestring.Descriptor
	Visibility      Visibility
	Mutability      VariableMutability
	StorageLocation StorageLocation
	StateVariable   bool
	Constant        bool
	Indexed         bool

	VarType TypeName
	Value   Expression

	Documentation *StructuredDocumentation
	Overrides     *OverrideSpecifier
}

func (v *VariableDeclaration) Name() string { return v.VarName }

func (v *VariableDeclaration) Children() []Node {
	var out []Node
	if v.VarType != nil {
		out = append(out, v.VarType)
	}
	if v.Overrides != nil {
		out = append(out, v.Overrides)
	}
	if v.Value != nil {
		out = append(out, v.Value)
	}
	return out
}

// StructDefinition is a `struct S { ... }` definition.
type StructDefinition struct {
	BaseNode

	StructName string
	Members    []*VariableDeclaration
}

func (s *StructDefinition) Name() string { return s.StructName }

func (s *StructDefinition) Children() []Node {
	out := make([]Node, len(s.Members))
	for i, m := range s.Members {
		out[i] = m
	}
	return out
}

// EnumDefinition is an `enum E { ... }` definition.
type EnumDefinition struct {
	BaseNode

	EnumName string
	Members  []*EnumValue
}

func (e *EnumDefinition) Name() string { return e.EnumName }

func (e *EnumDefinition) Children() []Node {
	out := make([]Node, len(e.Members))
	for i, m := range e.Members {
		out[i] = m
	}
	return out
}

// EnumValue is one member of an enum definition.
type EnumValue struct {
	BaseNode
	ValueName string
}

func (e *EnumValue) Name() string   { return e.ValueName }
func (*EnumValue) Children() []Node { return nil }

// UserDefinedValueTypeDefinition is a `type T is V;` definition, wrapping
// an elementary type in a distinct zero-cost type. Compiler 0.8.8 onward.
type UserDefinedValueTypeDefinition struct {
	BaseNode

	TypeDefName   string
	CanonicalName string
	Underlying    TypeName
}

func (d *UserDefinedValueTypeDefinition) Name() string { return d.TypeDefName }

func (d *UserDefinedValueTypeDefinition) Children() []Node {
	if d.Underlying == nil {
		return nil
	}
	return []Node{d.Underlying}
}

// EventDefinition is an `event E(...);` definition.
type EventDefinition struct {
	BaseNode

	EventName string
	Anonymous bool

	Documentation *StructuredDocumentation
	Parameters    *ParameterList
}

func (e *EventDefinition) Name() string { return e.EventName }

func (e *EventDefinition) Children() []Node {
	var out []Node
	if e.Documentation != nil {
		out = append(out, e.Documentation)
	}
	if e.Parameters != nil {
		out = append(out, e.Parameters)
	}
	return out
}

// ErrorDefinition is an `error E(...);` definition (compiler 0.8.4+).
type ErrorDefinition struct {
	BaseNode

	ErrorName string

	Documentation *StructuredDocumentation
	Parameters    *ParameterList
}

func (e *ErrorDefinition) Name() string { return e.ErrorName }

func (e *ErrorDefinition) Children() []Node {
	var out []Node
	if e.Documentation != nil {
		out = append(out, e.Documentation)
	}
	if e.Parameters != nil {
		out = append(out, e.Parameters)
	}
	return out
}

// ParameterList is the ordered parameter container used by functions,
// events, errors and modifiers.
type ParameterList struct {
	BaseNode
	Parameters []*VariableDeclaration
}

func (p *ParameterList) Children() []Node {
	out := make([]Node, len(p.Parameters))
	for i, v := range p.Parameters {
		out[i] = v
	}
	return out
}

func (*ContractDefinition) isDeclaration()  {}
func (*FunctionDefinition) isDeclaration()  {}
func (*ModifierDefinition) isDeclaration()  {}
func (*VariableDeclaration) isDeclaration() {}
func (*StructDefinition) isDeclaration()    {}
func (*EnumDefinition) isDeclaration()      {}
func (*EnumValue) isDeclaration()           {}
func (*EventDefinition) isDeclaration()     {}
func (*ErrorDefinition) isDeclaration()     {}
