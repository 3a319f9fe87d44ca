package ast

// ElementaryTypeName is a built-in type such as uint256, bool or address.
// StateMutability is set for `address payable`.
type ElementaryTypeName struct {
	BaseNode

	TypeString      string
	ElemName        string
	StateMutability StateMutability
}

func (*ElementaryTypeName) Children() []Node { return nil }

// UserDefinedTypeName names a contract, struct, enum or other user-defined
// type, possibly qualified ("Lib.S"). Referenced points at the definition.
type UserDefinedTypeName struct {
	BaseNode

	TypeString string
	NamePath   string
	Referenced Ref[Node]
}

func (*UserDefinedTypeName) Children() []Node { return nil }

// ArrayTypeName is `T[]` or `T[len]`.
type ArrayTypeName struct {
	BaseNode

	TypeString string
	Elem       TypeName
	Length     Expression
}

func (t *ArrayTypeName) Children() []Node {
	if t.Length == nil {
		return []Node{t.Elem}
	}
	return []Node{t.Elem, t.Length}
}

// Mapping is `mapping(K => V)`.
type Mapping struct {
	BaseNode

	TypeString string
	Key        TypeName
	Value      TypeName
}

func (t *Mapping) Children() []Node {
	return []Node{t.Key, t.Value}
}

// FunctionTypeName is `function (...) <vis> <mut> [returns (...)]` used as
// a type.
type FunctionTypeName struct {
	BaseNode

	TypeString      string
	Visibility      Visibility
	StateMutability StateMutability

	Parameters       *ParameterList
	ReturnParameters *ParameterList
}

func (t *FunctionTypeName) Children() []Node {
	var out []Node
	if t.Parameters != nil {
		out = append(out, t.Parameters)
	}
	if t.ReturnParameters != nil {
		out = append(out, t.ReturnParameters)
	}
	return out
}

func (*ElementaryTypeName) isTypeName()  {}
func (*UserDefinedTypeName) isTypeName() {}
func (*ArrayTypeName) isTypeName()       {}
func (*Mapping) isTypeName()             {}
func (*FunctionTypeName) isTypeName()    {}
