package typestring

import "strings"

// DescriptorKind discriminates the variants of a parsed type string.
type DescriptorKind int

const (
	// KindElementary is a built-in value type such as uint256, bool,
	// address, bytes32, or ufixed128x18.
	KindElementary DescriptorKind = iota
	// KindLiteral is a compile-time constant type such as int_const 42 or
	// literal_string "abc".
	KindLiteral
	// KindArray is T[] or T[n].
	KindArray
	// KindMapping is mapping(K => V).
	KindMapping
	// KindFunction is function (...) <quals> returns (...).
	KindFunction
	// KindModifier is modifier (...).
	KindModifier
	// KindTuple is tuple(...).
	KindTuple
	// KindUserDefined is contract C, struct S, enum E, library L or
	// interface I.
	KindUserDefined
	// KindMeta is type(T), the type of a type.
	KindMeta
)

var kindNames = map[DescriptorKind]string{
	KindElementary:  "elementary",
	KindLiteral:     "literal",
	KindArray:       "array",
	KindMapping:     "mapping",
	KindFunction:    "function",
	KindModifier:    "modifier",
	KindTuple:       "tuple",
	KindUserDefined: "user-defined",
	KindMeta:        "meta",
}

func (k DescriptorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Descriptor is the parsed form of one compiler type string. It is a small
// recursive structure: which fields are meaningful depends on Kind. A
// Descriptor is immutable once returned by Parse.
type Descriptor struct {
	Kind DescriptorKind

	// Name holds the elementary type name ("uint256", "address payable"),
	// the literal tag ("int_const", "literal_string"), or the qualified
	// name of a user-defined type ("Lib.S").
	Name string

	// Scope is the declaration keyword of a user-defined type: "contract",
	// "struct", "enum", "library" or "interface".
	Scope string

	// Value is the constant payload of a literal type, verbatim, including
	// the compiler's digit-elision markers for oversized constants.
	Value string

	// Elem is the array element type, or the inner type of type(T).
	Elem *Descriptor

	// Length is the fixed array length as written, or "" for dynamic
	// arrays. Kept textual so oversized lengths survive round-tripping.
	Length string

	// Key and Val are the mapping key and value types.
	Key *Descriptor
	Val *Descriptor

	// Params and Returns are function parameter and return types; Params
	// doubles as the component list of a tuple.
	Params  []*Descriptor
	Returns []*Descriptor

	// Qualifiers are the trailing qualifier tokens in source order: data
	// location ("memory", "storage", "calldata", "pointer", "ref"),
	// visibility, mutability, and any token this package does not know,
	// preserved opaquely so newer compiler output still parses.
	Qualifiers []string
}

// String re-serializes the descriptor to the compiler's type-string syntax.
// Parsing the result yields a descriptor equal to d.
func (d *Descriptor) String() string {
	var sb strings.Builder
	d.writeTo(&sb)
	return sb.String()
}

func (d *Descriptor) writeTo(sb *strings.Builder) {
	switch d.Kind {
	case KindElementary:
		sb.WriteString(d.Name)
	case KindLiteral:
		sb.WriteString(d.Name)
		sb.WriteByte(' ')
		sb.WriteString(d.Value)
	case KindArray:
		d.Elem.writeTo(sb)
		sb.WriteByte('[')
		sb.WriteString(d.Length)
		sb.WriteByte(']')
	case KindMapping:
		sb.WriteString("mapping(")
		d.Key.writeTo(sb)
		sb.WriteString(" => ")
		d.Val.writeTo(sb)
		sb.WriteByte(')')
	case KindFunction, KindModifier:
		if d.Kind == KindFunction {
			sb.WriteString("function (")
		} else {
			sb.WriteString("modifier (")
		}
		writeList(sb, d.Params)
		sb.WriteByte(')')
		for _, q := range d.Qualifiers {
			sb.WriteByte(' ')
			sb.WriteString(q)
		}
		if len(d.Returns) > 0 {
			sb.WriteString(" returns (")
			writeList(sb, d.Returns)
			sb.WriteByte(')')
		}
		return // qualifiers already emitted
	case KindTuple:
		sb.WriteString("tuple(")
		writeList(sb, d.Params)
		sb.WriteByte(')')
	case KindUserDefined:
		sb.WriteString(d.Scope)
		sb.WriteByte(' ')
		sb.WriteString(d.Name)
	case KindMeta:
		sb.WriteString("type(")
		d.Elem.writeTo(sb)
		sb.WriteByte(')')
	}
	for _, q := range d.Qualifiers {
		sb.WriteByte(' ')
		sb.WriteString(q)
	}
}

func writeList(sb *strings.Builder, list []*Descriptor) {
	for i, d := range list {
		if i > 0 {
			sb.WriteByte(',')
		}
		d.writeTo(sb)
	}
}

// Equal reports deep equality of two descriptors.
func (d *Descriptor) Equal(other *Descriptor) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.Kind != other.Kind || d.Name != other.Name || d.Scope != other.Scope ||
		d.Value != other.Value || d.Length != other.Length {
		return false
	}
	if !d.Elem.Equal(other.Elem) || !d.Key.Equal(other.Key) || !d.Val.Equal(other.Val) {
		return false
	}
	if !equalLists(d.Params, other.Params) || !equalLists(d.Returns, other.Returns) {
		return false
	}
	if len(d.Qualifiers) != len(other.Qualifiers) {
		return false
	}
	for i, q := range d.Qualifiers {
		if other.Qualifiers[i] != q {
			return false
		}
	}
	return true
}

func equalLists(a, b []*Descriptor) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
