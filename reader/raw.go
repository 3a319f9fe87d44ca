package reader

import (
	"encoding/json"
	"fmt"

	"github.com/contractshark/solc-typed-ast/ast"
)

// SchemaVariant identifies which of the two raw AST schemas a document uses.
// The legacy schema (compilers before 0.4.12) nests per-kind fields under
// "attributes" and keeps children in one positional "children" array; the
// modern compact schema tags nodes with "nodeType" and inlines fields.
type SchemaVariant int

const (
	VariantUnknown SchemaVariant = iota
	VariantLegacy
	VariantModern
)

func (v SchemaVariant) String() string {
	switch v {
	case VariantLegacy:
		return "legacy"
	case VariantModern:
		return "modern"
	default:
		return "unknown"
	}
}

// DetectVariant inspects one raw AST document for the structural markers of
// each schema. Detection never consults a version string, since some
// toolchains omit it.
func DetectVariant(doc json.RawMessage) SchemaVariant {
	var probe struct {
		NodeType *string           `json:"nodeType"`
		Name     *string           `json:"name"`
		Children []json.RawMessage `json:"children"`
		Attrs    json.RawMessage   `json:"attributes"`
	}
	if err := json.Unmarshal(doc, &probe); err != nil {
		return VariantUnknown
	}
	switch {
	case probe.NodeType != nil:
		return VariantModern
	case probe.Name != nil && (probe.Children != nil || probe.Attrs != nil):
		return VariantLegacy
	default:
		return VariantUnknown
	}
}

// raw is one undecoded node of either schema variant, with typed accessors
// that hide where each variant keeps its fields. path tracks the location
// from the document root for error reporting.
type raw struct {
	fields  map[string]json.RawMessage
	attrs   map[string]json.RawMessage
	variant SchemaVariant
	path    string
}

func decodeRaw(data json.RawMessage, variant SchemaVariant, path string) (*raw, error) {
	r := &raw{variant: variant, path: path}
	if err := json.Unmarshal(data, &r.fields); err != nil {
		return nil, fmt.Errorf("node at %s is not an object: %w", path, err)
	}
	if variant == VariantLegacy {
		if a, ok := r.fields["attributes"]; ok && !isNull(a) {
			if err := json.Unmarshal(a, &r.attrs); err != nil {
				return nil, fmt.Errorf("node at %s has malformed attributes: %w", path, err)
			}
		}
	}
	return r, nil
}

func isNull(m json.RawMessage) bool {
	return len(m) == 0 || string(m) == "null"
}

// kindTag returns the raw discriminant: "nodeType" in the modern schema,
// the overloaded "name" field in the legacy one.
func (r *raw) kindTag() string {
	if r.variant == VariantLegacy {
		return r.topStr("name")
	}
	return r.topStr("nodeType")
}

func (r *raw) id() ast.NodeID {
	var id int64
	if m, ok := r.fields["id"]; ok && !isNull(m) {
		_ = json.Unmarshal(m, &id)
	} else {
		return syntheticID
	}
	return ast.NodeID(id)
}

func (r *raw) src() string {
	return r.topStr("src")
}

func (r *raw) header() ast.NodeHeader {
	return ast.NodeHeader{ID: r.id(), Src: r.src()}
}

// get returns the raw payload of one per-kind field, looking under
// "attributes" first for the legacy variant.
func (r *raw) get(key string) (json.RawMessage, bool) {
	if r.variant == VariantLegacy {
		if m, ok := r.attrs[key]; ok && !isNull(m) {
			return m, true
		}
	}
	m, ok := r.fields[key]
	if !ok || isNull(m) {
		return nil, false
	}
	return m, true
}

func (r *raw) topStr(key string) string {
	m, ok := r.fields[key]
	if !ok || isNull(m) {
		return ""
	}
	var s string
	_ = json.Unmarshal(m, &s)
	return s
}

// str returns a string field, or "" when the field is absent, null, or not
// a string. The legacy schema encodes "no value" as any of the three.
func (r *raw) str(key string) string {
	m, ok := r.get(key)
	if !ok {
		return ""
	}
	var s string
	_ = json.Unmarshal(m, &s)
	return s
}

// boolean returns a bool field; absent, null and non-bool all read false.
// Legacy encodes some booleans as the strings "true"/"false".
func (r *raw) boolean(key string) bool {
	m, ok := r.get(key)
	if !ok {
		return false
	}
	var b bool
	if err := json.Unmarshal(m, &b); err == nil {
		return b
	}
	var s string
	if err := json.Unmarshal(m, &s); err == nil {
		return s == "true"
	}
	return false
}

// has reports whether the field is present and non-null at all, regardless
// of type. Used where presence itself is the signal (legacy flag fields).
func (r *raw) has(key string) bool {
	_, ok := r.get(key)
	return ok
}

func (r *raw) nodeID(key string) (ast.NodeID, bool) {
	m, ok := r.get(key)
	if !ok {
		return 0, false
	}
	var id int64
	if err := json.Unmarshal(m, &id); err != nil {
		return 0, false
	}
	return ast.NodeID(id), true
}

func (r *raw) strList(key string) []string {
	m, ok := r.get(key)
	if !ok {
		return nil
	}
	var out []string
	_ = json.Unmarshal(m, &out)
	return out
}

func (r *raw) idList(key string) []ast.NodeID {
	m, ok := r.get(key)
	if !ok {
		return nil
	}
	var ids []int64
	if err := json.Unmarshal(m, &ids); err != nil {
		return nil
	}
	out := make([]ast.NodeID, len(ids))
	for i, id := range ids {
		out[i] = ast.NodeID(id)
	}
	return out
}

// symbolMap decodes the exportedSymbols shape: name → list of declaration
// IDs (one entry per unit the symbol is re-exported through; the first is
// the declaration itself).
func (r *raw) symbolMap(key string) map[string]ast.NodeID {
	m, ok := r.get(key)
	if !ok {
		return nil
	}
	var decoded map[string][]int64
	if err := json.Unmarshal(m, &decoded); err != nil {
		return nil
	}
	out := make(map[string]ast.NodeID, len(decoded))
	for name, ids := range decoded {
		if len(ids) > 0 {
			out[name] = ast.NodeID(ids[0])
		}
	}
	return out
}

// obj returns a nested raw node stored under key.
func (r *raw) obj(key string) (*raw, bool, error) {
	m, ok := r.get(key)
	if !ok {
		return nil, false, nil
	}
	child, err := decodeRaw(m, r.variant, r.path+"."+key)
	if err != nil {
		return nil, false, err
	}
	return child, true, nil
}

// objList returns a list of nested raw nodes stored under key. Null
// entries are preserved as nil for tuple-style holes.
func (r *raw) objList(key string) ([]*raw, error) {
	m, ok := r.get(key)
	if !ok {
		return nil, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(m, &items); err != nil {
		return nil, fmt.Errorf("field %s at %s is not a list: %w", key, r.path, err)
	}
	out := make([]*raw, len(items))
	for i, item := range items {
		if isNull(item) {
			continue
		}
		child, err := decodeRaw(item, r.variant, fmt.Sprintf("%s.%s[%d]", r.path, key, i))
		if err != nil {
			return nil, err
		}
		out[i] = child
	}
	return out, nil
}

// children returns the legacy schema's positional child array.
func (r *raw) children() ([]*raw, error) {
	m, ok := r.fields["children"]
	if !ok || isNull(m) {
		return nil, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(m, &items); err != nil {
		return nil, fmt.Errorf("children at %s is not a list: %w", r.path, err)
	}
	out := make([]*raw, 0, len(items))
	for i, item := range items {
		if isNull(item) {
			continue
		}
		child, err := decodeRaw(item, r.variant, fmt.Sprintf("%s.children[%d]", r.path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, child)
	}
	return out, nil
}

// modeledFields is the set of raw keys the processors map into typed node
// fields; everything else a node carries is stashed as opaque extras so
// unrecognized-but-present data survives a round trip.
var modeledFields = map[string]struct{}{
	"id": {}, "src": {}, "nodeType": {}, "name": {}, "attributes": {},
	"children": {}, "nodes": {}, "literals": {}, "typeDescriptions": {},
	"typeName": {}, "value": {}, "expression": {}, "statements": {},
	"parameters": {}, "returnParameters": {}, "body": {}, "members": {},
	"baseContracts": {}, "modifiers": {}, "overrides": {}, "documentation": {},
	"condition": {}, "trueBody": {}, "falseBody": {}, "trueExpression": {},
	"falseExpression": {}, "leftExpression": {}, "rightExpression": {},
	"leftHandSide": {}, "rightHandSide": {}, "subExpression": {},
	"baseExpression": {}, "indexExpression": {}, "components": {},
	"arguments": {}, "declarations": {}, "initialValue": {},
	"initializationExpression": {}, "loopExpression": {}, "eventCall": {},
	"errorCall": {}, "keyType": {}, "valueType": {}, "baseType": {},
	"length": {}, "pathNode": {}, "baseName": {}, "modifierName": {},
	"exportedSymbols": {}, "absolutePath": {}, "license": {},
	"operator": {}, "prefix": {}, "kind": {}, "memberName": {},
	"member_name": {}, "referencedDeclaration": {}, "hexValue": {},
	"hexvalue": {}, "subdenomination": {}, "token": {}, "visibility": {},
	"stateMutability": {}, "storageLocation": {}, "mutability": {},
	"stateVariable": {}, "indexed": {}, "virtual": {}, "anonymous": {},
	"abstract": {}, "fullyImplemented": {}, "contractKind": {},
	"linearizedBaseContracts": {}, "file": {}, "unitAlias": {},
	"symbolAliases": {}, "sourceUnit": {}, "functionReturnParameters": {},
	"type": {}, "text": {},
	// The legacy quirk flags "constant", "payable" and "isConstructor" are
	// deliberately left unmodeled here: they are stashed as extras and
	// consumed by the kind-normalization postprocessing pass.
}

func (r *raw) stashExtras(n ast.Node) {
	b, ok := n.(interface {
		SetExtra(string, json.RawMessage)
	})
	if !ok {
		return
	}
	for key, m := range r.fields {
		if _, modeled := modeledFields[key]; !modeled && key != "attributes" {
			b.SetExtra(key, m)
		}
	}
	for key, m := range r.attrs {
		if _, modeled := modeledFields[key]; !modeled {
			b.SetExtra(key, m)
		}
	}
}

// syntheticID marks nodes the reader must invent because the legacy schema
// encodes a construct without a node of its own (e.g. the type of a legacy
// ElementaryTypeNameExpression). Synthetic nodes are replaced with fresh
// negative IDs and never registered in the Context.
const syntheticID ast.NodeID = -1
