package reader

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
)

// CompilerOutput is the structured result of one compiler invocation: the
// raw AST per source unit path, the reported compiler version, and any
// auxiliary sections (bytecode, metadata) the core passes through untouched.
type CompilerOutput struct {
	// Sources maps each source unit path to its raw AST document.
	Sources map[string]json.RawMessage

	// Version is the compiler version string, when the toolchain reported
	// one. Schema detection never relies on it.
	Version string

	// Auxiliary holds the per-source sections other than the AST, verbatim.
	Auxiliary map[string]map[string]json.RawMessage
}

// SortedPaths returns the unit paths in the deterministic order the reader
// processes them.
func (o *CompilerOutput) SortedPaths() []string {
	paths := make([]string, 0, len(o.Sources))
	for p := range o.Sources {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// SourceIdentity returns the identity of the unit's raw source text at
// path: the compiler-reported keccak256 section when present, otherwise a
// sha256 of the embedded source text, otherwise empty.
func (o *CompilerOutput) SourceIdentity(path string) string {
	aux := o.Auxiliary[path]
	if aux == nil {
		return ""
	}
	var s string
	if raw, ok := aux["keccak256"]; ok && json.Unmarshal(raw, &s) == nil {
		return s
	}
	if raw, ok := aux["source"]; ok && json.Unmarshal(raw, &s) == nil {
		sum := sha256.Sum256([]byte(s))
		return "sha256:" + hex.EncodeToString(sum[:])
	}
	return ""
}

// DecodeOutput decodes the JSON a compiler invocation produced into a
// CompilerOutput. Both the combined-json shape ({"sources": {path:
// {"AST": ...}}, "version": ...}) and the standard-json shape ({"sources":
// {path: {"ast": ...}}}) are accepted; a per-path entry that is itself a
// raw AST document is taken as-is. A document with no "sources" section
// fails with CompileDataMalformedError.
func DecodeOutput(data []byte) (*CompilerOutput, error) {
	var top struct {
		Sources map[string]json.RawMessage `json:"sources"`
		Version string                     `json:"version"`
	}
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, &CompileDataMalformedError{Reason: "compiler output is not a JSON object: " + err.Error()}
	}
	if top.Sources == nil {
		return nil, &CompileDataMalformedError{Reason: `missing top-level "sources" section`}
	}

	out := &CompilerOutput{
		Sources:   make(map[string]json.RawMessage, len(top.Sources)),
		Version:   top.Version,
		Auxiliary: make(map[string]map[string]json.RawMessage),
	}
	for path, entry := range top.Sources {
		var sections map[string]json.RawMessage
		if err := json.Unmarshal(entry, &sections); err != nil {
			return nil, &CompileDataMalformedError{Reason: "source entry " + path + " is not an object"}
		}
		doc, ok := sections["AST"]
		if !ok {
			doc, ok = sections["ast"]
		}
		if !ok {
			// The entry itself may be a bare raw AST document.
			if DetectVariant(entry) == VariantUnknown {
				return nil, &CompileDataMalformedError{Reason: "source entry " + path + " carries no AST"}
			}
			out.Sources[path] = entry
			continue
		}
		out.Sources[path] = doc
		for name, section := range sections {
			if name == "AST" || name == "ast" {
				continue
			}
			if out.Auxiliary[path] == nil {
				out.Auxiliary[path] = make(map[string]json.RawMessage)
			}
			out.Auxiliary[path][name] = section
		}
	}
	return out, nil
}
