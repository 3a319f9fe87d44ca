// Package typestring parses the Solidity compiler's compact textual encoding
// of resolved types, as found in the typeString/type annotations of its AST
// output, into a structured descriptor tree.
//
// The parser is total over the grammar emitted by every supported compiler
// version: qualifier tokens it does not recognize are preserved opaquely
// rather than rejected, so output from newer compilers still parses.
package typestring

import (
	"fmt"
	"strings"
)

// MalformedTypeStringError is returned when a type string cannot be parsed.
// It names the offending substring and its byte position in the input.
type MalformedTypeStringError struct {
	Input     string
	Pos       int
	Offending string
	Reason    string
}

func (e *MalformedTypeStringError) Error() string {
	return fmt.Sprintf("malformed type string: %s at offset %d near %q", e.Reason, e.Pos, e.Offending)
}

// Parse parses one compiler-emitted type string. It is a pure function:
// no state is shared across calls, and the same input always produces the
// same descriptor or the same error.
func Parse(s string) (*Descriptor, error) {
	sc := &scanner{in: s}
	d, err := sc.parseType()
	if err != nil {
		return nil, err
	}
	sc.skipSpaces()
	if !sc.eof() {
		return nil, sc.errf(sc.pos, "trailing input")
	}
	return d, nil
}

type scanner struct {
	in  string
	pos int
}

func (sc *scanner) eof() bool {
	return sc.pos >= len(sc.in)
}

func (sc *scanner) skipSpaces() {
	for !sc.eof() && sc.in[sc.pos] == ' ' {
		sc.pos++
	}
}

func (sc *scanner) peek() byte {
	if sc.eof() {
		return 0
	}
	return sc.in[sc.pos]
}

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == '_' || c == '$' || c == '.'
}

// word consumes and returns the next identifier-like token, or "" if the
// next character cannot start one. Leading spaces are skipped.
func (sc *scanner) word() string {
	sc.skipSpaces()
	start := sc.pos
	for !sc.eof() && isWordByte(sc.in[sc.pos]) {
		sc.pos++
	}
	return sc.in[start:sc.pos]
}

func (sc *scanner) peekWord() string {
	save := sc.pos
	w := sc.word()
	sc.pos = save
	return w
}

func (sc *scanner) expect(c byte) error {
	sc.skipSpaces()
	if sc.eof() || sc.in[sc.pos] != c {
		return sc.errf(sc.pos, "expected %q", string(c))
	}
	sc.pos++
	return nil
}

func (sc *scanner) errf(pos int, format string, args ...any) error {
	end := pos + 16
	if end > len(sc.in) {
		end = len(sc.in)
	}
	if pos > len(sc.in) {
		pos = len(sc.in)
	}
	return &MalformedTypeStringError{
		Input:     sc.in,
		Pos:       pos,
		Offending: sc.in[pos:end],
		Reason:    fmt.Sprintf(format, args...),
	}
}

func (sc *scanner) parseType() (*Descriptor, error) {
	sc.skipSpaces()
	start := sc.pos
	word := sc.word()
	if word == "" {
		return nil, sc.errf(start, "expected a type")
	}

	var d *Descriptor
	var err error
	switch word {
	case "mapping":
		d, err = sc.parseMapping()
	case "function", "modifier":
		d, err = sc.parseFunction(word)
	case "tuple":
		d, err = sc.parseTuple()
	case "type":
		d, err = sc.parseMeta()
	case "int_const", "rational_const":
		d = &Descriptor{Kind: KindLiteral, Name: word, Value: sc.scanLiteralValue()}
	case "literal_string":
		d = &Descriptor{Kind: KindLiteral, Name: word, Value: sc.scanLiteralValue()}
	case "contract", "struct", "enum", "library", "interface":
		name := sc.word()
		if name == "" {
			err = sc.errf(sc.pos, "%s type missing a name", word)
			break
		}
		d = &Descriptor{Kind: KindUserDefined, Scope: word, Name: name}
	default:
		d = &Descriptor{Kind: KindElementary, Name: word}
		if word == "address" && sc.peekWord() == "payable" {
			sc.word()
			d.Name = "address payable"
		}
	}
	if err != nil {
		return nil, err
	}

	// Array suffixes and qualifier words interleave: the element's data
	// location precedes the brackets and the array's own follows them, as
	// in "struct S memory[] memory".
	for {
		sc.skipSpaces()
		if sc.peek() == '[' {
			sc.pos++
			length, err := sc.scanArrayLength()
			if err != nil {
				return nil, err
			}
			d = &Descriptor{Kind: KindArray, Elem: d, Length: length}
			continue
		}
		w := sc.peekWord()
		if w == "" {
			break
		}
		sc.word()
		d.Qualifiers = append(d.Qualifiers, w)
	}
	return d, nil
}

func (sc *scanner) parseMapping() (*Descriptor, error) {
	if err := sc.expect('('); err != nil {
		return nil, err
	}
	key, err := sc.parseType()
	if err != nil {
		return nil, err
	}
	sc.skipSpaces()
	if !strings.HasPrefix(sc.in[sc.pos:], "=>") {
		return nil, sc.errf(sc.pos, `expected "=>" in mapping type`)
	}
	sc.pos += 2
	val, err := sc.parseType()
	if err != nil {
		return nil, err
	}
	if err := sc.expect(')'); err != nil {
		return nil, err
	}
	return &Descriptor{Kind: KindMapping, Key: key, Val: val}, nil
}

func (sc *scanner) parseFunction(word string) (*Descriptor, error) {
	kind := KindFunction
	if word == "modifier" {
		kind = KindModifier
	}
	d := &Descriptor{Kind: kind}
	params, err := sc.parseList()
	if err != nil {
		return nil, err
	}
	d.Params = params
	// Visibility and mutability qualifiers sit between the parameter list
	// and the optional returns clause.
	for {
		w := sc.peekWord()
		if w == "" {
			break
		}
		sc.word()
		if w == "returns" {
			d.Returns, err = sc.parseList()
			if err != nil {
				return nil, err
			}
			break
		}
		d.Qualifiers = append(d.Qualifiers, w)
	}
	return d, nil
}

func (sc *scanner) parseTuple() (*Descriptor, error) {
	elems, err := sc.parseList()
	if err != nil {
		return nil, err
	}
	return &Descriptor{Kind: KindTuple, Params: elems}, nil
}

func (sc *scanner) parseMeta() (*Descriptor, error) {
	if err := sc.expect('('); err != nil {
		return nil, err
	}
	inner, err := sc.parseType()
	if err != nil {
		return nil, err
	}
	if err := sc.expect(')'); err != nil {
		return nil, err
	}
	return &Descriptor{Kind: KindMeta, Elem: inner}, nil
}

// parseList consumes a parenthesized, comma-separated type list, which may
// be empty.
func (sc *scanner) parseList() ([]*Descriptor, error) {
	if err := sc.expect('('); err != nil {
		return nil, err
	}
	sc.skipSpaces()
	if sc.peek() == ')' {
		sc.pos++
		return nil, nil
	}
	var list []*Descriptor
	for {
		d, err := sc.parseType()
		if err != nil {
			return nil, err
		}
		list = append(list, d)
		sc.skipSpaces()
		switch sc.peek() {
		case ',':
			sc.pos++
		case ')':
			sc.pos++
			return list, nil
		default:
			return nil, sc.errf(sc.pos, `expected "," or ")" in type list`)
		}
	}
}

func (sc *scanner) scanArrayLength() (string, error) {
	sc.skipSpaces()
	start := sc.pos
	for !sc.eof() && sc.in[sc.pos] != ']' {
		sc.pos++
	}
	if sc.eof() {
		return "", sc.errf(start, "unterminated array length")
	}
	length := strings.TrimSpace(sc.in[start:sc.pos])
	sc.pos++
	return length, nil
}

// scanLiteralValue consumes the payload of a constant type verbatim, up to
// the next list delimiter at the current nesting level. Quoted strings and
// the compiler's parenthesized digit-elision markers ("...(22 digits
// omitted)...") are kept intact.
func (sc *scanner) scanLiteralValue() string {
	sc.skipSpaces()
	start := sc.pos
	depth := 0
	for !sc.eof() {
		switch c := sc.in[sc.pos]; c {
		case '"':
			sc.pos++
			for !sc.eof() && sc.in[sc.pos] != '"' {
				if sc.in[sc.pos] == '\\' && sc.pos+1 < len(sc.in) {
					sc.pos++
				}
				sc.pos++
			}
			if !sc.eof() {
				sc.pos++
			}
		case '(':
			depth++
			sc.pos++
		case ')':
			if depth == 0 {
				return strings.TrimRight(sc.in[start:sc.pos], " ")
			}
			depth--
			sc.pos++
		case ',', ']':
			if depth == 0 {
				return strings.TrimRight(sc.in[start:sc.pos], " ")
			}
			sc.pos++
		default:
			sc.pos++
		}
	}
	return strings.TrimRight(sc.in[start:sc.pos], " ")
}
