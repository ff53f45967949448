package template

import (
	"strings"

	"github.com/goliatone/go-replacer/pkg/ident"
	"github.com/goliatone/go-replacer/pkg/rule"
)

const stringDelim = "$$"

// Placeholder is one marker occurrence found while scanning template text.
// Occurrences are transient: they exist only for the duration of an Apply or
// Inspect call and reference the input by byte offsets.
type Placeholder struct {
	// Kind of marker syntax the occurrence was written in.
	Kind rule.Kind
	// Key extracted from the marker.
	Key string
	// Start and End delimit the whole marker span, delimiters included.
	Start int
	End   int
	// Exported is set for struct markers carrying the `pub` modifier.
	Exported bool
	// Fallback is the embedded fallback token of macro markers, kept for
	// inspection only. Empty for string markers.
	Fallback string
}

// scanner walks template text left to right, yielding marker occurrences.
// The macro heads are derived from the template's namespace once, up front.
type scanner struct {
	src        string
	pos        int
	typeHead   string
	exprHead   string
	structHead string
}

func newScanner(src, namespace string) *scanner {
	return &scanner{
		src:        src,
		typeHead:   namespace + "::rust_type!(",
		exprHead:   namespace + "::rust_expr!(",
		structHead: namespace + "::rust_struct!",
	}
}

// next returns the next occurrence, or ok=false once the input is exhausted.
// Any parse failure aborts the scan with a *MalformedMarkerError.
func (s *scanner) next() (Placeholder, bool, error) {
	start, kind := s.findOpener()
	if start < 0 {
		return Placeholder{}, false, nil
	}

	var (
		ph  Placeholder
		err error
	)
	switch kind {
	case rule.KindString:
		ph, err = s.parseString(start)
	case rule.KindType:
		ph, err = s.parseMacro(start, s.typeHead, rule.KindType)
	case rule.KindExpr:
		ph, err = s.parseMacro(start, s.exprHead, rule.KindExpr)
	case rule.KindStruct:
		ph, err = s.parseStruct(start)
	}
	if err != nil {
		return Placeholder{}, false, err
	}

	s.pos = ph.End
	return ph, true, nil
}

// findOpener locates the earliest marker opener at or after the current
// position. Macro fallback tokens that happen to contain `$$` are never
// misread as string markers because the macro head precedes them.
func (s *scanner) findOpener() (int, rule.Kind) {
	rest := s.src[s.pos:]

	best := -1
	kind := rule.Kind("")
	consider := func(idx int, k rule.Kind) {
		if idx < 0 {
			return
		}
		if best < 0 || idx < best {
			best, kind = idx, k
		}
	}

	consider(strings.Index(rest, stringDelim), rule.KindString)
	consider(strings.Index(rest, s.typeHead), rule.KindType)
	consider(strings.Index(rest, s.exprHead), rule.KindExpr)
	consider(strings.Index(rest, s.structHead), rule.KindStruct)

	if best < 0 {
		return -1, kind
	}
	return s.pos + best, kind
}

// parseString parses `$$key$$` starting at the opening delimiter.
func (s *scanner) parseString(start int) (Placeholder, error) {
	keyStart := start + len(stringDelim)
	keyEnd := keyStart
	for keyEnd < len(s.src) && ident.IsIdentRune(rune(s.src[keyEnd])) {
		keyEnd++
	}

	key := s.src[keyStart:keyEnd]
	if key == "" {
		return Placeholder{}, &MalformedMarkerError{Kind: rule.KindString, Offset: start, Reason: "empty key"}
	}
	if err := ident.Validate(key); err != nil {
		return Placeholder{}, &MalformedMarkerError{Kind: rule.KindString, Offset: start, Reason: err.Error()}
	}
	if !strings.HasPrefix(s.src[keyEnd:], stringDelim) {
		return Placeholder{}, &MalformedMarkerError{Kind: rule.KindString, Offset: start, Reason: "missing closing " + stringDelim}
	}

	return Placeholder{
		Kind:  rule.KindString,
		Key:   key,
		Start: start,
		End:   keyEnd + len(stringDelim),
	}, nil
}

// parseMacro parses `NS::rust_type!(key; fallback;)` and the identically
// shaped expr form, starting at the head.
func (s *scanner) parseMacro(start int, head string, kind rule.Kind) (Placeholder, error) {
	malformed := func(reason string) (Placeholder, error) {
		return Placeholder{}, &MalformedMarkerError{Kind: kind, Offset: start, Reason: reason}
	}

	pos := start + len(head)
	pos = skipBlanks(s.src, pos)

	key, pos, err := readKey(s.src, pos)
	if err != nil {
		return malformed(err.Error())
	}

	pos = skipBlanks(s.src, pos)
	if pos >= len(s.src) || s.src[pos] != ';' {
		return malformed("missing ';' after key")
	}
	pos++

	semi := strings.IndexByte(s.src[pos:], ';')
	if semi < 0 {
		return malformed("unterminated fallback token")
	}
	if semi == 0 {
		return malformed("empty fallback token")
	}
	fallback := s.src[pos : pos+semi]
	pos += semi + 1

	if pos >= len(s.src) || s.src[pos] != ')' {
		return malformed("missing closing ')'")
	}

	return Placeholder{
		Kind:     kind,
		Key:      key,
		Start:    start,
		End:      pos + 1,
		Fallback: fallback,
	}, nil
}

// parseStruct parses `NS::rust_struct!(key; Name { fields };)`, accepting
// either parentheses or braces around the invocation and an optional `pub`
// modifier before the key.
func (s *scanner) parseStruct(start int) (Placeholder, error) {
	malformed := func(reason string) (Placeholder, error) {
		return Placeholder{}, &MalformedMarkerError{Kind: rule.KindStruct, Offset: start, Reason: reason}
	}

	pos := skipWhitespace(s.src, start+len(s.structHead))
	if pos >= len(s.src) || (s.src[pos] != '(' && s.src[pos] != '{') {
		return malformed("expected '(' or '{' after macro head")
	}
	pos = skipBlanks(s.src, pos+1)

	exported := false
	if strings.HasPrefix(s.src[pos:], "pub ") {
		exported = true
		pos += len("pub ")
	}

	key, pos, err := readKey(s.src, pos)
	if err != nil {
		return malformed(err.Error())
	}

	pos = skipBlanks(s.src, pos)
	if pos >= len(s.src) || s.src[pos] != ';' {
		return malformed("missing ';' after key")
	}
	pos++

	// Placeholder struct: a name, a `{ fields }` body, then `;`.
	declStart := skipBlanks(s.src, pos)
	brace := strings.IndexByte(s.src[pos:], '{')
	if brace <= 0 {
		return malformed("missing placeholder struct body")
	}
	bodyStart := pos + brace + 1

	semi := strings.IndexByte(s.src[bodyStart:], ';')
	if semi < 1 || s.src[bodyStart+semi-1] != '}' {
		return malformed("placeholder struct body must end with '};'")
	}
	declEnd := bodyStart + semi // index of the ';' terminating the body
	pos = declEnd + 1

	if pos >= len(s.src) || (s.src[pos] != ')' && s.src[pos] != '}') {
		return malformed("missing closing ')' or '}'")
	}

	return Placeholder{
		Kind:     rule.KindStruct,
		Key:      key,
		Start:    start,
		End:      pos + 1,
		Exported: exported,
		Fallback: strings.TrimSpace(s.src[declStart:declEnd]),
	}, nil
}

// readKey consumes an identifier run at pos and validates it as a key.
func readKey(src string, pos int) (string, int, error) {
	end := pos
	for end < len(src) && ident.IsIdentRune(rune(src[end])) {
		end++
	}
	key := src[pos:end]
	if key == "" {
		return "", pos, errMissingKey
	}
	if err := ident.Validate(key); err != nil {
		return "", pos, err
	}
	return key, end, nil
}

var errMissingKey = &ident.InvalidIdentifierError{Reason: "missing key"}

func skipBlanks(src string, pos int) int {
	for pos < len(src) && (src[pos] == ' ' || src[pos] == '\t') {
		pos++
	}
	return pos
}

func skipWhitespace(src string, pos int) int {
	for pos < len(src) {
		switch src[pos] {
		case ' ', '\t', '\n', '\r':
			pos++
		default:
			return pos
		}
	}
	return pos
}
