package ident

import "fmt"

// InvalidIdentifierError reports why a candidate identifier or type token was
// rejected. Callers match it with errors.As to recover the offending input.
type InvalidIdentifierError struct {
	Input  string
	Reason string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("ident: invalid identifier %q: %s", e.Input, e.Reason)
}

// Validate checks that s is a well-formed placeholder key: non-empty, only
// letters, digits, and underscores, and not starting with a digit.
func Validate(s string) error {
	if s == "" {
		return &InvalidIdentifierError{Input: s, Reason: "empty"}
	}
	if isDigit(rune(s[0])) {
		return &InvalidIdentifierError{Input: s, Reason: "starts with a digit"}
	}
	for _, r := range s {
		if !IsIdentRune(r) {
			return &InvalidIdentifierError{Input: s, Reason: fmt.Sprintf("character %q is not allowed", r)}
		}
	}
	return nil
}

// ValidateTypeToken checks a type payload against the relaxed type-token
// grammar: identifier characters plus the punctuation needed for paths,
// generics, references, and tuples (`::`, `<>`, `,`, `'`, `&`, `[]`, `()`,
// and spaces). The token must contain at least one identifier character and
// its first identifier character must not be a digit, so values such as
// `std::path::PathBuf`, `Rectangle<'a>`, or `&'a Point2D` pass while `3D`
// and `foo;bar` do not.
func ValidateTypeToken(s string) error {
	if s == "" {
		return &InvalidIdentifierError{Input: s, Reason: "empty"}
	}
	sawIdent := false
	for _, r := range s {
		switch {
		case IsIdentRune(r):
			if !sawIdent && isDigit(r) {
				return &InvalidIdentifierError{Input: s, Reason: "type name starts with a digit"}
			}
			sawIdent = true
		case isTypePunct(r):
			// allowed connective punctuation
		default:
			return &InvalidIdentifierError{Input: s, Reason: fmt.Sprintf("character %q is not allowed in a type token", r)}
		}
	}
	if !sawIdent {
		return &InvalidIdentifierError{Input: s, Reason: "no identifier characters"}
	}
	return nil
}

// IsIdentRune reports whether r may appear in a placeholder key.
func IsIdentRune(r rune) bool {
	return r == '_' || isDigit(r) ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isTypePunct(r rune) bool {
	switch r {
	case '<', '>', ':', ',', '\'', '&', '[', ']', '(', ')', ' ', '\t':
		return true
	}
	return false
}
