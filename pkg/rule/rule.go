package rule

import (
	"fmt"

	"github.com/goliatone/go-replacer/pkg/ident"
)

// Kind discriminates the closed set of rule variants. The set is fixed by the
// marker grammar; new kinds require a matching marker syntax in pkg/template.
type Kind string

const (
	// KindString replaces `$$key$$` markers with the payload verbatim.
	KindString Kind = "string"
	// KindType replaces `NS::rust_type!(key; fallback;)` markers with a
	// type token.
	KindType Kind = "type"
	// KindExpr replaces `NS::rust_expr!(key; fallback;)` markers with an
	// expression.
	KindExpr Kind = "expr"
	// KindStruct replaces `NS::rust_struct!(key; Name {...};)` markers with
	// a struct definition.
	KindStruct Kind = "struct"
)

// Valid reports whether k names a known rule kind.
func (k Kind) Valid() bool {
	switch k {
	case KindString, KindType, KindExpr, KindStruct:
		return true
	}
	return false
}

// Rule is an immutable binding from a placeholder key to a replacement
// payload. Construct rules with NewString, NewType, NewExpr, or NewStruct;
// the zero value is not a usable rule.
type Rule struct {
	kind  Kind
	key   string
	value string
}

// Key returns the placeholder key the rule binds.
func (r Rule) Key() string { return r.key }

// Kind returns the rule's variant.
func (r Rule) Kind() Kind { return r.kind }

// Render returns the exact text spliced over a matching marker. Struct rules
// render with the `struct ` keyword prepended; the engine adds `pub ` when
// the matched marker carried the modifier.
func (r Rule) Render() string {
	if r.kind == KindStruct {
		return "struct " + r.value
	}
	return r.value
}

// Value returns the raw payload as supplied to the constructor.
func (r Rule) Value() string { return r.value }

// IsZero reports whether r was never constructed.
func (r Rule) IsZero() bool { return r.kind == "" }

func (r Rule) String() string {
	return fmt.Sprintf("%s(%s)", r.kind, r.key)
}

// NewString binds key to a verbatim replacement string. The value is stored
// and substituted as-is with no escaping; it must be non-empty.
func NewString(key, value string) (Rule, error) {
	if err := validateKey(KindString, key); err != nil {
		return Rule{}, err
	}
	if value == "" {
		return Rule{}, fmt.Errorf("rule: string rule %q: %w", key, ErrEmptyValue)
	}
	return Rule{kind: KindString, key: key, value: value}, nil
}

// NewType binds key to a type token such as `std::path::PathBuf` or
// `Map<i32, String>`. The value is checked against the type-token grammar.
func NewType(key, value string) (Rule, error) {
	if err := validateKey(KindType, key); err != nil {
		return Rule{}, err
	}
	if err := ident.ValidateTypeToken(value); err != nil {
		return Rule{}, fmt.Errorf("rule: type rule %q: %w: %w", key, ErrInvalidType, err)
	}
	return Rule{kind: KindType, key: key, value: value}, nil
}

// NewExpr binds key to free-form expression text, e.g. `1 + 1`.
func NewExpr(key, value string) (Rule, error) {
	if err := validateKey(KindExpr, key); err != nil {
		return Rule{}, err
	}
	if value == "" {
		return Rule{}, fmt.Errorf("rule: expr rule %q: %w", key, ErrEmptyValue)
	}
	return Rule{kind: KindExpr, key: key, value: value}, nil
}

// NewStruct binds key to a struct literal such as
// `Point2D { x: i32, y: i32 }`. Render prepends the `struct` keyword.
func NewStruct(key, value string) (Rule, error) {
	if err := validateKey(KindStruct, key); err != nil {
		return Rule{}, err
	}
	if value == "" {
		return Rule{}, fmt.Errorf("rule: struct rule %q: %w", key, ErrEmptyValue)
	}
	return Rule{kind: KindStruct, key: key, value: value}, nil
}

// New dispatches to the kind-specific constructor. Used by manifest loading
// where the kind arrives as data.
func New(kind Kind, key, value string) (Rule, error) {
	switch kind {
	case KindString:
		return NewString(key, value)
	case KindType:
		return NewType(key, value)
	case KindExpr:
		return NewExpr(key, value)
	case KindStruct:
		return NewStruct(key, value)
	default:
		return Rule{}, fmt.Errorf("rule: unknown kind %q", kind)
	}
}

// MustString panics on construction failure. Useful for init-time wiring.
func MustString(key, value string) Rule { return must(NewString(key, value)) }

// MustType panics on construction failure. Useful for init-time wiring.
func MustType(key, value string) Rule { return must(NewType(key, value)) }

// MustExpr panics on construction failure. Useful for init-time wiring.
func MustExpr(key, value string) Rule { return must(NewExpr(key, value)) }

// MustStruct panics on construction failure. Useful for init-time wiring.
func MustStruct(key, value string) Rule { return must(NewStruct(key, value)) }

func must(r Rule, err error) Rule {
	if err != nil {
		panic(err)
	}
	return r
}

func validateKey(kind Kind, key string) error {
	if err := ident.Validate(key); err != nil {
		return fmt.Errorf("rule: %s rule: %w: %w", kind, ErrInvalidKey, err)
	}
	return nil
}
