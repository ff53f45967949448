// Package replacer turns template text containing typed placeholders into a
// fully resolved string by applying validated substitution rules. Templates
// stay compilable in their raw form: string markers (`$$key$$`) sit inside
// string literals, while macro markers such as
// `replacer::rust_type!(key; fallback;)` carry a fallback token that keeps
// the unprocessed file parseable. The fallback is informational only — a
// marker whose key has no bound rule is always an error.
//
// The root package re-exports the pieces most callers need; the full
// surfaces live in pkg/rule, pkg/template, and pkg/manifest.
package replacer

import (
	"github.com/goliatone/go-replacer/pkg/rule"
	"github.com/goliatone/go-replacer/pkg/template"
)

// Rule is a validated binding from a placeholder key to a replacement
// payload, aliased from pkg/rule.
type Rule = rule.Rule

// Kind discriminates rule variants.
type Kind = rule.Kind

// Template is an immutable, reusable holder of a frozen rule set.
type Template = template.Template

// Builder accumulates rules into a Template.
type Builder = template.Builder

// Placeholder is one marker occurrence reported by Template.Inspect.
type Placeholder = template.Placeholder

// Rule kinds, re-exported for callers constructing rules dynamically.
const (
	KindString = rule.KindString
	KindType   = rule.KindType
	KindExpr   = rule.KindExpr
	KindStruct = rule.KindStruct
)

// NewBuilder starts an empty rule accumulator.
func NewBuilder(opts ...template.Option) *template.Builder {
	return template.NewBuilder(opts...)
}

// WithNamespace overrides the macro namespace recognized by the built
// template.
func WithNamespace(ns string) template.Option {
	return template.WithNamespace(ns)
}

// StringRule binds key to a verbatim replacement string.
func StringRule(key, value string) (Rule, error) {
	return rule.NewString(key, value)
}

// TypeRule binds key to a type token such as `std::path::PathBuf`.
func TypeRule(key, value string) (Rule, error) {
	return rule.NewType(key, value)
}

// ExprRule binds key to expression text such as `1 + 1`.
func ExprRule(key, value string) (Rule, error) {
	return rule.NewExpr(key, value)
}

// StructRule binds key to a struct literal; substitution renders it with the
// `struct` keyword (and `pub` when the marker carries the modifier).
func StructRule(key, value string) (Rule, error) {
	return rule.NewStruct(key, value)
}

// Apply is a convenience wrapper for one-off substitutions: it builds a
// template from the supplied rules and applies it to text.
func Apply(text string, rules ...Rule) (string, error) {
	return NewBuilder().Rules(rules...).Build().Apply(text)
}
