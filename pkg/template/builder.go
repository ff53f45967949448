package template

import (
	"fmt"

	"github.com/goliatone/go-replacer/pkg/ident"
	"github.com/goliatone/go-replacer/pkg/rule"
)

// DefaultNamespace is the macro head namespace recognized unless overridden
// with WithNamespace. Raw templates written for the reference wrapper crate
// parse out of the box.
const DefaultNamespace = "replacer"

// Option configures a Builder.
type Option func(*Builder)

// WithNamespace overrides the macro namespace, so markers read
// `ns::rust_type!(...)`. It panics on an invalid identifier to surface
// wiring mistakes early.
func WithNamespace(ns string) Option {
	if err := ident.Validate(ns); err != nil {
		panic(fmt.Sprintf("template: invalid namespace %q: %v", ns, err))
	}
	return func(b *Builder) {
		b.namespace = ns
	}
}

// Builder accumulates rules and freezes them into a Template. It is a
// single-owner staging object: the fluent Rule call never fails, and Build
// always succeeds because every rule was validated at construction. Builders
// are not safe for concurrent mutation.
type Builder struct {
	namespace string
	rules     []rule.Rule
	index     map[string]int
}

// NewBuilder returns an empty accumulator.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		namespace: DefaultNamespace,
		index:     make(map[string]int),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Rule appends r. A later rule with the same kind and key replaces the
// earlier one (last-write-wins) so the chain stays total; rules sharing a
// key across different kinds coexist. Zero-value rules are ignored.
func (b *Builder) Rule(r rule.Rule) *Builder {
	if r.IsZero() {
		return b
	}

	slot := string(r.Kind()) + "/" + r.Key()
	if at, exists := b.index[slot]; exists {
		b.rules[at] = r
		return b
	}
	b.index[slot] = len(b.rules)
	b.rules = append(b.rules, r)
	return b
}

// Rules appends every rule in order, with the same merge semantics as Rule.
func (b *Builder) Rules(rules ...rule.Rule) *Builder {
	for _, r := range rules {
		b.Rule(r)
	}
	return b
}

// Build freezes the accumulated rule set into an immutable Template. The
// builder itself remains usable; each Build call snapshots the current set.
func (b *Builder) Build() *Template {
	byKind := make(map[rule.Kind]map[string]rule.Rule)
	order := make([]rule.Rule, len(b.rules))
	copy(order, b.rules)

	for _, r := range order {
		keyed := byKind[r.Kind()]
		if keyed == nil {
			keyed = make(map[string]rule.Rule)
			byKind[r.Kind()] = keyed
		}
		keyed[r.Key()] = r
	}

	return &Template{
		namespace: b.namespace,
		byKind:    byKind,
		order:     order,
	}
}
