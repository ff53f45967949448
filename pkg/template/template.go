package template

import (
	"strings"

	"github.com/goliatone/go-replacer/pkg/rule"
)

// Template holds a frozen rule set. It is immutable after Build, so Apply
// and Inspect may be called concurrently and any number of times, each call
// scanning its input independently.
type Template struct {
	namespace string
	byKind    map[rule.Kind]map[string]rule.Rule
	order     []rule.Rule
}

// Namespace returns the macro namespace the template recognizes.
func (t *Template) Namespace() string { return t.namespace }

// Rules returns the frozen rule set in insertion order.
func (t *Template) Rules() []rule.Rule {
	out := make([]rule.Rule, len(t.order))
	copy(out, t.order)
	return out
}

// Apply substitutes every marker in text and returns the resolved output.
// The scan is a single left-to-right pass: rendered text is never re-scanned,
// text outside markers is copied through unchanged, and the first unresolved,
// mismatched, or malformed marker aborts the call with no partial output.
func (t *Template) Apply(text string) (string, error) {
	var out strings.Builder
	out.Grow(len(text))

	sc := newScanner(text, t.namespace)
	last := 0
	for {
		ph, ok, err := sc.next()
		if err != nil {
			return "", err
		}
		if !ok {
			break
		}

		r, err := t.resolve(ph)
		if err != nil {
			return "", err
		}

		out.WriteString(text[last:ph.Start])
		if ph.Exported {
			out.WriteString("pub ")
		}
		out.WriteString(r.Render())
		last = ph.End
	}

	out.WriteString(text[last:])
	return out.String(), nil
}

// Inspect scans text and returns every placeholder occurrence without
// resolving rules. It fails only on malformed markers, which makes it
// suitable for auditing a template before the rule set is complete.
func (t *Template) Inspect(text string) ([]Placeholder, error) {
	var found []Placeholder
	sc := newScanner(text, t.namespace)
	for {
		ph, ok, err := sc.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return found, nil
		}
		found = append(found, ph)
	}
}

// Bound reports whether a rule exists for the given kind and key.
func (t *Template) Bound(kind rule.Kind, key string) bool {
	_, ok := t.byKind[kind][key]
	return ok
}

func (t *Template) resolve(ph Placeholder) (rule.Rule, error) {
	if r, ok := t.byKind[ph.Kind][ph.Key]; ok {
		return r, nil
	}
	for kind, keyed := range t.byKind {
		if kind == ph.Kind {
			continue
		}
		if _, ok := keyed[ph.Key]; ok {
			return rule.Rule{}, &KindMismatchError{Key: ph.Key, Marker: ph.Kind, Offset: ph.Start}
		}
	}
	return rule.Rule{}, &UnresolvedPlaceholderError{Key: ph.Key, Kind: ph.Kind, Offset: ph.Start}
}
