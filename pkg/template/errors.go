package template

import (
	"fmt"

	"github.com/goliatone/go-replacer/pkg/rule"
)

// UnresolvedPlaceholderError reports a recognized marker whose key has no
// bound rule. The embedded fallback token of macro markers exists only to
// keep raw templates compilable; it is never used as an implicit default, so
// an unbound key always fails.
type UnresolvedPlaceholderError struct {
	Key    string
	Kind   rule.Kind
	Offset int
}

func (e *UnresolvedPlaceholderError) Error() string {
	return fmt.Sprintf("template: unresolved placeholder %q (%s marker at offset %d)", e.Key, e.Kind, e.Offset)
}

// KindMismatchError reports a marker whose key is bound in the rule set, but
// only under a different kind than the marker syntax used.
type KindMismatchError struct {
	Key    string
	Marker rule.Kind
	Offset int
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("template: placeholder %q at offset %d is written as a %s marker but is bound under a different kind", e.Key, e.Offset, e.Marker)
}

// MalformedMarkerError reports a marker opener whose closing form is missing
// or unparsable. Offset is the byte position of the opener.
type MalformedMarkerError struct {
	Kind   rule.Kind
	Offset int
	Reason string
}

func (e *MalformedMarkerError) Error() string {
	return fmt.Sprintf("template: malformed %s marker at offset %d: %s", e.Kind, e.Offset, e.Reason)
}
