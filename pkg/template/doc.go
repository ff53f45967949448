// Package template implements the scan → match → substitute pipeline. A
// Builder accumulates rules and freezes them into an immutable Template; the
// Template walks input text once, left to right, replacing every recognized
// marker with its bound rule's rendering. Substituted text is never
// re-scanned, a recognized marker without a bound rule is an error rather
// than a pass-through, and a failed Apply returns no partial output.
package template
