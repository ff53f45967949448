// Package rule defines the substitution rules a template can apply. A rule
// binds a placeholder key to a replacement payload of a fixed Kind (string,
// type, expr, or struct) and validates both at construction time, so applying
// a template never has to re-check payloads.
package rule
