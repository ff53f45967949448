// Package manifest loads rule sets from declarative YAML or JSON documents,
// so the bindings for a template can live next to the template file instead
// of in code. A manifest lists rule entries (kind, key, value) and an
// optional macro namespace; parsing constructs each rule through pkg/rule,
// so every payload is validated before a Template is ever built.
package manifest
