package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-replacer/pkg/rule"
	"github.com/goliatone/go-replacer/pkg/template"
)

// Manifest is a parsed rule document: an optional macro namespace and the
// rules it declares, in document order.
type Manifest struct {
	Namespace string
	Rules     []rule.Rule
}

// document mirrors the on-disk YAML/JSON shape.
type document struct {
	Namespace string  `yaml:"namespace"`
	Rules     []entry `yaml:"rules"`
}

type entry struct {
	Kind  string `yaml:"kind"`
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// Parse decodes a manifest document and constructs its rules. Every entry is
// validated through the pkg/rule constructors; failures are reported with the
// entry index so the offending line is easy to find. Duplicate (kind, key)
// pairs are rejected here — unlike the builder's last-write-wins merge, a
// declarative document repeating itself is a mistake worth surfacing.
func Parse(data []byte) (Manifest, error) {
	if len(data) == 0 {
		return Manifest{}, errors.New("manifest: document is empty")
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Manifest{}, fmt.Errorf("manifest: decode: %w", err)
	}
	if len(doc.Rules) == 0 {
		return Manifest{}, errors.New("manifest: document declares no rules")
	}

	m := Manifest{Namespace: strings.TrimSpace(doc.Namespace)}
	seen := make(map[string]int, len(doc.Rules))

	for i, e := range doc.Rules {
		kind := rule.Kind(strings.TrimSpace(e.Kind))
		if !kind.Valid() {
			return Manifest{}, fmt.Errorf("manifest: rule %d: unknown kind %q", i, e.Kind)
		}

		r, err := rule.New(kind, strings.TrimSpace(e.Key), e.Value)
		if err != nil {
			return Manifest{}, fmt.Errorf("manifest: rule %d: %w", i, err)
		}

		slot := string(r.Kind()) + "/" + r.Key()
		if at, dup := seen[slot]; dup {
			return Manifest{}, fmt.Errorf("manifest: rule %d duplicates %s rule %q (rule %d)", i, r.Kind(), r.Key(), at)
		}
		seen[slot] = i
		m.Rules = append(m.Rules, r)
	}

	return m, nil
}

// Load resolves src and parses the document. The fsys argument is consulted
// only for SourceKindFS and may be nil otherwise.
func Load(src Source, fsys fs.FS) (Manifest, error) {
	if src == nil {
		return Manifest{}, errors.New("manifest: source is required")
	}

	var (
		data []byte
		err  error
	)
	switch src.Kind() {
	case SourceKindFile:
		data, err = os.ReadFile(src.Location())
	case SourceKindFS:
		if fsys == nil {
			return Manifest{}, errors.New("manifest: fs source requires a filesystem")
		}
		data, err = fs.ReadFile(fsys, src.Location())
	case SourceKindBytes:
		data = src.(bytesSource).data
	default:
		return Manifest{}, fmt.Errorf("manifest: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return Manifest{}, fmt.Errorf("manifest: read %s: %w", src.Location(), err)
	}

	return Parse(data)
}

// Template builds a frozen Template from the manifest's rules. The manifest
// namespace, when present, is applied first so explicit options can still
// override it.
func (m Manifest) Template(opts ...template.Option) *template.Template {
	var all []template.Option
	if m.Namespace != "" {
		all = append(all, template.WithNamespace(m.Namespace))
	}
	all = append(all, opts...)

	return template.NewBuilder(all...).
		Rules(m.Rules...).
		Build()
}
