package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-replacer/pkg/rule"
)

const sampleDoc = `
namespace: replacer
rules:
  - kind: string
    key: replace_with_world
    value: world
  - kind: type
    key: replace_with_type
    value: std::path::PathBuf
  - kind: expr
    key: answer
    value: 40 + 2
`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m.Namespace != "replacer" {
		t.Fatalf("Namespace = %q", m.Namespace)
	}
	if len(m.Rules) != 3 {
		t.Fatalf("Parse produced %d rules, want 3", len(m.Rules))
	}
	if m.Rules[0].Kind() != rule.KindString || m.Rules[0].Key() != "replace_with_world" {
		t.Fatalf("unexpected first rule %v", m.Rules[0])
	}
	if m.Rules[1].Kind() != rule.KindType {
		t.Fatalf("unexpected second rule %v", m.Rules[1])
	}
}

func TestParseJSONDocument(t *testing.T) {
	// yaml.v3 accepts JSON, so manifests can be written either way.
	doc := `{"rules": [{"kind": "string", "key": "name", "value": "alpha"}]}`
	m, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(m.Rules) != 1 || m.Rules[0].Value() != "alpha" {
		t.Fatalf("unexpected rules %v", m.Rules)
	}
}

func TestParseRejectsUnknownKind(t *testing.T) {
	doc := `
rules:
  - kind: macro
    key: k
    value: v
`
	_, err := Parse([]byte(doc))
	if err == nil || !strings.Contains(err.Error(), `unknown kind "macro"`) {
		t.Fatalf("Parse error = %v, want unknown kind", err)
	}
	if !strings.Contains(err.Error(), "rule 0") {
		t.Fatalf("Parse error %v does not name the entry index", err)
	}
}

func TestParseRejectsInvalidRule(t *testing.T) {
	doc := `
rules:
  - kind: string
    key: bad key
    value: v
`
	_, err := Parse([]byte(doc))
	if !errors.Is(err, rule.ErrInvalidKey) {
		t.Fatalf("Parse error = %v, want ErrInvalidKey", err)
	}
}

func TestParseRejectsDuplicateEntries(t *testing.T) {
	doc := `
rules:
  - kind: string
    key: name
    value: first
  - kind: string
    key: name
    value: second
`
	_, err := Parse([]byte(doc))
	if err == nil || !strings.Contains(err.Error(), "duplicates") {
		t.Fatalf("Parse error = %v, want duplicate entry error", err)
	}
}

func TestParseRejectsEmptyDocuments(t *testing.T) {
	if _, err := Parse(nil); err == nil {
		t.Fatal("Parse(nil) succeeded")
	}
	if _, err := Parse([]byte("namespace: x\n")); err == nil {
		t.Fatal("Parse with no rules succeeded")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte(sampleDoc), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	m, err := Load(SourceFromFile(path), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(m.Rules) != 3 {
		t.Fatalf("Load produced %d rules", len(m.Rules))
	}
}

func TestLoadFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"rules.yaml": {Data: []byte(sampleDoc)},
	}
	m, err := Load(SourceFromFS("rules.yaml"), fsys)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(m.Rules) != 3 {
		t.Fatalf("Load produced %d rules", len(m.Rules))
	}

	if _, err := Load(SourceFromFS("rules.yaml"), nil); err == nil {
		t.Fatal("Load with fs source and nil filesystem succeeded")
	}
}

func TestLoadFromBytes(t *testing.T) {
	m, err := Load(SourceFromBytes([]byte(sampleDoc)), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(m.Rules) != 3 {
		t.Fatalf("Load produced %d rules", len(m.Rules))
	}
}

func TestManifestTemplate(t *testing.T) {
	doc := `
namespace: mylib
rules:
  - kind: type
    key: replace
    value: i32
`
	m, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	tpl := m.Template()
	got, err := tpl.Apply("let x: mylib::rust_type!(replace; String;) = 0;")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got != "let x: i32 = 0;" {
		t.Fatalf("Apply = %q", got)
	}
}
