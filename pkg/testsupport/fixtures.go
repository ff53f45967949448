package testsupport

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-replacer/pkg/manifest"
)

// ReadFixture reads a testdata file. Testing helpers fail fatally to keep
// contract tests concise.
func ReadFixture(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return string(data)
}

// LoadManifest parses a manifest fixture from disk.
func LoadManifest(t *testing.T, path string) manifest.Manifest {
	t.Helper()

	m, err := LoadManifestFromPath(path)
	if err != nil {
		t.Fatalf("load manifest: %v", err)
	}
	return m
}

// LoadManifestFromPath returns a Manifest without requiring testing.T,
// allowing callers to wire fixtures in setup functions.
func LoadManifestFromPath(path string) (manifest.Manifest, error) {
	if path == "" {
		return manifest.Manifest{}, errors.New("testsupport: manifest path is required")
	}

	m, err := manifest.Load(manifest.SourceFromFile(path), nil)
	if err != nil {
		return manifest.Manifest{}, fmt.Errorf("testsupport: load manifest: %w", err)
	}
	return m, nil
}

// DiffStrings fails the test when got differs from want, printing a cmp diff
// that keeps whole-file comparisons readable.
func DiffStrings(t *testing.T, want, got string) {
	t.Helper()

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}
