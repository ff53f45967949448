package manifest

import "path/filepath"

// Source identifies where a manifest document originated, so loaders can
// operate on files, fs.FS entries, or in-memory payloads without leaking
// implementation details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile  SourceKind = "file"
	SourceKindFS    SourceKind = "fs"
	SourceKindBytes SourceKind = "bytes"
)

// fileSource identifies on-disk manifests.
type fileSource struct {
	path string
}

func (s fileSource) Location() string { return s.path }
func (s fileSource) Kind() SourceKind { return SourceKindFile }

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

// fsSource references a path within an fs.FS.
type fsSource struct {
	name string
}

func (s fsSource) Location() string { return s.name }
func (s fsSource) Kind() SourceKind { return SourceKindFS }

// SourceFromFS returns a Source identifying a resource inside an fs.FS
// passed to Load.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

// bytesSource carries an in-memory document.
type bytesSource struct {
	data []byte
}

func (s bytesSource) Location() string { return "<bytes>" }
func (s bytesSource) Kind() SourceKind { return SourceKindBytes }

// SourceFromBytes wraps an in-memory manifest payload.
func SourceFromBytes(data []byte) Source {
	clone := append([]byte(nil), data...)
	return bytesSource{data: clone}
}
