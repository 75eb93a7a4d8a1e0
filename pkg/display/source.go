package display

import (
	"fmt"
	"net/url"
	"path/filepath"
)

// Source names the origin of a display document. Loaders switch on Kind to
// pick a fetch strategy; Location is the kind-specific address (a file path,
// an fs.FS entry name, or a URL).
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader strategies.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// source is the single value type behind every constructor. Sources carry no
// behaviour beyond identity, so one struct covers all kinds.
type source struct {
	kind     SourceKind
	location string
}

func (s source) Kind() SourceKind { return s.kind }

func (s source) Location() string { return s.location }

// SourceFromFile returns a Source addressing a display document on disk.
// The path is cleaned but not checked for existence; that is the loader's
// job.
func SourceFromFile(path string) Source {
	return source{kind: SourceKindFile, location: filepath.Clean(path)}
}

// SourceFromFS returns a Source addressing an entry inside the fs.FS the
// loader was configured with.
func SourceFromFS(name string) Source {
	return source{kind: SourceKindFS, location: name}
}

// SourceFromURL returns a Source addressing a document served over HTTP.
// An unparseable URL panics: sources are built from configuration, and a
// bad one should surface at startup rather than on first load.
func SourceFromURL(raw string) Source {
	if raw == "" {
		panic("display: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		panic(fmt.Sprintf("display: invalid URL %q: %v", raw, err))
	}
	return source{kind: SourceKindURL, location: raw}
}
