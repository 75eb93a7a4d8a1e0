package loader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formdisplay/pkg/display"
)

const minimalDoc = "targetEntityType: node\nbundle: article\nmode: default\n"

func TestLoader_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "display.yml")
	if err := os.WriteFile(path, []byte(minimalDoc), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	l := New(display.LoaderOptions{})
	doc, err := l.Load(context.Background(), display.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != minimalDoc {
		t.Fatalf("payload = %q, want fixture contents", doc.Raw())
	}
	if doc.Source().Kind() != display.SourceKindFile {
		t.Errorf("kind = %q, want file", doc.Source().Kind())
	}
}

func TestLoader_FileMissing(t *testing.T) {
	l := New(display.LoaderOptions{})
	if _, err := l.Load(context.Background(), display.SourceFromFile(filepath.Join(t.TempDir(), "nope.yml"))); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoader_FS(t *testing.T) {
	files := fstest.MapFS{
		"displays/display.yml": {Data: []byte(minimalDoc)},
	}

	l := New(display.LoaderOptions{FileSystem: files})
	doc, err := l.Load(context.Background(), display.SourceFromFS("displays/display.yml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != minimalDoc {
		t.Fatalf("payload = %q, want fixture contents", doc.Raw())
	}
}

func TestLoader_RejectsNonYAMLPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "display.json")
	if err := os.WriteFile(path, []byte(minimalDoc), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	l := New(display.LoaderOptions{FileSystem: fstest.MapFS{
		"display.txt": {Data: []byte(minimalDoc)},
	}})
	if _, err := l.Load(context.Background(), display.SourceFromFile(path)); err == nil {
		t.Fatal("expected error for non-yaml file path")
	}
	if _, err := l.Load(context.Background(), display.SourceFromFS("display.txt")); err == nil {
		t.Fatal("expected error for non-yaml fs entry")
	}
}

func TestLoader_FSNotConfigured(t *testing.T) {
	l := New(display.LoaderOptions{})
	if _, err := l.Load(context.Background(), display.SourceFromFS("display.yml")); err == nil {
		t.Fatal("expected error when no fs is configured")
	}
}

func TestLoader_HTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(minimalDoc))
	}))
	defer server.Close()

	l := New(display.LoaderOptions{HTTPClient: server.Client()})
	doc, err := l.Load(context.Background(), display.SourceFromURL(server.URL+"/display.yml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != minimalDoc {
		t.Fatalf("payload = %q, want fixture contents", doc.Raw())
	}
}

func TestLoader_HTTPErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	l := New(display.LoaderOptions{AllowHTTPFallback: true})
	if _, err := l.Load(context.Background(), display.SourceFromURL(server.URL)); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestLoader_HTTPDisabledByDefault(t *testing.T) {
	l := New(display.LoaderOptions{})
	if _, err := l.Load(context.Background(), display.SourceFromURL("https://example.com/display.yml")); err == nil {
		t.Fatal("expected error when http support is disabled")
	}
}

func TestLoader_NilSource(t *testing.T) {
	l := New(display.LoaderOptions{})
	if _, err := l.Load(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil source")
	}
}

func TestLoader_ContextCancelled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "display.yml")
	if err := os.WriteFile(path, []byte(minimalDoc), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := New(display.LoaderOptions{})
	if _, err := l.Load(ctx, display.SourceFromFile(path)); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
