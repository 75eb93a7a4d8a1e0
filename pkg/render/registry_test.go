package render

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formdisplay/pkg/model"
)

type stubRenderer struct {
	name string
}

func (s *stubRenderer) Name() string {
	return s.name
}

func (s *stubRenderer) ContentType() string {
	return "text/plain"
}

func (s *stubRenderer) Render(ctx context.Context, m model.Model, options Options) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	renderer := &stubRenderer{name: "tree"}

	if err := registry.Register(renderer); err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := registry.Get("tree")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != renderer {
		t.Fatal("registry returned a different renderer")
	}
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(&stubRenderer{name: "tree"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register(&stubRenderer{name: "tree"}); err == nil {
		t.Fatal("expected error for duplicate name")
	}
}

func TestRegistry_RejectsInvalid(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(nil); err == nil {
		t.Fatal("expected error for nil renderer")
	}
	if err := registry.Register(&stubRenderer{}); err == nil {
		t.Fatal("expected error for empty name")
	}
}

func TestRegistry_RegisterMany(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(&stubRenderer{name: "tree"}, &stubRenderer{name: "html"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if diff := cmp.Diff([]string{"html", "tree"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	registry := NewRegistry()
	_, err := registry.Get("missing")
	if !errors.Is(err, ErrUnknownRenderer) {
		t.Fatalf("expected ErrUnknownRenderer, got %v", err)
	}
}

func TestRegistry_ListSorted(t *testing.T) {
	registry := NewRegistry()
	for _, name := range []string{"markdown", "html", "tree"} {
		registry.MustRegister(&stubRenderer{name: name})
	}

	if diff := cmp.Diff([]string{"html", "markdown", "tree"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if !registry.Has("markdown") {
		t.Error("Has(markdown) = false, want true")
	}
	if registry.Has("pdf") {
		t.Error("Has(pdf) = true, want false")
	}
}
