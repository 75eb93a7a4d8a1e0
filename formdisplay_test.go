package formdisplay

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formdisplay/pkg/display"
	"github.com/goliatone/go-formdisplay/pkg/orchestrator"
	"github.com/goliatone/go-formdisplay/pkg/testsupport"
)

var fixturePath = filepath.Join("pkg", "testsupport", "testdata", "core.entity_form_display.node.article.default.yml")

func TestParseGenerateRoundTrip(t *testing.T) {
	doc := testsupport.LoadDisplay(t, fixturePath)

	m, err := Parse(doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if m.TargetEntityType != "node" || m.Bundle != "article" || m.Mode != "default" {
		t.Fatalf("target = %s/%s/%s, want node/article/default", m.TargetEntityType, m.Bundle, m.Mode)
	}

	out := Generate(m)
	if out.ID != doc.ID || out.UUID != doc.UUID {
		t.Errorf("identity = %s/%s, want %s/%s", out.ID, out.UUID, doc.ID, doc.UUID)
	}

	// a second pass through the engine is a fixed point
	again, err := Parse(out)
	if err != nil {
		t.Fatalf("parse regenerated: %v", err)
	}
	if diff := cmp.Diff(m, again); diff != "" {
		t.Fatalf("model changed across generate/parse (-want +got):\n%s", diff)
	}
}

func TestRenderTree(t *testing.T) {
	out, err := RenderTree(context.Background(), display.SourceFromFile(fixturePath))
	if err != nil {
		t.Fatalf("render tree: %v", err)
	}

	text := string(out)
	for _, want := range []string{
		"node.article (default)",
		"group_tabs [tabs]",
		"title (string_textfield)",
		"Hidden: field_legacy_ref",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("tree output missing %q\ngot:\n%s", want, text)
		}
	}
}

func TestApplyOperations(t *testing.T) {
	m, err := ApplyOperations(context.Background(), display.SourceFromFile(fixturePath),
		orchestrator.MoveField("field_tags", "group_content"),
		orchestrator.Reorder("group_content", "field_tags", "title", "body"),
	)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	want := []string{"field_tags", "title", "body"}
	if diff := cmp.Diff(want, m.Group("group_content").Children); diff != "" {
		t.Fatalf("children mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreRoundTripThroughFacade(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	doc := Generate(testsupport.ArticleModel())
	if err := store.Write(ctx, doc); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := store.Read(ctx, "node", "article", "default")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if diff := cmp.Diff(doc, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestNewLoaderReadsFixture(t *testing.T) {
	loader := NewLoader(display.LoaderOptions{})

	doc, err := loader.Load(context.Background(), display.SourceFromFile(fixturePath))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	decoded, err := doc.Decode()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.ID != "node.article.default" {
		t.Fatalf("id = %q, want node.article.default", decoded.ID)
	}
}
