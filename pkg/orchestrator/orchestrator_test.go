package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formdisplay/pkg/display"
	"github.com/goliatone/go-formdisplay/pkg/model"
	"github.com/goliatone/go-formdisplay/pkg/testsupport"
)

func articleDocument(t *testing.T) *display.Document {
	t.Helper()

	raw, err := display.Encode(model.Generate(testsupport.ArticleModel()))
	if err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	doc := display.MustNewDocument(display.SourceFromFile("article.yml"), raw)
	return &doc
}

type captureWriter struct {
	docs []display.FormDisplay
	err  error
}

func (w *captureWriter) Write(ctx context.Context, doc display.FormDisplay) error {
	if w.err != nil {
		return w.err
	}
	w.docs = append(w.docs, doc)
	return nil
}

func TestApply_DocumentRequest(t *testing.T) {
	o := New()

	m, err := o.Apply(context.Background(), Request{Document: articleDocument(t)})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if m.TargetEntityType != "node" || m.Bundle != "article" {
		t.Fatalf("target = %s/%s, want node/article", m.TargetEntityType, m.Bundle)
	}
	if !m.HasGroup("group_tabs") {
		t.Error("parsed model missing group_tabs")
	}
}

func TestApply_RunsOperationsInOrder(t *testing.T) {
	o := New(WithOperations(ToggleVisibility("field_tags")))

	m, err := o.Apply(context.Background(), Request{
		Document: articleDocument(t),
		Ops: []Operation{
			MoveField("title", "group_meta"),
			Reorder("group_meta", "title", "field_tags", "field_published_on"),
		},
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	// configured operation ran first
	if !m.Hidden.Has("field_tags") {
		t.Error("configured toggle did not run")
	}

	want := []string{"title", "field_tags", "field_published_on"}
	if diff := cmp.Diff(want, m.Group("group_meta").Children); diff != "" {
		t.Fatalf("children mismatch (-want +got):\n%s", diff)
	}
	if got := m.Field("title").Weight; got != 0 {
		t.Errorf("title weight = %d, want 0", got)
	}
}

func TestApply_OperationErrorNamesStep(t *testing.T) {
	o := New()

	_, err := o.Apply(context.Background(), Request{
		Document: articleDocument(t),
		Ops:      []Operation{SetWidget("ghost", "string_textfield")},
	})
	if !errors.Is(err, model.ErrFieldNotFound) {
		t.Fatalf("expected ErrFieldNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), `operation "set widget of ghost`) {
		t.Errorf("error does not name the failing step: %v", err)
	}
}

func TestApply_RequiresSourceOrDocument(t *testing.T) {
	o := New()
	if _, err := o.Apply(context.Background(), Request{}); err == nil {
		t.Fatal("expected error for empty request")
	}
}

func TestRender_DefaultsToTree(t *testing.T) {
	o := New()

	out, err := o.Render(context.Background(), Request{Document: articleDocument(t)})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	text := string(out)
	if !strings.Contains(text, "group_tabs [tabs]") {
		t.Errorf("tree output missing group line:\n%s", text)
	}
	if !strings.Contains(text, "Hidden: field_legacy_ref") {
		t.Errorf("tree output missing hidden line:\n%s", text)
	}
}

func TestRender_NamedRenderer(t *testing.T) {
	o := New()

	out, err := o.Render(context.Background(), Request{
		Document: articleDocument(t),
		Renderer: "markdown",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "| Item | Kind |") {
		t.Errorf("markdown output missing table header:\n%s", out)
	}
}

func TestRender_UnknownRenderer(t *testing.T) {
	o := New()
	_, err := o.Render(context.Background(), Request{
		Document: articleDocument(t),
		Renderer: "pdf",
	})
	if err == nil {
		t.Fatal("expected error for unknown renderer")
	}
}

func TestSave_PersistsThroughWriter(t *testing.T) {
	writer := &captureWriter{}
	o := New(WithWriter(writer))

	data, err := o.Save(context.Background(), Request{
		Document: articleDocument(t),
		Ops:      []Operation{DeleteGroup("group_meta", true)},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if len(writer.docs) != 1 {
		t.Fatalf("writer received %d documents, want 1", len(writer.docs))
	}
	saved := writer.docs[0]
	if _, present := saved.ThirdPartySettings.FieldGroup["group_meta"]; present {
		t.Error("deleted group still in saved document")
	}
	if !strings.Contains(string(data), "id: node.article.default") {
		t.Errorf("returned bytes missing document id:\n%s", data)
	}
}

func TestSave_RequiresWriter(t *testing.T) {
	o := New()
	if _, err := o.Save(context.Background(), Request{Document: articleDocument(t)}); err == nil {
		t.Fatal("expected error without a configured writer")
	}
}

func TestSave_WriterErrorPropagates(t *testing.T) {
	writer := &captureWriter{err: errors.New("disk full")}
	o := New(WithWriter(writer))

	_, err := o.Save(context.Background(), Request{Document: articleDocument(t)})
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected writer error, got %v", err)
	}
}

func TestNew_RegistersBuiltinRenderers(t *testing.T) {
	o := New()

	want := []string{"html", "markdown", "tree"}
	if diff := cmp.Diff(want, o.registry.List()); diff != "" {
		t.Fatalf("registry mismatch (-want +got):\n%s", diff)
	}
}
