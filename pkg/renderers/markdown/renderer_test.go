package markdown

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-formdisplay/pkg/model"
	"github.com/goliatone/go-formdisplay/pkg/render"
	"github.com/goliatone/go-formdisplay/pkg/testsupport"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}

func TestRenderer_Identity(t *testing.T) {
	r := newRenderer(t)
	if r.Name() != "markdown" {
		t.Errorf("name = %q, want markdown", r.Name())
	}
	if !strings.HasPrefix(r.ContentType(), "text/markdown") {
		t.Errorf("content type = %q, want text/markdown", r.ContentType())
	}
}

func TestRenderer_Report(t *testing.T) {
	out, err := newRenderer(t).Render(context.Background(), testsupport.ArticleModel(), render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	text := string(out)
	for _, want := range []string{
		"# Form display: node.article",
		"mode `default`",
		"| Item | Kind | Widget / Format | Weight | Region |",
		"| group_tabs | group | tabs | 0 | content |",
		"| &nbsp;&nbsp;group_content | group | tab | 0 | content |",
		"| &nbsp;&nbsp;&nbsp;&nbsp;title | field | string_textfield | 0 | content |",
		"| &nbsp;&nbsp;&nbsp;&nbsp;field_published_on | field | datetime_default | 1 | content |",
		"Hidden: field_legacy_ref",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q\ngot:\n%s", want, text)
		}
	}
}

func TestRenderer_TitleOverride(t *testing.T) {
	out, err := newRenderer(t).Render(context.Background(), testsupport.ArticleModel(), render.Options{Title: "Arrangement audit"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "# Arrangement audit") {
		t.Errorf("title override missing:\n%s", out)
	}
}

func TestRenderer_DropsEmptyGroupsByDefault(t *testing.T) {
	m := testsupport.ArticleModel().AddGroup(model.Group{Label: "Empty Corner"})

	out, err := newRenderer(t).Render(context.Background(), m, render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(out), "group_empty_corner") {
		t.Errorf("empty group present without ShowEmptyGroups:\n%s", out)
	}

	out, err = newRenderer(t).Render(context.Background(), m, render.Options{ShowEmptyGroups: true})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "group_empty_corner") {
		t.Errorf("empty group missing with ShowEmptyGroups:\n%s", out)
	}
}

func TestRenderer_NoHiddenLineWhenNoneHidden(t *testing.T) {
	m := testsupport.ArticleModel()
	m.Hidden = model.NewHiddenSet()

	out, err := newRenderer(t).Render(context.Background(), m, render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(out), "Hidden:") {
		t.Errorf("unexpected hidden line:\n%s", out)
	}
}
