// Package markdown renders a form display model as a markdown arrangement
// report: a depth-indented table of groups and fields plus the hidden list.
package markdown

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-formdisplay/pkg/model"
	"github.com/goliatone/go-formdisplay/pkg/render"
	"github.com/goliatone/go-formdisplay/pkg/render/template"
	"github.com/goliatone/go-formdisplay/pkg/render/template/gotemplate"
)

//go:embed templates/*.tpl
var templatesFS embed.FS

const reportTemplate = "templates/report.md"

// Renderer implements render.Renderer with an embedded pongo2 template.
type Renderer struct {
	engine template.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// Option customises the renderer.
type Option func(*Renderer)

// WithEngine swaps the template engine, mostly for tests.
func WithEngine(engine template.TemplateRenderer) Option {
	return func(r *Renderer) {
		r.engine = engine
	}
}

// New constructs the markdown renderer with the embedded templates.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.engine == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(templatesFS))
		if err != nil {
			return nil, fmt.Errorf("markdown: create template engine: %w", err)
		}
		r.engine = engine
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "markdown"
}

// ContentType reports the output format.
func (r *Renderer) ContentType() string {
	return "text/markdown; charset=utf-8"
}

// Render builds the arrangement table from the model's tree view. Groups
// with no resolved children are dropped unless Options.ShowEmptyGroups is
// set.
func (r *Renderer) Render(ctx context.Context, m model.Model, options render.Options) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("markdown: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	view := m.Tree()

	title := options.Title
	if title == "" {
		title = fmt.Sprintf("Form display: %s.%s", m.TargetEntityType, m.Bundle)
	}

	var rows []map[string]any
	for _, node := range view.Nodes {
		rows = appendRows(rows, m, node, 0, options.ShowEmptyGroups)
	}

	data := map[string]any{
		"title":  title,
		"entity": m.TargetEntityType,
		"bundle": m.Bundle,
		"mode":   m.Mode,
		"rows":   rows,
		"hidden": view.Hidden,
	}

	out, err := r.engine.RenderTemplate(reportTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("markdown: render report: %w", err)
	}
	return []byte(out), nil
}

func appendRows(rows []map[string]any, m model.Model, node model.Node, depth int, showEmpty bool) []map[string]any {
	if node.Kind == model.NodeKindGroup && len(node.Children) == 0 && !showEmpty {
		return rows
	}

	row := map[string]any{
		"indent": strings.Repeat("&nbsp;&nbsp;", depth),
		"name":   node.Name,
		"weight": node.Weight,
		"region": regionOf(m, node),
	}
	if node.Kind == model.NodeKindGroup {
		row["kind"] = "group"
		row["detail"] = string(node.Format)
	} else {
		row["kind"] = "field"
		row["detail"] = node.Widget
	}
	rows = append(rows, row)

	for _, child := range node.Children {
		rows = appendRows(rows, m, child, depth+1, showEmpty)
	}
	return rows
}

func regionOf(m model.Model, node model.Node) string {
	if node.Kind == model.NodeKindGroup {
		if g := m.Group(node.Name); g != nil {
			return g.Region
		}
		return model.DefaultRegion
	}
	if f := m.Field(node.Name); f != nil {
		return f.Region
	}
	return model.DefaultRegion
}
