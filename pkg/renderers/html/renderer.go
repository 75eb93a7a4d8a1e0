// Package html renders a static HTML preview of a form display model:
// nested fieldset and tab markup mirroring the group tree, one placeholder
// control per visible field. Group labels come from hand-editable documents,
// so they pass through a bluemonday strict policy before landing in markup.
package html

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formdisplay/pkg/model"
	"github.com/goliatone/go-formdisplay/pkg/render"
	"github.com/goliatone/go-formdisplay/pkg/render/template"
	"github.com/goliatone/go-formdisplay/pkg/render/template/gotemplate"
)

//go:embed templates/*.tpl
var templatesFS embed.FS

const previewTemplate = "templates/preview.html"

// themeAssetStylesheet is the go-theme asset key the preview links when the
// resolved theme provides one.
const themeAssetStylesheet = "preview.stylesheet"

// Renderer implements render.Renderer for static HTML previews.
type Renderer struct {
	engine template.TemplateRenderer
	policy *bluemonday.Policy
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

// New constructs the HTML renderer with the embedded templates and a strict
// sanitizer.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{policy: bluemonday.StrictPolicy()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.engine == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(templatesFS))
		if err != nil {
			return nil, fmt.Errorf("html: create template engine: %w", err)
		}
		r.engine = engine
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "html"
}

// ContentType reports the output format.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the preview page. Options.Theme contributes a :root CSS
// variable block and an optional stylesheet link resolved through the theme
// asset map.
func (r *Renderer) Render(ctx context.Context, m model.Model, options render.Options) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("html: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	view := m.Tree()

	title := options.Title
	if title == "" {
		title = fmt.Sprintf("%s.%s (%s)", m.TargetEntityType, m.Bundle, m.Mode)
	}

	var body strings.Builder
	for _, node := range view.Nodes {
		r.writeNode(&body, node, options.ShowEmptyGroups)
	}

	// the template autoescapes scalar values; body is pre-built markup
	data := map[string]any{
		"title":      title,
		"body":       body.String(),
		"hidden":     view.Hidden,
		"theme_css":  themeCSS(options),
		"stylesheet": themeStylesheet(options),
	}

	out, err := r.engine.RenderTemplate(previewTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("html: render preview: %w", err)
	}
	return []byte(out), nil
}

func (r *Renderer) writeNode(b *strings.Builder, node model.Node, showEmpty bool) {
	if node.Kind == model.NodeKindField {
		fmt.Fprintf(b, "<div class=\"field\" data-field=%q data-widget=%q>", node.Name, node.Widget)
		fmt.Fprintf(b, "<label>%s</label>", html.EscapeString(node.Name))
		fmt.Fprintf(b, "<input type=\"text\" name=%q disabled placeholder=%q>", node.Name, node.Widget)
		b.WriteString("</div>\n")
		return
	}

	if len(node.Children) == 0 && !showEmpty {
		return
	}

	label := strings.TrimSpace(r.policy.Sanitize(node.Label))
	if label == "" {
		label = node.Name
	}

	fmt.Fprintf(b, "<fieldset class=\"group group--%s\" data-group=%q>", node.Format, node.Name)
	fmt.Fprintf(b, "<legend>%s</legend>\n", label)
	for _, child := range node.Children {
		r.writeNode(b, child, showEmpty)
	}
	b.WriteString("</fieldset>\n")
}

func themeCSS(options render.Options) string {
	if options.Theme == nil || len(options.Theme.CSSVars) == 0 {
		return ""
	}

	keys := make([]string, 0, len(options.Theme.CSSVars))
	for key := range options.Theme.CSSVars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(options.Theme.CSSVars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

func themeStylesheet(options render.Options) string {
	if options.Theme == nil || options.Theme.AssetURL == nil {
		return ""
	}
	return strings.TrimSpace(options.Theme.AssetURL(themeAssetStylesheet))
}
