package orchestrator

import (
	"context"
	"errors"
	"fmt"

	internalloader "github.com/goliatone/go-formdisplay/internal/display/loader"
	"github.com/goliatone/go-formdisplay/pkg/display"
	"github.com/goliatone/go-formdisplay/pkg/model"
	"github.com/goliatone/go-formdisplay/pkg/render"
	"github.com/goliatone/go-formdisplay/pkg/renderers/html"
	"github.com/goliatone/go-formdisplay/pkg/renderers/markdown"
	"github.com/goliatone/go-formdisplay/pkg/renderers/tree"
)

const defaultRendererName = "tree"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom document loader.
func WithLoader(loader display.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithWriter injects the document writer Save persists through.
func WithWriter(writer display.Writer) Option {
	return func(o *Orchestrator) {
		o.writer = writer
	}
}

// WithOperations appends operations that run on every request, before any
// per-request operations.
func WithOperations(ops ...Operation) Option {
	return func(o *Orchestrator) {
		o.operations = append(o.operations, ops...)
	}
}

// Orchestrator coordinates the full pipeline from flat document to mutated
// model and back out as rendered text or persisted YAML. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
type Orchestrator struct {
	loader          display.Loader
	registry        *render.Registry
	writer          display.Writer
	defaultRenderer string
	operations      []Operation
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

func (o *Orchestrator) applyDefaults() {
	o.defaultsApplied = true

	if o.loader == nil {
		o.loader = internalloader.New(display.LoaderOptions{AllowHTTPFallback: true})
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
	}

	var builtins []render.Renderer
	if !o.registry.Has("tree") {
		builtins = append(builtins, tree.New())
	}
	if !o.registry.Has("markdown") {
		renderer, err := markdown.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: create markdown renderer: %w", err)
			return
		}
		builtins = append(builtins, renderer)
	}
	if !o.registry.Has("html") {
		renderer, err := html.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: create html renderer: %w", err)
			return
		}
		builtins = append(builtins, renderer)
	}
	if len(builtins) > 0 {
		o.registry.MustRegister(builtins...)
	}
}

// Request describes the inputs for one pipeline run.
type Request struct {
	// Source identifies where the display document lives. Optional when
	// Document is supplied.
	Source display.Source

	// Document bypasses the loader when the caller already has a payload.
	Document *display.Document

	// Ops are applied to the parsed model in order, after any operations
	// configured on the orchestrator.
	Ops []Operation

	// Renderer names the renderer for Render. Empty falls back to the
	// configured default.
	Renderer string

	// RenderOptions carries per-request renderer instructions.
	RenderOptions render.Options
}

// Apply executes load → decode → parse → operations and returns the
// resulting model.
func (o *Orchestrator) Apply(ctx context.Context, req Request) (model.Model, error) {
	if ctx == nil {
		return model.Model{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return model.Model{}, err
	}
	if err := o.initialiseErr; err != nil {
		return model.Model{}, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return model.Model{}, err
		}
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return model.Model{}, err
	}

	decoded, err := doc.Decode()
	if err != nil {
		return model.Model{}, fmt.Errorf("orchestrator: decode document: %w", err)
	}

	m, err := model.Parse(decoded)
	if err != nil {
		return model.Model{}, fmt.Errorf("orchestrator: parse document: %w", err)
	}

	for _, op := range o.operations {
		if m, err = op.apply(m); err != nil {
			return model.Model{}, err
		}
	}
	for _, op := range req.Ops {
		if m, err = op.apply(m); err != nil {
			return model.Model{}, err
		}
	}
	return m, nil
}

// Render runs Apply and formats the result with the named renderer.
func (o *Orchestrator) Render(ctx context.Context, req Request) ([]byte, error) {
	m, err := o.Apply(ctx, req)
	if err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	out, err := renderer.Render(ctx, m, req.RenderOptions)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render with %q: %w", renderer.Name(), err)
	}
	return out, nil
}

// Save runs Apply, regenerates the flat document, persists it through the
// configured writer, and returns the encoded bytes.
func (o *Orchestrator) Save(ctx context.Context, req Request) ([]byte, error) {
	m, err := o.Apply(ctx, req)
	if err != nil {
		return nil, err
	}

	doc := model.Generate(m)
	data, err := display.Encode(doc)
	if err != nil {
		return nil, err
	}

	if o.writer == nil {
		return nil, errors.New("orchestrator: writer is not configured")
	}
	if err := o.writer.Write(ctx, doc); err != nil {
		return nil, fmt.Errorf("orchestrator: persist document: %w", err)
	}
	return data, nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (display.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return display.Document{}, errors.New("orchestrator: source or document is required")
	}
	if o.loader == nil {
		return display.Document{}, errors.New("orchestrator: loader is not configured")
	}

	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return display.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if name == "" {
		name = o.defaultRenderer
	}
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is not configured")
	}
	return o.registry.Get(name)
}
