// Package formdisplay loads, inspects, rearranges, and writes back form
// display documents: the per-entity-type/bundle/mode YAML configuration a
// content-modeling system keeps to describe which fields appear on an
// entity's edit form, with which widget, arranged into which visual groups.
// The root package re-exports the engine surface and provides convenience
// constructors; the engine itself lives in pkg/model, the document shape and
// codec in pkg/display, and the pipeline in pkg/orchestrator.
package formdisplay

import (
	"context"

	internalloader "github.com/goliatone/go-formdisplay/internal/display/loader"
	"github.com/goliatone/go-formdisplay/pkg/display"
	"github.com/goliatone/go-formdisplay/pkg/model"
	"github.com/goliatone/go-formdisplay/pkg/orchestrator"
	"github.com/goliatone/go-formdisplay/pkg/render"
)

// Model is the in-memory, name-addressable form display representation.
type Model = model.Model

// Group is a named container node (tab, panel, fieldset).
type Group = model.Group

// Field is a leaf node: one placed, widget-configured content field.
type Field = model.Field

// Tree is the derived hierarchical view of a model.
type Tree = model.Tree

// Operation is a named, reusable model transformation for the orchestrator.
type Operation = orchestrator.Operation

// RenderOptions carries per-request renderer instructions.
type RenderOptions = render.Options

// Parse converts a flat display document into a Model.
func Parse(doc display.FormDisplay) (Model, error) {
	return model.Parse(doc)
}

// Generate serializes a Model back into the flat document shape.
func Generate(m Model) display.FormDisplay {
	return model.Generate(m)
}

// NewOrchestrator exposes the pipeline constructor from the top-level module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewLoader constructs a document loader for file, fs.FS, and URL sources.
func NewLoader(options display.LoaderOptions) display.Loader {
	return internalloader.New(options)
}

// NewStore opens a config-directory document store implementing both
// display.Reader and display.Writer.
func NewStore(dir string, options ...internalloader.StoreOption) (*internalloader.Store, error) {
	return internalloader.NewStore(dir, options...)
}

// WithStorePrefix overrides the store's file name prefix.
func WithStorePrefix(prefix string) internalloader.StoreOption {
	return internalloader.WithStorePrefix(prefix)
}

// RenderTree loads the document at source and draws its arrangement as an
// ASCII tree. It is the simplest entry point for callers that just want a
// quick look at a display.
func RenderTree(ctx context.Context, source display.Source, options ...orchestrator.Option) ([]byte, error) {
	o := orchestrator.New(options...)
	return o.Render(ctx, orchestrator.Request{
		Source:   source,
		Renderer: "tree",
	})
}

// ApplyOperations loads the document at source, applies the operations in
// order, and returns the resulting model.
func ApplyOperations(ctx context.Context, source display.Source, ops ...Operation) (Model, error) {
	o := orchestrator.New()
	return o.Apply(ctx, orchestrator.Request{
		Source: source,
		Ops:    ops,
	})
}
