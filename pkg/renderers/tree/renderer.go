// Package tree renders a form display model as an indented ASCII tree for
// terminal inspection: groups annotated with their format kind, fields with
// their widget type, and a trailing line listing hidden fields.
package tree

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xlab/treeprint"

	"github.com/goliatone/go-formdisplay/pkg/model"
	"github.com/goliatone/go-formdisplay/pkg/render"
)

// Renderer implements render.Renderer with treeprint branch drawing.
type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the tree renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tree"
}

// ContentType reports the output format.
func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render draws the model's hierarchical view. The root line carries the
// target coordinates (or Options.Title when set); every group appears even
// when empty so a freshly created group is visible immediately.
func (r *Renderer) Render(ctx context.Context, m model.Model, options render.Options) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tree: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	view := m.Tree()

	root := treeprint.New()
	root.SetValue(rootLabel(m, options))
	for _, node := range view.Nodes {
		addNode(root, node)
	}

	var b strings.Builder
	b.WriteString(root.String())
	if len(view.Hidden) > 0 {
		b.WriteString("Hidden: ")
		b.WriteString(strings.Join(view.Hidden, ", "))
		b.WriteString("\n")
	}
	return []byte(b.String()), nil
}

func rootLabel(m model.Model, options render.Options) string {
	if options.Title != "" {
		return options.Title
	}
	return fmt.Sprintf("%s.%s (%s)", m.TargetEntityType, m.Bundle, m.Mode)
}

func addNode(branch treeprint.Tree, node model.Node) {
	if node.Kind == model.NodeKindField {
		branch.AddNode(fmt.Sprintf("%s (%s)", node.Name, node.Widget))
		return
	}

	label := fmt.Sprintf("%s [%s]", node.Name, node.Format)
	child := branch.AddBranch(label)
	for _, grandchild := range node.Children {
		addNode(child, grandchild)
	}
}
