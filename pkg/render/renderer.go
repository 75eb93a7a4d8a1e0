// Package render defines the renderer contract and registry for turning a
// form display model into human-facing output (ASCII tree, markdown report,
// HTML preview). Renderers are side-effect-free: they read the model and the
// per-request options and return bytes.
package render

import (
	"context"

	"github.com/goliatone/go-formdisplay/pkg/model"
)

// Renderer converts a display model into a byte representation.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, m model.Model, options Options) ([]byte, error)
}
