// Package template declares the engine contract the markdown and HTML
// renderers depend on, mirroring the github.com/goliatone/go-template API so
// either that engine or the pongo2-backed adapter in the gotemplate
// subpackage can sit behind it.
package template

import "io"

// TemplateRenderer is the rendering seam. Render picks between file-backed
// and inline content based on the argument; RenderTemplate always resolves a
// named template; RenderString always treats its argument as inline content.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
