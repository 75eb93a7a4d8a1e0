package render

import theme "github.com/goliatone/go-theme"

// Options carry per-request data renderers can use to customise output
// without touching the model pipeline.
type Options struct {
	// Title overrides the heading derived from the model's target
	// coordinates.
	Title string
	// ShowEmptyGroups keeps groups with no resolved children in the report
	// and preview renderers, which drop them by default. The tree renderer
	// always shows every group.
	ShowEmptyGroups bool
	// Theme carries resolved go-theme tokens and CSS variables. Only the
	// HTML renderer consumes it; others ignore a non-nil value.
	Theme *theme.RendererConfig
}
