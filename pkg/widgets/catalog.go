// Package widgets provides the widget catalog: which input widgets can
// render a given field type, and which one is the default. The engine never
// validates widget/field-type compatibility itself; callers consult the
// catalog before invoking widget-change operations.
package widgets

import (
	"sort"
	"strings"
	"sync"

	internalmodel "github.com/goliatone/go-formdisplay/internal/model"
)

// entry records the widgets compatible with one field type; the first is the
// default.
type entry struct {
	widgets []string
}

// Catalog maps field types to compatible widget identifiers. The zero value
// is unusable; construct with NewCatalog, which seeds the builtin types.
// Register adds or replaces entries, so site-specific field types slot in
// next to the builtins. Safe for concurrent use.
type Catalog struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewCatalog constructs a catalog seeded with the builtin field types.
func NewCatalog() *Catalog {
	c := &Catalog{entries: make(map[string]entry)}
	for fieldType, widgets := range builtinWidgets {
		c.entries[fieldType] = entry{widgets: append([]string(nil), widgets...)}
	}
	return c
}

// Register declares the compatible widgets for a field type, first widget
// being the default. Empty field types or widget lists are ignored; a
// repeated field type replaces the previous entry.
func (c *Catalog) Register(fieldType string, widgets ...string) {
	fieldType = strings.TrimSpace(fieldType)
	if c == nil || fieldType == "" || len(widgets) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[fieldType] = entry{widgets: append([]string(nil), widgets...)}
}

// WidgetsFor returns the widgets compatible with a field type, default
// first. The second return is false for unknown types.
func (c *Catalog) WidgetsFor(fieldType string) ([]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[fieldType]
	if !ok {
		return nil, false
	}
	return append([]string(nil), e.widgets...), true
}

// DefaultWidget returns the default widget for a field type.
func (c *Catalog) DefaultWidget(fieldType string) (string, bool) {
	widgets, ok := c.WidgetsFor(fieldType)
	if !ok || len(widgets) == 0 {
		return "", false
	}
	return widgets[0], true
}

// Supports reports whether the widget is compatible with the field type.
func (c *Catalog) Supports(fieldType, widget string) bool {
	widgets, ok := c.WidgetsFor(fieldType)
	if !ok {
		return false
	}
	for _, candidate := range widgets {
		if candidate == widget {
			return true
		}
	}
	return false
}

// FieldTypes lists the registered field types, sorted.
func (c *Catalog) FieldTypes() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.entries))
	for fieldType := range c.entries {
		out = append(out, fieldType)
	}
	sort.Strings(out)
	return out
}

// ModuleFor returns the module a widget identifier requires, if any. This is
// the lookup the generator consults when deriving module dependencies.
func ModuleFor(widget string) (string, bool) {
	return internalmodel.ModuleForWidget(widget)
}

// builtinWidgets seeds the catalog; the first widget per type is the
// default.
var builtinWidgets = map[string][]string{
	"string":            {"string_textfield", "string_textarea"},
	"string_long":       {"string_textarea"},
	"text":              {"text_textfield"},
	"text_long":         {"text_textarea"},
	"text_with_summary": {"text_textarea_with_summary"},
	"boolean":           {"boolean_checkbox", "options_buttons"},
	"integer":           {"number"},
	"decimal":           {"number"},
	"float":             {"number"},
	"email":             {"email_default"},
	"telephone":         {"telephone_default"},
	"datetime":          {"datetime_default", "datetime_datelist"},
	"daterange":         {"daterange_default"},
	"timestamp":         {"datetime_timestamp"},
	"link":              {"link_default"},
	"list_string":       {"options_select", "options_buttons"},
	"list_integer":      {"options_select", "options_buttons"},
	"entity_reference":  {"entity_reference_autocomplete", "options_select"},
	"image":             {"image_image", "media_library_widget"},
	"file":              {"file_generic"},
}
