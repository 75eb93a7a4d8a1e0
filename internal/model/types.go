package model

import "sort"

// Format enumerates the display styles a group can take. Values are the
// machine names persisted in a display document's format_type key.
type Format string

const (
	// FormatTabs is the horizontal/vertical tabs container.
	FormatTabs Format = "tabs"
	// FormatTab is a single tab inside a tabs container.
	FormatTab Format = "tab"
	// FormatDetails is a collapsible panel.
	FormatDetails Format = "details"
	// FormatDetailsSidebar is a collapsible panel docked in the sidebar.
	FormatDetailsSidebar Format = "details_sidebar"
	// FormatFieldset is the plain panel and the default for new groups.
	FormatFieldset Format = "fieldset"
)

// DefaultRegion is the region fields and groups land in unless the document
// says otherwise.
const DefaultRegion = "content"

// DefaultMode is the display variant assumed when a document omits one.
const DefaultMode = "default"

// Field is a leaf node: one placed, widget-configured content field. Fields
// are never deleted by the engine; hiding is a flag in the model's HiddenSet,
// and the record stays put so the widget assignment can be restored later.
type Field struct {
	Name               string         `json:"name"`
	Widget             string         `json:"widget"`
	Weight             int            `json:"weight"`
	Region             string         `json:"region,omitempty"`
	Settings           map[string]any `json:"settings,omitempty"`
	ThirdPartySettings map[string]any `json:"thirdPartySettings,omitempty"`
}

// Clone returns a deep copy of the field.
func (f Field) Clone() Field {
	out := f
	out.Settings = cloneAnyMap(f.Settings)
	out.ThirdPartySettings = cloneAnyMap(f.ThirdPartySettings)
	return out
}

// Group is a container node. Children is the authoritative list of direct
// membership (field and group names, in order); Parent is the back-reference
// to the containing group, empty string meaning root. The two stay in sync
// because every structural change goes through the mutation methods on Model.
type Group struct {
	Name     string         `json:"name"`
	Label    string         `json:"label"`
	Children []string       `json:"children"`
	Parent   string         `json:"parent"`
	Weight   int            `json:"weight"`
	Region   string         `json:"region,omitempty"`
	Format   Format         `json:"format"`
	Settings map[string]any `json:"settings,omitempty"`
}

// Clone returns a deep copy of the group.
func (g Group) Clone() Group {
	out := g
	out.Children = append([]string(nil), g.Children...)
	out.Settings = cloneAnyMap(g.Settings)
	return out
}

// Contains reports whether name is a direct child of the group.
func (g Group) Contains(name string) bool {
	for _, child := range g.Children {
		if child == name {
			return true
		}
	}
	return false
}

// HiddenSet holds the field names excluded from the visible arrangement.
// Membership is orthogonal to the Field list: a hidden field keeps its
// record so hiding and deleting stay distinct operations.
type HiddenSet map[string]struct{}

// NewHiddenSet builds a set from the given names.
func NewHiddenSet(names ...string) HiddenSet {
	set := make(HiddenSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// Has reports membership.
func (s HiddenSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the members sorted.
func (s HiddenSet) Names() []string {
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Clone returns a copy of the set. A nil set clones to nil.
func (s HiddenSet) Clone() HiddenSet {
	if s == nil {
		return nil
	}
	out := make(HiddenSet, len(s))
	for name := range s {
		out[name] = struct{}{}
	}
	return out
}

// Model is the in-memory, name-addressable representation of one entity form
// display. All mutation methods are pure: they deep-copy the receiver and
// return the modified copy, leaving the original untouched.
type Model struct {
	TargetEntityType string    `json:"targetEntityType"`
	Bundle           string    `json:"bundle"`
	Mode             string    `json:"mode"`
	UUID             string    `json:"uuid,omitempty"`
	Groups           []Group   `json:"groups"`
	Fields           []Field   `json:"fields"`
	Hidden           HiddenSet `json:"hidden,omitempty"`
}

// Clone returns a deep copy of the model. Nil slices and maps stay nil so a
// clone compares equal to its receiver.
func (m Model) Clone() Model {
	out := m
	if m.Groups != nil {
		out.Groups = make([]Group, len(m.Groups))
		for i, g := range m.Groups {
			out.Groups[i] = g.Clone()
		}
	}
	if m.Fields != nil {
		out.Fields = make([]Field, len(m.Fields))
		for i, f := range m.Fields {
			out.Fields[i] = f.Clone()
		}
	}
	out.Hidden = m.Hidden.Clone()
	return out
}

// Group returns a pointer into the model's group slice, or nil when absent.
// The pointer is only valid until the slice is reallocated; mutation methods
// use it on their own clone.
func (m *Model) Group(name string) *Group {
	for i := range m.Groups {
		if m.Groups[i].Name == name {
			return &m.Groups[i]
		}
	}
	return nil
}

// Field returns a pointer into the model's field slice, or nil when absent.
func (m *Model) Field(name string) *Field {
	for i := range m.Fields {
		if m.Fields[i].Name == name {
			return &m.Fields[i]
		}
	}
	return nil
}

// HasGroup reports whether a group with the given name exists.
func (m Model) HasGroup(name string) bool {
	for _, g := range m.Groups {
		if g.Name == name {
			return true
		}
	}
	return false
}

// HasField reports whether a field with the given name exists.
func (m Model) HasField(name string) bool {
	for _, f := range m.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

// ContainerOf returns the name of the group whose children list holds name,
// or empty string when the name sits at root. First container wins when a
// malformed document lists a name twice.
func (m Model) ContainerOf(name string) string {
	for _, g := range m.Groups {
		if g.Contains(name) {
			return g.Name
		}
	}
	return ""
}

func cloneAnyMap(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for key, value := range in {
		out[key] = cloneAnyValue(value)
	}
	return out
}

func cloneAnyValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return cloneAnyMap(v)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = cloneAnyValue(item)
		}
		return out
	default:
		return v
	}
}
