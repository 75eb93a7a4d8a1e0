package display

// FormDisplay is the flat on-disk representation of one entity form display:
// a visible-assignment map (Content), a hidden map, and group declarations
// tucked under third-party settings. Field order and nesting are implicit in
// the weight values and children lists; the engine in pkg/model turns this
// shape into an addressable tree and back.
type FormDisplay struct {
	UUID               string                `yaml:"uuid,omitempty"`
	ID                 string                `yaml:"id,omitempty"`
	Dependencies       Dependencies          `yaml:"dependencies,omitempty"`
	ThirdPartySettings ThirdPartySettings    `yaml:"third_party_settings,omitempty"`
	TargetEntityType   string                `yaml:"targetEntityType"`
	Bundle             string                `yaml:"bundle"`
	Mode               string                `yaml:"mode,omitempty"`
	Content            map[string]FieldEntry `yaml:"content,omitempty"`
	Hidden             map[string]bool       `yaml:"hidden,omitempty"`
}

// Dependencies lists the config objects and modules a display depends on.
// Both slices are kept sorted by the generator so encoded output is stable.
type Dependencies struct {
	Config []string `yaml:"config,omitempty"`
	Module []string `yaml:"module,omitempty"`
}

// ThirdPartySettings carries per-module extension payloads. Group
// declarations live under the field_group key.
type ThirdPartySettings struct {
	FieldGroup map[string]GroupEntry `yaml:"field_group,omitempty"`
}

// GroupEntry declares one visual group: its direct children (fields or other
// groups, by name), its parent group (empty string for root), and how it is
// rendered (format type plus format-specific settings).
type GroupEntry struct {
	Children       []string       `yaml:"children"`
	Label          string         `yaml:"label"`
	Region         string         `yaml:"region,omitempty"`
	ParentName     string         `yaml:"parent_name"`
	Weight         int            `yaml:"weight"`
	FormatType     string         `yaml:"format_type"`
	FormatSettings map[string]any `yaml:"format_settings,omitempty"`
}

// FieldEntry is one visible field assignment: the widget rendering the field
// plus its position and widget-level configuration. ThirdPartySettings is an
// opaque passthrough for other modules' per-widget payloads.
type FieldEntry struct {
	Type               string         `yaml:"type"`
	Weight             int            `yaml:"weight"`
	Region             string         `yaml:"region,omitempty"`
	Settings           map[string]any `yaml:"settings,omitempty"`
	ThirdPartySettings map[string]any `yaml:"third_party_settings,omitempty"`
}
