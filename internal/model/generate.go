package model

import (
	"fmt"
	"sort"

	"github.com/goliatone/go-formdisplay/pkg/display"
)

// formatDefaults maps each format kind to the settings keys it carries when
// the group does not set them explicitly. The generator fills these so a
// written document always declares a complete format_settings block.
var formatDefaults = map[Format]map[string]any{
	FormatTabs: {
		"direction": "horizontal",
		"classes":   "",
	},
	FormatTab: {
		"formatter":   "closed",
		"description": "",
	},
	FormatDetails: {
		"open":            false,
		"description":     "",
		"required_fields": true,
	},
	FormatDetailsSidebar: {
		"open":            false,
		"description":     "",
		"required_fields": true,
	},
	FormatFieldset: {
		"classes":     "",
		"description": "",
	},
}

// Generate serializes a model back into the flat document shape, recomputing
// the derived content: the document id, the config and module dependency
// lists, and per-format default settings. Output is deterministic; calling
// Generate twice on the same model yields deeply equal documents, and
// encoding them yields byte-identical YAML.
func Generate(m Model) display.FormDisplay {
	mode := m.Mode
	if mode == "" {
		mode = DefaultMode
	}

	doc := display.FormDisplay{
		UUID:             m.UUID,
		ID:               fmt.Sprintf("%s.%s.%s", m.TargetEntityType, m.Bundle, mode),
		TargetEntityType: m.TargetEntityType,
		Bundle:           m.Bundle,
		Mode:             mode,
		Content:          map[string]display.FieldEntry{},
		Hidden:           map[string]bool{},
	}

	for _, field := range m.Fields {
		if m.Hidden.Has(field.Name) {
			continue
		}
		doc.Content[field.Name] = generateField(field)
	}

	for name := range m.Hidden {
		doc.Hidden[name] = true
	}

	if len(m.Groups) > 0 {
		doc.ThirdPartySettings.FieldGroup = map[string]display.GroupEntry{}
		for _, group := range m.Groups {
			doc.ThirdPartySettings.FieldGroup[group.Name] = generateGroup(group)
		}
	}

	doc.Dependencies = generateDependencies(m, doc)
	return doc
}

func generateField(field Field) display.FieldEntry {
	region := field.Region
	if region == "" {
		region = DefaultRegion
	}
	entry := display.FieldEntry{
		Type:               field.Widget,
		Weight:             field.Weight,
		Region:             region,
		Settings:           cloneAnyMap(field.Settings),
		ThirdPartySettings: cloneAnyMap(field.ThirdPartySettings),
	}
	if entry.Settings == nil {
		entry.Settings = map[string]any{}
	}
	if entry.ThirdPartySettings == nil {
		entry.ThirdPartySettings = map[string]any{}
	}
	return entry
}

func generateGroup(group Group) display.GroupEntry {
	region := group.Region
	if region == "" {
		region = DefaultRegion
	}
	format := group.Format
	if format == "" {
		format = FormatFieldset
	}

	settings := cloneAnyMap(group.Settings)
	if settings == nil {
		settings = map[string]any{}
	}
	for key, value := range formatDefaults[format] {
		if _, set := settings[key]; !set {
			settings[key] = value
		}
	}

	children := append([]string(nil), group.Children...)
	if children == nil {
		children = []string{}
	}

	return display.GroupEntry{
		Children:       children,
		Label:          group.Label,
		Region:         region,
		ParentName:     group.Parent,
		Weight:         group.Weight,
		FormatType:     string(format),
		FormatSettings: settings,
	}
}

func generateDependencies(m Model, doc display.FormDisplay) display.Dependencies {
	config := map[string]struct{}{
		fmt.Sprintf("%s.type.%s", m.TargetEntityType, m.Bundle): {},
	}
	modules := map[string]struct{}{}

	for name, entry := range doc.Content {
		config[fmt.Sprintf("field.field.%s.%s.%s", m.TargetEntityType, m.Bundle, name)] = struct{}{}
		if module, ok := ModuleForWidget(entry.Type); ok {
			modules[module] = struct{}{}
		}
	}
	if len(m.Groups) > 0 {
		modules[GroupingModule] = struct{}{}
	}

	return display.Dependencies{
		Config: sortedSet(config),
		Module: sortedSet(modules),
	}
}

func sortedSet(in map[string]struct{}) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for key := range in {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}
