package model

import (
	"fmt"
	"sort"

	"github.com/goliatone/go-formdisplay/pkg/display"
)

// Parse converts a flat display document into a Model. The only failure mode
// is a document without a target entity type or bundle; everything else is
// defaulted permissively, and no cross-validation of the group structure
// happens here. A malformed document round-trips as-is, and structural
// problems surface only when a mutation that depends on them runs (or when
// the caller asks, via Lint).
func Parse(doc display.FormDisplay) (Model, error) {
	if doc.TargetEntityType == "" || doc.Bundle == "" {
		return Model{}, fmt.Errorf("parse %q: %w", doc.ID, ErrMissingTarget)
	}

	mode := doc.Mode
	if mode == "" {
		mode = DefaultMode
	}

	m := Model{
		TargetEntityType: doc.TargetEntityType,
		Bundle:           doc.Bundle,
		Mode:             mode,
		UUID:             doc.UUID,
		Hidden:           NewHiddenSet(),
	}

	for _, name := range sortedKeys(doc.ThirdPartySettings.FieldGroup) {
		entry := doc.ThirdPartySettings.FieldGroup[name]
		m.Groups = append(m.Groups, parseGroup(name, entry))
	}

	for _, name := range sortedKeys(doc.Content) {
		entry := doc.Content[name]
		m.Fields = append(m.Fields, parseField(name, entry))
	}

	for name, hidden := range doc.Hidden {
		if hidden {
			m.Hidden[name] = struct{}{}
		}
	}

	return m, nil
}

func parseGroup(name string, entry display.GroupEntry) Group {
	group := Group{
		Name:     name,
		Label:    entry.Label,
		Children: append([]string(nil), entry.Children...),
		Parent:   entry.ParentName,
		Weight:   entry.Weight,
		Region:   entry.Region,
		Format:   Format(entry.FormatType),
		Settings: cloneAnyMap(entry.FormatSettings),
	}
	if group.Children == nil {
		group.Children = []string{}
	}
	if group.Region == "" {
		group.Region = DefaultRegion
	}
	if group.Format == "" {
		group.Format = FormatFieldset
	}
	if group.Settings == nil {
		group.Settings = map[string]any{}
	}
	return group
}

func parseField(name string, entry display.FieldEntry) Field {
	field := Field{
		Name:               name,
		Widget:             entry.Type,
		Weight:             entry.Weight,
		Region:             entry.Region,
		Settings:           cloneAnyMap(entry.Settings),
		ThirdPartySettings: cloneAnyMap(entry.ThirdPartySettings),
	}
	if field.Region == "" {
		field.Region = DefaultRegion
	}
	if field.Settings == nil {
		field.Settings = map[string]any{}
	}
	if field.ThirdPartySettings == nil {
		field.ThirdPartySettings = map[string]any{}
	}
	return field
}

func sortedKeys[V any](in map[string]V) []string {
	keys := make([]string, 0, len(in))
	for key := range in {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
