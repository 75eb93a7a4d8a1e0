package display

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Decode parses a YAML display document into its structured form. Unknown
// top-level keys are ignored; hand-edited documents frequently carry extras.
func Decode(raw []byte) (FormDisplay, error) {
	if len(raw) == 0 {
		return FormDisplay{}, fmt.Errorf("display: empty document")
	}

	var doc FormDisplay
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return FormDisplay{}, fmt.Errorf("display: decode document: %w", err)
	}
	fillEmptyMaps(&doc)
	return doc, nil
}

// fillEmptyMaps defaults the optional per-entry maps to empty. The encoder
// elides empty maps, so without this a decoded document would not compare
// equal to the generated document it was written from.
func fillEmptyMaps(doc *FormDisplay) {
	if doc.Content == nil {
		doc.Content = map[string]FieldEntry{}
	}
	if doc.Hidden == nil {
		doc.Hidden = map[string]bool{}
	}
	for name, entry := range doc.Content {
		if entry.Settings == nil {
			entry.Settings = map[string]any{}
		}
		if entry.ThirdPartySettings == nil {
			entry.ThirdPartySettings = map[string]any{}
		}
		doc.Content[name] = entry
	}
	for name, entry := range doc.ThirdPartySettings.FieldGroup {
		if entry.FormatSettings == nil {
			entry.FormatSettings = map[string]any{}
		}
		doc.ThirdPartySettings.FieldGroup[name] = entry
	}
}

// Encode serializes a display document as YAML with two-space indentation.
// Map keys are emitted in sorted order by the encoder, so encoding the same
// document twice yields byte-identical output.
func Encode(doc FormDisplay) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("display: encode document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("display: close encoder: %w", err)
	}
	return buf.Bytes(), nil
}
