// Package testsupport holds fixture helpers shared by the contract tests:
// a canonical article model with groups, fields, and a hidden name, plus
// loaders for YAML documents checked in under testdata directories.
package testsupport

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/goliatone/go-formdisplay/pkg/display"
	"github.com/goliatone/go-formdisplay/pkg/model"
)

// ArticleModel returns the shared fixture: a tabs container holding two tab
// groups, four visible fields, and one hidden field. Tests mutate copies; the
// returned model is freshly built per call so fixtures never leak state.
func ArticleModel() model.Model {
	return model.Model{
		TargetEntityType: "node",
		Bundle:           "article",
		Mode:             "default",
		UUID:             "6a1e2b4c-9d3f-4e5a-8b7c-0d1e2f3a4b5c",
		Groups: []model.Group{
			{
				Name:     "group_tabs",
				Label:    "Tabs",
				Children: []string{"group_content", "group_meta"},
				Parent:   "",
				Weight:   0,
				Region:   "content",
				Format:   model.FormatTabs,
				Settings: map[string]any{},
			},
			{
				Name:     "group_content",
				Label:    "Content",
				Children: []string{"title", "body"},
				Parent:   "group_tabs",
				Weight:   0,
				Region:   "content",
				Format:   model.FormatTab,
				Settings: map[string]any{},
			},
			{
				Name:     "group_meta",
				Label:    "Metadata",
				Children: []string{"field_tags", "field_published_on"},
				Parent:   "group_tabs",
				Weight:   1,
				Region:   "content",
				Format:   model.FormatTab,
				Settings: map[string]any{},
			},
		},
		Fields: []model.Field{
			{Name: "title", Widget: "string_textfield", Weight: 0, Region: "content", Settings: map[string]any{"size": 60}, ThirdPartySettings: map[string]any{}},
			{Name: "body", Widget: "text_textarea_with_summary", Weight: 1, Region: "content", Settings: map[string]any{"rows": 9}, ThirdPartySettings: map[string]any{}},
			{Name: "field_tags", Widget: "entity_reference_autocomplete", Weight: 0, Region: "content", Settings: map[string]any{}, ThirdPartySettings: map[string]any{}},
			{Name: "field_published_on", Widget: "datetime_default", Weight: 1, Region: "content", Settings: map[string]any{}, ThirdPartySettings: map[string]any{}},
		},
		Hidden: model.NewHiddenSet("field_legacy_ref"),
	}
}

// LoadDisplay reads and decodes a YAML fixture, failing the test on error.
func LoadDisplay(t *testing.T, path string) display.FormDisplay {
	t.Helper()

	doc, err := LoadDisplayFromPath(path)
	if err != nil {
		t.Fatalf("load display: %v", err)
	}
	return doc
}

// LoadDisplayFromPath returns a decoded document without requiring
// testing.T, so setup code outside tests can share fixtures.
func LoadDisplayFromPath(path string) (display.FormDisplay, error) {
	if path == "" {
		return display.FormDisplay{}, errors.New("testsupport: document path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return display.FormDisplay{}, fmt.Errorf("testsupport: read document: %w", err)
	}
	doc, err := display.Decode(data)
	if err != nil {
		return display.FormDisplay{}, fmt.Errorf("testsupport: decode document: %w", err)
	}
	return doc, nil
}

// LoadDocument reads a fixture and wraps it in a display.Document with a
// file source, for loader and orchestrator tests.
func LoadDocument(t *testing.T, path string) display.Document {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	doc, err := display.NewDocument(display.SourceFromFile(path), data)
	if err != nil {
		t.Fatalf("new document: %v", err)
	}
	return doc
}
