package widgets

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCatalog_Builtins(t *testing.T) {
	catalog := NewCatalog()

	widgets, ok := catalog.WidgetsFor("entity_reference")
	if !ok {
		t.Fatal("entity_reference not in builtin catalog")
	}
	want := []string{"entity_reference_autocomplete", "options_select"}
	if diff := cmp.Diff(want, widgets); diff != "" {
		t.Fatalf("widgets mismatch (-want +got):\n%s", diff)
	}

	if widget, ok := catalog.DefaultWidget("datetime"); !ok || widget != "datetime_default" {
		t.Errorf("default for datetime = %q/%v, want datetime_default/true", widget, ok)
	}
}

func TestCatalog_UnknownType(t *testing.T) {
	catalog := NewCatalog()
	if _, ok := catalog.WidgetsFor("geolocation"); ok {
		t.Fatal("unexpected entry for unregistered type")
	}
	if _, ok := catalog.DefaultWidget("geolocation"); ok {
		t.Fatal("unexpected default for unregistered type")
	}
}

func TestCatalog_Register(t *testing.T) {
	catalog := NewCatalog()
	catalog.Register("geolocation", "geolocation_latlng", "geolocation_map")

	if widget, ok := catalog.DefaultWidget("geolocation"); !ok || widget != "geolocation_latlng" {
		t.Fatalf("default = %q/%v, want geolocation_latlng/true", widget, ok)
	}

	// replacing an entry drops the previous widget list
	catalog.Register("geolocation", "geolocation_map")
	widgets, _ := catalog.WidgetsFor("geolocation")
	if diff := cmp.Diff([]string{"geolocation_map"}, widgets); diff != "" {
		t.Fatalf("widgets mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalog_RegisterIgnoresEmpty(t *testing.T) {
	catalog := NewCatalog()
	before := len(catalog.FieldTypes())

	catalog.Register("", "some_widget")
	catalog.Register("orphan")

	if got := len(catalog.FieldTypes()); got != before {
		t.Fatalf("field types = %d, want %d", got, before)
	}
}

func TestCatalog_Supports(t *testing.T) {
	catalog := NewCatalog()

	if !catalog.Supports("boolean", "options_buttons") {
		t.Error("boolean should support options_buttons")
	}
	if catalog.Supports("boolean", "datetime_default") {
		t.Error("boolean should not support datetime_default")
	}
	if catalog.Supports("geolocation", "anything") {
		t.Error("unknown type should support nothing")
	}
}

func TestCatalog_WidgetsForReturnsCopy(t *testing.T) {
	catalog := NewCatalog()

	widgets, _ := catalog.WidgetsFor("string")
	widgets[0] = "mutated"

	again, _ := catalog.WidgetsFor("string")
	if again[0] != "string_textfield" {
		t.Fatalf("catalog entry mutated through returned slice: %q", again[0])
	}
}

func TestModuleFor(t *testing.T) {
	if module, ok := ModuleFor("media_library_widget"); !ok || module != "media_library" {
		t.Errorf("media_library_widget = %q/%v, want media_library/true", module, ok)
	}
	if _, ok := ModuleFor("boolean_checkbox"); ok {
		t.Error("boolean_checkbox should be a core widget with no module")
	}
}
