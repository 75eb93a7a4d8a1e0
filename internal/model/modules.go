package model

// GroupingModule is the module any document with group declarations depends
// on.
const GroupingModule = "field_group"

// widgetModules maps widget identifiers to the module providing them. Widgets
// absent from the table ship with core and add no dependency.
var widgetModules = map[string]string{
	"datetime_datelist":           "datetime",
	"datetime_default":            "datetime",
	"datetime_timestamp":          "datetime",
	"daterange_default":           "datetime_range",
	"link_default":                "link",
	"options_buttons":             "options",
	"options_select":              "options",
	"text_textarea":               "text",
	"text_textarea_with_summary":  "text",
	"text_textfield":              "text",
	"image_image":                 "image",
	"file_generic":                "file",
	"media_library_widget":        "media_library",
	"path":                        "path",
	"paragraphs":                  "paragraphs",
	"entity_reference_paragraphs": "paragraphs",
}

// ModuleForWidget returns the module a widget identifier requires, if any.
func ModuleForWidget(widget string) (string, bool) {
	module, ok := widgetModules[widget]
	return module, ok
}
