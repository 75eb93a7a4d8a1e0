// Package scaffold seeds a fresh form display model for a bundle from an
// OpenAPI component schema: each mappable property becomes a visible field
// with the catalog's default widget, and properties with no widget mapping
// land in the hidden set. Scaffolding is a convenience producer; the engine
// still never validates that fields exist on the underlying content type.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/uuid"

	"github.com/goliatone/go-formdisplay/pkg/model"
	"github.com/goliatone/go-formdisplay/pkg/widgets"
)

// Scaffolder builds models from OpenAPI schemas.
type Scaffolder struct {
	catalog *widgets.Catalog
}

// Option customises the scaffolder.
type Option func(*Scaffolder)

// WithCatalog swaps the widget catalog consulted for default widgets.
func WithCatalog(catalog *widgets.Catalog) Option {
	return func(s *Scaffolder) {
		s.catalog = catalog
	}
}

// New constructs a Scaffolder with the builtin widget catalog.
func New(options ...Option) *Scaffolder {
	s := &Scaffolder{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.catalog == nil {
		s.catalog = widgets.NewCatalog()
	}
	return s
}

// FromSchema builds a model for entityType/bundle from the named component
// schema in an OpenAPI document. Properties are walked in sorted name order
// and weights follow that order, so scaffolding is deterministic. A fresh
// UUID is assigned.
func (s *Scaffolder) FromSchema(ctx context.Context, raw []byte, schemaName, entityType, bundle string) (model.Model, error) {
	if ctx == nil {
		return model.Model{}, errors.New("scaffold: context is required")
	}
	if err := ctx.Err(); err != nil {
		return model.Model{}, err
	}
	if entityType == "" || bundle == "" {
		return model.Model{}, errors.New("scaffold: entity type and bundle are required")
	}
	if len(raw) == 0 {
		return model.Model{}, errors.New("scaffold: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return model.Model{}, fmt.Errorf("scaffold: load document: %w", err)
	}

	if spec.Components == nil {
		return model.Model{}, fmt.Errorf("scaffold: document has no component schemas")
	}
	ref, ok := spec.Components.Schemas[schemaName]
	if !ok || ref == nil || ref.Value == nil {
		return model.Model{}, fmt.Errorf("scaffold: schema %q not found", schemaName)
	}

	m := model.Model{
		TargetEntityType: entityType,
		Bundle:           bundle,
		Mode:             model.DefaultMode,
		UUID:             uuid.NewString(),
		Hidden:           model.NewHiddenSet(),
	}

	names := make([]string, 0, len(ref.Value.Properties))
	for name := range ref.Value.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	weight := 0
	for _, name := range names {
		prop := ref.Value.Properties[name]
		if prop == nil || prop.Value == nil {
			continue
		}

		fieldType := fieldTypeFor(prop.Value)
		widget, ok := s.catalog.DefaultWidget(fieldType)
		if !ok {
			m.Hidden[name] = struct{}{}
			continue
		}

		m.Fields = append(m.Fields, model.Field{
			Name:     name,
			Widget:   widget,
			Weight:   weight,
			Region:   model.DefaultRegion,
			Settings: map[string]any{},
		})
		weight++
	}

	return m, nil
}

// fieldTypeFor maps an OpenAPI property schema onto the catalog's field type
// vocabulary.
func fieldTypeFor(schema *openapi3.Schema) string {
	var primary string
	if schema.Type != nil {
		if values := schema.Type.Slice(); len(values) > 0 {
			primary = values[0]
		}
	}

	switch primary {
	case "string":
		if len(schema.Enum) > 0 {
			return "list_string"
		}
		switch schema.Format {
		case "email":
			return "email"
		case "date-time", "date":
			return "datetime"
		case "uri", "url":
			return "link"
		case "binary":
			return "file"
		}
		return "string"
	case "integer":
		if len(schema.Enum) > 0 {
			return "list_integer"
		}
		return "integer"
	case "number":
		return "float"
	case "boolean":
		return "boolean"
	default:
		return primary
	}
}
