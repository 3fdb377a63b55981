// Package openapi extracts a configuration schema from a named component
// schema of an OpenAPI document. It serves projects whose configuration
// surface is already described alongside their API contract. Property maps in
// OpenAPI documents are unordered, so fields are emitted sorted by property
// name.
package openapi

import (
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-configdocs/pkg/format"
	"github.com/goliatone/go-configdocs/pkg/schema"
)

// Options configures extraction from an OpenAPI document.
type Options struct {
	// Component names the schema under components.schemas to extract.
	Component string
	// Format stringifies scalar defaults declared in the document.
	Format format.Format
}

// FromDocument extracts a configuration schema from raw OpenAPI JSON or YAML.
func FromDocument(raw []byte, opts Options) (schema.Schema, error) {
	if opts.Component == "" {
		return schema.Schema{}, fmt.Errorf("openapi: component name is required")
	}
	if opts.Format == nil {
		return schema.Schema{}, fmt.Errorf("openapi: format strategy is required")
	}
	if len(raw) == 0 {
		return schema.Schema{}, fmt.Errorf("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return schema.Schema{}, fmt.Errorf("openapi: load document: %w", err)
	}
	if spec.Components == nil || len(spec.Components.Schemas) == 0 {
		return schema.Schema{}, fmt.Errorf("openapi: document declares no component schemas")
	}

	ref, ok := spec.Components.Schemas[opts.Component]
	if !ok {
		return schema.Schema{}, fmt.Errorf("openapi: component schema %q not found", opts.Component)
	}
	if ref.Value == nil {
		return schema.Schema{}, fmt.Errorf("openapi: component schema %q is unresolved", opts.Component)
	}

	fields, err := fieldsFromObject(ref.Value, opts, opts.Component)
	if err != nil {
		return schema.Schema{}, err
	}

	builder := schema.NewBuilder()
	for _, field := range fields {
		builder.AddField(field)
	}
	return builder.Build(), nil
}

func fieldsFromObject(src *openapi3.Schema, opts Options, path string) ([]schema.Field, error) {
	if !typeIs(src, "object") && src.Type != nil {
		return nil, fmt.Errorf("openapi: schema %q is not an object", path)
	}

	names := make([]string, 0, len(src.Properties))
	for name := range src.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]schema.Field, 0, len(names))
	for _, name := range names {
		ref := src.Properties[name]
		if ref == nil || ref.Value == nil {
			return nil, fmt.Errorf("openapi: property %q at %q is unresolved", name, path)
		}
		field, err := convertProperty(name, ref.Value, opts, path+"."+name)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return fields, nil
}

func convertProperty(name string, src *openapi3.Schema, opts Options, path string) (schema.Field, error) {
	field := schema.NewField(name)
	if src.Description != "" {
		field = field.WithDoc(src.Description)
	}

	label := typeLabel(src.Type)

	switch {
	case typeIs(src, "object"), src.Type == nil:
		children, err := fieldsFromObject(src, opts, path)
		if err != nil {
			return schema.Field{}, err
		}
		return field.WithType("object").WithNested(children...), nil

	case typeIs(src, "boolean"), typeIs(src, "integer"), typeIs(src, "number"), typeIs(src, "string"):
		field = field.WithType(label)
		if src.Default != nil {
			literal, err := opts.Format.FormatScalar(src.Default)
			if err != nil {
				return schema.Field{}, fmt.Errorf("openapi: default for %q: %w", path, err)
			}
			field = field.WithDefault(literal)
		}
		return field, nil

	default:
		return schema.Field{}, fmt.Errorf("openapi: property %q has unsupported type %q", path, label)
	}
}

func typeIs(src *openapi3.Schema, want string) bool {
	return src.Type != nil && src.Type.Is(want)
}

func typeLabel(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	default:
		return strings.Join(values, ",")
	}
}
