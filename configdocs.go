// Package configdocs generates markdown reference documentation for
// configuration definitions: a schema tree is extracted from the definition
// (by reflection, a YAML manifest, or an OpenAPI component) and rendered into
// a nested document with one fenced, format-specific example block per
// section. The root package aliases the building blocks and offers the
// shortest path from a Documenter to a document.
package configdocs

import (
	"github.com/goliatone/go-configdocs/pkg/export"
	"github.com/goliatone/go-configdocs/pkg/render"
	"github.com/goliatone/go-configdocs/pkg/schema"
)

// Documenter is implemented by configuration definition types that can
// describe themselves; alias exported via the root package for convenience.
type Documenter = schema.Documenter

// Schema is the ordered field tree describing one configuration definition.
type Schema = schema.Schema

// Field is the atomic schema node, leaf or section.
type Field = schema.Field

// Options describe one render pass (title, format tag, registry override).
type Options = render.Options

// NewField creates a leaf descriptor ready for fluent decoration.
func NewField(name string) Field {
	return schema.NewField(name)
}

// NewBuilder starts an empty schema builder.
func NewBuilder() *schema.Builder {
	return schema.NewBuilder()
}

// Generate renders documentation for a type that describes itself. It is the
// simplest entry point for callers that just want the markdown string.
func Generate(d Documenter, opts Options) (string, error) {
	return render.Render(d.ConfigSchema(), opts)
}

// GenerateSchema renders documentation for an already extracted schema.
func GenerateSchema(s Schema, opts Options) (string, error) {
	return render.Render(s, opts)
}

// Export renders and persists documentation for a type that describes itself,
// writing <typeName>.<extension>.md under dir with all-or-nothing semantics.
// It returns the written path.
func Export(dir, formatTag, typeName string, d Documenter) (string, error) {
	exporter := export.Exporter{Dir: dir, Format: formatTag}
	return exporter.Export(typeName, d)
}
