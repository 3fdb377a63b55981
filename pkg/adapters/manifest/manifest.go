// Package manifest extracts a configuration schema from a declarative YAML
// document, for projects that keep field metadata as data instead of struct
// tags or codegen:
//
//	title: Demo Configuration
//	fields:
//	  - name: global
//	    rename_all: camelCase
//	    fields:
//	      - name: show_warning_on_direct_execution
//	        type: bool
//	        default: true
//	        doc: |
//	          Warn when the script is executed directly.
//
// Sequence order in the document is declaration order and carries through to
// render order.
package manifest

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-configdocs/pkg/format"
	"github.com/goliatone/go-configdocs/pkg/naming"
	"github.com/goliatone/go-configdocs/pkg/schema"
)

// Options configures manifest extraction.
type Options struct {
	// Format stringifies typed default values from the document.
	Format format.Format
}

// Definition is a parsed manifest: the document title plus the extracted
// schema.
type Definition struct {
	Title  string
	Schema schema.Schema
}

type document struct {
	Title     string      `yaml:"title"`
	RenameAll string      `yaml:"rename_all"`
	Fields    []fieldDecl `yaml:"fields"`
}

type fieldDecl struct {
	Name      string      `yaml:"name"`
	Rename    string      `yaml:"rename"`
	Type      string      `yaml:"type"`
	Doc       string      `yaml:"doc"`
	Default   any         `yaml:"default"`
	RenameAll string      `yaml:"rename_all"`
	Fields    []fieldDecl `yaml:"fields"`
}

// Parse extracts a Definition from raw YAML.
func Parse(raw []byte, opts Options) (Definition, error) {
	if opts.Format == nil {
		return Definition{}, fmt.Errorf("manifest: format strategy is required")
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Definition{}, fmt.Errorf("manifest: parse document: %w", err)
	}
	if len(doc.Fields) == 0 {
		return Definition{}, fmt.Errorf("manifest: document declares no fields")
	}

	fields, err := convertFields(doc.Fields, naming.Style(doc.RenameAll), "", opts)
	if err != nil {
		return Definition{}, err
	}

	builder := schema.NewBuilder()
	for _, field := range fields {
		builder.AddField(field)
	}
	return Definition{Title: doc.Title, Schema: builder.Build()}, nil
}

// ParseFile extracts a Definition from a manifest on disk.
func ParseFile(path string, opts Options) (Definition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	def, err := Parse(raw, opts)
	if err != nil {
		return Definition{}, fmt.Errorf("manifest: %s: %w", path, err)
	}
	return def, nil
}

func convertFields(decls []fieldDecl, style naming.Style, path string, opts Options) ([]schema.Field, error) {
	fields := make([]schema.Field, 0, len(decls))
	for _, decl := range decls {
		if decl.Name == "" {
			return nil, fmt.Errorf("manifest: field at %q is missing a name", pathLabel(path))
		}

		name := decl.Rename
		if name == "" {
			name = naming.Apply(style, decl.Name)
		}

		at := decl.Name
		if path != "" {
			at = path + "." + decl.Name
		}

		field := schema.NewField(name)
		if doc := strings.TrimRight(decl.Doc, "\n"); doc != "" {
			field = field.WithDoc(doc)
		}
		if decl.Type != "" {
			field = field.WithType(decl.Type)
		}

		if len(decl.Fields) > 0 {
			// Each group declares its own case rule; rules do not inherit.
			children, err := convertFields(decl.Fields, naming.Style(decl.RenameAll), at, opts)
			if err != nil {
				return nil, err
			}
			field = field.WithNested(children...)
		} else if decl.Default != nil {
			literal, err := opts.Format.FormatScalar(decl.Default)
			if err != nil {
				return nil, fmt.Errorf("manifest: default for %q: %w", at, err)
			}
			field = field.WithDefault(literal)
		}

		fields = append(fields, field)
	}
	return fields, nil
}

func pathLabel(path string) string {
	if path == "" {
		return "top level"
	}
	return path
}
