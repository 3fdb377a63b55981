package schema

import (
	"fmt"
	"strings"
)

// Schema is the ordered field tree describing one configuration definition.
// Field order is declaration order and drives render order. A Schema is built
// once via Builder and treated as read-only afterwards, so independent call
// sites can render the same Schema concurrently without coordination.
type Schema struct {
	Fields []Field `json:"fields"`
}

// Documenter is implemented by configuration definition types that can
// describe themselves. How the schema is produced (hand-written, generated,
// reflection) is the implementer's concern; the core only consumes the result.
type Documenter interface {
	ConfigSchema() Schema
}

// NewBuilder returns an empty schema builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Builder accumulates field descriptors in call order. A Builder is good for
// one Build; start a fresh one per schema.
type Builder struct {
	fields []Field
	built  bool
}

// AddField appends a descriptor, preserving call order. It returns the
// builder for chaining.
func (b *Builder) AddField(field Field) *Builder {
	if b.built {
		panic("schema: builder reused after Build")
	}
	b.fields = append(b.fields, field)
	return b
}

// Build finalises the schema. Ownership of the accumulated fields transfers
// to the returned Schema; the builder must not be reused.
func (b *Builder) Build() Schema {
	if b.built {
		panic("schema: builder reused after Build")
	}
	b.built = true
	fields := b.fields
	b.fields = nil
	return Schema{Fields: fields}
}

// Lint reports contract violations the builder deliberately does not reject:
// sections without children and sibling name collisions. The renderer never
// calls it; harnesses that want loud failure before writing docs do.
func Lint(s Schema) error {
	var problems []string
	lintFields(s.Fields, "", &problems)
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("schema: %s", strings.Join(problems, "; "))
}

func lintFields(fields []Field, path string, problems *[]string) {
	seen := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		at := field.Name
		if path != "" {
			at = path + "." + field.Name
		}
		if _, dup := seen[field.Name]; dup {
			*problems = append(*problems, fmt.Sprintf("duplicate sibling field %q", at))
		}
		seen[field.Name] = struct{}{}

		if field.IsSection {
			if len(field.Children) == 0 {
				*problems = append(*problems, fmt.Sprintf("section %q has no children", at))
			}
			lintFields(field.Children, at, problems)
		}
	}
}
