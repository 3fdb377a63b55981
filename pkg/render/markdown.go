// Package render walks a schema tree and emits markdown reference
// documentation: one header, optional prose, and one fenced example block per
// section, recursing depth-first in declaration order. Leaf fields never get
// their own entry; they appear only inside their parent section's example
// block. Rendering is a pure function of its inputs and completes in O(N) for
// N fields.
package render

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/goliatone/go-configdocs/pkg/format"
	"github.com/goliatone/go-configdocs/pkg/schema"
)

// Placeholder is emitted as the example value of a leaf with no declared
// default. It is not valid syntax in any supported format; blocks containing
// it are illustrative rather than strictly parseable.
const Placeholder = "..."

// Render produces the markdown document for a schema. It fails before
// emitting anything when the options name an unregistered format tag.
func Render(s schema.Schema, opts Options) (string, error) {
	strategy, err := opts.registry().Get(opts.Format)
	if err != nil {
		return "", err
	}

	var buf strings.Builder

	if opts.Title != "" {
		fmt.Fprintf(&buf, "# %s\n\n", opts.Title)
	}

	for _, field := range s.Fields {
		writeField(&buf, field, strategy, 0, "")
	}

	return buf.String(), nil
}

// writeField documents one section and recurses into its section children.
// Leaf descriptors emit nothing at this level. The path is threaded for
// future cross-referencing and is not rendered.
func writeField(buf *strings.Builder, field schema.Field, strategy format.Format, depth int, path string) {
	if !field.IsSection {
		return
	}

	fmt.Fprintf(buf, "## %s\n", capitalize(field.Name))

	if field.Doc != "" {
		buf.WriteString("\n")
		buf.WriteString(field.Doc)
		buf.WriteString("\n")
	}

	buf.WriteString(strategy.OpenBlock())
	buf.WriteString("\n")
	buf.WriteString(strategy.BlockHeader(field.Name))
	buf.WriteString("\n\n")

	for _, child := range field.Children {
		if child.IsSection {
			continue
		}
		writeLeafEntry(buf, child)
	}

	buf.WriteString(strategy.CloseBlock())
	buf.WriteString("\n\n")

	current := field.Name
	if path != "" {
		current = path + "." + field.Name
	}

	for _, child := range field.Children {
		if child.IsSection {
			writeField(buf, child, strategy, depth+1, current)
		}
	}
}

// writeLeafEntry emits the comment lines and the `name = value` line for one
// leaf inside its parent's example block. Default strings arrive
// pre-stringified from the extraction adapter and pass through byte-for-byte.
func writeLeafEntry(buf *strings.Builder, leaf schema.Field) {
	if leaf.Doc != "" {
		for _, line := range strings.Split(leaf.Doc, "\n") {
			fmt.Fprintf(buf, "# %s\n", line)
		}
	}

	if leaf.HasDefault() {
		fmt.Fprintf(buf, "# Default: %s\n", leaf.Default)
	}

	value := leaf.Default
	if value == "" {
		value = Placeholder
	}

	fmt.Fprintf(buf, "%s = %s\n\n", leaf.Name, value)
}

// capitalize uppercases the first character only; the rest of the name keeps
// its case.
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
