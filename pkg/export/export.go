// Package export is the write-side harness around the renderer: it names the
// output document after the configuration type, renders, and persists with
// all-or-nothing semantics so a failed render never leaves a half-written
// file behind.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-configdocs/pkg/format"
	"github.com/goliatone/go-configdocs/pkg/render"
	"github.com/goliatone/go-configdocs/pkg/schema"
)

// FormatEnvVar selects the output format when the exporter is driven from a
// build step.
const FormatEnvVar = "CONFIG_DOCS_FORMAT"

// FormatFromEnv returns the format tag from the environment, defaulting to
// toml. The tag is not validated here; an unregistered tag fails at export.
func FormatFromEnv() string {
	if tag := strings.ToLower(strings.TrimSpace(os.Getenv(FormatEnvVar))); tag != "" {
		return tag
	}
	return format.TagTOML
}

// Exporter writes rendered documentation to a directory.
type Exporter struct {
	// Dir is the output directory, created if missing. Empty means "docs".
	Dir string
	// Format is the strategy tag used for rendering and file naming.
	Format string
	// Title, when set, becomes the document's top-level header.
	Title string
	// Registry overrides the strategy registry. Nil selects format.Default().
	Registry *format.Registry
	// Lint rejects schemas with empty sections or sibling name collisions
	// before rendering.
	Lint bool
}

// Export renders the Documenter's schema and writes
// <typeName>.<extension>.md under Dir, returning the written path.
func (e Exporter) Export(typeName string, d schema.Documenter) (string, error) {
	if d == nil {
		return "", fmt.Errorf("export: documenter is required")
	}
	return e.ExportSchema(typeName, d.ConfigSchema())
}

// ExportSchema is Export for an already extracted schema.
func (e Exporter) ExportSchema(typeName string, s schema.Schema) (string, error) {
	if typeName == "" {
		return "", fmt.Errorf("export: type name is required")
	}

	registry := e.Registry
	if registry == nil {
		registry = format.Default()
	}
	strategy, err := registry.Get(e.Format)
	if err != nil {
		return "", fmt.Errorf("export: %s: %w", typeName, err)
	}

	if e.Lint {
		if err := schema.Lint(s); err != nil {
			return "", fmt.Errorf("export: %s: %w", typeName, err)
		}
	}

	doc, err := render.Render(s, render.Options{
		Title:    e.Title,
		Format:   e.Format,
		Registry: registry,
	})
	if err != nil {
		return "", fmt.Errorf("export: %s: %w", typeName, err)
	}

	dir := e.Dir
	if dir == "" {
		dir = "docs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export: create %s: %w", dir, err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s.%s.md", typeName, strategy.Extension()))
	if err := writeAtomic(path, []byte(doc)); err != nil {
		return "", fmt.Errorf("export: %s: %w", typeName, err)
	}
	return path, nil
}

// writeAtomic persists via a temp file in the destination directory plus
// rename, so readers never observe a partial document.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
