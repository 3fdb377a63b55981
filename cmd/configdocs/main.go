// configdocs generates markdown reference documentation from YAML field
// manifests.
//
// Usage:
//
//	go run ./cmd/configdocs -manifest config.manifest.yaml -output docs
//	CONFIG_DOCS_FORMAT=toml go run ./cmd/configdocs -manifest config.manifest.yaml
package main

import (
	"flag"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/goliatone/go-configdocs/pkg/adapters/manifest"
	"github.com/goliatone/go-configdocs/pkg/export"
	"github.com/goliatone/go-configdocs/pkg/format"
)

func main() {
	manifestPath := flag.String("manifest", "", "YAML field manifest to document")
	formatTag := flag.String("format", export.FormatFromEnv(), "example block format tag")
	outputDir := flag.String("output", "docs", "output directory")
	typeName := flag.String("name", "", "configuration type name (default: manifest file base name)")
	title := flag.String("title", "", "document title (default: manifest title)")
	lint := flag.Bool("lint", true, "reject schemas with empty sections or duplicate sibling names")
	flag.Parse()

	if *manifestPath == "" {
		log.Fatal("a -manifest path is required")
	}

	registry := format.Default()
	strategy, err := registry.Get(*formatTag)
	if err != nil {
		log.WithError(err).WithField("registered", registry.List()).Fatal("unsupported format")
	}

	def, err := manifest.ParseFile(*manifestPath, manifest.Options{Format: strategy})
	if err != nil {
		log.WithError(err).Fatal("failed to parse manifest")
	}

	name := *typeName
	if name == "" {
		name = baseName(*manifestPath)
	}
	docTitle := *title
	if docTitle == "" {
		docTitle = def.Title
	}

	exporter := export.Exporter{
		Dir:      *outputDir,
		Format:   *formatTag,
		Title:    docTitle,
		Registry: registry,
		Lint:     *lint,
	}

	path, err := exporter.ExportSchema(name, def.Schema)
	if err != nil {
		log.WithError(err).WithField("name", name).Fatal("failed to export documentation")
	}
	log.WithField("path", path).Info("generated documentation")
}

// baseName strips the directory and every extension, so
// "config.manifest.yaml" yields "config".
func baseName(path string) string {
	base := filepath.Base(path)
	if i := strings.IndexByte(base, '.'); i > 0 {
		return base[:i]
	}
	return base
}
