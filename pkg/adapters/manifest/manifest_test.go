package manifest_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-configdocs/pkg/adapters/manifest"
	"github.com/goliatone/go-configdocs/pkg/format"
	"github.com/goliatone/go-configdocs/pkg/schema"
)

const demoManifest = `title: Demo Configuration
fields:
  - name: global
    rename_all: camelCase
    fields:
      - name: disable_widget_state_duplication_warning
        type: bool
        default: false
        doc: |
          Warn when a widget declares both a default value and a session key.
      - name: show_warning_on_direct_execution
        type: bool
        default: true
`

func TestParse(t *testing.T) {
	def, err := manifest.Parse([]byte(demoManifest), manifest.Options{Format: format.TOML()})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if def.Title != "Demo Configuration" {
		t.Fatalf("title = %q", def.Title)
	}

	want := schema.Schema{Fields: []schema.Field{
		{
			Name:      "global",
			IsSection: true,
			Children: []schema.Field{
				{
					Name:     "disableWidgetStateDuplicationWarning",
					TypeName: "bool",
					Default:  "false",
					Doc:      "Warn when a widget declares both a default value and a session key.",
				},
				{
					Name:     "showWarningOnDirectExecution",
					TypeName: "bool",
					Default:  "true",
				},
			},
		},
	}}
	if diff := cmp.Diff(want, def.Schema); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePreservesSequenceOrder(t *testing.T) {
	raw := `fields:
  - name: zeta
    type: string
  - name: alpha
    type: string
  - name: mid
    type: string
`
	def, err := manifest.Parse([]byte(raw), manifest.Options{Format: format.TOML()})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var names []string
	for _, field := range def.Schema.Fields {
		names = append(names, field.Name)
	}
	if diff := cmp.Diff([]string{"zeta", "alpha", "mid"}, names); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRenameBeatsStyle(t *testing.T) {
	raw := `rename_all: camelCase
fields:
  - name: log_level
    rename: LOGLEVEL
    type: string
  - name: temp_dir
    type: string
`
	def, err := manifest.Parse([]byte(raw), manifest.Options{Format: format.TOML()})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := def.Schema.Fields[0].Name; got != "LOGLEVEL" {
		t.Fatalf("rename not applied verbatim: %q", got)
	}
	if got := def.Schema.Fields[1].Name; got != "tempDir" {
		t.Fatalf("rename_all not applied: %q", got)
	}
}

func TestParseTypedDefaults(t *testing.T) {
	raw := `fields:
  - name: server
    fields:
      - name: port
        type: int
        default: 8080
      - name: host
        type: string
        default: localhost
`
	def, err := manifest.Parse([]byte(raw), manifest.Options{Format: format.TOML()})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	leaves := def.Schema.Fields[0].Children
	if got := leaves[0].Default; got != "8080" {
		t.Fatalf("int default = %q", got)
	}
	if got := leaves[1].Default; got != `"localhost"` {
		t.Fatalf("string default = %q", got)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := manifest.Parse([]byte(demoManifest), manifest.Options{}); err == nil {
		t.Fatal("expected error without a format strategy")
	}
	if _, err := manifest.Parse([]byte("title: Empty\n"), manifest.Options{Format: format.TOML()}); err == nil {
		t.Fatal("expected error for a manifest with no fields")
	}
	raw := `fields:
  - type: string
`
	_, err := manifest.Parse([]byte(raw), manifest.Options{Format: format.TOML()})
	if err == nil || !strings.Contains(err.Error(), "missing a name") {
		t.Fatalf("unexpected error: %v", err)
	}
}
