package render_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-configdocs/pkg/format"
	"github.com/goliatone/go-configdocs/pkg/render"
	"github.com/goliatone/go-configdocs/pkg/schema"
)

func globalSchema() schema.Schema {
	return schema.NewBuilder().
		AddField(schema.NewField("global").WithNested(
			schema.NewField("disableWidgetStateDuplicationWarning").
				WithDefault("false").
				WithType("bool"),
			schema.NewField("showWarningOnDirectExecution").
				WithDefault("true").
				WithType("bool"),
		)).
		Build()
}

func TestRenderGlobalSection(t *testing.T) {
	got, err := render.Render(globalSchema(), render.Options{Format: format.TagTOML})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := strings.Join([]string{
		"## Global",
		"```toml",
		"[global]",
		"",
		"# Default: false",
		"disableWidgetStateDuplicationWarning = false",
		"",
		"# Default: true",
		"showWarningOnDirectExecution = true",
		"",
		"```",
		"",
		"",
	}, "\n")

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderTitle(t *testing.T) {
	got, err := render.Render(schema.Schema{}, render.Options{
		Title:  "Configuration Reference",
		Format: format.TagTOML,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "# Configuration Reference\n\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRenderDeterminism(t *testing.T) {
	opts := render.Options{Title: "Demo", Format: format.TagTOML}
	first, err := render.Render(globalSchema(), opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	second, err := render.Render(globalSchema(), opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if first != second {
		t.Fatal("identical inputs produced different output")
	}
}

func TestRenderPreservesSectionOrder(t *testing.T) {
	s := schema.NewBuilder().
		AddField(schema.NewField("zeta").WithNested(schema.NewField("z"))).
		AddField(schema.NewField("alpha").WithNested(schema.NewField("a"))).
		Build()

	got, err := render.Render(s, render.Options{Format: format.TagTOML})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Index(got, "## Zeta") > strings.Index(got, "## Alpha") {
		t.Fatalf("sections rendered out of declaration order:\n%s", got)
	}
}

func TestRenderSuppressesTopLevelLeaves(t *testing.T) {
	s := schema.NewBuilder().
		AddField(schema.NewField("log_level").WithDefault(`"info"`).WithType("string")).
		AddField(schema.NewField("verbose").WithDefault("false").WithType("bool")).
		Build()

	got, err := render.Render(s, render.Options{Format: format.TagTOML})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "" {
		t.Fatalf("leaf-only schema produced output %q", got)
	}
}

func TestRenderDocCommentsAndPlaceholder(t *testing.T) {
	s := schema.NewBuilder().
		AddField(schema.NewField("server").
			WithDoc("Settings for the embedded server.").
			WithNested(
				schema.NewField("address").
					WithDoc("Interface to bind.\nAccepts host:port."),
			)).
		Build()

	got, err := render.Render(s, render.Options{Format: format.TagTOML})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := strings.Join([]string{
		"## Server",
		"",
		"Settings for the embedded server.",
		"```toml",
		"[server]",
		"",
		"# Interface to bind.",
		"# Accepts host:port.",
		"address = ...",
		"",
		"```",
		"",
		"",
	}, "\n")

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderRecursesIntoNestedSections(t *testing.T) {
	s := schema.NewBuilder().
		AddField(schema.NewField("server").WithNested(
			schema.NewField("port").WithDefault("8080").WithType("int"),
			schema.NewField("tls").WithNested(
				schema.NewField("enabled").WithDefault("false").WithType("bool"),
			),
		)).
		Build()

	got, err := render.Render(s, render.Options{Format: format.TagTOML})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	serverAt := strings.Index(got, "## Server")
	tlsAt := strings.Index(got, "## Tls")
	if serverAt < 0 || tlsAt < 0 || tlsAt < serverAt {
		t.Fatalf("nested section missing or misordered:\n%s", got)
	}
	if strings.Contains(got[:tlsAt], "enabled = false") {
		t.Fatalf("nested leaf leaked into parent block:\n%s", got)
	}
	if !strings.Contains(got, "[tls]") {
		t.Fatalf("nested block header missing:\n%s", got)
	}
}

func TestRenderUnsupportedFormatAborts(t *testing.T) {
	got, err := render.Render(globalSchema(), render.Options{Format: "yaml"})
	if err == nil {
		t.Fatal("expected error for unregistered format")
	}
	var unsupported *format.UnsupportedFormatError
	if !errors.As(err, &unsupported) {
		t.Fatalf("error %T is not *UnsupportedFormatError", err)
	}
	if unsupported.Tag != "yaml" {
		t.Fatalf("offending tag = %q", unsupported.Tag)
	}
	if got != "" {
		t.Fatalf("failed render still produced output %q", got)
	}
}
