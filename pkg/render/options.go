package render

import "github.com/goliatone/go-configdocs/pkg/format"

// Options describe one render pass. Rendering is non-destructive, so the same
// schema can be rendered repeatedly with different options.
type Options struct {
	// Title, when set, is emitted once as a top-level header before any field.
	Title string
	// Format selects the example-block strategy by registry tag. Tags with no
	// registered strategy abort the render; there is no silent fallback.
	Format string
	// Registry overrides the strategy registry. Nil selects format.Default().
	Registry *format.Registry
}

func (o Options) registry() *format.Registry {
	if o.Registry != nil {
		return o.Registry
	}
	return format.Default()
}
