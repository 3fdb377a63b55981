package schema

// Field is the atomic schema node: either a leaf holding one scalar setting or
// a section grouping child fields. Struct fields are annotated so harnesses
// can serialise schema snapshots directly when needed.
//
// Optional attributes use the empty string as absence: scalar defaults arrive
// pre-stringified by a format strategy, which never yields an empty string, so
// no sentinel pointer is required.
type Field struct {
	Name      string  `json:"name"`
	Doc       string  `json:"doc,omitempty"`
	Default   string  `json:"default,omitempty"`
	TypeName  string  `json:"type,omitempty"`
	IsSection bool    `json:"section,omitempty"`
	Children  []Field `json:"children,omitempty"`
}

// NewField creates a leaf descriptor with no doc, default, or type set.
func NewField(name string) Field {
	return Field{Name: name}
}

// WithDoc sets the documentation text. The text is preserved verbatim through
// rendering; no markdown escaping is performed.
func (f Field) WithDoc(text string) Field {
	f.Doc = text
	return f
}

// WithDefault attaches the pre-stringified default value.
func (f Field) WithDefault(value string) Field {
	f.Default = value
	return f
}

// WithType sets the display-only type label.
func (f Field) WithType(name string) Field {
	f.TypeName = name
	return f
}

// WithNested turns the descriptor into a section holding the supplied
// children. Leaves and sections may be siblings within one child list.
func (f Field) WithNested(children ...Field) Field {
	f.IsSection = true
	f.Children = children
	return f
}

// HasDefault reports whether a default value was declared.
func (f Field) HasDefault() bool {
	return f.Default != ""
}
