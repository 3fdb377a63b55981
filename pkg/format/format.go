// Package format defines the per-format policy consulted while rendering
// example blocks: file extension, fence delimiters, the bracketed section
// header, and scalar stringification. Strategies are looked up through a
// registry keyed by tag, so adding a format touches no renderer code.
package format

import "fmt"

// Format is the policy object for one serialization format.
type Format interface {
	// Name returns the registry tag, e.g. "toml".
	Name() string
	// Extension returns the file extension used when naming output documents.
	Extension() string
	// OpenBlock and CloseBlock bound a fenced example block.
	OpenBlock() string
	CloseBlock() string
	// BlockHeader renders the section header line inside an example block.
	BlockHeader(section string) string
	// FormatScalar converts one typed scalar into its literal textual form in
	// the format's grammar: strings quoted, booleans lowercased, numbers bare.
	FormatScalar(value any) (string, error)
}

// UnsupportedFormatError reports a lookup for a tag with no registered
// strategy. This is a programming error, not a data error; callers must not
// fall back to another format.
type UnsupportedFormatError struct {
	Tag string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("format: format %q not registered", e.Tag)
}
