package format

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores format strategies by tag, providing discovery and
// duplication safeguards. Implementations can embed or wrap this for
// dependency injection.
type Registry struct {
	mu      sync.RWMutex
	formats map[string]Format
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		formats: make(map[string]Format),
	}
}

// Register adds a strategy by its Name(). Duplicate tags return an error.
func (r *Registry) Register(f Format) error {
	if f == nil {
		return fmt.Errorf("format: strategy is required")
	}
	tag := f.Name()
	if tag == "" {
		return fmt.Errorf("format: strategy tag is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.formats[tag]; exists {
		return fmt.Errorf("format: format %q already registered", tag)
	}

	r.formats[tag] = f
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(f Format) {
	if err := r.Register(f); err != nil {
		panic(err)
	}
}

// Get retrieves a strategy by tag, returning *UnsupportedFormatError when the
// tag has no registered strategy.
func (r *Registry) Get(tag string) (Format, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.formats[tag]
	if !ok {
		return nil, &UnsupportedFormatError{Tag: tag}
	}
	return f, nil
}

// List returns a sorted list of registered tags.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tags := make([]string, 0, len(r.formats))
	for tag := range r.formats {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Has reports whether a strategy is registered for the tag.
func (r *Registry) Has(tag string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.formats[tag]
	return ok
}

var defaultRegistry = func() *Registry {
	r := NewRegistry()
	r.MustRegister(TOML())
	return r
}()

// Default returns the shared registry carrying the built-in strategies.
func Default() *Registry {
	return defaultRegistry
}
