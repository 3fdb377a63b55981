// Package schema defines the ordered field tree extracted from a
// configuration definition and consumed by renderers. Descriptors are built
// bottom-up: child fields and nested schemas exist before the section that
// wraps them, after which the tree is immutable. The Documenter interface is
// the boundary adapters implement; pkg/adapters ships reflection, manifest,
// and OpenAPI implementations.
package schema
