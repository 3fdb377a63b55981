// Package naming provides the pure case transforms used to derive a field's
// externally visible key from its natural snake_case identifier. Style tags
// match the serde rename_all vocabulary so declaration metadata written for
// other ecosystems ports over unchanged.
package naming

import "strings"

// Style identifies a case convention for Apply. Unknown styles fall open to
// the identity transform; callers wanting strict behaviour should validate
// tags with KnownStyle before building descriptors.
type Style string

const (
	StyleCamel          Style = "camelCase"
	StylePascal         Style = "PascalCase"
	StyleSnake          Style = "snake_case"
	StyleScreamingSnake Style = "SCREAMING_SNAKE_CASE"
	StyleKebab          Style = "kebab-case"
)

// KnownStyle reports whether the tag names a supported transform.
func KnownStyle(style Style) bool {
	switch style {
	case StyleCamel, StylePascal, StyleSnake, StyleScreamingSnake, StyleKebab:
		return true
	default:
		return false
	}
}

// Apply converts a snake_case identifier into the requested style. An
// unrecognised style returns the input unchanged.
func Apply(style Style, name string) string {
	switch style {
	case StyleCamel:
		return ToCamel(name)
	case StylePascal:
		return ToPascal(name)
	case StyleScreamingSnake:
		return strings.ToUpper(name)
	case StyleKebab:
		return strings.ReplaceAll(name, "_", "-")
	default:
		// snake_case identity and unknown tags alike.
		return name
	}
}

// ToCamel drops underscores and uppercases the character following each one.
// The first character keeps its case. Consecutive underscores carry a single
// pending-capitalization flag, so they produce no duplicate artifacts.
func ToCamel(name string) string {
	return camelize(name, false)
}

// ToPascal behaves like ToCamel but also uppercases the first character.
func ToPascal(name string) string {
	return camelize(name, true)
}

func camelize(name string, capitalizeFirst bool) string {
	var out strings.Builder
	out.Grow(len(name))

	capitalizeNext := capitalizeFirst
	for _, r := range name {
		switch {
		case r == '_':
			capitalizeNext = true
		case capitalizeNext:
			out.WriteString(strings.ToUpper(string(r)))
			capitalizeNext = false
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}

// ToSnake inverts ToCamel for identifiers with no leading/trailing or
// consecutive underscores: an underscore is inserted before each uppercase
// letter, which is then lowered.
func ToSnake(name string) string {
	var out strings.Builder
	out.Grow(len(name) + len(name)/4)

	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				out.WriteByte('_')
			}
			out.WriteRune(r + ('a' - 'A'))
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}
