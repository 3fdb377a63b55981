package format

import (
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// TagTOML is the registry tag for the TOML strategy.
const TagTOML = "toml"

// TOML returns the strategy for TOML example blocks.
func TOML() Format {
	return tomlFormat{}
}

type tomlFormat struct{}

func (tomlFormat) Name() string {
	return TagTOML
}

func (tomlFormat) Extension() string {
	return "toml"
}

func (tomlFormat) OpenBlock() string {
	return "```toml"
}

func (tomlFormat) CloseBlock() string {
	return "```"
}

func (tomlFormat) BlockHeader(section string) string {
	return "[" + section + "]"
}

// FormatScalar produces the TOML literal for one scalar. Strings become
// basic (double-quoted) strings; go-toml would prefer literal single quotes
// for them, so they are escaped here instead. Everything else goes through
// go-toml wrapped in a single-key table, with the key prefix stripped from
// the encoded line.
func (tomlFormat) FormatScalar(value any) (string, error) {
	if s, ok := value.(string); ok {
		return encodeBasicString(s), nil
	}

	raw, err := toml.Marshal(map[string]any{"v": value})
	if err != nil {
		return "", fmt.Errorf("format: toml scalar: %w", err)
	}

	const prefix = "v = "
	encoded := strings.TrimSuffix(string(raw), "\n")
	if !strings.HasPrefix(encoded, prefix) {
		return "", fmt.Errorf("format: value %v did not encode as a toml scalar", value)
	}
	return strings.TrimPrefix(encoded, prefix), nil
}

func encodeBasicString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
