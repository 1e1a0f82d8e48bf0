package export

import (
	"strings"

	"github.com/MCKesav/PaletteLive-website/colorspace"
)

// cssName normalizes a role name to a CSS custom-property name with a
// leading "--".
func cssName(name string) string {
	if strings.HasPrefix(name, "--") {
		return name
	}
	return "--" + name
}

// tokenName strips the custom-property prefix for use as a plain token key.
func tokenName(name string) string {
	return strings.TrimPrefix(name, "--")
}

// CSS renders the palette as a :root custom-property block, one declaration
// per line in palette order.
func CSS(colors []colorspace.NamedColor) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, c := range colors {
		b.WriteString("  ")
		b.WriteString(cssName(c.Name))
		b.WriteString(": ")
		b.WriteString(c.Value)
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

// JSONTokens renders the palette as a pretty-printed JSON object mapping
// token names (leading "--" stripped) to hex values, in palette order.
// Entries are written by hand rather than through encoding/json so the
// object preserves role order instead of sorting keys.
func JSONTokens(colors []colorspace.NamedColor) string {
	var b strings.Builder
	b.WriteString("{\n")
	for i, c := range colors {
		b.WriteString("  ")
		b.WriteString(quoteJSON(tokenName(c.Name)))
		b.WriteString(": ")
		b.WriteString(quoteJSON(c.Value))
		if i < len(colors)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}

// Tailwind renders the palette as a Tailwind config module body with a
// colors map under theme.extend.
func Tailwind(colors []colorspace.NamedColor) string {
	var b strings.Builder
	b.WriteString("module.exports = {\n")
	b.WriteString("  theme: {\n")
	b.WriteString("    extend: {\n")
	b.WriteString("      colors: {\n")
	for _, c := range colors {
		b.WriteString("        ")
		b.WriteString(quoteJSON(tokenName(c.Name)))
		b.WriteString(": '")
		b.WriteString(c.Value)
		b.WriteString("',\n")
	}
	b.WriteString("      }\n")
	b.WriteString("    }\n")
	b.WriteString("  }\n")
	b.WriteString("}")
	return b.String()
}

// quoteJSON wraps a token key or hex value in double quotes. Names and
// values here are plain identifiers and hex strings, so escaping beyond the
// quote characters themselves is not needed.
func quoteJSON(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
