package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MCKesav/PaletteLive-website/colorspace"
)

func samplePalette() []colorspace.NamedColor {
	return []colorspace.NamedColor{
		{Name: "--color-bg", Value: "#0B1220"},
		{Name: "--color-surface", Value: "#111A2E"},
		{Name: "--color-border", Value: "#1E2A44"},
		{Name: "--color-text", Value: "#E2E8F0"},
		{Name: "--color-muted", Value: "#94A3B8"},
		{Name: "--color-accent", Value: "#818CF8"},
	}
}

func TestCSS(t *testing.T) {
	got := CSS([]colorspace.NamedColor{{Name: "accent", Value: "#818CF8"}})
	assert.Equal(t, ":root {\n  --accent: #818CF8;\n}", got)
}

func TestCSSKeepsExistingPrefix(t *testing.T) {
	got := CSS([]colorspace.NamedColor{{Name: "--color-bg", Value: "#0B1220"}})
	assert.Equal(t, ":root {\n  --color-bg: #0B1220;\n}", got)
}

func TestJSONTokens(t *testing.T) {
	got := JSONTokens([]colorspace.NamedColor{{Name: "--color-bg", Value: "#0B1220"}})
	assert.Equal(t, "{\n  \"color-bg\": \"#0B1220\"\n}", got)
}

func TestJSONTokensOrder(t *testing.T) {
	got := JSONTokens(samplePalette())
	// Entries come out in role order, not sorted.
	bg := strings.Index(got, `"color-bg"`)
	accent := strings.Index(got, `"color-accent"`)
	require.GreaterOrEqual(t, bg, 0)
	require.GreaterOrEqual(t, accent, 0)
	assert.Less(t, bg, accent)
}

func TestTailwind(t *testing.T) {
	got := Tailwind([]colorspace.NamedColor{{Name: "--color-accent", Value: "#818CF8"}})
	assert.True(t, strings.HasPrefix(got, "module.exports = {"))
	assert.Contains(t, got, `"color-accent": '#818CF8',`)
	assert.Contains(t, got, "colors: {")
}

func TestRender(t *testing.T) {
	palette := samplePalette()

	tests := []struct {
		format    Format
		extension string
		contains  string
	}{
		{FormatCSS, ".txt", "--color-accent: #818CF8;"},
		{FormatJSON, ".json", `"color-accent": "#818CF8"`},
		{FormatTailwind, ".js", "module.exports"},
		{FormatCMYK, ".txt", "--color-accent: cmyk("},
		{FormatLab, ".txt", "--color-accent: lab("},
		{FormatOKLCH, ".txt", "--color-accent: oklch("},
		{FormatPalette, ".plpalette", `"format": "palettelive"`},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			doc, ext, err := Render(tt.format, palette)
			require.NoError(t, err)
			assert.Equal(t, tt.extension, ext)
			assert.Contains(t, doc, tt.contains)
		})
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	_, _, err := Render(Format("yaml"), samplePalette())
	assert.Error(t, err)
}

func TestRenderDoesNotMutateInput(t *testing.T) {
	palette := samplePalette()
	before := make([]colorspace.NamedColor, len(palette))
	copy(before, palette)

	for _, f := range Formats() {
		_, _, err := Render(f, palette)
		require.NoError(t, err)
	}
	assert.Equal(t, before, palette)
}
