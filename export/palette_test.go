package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MCKesav/PaletteLive-website/colorspace"
)

func TestPaletteRoundTrip(t *testing.T) {
	palette := samplePalette()

	doc := Palette(palette)
	assert.Contains(t, doc, `"version": "1.0"`)
	assert.Contains(t, doc, `"format": "palettelive"`)

	got, err := ParsePalette([]byte(doc))
	require.NoError(t, err)

	want := make(map[string]string, len(palette))
	for _, c := range palette {
		want[c.Name] = c.Value
	}
	assert.Equal(t, want, got)
}

func TestParsePaletteRejectsForeignFormat(t *testing.T) {
	_, err := ParsePalette([]byte(`{"version":"1.0","format":"swatchbook","overrides":{}}`))
	assert.Error(t, err)
}

func TestParsePaletteRejectsGarbage(t *testing.T) {
	_, err := ParsePalette([]byte("not json at all"))
	assert.Error(t, err)
}

func TestParsePaletteEmptyOverrides(t *testing.T) {
	got, err := ParsePalette([]byte(`{"version":"1.0","format":"palettelive"}`))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExtractHexColors(t *testing.T) {
	text := "bg #0b1220 then surface #111A2E, border #1E2A44 / text #E2E8F0"
	got := ExtractHexColors(text)
	require.Len(t, got, 4)

	assert.Equal(t, colorspace.NamedColor{Name: "--color-bg", Value: "#0b1220"}, got[0])
	assert.Equal(t, colorspace.NamedColor{Name: "--color-surface", Value: "#111A2E"}, got[1])
	assert.Equal(t, colorspace.NamedColor{Name: "--color-border", Value: "#1E2A44"}, got[2])
	assert.Equal(t, colorspace.NamedColor{Name: "--color-text", Value: "#E2E8F0"}, got[3])
}

func TestExtractHexColorsCapsAtSixRoles(t *testing.T) {
	text := "#111111 #222222 #333333 #444444 #555555 #666666 #777777 #888888"
	got := ExtractHexColors(text)
	require.Len(t, got, 6)
	assert.Equal(t, "--color-accent", got[5].Name)
	assert.Equal(t, "#666666", got[5].Value)
}

func TestExtractHexColorsTooFewIsNoPalette(t *testing.T) {
	assert.Nil(t, ExtractHexColors("just one #ABCDEF here"))
	assert.Nil(t, ExtractHexColors("no colors at all"))
	// Short hex forms do not count.
	assert.Nil(t, ExtractHexColors("#FFF and #000 plus #ABCDEF"))
}
