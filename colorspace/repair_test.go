package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepairContrastConverges(t *testing.T) {
	bg := RGB{0, 0, 0}
	fg := RGB{0x0A, 0x0A, 0x0A}
	require.Less(t, ContrastRatio(fg, bg), ThresholdAANormal)

	repaired, ok := RepairContrast(fg, bg)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, ContrastRatio(repaired, bg), ThresholdAANormal)
}

func TestRepairContrastDirection(t *testing.T) {
	// A light background steps the foreground darker, a dark one lighter.
	light := RGB{255, 255, 255}
	dark := RGB{0, 0, 0}
	fg := RGB{200, 200, 200}

	darker, ok := RepairContrast(fg, light)
	assert.True(t, ok)
	assert.Less(t, darker.R, fg.R)

	lighter, ok := RepairContrast(RGB{40, 40, 40}, dark)
	assert.True(t, ok)
	assert.Greater(t, lighter.R, uint8(40))
}

func TestRepairContrastAlreadyPassing(t *testing.T) {
	fg := RGB{255, 255, 255}
	bg := RGB{0, 0, 0}
	repaired, ok := RepairContrast(fg, bg)
	assert.True(t, ok)
	assert.Equal(t, fg, repaired)
}

func TestRepairPalette(t *testing.T) {
	palette := []NamedColor{
		{Name: "--color-bg", Value: "#0B1220"},
		{Name: "--color-surface", Value: "#111A2E"},
		{Name: "--color-border", Value: "#1E2A44"},
		{Name: "--color-text", Value: "#1A2232"}, // barely differs from the background
		{Name: "--color-muted", Value: "#94A3B8"},
		{Name: "--color-accent", Value: "#818CF8"},
	}

	repaired := RepairPalette(palette)
	require.Len(t, repaired, len(palette))

	// Non-text roles are never touched, even when they fail contrast.
	for i := 0; i < TextRoleStart; i++ {
		assert.Equal(t, palette[i], repaired[i])
	}

	bg, err := ParseHex(palette[0].Value)
	require.NoError(t, err)
	for i := TextRoleStart; i < len(repaired); i++ {
		c, err := ParseHex(repaired[i].Value)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, ContrastRatio(c, bg), ThresholdAANormal, repaired[i].Name)
	}

	// Input is not mutated.
	assert.Equal(t, "#1A2232", palette[TextRoleStart].Value)
}

func TestRepairPaletteMalformedFailsClosed(t *testing.T) {
	badBackground := []NamedColor{
		{Name: "--color-bg", Value: "#12345"},
		{Name: "--color-surface", Value: "#111A2E"},
		{Name: "--color-border", Value: "#1E2A44"},
		{Name: "--color-text", Value: "#0A0A0A"},
	}
	assert.Equal(t, badBackground, RepairPalette(badBackground))

	badCandidate := []NamedColor{
		{Name: "--color-bg", Value: "#000000"},
		{Name: "--color-surface", Value: "#111A2E"},
		{Name: "--color-border", Value: "#1E2A44"},
		{Name: "--color-text", Value: "not-a-color"},
	}
	repaired := RepairPalette(badCandidate)
	assert.Equal(t, "not-a-color", repaired[3].Value)
}

func TestRepairPaletteTooShort(t *testing.T) {
	short := []NamedColor{
		{Name: "--color-bg", Value: "#000000"},
		{Name: "--color-text", Value: "#0A0A0A"},
	}
	assert.Equal(t, short, RepairPalette(short))
}
