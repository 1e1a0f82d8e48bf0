package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MCKesav/PaletteLive-website/colorspace"
)

func TestCMYKReport(t *testing.T) {
	got := CMYKReport([]colorspace.NamedColor{
		{Name: "--color-bg", Value: "#FFFFFF"},
		{Name: "--color-text", Value: "#000000"},
		{Name: "--color-muted", Value: "#808080"},
	})

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "/*"))
	assert.Equal(t, "--color-bg: cmyk(0.0%, 0.0%, 0.0%, 0.0%)", lines[1])
	assert.Equal(t, "--color-text: cmyk(0.0%, 0.0%, 0.0%, 100.0%)", lines[2])
	// Mid gray: no chromatic components, K close to 50%.
	assert.Contains(t, lines[3], "cmyk(0.0%, 0.0%, 0.0%, 49.8%)")
}

func TestCMYKReportBlackFallback(t *testing.T) {
	// Malformed entries fall back to the pure-black sentinel instead of
	// failing the whole report.
	got := CMYKReport([]colorspace.NamedColor{
		{Name: "--color-bg", Value: "#12345"},
		{Name: "--color-text", Value: "oops"},
	})
	assert.Contains(t, got, "--color-bg: cmyk(0.0%, 0.0%, 0.0%, 100.0%)")
	assert.Contains(t, got, "--color-text: cmyk(0.0%, 0.0%, 0.0%, 100.0%)")
}

func TestLabReport(t *testing.T) {
	got := LabReport([]colorspace.NamedColor{
		{Name: "--color-bg", Value: "#FFFFFF"},
		{Name: "--color-text", Value: "#000000"},
	})
	assert.Contains(t, got, "/* CIE LAB values (D65 white point) */\n")
	assert.Contains(t, got, "--color-bg: lab(100.00% 0.00 0.00)")
	assert.Contains(t, got, "--color-text: lab(0.00% 0.00 0.00)")
}

func TestLabReportMalformedFallsBackToBlack(t *testing.T) {
	got := LabReport([]colorspace.NamedColor{{Name: "--color-bg", Value: "#FFF"}})
	assert.Contains(t, got, "--color-bg: lab(0.00% 0.00 0.00)")
}

func TestOKLCHReport(t *testing.T) {
	got := OKLCHReport([]colorspace.NamedColor{
		{Name: "--color-bg", Value: "#FFFFFF"},
		{Name: "--color-text", Value: "#000000"},
	})

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 4)
	// Two header comment lines, the second documenting the value format.
	assert.True(t, strings.HasPrefix(lines[0], "/*"))
	assert.True(t, strings.HasPrefix(lines[1], "/*"))
	// The hue of a pure achromatic color is numerically arbitrary, so only
	// lightness and chroma are pinned for white.
	assert.Contains(t, lines[2], "--color-bg: oklch(100.0% 0.0000 ")
	assert.Equal(t, "--color-text: oklch(0.0% 0.0000 0.0)", lines[3])
}
