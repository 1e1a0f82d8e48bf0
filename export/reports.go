package export

import (
	"fmt"
	"strings"

	"github.com/MCKesav/PaletteLive-website/colorspace"
)

// CMYKReport renders the palette as a plain-text CMYK report, one line per
// color. Entries whose hex value does not parse fall back to pure black,
// emitted as the sentinel line cmyk(0.0%, 0.0%, 0.0%, 100.0%).
func CMYKReport(colors []colorspace.NamedColor) string {
	var b strings.Builder
	b.WriteString("/* CMYK values for print workflows */\n")
	for _, nc := range colors {
		c, m, y, k := 0.0, 0.0, 0.0, 1.0
		if rgb, err := colorspace.ParseHex(nc.Value); err == nil {
			c, m, y, k = colorspace.CMYK(rgb)
		}
		fmt.Fprintf(&b, "%s: cmyk(%.1f%%, %.1f%%, %.1f%%, %.1f%%)\n",
			nc.Name, c*100, m*100, y*100, k*100)
	}
	return b.String()
}

// LabReport renders the palette as a plain-text CIE LAB (D65) report.
// Unparsable entries fall back to black, matching the CMYK policy.
func LabReport(colors []colorspace.NamedColor) string {
	var b strings.Builder
	b.WriteString("/* CIE LAB values (D65 white point) */\n")
	for _, nc := range colors {
		rgb, err := colorspace.ParseHex(nc.Value)
		if err != nil {
			rgb = colorspace.RGB{}
		}
		l, a, lb := colorspace.Lab(rgb)
		fmt.Fprintf(&b, "%s: lab(%.2f%% %.2f %.2f)\n", nc.Name, l, a, lb)
	}
	return b.String()
}

// OKLCHReport renders the palette as a plain-text OKLCH report. Unparsable
// entries fall back to black, matching the CMYK policy.
func OKLCHReport(colors []colorspace.NamedColor) string {
	var b strings.Builder
	b.WriteString("/* OKLCH values */\n")
	b.WriteString("/* format: oklch(lightness% chroma hue) */\n")
	for _, nc := range colors {
		rgb, err := colorspace.ParseHex(nc.Value)
		if err != nil {
			rgb = colorspace.RGB{}
		}
		l, c, h := colorspace.OKLCH(rgb)
		fmt.Fprintf(&b, "%s: oklch(%.1f%% %.4f %.1f)\n", nc.Name, l*100, c, h)
	}
	return b.String()
}
