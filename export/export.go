// Package export serializes a named-color palette into the interchange
// formats the PaletteLive extension offers: CSS custom properties, JSON
// tokens, a Tailwind config module, plain-text colorimetric reports and the
// round-trippable .plpalette document.
package export

import (
	"fmt"

	"github.com/MCKesav/PaletteLive-website/colorspace"
)

// Format identifies one of the supported export formats.
type Format string

const (
	FormatCSS      Format = "css"
	FormatJSON     Format = "json"
	FormatTailwind Format = "tailwind"
	FormatCMYK     Format = "cmyk"
	FormatLab      Format = "lab"
	FormatOKLCH    Format = "oklch"
	FormatPalette  Format = "plpalette"
)

type serializer struct {
	render    func([]colorspace.NamedColor) string
	extension string
}

// formats maps each format identifier to its serializer and download file
// extension. A lookup table rather than a switch so the set of formats stays
// in one place.
var formats = map[Format]serializer{
	FormatCSS:      {render: CSS, extension: ".txt"},
	FormatJSON:     {render: JSONTokens, extension: ".json"},
	FormatTailwind: {render: Tailwind, extension: ".js"},
	FormatCMYK:     {render: CMYKReport, extension: ".txt"},
	FormatLab:      {render: LabReport, extension: ".txt"},
	FormatOKLCH:    {render: OKLCHReport, extension: ".txt"},
	FormatPalette:  {render: Palette, extension: ".plpalette"},
}

// Render serializes the palette in the requested format and returns the
// document together with its download file extension.
func Render(format Format, colors []colorspace.NamedColor) (string, string, error) {
	s, ok := formats[format]
	if !ok {
		return "", "", fmt.Errorf("unknown export format %q", format)
	}
	return s.render(colors), s.extension, nil
}

// Formats lists the supported format identifiers.
func Formats() []Format {
	return []Format{
		FormatCSS, FormatJSON, FormatTailwind,
		FormatCMYK, FormatLab, FormatOKLCH, FormatPalette,
	}
}
