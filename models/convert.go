package models

import "github.com/MCKesav/PaletteLive-website/colorspace"

// ConvertRequest asks for every representation of a single hex color.
type ConvertRequest struct {
	Color string `json:"color"`
}

type CMYKValues struct {
	C float64 `json:"c"`
	M float64 `json:"m"`
	Y float64 `json:"y"`
	K float64 `json:"k"`
}

type LabValues struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

type OKLCHValues struct {
	L      float64 `json:"l"`
	Chroma float64 `json:"chroma"`
	Hue    float64 `json:"hue"`
}

// ConvertResponse carries one color in every space the engine knows.
type ConvertResponse struct {
	Hex       string         `json:"hex"`
	RGB       colorspace.RGB `json:"rgb"`
	Luminance float64        `json:"luminance"`
	CMYK      CMYKValues     `json:"cmyk"`
	Lab       LabValues      `json:"lab"`
	OKLCH     OKLCHValues    `json:"oklch"`
}

// ContrastRequest asks for the WCAG contrast between two hex colors.
type ContrastRequest struct {
	Foreground string `json:"foreground"`
	Background string `json:"background"`
}

type ContrastResponse struct {
	Ratio float64                  `json:"ratio"`
	Grade colorspace.ContrastGrade `json:"grade"`
}

// RepairRequest carries a palette through auto contrast repair.
type RepairRequest struct {
	Colors []colorspace.NamedColor `json:"colors"`
}

type RepairResponse struct {
	Colors []colorspace.NamedColor `json:"colors"`
}

// ExportRequest renders a palette in one of the export formats.
type ExportRequest struct {
	Format string                  `json:"format"`
	Colors []colorspace.NamedColor `json:"colors"`
}

type ExportResponse struct {
	Format   string `json:"format"`
	Filename string `json:"filename"`
	Document string `json:"document"`
}

// ImportRequest extracts a palette from free text (a pasted CSS block, a
// .plpalette document, anything carrying hex colors).
type ImportRequest struct {
	Text string `json:"text"`
}

type ImportResponse struct {
	Colors []colorspace.NamedColor `json:"colors"`
}
