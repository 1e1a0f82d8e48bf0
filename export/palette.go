package export

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/MCKesav/PaletteLive-website/colorspace"
)

const (
	// PaletteVersion is the version stamped into .plpalette documents.
	PaletteVersion = "1.0"
	// PaletteFormat identifies a .plpalette document.
	PaletteFormat = "palettelive"
)

// PaletteDocument is the round-trippable internal palette format. Unlike the
// one-way exports it is meant to be read back, so it carries a version and
// format marker.
type PaletteDocument struct {
	Version   string            `json:"version"`
	Format    string            `json:"format"`
	Overrides map[string]string `json:"overrides"`
}

// Palette serializes the named-color list into the internal .plpalette
// format, pretty-printed with 2-space indentation.
func Palette(colors []colorspace.NamedColor) string {
	doc := PaletteDocument{
		Version:   PaletteVersion,
		Format:    PaletteFormat,
		Overrides: make(map[string]string, len(colors)),
	}
	for _, c := range colors {
		doc.Overrides[c.Name] = c.Value
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		// A string map cannot fail to marshal.
		return ""
	}
	return string(out)
}

// ParsePalette reads a .plpalette document back into a name->color map.
// Documents without the palettelive format marker are rejected.
func ParsePalette(data []byte) (map[string]string, error) {
	var doc PaletteDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing palette document: %v", err)
	}
	if doc.Format != PaletteFormat {
		return nil, fmt.Errorf("unrecognized palette format %q", doc.Format)
	}
	if doc.Overrides == nil {
		doc.Overrides = map[string]string{}
	}
	return doc.Overrides, nil
}

var hexPattern = regexp.MustCompile(`#[0-9a-fA-F]{6}`)

// DefaultRoles are the role names assigned to imported colors, in index
// order. Index 0 is the background reference; text roles start at index 3
// (colorspace.TextRoleStart).
var DefaultRoles = []string{
	"--color-bg",
	"--color-surface",
	"--color-border",
	"--color-text",
	"--color-muted",
	"--color-accent",
}

// ExtractHexColors scans free text for #RRGGBB occurrences and assigns the
// first six, in order of appearance, to the default roles. Fewer than two
// matches means there is no usable palette and nil is returned; that is a
// no-op for the caller, not an error.
func ExtractHexColors(text string) []colorspace.NamedColor {
	matches := hexPattern.FindAllString(text, len(DefaultRoles))
	if len(matches) < 2 {
		return nil
	}

	colors := make([]colorspace.NamedColor, len(matches))
	for i, m := range matches {
		colors[i] = colorspace.NamedColor{Name: DefaultRoles[i], Value: m}
	}
	return colors
}
