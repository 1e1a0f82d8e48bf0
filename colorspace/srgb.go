package colorspace

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB is an 8-bit-per-channel sRGB color.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// ParseHex parses a hex color string into an RGB value. The leading "#" is
// optional and input is case-insensitive. The payload is truncated to 6
// characters and must then be exactly 6 hex digits; anything else is an error.
// Every converter in this package parses through here so that malformed input
// gets one consistent fallback.
func ParseHex(s string) (RGB, error) {
	payload := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(payload) > 6 {
		payload = payload[:6]
	}
	if len(payload) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q: want 6 hex digits, got %d", s, len(payload))
	}

	r, rErr := strconv.ParseUint(payload[0:2], 16, 8)
	g, gErr := strconv.ParseUint(payload[2:4], 16, 8)
	b, bErr := strconv.ParseUint(payload[4:6], 16, 8)
	if rErr != nil || gErr != nil || bErr != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: non-hex characters", s)
	}

	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// Hex formats the color as an uppercase #RRGGBB string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// LinearChannel gamma-expands a single 8-bit sRGB channel to linear light.
// This is the generic sRGB transfer function with the 0.04045 cutoff, used by
// the LAB and OKLCH paths. The WCAG luminance path uses its own slightly
// different cutoff, see Luminance.
func LinearChannel(v uint8) float64 {
	x := float64(v) / 255.0
	if x <= 0.04045 {
		return x / 12.92
	}
	return math.Pow((x+0.055)/1.055, 2.4)
}
