package colorspace

// NamedColor pairs a stable role name (e.g. "--color-bg") with a hex color
// value. A palette is an ordered list of these; order is significant because
// export formats emit entries in role-index order.
type NamedColor struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

const (
	repairStep     = 12
	repairMaxSteps = 20
)

// TextRoleStart is the first palette index treated as a text role by
// RepairPalette. Index 0 is always the background reference.
const TextRoleStart = 3

// RepairContrast nudges a foreground color toward passing WCAG AA (ratio
// >= 4.5) against a fixed background. The direction is chosen once from the
// background's luminance: light backgrounds step the foreground darker, dark
// backgrounds step it lighter. Each step moves every channel by 12, clamped
// to [0, 255], for at most 20 steps. The returned bool reports whether the
// threshold was reached; if not, the best value reached is returned anyway.
func RepairContrast(fg, bg RGB) (RGB, bool) {
	if ContrastRatio(fg, bg) >= ThresholdAANormal {
		return fg, true
	}

	lighten := Luminance(bg) <= 0.5

	cur := fg
	for i := 0; i < repairMaxSteps; i++ {
		if lighten {
			cur = RGB{R: addClamp(cur.R), G: addClamp(cur.G), B: addClamp(cur.B)}
		} else {
			cur = RGB{R: subClamp(cur.R), G: subClamp(cur.G), B: subClamp(cur.B)}
		}
		if ContrastRatio(cur, bg) >= ThresholdAANormal {
			return cur, true
		}
	}
	return cur, false
}

// RepairPalette applies RepairContrast to every text-role entry (index >=
// TextRoleStart) of a palette, using the entry at index 0 as the background
// reference. Entries that already pass are left alone. Malformed hex in
// either the background or a candidate fails closed: the entry is returned
// unmodified. The input slice is not mutated.
func RepairPalette(colors []NamedColor) []NamedColor {
	out := make([]NamedColor, len(colors))
	copy(out, colors)

	if len(colors) <= TextRoleStart {
		return out
	}

	bg, err := ParseHex(colors[0].Value)
	if err != nil {
		return out
	}

	for i := TextRoleStart; i < len(out); i++ {
		fg, err := ParseHex(out[i].Value)
		if err != nil {
			continue
		}
		if ContrastRatio(fg, bg) >= ThresholdAANormal {
			continue
		}
		repaired, _ := RepairContrast(fg, bg)
		out[i].Value = repaired.Hex()
	}
	return out
}

func addClamp(v uint8) uint8 {
	if v > 255-repairStep {
		return 255
	}
	return v + repairStep
}

func subClamp(v uint8) uint8 {
	if v < repairStep {
		return 0
	}
	return v - repairStep
}
