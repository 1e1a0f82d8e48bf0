package colorspace

import "math"

// WCAG 2.x contrast thresholds.
const (
	ThresholdAANormal  = 4.5
	ThresholdAAANormal = 7.0
	ThresholdAALarge   = 3.0
	ThresholdAAALarge  = 4.5
)

// Luminance computes the WCAG relative luminance of a color.
// The channel transfer uses WCAG's own 0.03928 cutoff, which differs slightly
// from the generic sRGB one in LinearChannel. The two are intentionally kept
// separate so contrast results match the WCAG formula exactly.
func Luminance(c RGB) float64 {
	return 0.2126*wcagChannel(c.R) + 0.7152*wcagChannel(c.G) + 0.0722*wcagChannel(c.B)
}

func wcagChannel(v uint8) float64 {
	x := float64(v) / 255.0
	if x <= 0.03928 {
		return x / 12.92
	}
	return math.Pow((x+0.055)/1.055, 2.4)
}

// ContrastRatio computes the WCAG contrast ratio between two colors.
// The result is symmetric in its arguments and always in [1, 21].
func ContrastRatio(a, b RGB) float64 {
	la := Luminance(a)
	lb := Luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// ContrastGrade reports which WCAG levels a contrast ratio satisfies.
type ContrastGrade struct {
	AANormal  bool `json:"aaNormal"`
	AAANormal bool `json:"aaaNormal"`
	AALarge   bool `json:"aaLarge"`
	AAALarge  bool `json:"aaaLarge"`
}

// Grade classifies a ratio against the four fixed WCAG thresholds.
func Grade(ratio float64) ContrastGrade {
	return ContrastGrade{
		AANormal:  ratio >= ThresholdAANormal,
		AAANormal: ratio >= ThresholdAAANormal,
		AALarge:   ratio >= ThresholdAALarge,
		AAALarge:  ratio >= ThresholdAAALarge,
	}
}
