package colorspace

import "math"

// Lab converts a color to CIE LAB coordinates referenced to the D65 white
// point. L is in [0, 100]; a and b are signed chrominance axes.
func Lab(c RGB) (l, a, b float64) {
	lr := LinearChannel(c.R)
	lg := LinearChannel(c.G)
	lb := LinearChannel(c.B)

	// Linear RGB -> CIE XYZ with the D65 white-point division folded into
	// the X and Z rows.
	x := (0.4124*lr + 0.3576*lg + 0.1805*lb) / 0.95047
	y := 0.2126*lr + 0.7152*lg + 0.0722*lb
	z := (0.0193*lr + 0.1192*lg + 0.9505*lb) / 1.08883

	fx := labF(x)
	fy := labF(y)
	fz := labF(z)

	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return l, a, b
}

// labF is the CIE nonlinear lightness transform.
func labF(t float64) float64 {
	if t > 0.008856 {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116.0
}
