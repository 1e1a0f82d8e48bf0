package colorspace

import "math"

// OKLCH converts a color to the cylindrical form of the Oklab color space.
// L is lightness in [0, 1], chroma is colorfulness (about [0, 0.37] for sRGB)
// and hue is in degrees, normalized to [0, 360).
func OKLCH(c RGB) (l, chroma, hue float64) {
	L, a, b := oklab(c)

	chroma = math.Sqrt(a*a + b*b)
	hue = math.Atan2(b, a) * (180.0 / math.Pi)
	if hue < 0 {
		hue += 360.0
	}
	return L, chroma, hue
}

// oklab converts a color to rectangular Oklab (L, a, b) coordinates using the
// standard M1/M2 matrices.
func oklab(c RGB) (float64, float64, float64) {
	r := LinearChannel(c.R)
	g := LinearChannel(c.G)
	b := LinearChannel(c.B)

	// M1: linear RGB -> LMS
	lm := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	mm := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	sm := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	lp := math.Cbrt(lm)
	mp := math.Cbrt(mm)
	sp := math.Cbrt(sm)

	// M2: LMS' -> Lab
	L := 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp
	A := 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp
	B := 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp

	return L, A, B
}
