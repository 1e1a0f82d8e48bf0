package colorspace

// CMYK converts a color to subtractive CMYK components, each in [0, 1].
// Pure black (and only pure black) yields K=1 with C=M=Y=0.
func CMYK(col RGB) (c, m, y, k float64) {
	r := float64(col.R) / 255.0
	g := float64(col.G) / 255.0
	b := float64(col.B) / 255.0

	k = 1 - max3(r, g, b)
	if k < 1 {
		c = (1 - r - k) / (1 - k)
		m = (1 - g - k) / (1 - k)
		y = (1 - b - k) / (1 - k)
	}
	return c, m, y, k
}

func max3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
