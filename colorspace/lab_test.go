package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabKnownColors(t *testing.T) {
	tests := []struct {
		name    string
		color   RGB
		l, a, b float64
		tol     float64
	}{
		{name: "white", color: RGB{255, 255, 255}, l: 100, a: 0, b: 0, tol: 0.1},
		{name: "black", color: RGB{0, 0, 0}, l: 0, a: 0, b: 0, tol: 0.1},
		{name: "red", color: RGB{255, 0, 0}, l: 53.24, a: 80.09, b: 67.20, tol: 0.5},
		{name: "blue", color: RGB{0, 0, 255}, l: 32.30, a: 79.19, b: -107.86, tol: 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, a, b := Lab(tt.color)
			assert.InDelta(t, tt.l, l, tt.tol)
			assert.InDelta(t, tt.a, a, tt.tol)
			assert.InDelta(t, tt.b, b, tt.tol)
		})
	}
}

func TestLabGrayAxis(t *testing.T) {
	// Neutral grays sit on the L axis with near-zero chrominance.
	for _, v := range []uint8{32, 64, 128, 200} {
		_, a, b := Lab(RGB{v, v, v})
		assert.InDelta(t, 0, a, 0.01, "gray %d", v)
		assert.InDelta(t, 0, b, 0.01, "gray %d", v)
	}
}

func TestLabLightnessMonotonic(t *testing.T) {
	prevL, _, _ := Lab(RGB{0, 0, 0})
	for v := 16; v <= 255; v += 16 {
		l, _, _ := Lab(RGB{uint8(v), uint8(v), uint8(v)})
		assert.Greater(t, l, prevL)
		prevL = l
	}
}
