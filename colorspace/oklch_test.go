package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOKLCHKnownColors(t *testing.T) {
	tests := []struct {
		name       string
		color      RGB
		l, c, h    float64
		achromatic bool
	}{
		{name: "black", color: RGB{0, 0, 0}, l: 0, c: 0, achromatic: true},
		{name: "white", color: RGB{255, 255, 255}, l: 1, c: 0, achromatic: true},
		{name: "red", color: RGB{255, 0, 0}, l: 0.6279, c: 0.2577, h: 29.23},
		{name: "green (0,128,0)", color: RGB{0, 128, 0}, l: 0.5196, c: 0.1766, h: 142.50},
		{name: "blue", color: RGB{0, 0, 255}, l: 0.4520, c: 0.3132, h: 264.05},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, c, h := OKLCH(tt.color)
			assert.InDelta(t, tt.l, l, 0.01)
			assert.InDelta(t, tt.c, c, 0.01)
			if !tt.achromatic {
				assert.InDelta(t, tt.h, h, 0.6)
			}
		})
	}
}

func TestOKLCHHueRange(t *testing.T) {
	colors := []RGB{
		{255, 0, 0}, {0, 255, 0}, {0, 0, 255},
		{255, 255, 0}, {0, 255, 255}, {255, 0, 255},
		{0x81, 0x8C, 0xF8}, {0x0B, 0x12, 0x20}, {13, 200, 77},
	}
	for _, c := range colors {
		_, _, h := OKLCH(c)
		assert.GreaterOrEqual(t, h, 0.0)
		assert.Less(t, h, 360.0)
	}
}

func TestOKLCHAchromatic(t *testing.T) {
	for _, v := range []uint8{16, 64, 128, 192, 240} {
		_, chroma, _ := OKLCH(RGB{v, v, v})
		assert.LessOrEqual(t, chroma, 0.01, "gray %d", v)
	}
}
