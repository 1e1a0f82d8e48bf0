package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGB
		wantErr bool
	}{
		{name: "with hash", input: "#818CF8", want: RGB{0x81, 0x8C, 0xF8}},
		{name: "without hash", input: "0B1220", want: RGB{0x0B, 0x12, 0x20}},
		{name: "lowercase", input: "#ff00aa", want: RGB{0xFF, 0x00, 0xAA}},
		{name: "surrounding whitespace", input: "  #FFFFFF ", want: RGB{255, 255, 255}},
		{name: "overlong payload truncated", input: "#818CF8FF", want: RGB{0x81, 0x8C, 0xF8}},
		{name: "too short", input: "#FFF", wantErr: true},
		{name: "five digits", input: "#12345", wantErr: true},
		{name: "non-hex characters", input: "#GGGGGG", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "bare hash", input: "#", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, hex := range []string{"#000000", "#FFFFFF", "#818CF8", "#0B1220", "#808080"} {
		c, err := ParseHex(hex)
		require.NoError(t, err)
		assert.Equal(t, hex, c.Hex())
	}
}

func TestLinearChannelEndpoints(t *testing.T) {
	assert.Equal(t, 0.0, LinearChannel(0))
	assert.InDelta(t, 1.0, LinearChannel(255), 1e-12)

	// The low-end linear segment divides by 12.92.
	assert.InDelta(t, (10.0/255.0)/12.92, LinearChannel(10), 1e-12)
}

func TestLinearChannelMonotonic(t *testing.T) {
	prev := LinearChannel(0)
	for v := 1; v <= 255; v++ {
		cur := LinearChannel(uint8(v))
		assert.Greater(t, cur, prev, "channel %d", v)
		prev = cur
	}
}
