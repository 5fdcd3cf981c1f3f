package color_test

import (
	"testing"

	"github.com/arcanaland/cardface/internal/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want color.Color
	}{
		{"#ff8000", color.Color{R: 255, G: 128, B: 0, A: 255}},
		{"ff8000", color.Color{R: 255, G: 128, B: 0, A: 255}},
		{"#FFF", color.White},
		{"#00000080", color.Color{A: 128}},
		{"White", color.White},
		{" transparent ", color.Transparent},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := color.Parse(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "#12", "#zzzzzz", "#1234567", "#123456zz", "chartreuse", "# 1 2 3", "#12 34 5", "#+1+2+3", "#-12345"} {
		t.Run("rejects_"+bad, func(t *testing.T) {
			_, err := color.Parse(bad)
			require.ErrorIs(t, err, color.ErrInvalidColor)
		})
	}
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#0a0b0c", color.RGB(10, 11, 12).Hex())
	assert.Equal(t, "#0a0b0c80", color.Color{R: 10, G: 11, B: 12, A: 128}.Hex())
}

func TestTextRoundTrip(t *testing.T) {
	in := color.Color{R: 1, G: 2, B: 3, A: 4}
	text, err := in.MarshalText()
	require.NoError(t, err)

	var out color.Color
	require.NoError(t, out.UnmarshalText(text))
	require.Equal(t, in, out)

	require.Error(t, out.UnmarshalText([]byte("nope")))
}

func TestContrastRatio(t *testing.T) {
	assert.InDelta(t, 21.0, color.ContrastRatio(color.Black, color.White), 0.01)
	assert.InDelta(t, 21.0, color.ContrastRatio(color.White, color.Black), 0.01)
	assert.InDelta(t, 1.0, color.ContrastRatio(color.White, color.White), 0.001)
}

func TestBlend(t *testing.T) {
	assert.Equal(t, color.Black, color.Black.Blend(color.White, 0))
	assert.Equal(t, color.White, color.Black.Blend(color.White, 1))

	mid := color.Black.Blend(color.White, 0.5)
	assert.Greater(t, mid.R, uint8(64))
	assert.Less(t, mid.R, uint8(192))
	assert.Equal(t, uint8(255), mid.A)
}

func TestRGBA(t *testing.T) {
	r, g, b, a := color.Color{R: 255, A: 255}.RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Zero(t, g)
	assert.Zero(t, b)
	assert.Equal(t, uint32(0xffff), a)
}
