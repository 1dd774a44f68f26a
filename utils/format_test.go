package utils

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat_HexToRGBA(t *testing.T) {
	testCases := []struct {
		hex  string
		want color.RGBA
	}{
		{"#ff0000", color.RGBA{R: 0xff, A: 0xff}},
		{"00ff7f", color.RGBA{G: 0xff, B: 0x7f, A: 0xff}},
		{"#fff", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{"#12345", color.RGBA{A: 0xff}},
		{"#zzzzzz", color.RGBA{A: 0xff}},
	}
	for _, tc := range testCases {
		t.Run(tc.hex, func(t *testing.T) {
			assert.Equal(t, tc.want, HexToRGBA(tc.hex))
		})
	}
}

func TestFormat_FormatTime(t *testing.T) {
	assert.Equal(t, "1.50s", FormatTime(1500*time.Millisecond))
	assert.Equal(t, "2m 5.00s", FormatTime(2*time.Minute+5*time.Second))
	assert.Equal(t, "1h 1m 1.00s", FormatTime(time.Hour+time.Minute+time.Second))
}

func TestFormat_DecorateText(t *testing.T) {
	assert.Equal(t, ErrorColor+"oops"+DefaultColor, DecorateText("oops", ErrorMessage))
	assert.Equal(t, "plain", DecorateText("plain", MessageType(42)))
}

func TestMath_MinAbs(t *testing.T) {
	assert.Equal(t, 2, Min(2, 7))
	assert.Equal(t, 2, Min(7, 2))
	assert.Equal(t, 3, Abs(-3))
	assert.Equal(t, 1.5, Abs(1.5))
}
