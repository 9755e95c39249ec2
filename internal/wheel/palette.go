package wheel

import (
	"image/color"
	"math"
)

// PaletteColor picks the i-th of n evenly spaced hues, for slices that do
// not name a color of their own.
func PaletteColor(i, n int) color.RGBA {
	if n <= 0 {
		n = 1
	}
	hue := float64(i) * 360 / float64(n)
	r, g, b := hsvToRgb(hue, 0.65, 0.8)
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return toByte(r + m), toByte(g + m), toByte(b + m)
}

func toByte(v float64) uint8 {
	return uint8(math.Round(Clamp01(v) * 255))
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
