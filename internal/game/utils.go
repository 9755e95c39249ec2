package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/iburimskiy/spinning-wheel/internal/config"
	"github.com/iburimskiy/spinning-wheel/internal/wheel"
)

// toScreen maps wheel space (hub at origin, y up) to screen pixels.
func toScreen(p wheel.Point) (float32, float32) {
	cx := float64(config.WindowWidth) / 2
	cy := float64(config.WindowHeight) / 2
	return float32(cx + p.X), float32(cy - p.Y)
}

// mix blends a towards b by t in [0, 1].
func mix(a, b color.RGBA, t float64) color.RGBA {
	t = wheel.Clamp01(t)
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
