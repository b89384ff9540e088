package render

import (
	"fmt"
	"image/color"
	"math"
)

// WithAlpha returns c with its alpha replaced by a (0-1).
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(math.Round(clamp01(a) * 255))
	return c
}

// RGBA builds a non-premultiplied color from 0-255 channels and a 0-1 alpha.
func RGBA(r, g, b uint8, a float64) color.NRGBA {
	return WithAlpha(color.NRGBA{R: r, G: g, B: b}, a)
}

// Lerp mixes two colors, t=0 gives a and t=1 gives b.
func Lerp(a, b color.NRGBA, t float64) color.NRGBA {
	t = clamp01(t)
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// Over composites c onto an opaque background and returns the opaque result.
func Over(c color.NRGBA, bg color.RGBA) color.RGBA {
	a := float64(c.A) / 255
	blend := func(fg, b uint8) uint8 {
		return uint8(math.Round(float64(fg)*a + float64(b)*(1-a)))
	}
	return color.RGBA{R: blend(c.R, bg.R), G: blend(c.G, bg.G), B: blend(c.B, bg.B), A: 255}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// FormatPercent formats a 0-100 value as a rounded percentage label.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(p)))
}
