// Package palette generates card colors and their dimmed variants.
package palette

import (
	"image/color"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Random returns n opaque card colors drawn from r. Saturation and value are
// kept away from the extremes so every card reads against a dark background.
func Random(r *rand.Rand, n int) []color.RGBA {
	if n <= 0 {
		return nil
	}
	out := make([]color.RGBA, n)
	for i := range out {
		c := colorful.Hsv(r.Float64()*360, 0.35+r.Float64()*0.55, 0.55+r.Float64()*0.45)
		out[i] = toRGBA(c)
	}
	return out
}

// Dim blends c toward bg in Lab space. amount is clamped to [0, 1]: 0 returns
// c unchanged, 1 returns bg.
func Dim(c, bg color.RGBA, amount float64) color.RGBA {
	amount = clamp(amount, 0, 1)
	if amount == 0 {
		return c
	}
	if amount == 1 {
		return bg
	}
	from := fromRGBA(c)
	to := fromRGBA(bg)
	return toRGBA(from.BlendLab(to, amount).Clamped())
}

// Hex formats c as #rrggbb.
func Hex(c color.RGBA) string {
	return fromRGBA(c).Hex()
}

func fromRGBA(c color.RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}
