package icon

import (
	"image"
	"image/color"

	"github.com/depeter/excarousel/internal/palette"
)

var (
	darkBG    = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	cardLeft  = color.RGBA{R: 0xE0, G: 0x6C, B: 0x4C, A: 0xFF}
	cardMid   = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	cardRight = color.RGBA{R: 0x6A, G: 0xC8, B: 0x5C, A: 0xFF}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

// generate draws three cards side by side with the outer two dimmed, the way
// the carousel shows them.
func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRoundedRect(img, 0, 0, s, s, s*0.16, darkBG)

	sideW, sideH := s*0.22, s*0.46
	midW, midH := s*0.36, s*0.66
	sideY := (s - sideH) / 2
	fillRoundedRect(img, s*0.02, sideY, sideW, sideH, s*0.05, palette.Dim(cardLeft, darkBG, 0.55))
	fillRoundedRect(img, s-s*0.02-sideW, sideY, sideW, sideH, s*0.05, palette.Dim(cardRight, darkBG, 0.55))
	fillRoundedRect(img, (s-midW)/2, (s-midH)/2, midW, midH, s*0.06, cardMid)

	return img
}

// fillRoundedRect fills an opaque rectangle with corners of radius r.
func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, r float64, c color.RGBA) {
	bounds := img.Bounds()
	for y := max(int(yf), bounds.Min.Y); y <= int(yf+hf) && y < bounds.Max.Y; y++ {
		for x := max(int(xf), bounds.Min.X); x <= int(xf+wf) && x < bounds.Max.X; x++ {
			if insideRounded(float64(x), float64(y), xf, yf, wf, hf, r) {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func insideRounded(fx, fy, xf, yf, wf, hf, r float64) bool {
	var cx, cy float64
	switch {
	case fx < xf+r:
		cx = xf + r
	case fx > xf+wf-r:
		cx = xf + wf - r
	default:
		return true
	}
	switch {
	case fy < yf+r:
		cy = yf + r
	case fy > yf+hf-r:
		cy = yf + hf - r
	default:
		return true
	}
	dx, dy := fx-cx, fy-cy
	return dx*dx+dy*dy <= r*r
}
