package ui

import "image/color"

// Colors — dark theme, cards supply their own color
var (
	ColorBackground    = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	ColorPrimary       = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	ColorText          = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	ColorTextSecondary = color.RGBA{R: 0x90, G: 0x90, B: 0x9C, A: 0xFF}
	ColorTextMuted     = color.RGBA{R: 0x60, G: 0x60, B: 0x6C, A: 0xFF}
	ColorFocusBorder   = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	ColorOverlay       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
	ColorCardLabel     = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x90}
)

// Layout constants
const (
	CardFocusBorder = 3.0
	CardLabelPad    = 16

	IndicatorGap = 28

	FontSizeHeading = 22
	FontSizeBody    = 16
	FontSizeSmall   = 13

	// cellKeepMargin is how many offscreen cells on each side stay cached.
	cellKeepMargin = 2
)
