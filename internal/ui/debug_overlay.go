package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var debugOverlayVisible bool

// SetDebugOverlay shows or hides the debug overlay.
func SetDebugOverlay(visible bool) {
	debugOverlayVisible = visible
}

// ToggleDebugOverlay toggles the debug overlay on F12.
func ToggleDebugOverlay() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		debugOverlayVisible = !debugOverlayVisible
	}
}

// DrawDebugOverlay draws lines in a panel at the top right if the overlay is
// visible.
func DrawDebugOverlay(screen *ebiten.Image, lines []string) {
	if !debugOverlayVisible {
		return
	}

	const (
		padX    = 16.0
		padY    = 12.0
		lineH   = 18.0
		marginR = 20.0
		marginT = 20.0
		panelW  = 360.0
	)

	panelH := float64(max(len(lines), 1)+1)*lineH + padY*2
	px := float64(screen.Bounds().Dx()) - panelW - marginR
	py := marginT

	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), ColorOverlay, false)

	x := px + padX
	y := py + padY

	DrawText(screen, "Debug (F12 to close)", x, y, FontSizeSmall, ColorPrimary)
	y += lineH

	if len(lines) == 0 {
		DrawText(screen, "(none)", x, y, FontSizeSmall, ColorTextSecondary)
		return
	}
	for _, line := range lines {
		DrawText(screen, line, x, y, FontSizeSmall, ColorText)
		y += lineH
	}
}
