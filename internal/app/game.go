package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/excarousel/internal/config"
	"github.com/depeter/excarousel/internal/ui"
)

// Game implements ebiten.Game and manages the overall application.
type Game struct {
	Config  *config.Config
	Screens *ui.ScreenManager

	Width, Height int
}

// NewGame creates the Game with its first screen.
func NewGame(cfg *config.Config, first ui.Screen) *Game {
	g := &Game{
		Config:  cfg,
		Screens: ui.NewScreenManager(),
		Width:   cfg.UI.Width,
		Height:  cfg.UI.Height,
	}
	g.Screens.Push(first)
	ui.SetDebugOverlay(cfg.UI.Debug)
	return g
}

func (g *Game) Update() error {
	// Alt+Enter toggles fullscreen
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// F12 toggles debug overlay
	ui.ToggleDebugOverlay()

	if err := g.Screens.Update(); err != nil {
		return err
	}

	ui.UpdateInputState()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)
	g.Screens.Draw(screen)
	ui.DrawDebugOverlay(screen, g.Screens.DebugLines())
}

// Layout keeps a fixed logical resolution; the carousel geometry is built
// for it once.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Width, g.Height
}
