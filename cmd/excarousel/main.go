package main

import (
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/depeter/excarousel/assets/icon"
	"github.com/depeter/excarousel/internal/app"
	"github.com/depeter/excarousel/internal/carousel"
	"github.com/depeter/excarousel/internal/config"
	"github.com/depeter/excarousel/internal/palette"
	"github.com/depeter/excarousel/internal/ui"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("Failed to load environment: %v", err)
	}

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Init fonts
	if err := ui.InitFonts(goregular.TTF); err != nil {
		log.Fatalf("Failed to init fonts: %v", err)
	}

	seed := cfg.Carousel.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("Starting with %d cards, seed %d", cfg.Carousel.ItemCount, seed)

	first, err := newCarousel(cfg, seed)
	if err != nil {
		log.Fatalf("Failed to build carousel: %v", err)
	}
	game := app.NewGame(cfg, first)

	// Configure window
	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("ExCarousel")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// newCarousel builds a carousel screen with card colors drawn from seed. R on
// the screen builds the next one from a seed drawn off this one; S pins the
// current seed in the config file.
func newCarousel(cfg *config.Config, seed int64) (*ui.CarouselScreen, error) {
	rng := rand.New(rand.NewSource(seed))
	colors := palette.Random(rng, cfg.Carousel.ItemCount)
	cards := make([]carousel.Card, len(colors))
	for i, c := range colors {
		cards[i] = carousel.Card{Color: c}
	}

	s, err := ui.NewCarouselScreen(cfg.Carousel, cfg.UI.Width, cfg.UI.Height, cards)
	if err != nil {
		return nil, err
	}
	s.Seed = seed
	s.SaveSeed = config.SaveSeed
	s.Regenerate = func() (ui.Screen, error) {
		// Seed 0 means time-based in the config file, so never hand it out.
		next, err := newCarousel(cfg, rng.Int63()|1)
		if err != nil {
			return nil, err
		}
		return next, nil
	}
	return s, nil
}
