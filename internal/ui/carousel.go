package ui

import (
	"fmt"
	"log"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/excarousel/internal/carousel"
	"github.com/depeter/excarousel/internal/config"
	"github.com/depeter/excarousel/internal/paging"
	"github.com/depeter/excarousel/internal/palette"
)

// CarouselScreen shows the cards in one horizontal row, centered on the
// active card, with every other card dimmed.
type CarouselScreen struct {
	ctrl    *carousel.Controller
	cells   *CellCache
	pointer Pointer

	viewW, viewH float64
	itemW, itemH float64
	dim          float64
	wheel        carousel.Notches
	saved        bool

	// Seed is the seed the card colors were drawn from.
	Seed int64
	// Regenerate builds a replacement screen when R is pressed.
	Regenerate func() (Screen, error)
	// SaveSeed pins Seed in the config file when S is pressed.
	SaveSeed func(seed int64) error
}

// NewCarouselScreen lays cards out for a viewport of viewW x viewH. It fails
// with paging.ErrNoItems when there are no cards.
func NewCarouselScreen(cfg config.CarouselConfig, viewW, viewH int, cards []carousel.Card) (*CarouselScreen, error) {
	inset := paging.CenteredInset(float64(viewW), cfg.ItemWidth)
	geom, err := paging.NewGeometry(cfg.ItemWidth, cfg.ItemSpacing, inset)
	if err != nil {
		return nil, err
	}

	s := &CarouselScreen{
		viewW: float64(viewW),
		viewH: float64(viewH),
		itemW: cfg.ItemWidth,
		itemH: cfg.ItemHeight,
		dim:   cfg.DimAmount,
	}
	s.cells = NewCellCache(len(cards), int(math.Ceil(cfg.ItemWidth)), int(math.Ceil(cfg.ItemHeight)), s.renderCell)

	ctrl, err := carousel.NewController(geom, cards, cfg.Deceleration, s.cells)
	if err != nil {
		return nil, fmt.Errorf("carousel: %w", err)
	}
	s.ctrl = ctrl
	return s, nil
}

func (s *CarouselScreen) Name() string { return "Carousel" }

func (s *CarouselScreen) OnEnter() {}

func (s *CarouselScreen) OnExit() { s.cells.Release() }

func (s *CarouselScreen) Update() (*ScreenTransition, error) {
	if s.Regenerate != nil && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		next, err := s.Regenerate()
		if err != nil {
			return nil, err
		}
		return &ScreenTransition{Type: TransitionReplace, Screen: next}, nil
	}
	if s.SaveSeed != nil && !s.saved && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := s.SaveSeed(s.Seed); err != nil {
			log.Printf("Failed to save seed %d: %v", s.Seed, err)
		} else {
			s.saved = true
			log.Printf("Saved seed %d", s.Seed)
		}
	}

	phase, x, _ := s.pointer.Update()
	switch phase {
	case PointerDown:
		s.ctrl.BeginDrag(float64(x))
	case PointerMove:
		s.ctrl.DragTo(float64(x))
	case PointerUp:
		s.ctrl.DragTo(float64(x))
		if err := s.ctrl.EndDrag(); err != nil {
			return nil, err
		}
	}

	if step := s.stepInput(); step != 0 {
		if err := s.ctrl.StepBy(step); err != nil {
			return nil, err
		}
	}

	return nil, s.ctrl.Tick()
}

// stepInput turns keys and wheel travel into a card delta.
func (s *CarouselScreen) stepInput() int {
	n := len(s.ctrl.Cards)
	switch InputState() {
	case DirLeft:
		return -1
	case DirRight:
		return 1
	case DirFirst:
		return -n
	case DirLast:
		return n
	}
	wx, wy := MouseWheelDelta()
	if wx == 0 {
		wx = -wy
	}
	return s.wheel.Add(wx)
}

func (s *CarouselScreen) Draw(dst *ebiten.Image) {
	geom := s.ctrl.Tracker().Geometry()
	stride := geom.Stride()
	offset := s.ctrl.Offset()
	top := (s.viewH - s.itemH) / 2

	// Card i is drawn at x = i*stride - offset.
	first := max(int(math.Floor((offset-s.itemW)/stride)), 0)
	last := min(int(math.Ceil((offset+s.viewW)/stride)), len(s.ctrl.Cards)-1)
	for i := first; i <= last; i++ {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(i)*stride-offset, top)
		dst.DrawImage(s.cells.Cell(i), op)
	}
	s.cells.Retain(first-cellKeepMargin, last+cellKeepMargin)

	DrawTextCentered(dst, "Drag or use ←/→ to browse · R reshuffles · S keeps colors · F12 debug",
		s.viewW/2, top/2, FontSizeSmall, ColorTextMuted)

	pos := "-"
	if i, ok := s.ctrl.Tracker().ActiveIndex().Get(); ok {
		pos = strconv.Itoa(i + 1)
	}
	DrawTextCentered(dst, fmt.Sprintf("%s / %d", pos, len(s.ctrl.Cards)),
		s.viewW/2, top+s.itemH+IndicatorGap, FontSizeBody, ColorTextSecondary)
}

func (s *CarouselScreen) renderCell(dst *ebiten.Image, i int) {
	card := s.ctrl.Cards[i]
	active := s.ctrl.IsActive(i)

	clr := card.Color
	if !active {
		clr = palette.Dim(clr, ColorBackground, s.dim)
	}
	dst.Fill(clr)

	w, h := float32(s.itemW), float32(s.itemH)
	labelH := float32(FontSizeHeading + CardLabelPad*2)
	vector.DrawFilledRect(dst, 0, h-labelH, w, labelH, ColorCardLabel, false)
	labelColor := ColorTextSecondary
	if active {
		labelColor = ColorText
		vector.StrokeRect(dst, CardFocusBorder/2, CardFocusBorder/2, w-CardFocusBorder, h-CardFocusBorder,
			CardFocusBorder, ColorFocusBorder, false)
	}
	DrawText(dst, fmt.Sprintf("#%d", i+1), CardLabelPad, float64(h-labelH)+CardLabelPad, FontSizeHeading, labelColor)
	hex := palette.Hex(card.Color)
	hw, _ := MeasureText(hex, FontSizeSmall)
	DrawText(dst, hex, s.itemW-CardLabelPad-hw, float64(h-labelH)+CardLabelPad+4, FontSizeSmall, labelColor)
}

func (s *CarouselScreen) DebugLines() []string {
	surface := s.ctrl.Surface()
	return []string{
		fmt.Sprintf("offset   %.1f", surface.Offset()),
		fmt.Sprintf("target   %.1f", surface.Target()),
		fmt.Sprintf("dragging %v", surface.Dragging()),
		fmt.Sprintf("active   %s", s.ctrl.Tracker().ActiveIndex()),
		fmt.Sprintf("last     %s", s.ctrl.LastTransition()),
		fmt.Sprintf("seed     %d (saved %v)", s.Seed, s.saved),
		fmt.Sprintf("renders  %d", s.cells.Renders()),
		fmt.Sprintf("cells    %d / %d", s.cells.Live(), len(s.ctrl.Cards)),
	}
}
