package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Direction represents a navigation direction.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirFirst
	DirLast
)

// InputState returns the navigation direction pressed this frame. Arrow keys
// repeat while held.
func InputState() Direction {
	switch {
	case inputRepeating(ebiten.KeyArrowLeft):
		return DirLeft
	case inputRepeating(ebiten.KeyArrowRight):
		return DirRight
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		return DirFirst
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		return DirLast
	}
	return DirNone
}

// UpdateInputState must be called at the end of each Update() to track key state.
func UpdateInputState() {
	for _, k := range repeatKeys {
		if ebiten.IsKeyPressed(k) {
			keyHoldFrames[k]++
		} else {
			delete(keyHoldFrames, k)
		}
	}
}

var (
	keyHoldFrames = make(map[ebiten.Key]int)
	repeatKeys    = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowRight}
)

const (
	repeatDelay    = 18 // frames before repeat starts (~300ms at 60fps)
	repeatInterval = 6  // frames between repeats (~100ms at 60fps)
)

func inputRepeating(key ebiten.Key) bool {
	if !ebiten.IsKeyPressed(key) {
		return false
	}
	frames, held := keyHoldFrames[key]
	if !held || frames == 0 {
		return true // just pressed this frame
	}
	return frames >= repeatDelay && (frames-repeatDelay)%repeatInterval == 0
}

// MouseWheelDelta returns the mouse wheel scroll delta.
func MouseWheelDelta() (dx, dy float64) {
	return ebiten.Wheel()
}

// PointerPhase is the stage of a drag gesture reported by Pointer.Update.
type PointerPhase int

const (
	PointerNone PointerPhase = iota
	PointerDown
	PointerMove
	PointerUp
)

// Pointer follows one drag gesture at a time, from either the left mouse
// button or the first touch.
type Pointer struct {
	down     bool
	isTouch  bool
	id       ebiten.TouchID
	lastX    int
	lastY    int
	touchIDs []ebiten.TouchID
}

// Update polls input and returns the gesture phase with the pointer position.
func (p *Pointer) Update() (phase PointerPhase, x, y int) {
	if !p.down {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			p.down, p.isTouch = true, false
			p.lastX, p.lastY = ebiten.CursorPosition()
			return PointerDown, p.lastX, p.lastY
		}
		p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
		if len(p.touchIDs) > 0 {
			p.down, p.isTouch = true, true
			p.id = p.touchIDs[0]
			p.lastX, p.lastY = ebiten.TouchPosition(p.id)
			return PointerDown, p.lastX, p.lastY
		}
		return PointerNone, 0, 0
	}

	if p.isTouch {
		// A released touch reports (0, 0); keep its last position.
		if inpututil.IsTouchJustReleased(p.id) {
			p.down = false
			return PointerUp, p.lastX, p.lastY
		}
		p.lastX, p.lastY = ebiten.TouchPosition(p.id)
		return PointerMove, p.lastX, p.lastY
	}

	p.lastX, p.lastY = ebiten.CursorPosition()
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		p.down = false
		return PointerUp, p.lastX, p.lastY
	}
	return PointerMove, p.lastX, p.lastY
}
