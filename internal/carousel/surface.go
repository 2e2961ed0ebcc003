// Package carousel drives a paging.Tracker from pointer and key input. It
// holds no rendering state: cell redraws are requested through Invalidator.
package carousel

import "math"

const (
	// settleEpsilon is the distance below which an animation lands exactly
	// on its target.
	settleEpsilon = 0.5
	// rubberBand scales how far a drag may pull past the first or last item.
	rubberBand = 0.35
	// velocitySmoothing weights the newest drag delta in the release velocity.
	velocitySmoothing = 0.6
)

// Surface is a horizontal scroll position with drag tracking and a
// decelerating animation toward a target offset. Units are pixels and ticks.
type Surface struct {
	offset   float64
	target   float64
	velocity float64 // offset change per tick while dragging

	dragging        bool
	animating       bool
	dragStartX      float64
	dragStartOffset float64
	lastX           float64

	// deceleration is the fraction of the remaining distance (or speed) kept
	// each tick, in (0, 1).
	deceleration float64
	lo, hi       float64
}

// NewSurface returns a surface resting at lo that rubber-bands outside
// [lo, hi].
func NewSurface(deceleration, lo, hi float64) *Surface {
	return &Surface{
		offset:       lo,
		target:       lo,
		deceleration: deceleration,
		lo:           lo,
		hi:           hi,
	}
}

func (s *Surface) Offset() float64 { return s.offset }
func (s *Surface) Target() float64 { return s.target }
func (s *Surface) Velocity() float64 { return s.velocity }
func (s *Surface) Dragging() bool { return s.dragging }

// Deceleration is the fraction of the remaining distance kept each tick.
func (s *Surface) Deceleration() float64 { return s.deceleration }

// Settled reports whether the surface is neither dragging nor animating.
func (s *Surface) Settled() bool { return !s.dragging && !s.animating }

// BeginDrag starts a drag with the pointer at x. Any running animation stops
// where it is.
func (s *Surface) BeginDrag(x float64) {
	s.dragging = true
	s.animating = false
	s.dragStartX = x
	s.lastX = x
	s.dragStartOffset = s.offset
	s.velocity = 0
}

// DragTo moves the content with the pointer. Moving the pointer right
// scrolls toward the first item. Call it every tick while the drag lasts,
// even if the pointer did not move, so the release velocity decays.
func (s *Surface) DragTo(x float64) {
	if !s.dragging {
		return
	}
	delta := -(x - s.lastX)
	s.lastX = x
	s.velocity = velocitySmoothing*delta + (1-velocitySmoothing)*s.velocity

	raw := s.dragStartOffset - (x - s.dragStartX)
	switch {
	case raw < s.lo:
		raw = s.lo - (s.lo-raw)*rubberBand
	case raw > s.hi:
		raw = s.hi + (raw-s.hi)*rubberBand
	}
	s.offset = raw
}

// EndDrag finishes the drag and returns where the content would naturally
// come to rest under deceleration, along with the release velocity.
func (s *Surface) EndDrag() (rest, velocity float64) {
	if !s.dragging {
		return s.offset, 0
	}
	s.dragging = false
	velocity = s.velocity
	rest = s.offset + velocity*s.deceleration/(1-s.deceleration)
	return rest, velocity
}

// ScrollTo animates toward target.
func (s *Surface) ScrollTo(target float64) {
	s.target = target
	s.velocity = 0
	s.animating = s.offset != target
}

// Step advances the animation by one tick.
func (s *Surface) Step() {
	if s.dragging || !s.animating {
		return
	}
	s.offset = s.target + (s.offset-s.target)*s.deceleration
	if math.Abs(s.target-s.offset) < settleEpsilon {
		s.offset = s.target
		s.animating = false
	}
}
