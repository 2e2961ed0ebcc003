package carousel

import (
	"fmt"
	"image/color"

	"github.com/depeter/excarousel/internal/paging"
)

// Card is one carousel item. Whether it is emphasized is not stored here;
// ask Controller.IsActive.
type Card struct {
	Color color.RGBA
}

// Invalidator is told which cells must be redrawn.
type Invalidator interface {
	Invalidate(index int)
}

// Controller owns the tracker and the scroll surface of one carousel and
// translates surface movement into targeted cell invalidations.
type Controller struct {
	Cards []Card

	tracker *paging.Tracker
	surface *Surface
	cells   Invalidator

	last   paging.IndexTransition
	synced bool
	seen   float64
}

// NewController builds a controller resting on the first card. It fails with
// paging.ErrNoItems when cards is empty.
func NewController(geom paging.Geometry, cards []Card, deceleration float64, cells Invalidator) (*Controller, error) {
	tracker, err := paging.NewTracker(geom, len(cards))
	if err != nil {
		return nil, err
	}
	lo, hi, err := tracker.Bounds()
	if err != nil {
		return nil, err
	}
	if deceleration <= 0 || deceleration >= 1 {
		return nil, fmt.Errorf("carousel: deceleration %v outside (0, 1)", deceleration)
	}
	c := &Controller{
		Cards:   cards,
		tracker: tracker,
		surface: NewSurface(deceleration, lo, hi),
		cells:   cells,
	}
	if err := c.sync(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Controller) Tracker() *paging.Tracker { return c.tracker }
func (c *Controller) Surface() *Surface { return c.surface }
func (c *Controller) Offset() float64 { return c.surface.Offset() }

// LastTransition is the transition produced by the most recent offset change.
func (c *Controller) LastTransition() paging.IndexTransition { return c.last }

// IsActive reports whether card i is the emphasized card.
func (c *Controller) IsActive(i int) bool { return c.tracker.IsActive(i) }

func (c *Controller) BeginDrag(x float64) { c.surface.BeginDrag(x) }
func (c *Controller) DragTo(x float64) { c.surface.DragTo(x) }

// EndDrag replaces the surface's natural resting offset with the snapped
// offset of the nearest card.
func (c *Controller) EndDrag() error {
	rest, velocity := c.surface.EndDrag()
	target, err := c.tracker.ResolveSnapTarget(rest, velocity)
	if err != nil {
		return fmt.Errorf("resolve snap target: %w", err)
	}
	c.surface.ScrollTo(target)
	return nil
}

// StepBy scrolls delta cards away from the active card, or from the pending
// target while a scroll is in flight, stopping at the ends.
func (c *Controller) StepBy(delta int) error {
	if c.surface.Dragging() || delta == 0 {
		return nil
	}
	cur, err := c.stepOrigin()
	if err != nil {
		return err
	}
	next := min(max(cur+delta, 0), c.tracker.ItemCount()-1)
	target, err := c.tracker.OffsetFor(next)
	if err != nil {
		return err
	}
	c.surface.ScrollTo(target)
	return nil
}

// stepOrigin is the card a step counts from: the card under the pending
// target while the surface is still moving, the active card once settled.
func (c *Controller) stepOrigin() (int, error) {
	if !c.surface.Settled() {
		return c.tracker.IndexAt(c.surface.Target())
	}
	if cur, ok := c.tracker.ActiveIndex().Get(); ok {
		return cur, nil
	}
	return 0, nil
}

// Tick advances the surface one frame and reports offset changes to the
// tracker.
func (c *Controller) Tick() error {
	c.surface.Step()
	if c.synced && c.surface.Offset() == c.seen {
		return nil
	}
	return c.sync()
}

func (c *Controller) sync() error {
	off := c.surface.Offset()
	tr, err := c.tracker.OnOffsetChanged(off)
	if err != nil {
		return fmt.Errorf("offset changed: %w", err)
	}
	c.last = tr
	c.seen = off
	c.synced = true
	if c.cells != nil {
		for _, i := range tr.Redraw() {
			c.cells.Invalidate(i)
		}
	}
	return nil
}
