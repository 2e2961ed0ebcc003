package paging

import (
	"math"
	"strconv"
)

// Index is an optional item index. The zero value is None.
type Index struct {
	value int
	ok    bool
}

// None is the absent index, held by a tracker before its first offset event.
var None = Index{}

// At returns the index i.
func At(i int) Index { return Index{value: i, ok: true} }

// Get returns the index and whether it is set.
func (x Index) Get() (int, bool) { return x.value, x.ok }

// Is reports whether x is set and equal to i.
func (x Index) Is(i int) bool { return x.ok && x.value == i }

func (x Index) String() string {
	if !x.ok {
		return "none"
	}
	return strconv.Itoa(x.value)
}

// IndexTransition is produced for every offset event. From == To means
// nothing needs redrawing.
type IndexTransition struct {
	From Index
	To   int
}

// Changed reports whether the active item moved.
func (t IndexTransition) Changed() bool {
	return !t.From.Is(t.To)
}

// Redraw lists the items whose emphasis changed: none for a no-op, the new
// item on the first event, the old and new items otherwise.
func (t IndexTransition) Redraw() []int {
	if !t.Changed() {
		return nil
	}
	from, ok := t.From.Get()
	if !ok {
		return []int{t.To}
	}
	return []int{from, t.To}
}

func (t IndexTransition) String() string {
	return t.From.String() + "->" + strconv.Itoa(t.To)
}

// ScrollState is the mutable part of a tracker.
type ScrollState struct {
	Offset float64
	Active Index
}

// Tracker resolves snap targets and active-item transitions for one
// carousel. It is not safe for concurrent use; call it from the UI loop only.
type Tracker struct {
	geom  Geometry
	count int
	state ScrollState
}

// NewTracker returns a tracker for count items laid out with geom. A tracker
// with zero items can be built, but its operations return ErrNoItems.
func NewTracker(geom Geometry, count int) (*Tracker, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, &InvalidGeometryError{Field: "itemCount", Value: float64(count)}
	}
	return &Tracker{geom: geom, count: count}, nil
}

func (t *Tracker) Geometry() Geometry { return t.geom }
func (t *Tracker) ItemCount() int { return t.count }
func (t *Tracker) State() ScrollState { return t.state }
func (t *Tracker) ActiveIndex() Index { return t.state.Active }

// IsActive reports whether item i is the active item. It is the only source
// of an item's emphasis state.
func (t *Tracker) IsActive(i int) bool { return t.state.Active.Is(i) }

// IndexAt returns the item whose aligned position is nearest to offset.
// Ties round half away from zero, so an offset exactly halfway between items
// i and i+1 (i >= 0) always resolves to i+1. The result is clamped to the
// item range.
func (t *Tracker) IndexAt(offset float64) (int, error) {
	if t.count == 0 {
		return 0, ErrNoItems
	}
	if !isFinite(offset) {
		return 0, &InvalidOffsetError{Offset: offset}
	}
	idx := math.Round((offset + t.geom.LeadingInset) / t.geom.Stride())
	if idx < 0 {
		return 0, nil
	}
	if last := float64(t.count - 1); idx > last {
		return t.count - 1, nil
	}
	return int(idx), nil
}

// OffsetFor returns the aligned offset of item i.
func (t *Tracker) OffsetFor(i int) (float64, error) {
	if t.count == 0 {
		return 0, ErrNoItems
	}
	if i < 0 || i >= t.count {
		return 0, &IndexOutOfRangeError{Index: i, Count: t.count}
	}
	return float64(i)*t.geom.Stride() - t.geom.LeadingInset, nil
}

// Bounds returns the aligned offsets of the first and last items.
func (t *Tracker) Bounds() (lo, hi float64, err error) {
	if lo, err = t.OffsetFor(0); err != nil {
		return 0, 0, err
	}
	hi, err = t.OffsetFor(t.count - 1)
	return lo, hi, err
}

// ResolveSnapTarget returns the offset the scroll surface should come to
// rest at, given the offset it would naturally stop at after a drag.
// velocityHint is accepted for parity with drag-end callbacks and ignored:
// snapping always goes to the nearest item.
func (t *Tracker) ResolveSnapTarget(rawOffset, velocityHint float64) (float64, error) {
	idx, err := t.IndexAt(rawOffset)
	if err != nil {
		return 0, err
	}
	return t.OffsetFor(idx)
}

// OnOffsetChanged records a live scroll offset and returns the resulting
// transition of the active item. State is left untouched on error.
func (t *Tracker) OnOffsetChanged(newOffset float64) (IndexTransition, error) {
	idx, err := t.IndexAt(newOffset)
	if err != nil {
		return IndexTransition{}, err
	}
	tr := IndexTransition{From: t.state.Active, To: idx}
	t.state.Offset = newOffset
	t.state.Active = At(idx)
	return tr, nil
}
