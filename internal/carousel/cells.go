package carousel

// CellSet is the bookkeeping behind a per-card render cache: which cells are
// built, which need re-rendering, and how many renders happened. It holds no
// images so the rules can be exercised without a graphics context.
type CellSet struct {
	built   []bool
	dirty   []bool
	renders int
}

func NewCellSet(count int) *CellSet {
	return &CellSet{
		built: make([]bool, count),
		dirty: make([]bool, count),
	}
}

func (cs *CellSet) Len() int { return len(cs.built) }

// Invalidate marks cell i for re-rendering. Cells never built need nothing.
func (cs *CellSet) Invalidate(i int) {
	if i < 0 || i >= len(cs.built) || !cs.built[i] {
		return
	}
	cs.dirty[i] = true
}

// Built reports whether cell i currently holds a rendered image.
func (cs *CellSet) Built(i int) bool {
	return i >= 0 && i < len(cs.built) && cs.built[i]
}

// NeedsRender reports whether cell i must be rendered before it is drawn.
func (cs *CellSet) NeedsRender(i int) bool {
	if i < 0 || i >= len(cs.built) {
		return false
	}
	return !cs.built[i] || cs.dirty[i]
}

// Rendered records that cell i was just rendered.
func (cs *CellSet) Rendered(i int) {
	cs.built[i] = true
	cs.dirty[i] = false
	cs.renders++
}

// Retain drops every built cell outside [lo, hi], calling free for each one
// before its flags are cleared.
func (cs *CellSet) Retain(lo, hi int, free func(i int)) {
	for i, ok := range cs.built {
		if !ok || (i >= lo && i <= hi) {
			continue
		}
		if free != nil {
			free(i)
		}
		cs.built[i] = false
		cs.dirty[i] = false
	}
}

// Renders is the number of cell renders recorded so far.
func (cs *CellSet) Renders() int { return cs.renders }

// Live is the number of cells currently built.
func (cs *CellSet) Live() int {
	n := 0
	for _, ok := range cs.built {
		if ok {
			n++
		}
	}
	return n
}
