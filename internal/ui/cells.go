package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/excarousel/internal/carousel"
)

// CellCache keeps one pre-rendered image per carousel card. Cells are built
// lazily when drawn and rebuilt only after Invalidate, so an emphasis change
// costs two renders instead of a full reload. The built/dirty bookkeeping
// lives in carousel.CellSet.
type CellCache struct {
	w, h   int
	set    *carousel.CellSet
	cells  []*ebiten.Image
	render func(dst *ebiten.Image, index int)
}

func NewCellCache(count, w, h int, render func(dst *ebiten.Image, index int)) *CellCache {
	return &CellCache{
		w:      w,
		h:      h,
		set:    carousel.NewCellSet(count),
		cells:  make([]*ebiten.Image, count),
		render: render,
	}
}

// Invalidate marks cell i for re-rendering. Cells never drawn need nothing.
func (cc *CellCache) Invalidate(i int) { cc.set.Invalidate(i) }

// Cell returns the image for card i, rendering it first if needed.
func (cc *CellCache) Cell(i int) *ebiten.Image {
	if !cc.set.NeedsRender(i) {
		return cc.cells[i]
	}
	img := cc.cells[i]
	if img == nil {
		img = ebiten.NewImage(cc.w, cc.h)
		cc.cells[i] = img
	}
	img.Clear()
	cc.render(img, i)
	cc.set.Rendered(i)
	return img
}

// Retain frees every cell outside [lo, hi].
func (cc *CellCache) Retain(lo, hi int) {
	cc.set.Retain(lo, hi, cc.free)
}

func (cc *CellCache) free(i int) {
	if img := cc.cells[i]; img != nil {
		img.Deallocate()
		cc.cells[i] = nil
	}
}

// Release frees all cells.
func (cc *CellCache) Release() {
	cc.Retain(0, -1)
}

// Renders is the number of cell renders since the cache was created.
func (cc *CellCache) Renders() int { return cc.set.Renders() }

// Live is the number of cells currently held.
func (cc *CellCache) Live() int { return cc.set.Live() }
