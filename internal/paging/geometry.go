// Package paging implements snap-to-nearest paging for a horizontal list of
// evenly spaced, fixed-size items, and tracks which single item is active.
//
// Offsets follow the content-offset convention: item i is aligned with the
// viewport's reference point when the offset equals i*stride - LeadingInset.
package paging

import "math"

// Geometry describes the fixed layout of the item list. Build it with
// NewGeometry; the zero value is not valid.
type Geometry struct {
	ItemExtent   float64 // width of one item, > 0
	ItemSpacing  float64 // gap between items, >= 0
	LeadingInset float64 // viewport origin to the first item's aligned position
}

// NewGeometry validates the layout values and returns the geometry.
func NewGeometry(itemExtent, itemSpacing, leadingInset float64) (Geometry, error) {
	g := Geometry{
		ItemExtent:   itemExtent,
		ItemSpacing:  itemSpacing,
		LeadingInset: leadingInset,
	}
	if err := g.Validate(); err != nil {
		return Geometry{}, err
	}
	return g, nil
}

// Validate reports the first field that makes the geometry unusable.
func (g Geometry) Validate() error {
	switch {
	case !isFinite(g.ItemExtent) || g.ItemExtent <= 0:
		return &InvalidGeometryError{Field: "itemExtent", Value: g.ItemExtent}
	case !isFinite(g.ItemSpacing) || g.ItemSpacing < 0:
		return &InvalidGeometryError{Field: "itemSpacing", Value: g.ItemSpacing}
	case !isFinite(g.LeadingInset):
		return &InvalidGeometryError{Field: "leadingInset", Value: g.LeadingInset}
	case !isFinite(g.Stride()) || g.Stride() <= 0:
		return &InvalidGeometryError{Field: "stride", Value: g.Stride()}
	}
	return nil
}

// Stride is the distance between the aligned positions of consecutive items.
func (g Geometry) Stride() float64 {
	return g.ItemExtent + g.ItemSpacing
}

// CenteredInset returns the leading inset that centers an item of the given
// extent in a viewport of the given width.
func CenteredInset(viewportWidth, itemExtent float64) float64 {
	return (viewportWidth - itemExtent) / 2
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
