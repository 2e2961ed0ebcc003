package paging

import (
	"errors"
	"fmt"
)

// ErrNoItems is returned by every tracker operation when the carousel has no
// items. The caller must not ask for snap targets or transitions until at
// least one item exists.
var ErrNoItems = errors.New("paging: carousel has no items")

// ErrInvalidGeometry is matched by every *InvalidGeometryError via errors.Is.
var ErrInvalidGeometry = errors.New("paging: invalid geometry")

// InvalidGeometryError reports a geometry field that would make offsets
// meaningless (zero or negative stride, NaN, ...).
type InvalidGeometryError struct {
	Field string
	Value float64
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("paging: invalid geometry: %s = %v", e.Field, e.Value)
}

func (e *InvalidGeometryError) Unwrap() error { return ErrInvalidGeometry }

// InvalidOffsetError reports a non-finite scroll offset.
type InvalidOffsetError struct {
	Offset float64
}

func (e *InvalidOffsetError) Error() string {
	return fmt.Sprintf("paging: offset %v is not finite", e.Offset)
}

// IndexOutOfRangeError reports an item index outside [0, Count-1].
type IndexOutOfRangeError struct {
	Index int
	Count int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("paging: index %d out of range [0, %d)", e.Index, e.Count)
}
