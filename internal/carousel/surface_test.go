package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settle(t *testing.T, s *Surface) int {
	t.Helper()
	for i := 0; i < 500; i++ {
		if s.Settled() {
			return i
		}
		s.Step()
	}
	require.FailNow(t, "surface never settled")
	return 0
}

func TestSurface_Initial(t *testing.T) {
	s := NewSurface(0.85, -246, 1050)
	assert.Equal(t, -246.0, s.Offset())
	assert.True(t, s.Settled())
}

func TestSurface_DragAndRelease(t *testing.T) {
	s := NewSurface(0.85, 0, 648)

	s.BeginDrag(500)
	assert.True(t, s.Dragging())

	s.DragTo(400)
	assert.Equal(t, 100.0, s.Offset())
	assert.InDelta(t, 60, s.Velocity(), 1e-9)

	s.DragTo(300)
	assert.Equal(t, 200.0, s.Offset())
	assert.InDelta(t, 84, s.Velocity(), 1e-9)

	rest, v := s.EndDrag()
	assert.InDelta(t, 84, v, 1e-9)
	assert.InDelta(t, 200+84*0.85/0.15, rest, 1e-9)
	assert.False(t, s.Dragging())
}

func TestSurface_VelocityDecaysWhileHeld(t *testing.T) {
	s := NewSurface(0.85, 0, 648)
	s.BeginDrag(500)
	s.DragTo(300)
	for i := 0; i < 20; i++ {
		s.DragTo(300)
	}
	rest, _ := s.EndDrag()
	assert.InDelta(t, 200, rest, 0.01)
}

func TestSurface_RubberBand(t *testing.T) {
	s := NewSurface(0.85, 0, 648)

	s.BeginDrag(0)
	s.DragTo(100)
	assert.InDelta(t, -35, s.Offset(), 1e-9)

	s.DragTo(-848)
	assert.InDelta(t, 648+200*0.35, s.Offset(), 1e-9)
}

func TestSurface_ScrollToLandsExactly(t *testing.T) {
	s := NewSurface(0.85, 0, 648)
	s.ScrollTo(648)
	assert.False(t, s.Settled())

	ticks := settle(t, s)
	assert.Greater(t, ticks, 1)
	assert.Equal(t, 648.0, s.Offset())
	assert.Equal(t, 648.0, s.Target())
}

func TestSurface_StepIgnoredWhileDragging(t *testing.T) {
	s := NewSurface(0.85, 0, 648)
	s.ScrollTo(648)
	s.Step()
	moved := s.Offset()

	s.BeginDrag(10)
	s.Step()
	assert.Equal(t, moved, s.Offset())
	assert.True(t, s.Dragging())
}

func TestSurface_EndDragWithoutDrag(t *testing.T) {
	s := NewSurface(0.85, 0, 648)
	rest, v := s.EndDrag()
	assert.Equal(t, 0.0, rest)
	assert.Equal(t, 0.0, v)
}

func TestSurface_Deceleration(t *testing.T) {
	s := NewSurface(0.85, 0, 648)
	assert.Equal(t, 0.85, s.Deceleration())
}
