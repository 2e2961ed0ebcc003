package ui

import "github.com/hajimehoshi/ebiten/v2"

// Screen is the interface for all UI screens.
type Screen interface {
	// Update handles input and logic. Return a non-nil ScreenTransition to change screens.
	Update() (*ScreenTransition, error)
	// Draw renders the screen.
	Draw(dst *ebiten.Image)
	// OnEnter is called when the screen becomes active.
	OnEnter()
	// OnExit is called when the screen is removed.
	OnExit()
	// Name returns the screen name for debugging.
	Name() string
}

// DebugSource is implemented by screens that contribute lines to the debug
// overlay.
type DebugSource interface {
	DebugLines() []string
}

type TransitionType int

const (
	TransitionReplace TransitionType = iota
)

type ScreenTransition struct {
	Type   TransitionType
	Screen Screen
}

// ScreenManager manages a stack of screens.
type ScreenManager struct {
	stack []Screen
}

func NewScreenManager() *ScreenManager {
	return &ScreenManager{}
}

func (sm *ScreenManager) Push(s Screen) {
	sm.stack = append(sm.stack, s)
	s.OnEnter()
}

func (sm *ScreenManager) Replace(s Screen) {
	if len(sm.stack) > 0 {
		top := sm.stack[len(sm.stack)-1]
		top.OnExit()
		sm.stack[len(sm.stack)-1] = s
	} else {
		sm.stack = append(sm.stack, s)
	}
	s.OnEnter()
}

func (sm *ScreenManager) Current() Screen {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.stack[len(sm.stack)-1]
}

func (sm *ScreenManager) Update() error {
	s := sm.Current()
	if s == nil {
		return nil
	}

	tr, err := s.Update()
	if err != nil {
		return err
	}
	if tr != nil {
		switch tr.Type {
		case TransitionReplace:
			sm.Replace(tr.Screen)
		}
	}
	return nil
}

func (sm *ScreenManager) Draw(dst *ebiten.Image) {
	if s := sm.Current(); s != nil {
		s.Draw(dst)
	}
}

// DebugLines returns the current screen's debug lines, if it has any.
func (sm *ScreenManager) DebugLines() []string {
	if src, ok := sm.Current().(DebugSource); ok {
		return src.DebugLines()
	}
	return nil
}

func (sm *ScreenManager) StackSize() int {
	return len(sm.stack)
}
