// Package nav holds the single navigation state of the application and the
// transitions that are allowed to change it.
package nav

import (
	"errors"
	"fmt"

	"github.com/foodverse/foodverse/internal/layout"
	"github.com/foodverse/foodverse/internal/quiz"
)

// Screen identifies a top-level screen.
type Screen int

const (
	ScreenLanding Screen = iota
	ScreenSelector
	ScreenVisualization
)

func (s Screen) String() string {
	switch s {
	case ScreenLanding:
		return "landing"
	case ScreenSelector:
		return "selector"
	case ScreenVisualization:
		return "visualization"
	}
	return fmt.Sprintf("screen(%d)", int(s))
}

// DefaultMinViewportWidth is the narrowest viewport, in logical units, on
// which the visualization may be shown.
const DefaultMinViewportWidth = 768

var (
	// ErrInvalidOverlayContext is returned by every overlay operation
	// invoked while the visualization screen is not active.
	ErrInvalidOverlayContext = errors.New("overlay requires the visualization screen")

	// ErrUnsupportedViewport is returned when the viewport is too narrow
	// for the requested screen.
	ErrUnsupportedViewport = errors.New("unsupported viewport")

	// ErrInvalidTransition is returned for screen changes the state graph
	// does not contain, such as selector to landing.
	ErrInvalidTransition = errors.New("invalid transition")
)

// TransitionError describes a rejected navigation request.
type TransitionError struct {
	Op   string
	From Screen
	Err  error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s from %s: %v", e.Op, e.From, e.Err)
}

func (e *TransitionError) Unwrap() error { return e.Err }

// State is the navigation state. Empty strings stand for "not set".
type State struct {
	ActiveScreen      Screen
	SelectedDiseaseID string
	DetailFoodID      string
	QuizActive        bool
}

// Viewport is the presentation area in logical units.
type Viewport struct {
	Width  int
	Height int
}

// Snapshot is everything the shell needs to render one frame.
type Snapshot struct {
	State

	Viewport    Viewport
	Unsupported bool
	Positions   []layout.Position
	Quiz        *quiz.Snapshot

	// Transitions increases on every screen change, including re-entry
	// of the same screen.
	Transitions uint64
}
