// Package gesture turns a pointer stream into drag deltas along one axis.
package gesture

import (
	tea "github.com/charmbracelet/bubbletea"

	"swiper/internal/domain"
)

// Sink receives the drag lifecycle. The paging controller implements it.
type Sink interface {
	OnDragStart()
	OnDragMove(delta float64)
	OnDragRelease(delta float64)
}

// Tracker converts pointer samples into deltas relative to the gesture
// start. It keeps no state across sessions.
type Tracker struct {
	axis   domain.Axis
	sink   Sink
	active bool
	start  float64
	last   float64
}

// NewTracker creates a tracker forwarding to sink
func NewTracker(axis domain.Axis, sink Sink) *Tracker {
	return &Tracker{axis: axis, sink: sink}
}

// Active reports whether a drag session is open
func (t *Tracker) Active() bool {
	return t.active
}

// Begin opens a session at coord. The tracker is greedy: it always claims.
func (t *Tracker) Begin(coord float64) bool {
	t.active = true
	t.start = coord
	t.last = 0
	t.sink.OnDragStart()
	return true
}

// Move forwards the delta from the session start
func (t *Tracker) Move(coord float64) {
	if !t.active {
		return
	}
	t.last = coord - t.start
	t.sink.OnDragMove(t.last)
}

// Release closes the session and forwards the final delta
func (t *Tracker) Release(coord float64) {
	if !t.active {
		return
	}
	delta := coord - t.start
	t.active = false
	t.start = 0
	t.last = 0
	t.sink.OnDragRelease(delta)
}

// Cancel closes the session as a zero-delta release
func (t *Tracker) Cancel() {
	if !t.active {
		return
	}
	t.Release(t.start)
}

// coord picks the paging-axis coordinate of a mouse event
func (t *Tracker) coord(msg tea.MouseMsg) float64 {
	if t.axis == domain.AxisHorizontal {
		return float64(msg.X)
	}
	return float64(msg.Y)
}

// HandleMouse maps Bubble Tea mouse events onto the session. It returns
// true when the event was consumed.
func (t *Tracker) HandleMouse(msg tea.MouseMsg) bool {
	if tea.MouseEvent(msg).IsWheel() {
		return false
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return false
		}
		return t.Begin(t.coord(msg))
	case tea.MouseActionMotion:
		if !t.active {
			return false
		}
		t.Move(t.coord(msg))
		return true
	case tea.MouseActionRelease:
		if !t.active {
			return false
		}
		t.Release(t.coord(msg))
		return true
	}
	return false
}
