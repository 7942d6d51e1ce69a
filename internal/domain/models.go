package domain

import "fmt"

// Page is a single caller-supplied page. Rendering is entirely up to the page.
type Page interface {
	View(width, height int) string
}

// Provider is the external, ordered page sequence. Lookups are lazy and
// side-effect free; the number of pages is never assumed.
type Provider interface {
	PageAt(index int) (Page, bool)
}

// ProviderFunc adapts a plain function to a Provider
type ProviderFunc func(index int) (Page, bool)

// PageAt calls f(index)
func (f ProviderFunc) PageAt(index int) (Page, bool) {
	return f(index)
}

// TextPage is a page made of preformatted text
type TextPage struct {
	Title string
	Body  string
}

// View returns the page body. Sizing is left to the layout.
func (p TextPage) View(width, height int) string {
	return p.Body
}

// Axis is the paging axis
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	default:
		return "vertical"
	}
}

// ParseAxis parses "vertical" or "horizontal"
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "", "vertical":
		return AxisVertical, nil
	case "horizontal":
		return AxisHorizontal, nil
	default:
		return AxisVertical, fmt.Errorf("unknown axis %q", s)
	}
}

// Direction of a page transition
type Direction int

const (
	DirectionNone Direction = iota
	DirectionNext
	DirectionPrevious
)

func (d Direction) String() string {
	switch d {
	case DirectionNext:
		return "next"
	case DirectionPrevious:
		return "previous"
	default:
		return "none"
	}
}

// Step returns the index change a committed transition applies
func (d Direction) Step() int {
	switch d {
	case DirectionNext:
		return 1
	case DirectionPrevious:
		return -1
	default:
		return 0
	}
}

// Phase is the paging state machine state
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseCommitting
	PhaseReverting
)

func (p Phase) String() string {
	switch p {
	case PhaseDragging:
		return "dragging"
	case PhaseCommitting:
		return "committing"
	case PhaseReverting:
		return "reverting"
	default:
		return "idle"
	}
}
