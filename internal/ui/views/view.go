package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"swiper/internal/domain"
	"swiper/internal/window"
)

// ChromeLines is the number of rows below the paging area
const ChromeLines = 2

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Axis          domain.Axis
	Descriptors   []window.Descriptor
	Index         int
	HasNext       bool
	Title         string
	Phase         domain.Phase
	Scanning      bool
	StatusMessage string
	StatusIsError bool
	ShowHelp      bool
	HelpView      string
}

// PageLayout is the paging area left after the status and help rows
func PageLayout(width, height int, axis domain.Axis) Layout {
	return Layout{Width: width, Height: max(height-ChromeLines, 1), Axis: axis}
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	layout := PageLayout(state.Width, state.Height, state.Axis)

	var main string
	switch {
	case state.ShowHelp:
		main = r.popupRender.RenderPopup(state.HelpView, layout.Width, layout.Height, r.styles.HelpBox)
	case len(state.Descriptors) == 0:
		msg := "No pages."
		if state.Scanning {
			msg = "Looking for pages..."
		}
		main = lipgloss.Place(layout.Width, layout.Height, lipgloss.Center, lipgloss.Center, r.styles.Empty.Render(msg))
	default:
		main = Compose(state.Descriptors, layout)
	}

	helpText := r.styles.Help.Render("Press ? for help")
	if state.ShowHelp {
		helpText = r.styles.Help.Render("Press ? to close help")
	}

	return strings.Join([]string{main, r.renderStatus(state), helpText}, "\n")
}

// renderStatus builds the status line: page indicator and title on the
// left, activity and messages on the right
func (r *Renderer) renderStatus(state ViewState) string {
	left := r.styles.Indicator.Render(PageIndicator(state.Index, state.HasNext))
	if state.Title != "" {
		left = fmt.Sprintf("%s  %s", left, r.styles.Title.Render(state.Title))
	}

	var indicators []string
	if state.Scanning {
		spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		frame := int(time.Now().UnixMilli()/80) % len(spinner)
		indicators = append(indicators, r.styles.StatusLoading.Render(fmt.Sprintf("%s Scanning", spinner[frame])))
	}
	switch state.Phase {
	case domain.PhaseDragging:
		indicators = append(indicators, r.styles.PhaseDragging.Render(state.Phase.String()))
	case domain.PhaseCommitting, domain.PhaseReverting:
		indicators = append(indicators, r.styles.PhaseAnimating.Render(state.Phase.String()))
	}
	if state.StatusMessage != "" {
		style := r.styles.StatusSuccess
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		indicators = append(indicators, style.Render(state.StatusMessage))
	}
	right := strings.Join(indicators, r.styles.Dim.Render(" | "))

	padding := state.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	line := left + strings.Repeat(" ", padding) + right
	return r.styles.Status.MaxWidth(state.Width).Render(line)
}

// PageIndicator shows the 1-based page number, with "+" when a next page
// exists. The page count is never asked for.
func PageIndicator(index int, hasNext bool) string {
	s := fmt.Sprintf("page %d", index+1)
	if hasNext {
		s += "+"
	}
	return s
}
