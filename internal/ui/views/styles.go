package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	Dim            lipgloss.Style
	Status         lipgloss.Style
	Indicator      lipgloss.Style
	Help           lipgloss.Style
	HelpBox        lipgloss.Style
	Empty          lipgloss.Style
	StatusError    lipgloss.Style
	StatusLoading  lipgloss.Style
	StatusSuccess  lipgloss.Style
	PhaseDragging  lipgloss.Style
	PhaseAnimating lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Dim:       lipgloss.NewStyle().Faint(true),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Indicator: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
		Help:      lipgloss.NewStyle().Faint(true),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("241")),
		Empty:          lipgloss.NewStyle().Faint(true).Italic(true),
		StatusError:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		PhaseDragging:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		PhaseAnimating: lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // cyan
	}
}
