package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"swiper/internal/domain"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	help help.Model
	keys KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys KeyMap) *HelpRenderer {
	h := help.New()
	h.ShowAll = true
	return &HelpRenderer{help: h, keys: keys}
}

// renderHelpContent renders the help popup for the given paging axis
func (r *HelpRenderer) renderHelpContent(axis domain.Axis) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var b strings.Builder

	b.WriteString(titleStyle.Render("Swiper Help"))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Keys"))
	b.WriteString("\n")
	b.WriteString(r.help.View(r.keys))
	b.WriteString("\n")

	drag := "Drag up/down"
	if axis == domain.AxisHorizontal {
		drag = "Drag left/right"
	}
	b.WriteString(sectionStyle.Render("Mouse"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render(drag), descStyle.Render("Swipe to the neighbouring page")))
	b.WriteString(fmt.Sprintf("  %s  %s", keyStyle.Render("Short drag  "), descStyle.Render("Snaps back")))

	return b.String()
}
