package views

import (
	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopup centres popupContent in a width x height area, replacing
// whatever was underneath
func (pr *PopupRenderer) RenderPopup(popupContent string, width, height int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)
	if lipgloss.Height(styledPopup) > height {
		styledPopup = popupStyle.MaxHeight(height).Render(popupContent)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, styledPopup)
}
