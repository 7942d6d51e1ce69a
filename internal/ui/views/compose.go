package views

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"swiper/internal/domain"
	"swiper/internal/window"
)

// Layout is the geometry of the paging area in cells
type Layout struct {
	Width  int
	Height int
	Axis   domain.Axis
}

// Extent is the viewport size along the paging axis
func (l Layout) Extent() int {
	if l.Axis == domain.AxisHorizontal {
		return l.Width
	}
	return l.Height
}

// block is a page rendered to exactly Width x Height cells
type block struct {
	origin int
	lines  []string
}

// Compose draws the window descriptors into a Width x Height canvas.
// Previous sits one extent before the live position and next one extent
// after it; whatever falls outside the viewport is clipped.
func Compose(descriptors []window.Descriptor, layout Layout) string {
	if layout.Width <= 0 || layout.Height <= 0 {
		return ""
	}
	extent := layout.Extent()

	blocks := make([]block, 0, len(descriptors))
	for _, d := range descriptors {
		origin := int(math.Round(d.Position)) + d.Role.Slot()*extent
		if origin >= extent || origin+extent <= 0 {
			continue
		}
		blocks = append(blocks, block{origin: origin, lines: renderPage(d.Page, layout.Width, layout.Height)})
	}

	blank := strings.Repeat(" ", layout.Width)
	rows := make([]string, layout.Height)
	for r := range rows {
		if layout.Axis == domain.AxisHorizontal {
			rows[r] = composeRow(blocks, r, layout.Width)
			continue
		}
		rows[r] = blank
		for _, b := range blocks {
			if i := r - b.origin; i >= 0 && i < layout.Height {
				rows[r] = b.lines[i]
			}
		}
	}
	return strings.Join(rows, "\n")
}

// composeRow stitches row r from blocks laid out left to right
func composeRow(blocks []block, r, width int) string {
	var sb strings.Builder
	col := 0
	for _, b := range blocks {
		left := max(b.origin, col)
		right := min(b.origin+width, width)
		if right <= left {
			continue
		}
		sb.WriteString(strings.Repeat(" ", left-col))
		sb.WriteString(ansi.Cut(b.lines[r], left-b.origin, right-b.origin))
		col = right
	}
	if col < width {
		sb.WriteString(strings.Repeat(" ", width-col))
	}
	return sb.String()
}

// renderPage sizes a page's view to the viewport
func renderPage(page domain.Page, width, height int) []string {
	content := ""
	if page != nil {
		content = page.View(width, height)
	}
	rendered := lipgloss.NewStyle().
		Width(width).
		Height(height).
		MaxWidth(width).
		MaxHeight(height).
		Render(content)

	lines := strings.Split(rendered, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w < width {
			lines[i] = line + strings.Repeat(" ", width-w)
		}
	}
	return lines[:height]
}
