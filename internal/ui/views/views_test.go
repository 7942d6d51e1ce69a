package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swiper/internal/domain"
	"swiper/internal/window"
)

func provider(bodies ...string) domain.Provider {
	return domain.ProviderFunc(func(i int) (domain.Page, bool) {
		if i < 0 || i >= len(bodies) {
			return nil, false
		}
		return domain.TextPage{Body: bodies[i]}, true
	})
}

func TestComposeVerticalAtRest(t *testing.T) {
	out := Compose(window.Render(0, 0, provider("AAA", "BBB")), Layout{Width: 5, Height: 3})
	assert.Equal(t, []string{"AAA  ", "     ", "     "}, strings.Split(out, "\n"))
}

func TestComposeVerticalShowsNextWhileDragging(t *testing.T) {
	out := Compose(window.Render(0, -1, provider("AAA", "BBB")), Layout{Width: 5, Height: 3})
	assert.Equal(t, []string{"     ", "     ", "BBB  "}, strings.Split(out, "\n"))
}

func TestComposeVerticalShowsPrevious(t *testing.T) {
	out := Compose(window.Render(1, 2, provider("A\nB\nC", "DDD")), Layout{Width: 3, Height: 3})
	assert.Equal(t, []string{"B  ", "C  ", "DDD"}, strings.Split(out, "\n"))
}

func TestComposeHorizontal(t *testing.T) {
	layout := Layout{Width: 4, Height: 1, Axis: domain.AxisHorizontal}
	assert.Equal(t, "AAAA", Compose(window.Render(0, 0, provider("AAAA", "BBBB")), layout))
	assert.Equal(t, "AAAB", Compose(window.Render(0, -1, provider("AAAA", "BBBB")), layout))
	assert.Equal(t, "  AA", Compose(window.Render(0, 2, provider("AAAA", "BBBB")), layout))
}

func TestComposeClipsFarOffsets(t *testing.T) {
	out := Compose(window.Render(0, -50, provider("AAA", "BBB")), Layout{Width: 3, Height: 2})
	assert.Equal(t, []string{"   ", "   "}, strings.Split(out, "\n"))
	assert.Empty(t, Compose(nil, Layout{}))
}

func TestLayoutExtent(t *testing.T) {
	assert.Equal(t, 10, Layout{Width: 40, Height: 10}.Extent())
	assert.Equal(t, 40, Layout{Width: 40, Height: 10, Axis: domain.AxisHorizontal}.Extent())
	assert.Equal(t, 1, PageLayout(10, 1, domain.AxisVertical).Height)
}

func TestPageIndicator(t *testing.T) {
	assert.Equal(t, "page 1+", PageIndicator(0, true))
	assert.Equal(t, "page 3", PageIndicator(2, false))
}

func TestRenderFillsTerminal(t *testing.T) {
	r := NewRenderer()
	out := r.Render(ViewState{
		Width:         20,
		Height:        6,
		Descriptors:   window.Render(0, 0, provider("hello")),
		StatusMessage: "ready",
	})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[0], "hello")
	assert.Contains(t, lines[4], "page 1")
	assert.Contains(t, lines[4], "ready")
	assert.Contains(t, lines[5], "?")
}

func TestRenderEmptyAndHelp(t *testing.T) {
	r := NewRenderer()
	assert.Contains(t, r.Render(ViewState{Width: 30, Height: 6}), "No pages.")
	assert.Contains(t, r.Render(ViewState{Width: 30, Height: 6, Scanning: true}), "Looking for pages...")
	assert.Contains(t, r.Render(ViewState{Width: 30, Height: 8, ShowHelp: true, HelpView: "k up"}), "k up")
}
