package paging

import (
	"swiper/internal/domain"
	"swiper/internal/eventbus"
)

// NativeView is a paged view that renders and handles input on its own.
// Show blocks while the view owns the terminal and calls selected whenever
// the view lands on a page.
type NativeView interface {
	Show(provider domain.Provider, start int, selected func(position int)) error
}

// NativeController keeps the index in sync with a NativeView. There is no
// offset or gesture handling in this strategy; the offset is always 0.
type NativeController struct {
	provider domain.Provider
	view     NativeView
	index    int
	obs      observers
	notify   notifier
}

var _ Controller = (*NativeController)(nil)

// NewNativeController creates a controller at opts.InitialPage delegating to view
func NewNativeController(opts Options, provider domain.Provider, view NativeView, bus eventbus.EventBus) *NativeController {
	return &NativeController{
		provider: provider,
		view:     view,
		index:    opts.InitialPage,
		obs:      newObservers(),
		notify:   notifier{callback: opts.OnPageSelected, bus: bus},
	}
}

// Index returns the current page index
func (c *NativeController) Index() int {
	return c.index
}

// Snapshot returns the current observable state
func (c *NativeController) Snapshot() Snapshot {
	return Snapshot{Index: c.index}
}

// Subscribe registers fn for every index change
func (c *NativeController) Subscribe(fn func(Snapshot)) func() {
	return c.obs.subscribe(fn)
}

// Run hands the page set to the native view, starting at the current index
func (c *NativeController) Run() error {
	return c.view.Show(c.provider, c.index, c.onSelected)
}

func (c *NativeController) onSelected(position int) {
	if position == c.index {
		return
	}
	c.index = position
	c.obs.publish(c.Snapshot())
	c.notify.pageSelected(position)
}

// SetPage assigns the index without validation or notification
func (c *NativeController) SetPage(index int) {
	c.index = index
	c.obs.publish(c.Snapshot())
}

// SetPageWithoutAnimation is SetPage
func (c *NativeController) SetPageWithoutAnimation(index int) {
	c.SetPage(index)
}

// NextPage moves to the next page when it exists
func (c *NativeController) NextPage() {
	if exists(c.provider, c.index+1) {
		c.onSelected(c.index + 1)
	}
}

// PreviousPage moves to the previous page when it exists
func (c *NativeController) PreviousPage() {
	if exists(c.provider, c.index-1) {
		c.onSelected(c.index - 1)
	}
}
