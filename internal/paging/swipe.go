package paging

import (
	"swiper/internal/animation"
	"swiper/internal/domain"
	"swiper/internal/eventbus"
)

// SwipeController drives the offset itself from drag gestures.
//
//	Idle -> Dragging                      drag start
//	Dragging -> Committing(dir)           release past threshold, page exists
//	Dragging -> Reverting                 any other release
//	Committing(dir) -> Idle               animation done, index += dir
//	Reverting -> Idle                     animation done
//
// A drag start in any state cancels the in-flight animation; its completion
// never runs, so the index only ever reflects fully committed pages.
type SwipeController struct {
	opts     Options
	provider domain.Provider
	anim     *animation.Animator

	index        int
	phase        domain.Phase
	dir          domain.Direction
	anchor       float64
	notifyCommit bool

	obs       observers
	notify    notifier
	unobserve func()
}

var _ Controller = (*SwipeController)(nil)

// NewSwipeController creates a controller at opts.InitialPage with the offset at rest
func NewSwipeController(opts Options, provider domain.Provider, anim *animation.Animator, bus eventbus.EventBus) *SwipeController {
	opts.applyDefaults()
	c := &SwipeController{
		opts:     opts,
		provider: provider,
		anim:     anim,
		index:    opts.InitialPage,
		obs:      newObservers(),
		notify:   notifier{callback: opts.OnPageSelected, bus: bus},
	}
	anim.SetImmediate(0)
	c.unobserve = anim.Observe(func(float64) { c.publish() })
	return c
}

// Close detaches the controller from its animator
func (c *SwipeController) Close() {
	if c.unobserve != nil {
		c.unobserve()
		c.unobserve = nil
	}
}

// Index returns the current page index
func (c *SwipeController) Index() int {
	return c.index
}

// Snapshot returns the current observable state
func (c *SwipeController) Snapshot() Snapshot {
	return Snapshot{Index: c.index, Offset: c.anim.Value(), Phase: c.phase, Direction: c.dir}
}

// Subscribe registers fn for every state change, delivered synchronously
func (c *SwipeController) Subscribe(fn func(Snapshot)) func() {
	return c.obs.subscribe(fn)
}

func (c *SwipeController) publish() {
	c.obs.publish(c.Snapshot())
}

// threshold is the release displacement needed to commit
func (c *SwipeController) threshold() float64 {
	return c.opts.ThresholdRatio * c.opts.Extent
}

// OnDragStart cancels any animation and starts tracking from the current offset
func (c *SwipeController) OnDragStart() {
	c.anchor = c.unband(c.anim.Value())
	c.anim.Stop()
	c.phase = domain.PhaseDragging
	c.dir = domain.DirectionNone
	c.publish()
}

// OnDragMove applies the drag delta, damped towards a missing page
func (c *SwipeController) OnDragMove(delta float64) {
	if c.phase != domain.PhaseDragging {
		return
	}
	c.anim.SetImmediate(c.band(c.anchor + delta))
}

// towardsMissing reports whether displacement x reveals a page that does not exist
func (c *SwipeController) towardsMissing(x float64) bool {
	return (x < 0 && !exists(c.provider, c.index+1)) || (x > 0 && !exists(c.provider, c.index-1))
}

// band maps a gesture displacement to the drawn offset, damping it towards
// a missing page
func (c *SwipeController) band(x float64) float64 {
	if c.towardsMissing(x) {
		return x * c.opts.DampeningFactor
	}
	return x
}

// unband is the inverse of band, so a drag can pick up a damped offset
func (c *SwipeController) unband(v float64) float64 {
	if c.towardsMissing(v) {
		return v / c.opts.DampeningFactor
	}
	return v
}

// OnDragRelease commits or reverts based on the release displacement
func (c *SwipeController) OnDragRelease(delta float64) {
	if c.phase != domain.PhaseDragging {
		return
	}
	displacement := c.anchor + delta
	c.anchor = 0

	switch {
	case displacement < -c.threshold() && exists(c.provider, c.index+1):
		c.commit(domain.DirectionNext, true)
	case displacement > c.threshold() && exists(c.provider, c.index-1):
		c.commit(domain.DirectionPrevious, true)
	default:
		c.revert()
	}
}

// NextPage commits to the next page, or reverts when there is none
func (c *SwipeController) NextPage() {
	c.interrupt()
	if exists(c.provider, c.index+1) {
		c.commit(domain.DirectionNext, true)
		return
	}
	c.revert()
}

// PreviousPage commits to the previous page, or reverts when there is none
func (c *SwipeController) PreviousPage() {
	c.interrupt()
	if exists(c.provider, c.index-1) {
		c.commit(domain.DirectionPrevious, true)
		return
	}
	c.revert()
}

// SetPage assigns the index immediately. The index is not validated and no
// notification is emitted.
func (c *SwipeController) SetPage(index int) {
	c.anchor = 0
	c.phase = domain.PhaseIdle
	c.dir = domain.DirectionNone
	c.index = index
	c.anim.SetImmediate(0)
	c.publish()
}

// SetPageWithoutAnimation is SetPage
func (c *SwipeController) SetPageWithoutAnimation(index int) {
	c.SetPage(index)
}

// SetPageAnimated animates to an existing neighbour like a committed swipe and
// falls back to SetPage otherwise. notify controls PageSelected.
func (c *SwipeController) SetPageAnimated(index int, notify bool) {
	c.interrupt()
	switch {
	case index == c.index+1 && exists(c.provider, index):
		c.commit(domain.DirectionNext, notify)
	case index == c.index-1 && exists(c.provider, index):
		c.commit(domain.DirectionPrevious, notify)
	default:
		changed := index != c.index
		c.SetPage(index)
		if notify && changed {
			c.notify.pageSelected(index)
		}
	}
}

// interrupt settles whatever is in flight before a programmatic transition.
// A running commit is completed at once so repeated requests are not lost.
func (c *SwipeController) interrupt() {
	switch c.phase {
	case domain.PhaseCommitting:
		dir := c.dir
		c.anim.Stop()
		c.finishCommit(dir, c.notifyCommit)
	case domain.PhaseDragging, domain.PhaseReverting:
		c.anchor = 0
		c.anim.Stop()
		c.phase = domain.PhaseIdle
	}
}

func (c *SwipeController) commit(dir domain.Direction, notify bool) {
	target := -c.opts.Extent
	if dir == domain.DirectionPrevious {
		target = c.opts.Extent
	}
	c.phase = domain.PhaseCommitting
	c.dir = dir
	c.notifyCommit = notify
	c.anim.AnimateTo(target, c.opts.Commit, func() {
		c.finishCommit(dir, notify)
	})
	c.publish()
}

// finishCommit moves the index, resets the offset to rest and then notifies,
// so a listener that pages again starts from a settled state.
func (c *SwipeController) finishCommit(dir domain.Direction, notify bool) {
	c.index += dir.Step()
	c.phase = domain.PhaseIdle
	c.dir = domain.DirectionNone
	c.anim.SetImmediate(0)
	c.publish()
	if notify {
		c.notify.pageSelected(c.index)
	}
}

func (c *SwipeController) revert() {
	c.phase = domain.PhaseReverting
	c.dir = domain.DirectionNone
	c.anim.AnimateTo(0, c.opts.Revert, func() {
		c.phase = domain.PhaseIdle
		c.publish()
	})
	c.publish()
}
