// Package paging implements the page-index state machine and the two
// strategies that drive it: a self-driven swipe controller and a
// controller delegating to a native paged view.
package paging

import (
	"fmt"

	"swiper/internal/animation"
	"swiper/internal/config"
	"swiper/internal/domain"
	"swiper/internal/eventbus"
)

// Snapshot is the observable paging state
type Snapshot struct {
	Index     int
	Offset    float64
	Phase     domain.Phase
	Direction domain.Direction
}

// Controller is the contract the embedding application talks to,
// whichever strategy backs it.
type Controller interface {
	Index() int
	Snapshot() Snapshot
	SetPage(index int)
	SetPageWithoutAnimation(index int)
	NextPage()
	PreviousPage()
	Subscribe(fn func(Snapshot)) func()
}

// Options configures a controller. Zero values take the config defaults.
type Options struct {
	ThresholdRatio  float64
	DampeningFactor float64
	InitialPage     int
	Extent          float64
	Commit          animation.Strategy
	Revert          animation.Strategy

	// OnPageSelected fires once per committed transition
	OnPageSelected func(domain.PageSelectedEvent)
}

// OptionsFromConfig maps the application config onto controller options
func OptionsFromConfig(cfg *config.Config, extent float64) Options {
	return Options{
		ThresholdRatio:  cfg.ThresholdRatio,
		DampeningFactor: cfg.DampeningFactor,
		InitialPage:     cfg.InitialPage,
		Extent:          extent,
		Commit:          animation.Timed{Duration: cfg.Animation.CommitDuration()},
		Revert: animation.Spring{
			AngularFrequency: cfg.Animation.SpringFrequency,
			DampingRatio:     cfg.Animation.SpringDamping,
		},
	}
}

func (o *Options) applyDefaults() {
	d := config.DefaultConfig()
	if o.ThresholdRatio == 0 {
		o.ThresholdRatio = d.ThresholdRatio
	}
	if o.DampeningFactor == 0 {
		o.DampeningFactor = d.DampeningFactor
	}
	if o.Commit == nil {
		o.Commit = animation.Timed{Duration: d.Animation.CommitDuration()}
	}
	if o.Revert == nil {
		o.Revert = animation.Spring{
			AngularFrequency: d.Animation.SpringFrequency,
			DampingRatio:     d.Animation.SpringDamping,
		}
	}
}

// Deps are the collaborators a controller needs
type Deps struct {
	Provider domain.Provider
	Animator *animation.Animator // swipe backend only
	View     NativeView          // native backend only
	Bus      eventbus.EventBus   // optional, receives PageSelected
}

// New selects the controller strategy from cfg.Backend
func New(cfg *config.Config, opts Options, deps Deps) (Controller, error) {
	switch cfg.Backend {
	case config.BackendSwipe, "":
		if deps.Animator == nil {
			return nil, fmt.Errorf("swipe backend requires an animator")
		}
		return NewSwipeController(opts, deps.Provider, deps.Animator, deps.Bus), nil
	case config.BackendNative:
		if deps.View == nil {
			return nil, fmt.Errorf("native backend requires a native view")
		}
		return NewNativeController(opts, deps.Provider, deps.View, deps.Bus), nil
	default:
		return nil, fmt.Errorf("%w: got %q", config.ErrInvalidBackend, cfg.Backend)
	}
}

// observers is the synchronous snapshot publisher shared by both strategies
type observers struct {
	bus *eventbus.SyncBus
}

func newObservers() observers {
	return observers{bus: eventbus.NewSync()}
}

func (o observers) subscribe(fn func(Snapshot)) func() {
	return o.bus.Subscribe(eventbus.EventPagerChanged, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.PagerChangedEvent); ok {
			fn(Snapshot{Index: ev.Index, Offset: ev.Offset, Phase: ev.Phase, Direction: ev.Direction})
		}
	})
}

func (o observers) publish(s Snapshot) {
	o.bus.Publish(eventbus.PagerChangedEvent{
		Index:     s.Index,
		Offset:    s.Offset,
		Phase:     s.Phase,
		Direction: s.Direction,
	})
}

// notifier delivers PageSelected to the callback and the application bus
type notifier struct {
	callback func(domain.PageSelectedEvent)
	bus      eventbus.EventBus
}

func (n notifier) pageSelected(position int) {
	ev := domain.PageSelectedEvent{Position: position}
	if n.callback != nil {
		n.callback(ev)
	}
	if n.bus != nil {
		n.bus.Publish(ev)
	}
}

func exists(p domain.Provider, index int) bool {
	if p == nil {
		return false
	}
	_, ok := p.PageAt(index)
	return ok
}
