// Package animation owns the live paging offset and drives it towards
// targets one frame at a time.
package animation

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg asks the animator to advance one frame. Gen identifies the
// animation the frame was scheduled for; frames of a cancelled animation
// are dropped.
type FrameMsg struct {
	Gen uint64
}

type run struct {
	interp     interpolation
	target     float64
	onComplete func()
}

// Animator holds one continuous scalar. Not safe for concurrent use; all
// calls belong on the UI event loop.
type Animator struct {
	value     float64
	fps       int
	frame     time.Duration
	run       *run
	gen       uint64
	pending   uint64
	observers []observer
	nextObs   int
}

type observer struct {
	id int
	fn func(float64)
}

// New creates an animator at value 0 stepping at fps frames per second
func New(fps int) *Animator {
	if fps <= 0 {
		fps = 60
	}
	return &Animator{
		fps:   fps,
		frame: time.Second / time.Duration(fps),
	}
}

// Value returns the current value
func (a *Animator) Value() float64 {
	return a.value
}

// Animating reports whether an animation is in flight
func (a *Animator) Animating() bool {
	return a.run != nil
}

// Target returns the target of the in-flight animation
func (a *Animator) Target() (float64, bool) {
	if a.run == nil {
		return 0, false
	}
	return a.run.target, true
}

// Generation identifies the current animation
func (a *Animator) Generation() uint64 {
	return a.gen
}

// FrameInterval is the time one Step represents
func (a *Animator) FrameInterval() time.Duration {
	return a.frame
}

// Observe registers fn for every value change and returns an unsubscribe func
func (a *Animator) Observe(fn func(float64)) func() {
	id := a.nextObs
	a.nextObs++
	a.observers = append(a.observers, observer{id: id, fn: fn})
	return func() {
		for i, o := range a.observers {
			if o.id == id {
				a.observers = append(a.observers[:i:i], a.observers[i+1:]...)
				return
			}
		}
	}
}

// SetImmediate sets the value without animating. An in-flight animation is
// cancelled and its completion never fires.
func (a *Animator) SetImmediate(v float64) {
	a.cancel()
	a.set(v)
}

// Stop cancels the in-flight animation at its current value
func (a *Animator) Stop() {
	a.cancel()
}

// AnimateTo interpolates from the current value to target. onComplete runs
// exactly once, right after the frame that reaches target. A previous
// animation is cancelled without its completion.
func (a *Animator) AnimateTo(target float64, s Strategy, onComplete func()) {
	a.cancel()
	a.run = &run{
		interp:     s.newRun(a.value, target, a.fps),
		target:     target,
		onComplete: onComplete,
	}
}

// Step advances the in-flight animation by one frame of length dt and
// reports whether an animation is still running afterwards.
func (a *Animator) Step(dt time.Duration) bool {
	r := a.run
	if r == nil {
		return false
	}

	v, done := r.interp.advance(dt)
	a.set(v)
	if a.run != r {
		// an observer replaced or cancelled the animation
		return a.run != nil
	}
	if done {
		a.run = nil
		a.gen++
		if r.onComplete != nil {
			r.onComplete()
		}
	}
	return a.run != nil
}

// Settle steps until no animation remains, bounded by maxFrames
func (a *Animator) Settle(maxFrames int) {
	for i := 0; i < maxFrames; i++ {
		if !a.Step(a.frame) {
			return
		}
	}
}

// Pump schedules the next frame when an animation is running and no frame
// is outstanding for it.
func (a *Animator) Pump() tea.Cmd {
	if a.run == nil || a.pending == a.gen {
		return nil
	}
	a.pending = a.gen
	gen := a.gen
	return tea.Tick(a.frame, func(time.Time) tea.Msg {
		return FrameMsg{Gen: gen}
	})
}

// HandleFrame steps the animation the frame belongs to and schedules the
// next one. Stale frames are ignored.
func (a *Animator) HandleFrame(msg FrameMsg) tea.Cmd {
	if msg.Gen != a.gen {
		return a.Pump()
	}
	a.pending = 0
	a.Step(a.frame)
	return a.Pump()
}

// cancel drops the in-flight animation and invalidates its frames
func (a *Animator) cancel() {
	a.run = nil
	a.gen++
}

func (a *Animator) set(v float64) {
	if v == a.value {
		return
	}
	a.value = v
	for _, o := range a.observers {
		o.fn(v)
	}
}
