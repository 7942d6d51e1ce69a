package animation

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Strategy selects how AnimateTo interpolates. It is either Spring or Timed.
type Strategy interface {
	newRun(from, target float64, fps int) interpolation
}

// Spring is a damped spring, used for reverts
type Spring struct {
	AngularFrequency float64
	DampingRatio     float64
}

// Timed is a fixed-duration ramp, used for commits. A nil Easing means EaseOutCubic.
type Timed struct {
	Duration time.Duration
	Easing   func(t float64) float64
}

// EaseOutCubic decelerates towards the end of the ramp
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// Linear is the identity easing
func Linear(t float64) float64 {
	return t
}

// interpolation advances one frame and reports the new value and whether
// it has reached the target. The final value must equal the target exactly.
type interpolation interface {
	advance(dt time.Duration) (value float64, done bool)
}

const (
	settleEpsilon = 0.01
	// maxSpringFrames bounds an underdamped spring that never settles
	maxSpringFrames = 60 * 10
)

type springRun struct {
	spring   harmonica.Spring
	pos      float64
	vel      float64
	target   float64
	frames   int
	maxFrame int
}

func (s Spring) newRun(from, target float64, fps int) interpolation {
	return &springRun{
		spring:   harmonica.NewSpring(harmonica.FPS(fps), s.AngularFrequency, s.DampingRatio),
		pos:      from,
		target:   target,
		maxFrame: maxSpringFrames * fps / 60,
	}
}

// advance ignores dt: the spring coefficients are fixed per frame.
func (r *springRun) advance(time.Duration) (float64, bool) {
	r.pos, r.vel = r.spring.Update(r.pos, r.vel, r.target)
	r.frames++
	if (math.Abs(r.pos-r.target) < settleEpsilon && math.Abs(r.vel) < settleEpsilon) || r.frames >= r.maxFrame {
		r.pos, r.vel = r.target, 0
		return r.target, true
	}
	return r.pos, false
}

type timedRun struct {
	from     float64
	target   float64
	elapsed  time.Duration
	duration time.Duration
	easing   func(float64) float64
}

func (s Timed) newRun(from, target float64, _ int) interpolation {
	easing := s.Easing
	if easing == nil {
		easing = EaseOutCubic
	}
	return &timedRun{from: from, target: target, duration: s.Duration, easing: easing}
}

func (r *timedRun) advance(dt time.Duration) (float64, bool) {
	r.elapsed += dt
	if r.elapsed >= r.duration {
		return r.target, true
	}
	t := float64(r.elapsed) / float64(r.duration)
	return r.from + (r.target-r.from)*r.easing(t), false
}
