// Package animation drives time-based changes to widget properties.
//
// An Animation calls its step function with the elapsed time on every frame
// until its duration has passed. The application keeps redrawing while any
// registered Animator is in progress.
package animation

import "time"

// Status reports whether an animation is still running.
type Status int

const (
	InProgress Status = iota
	Complete
)

func (s Status) String() string {
	if s == InProgress {
		return "in progress"
	}
	return "complete"
}

// Animation applies a step function to a target of type T over a duration.
type Animation[T any] struct {
	step     func(target *T, elapsed time.Duration)
	duration time.Duration
	elapsed  time.Duration
}

// New returns an animation running step for duration.
func New[T any](duration time.Duration, step func(target *T, elapsed time.Duration)) *Animation[T] {
	return &Animation[T]{step: step, duration: duration}
}

// Eased returns an animation whose step receives eased progress in [0, 1].
func Eased[T any](duration time.Duration, curve Curve, step func(target *T, progress float64)) *Animation[T] {
	if curve == nil {
		curve = Linear
	}
	return New(duration, func(target *T, elapsed time.Duration) {
		p := 1.0
		if duration > 0 {
			p = float64(elapsed) / float64(duration)
		}
		step(target, curve(p))
	})
}

// Animate advances the animation by dt and applies it to target. The step
// runs for every frame whose elapsed time is within the duration, including
// the frame reaching it exactly.
func (a *Animation[T]) Animate(target *T, dt time.Duration) Status {
	a.elapsed += dt
	if a.elapsed <= a.duration {
		a.step(target, a.elapsed)
		return InProgress
	}
	return Complete
}

// Elapsed returns the time animated so far.
func (a *Animation[T]) Elapsed() time.Duration { return a.elapsed }

// Duration returns the animation's length.
func (a *Animation[T]) Duration() time.Duration { return a.duration }

// Reset rewinds the animation.
func (a *Animation[T]) Reset() { a.elapsed = 0 }

// Animator is an animation bound to its target.
type Animator interface {
	Step(dt time.Duration) Status
}

type bound[T any] struct {
	anim   *Animation[T]
	target *T
}

func (b bound[T]) Step(dt time.Duration) Status {
	return b.anim.Animate(b.target, dt)
}

// Bind ties a to target.
func Bind[T any](a *Animation[T], target *T) Animator {
	return bound[T]{anim: a, target: target}
}
