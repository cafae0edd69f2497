package app

import (
	"context"
	"time"

	"github.com/surreal-ui/surreal/pkg/animation"
)

// Timer measures frame time. It starts paused.
type Timer struct {
	previous time.Time
	elapsed  time.Duration
	paused   bool
}

// NewTimer returns a paused timer.
func NewTimer() *Timer {
	return &Timer{paused: true}
}

// Start begins timing from now.
func (t *Timer) Start() {
	t.previous = animation.Now()
	t.paused = false
}

// Pause stops accumulating elapsed time. Tick still reports deltas.
func (t *Timer) Pause() { t.paused = true }

// Resume continues accumulating elapsed time.
func (t *Timer) Resume() { t.paused = false }

// TogglePaused flips the paused state and reports whether the timer is now
// paused.
func (t *Timer) TogglePaused() bool {
	t.paused = !t.paused
	return t.paused
}

// Paused reports whether the timer is paused.
func (t *Timer) Paused() bool { return t.paused }

// Tick returns the time since the previous Tick (or Start).
func (t *Timer) Tick() time.Duration {
	now := animation.Now()
	dt := now.Sub(t.previous)
	t.previous = now
	if !t.paused {
		t.elapsed += dt
	}
	return dt
}

// Elapsed returns the unpaused time accumulated by Tick.
func (t *Timer) Elapsed() time.Duration { return t.elapsed }

// ResetElapsed sets the elapsed time to zero.
func (t *Timer) ResetElapsed() { t.elapsed = 0 }

// FrameBudget returns the sleep needed to hold targetFPS after a frame that
// took dt, or zero when the remainder is within threshold.
func FrameBudget(targetFPS int, dt, threshold time.Duration) time.Duration {
	if targetFPS <= 0 {
		return 0
	}
	perFrame := time.Second / time.Duration(targetFPS)
	if dt < perFrame && perFrame-dt > threshold {
		return perFrame - dt
	}
	return 0
}

// AwaitFPS sleeps for the rest of the frame budget. It returns early with
// the context's error if ctx is done.
func AwaitFPS(ctx context.Context, targetFPS int, dt, threshold time.Duration) error {
	d := FrameBudget(targetFPS, dt, threshold)
	if d == 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
