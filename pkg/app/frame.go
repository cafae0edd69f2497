// Package app drives a view tree: it turns input events into messages,
// dispatches them, re-lays out the tree when needed and renders it.
package app

import (
	"time"

	"github.com/surreal-ui/surreal/pkg/animation"
	"github.com/surreal-ui/surreal/pkg/event"
	"github.com/surreal-ui/surreal/pkg/graphics"
	"github.com/surreal-ui/surreal/pkg/layout"
	"github.com/surreal-ui/surreal/pkg/message"
	"github.com/surreal-ui/surreal/pkg/render"
	"github.com/surreal-ui/surreal/pkg/theme"
	"github.com/surreal-ui/surreal/pkg/view"
)

// Clearer is implemented by renderers that can fill the target with the
// theme's background before a frame.
type Clearer interface {
	Clear(c graphics.Color)
}

// Frame owns a root view and the per-tick machinery around it.
type Frame struct {
	root      view.View
	theme     *theme.Theme
	renderer  render.Renderer
	queue     *message.Queue
	size      layout.Constraints
	animators []animation.Animator
	trace     *FrameTraceBuffer
	started   bool
}

// NewFrame returns a frame for root. Call Start before the first Tick.
func NewFrame(root view.View, th *theme.Theme, r render.Renderer) *Frame {
	if th == nil {
		th = theme.Default()
	}
	return &Frame{
		root:     root,
		theme:    th,
		renderer: r,
		queue:    message.NewQueue(),
	}
}

// Root returns the root view.
func (f *Frame) Root() view.View { return f.root }

// Theme returns the theme.
func (f *Frame) Theme() *theme.Theme { return f.theme }

// Size returns the constraints of the last layout.
func (f *Frame) Size() layout.Constraints { return f.size }

// SetTrace records a sample for every tick into buf. Pass nil to stop.
func (f *Frame) SetTrace(buf *FrameTraceBuffer) { f.trace = buf }

// Animate registers an animator. The frame steps it every tick and keeps
// redrawing until it completes.
func (f *Frame) Animate(a animation.Animator) {
	f.animators = append(f.animators, a)
}

// Animating reports whether any animator is registered.
func (f *Frame) Animating() bool { return len(f.animators) > 0 }

// Start initializes and lays out the tree for the given window size and
// renders the first frame.
func (f *Frame) Start(size layout.Constraints) {
	f.size = size
	view.InitAll(f.root, f.renderer, f.theme, true)
	f.root.Layout(f.renderer, f.theme, size, true)
	f.started = true
	f.render()
}

// Tick runs one iteration of the event loop:
//
//  1. every event is propagated through the tree;
//  2. the message queue is drained;
//  3. each message is propagated through the tree;
//  4. if a widget requested a resize or the window size changed, the tree is
//     re-initialized and laid out again;
//  5. the tree is rendered if anything requested a redraw.
//
// dt advances registered animations. Tick reports whether it rendered.
func (f *Frame) Tick(events []event.Event, size layout.Constraints, dt time.Duration) bool {
	if !f.started {
		f.Start(size)
		return true
	}

	var sample FrameSample
	start := time.Now()
	phase := start

	redraw := false
	for _, ev := range events {
		if f.root.PropagateEvent(ev, f.queue) {
			redraw = true
		}
	}
	sample.Phases.EventsMs = durationToMillis(time.Since(phase))
	sample.Counts.Events = len(events)

	phase = time.Now()
	msgs := f.queue.Drain()
	resize := false
	for _, msg := range msgs {
		if f.root.PropagateMessage(msg) {
			resize = true
		}
	}
	if len(msgs) > 0 {
		redraw = true
	}
	sample.Phases.MessagesMs = durationToMillis(time.Since(phase))
	sample.Counts.Messages = len(msgs)

	phase = time.Now()
	if resize || size != f.size {
		f.size = size
		view.InitAll(f.root, f.renderer, f.theme, false)
		f.root.Layout(f.renderer, f.theme, size, true)
		redraw = true
		sample.Flags.Relayout = true
	}
	sample.Phases.LayoutMs = durationToMillis(time.Since(phase))

	if f.step(dt) {
		redraw = true
	}

	phase = time.Now()
	if redraw {
		f.render()
	}
	sample.Phases.RenderMs = durationToMillis(time.Since(phase))
	sample.Flags.Redraw = redraw

	if f.trace != nil {
		frameDuration := time.Since(start)
		sample.Timestamp = start.UnixMilli()
		sample.FrameMs = durationToMillis(frameDuration)
		f.trace.Add(sample, frameDuration)
	}
	return redraw
}

// step advances animations and drops completed ones. It reports whether any
// animation was in progress.
func (f *Frame) step(dt time.Duration) bool {
	if len(f.animators) == 0 {
		return false
	}
	active := f.animators[:0]
	for _, a := range f.animators {
		if a.Step(dt) == animation.InProgress {
			active = append(active, a)
		}
	}
	running := len(active) > 0
	clear(f.animators[len(active):])
	f.animators = active
	return running
}

func (f *Frame) render() {
	if c, ok := f.renderer.(Clearer); ok {
		c.Clear(f.theme.Colors.Background)
	}
	f.root.Render(f.renderer, f.theme)
}
