package testing

import (
	"fmt"
	"testing"
	"time"

	"github.com/surreal-ui/surreal/pkg/animation"
	"github.com/surreal-ui/surreal/pkg/app"
	"github.com/surreal-ui/surreal/pkg/event"
	"github.com/surreal-ui/surreal/pkg/graphics"
	"github.com/surreal-ui/surreal/pkg/layout"
	"github.com/surreal-ui/surreal/pkg/theme"
	"github.com/surreal-ui/surreal/pkg/view"
)

const (
	// DefaultTestWidth is the default width of the test window.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default height of the test window.
	DefaultTestHeight = 600
)

// ViewTester runs a view tree through the same frame loop as the
// application, with a recording renderer and a fake clock.
type ViewTester struct {
	frame     *app.Frame
	recorder  *Recorder
	clock     *animation.FakeClock
	prevClock animation.Clock
	size      layout.Constraints
	theme     *theme.Theme
	pending   []event.Event
	redraws   int
}

// NewViewTester creates a tester with an 800x600 window and the default
// theme. Call Cleanup when done, or use NewViewTesterWithT instead.
func NewViewTester() *ViewTester {
	clk := animation.NewFakeClock()
	return &ViewTester{
		recorder:  NewRecorder(),
		clock:     clk,
		prevClock: animation.SetClock(clk),
		size:      layout.Window(DefaultTestWidth, DefaultTestHeight),
		theme:     theme.Default(),
	}
}

// NewViewTesterWithT creates a tester cleaned up by t.Cleanup.
func NewViewTesterWithT(t *testing.T) *ViewTester {
	tester := NewViewTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the animation clock.
func (t *ViewTester) Cleanup() {
	animation.SetClock(t.prevClock)
}

// SetSize sets the window size. A mounted tree is laid out again on the
// next Pump.
func (t *ViewTester) SetSize(width, height uint32) {
	t.size = layout.Window(width, height)
}

// SetTheme replaces the theme. Must be called before Mount.
func (t *ViewTester) SetTheme(th *theme.Theme) { t.theme = th }

// Renderer returns the recording renderer, e.g. to register resources
// before Mount.
func (t *ViewTester) Renderer() *Recorder { return t.recorder }

// Clock returns the fake clock.
func (t *ViewTester) Clock() *animation.FakeClock { return t.clock }

// Frame returns the frame driving the mounted tree.
func (t *ViewTester) Frame() *app.Frame { return t.frame }

// Root returns the mounted root view.
func (t *ViewTester) Root() view.View {
	if t.frame == nil {
		return nil
	}
	return t.frame.Root()
}

// Redraws returns how many Pumps rendered.
func (t *ViewTester) Redraws() int { return t.redraws }

// Mount initializes, lays out and renders root.
func (t *ViewTester) Mount(root view.View) {
	t.frame = app.NewFrame(root, t.theme, t.recorder)
	t.frame.Start(t.size)
	t.pending = nil
	t.redraws = 0
}

// Send queues events for the next Pump.
func (t *ViewTester) Send(events ...event.Event) {
	t.pending = append(t.pending, events...)
}

// Pump runs one frame with the queued events and reports whether it
// rendered.
func (t *ViewTester) Pump() bool {
	return t.tick(0)
}

// Advance moves the clock by d and runs one frame with that delta.
func (t *ViewTester) Advance(d time.Duration) bool {
	t.clock.Advance(d)
	return t.tick(d)
}

func (t *ViewTester) tick(dt time.Duration) bool {
	if t.frame == nil {
		panic("ViewTester: Pump before Mount")
	}
	events := t.pending
	t.pending = nil
	redrew := t.frame.Tick(events, t.size, dt)
	if redrew {
		t.redraws++
	}
	return redrew
}

// Find evaluates finder against the mounted tree.
func (t *ViewTester) Find(finder Finder) FinderResult {
	root := t.Root()
	if root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{widgets: finder.Evaluate(root), finder: finder}
}

// Tap clicks the center of the first widget matched by finder.
func (t *ViewTester) Tap(finder Finder) error {
	result := t.Find(finder)
	if !result.Exists() {
		return fmt.Errorf("Tap: finder matched no widgets: %s", finder.Description())
	}
	t.TapAt(result.Bounds().Center())
	return nil
}

// TapAt presses and releases the left button at p and runs a frame.
func (t *ViewTester) TapAt(p graphics.Point) {
	t.Send(event.Press(p.X, p.Y), event.Release(p.X, p.Y))
	t.Pump()
}

// DragFrom presses at start, moves by delta in one motion event and
// releases, then runs a frame.
func (t *ViewTester) DragFrom(start, delta graphics.Point) {
	end := start.Add(delta)
	t.Send(
		event.Press(start.X, start.Y),
		event.Move(end.X, end.Y, delta.X, delta.Y),
		event.Release(end.X, end.Y),
	)
	t.Pump()
}
