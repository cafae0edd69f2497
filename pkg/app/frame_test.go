package app

import (
	"strconv"
	"testing"
	"time"

	"github.com/surreal-ui/surreal/pkg/animation"
	"github.com/surreal-ui/surreal/pkg/errors"
	"github.com/surreal-ui/surreal/pkg/event"
	"github.com/surreal-ui/surreal/pkg/graphics"
	"github.com/surreal-ui/surreal/pkg/layout"
	"github.com/surreal-ui/surreal/pkg/message"
	"github.com/surreal-ui/surreal/pkg/render"
	"github.com/surreal-ui/surreal/pkg/state"
	"github.com/surreal-ui/surreal/pkg/theme"
	"github.com/surreal-ui/surreal/pkg/view"
	"github.com/surreal-ui/surreal/pkg/widget"
)

// recorder measures text as scale/2 per rune by scale and counts frames.
type recorder struct {
	clears   []graphics.Color
	commands []render.Command
}

func (r *recorder) MeasureText(spec render.TextSpec) (uint32, uint32) {
	return uint32(float32(len([]rune(spec.Text))) * spec.Scale / 2), uint32(spec.Scale)
}

func (r *recorder) ResourceDimensions(string) (uint32, uint32, error) {
	return 0, 0, errors.ErrNotFound
}

func (r *recorder) Draw(cmd render.Command) { r.commands = append(r.commands, cmd) }

func (r *recorder) Clear(c graphics.Color) {
	r.clears = append(r.clears, c)
	r.commands = r.commands[:0]
}

type bumped struct{}

func (bumped) IsMessage() bool { return true }

// counterTree is a button that increments "count" and a label showing it.
func counterTree(t *testing.T) (*view.Stack, *widget.Button, *widget.Text) {
	t.Helper()
	st := state.New()
	if err := st.AddVar("count", 0); err != nil {
		t.Fatalf("AddVar: %v", err)
	}
	label := widget.NewText("label").Content("0").Scale(20).
		OnMessage(func(txt *widget.Text, msg message.Message, st *state.Store) {
			if _, ok := msg.(bumped); ok {
				txt.SetText(strconv.Itoa(*st.Int("count")))
			}
		})
	button := widget.NewButton("button").OnClick(func(st *state.Store) message.Message {
		*st.Int("count")++
		return bumped{}
	})
	root := view.VStack(view.FromWidget(label), view.FromWidget(button)).WithState(st)
	return root, button, label
}

func click(b graphics.BoundingRect) []event.Event {
	c := b.Center()
	return []event.Event{event.Press(c.X, c.Y), event.Release(c.X, c.Y)}
}

func TestFrameStartRendersWithBackground(t *testing.T) {
	root, _, _ := counterTree(t)
	r := &recorder{}
	th := theme.Default()
	f := NewFrame(root, th, r)
	f.Start(layout.Window(400, 300))

	if len(r.clears) != 1 {
		t.Fatalf("clears = %d, want 1", len(r.clears))
	}
	if r.clears[0] != th.Colors.Background {
		t.Errorf("clear color = %v, want %v", r.clears[0], th.Colors.Background)
	}
	if len(r.commands) == 0 {
		t.Error("Start drew nothing")
	}
}

func TestFrameTickIdle(t *testing.T) {
	root, _, _ := counterTree(t)
	r := &recorder{}
	f := NewFrame(root, nil, r)
	f.Start(layout.Window(400, 300))

	if f.Tick(nil, layout.Window(400, 300), time.Millisecond) {
		t.Error("idle Tick rendered")
	}
	if len(r.clears) != 1 {
		t.Errorf("clears = %d, want 1", len(r.clears))
	}
}

func TestFrameTickClick(t *testing.T) {
	root, button, label := counterTree(t)
	r := &recorder{}
	f := NewFrame(root, nil, r)
	size := layout.Window(400, 300)
	f.Start(size)

	buf := NewFrameTraceBuffer(8, 0)
	f.SetTrace(buf)

	if !f.Tick(click(button.Bounds()), size, time.Millisecond) {
		t.Fatal("click did not render")
	}
	if got := label.Text(); got != "1" {
		t.Errorf("label = %q, want %q", got, "1")
	}

	shared := root.State()
	var count int
	shared.With("test", func(st *state.Store) { count = *st.Int("count") })
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}

	tl := buf.Snapshot()
	if len(tl.Samples) != 1 {
		t.Fatalf("samples = %d, want 1", len(tl.Samples))
	}
	s := tl.Samples[0]
	if s.Counts.Events != 2 || s.Counts.Messages != 1 {
		t.Errorf("counts = %+v, want 2 events, 1 message", s.Counts)
	}
	if !s.Flags.Relayout || !s.Flags.Redraw {
		t.Errorf("flags = %+v, want relayout and redraw", s.Flags)
	}
}

func TestFrameTickMissedClick(t *testing.T) {
	root, button, label := counterTree(t)
	f := NewFrame(root, nil, &recorder{})
	size := layout.Window(400, 300)
	f.Start(size)

	b := button.Bounds()
	events := []event.Event{
		event.Press(b.X+1, b.Y+1),
		event.Release(b.X-50, b.Y-50),
	}
	if f.Tick(events, size, time.Millisecond) {
		t.Error("missed click rendered")
	}
	if got := label.Text(); got != "0" {
		t.Errorf("label = %q, want %q", got, "0")
	}
}

func TestFrameRelayoutOnWindowResize(t *testing.T) {
	root, _, _ := counterTree(t)
	f := NewFrame(root, nil, &recorder{})
	f.Start(layout.Window(400, 300))
	before := root.Bounds()

	if !f.Tick(nil, layout.Window(800, 600), 0) {
		t.Fatal("resize did not render")
	}
	after := root.Bounds()
	if after.Width != before.Width || after.Height != before.Height {
		t.Errorf("size changed: %v -> %v", before, after)
	}
	if got, want := after.X-before.X, int32(200); got != want {
		t.Errorf("x shift = %d, want %d", got, want)
	}
	if got, want := after.Y-before.Y, int32(150); got != want {
		t.Errorf("y shift = %d, want %d", got, want)
	}
	if f.Size() != layout.Window(800, 600) {
		t.Errorf("Size() = %v, want 800x600", f.Size())
	}
}

func TestFrameAnimationKeepsRedrawing(t *testing.T) {
	root, _, _ := counterTree(t)
	f := NewFrame(root, nil, &recorder{})
	size := layout.Window(400, 300)
	f.Start(size)

	var x float64
	a := animation.Eased(30*time.Millisecond, animation.Linear, func(v *float64, p float64) {
		*v = animation.LerpFloat64(0, 90, p)
	})
	f.Animate(animation.Bind(a, &x))

	want := []bool{true, true, true, false}
	for i, w := range want {
		if got := f.Tick(nil, size, 10*time.Millisecond); got != w {
			t.Errorf("tick %d rendered = %v, want %v", i, got, w)
		}
	}
	if x != 90 {
		t.Errorf("x = %v, want 90", x)
	}
	if f.Animating() {
		t.Error("completed animation still registered")
	}
}

func TestFrameTickBeforeStart(t *testing.T) {
	root, _, _ := counterTree(t)
	r := &recorder{}
	f := NewFrame(root, nil, r)
	if !f.Tick(nil, layout.Window(400, 300), 0) {
		t.Error("first Tick did not render")
	}
	if len(r.clears) != 1 {
		t.Errorf("clears = %d, want 1", len(r.clears))
	}
}
