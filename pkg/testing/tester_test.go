package testing_test

import (
	"strconv"
	"testing"
	"time"

	"github.com/surreal-ui/surreal/pkg/animation"
	"github.com/surreal-ui/surreal/pkg/graphics"
	"github.com/surreal-ui/surreal/pkg/message"
	"github.com/surreal-ui/surreal/pkg/state"
	surrealtest "github.com/surreal-ui/surreal/pkg/testing"
	"github.com/surreal-ui/surreal/pkg/view"
	"github.com/surreal-ui/surreal/pkg/widget"
)

type changed struct{}

func (changed) IsMessage() bool { return true }

func counter(t *testing.T) *view.Stack {
	t.Helper()
	st := state.New()
	if err := st.AddVar("n", 0); err != nil {
		t.Fatalf("AddVar: %v", err)
	}
	show := func(txt *widget.Text, msg message.Message, st *state.Store) {
		txt.SetText(strconv.Itoa(*st.Int("n")))
	}
	inc := func(st *state.Store) message.Message {
		*st.Int("n")++
		return changed{}
	}
	return view.VStack(
		view.FromWidget(widget.NewText("value").Content("0").Scale(20).OnMessage(show)),
		view.FromWidget(widget.NewButton("inc").Label(widget.NewText("inc.label").Content("+")).OnClick(inc)),
	).WithState(st)
}

func TestViewTesterTap(t *testing.T) {
	tester := surrealtest.NewViewTesterWithT(t)
	tester.Mount(counter(t))

	if err := tester.Tap(surrealtest.ByID("inc")); err != nil {
		t.Fatalf("Tap: %v", err)
	}
	if err := tester.Tap(surrealtest.ByID("inc")); err != nil {
		t.Fatalf("Tap: %v", err)
	}
	if !tester.Find(surrealtest.ByText("2")).Exists() {
		t.Error("counter does not read 2")
	}
	if got := tester.Redraws(); got != 2 {
		t.Errorf("Redraws = %d, want 2", got)
	}
}

func TestViewTesterTapMissing(t *testing.T) {
	tester := surrealtest.NewViewTesterWithT(t)
	tester.Mount(counter(t))
	if err := tester.Tap(surrealtest.ByID("nope")); err == nil {
		t.Error("Tap on missing widget succeeded")
	}
}

func TestViewTesterIdlePump(t *testing.T) {
	tester := surrealtest.NewViewTesterWithT(t)
	tester.Mount(counter(t))
	if tester.Pump() {
		t.Error("idle Pump rendered")
	}
	if got := tester.Renderer().Frames(); got != 1 {
		t.Errorf("Frames = %d, want 1", got)
	}
}

func TestViewTesterDrag(t *testing.T) {
	var pct float32
	bar := widget.NewScrollBar("bar", 200, 50).OnScroll(func(p float32, _ *state.Store) message.Message {
		pct = p
		return nil
	})
	tester := surrealtest.NewViewTesterWithT(t)
	tester.Mount(view.VStack(view.FromWidget(bar)))

	start := bar.SliderBounds().Center()
	tester.DragFrom(start, graphics.Pt(0, 75))
	if pct != 0.5 {
		t.Errorf("percentage = %v, want 0.5", pct)
	}
	if bar.Dragging() {
		t.Error("still dragging after release")
	}
}

func TestViewTesterAdvance(t *testing.T) {
	tester := surrealtest.NewViewTesterWithT(t)
	tester.Mount(counter(t))
	start := tester.Clock().Now()

	var x float64
	a := animation.New(20*time.Millisecond, func(v *float64, elapsed time.Duration) {
		*v = float64(elapsed.Milliseconds())
	})
	tester.Frame().Animate(animation.Bind(a, &x))

	if !tester.Advance(10 * time.Millisecond) {
		t.Error("animating frame did not render")
	}
	if x != 10 {
		t.Errorf("x = %v, want 10", x)
	}
	if got := tester.Clock().Now().Sub(start); got != 10*time.Millisecond {
		t.Errorf("clock advanced %v, want 10ms", got)
	}
	if animation.Now() != tester.Clock().Now() {
		t.Error("animation clock not installed")
	}
}
