package widget

import (
	"testing"
	"unicode/utf8"

	"github.com/surreal-ui/surreal/pkg/errors"
	"github.com/surreal-ui/surreal/pkg/event"
	"github.com/surreal-ui/surreal/pkg/graphics"
	"github.com/surreal-ui/surreal/pkg/layout"
	"github.com/surreal-ui/surreal/pkg/message"
	"github.com/surreal-ui/surreal/pkg/render"
	"github.com/surreal-ui/surreal/pkg/state"
	"github.com/surreal-ui/surreal/pkg/theme"
)

// fakeMeasurer sizes text at scale/2 per rune and scale tall.
type fakeMeasurer struct {
	images map[string][2]uint32
}

func (f fakeMeasurer) MeasureText(s render.TextSpec) (uint32, uint32) {
	return uint32(float32(utf8.RuneCountInString(s.Text)) * s.Scale / 2), uint32(s.Scale)
}

func (f fakeMeasurer) ResourceDimensions(alias string) (uint32, uint32, error) {
	d, ok := f.images[alias]
	if !ok {
		return 0, 0, errors.ErrNotFound
	}
	return d[0], d[1], nil
}

type canvas struct {
	cmds []render.Command
}

func (c *canvas) Draw(cmd render.Command) { c.cmds = append(c.cmds, cmd) }

type clicked struct{ id string }

func (clicked) IsMessage() bool { return true }

type quietHandler struct{}

func (quietHandler) HandleError(*errors.SurrealError) {}
func (quietHandler) HandlePanic(*errors.PanicError)   {}

func expectFatal(t *testing.T, kind errors.ErrorKind, fn func()) {
	t.Helper()
	errors.SetHandler(quietHandler{})
	defer errors.SetHandler(nil)
	defer func() {
		t.Helper()
		r := recover()
		se, ok := r.(*errors.SurrealError)
		if !ok {
			t.Fatalf("recovered %v, want *SurrealError", r)
		}
		if se.Kind != kind {
			t.Errorf("Kind = %v, want %v", se.Kind, kind)
		}
	}()
	fn()
}

func TestTextInit(t *testing.T) {
	th := theme.Default()
	m := fakeMeasurer{}

	txt := NewText("t").Content("abcd")
	txt.Init(m, th)
	if w, h := txt.RenderSize(th); w != 80 || h != 40 {
		t.Errorf("size = %d×%d, want 80×40", w, h)
	}

	custom := NewText("c").Content("ab").Scale(10).Color(graphics.ColorBlack)
	custom.Init(m, th)
	custom.Init(m, th)
	if w, h := custom.RenderSize(th); w != 10 || h != 10 {
		t.Errorf("override size = %d×%d, want 10×10", w, h)
	}

	var c canvas
	custom.Place(3, 4)
	custom.Render(&c, th)
	want := render.Text{Section: render.TextSection{Text: "ab", Scale: 10, Color: graphics.ColorBlack, Position: graphics.Pt(3, 4)}}
	if len(c.cmds) != 1 || c.cmds[0] != want {
		t.Errorf("Render = %#v, want %#v", c.cmds, want)
	}
}

func TestTextNegativeScale(t *testing.T) {
	expectFatal(t, errors.KindStyle, func() { NewText("t").Scale(-2) })
}

func TestTextMessageHandler(t *testing.T) {
	st := state.New()
	_ = st.AddVar("counter", 3)
	txt := NewText("t").OnMessage(func(t *Text, _ message.Message, st *state.Store) {
		t.SetText(string(rune('0' + *st.Int("counter"))))
	})
	txt.HandleMessage(clicked{}, st)
	if txt.Text() != "3" {
		t.Errorf("Text() = %q, want 3", txt.Text())
	}
	if !CheckResize(txt) {
		t.Error("SetText did not request resize")
	}
	if CheckResize(txt) {
		t.Error("resize flag not cleared by CheckResize")
	}
}

func TestCharacter(t *testing.T) {
	txt := Character('+').Scale(20).Color(graphics.ColorWhite).Text("x")
	txt.Init(fakeMeasurer{}, theme.Default())
	if txt.Text() != "+" {
		t.Errorf("Text() = %q, want +", txt.Text())
	}
	if w, h := txt.Bounds().Dimensions(); w != 10 || h != 20 {
		t.Errorf("size = %d×%d, want 10×20", w, h)
	}
}

func TestButtonClickDiscipline(t *testing.T) {
	tests := []struct {
		name   string
		events []event.Event
		clicks int
	}{
		{"inside", []event.Event{event.Press(10, 10), event.Release(20, 20)}, 1},
		{"edge inclusive", []event.Event{event.Press(150, 75), event.Release(0, 0)}, 1},
		{"release outside", []event.Event{event.Press(10, 10), event.Release(200, 200)}, 0},
		{"press outside", []event.Event{event.Press(200, 200), event.Release(10, 10)}, 0},
		{"release only", []event.Event{event.Release(10, 10)}, 0},
		{"disarmed after outside release", []event.Event{event.Press(10, 10), event.Release(200, 10), event.Release(10, 10)}, 0},
		{"right button", []event.Event{
			event.MouseButtonEvent{State: event.Pressed, Button: event.Right, Position: graphics.Pt(5, 5)},
			event.MouseButtonEvent{State: event.Released, Button: event.Right, Position: graphics.Pt(5, 5)},
		}, 0},
		{"twice", []event.Event{event.Press(1, 1), event.Release(1, 1), event.Press(1, 1), event.Release(1, 1)}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewButton("b").OnClick(func(*state.Store) message.Message { return clicked{"b"} })
			b.Init(fakeMeasurer{}, theme.Default())
			b.Place(0, 0)
			q := message.NewQueue()
			for _, ev := range tt.events {
				b.HandleEvent(ev, state.New(), q)
			}
			if got := q.Len(); got != tt.clicks {
				t.Errorf("clicks = %d, want %d", got, tt.clicks)
			}
		})
	}
}

func TestButtonResponses(t *testing.T) {
	b := NewButton("b")
	b.Init(fakeMeasurer{}, theme.Default())
	q := message.NewQueue()
	if r := b.HandleEvent(event.Press(1, 1), nil, q); r != event.Consume {
		t.Errorf("press inside = %v, want consume", r)
	}
	if r := b.HandleEvent(event.Release(1, 1), nil, q); r != event.Consume {
		t.Errorf("release inside = %v, want consume", r)
	}
	if r := b.HandleEvent(event.Move(1, 1, 0, 0), nil, q); r != event.None {
		t.Errorf("motion = %v, want none", r)
	}
	if q.Len() != 0 {
		t.Errorf("button without OnClick queued %d messages", q.Len())
	}
}

func TestButtonLabel(t *testing.T) {
	th := theme.Default()
	small := NewButton("s").Label(NewText("l").Content("ok"))
	small.Init(fakeMeasurer{}, th)
	if w, h := small.RenderSize(th); w != 150 || h != 75 {
		t.Errorf("small label size = %d×%d, want 150×75", w, h)
	}
	small.Place(10, 20)
	// label is 40×40, centered in 150×75
	if got := small.LabelText().Bounds(); got.X != 10+75-20 || got.Y != 20+37-20 {
		t.Errorf("label at (%d,%d), want (65,37)", got.X, got.Y)
	}
	small.Translate(5, 5)
	if got := small.LabelText().Bounds(); got.X != 70 || got.Y != 42 {
		t.Errorf("label after translate at (%d,%d), want (70,42)", got.X, got.Y)
	}

	wide := NewButton("w").Label(NewText("l").Content("a long label"))
	wide.Init(fakeMeasurer{}, th)
	if w, h := wide.RenderSize(th); w != 240+20 || h != 75 {
		t.Errorf("wide label size = %d×%d, want 260×75", w, h)
	}
}

func TestButtonLabelResize(t *testing.T) {
	b := NewButton("b").Label(NewText("l"))
	b.LabelText().SetText("x")
	if !CheckResize(b) {
		t.Error("label resize not reported by button")
	}
	if CheckResize(b) || *b.LabelText().ShouldResize() {
		t.Error("resize flags not cleared")
	}
}

func TestButtonRender(t *testing.T) {
	th := theme.Default()
	b := NewButton("b").Roundness(0).Color(graphics.ColorWhite)
	b.Init(fakeMeasurer{}, th)
	var c canvas
	b.Render(&c, th)
	want := render.Rect{Bounds: graphics.BoundingRect{Width: 150, Height: 75}, Color: graphics.ColorWhite}
	if len(c.cmds) != 1 || c.cmds[0] != want {
		t.Errorf("Render = %#v, want %#v", c.cmds, want)
	}

	themed := NewButton("t")
	themed.Init(fakeMeasurer{}, th)
	c.cmds = nil
	themed.Render(&c, th)
	if rr, ok := c.cmds[0].(render.RoundedRect); !ok || rr.Roundness != 50 || rr.Color != th.Colors.Primary {
		t.Errorf("themed Render = %#v, want rounded rect from theme", c.cmds[0])
	}
}

func TestButtonRoundnessRange(t *testing.T) {
	expectFatal(t, errors.KindStyle, func() { NewButton("b").Roundness(101) })
}

func TestScrollBarRoundnessRange(t *testing.T) {
	for _, r := range []float32{-1, 250} {
		expectFatal(t, errors.KindStyle, func() { NewScrollBar("s", 100, 20).Roundness(r) })
	}
	sb := NewScrollBar("s", 100, 20).Roundness(100)
	if sb.sliderRoundness != 100 || sb.backgroundRoundness != 100 {
		t.Errorf("roundness = %v/%v, want 100/100", sb.sliderRoundness, sb.backgroundRoundness)
	}
}

func TestImageScaling(t *testing.T) {
	m := fakeMeasurer{images: map[string][2]uint32{"wide": {200, 100}}}
	th := theme.Default()
	tests := []struct {
		name string
		img  *Image
		w, h uint32
	}{
		{"natural", NewImage("i").Resource("wide"), 200, 100},
		{"fit width", NewImage("i").Resource("wide").FitToWidth(50), 50, 25},
		{"fit height", NewImage("i").Resource("wide").FitToHeight(50), 100, 50},
		{"latest wins", NewImage("i").Resource("wide").FitToHeight(50).FitToWidth(20), 20, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.img.Init(m, th)
			if w, h := tt.img.RenderSize(th); w != tt.w || h != tt.h {
				t.Errorf("size = %d×%d, want %d×%d", w, h, tt.w, tt.h)
			}
		})
	}
}

func TestImageSetScaled(t *testing.T) {
	img := NewImage("i").Resource("x")
	img.SetScaledHeight(10)
	if !CheckResize(img) {
		t.Error("SetScaledHeight did not request resize")
	}
}

func TestImageWithoutResource(t *testing.T) {
	expectFatal(t, errors.KindInit, func() { NewImage("i").Init(fakeMeasurer{}, theme.Default()) })
}

func TestImageUnknownResource(t *testing.T) {
	expectFatal(t, errors.KindInit, func() { NewImage("i").Resource("nope").Init(fakeMeasurer{}, theme.Default()) })
}

func TestCircleButtonHitTest(t *testing.T) {
	b := NewCircleButton("c").Radius(10)
	b.Init(fakeMeasurer{}, theme.Default())
	b.Place(0, 0)
	tests := []struct {
		x, y int32
		want bool
	}{
		{10, 10, true},
		{19, 10, true},
		{20, 10, false}, // distance equals radius
		{0, 0, false},   // corner of the bounding box
		{17, 17, true},
		{18, 18, false},
	}
	for _, tt := range tests {
		if got := b.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}

	q := message.NewQueue()
	b.OnClick(func(*state.Store) message.Message { return clicked{"c"} })
	b.HandleEvent(event.Press(1, 1), nil, q)
	b.HandleEvent(event.Release(10, 10), nil, q)
	if q.Len() != 0 {
		t.Error("press in bounding-box corner armed the circle button")
	}
	b.HandleEvent(event.Press(10, 10), nil, q)
	b.HandleEvent(event.Release(12, 12), nil, q)
	if q.Len() != 1 {
		t.Errorf("clicks = %d, want 1", q.Len())
	}
}

func TestCircleButtonContent(t *testing.T) {
	th := theme.Default()
	m := fakeMeasurer{images: map[string][2]uint32{"plus": {64, 32}}}

	b := NewCircleButton("c").Character(Character('+')).Image(NewImage("img").Resource("plus"))
	b.Init(m, th)
	if r := b.RadiusValue(); r != 50 {
		t.Errorf("radius = %d, want theme 50", r)
	}
	if w, h := b.RenderSize(th); w != 100 || h != 100 {
		t.Errorf("size = %d×%d, want 100×100", w, h)
	}
	img := b.content().(*Image)
	if w, h := img.Bounds().Dimensions(); w != 80 || h != 40 {
		t.Errorf("image size = %d×%d, want 80×40", w, h)
	}
	if CheckResize(b) || CheckResize(img) {
		t.Error("init scaling left a resize request")
	}
	b.Place(0, 0)
	if got := img.Bounds(); got.X != 10 || got.Y != 30 {
		t.Errorf("image at (%d,%d), want (10,30)", got.X, got.Y)
	}

	var c canvas
	b.Render(&c, th)
	if len(c.cmds) != 2 {
		t.Fatalf("Render issued %d commands, want 2", len(c.cmds))
	}
	if circle, ok := c.cmds[0].(render.Circle); !ok || circle.Center != graphics.Pt(50, 50) {
		t.Errorf("first command = %#v, want circle at (50,50)", c.cmds[0])
	}
}

func TestCircleButtonCharacterCentered(t *testing.T) {
	th := theme.Default()
	b := NewCircleButton("c").Radius(30).Character(Character('x').Scale(20))
	b.Init(fakeMeasurer{}, th)
	b.Place(100, 100)
	ch := b.content().(*Text)
	// glyph is 10×20 inside a 60×60 box
	if got := ch.Bounds(); got.X != 125 || got.Y != 120 {
		t.Errorf("character at (%d,%d), want (125,120)", got.X, got.Y)
	}
}

func TestCircleButtonForwardsMessages(t *testing.T) {
	th := theme.Default()
	ch := Character('0').Scale(20)
	b := NewCircleButton("c").Radius(30).Character(ch)
	b.char.OnMessage(func(txt *Text, _ message.Message, _ *state.Store) {
		txt.SetText("10")
	})
	b.Init(fakeMeasurer{}, th)
	if *b.ShouldResize() {
		t.Fatal("resize requested before any message")
	}

	b.HandleMessage(clicked{"x"}, nil)
	if got := b.content().(*Text).Text(); got != "10" {
		t.Errorf("character = %q, want %q", got, "10")
	}
	if !CheckResize(b) {
		t.Error("content resize not reported by the button")
	}
	if CheckResize(b) {
		t.Error("resize flag not cleared")
	}
}

func TestScrollBarDrag(t *testing.T) {
	var got []float32
	sb := NewScrollBar("sb", 100, 20).OnScroll(func(pct float32, _ *state.Store) message.Message {
		got = append(got, pct)
		return clicked{"sb"}
	})
	sb.Init(fakeMeasurer{}, theme.Default())
	sb.Place(0, 0)
	q := message.NewQueue()

	if r := sb.HandleEvent(event.Move(5, 50, 0, 50), nil, q); r != event.None {
		t.Errorf("motion while idle = %v, want none", r)
	}
	if r := sb.HandleEvent(event.Press(5, 30), nil, q); r != event.None {
		t.Errorf("press outside slider = %v, want none", r)
	}
	if r := sb.HandleEvent(event.Press(5, 10), nil, q); r != event.Consume {
		t.Fatalf("press on slider = %v, want consume", r)
	}
	if r := sb.HandleEvent(event.Move(5, 50, 0, 40), nil, q); r != event.Redraw {
		t.Errorf("drag = %v, want redraw", r)
	}
	if p := sb.Percentage(); p != 0.5 {
		t.Errorf("Percentage = %v, want 0.5", p)
	}

	// past the trailing edge clamps to 1
	sb.HandleEvent(event.Move(5, 500, 0, 450), nil, q)
	if p := sb.Percentage(); p != 1 {
		t.Errorf("Percentage = %v, want 1", p)
	}
	if r := sb.HandleEvent(event.Move(5, 600, 0, 100), nil, q); r != event.None {
		t.Errorf("drag at clamp = %v, want none", r)
	}
	if sl := sb.SliderBounds(); sl.Y != 80 {
		t.Errorf("slider Y = %d, want 80", sl.Y)
	}

	// past the leading edge clamps to 0
	sb.HandleEvent(event.Move(5, -300, 0, -600), nil, q)
	if p := sb.Percentage(); p != 0 {
		t.Errorf("Percentage = %v, want 0", p)
	}

	sb.HandleEvent(event.Release(5, 0), nil, q)
	if sb.Dragging() {
		t.Error("still dragging after release")
	}
	if r := sb.HandleEvent(event.Move(5, 60, 0, 60), nil, q); r != event.None {
		t.Errorf("motion after release = %v, want none", r)
	}

	if want := []float32{0.5, 1, 0}; len(got) != len(want) || got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
		t.Errorf("OnScroll calls = %v, want %v", got, want)
	}
	if q.Len() != 3 {
		t.Errorf("queued %d messages, want 3", q.Len())
	}
}

func TestScrollBarFullSlider(t *testing.T) {
	sb := NewScrollBar("sb", 50, 80).Orientation(layout.Horizontal)
	sb.Init(fakeMeasurer{}, theme.Default())
	sb.Place(0, 0)
	if w, h := sb.Bounds().Dimensions(); w != 50 || h != 20 {
		t.Errorf("size = %d×%d, want 50×20", w, h)
	}
	q := message.NewQueue()
	sb.HandleEvent(event.Press(10, 10), nil, q)
	if r := sb.HandleEvent(event.Move(40, 10, 30, 0), nil, q); r != event.None {
		t.Errorf("drag with no travel = %v, want none", r)
	}
	if p := sb.Percentage(); p != 0 {
		t.Errorf("Percentage = %v, want 0", p)
	}
}

func TestScrollBarRender(t *testing.T) {
	th := theme.Default()
	sb := NewScrollBar("sb", 100, 20).Roundness(0)
	sb.Init(fakeMeasurer{}, th)
	var c canvas
	sb.Render(&c, th)
	if len(c.cmds) != 2 {
		t.Fatalf("Render issued %d commands, want 2", len(c.cmds))
	}
	if bg := c.cmds[0].(render.Rect); bg.Color != th.Colors.Secondary || bg.Bounds.Height != 100 {
		t.Errorf("track = %#v", bg)
	}
	sb.Background(false)
	c.cmds = nil
	sb.Render(&c, th)
	if len(c.cmds) != 1 {
		t.Errorf("Render without background issued %d commands, want 1", len(c.cmds))
	}
}
