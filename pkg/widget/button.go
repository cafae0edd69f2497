package widget

import (
	"fmt"

	"github.com/surreal-ui/surreal/pkg/errors"
	"github.com/surreal-ui/surreal/pkg/event"
	"github.com/surreal-ui/surreal/pkg/graphics"
	"github.com/surreal-ui/surreal/pkg/message"
	"github.com/surreal-ui/surreal/pkg/render"
	"github.com/surreal-ui/surreal/pkg/state"
	"github.com/surreal-ui/surreal/pkg/theme"
)

const (
	defaultButtonWidth  = 150
	defaultButtonHeight = 75
)

// Button is a rectangular, optionally rounded, clickable widget with an
// optional text label.
type Button struct {
	Base
	label *Text
	// minWidth and minHeight are the size before growing to fit the label.
	minWidth  uint32
	minHeight uint32
	color     *graphics.Color
	drawColor graphics.Color
	// roundness < 0 means unset.
	roundness float32
	onClick   func(*state.Store) message.Message
	click     clickTracker
}

// NewButton returns a 150×75 button.
func NewButton(id string) *Button {
	b := &Button{
		Base:      NewBase(id),
		minWidth:  defaultButtonWidth,
		minHeight: defaultButtonHeight,
		roundness: -1,
	}
	b.SetSize(b.minWidth, b.minHeight)
	return b
}

// Label sets the text shown centered on the button.
func (b *Button) Label(t *Text) *Button {
	b.label = t
	return b
}

// Size sets the minimum size.
func (b *Button) Size(width, height uint32) *Button {
	b.minWidth, b.minHeight = width, height
	b.SetSize(width, height)
	return b
}

// Color overrides the theme's primary color.
func (b *Button) Color(c graphics.Color) *Button {
	b.color = &c
	return b
}

// Roundness sets the corner rounding in percent. Values outside [0, 100] are
// fatal.
func (b *Button) Roundness(r float32) *Button {
	if r < 0 || r > 100 {
		errors.Fatal(errors.New("widget.Button.Roundness", errors.KindStyle, b.id,
			fmt.Errorf("%w: roundness %v not in [0, 100]", errors.ErrOutOfRange, r)))
	}
	b.roundness = r
	return b
}

// OnClick sets the callback run when the button is clicked. Its message is
// queued for the message phase.
func (b *Button) OnClick(fn func(st *state.Store) message.Message) *Button {
	b.onClick = fn
	return b
}

// LabelText returns the label widget, or nil.
func (b *Button) LabelText() *Text {
	return b.label
}

// Init implements Widget.
func (b *Button) Init(m render.Measurer, th *theme.Theme) {
	if b.color != nil {
		b.drawColor = *b.color
	} else {
		b.drawColor = th.Colors.Primary
	}
	if b.roundness < 0 {
		b.roundness = th.Widgets.Buttons.Roundness
	}
	w, h := b.minWidth, b.minHeight
	if b.label != nil {
		b.label.Init(m, th)
		lw, lh := b.label.RenderSize(th)
		pad := th.Widgets.InternalPadding
		w = max(w, lw+2*pad.Horizontal)
		h = max(h, lh+2*pad.Vertical)
	}
	b.SetSize(w, h)
}

// Place implements Widget.
func (b *Button) Place(x, y int32) {
	b.Base.Place(x, y)
	if b.label != nil {
		dx, dy := b.centerIn(b.label.Bounds().Dimensions())
		b.label.Place(x+dx, y+dy)
	}
}

// Translate implements Widget.
func (b *Button) Translate(dx, dy int32) {
	b.Base.Translate(dx, dy)
	if b.label != nil {
		b.label.Translate(dx, dy)
	}
}

// HandleEvent implements Widget.
func (b *Button) HandleEvent(ev event.Event, st *state.Store, q *message.Queue) event.Response {
	return b.click.handle(ev,
		func(p graphics.Point) bool { return b.bounds.Contains(p.X, p.Y) },
		func() {
			if b.onClick != nil {
				q.Push(b.onClick(st))
			}
		})
}

// HandleMessage forwards to the label.
func (b *Button) HandleMessage(msg message.Message, st *state.Store) {
	if b.label != nil {
		b.label.HandleMessage(msg, st)
	}
}

// ShouldResize folds the label's request into the button's own flag.
func (b *Button) ShouldResize() *bool {
	if b.label != nil && CheckResize(b.label) {
		b.resize = true
	}
	return &b.resize
}

// Render implements Widget.
func (b *Button) Render(c render.Canvas, th *theme.Theme) {
	style := render.PrimitiveStyle{Shape: render.RoundedRectangle, Roundness: b.roundness}
	c.Draw(style.Command(b.bounds, b.drawColor))
	if b.label != nil {
		b.label.Render(c, th)
	}
}
