package view

import (
	"github.com/surreal-ui/surreal/pkg/errors"
	"github.com/surreal-ui/surreal/pkg/event"
	"github.com/surreal-ui/surreal/pkg/message"
	"github.com/surreal-ui/surreal/pkg/render"
	"github.com/surreal-ui/surreal/pkg/state"
	"github.com/surreal-ui/surreal/pkg/theme"
	"github.com/surreal-ui/surreal/pkg/widget"
)

// box is a fixed-size widget with scriptable handlers.
type box struct {
	widget.Base
	w, h      uint32
	inits     int
	received  int
	messages  int
	response  event.Response
	onEvent   func(st *state.Store, q *message.Queue)
	onMessage func(b *box, msg message.Message, st *state.Store)
}

func newBox(id string, w, h uint32) *box {
	return &box{Base: widget.NewBase(id), w: w, h: h}
}

func (b *box) Init(render.Measurer, *theme.Theme) {
	b.inits++
	b.SetSize(b.w, b.h)
}

func (b *box) HandleEvent(_ event.Event, st *state.Store, q *message.Queue) event.Response {
	b.received++
	if b.onEvent != nil {
		b.onEvent(st, q)
	}
	return b.response
}

func (b *box) HandleMessage(msg message.Message, st *state.Store) {
	b.messages++
	if b.onMessage != nil {
		b.onMessage(b, msg, st)
	}
}

func (b *box) Render(c render.Canvas, _ *theme.Theme) {
	c.Draw(render.Rect{Bounds: b.Bounds()})
}

type nopMeasurer struct{}

func (nopMeasurer) MeasureText(render.TextSpec) (uint32, uint32) { return 0, 0 }
func (nopMeasurer) ResourceDimensions(string) (uint32, uint32, error) {
	return 0, 0, errors.ErrNotFound
}

type note string

func (n note) IsMessage() bool { return n != "" }

type quietHandler struct{}

func (quietHandler) HandleError(*errors.SurrealError) {}
func (quietHandler) HandlePanic(*errors.PanicError)   {}

// paddedTheme is the default theme with the padding used by most layout
// tests.
func paddedTheme() *theme.Theme {
	th := theme.Default()
	th.ViewPadding = theme.Padding{Vertical: 10, Horizontal: 20}
	th.WidgetPadding = theme.Padding{Vertical: 5, Horizontal: 0}
	return th
}

func w(x widget.Widget) Element { return FromWidget(x) }
func v(x View) Element          { return FromView(x) }

type recorder struct {
	cmds []render.Command
}

func (r *recorder) Draw(c render.Command) { r.cmds = append(r.cmds, c) }
